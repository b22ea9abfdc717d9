package dice

import (
	"errors"
	"math/rand"
)

// randomRoller implements Roller using math/rand
type randomRoller struct{}

// NewRandomRoller creates a new random dice roller
func NewRandomRoller() Roller {
	return &randomRoller{}
}

// Roll implements Roller.Roll
func (r *randomRoller) Roll(count, sides, bonus int) (*RollResult, error) {
	rolls, err := rollDice(count, sides)
	if err != nil {
		return nil, err
	}

	total := bonus
	for _, roll := range rolls {
		total += roll
	}

	return &RollResult{
		Total: total,
		Rolls: rolls,
		Bonus: bonus,
		Count: count,
		Sides: sides,
	}, nil
}

// RollDropLowest implements Roller.RollDropLowest
func (r *randomRoller) RollDropLowest(count, sides int) (*RollResult, error) {
	if count < 2 {
		return nil, errors.New("need at least 2 dice to drop one")
	}

	rolls, err := rollDice(count, sides)
	if err != nil {
		return nil, err
	}

	return dropLowest(rolls, sides), nil
}

// rollDice rolls count dice of the given sides
func rollDice(count, sides int) ([]int, error) {
	if count < 1 {
		return nil, errors.New("invalid dice count")
	}

	if sides < 1 {
		return nil, errors.New("invalid dice sides")
	}

	rolls := make([]int, count)
	for i := 0; i < count; i++ {
		rolls[i] = rand.Intn(sides) + 1
	}

	return rolls, nil
}

// dropLowest totals rolls minus the single lowest die
func dropLowest(rolls []int, sides int) *RollResult {
	lowestIdx := 0
	for i, roll := range rolls {
		if roll < rolls[lowestIdx] {
			lowestIdx = i
		}
	}

	total := 0
	for i, roll := range rolls {
		if i == lowestIdx {
			continue
		}
		total += roll
	}

	return &RollResult{
		Total:   total,
		Rolls:   rolls,
		Dropped: rolls[lowestIdx],
		Count:   len(rolls),
		Sides:   sides,
	}
}
