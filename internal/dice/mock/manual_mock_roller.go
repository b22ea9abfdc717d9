package mockdice

import (
	"fmt"
	"sync"

	"github.com/KirkDiggler/character-forge-discord/internal/dice"
)

// ManualMockRoller implements dice.Roller for testing with predetermined results
type ManualMockRoller struct {
	mu        sync.Mutex
	rolls     []int
	rollIndex int
}

// NewManualMockRoller creates a new mock dice roller
func NewManualMockRoller() *ManualMockRoller {
	return &ManualMockRoller{
		rolls: []int{},
	}
}

// SetNextRoll sets the next roll result
func (m *ManualMockRoller) SetNextRoll(roll int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rolls = append(m.rolls, roll)
}

// SetRolls sets multiple roll results
func (m *ManualMockRoller) SetRolls(rolls []int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rolls = rolls
	m.rollIndex = 0
}

// Reset clears all rolls and resets the index
func (m *ManualMockRoller) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rolls = []int{}
	m.rollIndex = 0
}

// getNextRoll returns the next predetermined roll
func (m *ManualMockRoller) getNextRoll() (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.rollIndex >= len(m.rolls) {
		return 0, fmt.Errorf("no more predetermined rolls available (used %d of %d)", m.rollIndex, len(m.rolls))
	}

	roll := m.rolls[m.rollIndex]
	m.rollIndex++
	return roll, nil
}

// nextRolls draws count predetermined rolls, validating them against sides
func (m *ManualMockRoller) nextRolls(count, sides int) ([]int, error) {
	rolls := make([]int, count)
	for i := 0; i < count; i++ {
		roll, err := m.getNextRoll()
		if err != nil {
			return nil, err
		}
		if roll < 1 || roll > sides {
			return nil, fmt.Errorf("invalid roll %d for d%d", roll, sides)
		}
		rolls[i] = roll
	}
	return rolls, nil
}

// Roll implements dice.Roller.Roll
func (m *ManualMockRoller) Roll(count, sides, bonus int) (*dice.RollResult, error) {
	rolls, err := m.nextRolls(count, sides)
	if err != nil {
		return nil, err
	}

	total := bonus
	for _, roll := range rolls {
		total += roll
	}

	return &dice.RollResult{
		Total: total,
		Rolls: rolls,
		Bonus: bonus,
		Count: count,
		Sides: sides,
	}, nil
}

// RollDropLowest implements dice.Roller.RollDropLowest
func (m *ManualMockRoller) RollDropLowest(count, sides int) (*dice.RollResult, error) {
	if count < 2 {
		return nil, fmt.Errorf("need at least 2 dice to drop one, got %d", count)
	}

	rolls, err := m.nextRolls(count, sides)
	if err != nil {
		return nil, err
	}

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

	return &dice.RollResult{
		Total:   total,
		Rolls:   rolls,
		Dropped: rolls[lowestIdx],
		Count:   count,
		Sides:   sides,
	}, nil
}
