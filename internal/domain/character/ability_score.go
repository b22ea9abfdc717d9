package character

import (
	"fmt"
)

// AbilityScore pairs a final score with its modifier. Built through
// NewAbilityScore so the two can never drift apart.
type AbilityScore struct {
	Score int `json:"score"`
	Bonus int `json:"bonus"`
}

// NewAbilityScore computes the modifier for a score.
func NewAbilityScore(score int) *AbilityScore {
	return &AbilityScore{
		Score: score,
		Bonus: Modifier(score),
	}
}

func (a *AbilityScore) String() string {
	return fmt.Sprintf("%d (%+d)", a.Score, a.Bonus)
}

// AbilityRoll is one generated score value waiting to be assigned to an
// ability. Dice rolls and the standard array both produce these; the
// assignment map keys abilities to roll IDs so no value can be placed
// twice.
type AbilityRoll struct {
	ID    string `json:"id"`
	Value int    `json:"value"`
}
