package character

import (
	"github.com/KirkDiggler/character-forge-discord/internal/domain/shared"
)

// Point-buy tuning. Scores start at the minimum and share one budget;
// steps above 13 cost double.
const (
	PointBuyBudget = 27
	PointBuyMin    = 8
	PointBuyMax    = 15
)

// Modifier converts an ability score to its modifier with floor
// semantics: score 9 is -1, not 0. Plain integer division would
// truncate toward zero and get every odd score below 10 wrong.
func Modifier(score int) int {
	d := score - 10
	if d < 0 {
		return (d - 1) / 2
	}
	return d / 2
}

// PointBuyStepCost is the cost of raising a score from to-1 to to.
func PointBuyStepCost(to int) int {
	if to >= 14 {
		return 2
	}
	return 1
}

// PointBuyCost is the total point cost of a single score, counted up
// from the starting value of 8. Scores outside [PointBuyMin,
// PointBuyMax] are not purchasable; callers bound first.
func PointBuyCost(score int) int {
	total := 0
	for s := PointBuyMin + 1; s <= score; s++ {
		total += PointBuyStepCost(s)
	}
	return total
}

// PointBuyTotal sums the cost of a full six-score spread.
func PointBuyTotal(scores map[shared.Attribute]int) int {
	total := 0
	for _, attr := range shared.Attributes {
		if score, ok := scores[attr]; ok {
			total += PointBuyCost(score)
		}
	}
	return total
}

// StandardArray returns the fixed score multiset assigned one-to-one
// onto the six abilities, highest first.
func StandardArray() []int {
	return []int{15, 14, 13, 12, 10, 8}
}
