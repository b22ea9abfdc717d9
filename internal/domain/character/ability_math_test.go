package character

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/character-forge-discord/internal/domain/shared"
)

func TestModifier_FloorSemantics(t *testing.T) {
	tests := []struct {
		score    int
		expected int
	}{
		{3, -4},
		{7, -2},
		{8, -1},
		{9, -1}, // floor((9-10)/2) is -1, not 0
		{10, 0},
		{11, 0},
		{12, 1},
		{14, 2},
		{15, 2},
		{16, 3},
		{18, 4},
		{20, 5},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, Modifier(tt.score), "score %d", tt.score)
	}
}

func TestPointBuyCost(t *testing.T) {
	tests := []struct {
		score    int
		expected int
	}{
		{8, 0},
		{9, 1},
		{10, 2},
		{11, 3},
		{12, 4},
		{13, 5},
		{14, 7}, // steps above 13 cost 2
		{15, 9},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, PointBuyCost(tt.score), "score %d", tt.score)
	}
}

func TestPointBuyStepCost(t *testing.T) {
	assert.Equal(t, 1, PointBuyStepCost(13))
	assert.Equal(t, 2, PointBuyStepCost(14))
	assert.Equal(t, 2, PointBuyStepCost(15))
}

func TestPointBuyTotal_FullSpread(t *testing.T) {
	// 15/15/15 + three at 8 spends the entire budget
	scores := map[shared.Attribute]int{
		shared.AttributeStrength:     15,
		shared.AttributeDexterity:    15,
		shared.AttributeConstitution: 15,
		shared.AttributeIntelligence: 8,
		shared.AttributeWisdom:       8,
		shared.AttributeCharisma:     8,
	}
	assert.Equal(t, PointBuyBudget, PointBuyTotal(scores))
}

func TestPointBuyTotal_BalancedSpread(t *testing.T) {
	// 13/13/13/12/12/12 costs 5*3 + 4*3 = 27
	scores := map[shared.Attribute]int{
		shared.AttributeStrength:     13,
		shared.AttributeDexterity:    13,
		shared.AttributeConstitution: 13,
		shared.AttributeIntelligence: 12,
		shared.AttributeWisdom:       12,
		shared.AttributeCharisma:     12,
	}
	assert.Equal(t, 27, PointBuyTotal(scores))
}

func TestStandardArray(t *testing.T) {
	assert.Equal(t, []int{15, 14, 13, 12, 10, 8}, StandardArray())
}

func TestNewAbilityScore(t *testing.T) {
	score := NewAbilityScore(14)
	assert.Equal(t, 14, score.Score)
	assert.Equal(t, 2, score.Bonus)
	assert.Equal(t, "14 (+2)", score.String())

	low := NewAbilityScore(9)
	assert.Equal(t, -1, low.Bonus)
	assert.Equal(t, "9 (-1)", low.String())
}
