package character

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/character-forge-discord/internal/domain/rulebook"
	"github.com/KirkDiggler/character-forge-discord/internal/domain/shared"
)

func strPtr(s string) *string { return &s }

func pathPtr(p Path) *Path { return &p }

func methodPtr(m AbilityMethod) *AbilityMethod { return &m }

func newTestDraft() *CharacterDraft {
	return NewDraft("draft_1", "user_1", "realm_1", time.Now())
}

func TestNewDraft_StartsAtWorldStage(t *testing.T) {
	draft := newTestDraft()

	assert.Equal(t, StageWorld, draft.CurrentStage)
	assert.Equal(t, shared.CharacterStatusDraft, draft.Status)
	assert.Empty(t, draft.FurthestCompleted)
}

func TestApplyUpdates_ClassChangeCascades(t *testing.T) {
	draft := newTestDraft()
	draft.Path = PathCustom
	draft.ClassKey = "wizard"
	draft.FeatureChoices = map[string]string{"arcane-tradition": "evocation"}
	draft.Cantrips = []string{"fire-bolt", "light", "mage-hand"}
	draft.Spells = []string{"magic-missile", "shield"}
	draft.EquipmentChoices = map[string]int{"weapon-choice": 0}
	draft.Inventory = []rulebook.ItemRef{{Name: "Quarterstaff", Type: rulebook.ItemTypeWeapon}}
	draft.FurthestCompleted = StageAlignment

	cleared := draft.ApplyUpdates(&DraftUpdates{ClassKey: strPtr("fighter")})

	assert.Equal(t, "fighter", draft.ClassKey)
	assert.Nil(t, draft.FeatureChoices)
	assert.Nil(t, draft.Cantrips)
	assert.Nil(t, draft.Spells)
	assert.Nil(t, draft.EquipmentChoices)
	assert.Nil(t, draft.Inventory)
	assert.Equal(t, []Field{FieldFeatures, FieldSpells, FieldEquipment, FieldDerived}, cleared)
}

func TestApplyUpdates_ClassChangeLowersWatermark(t *testing.T) {
	draft := newTestDraft()
	draft.Path = PathCustom
	draft.ClassKey = "wizard"
	draft.FurthestCompleted = StageAlignment

	draft.ApplyUpdates(&DraftUpdates{ClassKey: strPtr("fighter")})

	// Class features and everything after must be redone.
	assert.Equal(t, StageAbilities, draft.FurthestCompleted)
}

func TestApplyUpdates_SameClassDoesNotCascade(t *testing.T) {
	draft := newTestDraft()
	draft.Path = PathCustom
	draft.ClassKey = "wizard"
	draft.Cantrips = []string{"fire-bolt"}
	draft.FurthestCompleted = StageSpells

	cleared := draft.ApplyUpdates(&DraftUpdates{ClassKey: strPtr("wizard")})
	assert.Empty(t, cleared)

	assert.Equal(t, []string{"fire-bolt"}, draft.Cantrips)
	assert.Equal(t, StageSpells, draft.FurthestCompleted)
}

func TestApplyUpdates_RaceChangeCascades(t *testing.T) {
	draft := newTestDraft()
	draft.Path = PathCustom
	draft.RaceKey = "elf"
	draft.SubraceKey = "high-elf"
	draft.RacialBonuses = map[shared.Attribute]int{shared.AttributeDexterity: 2}
	draft.Derived = &DerivedStats{Speed: 35}

	draft.ApplyUpdates(&DraftUpdates{RaceKey: strPtr("dwarf")})

	assert.Equal(t, "dwarf", draft.RaceKey)
	assert.Empty(t, draft.SubraceKey)
	assert.Nil(t, draft.RacialBonuses)
	assert.Nil(t, draft.Derived)
}

func TestApplyUpdates_MethodSwitchResetsScores(t *testing.T) {
	draft := newTestDraft()
	draft.Path = PathCustom

	draft.ApplyUpdates(&DraftUpdates{AbilityMethod: methodPtr(AbilityMethodPointBuy)})

	require.Len(t, draft.PointBuyScores, 6)
	for _, attr := range shared.Attributes {
		assert.Equal(t, PointBuyMin, draft.PointBuyScores[attr])
	}

	// Spend some points, then switch to the standard array.
	draft.PointBuyScores[shared.AttributeStrength] = 15

	draft.ApplyUpdates(&DraftUpdates{AbilityMethod: methodPtr(AbilityMethodStandardArray)})

	assert.Nil(t, draft.PointBuyScores)
	require.Len(t, draft.AbilityRolls, 6)
	values := make([]int, 0, 6)
	for _, roll := range draft.AbilityRolls {
		values = append(values, roll.Value)
	}
	assert.Equal(t, StandardArray(), values)
	assert.Empty(t, draft.AbilityAssignments)

	// Switching to dice clears the array rolls until the player rolls.
	draft.ApplyUpdates(&DraftUpdates{AbilityMethod: methodPtr(AbilityMethodDiceRoll)})

	assert.Empty(t, draft.AbilityRolls)
	assert.Empty(t, draft.AbilityAssignments)
}

func TestApplyUpdates_PathSwitchClearsOtherPath(t *testing.T) {
	draft := newTestDraft()
	draft.Path = PathCustom
	draft.ClassKey = "wizard"
	draft.RaceKey = "elf"
	draft.Name = "Mialee"
	draft.AbilityMethod = AbilityMethodPointBuy
	draft.PointBuyScores = map[shared.Attribute]int{shared.AttributeIntelligence: 15}
	draft.Skills = []string{"arcana"}
	draft.FurthestCompleted = StageSkills

	draft.ApplyUpdates(&DraftUpdates{Path: pathPtr(PathPremade)})

	assert.Equal(t, PathPremade, draft.Path)
	assert.Empty(t, draft.ClassKey)
	assert.Empty(t, draft.RaceKey)
	assert.Empty(t, draft.Name)
	assert.Equal(t, AbilityMethodUnset, draft.AbilityMethod)
	assert.Nil(t, draft.PointBuyScores)
	assert.Nil(t, draft.Skills)
	assert.Equal(t, StageCharacterType, draft.FurthestCompleted)
}

func TestApplyUpdates_PremadeToCustomClearsPremade(t *testing.T) {
	draft := newTestDraft()
	draft.Path = PathPremade
	draft.PremadeKey = "bruenor"
	draft.FurthestCompleted = StagePremadeSelect

	draft.ApplyUpdates(&DraftUpdates{Path: pathPtr(PathCustom)})

	assert.Empty(t, draft.PremadeKey)
	assert.Equal(t, StageCharacterType, draft.FurthestCompleted)
}

func TestMarkCompleted_Monotonic(t *testing.T) {
	draft := newTestDraft()
	draft.Path = PathCustom

	draft.MarkCompleted(StageCampaign)
	assert.Equal(t, StageCampaign, draft.FurthestCompleted)

	draft.MarkCompleted(StageAbilities)
	assert.Equal(t, StageAbilities, draft.FurthestCompleted)

	// Completing an earlier stage again never lowers the watermark.
	draft.MarkCompleted(StageWorld)
	assert.Equal(t, StageAbilities, draft.FurthestCompleted)
}

func TestBaseScore_PointBuy(t *testing.T) {
	draft := newTestDraft()
	draft.AbilityMethod = AbilityMethodPointBuy
	draft.PointBuyScores = map[shared.Attribute]int{shared.AttributeStrength: 12}

	score, ok := draft.BaseScore(shared.AttributeStrength)
	assert.True(t, ok)
	assert.Equal(t, 12, score)
}

func TestBaseScore_RollAssignment(t *testing.T) {
	draft := newTestDraft()
	draft.AbilityMethod = AbilityMethodDiceRoll
	draft.AbilityRolls = []AbilityRoll{{ID: "roll_1", Value: 15}, {ID: "roll_2", Value: 11}}
	draft.AbilityAssignments = map[shared.Attribute]string{
		shared.AttributeDexterity: "roll_1",
	}

	score, ok := draft.BaseScore(shared.AttributeDexterity)
	assert.True(t, ok)
	assert.Equal(t, 15, score)

	_, ok = draft.BaseScore(shared.AttributeWisdom)
	assert.False(t, ok)
}

func TestBaseScore_NoMethod(t *testing.T) {
	draft := newTestDraft()

	_, ok := draft.BaseScore(shared.AttributeStrength)
	assert.False(t, ok)
}

func TestFinalScores_AddsRacialBonuses(t *testing.T) {
	draft := newTestDraft()
	draft.AbilityMethod = AbilityMethodPointBuy
	draft.PointBuyScores = map[shared.Attribute]int{
		shared.AttributeStrength:     15,
		shared.AttributeDexterity:    10,
		shared.AttributeConstitution: 14,
		shared.AttributeIntelligence: 8,
		shared.AttributeWisdom:       12,
		shared.AttributeCharisma:     13,
	}
	draft.RacialBonuses = map[shared.Attribute]int{
		shared.AttributeStrength:     2,
		shared.AttributeConstitution: 1,
	}

	final := draft.FinalScores()

	assert.Equal(t, 17, final[shared.AttributeStrength])
	assert.Equal(t, 15, final[shared.AttributeConstitution])
	assert.Equal(t, 10, final[shared.AttributeDexterity])
}

func TestAllScoresSet(t *testing.T) {
	draft := newTestDraft()
	draft.AbilityMethod = AbilityMethodStandardArray
	draft.resetAbilityScores()
	assert.False(t, draft.AllScoresSet())

	assignments := make(map[shared.Attribute]string, 6)
	for i, attr := range shared.Attributes {
		assignments[attr] = arrayRollID(i)
	}
	draft.AbilityAssignments = assignments
	assert.True(t, draft.AllScoresSet())
}

func TestInventoryArmorChecks(t *testing.T) {
	draft := newTestDraft()
	assert.False(t, draft.HasBodyArmor())
	assert.False(t, draft.HasShield())

	draft.Inventory = []rulebook.ItemRef{
		{Name: "Chain Mail", Type: rulebook.ItemTypeArmor},
		{Name: "Shield", Type: rulebook.ItemTypeShield},
		{Name: "Longsword", Type: rulebook.ItemTypeWeapon},
	}
	assert.True(t, draft.HasBodyArmor())
	assert.True(t, draft.HasShield())
}

func TestApplyUpdates_NilIsNoOp(t *testing.T) {
	draft := newTestDraft()
	draft.ClassKey = "wizard"

	draft.ApplyUpdates(nil)

	assert.Equal(t, "wizard", draft.ClassKey)
}
