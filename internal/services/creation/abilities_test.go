package creation_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/character-forge-discord/internal/domain/character"
	"github.com/KirkDiggler/character-forge-discord/internal/domain/shared"
	dnderr "github.com/KirkDiggler/character-forge-discord/internal/errors"
	"github.com/KirkDiggler/character-forge-discord/internal/services/creation"
)

type AbilitiesTestSuite struct {
	creationSuite
}

func TestAbilitiesSuite(t *testing.T) {
	suite.Run(t, new(AbilitiesTestSuite))
}

// seedWithMethod parks a draft at the abilities stage and switches it
// to the given generation method through the normal update path.
func (s *AbilitiesTestSuite) seedWithMethod(method character.AbilityMethod) *character.CharacterDraft {
	d := s.seedDraft(func(d *character.CharacterDraft) {
		d.Path = character.PathCustom
		d.CurrentStage = character.StageAbilities
		d.FurthestCompleted = character.StageIdentity
	})
	return s.mustUpdate(d.ID, &character.DraftUpdates{AbilityMethod: methodPtr(method)})
}

func (s *AbilitiesTestSuite) setScore(draftID string, attr shared.Attribute, score int) (*character.CharacterDraft, error) {
	return s.service.SetAbilityScore(s.ctx, &creation.SetAbilityScoreInput{
		DraftID: draftID,
		Ability: attr,
		Score:   score,
	})
}

func (s *AbilitiesTestSuite) TestSetAbilityScore_SpendsTheWholeBudget() {
	d := s.seedWithMethod(character.AbilityMethodPointBuy)

	// Switching to point buy floors every score first.
	for _, attr := range shared.Attributes {
		s.Equal(8, d.PointBuyScores[attr])
	}

	for attr, score := range fullPointBuy() {
		if score == 8 {
			continue
		}
		_, err := s.setScore(d.ID, attr, score)
		s.Require().NoError(err)
	}

	stored, err := s.service.GetDraft(s.ctx, d.ID)
	s.Require().NoError(err)
	s.Equal(fullPointBuy(), stored.PointBuyScores)
	s.Equal(character.PointBuyBudget, character.PointBuyTotal(stored.PointBuyScores))
}

func (s *AbilitiesTestSuite) TestSetAbilityScore_OverrunRejected() {
	d := s.seedWithMethod(character.AbilityMethodPointBuy)

	// Three 15s cost exactly 27; one more point anywhere overruns.
	for _, attr := range []shared.Attribute{
		shared.AttributeStrength,
		shared.AttributeDexterity,
		shared.AttributeConstitution,
	} {
		_, err := s.setScore(d.ID, attr, 15)
		s.Require().NoError(err)
	}

	_, err := s.setScore(d.ID, shared.AttributeIntelligence, 9)

	s.Error(err)
	s.True(dnderr.IsValidation(err))
	s.Contains(err.Error(), "that spread costs 28 points, the budget is 27")

	stored, getErr := s.service.GetDraft(s.ctx, d.ID)
	s.NoError(getErr)
	s.Equal(8, stored.PointBuyScores[shared.AttributeIntelligence])
}

func (s *AbilitiesTestSuite) TestSetAbilityScore_BoundsChecked() {
	d := s.seedWithMethod(character.AbilityMethodPointBuy)

	_, err := s.setScore(d.ID, shared.AttributeStrength, 16)
	s.Error(err)
	s.Contains(err.Error(), "scores range from 8 to 15")

	_, err = s.setScore(d.ID, shared.AttributeStrength, 7)
	s.Error(err)
	s.Contains(err.Error(), "scores range from 8 to 15")
}

func (s *AbilitiesTestSuite) TestSetAbilityScore_RequiresPointBuy() {
	d := s.seedWithMethod(character.AbilityMethodStandardArray)

	_, err := s.setScore(d.ID, shared.AttributeStrength, 14)

	s.Error(err)
	s.True(dnderr.IsValidation(err))
	s.Contains(err.Error(), "point buy is not the active method")
}

func (s *AbilitiesTestSuite) TestSetAbilityScore_UnknownAbility() {
	d := s.seedWithMethod(character.AbilityMethodPointBuy)

	_, err := s.setScore(d.ID, shared.Attribute("Luck"), 12)

	s.Error(err)
	s.True(dnderr.IsInvalidArgument(err))
	s.Contains(err.Error(), "unknown ability 'Luck'")
}

func (s *AbilitiesTestSuite) TestStandardArray_SeededOnSwitch() {
	d := s.seedWithMethod(character.AbilityMethodStandardArray)

	s.Require().Len(d.AbilityRolls, 6)
	s.Equal("array_1", d.AbilityRolls[0].ID)
	s.Equal(15, d.AbilityRolls[0].Value)
	s.Equal("array_6", d.AbilityRolls[5].ID)
	s.Equal(8, d.AbilityRolls[5].Value)
	s.Empty(d.AbilityAssignments)
}

func (s *AbilitiesTestSuite) TestAssignRoll_KeepsBijection() {
	d := s.seedWithMethod(character.AbilityMethodStandardArray)

	_, err := s.service.AssignRoll(s.ctx, &creation.AssignRollInput{
		DraftID: d.ID, Ability: shared.AttributeStrength, RollID: "array_1",
	})
	s.Require().NoError(err)

	// The 15 is taken; a second ability cannot claim it.
	_, err = s.service.AssignRoll(s.ctx, &creation.AssignRollInput{
		DraftID: d.ID, Ability: shared.AttributeDexterity, RollID: "array_1",
	})
	s.Error(err)
	s.True(dnderr.IsValidation(err))
	s.Contains(err.Error(), "that value is already assigned to Strength")

	// Moving Strength elsewhere frees it.
	_, err = s.service.AssignRoll(s.ctx, &creation.AssignRollInput{
		DraftID: d.ID, Ability: shared.AttributeStrength, RollID: "array_2",
	})
	s.Require().NoError(err)

	draft, err := s.service.AssignRoll(s.ctx, &creation.AssignRollInput{
		DraftID: d.ID, Ability: shared.AttributeDexterity, RollID: "array_1",
	})
	s.Require().NoError(err)
	s.Equal("array_2", draft.AbilityAssignments[shared.AttributeStrength])
	s.Equal("array_1", draft.AbilityAssignments[shared.AttributeDexterity])
}

func (s *AbilitiesTestSuite) TestAssignRoll_ReassignSameAbilityAllowed() {
	d := s.seedWithMethod(character.AbilityMethodStandardArray)

	_, err := s.service.AssignRoll(s.ctx, &creation.AssignRollInput{
		DraftID: d.ID, Ability: shared.AttributeWisdom, RollID: "array_3",
	})
	s.Require().NoError(err)

	draft, err := s.service.AssignRoll(s.ctx, &creation.AssignRollInput{
		DraftID: d.ID, Ability: shared.AttributeWisdom, RollID: "array_3",
	})
	s.NoError(err)
	s.Equal("array_3", draft.AbilityAssignments[shared.AttributeWisdom])
}

func (s *AbilitiesTestSuite) TestAssignRoll_UnknownRollID() {
	d := s.seedWithMethod(character.AbilityMethodStandardArray)

	_, err := s.service.AssignRoll(s.ctx, &creation.AssignRollInput{
		DraftID: d.ID, Ability: shared.AttributeStrength, RollID: "array_9",
	})

	s.Error(err)
	s.Contains(err.Error(), "no value 'array_9' to assign")
}

func (s *AbilitiesTestSuite) TestAssignRoll_RequiresGeneratedValues() {
	d := s.seedWithMethod(character.AbilityMethodPointBuy)

	_, err := s.service.AssignRoll(s.ctx, &creation.AssignRollInput{
		DraftID: d.ID, Ability: shared.AttributeStrength, RollID: "array_1",
	})

	s.Error(err)
	s.Contains(err.Error(), "no generated values to assign")
}

func (s *AbilitiesTestSuite) TestRollAbilities_DropsTheLowestDie() {
	d := s.seedWithMethod(character.AbilityMethodDiceRoll)
	s.roller.SetRolls([]int{
		6, 5, 4, 1,
		6, 6, 2, 2,
		5, 5, 3, 1,
		4, 4, 4, 2,
		4, 3, 3, 2,
		3, 3, 2, 2,
	})

	draft, err := s.service.RollAbilities(s.ctx, d.ID)
	s.Require().NoError(err)

	s.Require().Len(draft.AbilityRolls, 6)
	values := make([]int, 0, 6)
	for i, roll := range draft.AbilityRolls {
		s.Equalf(rollID(i), roll.ID, "roll %d", i)
		values = append(values, roll.Value)
	}
	s.Equal([]int{15, 14, 13, 12, 10, 8}, values)
	s.Empty(draft.AbilityAssignments)
}

func (s *AbilitiesTestSuite) TestRollAbilities_RerollClearsAssignments() {
	d := s.seedWithMethod(character.AbilityMethodDiceRoll)
	s.roller.SetRolls([]int{
		6, 5, 4, 1,
		6, 6, 2, 2,
		5, 5, 3, 1,
		4, 4, 4, 2,
		4, 3, 3, 2,
		3, 3, 2, 2,
	})

	_, err := s.service.RollAbilities(s.ctx, d.ID)
	s.Require().NoError(err)

	_, err = s.service.AssignRoll(s.ctx, &creation.AssignRollInput{
		DraftID: d.ID, Ability: shared.AttributeStrength, RollID: "roll_1",
	})
	s.Require().NoError(err)

	s.roller.SetRolls([]int{
		6, 6, 6, 6,
		5, 4, 4, 3,
		5, 4, 3, 3,
		6, 3, 3, 1,
		4, 4, 2, 1,
		5, 2, 2, 1,
	})

	draft, err := s.service.RollAbilities(s.ctx, d.ID)
	s.Require().NoError(err)

	s.Equal(18, draft.AbilityRolls[0].Value)
	s.Empty(draft.AbilityAssignments)
}

func (s *AbilitiesTestSuite) TestRollAbilities_RequiresDiceMethod() {
	d := s.seedWithMethod(character.AbilityMethodStandardArray)

	_, err := s.service.RollAbilities(s.ctx, d.ID)

	s.Error(err)
	s.True(dnderr.IsValidation(err))
	s.Contains(err.Error(), "rolling requires the dice method")
}

func (s *AbilitiesTestSuite) TestAdvance_RequiresFullAssignment() {
	d := s.seedWithMethod(character.AbilityMethodStandardArray)

	for i, attr := range shared.Attributes[:5] {
		_, err := s.service.AssignRoll(s.ctx, &creation.AssignRollInput{
			DraftID: d.ID, Ability: attr, RollID: rollIDFor("array", i),
		})
		s.Require().NoError(err)
	}

	_, err := s.service.Advance(s.ctx, d.ID)

	s.Error(err)
	s.True(dnderr.IsValidation(err))
	s.Contains(err.Error(), "assign a value to Charisma")
}

func (s *AbilitiesTestSuite) TestAdvance_FullAssignmentPasses() {
	d := s.seedWithMethod(character.AbilityMethodStandardArray)

	for i, attr := range shared.Attributes {
		_, err := s.service.AssignRoll(s.ctx, &creation.AssignRollInput{
			DraftID: d.ID, Ability: attr, RollID: rollIDFor("array", i),
		})
		s.Require().NoError(err)
	}

	out, err := s.service.Advance(s.ctx, d.ID)

	s.Require().NoError(err)
	s.Equal(character.StageClassFeatures, out.Draft.CurrentStage)
	s.Equal(15, out.Draft.FinalScores()[shared.AttributeStrength])
	s.Equal(8, out.Draft.FinalScores()[shared.AttributeCharisma])
}

func rollID(i int) string {
	return rollIDFor("roll", i)
}

func rollIDFor(prefix string, i int) string {
	return fmt.Sprintf("%s_%d", prefix, i+1)
}
