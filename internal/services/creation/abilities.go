package creation

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/character-forge-discord/internal/domain/character"
	"github.com/KirkDiggler/character-forge-discord/internal/domain/events"
	"github.com/KirkDiggler/character-forge-discord/internal/domain/shared"
	dnderr "github.com/KirkDiggler/character-forge-discord/internal/errors"
)

// abilityRollCount is how many values get generated for assignment,
// one per ability.
const abilityRollCount = 6

// SetAbilityScore sets one point-buy score. Out-of-bounds values and
// spreads that would overrun the budget are rejected without touching
// the draft.
func (s *service) SetAbilityScore(ctx context.Context, input *SetAbilityScoreInput) (*character.CharacterDraft, error) {
	if input == nil {
		return nil, dnderr.InvalidArgument("input is required")
	}
	if !validAttribute(input.Ability) {
		return nil, dnderr.InvalidArgumentf("unknown ability '%s'", input.Ability)
	}

	draft, err := s.GetDraft(ctx, input.DraftID)
	if err != nil {
		return nil, err
	}

	if draft.AbilityMethod != character.AbilityMethodPointBuy {
		return nil, dnderr.Validation("point buy is not the active method").
			WithMeta("field", "ability_method")
	}
	if input.Score < character.PointBuyMin || input.Score > character.PointBuyMax {
		return nil, dnderr.Validationf("scores range from %d to %d", character.PointBuyMin, character.PointBuyMax).
			WithMeta("field", "ability_scores")
	}

	scores := make(map[shared.Attribute]int, len(shared.Attributes))
	for _, attr := range shared.Attributes {
		scores[attr] = character.PointBuyMin
	}
	for attr, score := range draft.PointBuyScores {
		scores[attr] = score
	}
	scores[input.Ability] = input.Score

	if spent := character.PointBuyTotal(scores); spent > character.PointBuyBudget {
		return nil, dnderr.Validationf("that spread costs %d points, the budget is %d", spent, character.PointBuyBudget).
			WithMeta("field", "ability_scores")
	}

	draft.PointBuyScores = scores
	if err := s.draftRepo.Update(ctx, draft); err != nil {
		return nil, dnderr.Wrap(err, "failed to save draft")
	}

	s.emit(events.NewCreationEvent(events.DraftUpdated, draft))
	return draft, nil
}

// RollAbilities generates six 4d6-drop-lowest totals. Each call
// replaces the previous rolls and clears every assignment.
func (s *service) RollAbilities(ctx context.Context, draftID string) (*character.CharacterDraft, error) {
	draft, err := s.GetDraft(ctx, draftID)
	if err != nil {
		return nil, err
	}

	if draft.AbilityMethod != character.AbilityMethodDiceRoll {
		return nil, dnderr.Validation("rolling requires the dice method").
			WithMeta("field", "ability_method")
	}

	rolls := make([]character.AbilityRoll, 0, abilityRollCount)
	for i := 0; i < abilityRollCount; i++ {
		result, err := s.roller.RollDropLowest(4, 6)
		if err != nil {
			return nil, dnderr.Wrap(err, "failed to roll abilities")
		}
		rolls = append(rolls, character.AbilityRoll{
			ID:    fmt.Sprintf("roll_%d", i+1),
			Value: result.Total,
		})
	}

	draft.AbilityRolls = rolls
	draft.AbilityAssignments = nil

	if err := s.draftRepo.Update(ctx, draft); err != nil {
		return nil, dnderr.Wrap(err, "failed to save draft")
	}

	s.emit(events.NewCreationEvent(events.DraftUpdated, draft))
	return draft, nil
}

// AssignRoll binds a generated value to an ability. Reassigning an
// ability frees its old value; assigning a value already placed on a
// different ability is rejected, keeping the mapping a bijection.
func (s *service) AssignRoll(ctx context.Context, input *AssignRollInput) (*character.CharacterDraft, error) {
	if input == nil {
		return nil, dnderr.InvalidArgument("input is required")
	}
	if !validAttribute(input.Ability) {
		return nil, dnderr.InvalidArgumentf("unknown ability '%s'", input.Ability)
	}

	draft, err := s.GetDraft(ctx, input.DraftID)
	if err != nil {
		return nil, err
	}

	switch draft.AbilityMethod {
	case character.AbilityMethodStandardArray, character.AbilityMethodDiceRoll:
	default:
		return nil, dnderr.Validation("no generated values to assign").
			WithMeta("field", "ability_method")
	}

	if !rollExists(draft.AbilityRolls, input.RollID) {
		return nil, dnderr.Validationf("no value '%s' to assign", input.RollID).
			WithMeta("field", "ability_scores")
	}
	for attr, rollID := range draft.AbilityAssignments {
		if rollID == input.RollID && attr != input.Ability {
			return nil, dnderr.Validationf("that value is already assigned to %s", attr.FullName()).
				WithMeta("field", "ability_scores")
		}
	}

	assignments := make(map[shared.Attribute]string, len(draft.AbilityAssignments)+1)
	for attr, rollID := range draft.AbilityAssignments {
		assignments[attr] = rollID
	}
	assignments[input.Ability] = input.RollID
	draft.AbilityAssignments = assignments

	if err := s.draftRepo.Update(ctx, draft); err != nil {
		return nil, dnderr.Wrap(err, "failed to save draft")
	}

	s.emit(events.NewCreationEvent(events.DraftUpdated, draft))
	return draft, nil
}

func rollExists(rolls []character.AbilityRoll, id string) bool {
	for _, roll := range rolls {
		if roll.ID == id {
			return true
		}
	}
	return false
}

func validAttribute(attr shared.Attribute) bool {
	for _, a := range shared.Attributes {
		if a == attr {
			return true
		}
	}
	return false
}
