package creation

import (
	"context"

	"github.com/KirkDiggler/character-forge-discord/internal/domain/character"
	"github.com/KirkDiggler/character-forge-discord/internal/domain/events"
	"github.com/KirkDiggler/character-forge-discord/internal/domain/rulebook"
	dnderr "github.com/KirkDiggler/character-forge-discord/internal/errors"
)

// Advance validates the current stage, commits its side effects, and
// moves the draft forward on its path. Validation failure leaves the
// stored draft untouched.
func (s *service) Advance(ctx context.Context, draftID string) (*NavigationOutput, error) {
	draft, err := s.GetDraft(ctx, draftID)
	if err != nil {
		return nil, err
	}

	if draft.CurrentStage == character.StageReview {
		return nil, dnderr.Validation("review is the final stage").
			WithMeta("stage", string(character.StageReview))
	}

	if err := s.validateStage(ctx, draft, draft.CurrentStage); err != nil {
		return nil, err
	}
	if err := s.commitStage(ctx, draft); err != nil {
		return nil, err
	}

	from := draft.CurrentStage
	draft.MarkCompleted(from)

	next, ok := character.NextStage(draft.Path, from)
	if !ok {
		return nil, dnderr.Internalf("no stage follows '%s'", from)
	}
	draft.CurrentStage = next

	if err := s.draftRepo.Update(ctx, draft); err != nil {
		return nil, dnderr.Wrap(err, "failed to save draft")
	}

	s.emit(events.NewCreationEvent(events.StageAdvanced, draft).
		WithContext(events.ContextFromStage, string(from)).
		WithContext(events.ContextToStage, string(next)))

	return &NavigationOutput{Draft: draft}, nil
}

// Retreat steps back along the path actually taken. The first stage
// does not retreat.
func (s *service) Retreat(ctx context.Context, draftID string) (*NavigationOutput, error) {
	draft, err := s.GetDraft(ctx, draftID)
	if err != nil {
		return nil, err
	}

	prev, ok := character.PrevStage(draft.Path, draft.CurrentStage)
	if !ok {
		return nil, dnderr.Validation("already at the first stage").
			WithMeta("stage", string(draft.CurrentStage))
	}

	from := draft.CurrentStage
	draft.CurrentStage = prev

	if err := s.draftRepo.Update(ctx, draft); err != nil {
		return nil, dnderr.Wrap(err, "failed to save draft")
	}

	s.emit(events.NewCreationEvent(events.StageRetreated, draft).
		WithContext(events.ContextFromStage, string(from)).
		WithContext(events.ContextToStage, string(prev)))

	return &NavigationOutput{Draft: draft}, nil
}

// JumpTo moves directly to a stage. Jumps are bounded by the watermark:
// at most one stage past the furthest completed one, and only to stages
// on the draft's path. A rejected jump leaves the current stage as is.
func (s *service) JumpTo(ctx context.Context, draftID string, stage character.Stage) (*NavigationOutput, error) {
	draft, err := s.GetDraft(ctx, draftID)
	if err != nil {
		return nil, err
	}

	idx := character.StageIndex(draft.Path, stage)
	if idx < 0 {
		return nil, dnderr.Validationf("stage '%s' is not part of the current path", stage).
			WithMeta("stage", string(stage))
	}

	limit := 0
	if draft.FurthestCompleted != "" {
		limit = character.StageIndex(draft.Path, draft.FurthestCompleted) + 1
	}
	if idx > limit {
		return nil, dnderr.Validationf("stage '%s' has not been reached yet", stage).
			WithMeta("stage", string(stage)).
			WithMeta("furthest_completed", string(draft.FurthestCompleted))
	}

	from := draft.CurrentStage
	draft.CurrentStage = stage

	if err := s.draftRepo.Update(ctx, draft); err != nil {
		return nil, dnderr.Wrap(err, "failed to save draft")
	}

	s.emit(events.NewCreationEvent(events.StageJumped, draft).
		WithContext(events.ContextFromStage, string(from)).
		WithContext(events.ContextToStage, string(stage)))

	return &NavigationOutput{Draft: draft}, nil
}

// commitStage performs the side effects of leaving a stage. Equipment
// resolution and derived-stat refresh happen on the way out so later
// stages always see settled data.
func (s *service) commitStage(ctx context.Context, draft *character.CharacterDraft) error {
	switch draft.CurrentStage {
	case character.StageEquipment:
		inventory, err := s.resolveEquipment(ctx, draft)
		if err != nil {
			return err
		}
		draft.Inventory = inventory
		return s.refreshDerived(ctx, draft)
	case character.StageClass, character.StageIdentity, character.StageAbilities:
		return s.refreshDerived(ctx, draft)
	default:
		return nil
	}
}

// refreshDerived recomputes the draft's derived block from whatever is
// known so far. Unset class or race keys leave those inputs nil and the
// engine falls back to its defaults.
func (s *service) refreshDerived(_ context.Context, draft *character.CharacterDraft) error {
	var class *rulebook.Class
	if draft.ClassKey != "" {
		c, err := s.catalog.GetClass(draft.ClassKey)
		if err != nil {
			return dnderr.Wrapf(err, "failed to get class '%s'", draft.ClassKey)
		}
		class = c
	}

	var race *rulebook.Race
	if draft.RaceKey != "" {
		r, err := s.catalog.GetRace(draft.RaceKey)
		if err != nil {
			return dnderr.Wrapf(err, "failed to get race '%s'", draft.RaceKey)
		}
		race = r
	}

	derived := character.ComputeDerived(draft, class, race)
	draft.Derived = &derived
	return nil
}
