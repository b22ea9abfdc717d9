package creation

import (
	"context"

	"github.com/KirkDiggler/character-forge-discord/internal/domain/character"
	"github.com/KirkDiggler/character-forge-discord/internal/domain/events"
	dnderr "github.com/KirkDiggler/character-forge-discord/internal/errors"
)

// SelectPremade copies a premade hero's record onto the draft. Every
// copied field is overwritten wholesale, so picking a different
// premade leaves nothing of the previous one behind. The caller still
// advances to reach review.
func (s *service) SelectPremade(ctx context.Context, draftID, premadeKey string) (*character.CharacterDraft, error) {
	if premadeKey == "" {
		return nil, dnderr.InvalidArgument("premade key is required")
	}

	draft, err := s.GetDraft(ctx, draftID)
	if err != nil {
		return nil, err
	}
	if draft.Path != character.PathPremade {
		return nil, dnderr.MissingDependency("choose the premade path first").
			WithMeta("missing_stage", string(character.StageCharacterType))
	}

	premade, err := s.catalog.GetPremade(premadeKey)
	if err != nil {
		return nil, dnderr.Wrapf(err, "failed to get premade '%s'", premadeKey)
	}
	class, err := s.catalog.GetClass(premade.ClassKey)
	if err != nil {
		return nil, dnderr.Wrapf(err, "failed to get class '%s'", premade.ClassKey)
	}
	race, err := s.catalog.GetRace(premade.RaceKey)
	if err != nil {
		return nil, dnderr.Wrapf(err, "failed to get race '%s'", premade.RaceKey)
	}

	inventory := s.resolveItems(ctx, draft, premade.Equipment)

	// Premade scores are authored finals; a scratch draft carries them
	// through the derived engine unchanged.
	scratch := &character.CharacterDraft{
		AbilityMethod:  character.AbilityMethodPointBuy,
		PointBuyScores: premade.AbilityScores,
		Inventory:      inventory,
	}
	derived := character.ComputeDerived(scratch, class, race)

	draft.PremadeKey = premade.Key
	draft.ClassKey = premade.ClassKey
	draft.RaceKey = premade.RaceKey
	draft.SubraceKey = premade.SubraceKey
	draft.BackgroundKey = premade.BackgroundKey
	draft.AlignmentKey = premade.AlignmentKey
	draft.Name = premade.Name
	draft.Gender = premade.Gender
	draft.Description = premade.Description
	draft.Skills = premade.Skills
	draft.FeatureChoices = premade.FeatureChoices
	draft.Cantrips = premade.Cantrips
	draft.Spells = premade.Spells
	draft.Inventory = inventory
	draft.Derived = &derived

	if err := s.draftRepo.Update(ctx, draft); err != nil {
		return nil, dnderr.Wrap(err, "failed to save draft")
	}

	s.emit(events.NewCreationEvent(events.DraftUpdated, draft))
	return draft, nil
}
