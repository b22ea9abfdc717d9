package creation

import (
	"context"

	"github.com/KirkDiggler/character-forge-discord/internal/domain/character"
	"github.com/KirkDiggler/character-forge-discord/internal/domain/rulebook"
	dnderr "github.com/KirkDiggler/character-forge-discord/internal/errors"
)

// GetFeatureOptions lists the class's level-1 feature decisions.
func (s *service) GetFeatureOptions(ctx context.Context, draftID string) ([]rulebook.FeatureChoice, error) {
	draft, err := s.GetDraft(ctx, draftID)
	if err != nil {
		return nil, err
	}
	if draft.ClassKey == "" {
		return nil, dnderr.MissingDependency("choose a class before class features").
			WithMeta("missing_stage", string(character.StageClass))
	}
	return rulebook.GetClassFeatureChoices(draft.ClassKey), nil
}

// GetSkillOptions describes the class skill decision and the current
// picks.
func (s *service) GetSkillOptions(ctx context.Context, draftID string) (*SkillOptionsOutput, error) {
	draft, err := s.GetDraft(ctx, draftID)
	if err != nil {
		return nil, err
	}
	if draft.ClassKey == "" {
		return nil, dnderr.MissingDependency("choose a class before skills").
			WithMeta("missing_stage", string(character.StageClass))
	}

	class, err := s.catalog.GetClass(draft.ClassKey)
	if err != nil {
		return nil, dnderr.Wrapf(err, "failed to get class '%s'", draft.ClassKey)
	}

	return &SkillOptionsOutput{
		Count:    class.SkillChoice.Count,
		Options:  class.SkillChoice.Options,
		Selected: draft.Skills,
	}, nil
}
