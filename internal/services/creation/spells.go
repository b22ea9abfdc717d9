package creation

import (
	"context"
	"sort"

	"github.com/KirkDiggler/character-forge-discord/internal/domain/character"
	"github.com/KirkDiggler/character-forge-discord/internal/domain/rulebook"
	dnderr "github.com/KirkDiggler/character-forge-discord/internal/errors"
)

// spellQuotas is the per-category allowance for the spells stage.
type spellQuotas struct {
	Cantrips int
	Spells   int
}

// spellContext is everything the spells stage needs: eligible lists
// sorted by name, plus the quotas the picks must hit exactly.
type spellContext struct {
	Cantrips []*rulebook.SpellReference
	Spells   []*rulebook.SpellReference
	Quotas   spellQuotas
}

// GetSpellOptions lists the eligible cantrips and level-1 spells with
// their quotas and the draft's current picks.
func (s *service) GetSpellOptions(ctx context.Context, draftID string) (*SpellOptionsOutput, error) {
	draft, err := s.GetDraft(ctx, draftID)
	if err != nil {
		return nil, err
	}

	sc, err := s.loadSpellContext(ctx, draft)
	if err != nil {
		return nil, err
	}

	return &SpellOptionsOutput{
		Cantrips:         sc.Cantrips,
		Spells:           sc.Spells,
		CantripQuota:     sc.Quotas.Cantrips,
		SpellQuota:       sc.Quotas.Spells,
		SelectedCantrips: draft.Cantrips,
		SelectedSpells:   draft.Spells,
	}, nil
}

// loadSpellContext resolves the draft's spell situation. Casters get
// their class lists; non-casters get one cantrip slot from the racial
// grant's reference class, or nothing at all.
func (s *service) loadSpellContext(_ context.Context, draft *character.CharacterDraft) (*spellContext, error) {
	if draft.ClassKey == "" {
		return nil, dnderr.MissingDependency("choose a class before spells").
			WithMeta("missing_stage", string(character.StageClass))
	}

	progression := rulebook.ProgressionFor(draft.ClassKey)
	if progression.Kind != rulebook.CasterNone {
		bundle, err := s.catalog.LoadClassBundle(draft.ClassKey)
		if err != nil {
			return nil, dnderr.Wrapf(err, "failed to load spell lists for '%s'", draft.ClassKey)
		}
		return &spellContext{
			Cantrips: sortedByName(bundle.Cantrips),
			Spells:   sortedByName(bundle.Spells),
			Quotas:   quotasFor(draft, progression, bundle.Class),
		}, nil
	}

	if draft.RaceKey != "" {
		race, err := s.catalog.GetRace(draft.RaceKey)
		if err != nil {
			return nil, dnderr.Wrapf(err, "failed to get race '%s'", draft.RaceKey)
		}
		if race.GrantsCantrip && race.CantripClass != "" {
			cantrips, err := s.catalog.ListSpellsByClassAndLevel(race.CantripClass, 0)
			if err != nil {
				return nil, dnderr.Wrapf(err, "failed to load cantrips for '%s'", race.CantripClass)
			}
			return &spellContext{
				Cantrips: sortedByName(cantrips),
				Quotas:   spellQuotas{Cantrips: 1},
			}, nil
		}
	}

	return &spellContext{}, nil
}

// quotasFor computes the allowance from the class progression. Known
// casters read a fixed table; prepared casters take key ability
// modifier + 1, minimum one.
func quotasFor(draft *character.CharacterDraft, progression rulebook.SpellProgression, class *rulebook.Class) spellQuotas {
	switch progression.Kind {
	case rulebook.CasterKnown:
		return spellQuotas{Cantrips: progression.Cantrips, Spells: progression.SpellsKnown}
	case rulebook.CasterPrepared:
		quota := 1
		if class != nil {
			if score, ok := draft.FinalScores()[class.KeyAbility()]; ok {
				if prepared := character.Modifier(score) + 1; prepared > quota {
					quota = prepared
				}
			}
		}
		return spellQuotas{Cantrips: progression.Cantrips, Spells: quota}
	default:
		return spellQuotas{}
	}
}

// sortedByName copies references into name order for deterministic
// presentation.
func sortedByName(refs []*rulebook.SpellReference) []*rulebook.SpellReference {
	sorted := make([]*rulebook.SpellReference, len(refs))
	copy(sorted, refs)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Name < sorted[j].Name
	})
	return sorted
}
