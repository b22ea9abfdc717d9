package creation

import (
	"context"

	"github.com/KirkDiggler/character-forge-discord/internal/domain/character"
	"github.com/KirkDiggler/character-forge-discord/internal/domain/events"
	"github.com/KirkDiggler/character-forge-discord/internal/domain/rulebook"
	dnderr "github.com/KirkDiggler/character-forge-discord/internal/errors"
)

// GetEquipmentOptions describes the equipment stage: the class's
// choice groups, the always-granted items, and the current picks.
func (s *service) GetEquipmentOptions(ctx context.Context, draftID string) (*EquipmentOptionsOutput, error) {
	draft, err := s.GetDraft(ctx, draftID)
	if err != nil {
		return nil, err
	}
	if draft.ClassKey == "" {
		return nil, dnderr.MissingDependency("choose a class before equipment").
			WithMeta("missing_stage", string(character.StageClass))
	}

	class, err := s.catalog.GetClass(draft.ClassKey)
	if err != nil {
		return nil, dnderr.Wrapf(err, "failed to get class '%s'", draft.ClassKey)
	}

	out := &EquipmentOptionsOutput{
		Choices:  class.EquipmentChoices,
		Defaults: class.DefaultEquipment,
		Selected: draft.EquipmentChoices,
	}
	if draft.BackgroundKey != "" {
		background, err := s.catalog.GetBackground(draft.BackgroundKey)
		if err != nil {
			return nil, dnderr.Wrapf(err, "failed to get background '%s'", draft.BackgroundKey)
		}
		out.BackgroundItems = background.StartingItems
	}
	return out, nil
}

// resolveEquipment builds the flat inventory: each group's chosen
// branch in group order, then the class defaults, then the background
// items. Duplicates are legitimate; two handaxes are two handaxes.
func (s *service) resolveEquipment(ctx context.Context, draft *character.CharacterDraft) ([]rulebook.ItemRef, error) {
	class, err := s.catalog.GetClass(draft.ClassKey)
	if err != nil {
		return nil, dnderr.Wrapf(err, "failed to get class '%s'", draft.ClassKey)
	}

	var backgroundItems []rulebook.ItemRef
	if draft.BackgroundKey != "" {
		background, err := s.catalog.GetBackground(draft.BackgroundKey)
		if err != nil {
			return nil, dnderr.Wrapf(err, "failed to get background '%s'", draft.BackgroundKey)
		}
		backgroundItems = background.StartingItems
	}

	var inventory []rulebook.ItemRef
	for _, choice := range class.EquipmentChoices {
		branch, ok := draft.EquipmentChoices[choice.ID]
		if !ok || branch < 0 || branch >= len(choice.Branches) {
			continue
		}
		inventory = append(inventory, s.resolveItems(ctx, draft, choice.Branches[branch].Items)...)
	}
	inventory = append(inventory, s.resolveItems(ctx, draft, class.DefaultEquipment)...)
	inventory = append(inventory, s.resolveItems(ctx, draft, backgroundItems)...)

	return inventory, nil
}

// resolveItems normalizes raw refs into classified inventory entries.
func (s *service) resolveItems(ctx context.Context, draft *character.CharacterDraft, items []rulebook.ItemRef) []rulebook.ItemRef {
	resolved := make([]rulebook.ItemRef, 0, len(items))
	for _, item := range items {
		resolved = append(resolved, s.resolveItem(ctx, draft, item))
	}
	return resolved
}

// resolveItem fills in an item's type from the equipment catalog. A
// lookup miss degrades to the unknown-item placeholder with a logged
// warning; the draft keeps its slot and never fails on a miss.
func (s *service) resolveItem(_ context.Context, draft *character.CharacterDraft, item rulebook.ItemRef) rulebook.ItemRef {
	if item.Type != "" {
		return item
	}
	if item.Key == "" {
		// Free-text entries carry no catalog identity to look up.
		item.Type = rulebook.ItemTypeGear
		return item
	}

	full, err := s.catalog.GetEquipment(item.Key)
	if err != nil || full == nil {
		s.log.Warn("equipment lookup missed, using placeholder",
			"key", item.Key,
			"draft_id", draft.ID,
			"error", err)
		s.emit(events.NewCreationEvent(events.CatalogFetchFailed, draft).
			WithContext(events.ContextResource, "equipment").
			WithContext(events.ContextResourceKey, item.Key).
			WithContext(events.ContextError, errorText(err)))
		return rulebook.UnknownItem(item.Key)
	}
	return *full
}

func errorText(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
