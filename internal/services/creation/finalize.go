package creation

import (
	"context"
	"time"

	"github.com/KirkDiggler/character-forge-discord/internal/domain/character"
	"github.com/KirkDiggler/character-forge-discord/internal/domain/events"
	"github.com/KirkDiggler/character-forge-discord/internal/domain/rulebook"
	"github.com/KirkDiggler/character-forge-discord/internal/domain/shared"
	dnderr "github.com/KirkDiggler/character-forge-discord/internal/errors"
)

// FinalizeDraft turns a review-complete draft into a stored character,
// deletes the draft, and announces the result. Every stage on the
// draft's path is revalidated first; a draft gutted by a late upstream
// change cannot slip through.
func (s *service) FinalizeDraft(ctx context.Context, draftID string) (*FinalizeDraftOutput, error) {
	draft, err := s.GetDraft(ctx, draftID)
	if err != nil {
		return nil, err
	}

	if draft.CurrentStage != character.StageReview {
		return nil, dnderr.Validation("finish the wizard before finalizing").
			WithMeta("stage", string(draft.CurrentStage))
	}
	for _, stage := range character.StageSequence(draft.Path) {
		if err := s.validateStage(ctx, draft, stage); err != nil {
			return nil, err
		}
	}

	var char *character.Character
	if draft.Path == character.PathPremade {
		char, err = s.buildPremadeCharacter(ctx, draft)
	} else {
		char, err = s.buildCustomCharacter(ctx, draft)
	}
	if err != nil {
		return nil, err
	}

	if err := s.characterRepo.Create(ctx, char); err != nil {
		return nil, dnderr.Wrap(err, "failed to store character")
	}
	if err := s.draftRepo.Delete(ctx, draft.ID); err != nil {
		// The character is stored; a draft that lingers past its
		// finalization only costs its TTL.
		s.log.Warn("failed to delete finalized draft",
			"draft_id", draft.ID,
			"error", err)
	}

	s.emit(events.NewCreationEvent(events.DraftFinalized, draft).
		WithContext(events.ContextCharacterID, char.ID).
		WithContext(events.ContextCharacterName, char.Name))

	return &FinalizeDraftOutput{Character: char}, nil
}

// buildCustomCharacter assembles the storage record from a completed
// custom-path draft.
func (s *service) buildCustomCharacter(ctx context.Context, draft *character.CharacterDraft) (*character.Character, error) {
	class, err := s.catalog.GetClass(draft.ClassKey)
	if err != nil {
		return nil, dnderr.Wrapf(err, "failed to get class '%s'", draft.ClassKey)
	}
	race, err := s.catalog.GetRace(draft.RaceKey)
	if err != nil {
		return nil, dnderr.Wrapf(err, "failed to get race '%s'", draft.RaceKey)
	}
	background, err := s.catalog.GetBackground(draft.BackgroundKey)
	if err != nil {
		return nil, dnderr.Wrapf(err, "failed to get background '%s'", draft.BackgroundKey)
	}

	derived := character.ComputeDerived(draft, class, race)
	now := time.Now().UTC()

	char := &character.Character{
		ID:      s.uuidGenerator.New(),
		OwnerID: draft.OwnerID,
		RealmID: draft.RealmID,
		Status:  shared.CharacterStatusActive,

		Name:        draft.Name,
		Level:       1,
		Gender:      draft.Gender,
		Description: draft.Description,

		WorldKey:    draft.WorldKey,
		CampaignKey: draft.CampaignKey,

		RaceKey:       draft.RaceKey,
		RaceName:      race.Name,
		SubraceKey:    draft.SubraceKey,
		ClassKey:      draft.ClassKey,
		ClassName:     class.Name,
		BackgroundKey: draft.BackgroundKey,
		AlignmentKey:  draft.AlignmentKey,

		Attributes: attributesFrom(draft.FinalScores()),
		Skills:     mergeSkills(draft.Skills, background.SkillProficiencies),
		Features:   draft.FeatureChoices,
		Inventory:  draft.Inventory,

		HitPoints:        derived.HitPoints,
		MaxHitPoints:     derived.HitPoints,
		ArmorClass:       derived.ArmorClass,
		Initiative:       derived.Initiative,
		ProficiencyBonus: derived.ProficiencyBonus,
		Speed:            derived.Speed,

		CreatedAt: now,
		UpdatedAt: now,
	}

	char.Spellcasting = spellcastingFrom(draft.ClassKey, class, race, draft.Cantrips, draft.Spells)

	return char, nil
}

// buildPremadeCharacter assembles the storage record from the premade
// record itself, re-fetched so the stored sheet always matches the
// roster even if the draft's copy predates an edit.
func (s *service) buildPremadeCharacter(ctx context.Context, draft *character.CharacterDraft) (*character.Character, error) {
	premade, err := s.catalog.GetPremade(draft.PremadeKey)
	if err != nil {
		return nil, dnderr.Wrapf(err, "failed to get premade '%s'", draft.PremadeKey)
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

	scratch := &character.CharacterDraft{
		AbilityMethod:  character.AbilityMethodPointBuy,
		PointBuyScores: premade.AbilityScores,
		Inventory:      inventory,
	}
	derived := character.ComputeDerived(scratch, class, race)
	now := time.Now().UTC()

	char := &character.Character{
		ID:      s.uuidGenerator.New(),
		OwnerID: draft.OwnerID,
		RealmID: draft.RealmID,
		Status:  shared.CharacterStatusActive,

		Name:        premade.Name,
		Level:       1,
		Gender:      premade.Gender,
		Description: premade.Description,

		WorldKey:    draft.WorldKey,
		CampaignKey: draft.CampaignKey,

		RaceKey:       premade.RaceKey,
		RaceName:      race.Name,
		SubraceKey:    premade.SubraceKey,
		ClassKey:      premade.ClassKey,
		ClassName:     class.Name,
		BackgroundKey: premade.BackgroundKey,
		AlignmentKey:  premade.AlignmentKey,

		Attributes: attributesFrom(premade.AbilityScores),
		Skills:     premade.Skills,
		Features:   premade.FeatureChoices,
		Inventory:  inventory,

		HitPoints:        derived.HitPoints,
		MaxHitPoints:     derived.HitPoints,
		ArmorClass:       derived.ArmorClass,
		Initiative:       derived.Initiative,
		ProficiencyBonus: derived.ProficiencyBonus,
		Speed:            derived.Speed,

		CreatedAt: now,
		UpdatedAt: now,
	}

	char.Spellcasting = spellcastingFrom(premade.ClassKey, class, race, premade.Cantrips, premade.Spells)

	return char, nil
}

// attributesFrom pairs each final score with its modifier.
func attributesFrom(scores map[shared.Attribute]int) map[shared.Attribute]*character.AbilityScore {
	attributes := make(map[shared.Attribute]*character.AbilityScore, len(scores))
	for attr, score := range scores {
		attributes[attr] = character.NewAbilityScore(score)
	}
	return attributes
}

// mergeSkills appends background proficiencies after the class picks,
// dropping repeats.
func mergeSkills(classSkills, backgroundSkills []string) []string {
	merged := make([]string, 0, len(classSkills)+len(backgroundSkills))
	seen := make(map[string]bool, len(classSkills)+len(backgroundSkills))
	for _, skill := range classSkills {
		if !seen[skill] {
			seen[skill] = true
			merged = append(merged, skill)
		}
	}
	for _, skill := range backgroundSkills {
		if !seen[skill] {
			seen[skill] = true
			merged = append(merged, skill)
		}
	}
	return merged
}

// spellcastingFrom builds the spell block. Class casters use their own
// key ability; a racial cantrip borrows the reference class's.
func spellcastingFrom(classKey string, class *rulebook.Class, race *rulebook.Race, cantrips, spells []string) *character.SpellcastingInfo {
	if rulebook.IsSpellcaster(classKey) {
		return &character.SpellcastingInfo{
			Ability:  class.KeyAbility(),
			Cantrips: cantrips,
			Spells:   spells,
		}
	}
	if len(cantrips) > 0 && race != nil && race.CantripClass != "" {
		reference := rulebook.Class{Key: race.CantripClass}
		return &character.SpellcastingInfo{
			Ability:  reference.KeyAbility(),
			Cantrips: cantrips,
		}
	}
	return nil
}
