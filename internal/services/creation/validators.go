package creation

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/KirkDiggler/character-forge-discord/internal/domain/character"
	"github.com/KirkDiggler/character-forge-discord/internal/domain/rulebook"
	"github.com/KirkDiggler/character-forge-discord/internal/domain/shared"
	dnderr "github.com/KirkDiggler/character-forge-discord/internal/errors"
)

// maxNameLength bounds the character name in runes.
const maxNameLength = 50

// validateStage checks one stage's completion invariant. Validation
// errors are user-correctable; missing-dependency errors point at the
// earlier stage that must be completed first. Validators never mutate
// the draft.
func (s *service) validateStage(ctx context.Context, draft *character.CharacterDraft, stage character.Stage) error {
	switch stage {
	case character.StageWorld:
		return validateWorld(draft)
	case character.StageCampaign:
		return validateCampaign(draft)
	case character.StageCharacterType:
		return validateCharacterType(draft)
	case character.StagePremadeSelect:
		return validatePremadeSelect(draft)
	case character.StageClass:
		return validateClass(draft)
	case character.StageIdentity:
		return validateIdentity(draft)
	case character.StageAbilities:
		return validateAbilities(draft)
	case character.StageClassFeatures:
		return validateClassFeatures(draft)
	case character.StageSpells:
		return s.validateSpells(ctx, draft)
	case character.StageSkills:
		return s.validateSkills(ctx, draft)
	case character.StageEquipment:
		return s.validateEquipment(ctx, draft)
	case character.StageAlignment:
		return validateAlignment(draft)
	case character.StageReview:
		// Terminal; reaching it means every prior stage validated.
		return nil
	default:
		return dnderr.Internalf("no validator for stage '%s'", stage)
	}
}

func validateWorld(draft *character.CharacterDraft) error {
	if draft.WorldKey == "" {
		return dnderr.Validation("choose a world").
			WithMeta("field", "world")
	}
	return nil
}

func validateCampaign(draft *character.CharacterDraft) error {
	if draft.WorldKey == "" {
		return dnderr.MissingDependency("choose a world before a campaign").
			WithMeta("missing_stage", string(character.StageWorld))
	}
	if draft.CampaignKey == "" {
		return dnderr.Validation("choose a campaign").
			WithMeta("field", "campaign")
	}
	return nil
}

func validateCharacterType(draft *character.CharacterDraft) error {
	if draft.Path == character.PathUnset {
		return dnderr.Validation("choose a custom build or a premade hero").
			WithMeta("field", "path")
	}
	return nil
}

func validatePremadeSelect(draft *character.CharacterDraft) error {
	if draft.Path != character.PathPremade {
		return dnderr.MissingDependency("choose the premade path first").
			WithMeta("missing_stage", string(character.StageCharacterType))
	}
	if draft.PremadeKey == "" {
		return dnderr.Validation("pick a premade hero").
			WithMeta("field", "premade")
	}
	return nil
}

func validateClass(draft *character.CharacterDraft) error {
	if draft.ClassKey == "" {
		return dnderr.Validation("choose a class").
			WithMeta("field", "class")
	}
	return nil
}

func validateIdentity(draft *character.CharacterDraft) error {
	if draft.RaceKey == "" {
		return dnderr.Validation("choose a race").
			WithMeta("field", "race")
	}
	if draft.BackgroundKey == "" {
		return dnderr.Validation("choose a background").
			WithMeta("field", "background")
	}
	name := strings.TrimSpace(draft.Name)
	if name == "" {
		return dnderr.Validation("name your character").
			WithMeta("field", "name")
	}
	if utf8.RuneCountInString(name) > maxNameLength {
		return dnderr.Validationf("names run %d characters at most", maxNameLength).
			WithMeta("field", "name")
	}
	return nil
}

func validateAbilities(draft *character.CharacterDraft) error {
	switch draft.AbilityMethod {
	case character.AbilityMethodPointBuy:
		return validatePointBuy(draft)
	case character.AbilityMethodStandardArray, character.AbilityMethodDiceRoll:
		return validateAssignments(draft)
	default:
		return dnderr.Validation("choose how to determine ability scores").
			WithMeta("field", "ability_method")
	}
}

func validatePointBuy(draft *character.CharacterDraft) error {
	for _, attr := range shared.Attributes {
		score, ok := draft.PointBuyScores[attr]
		if !ok {
			return dnderr.Validationf("%s has no score yet", attr.FullName()).
				WithMeta("field", "ability_scores")
		}
		if score < character.PointBuyMin || score > character.PointBuyMax {
			return dnderr.Validationf("%s must stay between %d and %d", attr.FullName(), character.PointBuyMin, character.PointBuyMax).
				WithMeta("field", "ability_scores")
		}
	}

	spent := character.PointBuyTotal(draft.PointBuyScores)
	if spent > character.PointBuyBudget {
		return dnderr.Validationf("spread costs %d points, the budget is %d", spent, character.PointBuyBudget).
			WithMeta("field", "ability_scores")
	}
	if spent < character.PointBuyBudget {
		return dnderr.Validationf("spend your remaining %d points", character.PointBuyBudget-spent).
			WithMeta("field", "ability_scores")
	}
	return nil
}

// validateAssignments requires a full bijection: every ability has a
// value, every assigned ID names a real roll, and no roll is placed on
// two abilities. Standard array and dice rolls share this shape.
func validateAssignments(draft *character.CharacterDraft) error {
	if len(draft.AbilityRolls) == 0 {
		return dnderr.Validation("roll your ability scores first").
			WithMeta("field", "ability_scores")
	}

	known := make(map[string]bool, len(draft.AbilityRolls))
	for _, roll := range draft.AbilityRolls {
		known[roll.ID] = true
	}

	used := make(map[string]shared.Attribute, len(shared.Attributes))
	for _, attr := range shared.Attributes {
		rollID, ok := draft.AbilityAssignments[attr]
		if !ok {
			return dnderr.Validationf("assign a value to %s", attr.FullName()).
				WithMeta("field", "ability_scores")
		}
		if !known[rollID] {
			return dnderr.Validationf("%s is assigned a value that no longer exists", attr.FullName()).
				WithMeta("field", "ability_scores")
		}
		if other, taken := used[rollID]; taken {
			return dnderr.Validationf("%s and %s share the same value", other.FullName(), attr.FullName()).
				WithMeta("field", "ability_scores")
		}
		used[rollID] = attr
	}
	return nil
}

func validateClassFeatures(draft *character.CharacterDraft) error {
	if draft.ClassKey == "" {
		return dnderr.MissingDependency("choose a class before class features").
			WithMeta("missing_stage", string(character.StageClass))
	}

	for _, choice := range rulebook.GetClassFeatureChoices(draft.ClassKey) {
		picked, ok := draft.FeatureChoices[choice.Key]
		if !ok || picked == "" {
			return dnderr.Validationf("choose a %s", strings.ToLower(choice.Name)).
				WithMeta("field", choice.Key)
		}
		if !featureHasOption(choice, picked) {
			return dnderr.Validationf("'%s' is not an option for %s", picked, strings.ToLower(choice.Name)).
				WithMeta("field", choice.Key)
		}
	}
	return nil
}

func featureHasOption(choice rulebook.FeatureChoice, key string) bool {
	for _, option := range choice.Options {
		if option.Key == key {
			return true
		}
	}
	return false
}

func (s *service) validateSpells(ctx context.Context, draft *character.CharacterDraft) error {
	sc, err := s.loadSpellContext(ctx, draft)
	if err != nil {
		return err
	}

	if err := checkSpellPicks("cantrip", draft.Cantrips, sc.Cantrips, sc.Quotas.Cantrips); err != nil {
		return err
	}
	return checkSpellPicks("spell", draft.Spells, sc.Spells, sc.Quotas.Spells)
}

func checkSpellPicks(kind string, selected []string, eligible []*rulebook.SpellReference, quota int) error {
	keys := make(map[string]bool, len(eligible))
	for _, ref := range eligible {
		keys[ref.Key] = true
	}

	seen := make(map[string]bool, len(selected))
	for _, key := range selected {
		if seen[key] {
			return dnderr.Validationf("%s '%s' is picked twice", kind, key).
				WithMeta("field", kind+"s")
		}
		seen[key] = true
		if !keys[key] {
			return dnderr.Validationf("%s '%s' is not on your list", kind, key).
				WithMeta("field", kind+"s")
		}
	}

	if len(selected) != quota {
		return dnderr.Validationf("pick %d %ss (%d picked)", quota, kind, len(selected)).
			WithMeta("field", kind+"s")
	}
	return nil
}

func (s *service) validateSkills(_ context.Context, draft *character.CharacterDraft) error {
	if draft.ClassKey == "" {
		return dnderr.MissingDependency("choose a class before skills").
			WithMeta("missing_stage", string(character.StageClass))
	}

	class, err := s.catalog.GetClass(draft.ClassKey)
	if err != nil {
		return dnderr.Wrapf(err, "failed to get class '%s'", draft.ClassKey)
	}

	options := make(map[string]bool, len(class.SkillChoice.Options))
	for _, skill := range class.SkillChoice.Options {
		options[skill] = true
	}

	seen := make(map[string]bool, len(draft.Skills))
	for _, skill := range draft.Skills {
		if seen[skill] {
			return dnderr.Validationf("skill '%s' is picked twice", skill).
				WithMeta("field", "skills")
		}
		seen[skill] = true
		if !options[skill] {
			return dnderr.Validationf("'%s' is not a %s skill", skill, class.Name).
				WithMeta("field", "skills")
		}
	}

	if len(draft.Skills) != class.SkillChoice.Count {
		return dnderr.Validationf("pick %d skills (%d picked)", class.SkillChoice.Count, len(draft.Skills)).
			WithMeta("field", "skills")
	}
	return nil
}

func (s *service) validateEquipment(_ context.Context, draft *character.CharacterDraft) error {
	if draft.ClassKey == "" {
		return dnderr.MissingDependency("choose a class before equipment").
			WithMeta("missing_stage", string(character.StageClass))
	}

	class, err := s.catalog.GetClass(draft.ClassKey)
	if err != nil {
		return dnderr.Wrapf(err, "failed to get class '%s'", draft.ClassKey)
	}

	for _, choice := range class.EquipmentChoices {
		branch, ok := draft.EquipmentChoices[choice.ID]
		if !ok {
			return dnderr.Validationf("decide: %s", choice.Prompt).
				WithMeta("field", choice.ID)
		}
		if branch < 0 || branch >= len(choice.Branches) {
			return dnderr.Validationf("pick one of the offered options for: %s", choice.Prompt).
				WithMeta("field", choice.ID)
		}
	}
	return nil
}

func validateAlignment(draft *character.CharacterDraft) error {
	if draft.AlignmentKey == "" {
		return dnderr.Validation("choose an alignment").
			WithMeta("field", "alignment")
	}
	return nil
}
