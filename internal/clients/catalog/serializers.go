package catalog

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/character-forge-discord/internal/domain/rulebook"
	"github.com/KirkDiggler/character-forge-discord/internal/domain/shared"
	apiDnd5e "github.com/fadedpez/dnd5e-api/clients/dnd5e"
	apiEntities "github.com/fadedpez/dnd5e-api/entities"
)

func apiReferenceItemToClass(input *apiEntities.ReferenceItem) *rulebook.Class {
	return &rulebook.Class{
		Key:  input.Key,
		Name: input.Name,
	}
}

func apiReferenceItemsToClasses(input []*apiEntities.ReferenceItem) []*rulebook.Class {
	output := make([]*rulebook.Class, len(input))
	for i, apiClass := range input {
		output[i] = apiReferenceItemToClass(apiClass)
	}
	return output
}

func apiClassToClass(input *apiEntities.Class) *rulebook.Class {
	return &rulebook.Class{
		Key:              input.Key,
		Name:             input.Name,
		HitDie:           input.HitDie,
		SkillChoice:      extractSkillChoice(input.ProficiencyChoices),
		FeatureChoices:   rulebook.GetClassFeatureChoices(input.Key),
		DefaultEquipment: apiStartingEquipmentToItems(input.StartingEquipment),
		EquipmentChoices: apiEquipmentOptionsToChoices(input.Key, input.StartingEquipmentOptions),
	}
}

// extractSkillChoice finds the proficiency choice whose options are
// skills and flattens it to the canonical count-plus-options shape
func extractSkillChoice(choices []*apiEntities.ChoiceOption) rulebook.SkillChoice {
	for _, choice := range choices {
		if choice == nil || choice.OptionList == nil {
			continue
		}

		var skills []string
		for _, option := range choice.OptionList.Options {
			ref, ok := option.(*apiEntities.ReferenceOption)
			if !ok || ref.Reference == nil {
				continue
			}
			if skillName, found := strings.CutPrefix(ref.Reference.Key, "skill-"); found {
				skills = append(skills, skillName)
			}
		}

		if len(skills) > 0 {
			return rulebook.SkillChoice{
				Count:   choice.ChoiceCount,
				Options: skills,
			}
		}
	}

	return rulebook.SkillChoice{}
}

func apiStartingEquipmentToItems(input []*apiEntities.StartingEquipment) []rulebook.ItemRef {
	var items []rulebook.ItemRef
	for _, se := range input {
		if se == nil || se.Equipment == nil {
			continue
		}

		quantity := se.Quantity
		if quantity < 1 {
			quantity = 1
		}
		for i := 0; i < quantity; i++ {
			items = append(items, rulebook.ItemRef{
				Key:  se.Equipment.Key,
				Name: se.Equipment.Name,
			})
		}
	}
	return items
}

// apiEquipmentOptionsToChoices flattens the API's nested equipment
// options into the canonical two-branch choice groups. Choices that
// cannot offer two branches are dropped.
func apiEquipmentOptionsToChoices(classKey string, input []*apiEntities.ChoiceOption) []rulebook.EquipmentChoice {
	var output []rulebook.EquipmentChoice
	for i, choice := range input {
		if choice == nil || choice.OptionList == nil {
			continue
		}
		if len(choice.OptionList.Options) < rulebook.BranchCount {
			continue
		}

		output = append(output, rulebook.EquipmentChoice{
			ID:     fmt.Sprintf("%s-equipment-%d", classKey, i),
			Prompt: choice.Description,
			Branches: []rulebook.EquipmentBranch{
				{Label: "group", Items: optionItems(choice.OptionList.Options[0])},
				{Label: "or", Items: optionItems(choice.OptionList.Options[1])},
			},
		})
	}
	return output
}

// optionItems flattens one side of an equipment option into items.
// Nested category choices ("a martial weapon") become a single
// descriptive entry rather than a sub-menu.
func optionItems(input apiEntities.Option) []rulebook.ItemRef {
	switch input.GetOptionType() {
	case apiEntities.OptionTypeReference:
		item, ok := input.(*apiEntities.ReferenceOption)
		if !ok || item.Reference == nil {
			return nil
		}
		return []rulebook.ItemRef{{Key: item.Reference.Key, Name: item.Reference.Name}}
	case apiEntities.OptionalTypeCountedReference:
		item, ok := input.(*apiEntities.CountedReferenceOption)
		if !ok || item.Reference == nil {
			return nil
		}
		count := item.Count
		if count < 1 {
			count = 1
		}
		items := make([]rulebook.ItemRef, count)
		for i := range items {
			items[i] = rulebook.ItemRef{Key: item.Reference.Key, Name: item.Reference.Name}
		}
		return items
	case apiEntities.OptionTypeMultiple:
		item, ok := input.(*apiEntities.MultipleOption)
		if !ok {
			return nil
		}
		var items []rulebook.ItemRef
		for _, sub := range item.Items {
			items = append(items, optionItems(sub)...)
		}
		return items
	case apiEntities.OptionTypeChoice:
		item, ok := input.(*apiEntities.ChoiceOption)
		if !ok {
			return nil
		}
		return []rulebook.ItemRef{{Name: item.Description}}
	default:
		return nil
	}
}

func apiReferenceItemToRace(input *apiEntities.ReferenceItem) *rulebook.Race {
	return &rulebook.Race{
		Key:  input.Key,
		Name: input.Name,
	}
}

func apiReferenceItemsToRaces(input []*apiEntities.ReferenceItem) []*rulebook.Race {
	output := make([]*rulebook.Race, len(input))
	for i, apiRace := range input {
		output[i] = apiReferenceItemToRace(apiRace)
	}
	return output
}

func apiRaceToRace(input *apiEntities.Race) *rulebook.Race {
	race := &rulebook.Race{
		Key:            input.Key,
		Name:           input.Name,
		Speed:          input.Speed,
		AbilityBonuses: apiAbilityBonusesToAbilityBonuses(input.AbilityBonuses),
	}

	if extras, ok := rulebook.GetRaceExtras(input.Key); ok {
		race.Traits = extras.Traits
		race.Subraces = extras.Subraces
		race.GrantsCantrip = extras.GrantsCantrip
		race.CantripClass = extras.CantripClass
	}

	return race
}

func apiAbilityBonusesToAbilityBonuses(input []*apiEntities.AbilityBonus) []*shared.AbilityBonus {
	var output []*shared.AbilityBonus
	for _, apiBonus := range input {
		if bonus := apiAbilityBonusToAbilityBonus(apiBonus); bonus != nil {
			output = append(output, bonus)
		}
	}
	return output
}

func apiAbilityBonusToAbilityBonus(input *apiEntities.AbilityBonus) *shared.AbilityBonus {
	if input == nil || input.AbilityScore == nil {
		return nil
	}

	attribute := shared.ParseAttribute(input.AbilityScore.Key)
	if attribute == shared.AttributeNone {
		return nil
	}

	return &shared.AbilityBonus{
		Attribute: attribute,
		Bonus:     input.Bonus,
	}
}

func apiReferenceItemsToSpellReferences(input []*apiEntities.ReferenceItem) []*rulebook.SpellReference {
	output := make([]*rulebook.SpellReference, len(input))
	for i, ref := range input {
		output[i] = &rulebook.SpellReference{
			Key:  ref.Key,
			Name: ref.Name,
		}
	}
	return output
}

func apiSpellToSpell(input *apiEntities.Spell) *rulebook.Spell {
	spell := &rulebook.Spell{
		Key:     input.Key,
		Name:    input.Name,
		Level:   input.SpellLevel,
		Classes: referenceItemKeys(input.SpellClasses),
	}

	if input.SpellSchool != nil {
		spell.School = input.SpellSchool.Name
	}

	return spell
}

func referenceItemKeys(input []*apiEntities.ReferenceItem) []string {
	keys := make([]string, len(input))
	for i, ref := range input {
		keys[i] = ref.Key
	}
	return keys
}

func apiEquipmentToItemRef(input apiDnd5e.EquipmentInterface) *rulebook.ItemRef {
	if input == nil {
		return nil
	}

	switch equip := input.(type) {
	case *apiEntities.Weapon:
		return &rulebook.ItemRef{
			Key:  equip.Key,
			Name: equip.Name,
			Type: rulebook.ItemTypeWeapon,
		}
	case *apiEntities.Armor:
		itemType := rulebook.ItemTypeArmor
		if strings.EqualFold(equip.ArmorCategory, "shield") {
			itemType = rulebook.ItemTypeShield
		}
		return &rulebook.ItemRef{
			Key:  equip.Key,
			Name: equip.Name,
			Type: itemType,
		}
	case *apiEntities.Equipment:
		return &rulebook.ItemRef{
			Key:  equip.Key,
			Name: equip.Name,
			Type: classifyBasicEquipment(equip.Key),
		}
	default:
		// Silently handle unknown equipment shapes
		return nil
	}
}

// classifyBasicEquipment buckets non-weapon non-armor items by key
// convention. Only armor and shields matter to derived stats; the
// rest is presentation.
func classifyBasicEquipment(key string) rulebook.ItemType {
	switch {
	case strings.HasSuffix(key, "-pack"):
		return rulebook.ItemTypePack
	case strings.HasSuffix(key, "-tools"), strings.HasSuffix(key, "-kit"), strings.HasSuffix(key, "-supplies"):
		return rulebook.ItemTypeTool
	default:
		return rulebook.ItemTypeGear
	}
}
