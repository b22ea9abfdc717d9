package rulebook

import (
	"github.com/KirkDiggler/character-forge-discord/internal/domain/shared"
)

// Class carries everything the wizard needs to present and validate a
// class choice: hit die for HP, the proficiency skill picks, level-1
// feature choices, starting equipment, and the spellcasting shape.
type Class struct {
	Key            string           `json:"key"`
	Name           string           `json:"name"`
	Description    string           `json:"description,omitempty"`
	HitDie         int              `json:"hit_die"`
	PrimaryAbility shared.Attribute `json:"primary_ability"`

	SkillChoice      SkillChoice       `json:"skill_choice"`
	FeatureChoices   []FeatureChoice   `json:"feature_choices,omitempty"`
	DefaultEquipment []ItemRef         `json:"default_equipment"`
	EquipmentChoices []EquipmentChoice `json:"equipment_choices"`
}

// SkillChoice is the class's skill proficiency decision: choose Count
// from Options, no duplicates.
type SkillChoice struct {
	Count   int      `json:"count"`
	Options []string `json:"options"`
}

// FeatureChoice is a level-1 class feature that requires a decision
// (fighting style, divine domain, favored enemy). Each carries its own
// option list; exactly one option is chosen per feature.
type FeatureChoice struct {
	Key     string          `json:"key"`
	Name    string          `json:"name"`
	Options []FeatureOption `json:"options"`
}

// FeatureOption is one selectable outcome of a feature choice.
type FeatureOption struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// KeyAbility returns the class's spellcasting or primary ability,
// falling back to the standard table when the catalog omits it.
func (c *Class) KeyAbility() shared.Attribute {
	if c.PrimaryAbility != shared.AttributeNone {
		return c.PrimaryAbility
	}

	switch c.Key {
	case "barbarian", "fighter", "paladin":
		return shared.AttributeStrength
	case "monk", "ranger", "rogue":
		return shared.AttributeDexterity
	case "cleric", "druid":
		return shared.AttributeWisdom
	case "wizard":
		return shared.AttributeIntelligence
	case "bard", "sorcerer", "warlock":
		return shared.AttributeCharisma
	default:
		return shared.AttributeNone
	}
}
