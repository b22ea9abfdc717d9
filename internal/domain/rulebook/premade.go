package rulebook

import (
	"github.com/KirkDiggler/character-forge-discord/internal/domain/shared"
)

// Premade is a ready-to-play level-1 character. Confirming one copies
// its record into the draft and skips the remaining build stages.
type Premade struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Description string `json:"description"`

	ClassKey      string `json:"class_key"`
	RaceKey       string `json:"race_key"`
	SubraceKey    string `json:"subrace_key,omitempty"`
	BackgroundKey string `json:"background_key"`
	AlignmentKey  string `json:"alignment_key"`
	Gender        string `json:"gender,omitempty"`

	AbilityScores  map[shared.Attribute]int `json:"ability_scores"`
	Skills         []string                 `json:"skills"`
	FeatureChoices map[string]string        `json:"feature_choices,omitempty"`
	Cantrips       []string                 `json:"cantrips,omitempty"`
	Spells         []string                 `json:"spells,omitempty"`
	Equipment      []ItemRef                `json:"equipment"`
}

// GetPremades returns the premade roster.
func GetPremades() []Premade {
	return []Premade{
		{
			Key:           "bruenor",
			Name:          "Bruenor Ironfist",
			Description:   "A gruff dwarven soldier who swings first and apologizes never.",
			ClassKey:      "fighter",
			RaceKey:       "dwarf",
			SubraceKey:    "hill-dwarf",
			BackgroundKey: "soldier",
			AlignmentKey:  "lawful-good",
			Gender:        "male",
			AbilityScores: map[shared.Attribute]int{
				shared.AttributeStrength:     15,
				shared.AttributeDexterity:    10,
				shared.AttributeConstitution: 14,
				shared.AttributeIntelligence: 8,
				shared.AttributeWisdom:       13,
				shared.AttributeCharisma:     12,
			},
			Skills:         []string{"athletics", "intimidation", "perception", "survival"},
			FeatureChoices: map[string]string{"fighting_style": "defense"},
			Equipment: []ItemRef{
				{Key: "chain-mail", Name: "Chain Mail", Type: ItemTypeArmor},
				{Key: "battleaxe", Name: "Battleaxe", Type: ItemTypeWeapon},
				{Key: "shield", Name: "Shield", Type: ItemTypeShield},
				{Key: "handaxe", Name: "Handaxe", Type: ItemTypeWeapon},
				{Key: "handaxe", Name: "Handaxe", Type: ItemTypeWeapon},
				{Key: "explorers-pack", Name: "Explorer's Pack", Type: ItemTypePack},
			},
		},
		{
			Key:           "mialee",
			Name:          "Mialee Galanodel",
			Description:   "A high elf wizard with a dead colleague's letter and unfinished research.",
			ClassKey:      "wizard",
			RaceKey:       "elf",
			SubraceKey:    "high-elf",
			BackgroundKey: "sage",
			AlignmentKey:  "neutral-good",
			Gender:        "female",
			AbilityScores: map[shared.Attribute]int{
				shared.AttributeStrength:     8,
				shared.AttributeDexterity:    14,
				shared.AttributeConstitution: 13,
				shared.AttributeIntelligence: 15,
				shared.AttributeWisdom:       12,
				shared.AttributeCharisma:     10,
			},
			Skills:   []string{"arcana", "history", "investigation", "insight"},
			Cantrips: []string{"fire-bolt", "mage-hand", "light"},
			Spells:   []string{"magic-missile", "shield", "mage-armor", "detect-magic", "sleep", "charm-person"},
			Equipment: []ItemRef{
				{Key: "quarterstaff", Name: "Quarterstaff", Type: ItemTypeWeapon},
				{Key: "component-pouch", Name: "Component Pouch", Type: ItemTypeGear},
				{Key: "scholars-pack", Name: "Scholar's Pack", Type: ItemTypePack},
				{Key: "spellbook", Name: "Spellbook", Type: ItemTypeGear},
			},
		},
		{
			Key:           "shadowstep",
			Name:          "Vex Shadowstep",
			Description:   "A halfling burglar one job away from an honest life, allegedly.",
			ClassKey:      "rogue",
			RaceKey:       "halfling",
			SubraceKey:    "lightfoot-halfling",
			BackgroundKey: "criminal",
			AlignmentKey:  "chaotic-neutral",
			AbilityScores: map[shared.Attribute]int{
				shared.AttributeStrength:     10,
				shared.AttributeDexterity:    15,
				shared.AttributeConstitution: 12,
				shared.AttributeIntelligence: 13,
				shared.AttributeWisdom:       8,
				shared.AttributeCharisma:     14,
			},
			Skills: []string{"stealth", "deception", "sleight-of-hand", "acrobatics", "perception", "persuasion"},
			Equipment: []ItemRef{
				{Key: "rapier", Name: "Rapier", Type: ItemTypeWeapon},
				{Key: "shortbow", Name: "Shortbow", Type: ItemTypeWeapon},
				{Key: "burglars-pack", Name: "Burglar's Pack", Type: ItemTypePack},
				{Key: "leather-armor", Name: "Leather Armor", Type: ItemTypeArmor},
				{Key: "dagger", Name: "Dagger", Type: ItemTypeWeapon},
				{Key: "dagger", Name: "Dagger", Type: ItemTypeWeapon},
				{Key: "thieves-tools", Name: "Thieves' Tools", Type: ItemTypeTool},
			},
		},
		{
			Key:           "seraphine",
			Name:          "Seraphine Dawnbringer",
			Description:   "A human acolyte who hears her goddess most clearly on the battlefield.",
			ClassKey:      "cleric",
			RaceKey:       "human",
			BackgroundKey: "acolyte",
			AlignmentKey:  "lawful-good",
			Gender:        "female",
			AbilityScores: map[shared.Attribute]int{
				shared.AttributeStrength:     13,
				shared.AttributeDexterity:    10,
				shared.AttributeConstitution: 14,
				shared.AttributeIntelligence: 8,
				shared.AttributeWisdom:       15,
				shared.AttributeCharisma:     12,
			},
			Skills:         []string{"insight", "religion", "medicine", "persuasion"},
			FeatureChoices: map[string]string{"divine_domain": "life"},
			Cantrips:       []string{"sacred-flame", "guidance", "thaumaturgy"},
			Spells:         []string{"cure-wounds", "bless", "guiding-bolt", "shield-of-faith"},
			Equipment: []ItemRef{
				{Key: "mace", Name: "Mace", Type: ItemTypeWeapon},
				{Key: "scale-mail", Name: "Scale Mail", Type: ItemTypeArmor},
				{Key: "shield", Name: "Shield", Type: ItemTypeShield},
				{Key: "priests-pack", Name: "Priest's Pack", Type: ItemTypePack},
				{Key: "holy-symbol", Name: "Holy Symbol", Type: ItemTypeGear},
			},
		},
	}
}

// GetPremade looks up a premade by key.
func GetPremade(key string) (Premade, bool) {
	for _, p := range GetPremades() {
		if p.Key == key {
			return p, true
		}
	}
	return Premade{}, false
}
