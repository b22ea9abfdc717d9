package rulebook

// FightingStyle represents a combat style that can be chosen by certain classes
type FightingStyle struct {
	Key         string   `json:"key"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Classes     []string `json:"classes"` // Classes that can choose this style
}

// GetFightingStyles returns all available fighting styles
func GetFightingStyles() []FightingStyle {
	return []FightingStyle{
		{
			Key:         "archery",
			Name:        "Archery",
			Description: "You gain a +2 bonus to attack rolls you make with ranged weapons.",
			Classes:     []string{"fighter", "ranger"},
		},
		{
			Key:         "defense",
			Name:        "Defense",
			Description: "While you are wearing armor, you gain a +1 bonus to AC.",
			Classes:     []string{"fighter", "ranger", "paladin"},
		},
		{
			Key:         "dueling",
			Name:        "Dueling",
			Description: "+2 damage when wielding a melee weapon in one hand with no other weapons.",
			Classes:     []string{"fighter", "ranger", "paladin"},
		},
		{
			Key:         "great_weapon_fighting",
			Name:        "Great Weapon Fighting",
			Description: "Reroll 1-2 on damage dice with two-handed or versatile weapons.",
			Classes:     []string{"fighter", "paladin"},
		},
		{
			Key:         "protection",
			Name:        "Protection",
			Description: "Use reaction with shield to impose disadvantage on an attack near you.",
			Classes:     []string{"fighter", "paladin"},
		},
		{
			Key:         "two_weapon_fighting",
			Name:        "Two-Weapon Fighting",
			Description: "Add ability modifier to off-hand weapon damage.",
			Classes:     []string{"fighter", "ranger"},
		},
	}
}

// GetFightingStyleChoice returns the fighting style decision for a class,
// or nil when the class has no style pick at level 1
func GetFightingStyleChoice(classKey string) *FeatureChoice {
	var options []FeatureOption
	for _, style := range GetFightingStyles() {
		for _, class := range style.Classes {
			if class == classKey {
				options = append(options, FeatureOption{
					Key:         style.Key,
					Name:        style.Name,
					Description: style.Description,
				})
				break
			}
		}
	}

	if len(options) == 0 {
		return nil
	}

	return &FeatureChoice{
		Key:     "fighting_style",
		Name:    "Fighting Style",
		Options: options,
	}
}

// GetDivineDomainChoice returns the cleric's level-1 domain decision
func GetDivineDomainChoice() *FeatureChoice {
	return &FeatureChoice{
		Key:  "divine_domain",
		Name: "Divine Domain",
		Options: []FeatureOption{
			{Key: "knowledge", Name: "Knowledge Domain", Description: "Learning, lore, and two bonus skill proficiencies."},
			{Key: "life", Name: "Life Domain", Description: "Healing magic and heavy armor proficiency."},
			{Key: "light", Name: "Light Domain", Description: "Fire and radiance, with the Warding Flare reaction."},
			{Key: "nature", Name: "Nature Domain", Description: "The wilds, with a bonus druid cantrip and heavy armor."},
			{Key: "tempest", Name: "Tempest Domain", Description: "Storm and thunder, with Wrath of the Storm."},
			{Key: "trickery", Name: "Trickery Domain", Description: "Stealth and misdirection, with Blessing of the Trickster."},
			{Key: "war", Name: "War Domain", Description: "Battle prowess, martial weapons, and War Priest attacks."},
		},
	}
}

// GetFavoredEnemyChoice returns the ranger's level-1 favored enemy decision
func GetFavoredEnemyChoice() *FeatureChoice {
	return &FeatureChoice{
		Key:  "favored_enemy",
		Name: "Favored Enemy",
		Options: []FeatureOption{
			{Key: "aberrations", Name: "Aberrations"},
			{Key: "beasts", Name: "Beasts"},
			{Key: "dragons", Name: "Dragons"},
			{Key: "fey", Name: "Fey"},
			{Key: "fiends", Name: "Fiends"},
			{Key: "giants", Name: "Giants"},
			{Key: "monstrosities", Name: "Monstrosities"},
			{Key: "undead", Name: "Undead"},
		},
	}
}

// GetNaturalExplorerChoice returns the ranger's level-1 favored terrain decision
func GetNaturalExplorerChoice() *FeatureChoice {
	return &FeatureChoice{
		Key:  "natural_explorer",
		Name: "Natural Explorer",
		Options: []FeatureOption{
			{Key: "arctic", Name: "Arctic"},
			{Key: "coast", Name: "Coast"},
			{Key: "desert", Name: "Desert"},
			{Key: "forest", Name: "Forest"},
			{Key: "grassland", Name: "Grassland"},
			{Key: "mountain", Name: "Mountain"},
			{Key: "swamp", Name: "Swamp"},
		},
	}
}

// GetSorcerousOriginChoice returns the sorcerer's level-1 origin decision
func GetSorcerousOriginChoice() *FeatureChoice {
	return &FeatureChoice{
		Key:  "sorcerous_origin",
		Name: "Sorcerous Origin",
		Options: []FeatureOption{
			{Key: "draconic_bloodline", Name: "Draconic Bloodline", Description: "Dragon ancestry grants extra hit points and scaled resilience."},
			{Key: "wild_magic", Name: "Wild Magic", Description: "Chaotic surges of raw magic accompany your spellcasting."},
		},
	}
}

// GetOtherworldlyPatronChoice returns the warlock's level-1 patron decision
func GetOtherworldlyPatronChoice() *FeatureChoice {
	return &FeatureChoice{
		Key:  "otherworldly_patron",
		Name: "Otherworldly Patron",
		Options: []FeatureOption{
			{Key: "archfey", Name: "The Archfey", Description: "A lord or lady of the fey, granting beguiling magic."},
			{Key: "fiend", Name: "The Fiend", Description: "A power of the lower planes, granting destructive flame."},
			{Key: "great_old_one", Name: "The Great Old One", Description: "An alien intellect, granting telepathic whispers."},
		},
	}
}

// GetClassFeatureChoices returns all feature choices a class must decide at level 1
func GetClassFeatureChoices(classKey string) []FeatureChoice {
	var choices []FeatureChoice

	switch classKey {
	case "cleric":
		choices = append(choices, *GetDivineDomainChoice())
	case "fighter":
		if styleChoice := GetFightingStyleChoice(classKey); styleChoice != nil {
			choices = append(choices, *styleChoice)
		}
	case "ranger":
		choices = append(choices, *GetFavoredEnemyChoice(), *GetNaturalExplorerChoice())
	case "sorcerer":
		choices = append(choices, *GetSorcerousOriginChoice())
	case "warlock":
		choices = append(choices, *GetOtherworldlyPatronChoice())
	}

	return choices
}
