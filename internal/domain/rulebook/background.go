package rulebook

// Background represents a D&D 5e character background
type Background struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Description string `json:"description"`

	SkillProficiencies []string  `json:"skill_proficiencies"`
	Languages          []string  `json:"languages,omitempty"`
	StartingItems      []ItemRef `json:"starting_items"`

	// Feature that comes with the background
	Feature Feature `json:"feature"`
}

// Feature represents a special feature granted by a background
type Feature struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// GetBackgrounds returns the playable backgrounds. The reference data
// service does not serve backgrounds, so they ship with the rulebook.
func GetBackgrounds() []Background {
	return []Background{
		{
			Key:                "acolyte",
			Name:               "Acolyte",
			Description:        "You have spent your life in the service of a temple to a specific god or pantheon of gods.",
			SkillProficiencies: []string{"insight", "religion"},
			Languages:          []string{"celestial", "infernal"},
			StartingItems: []ItemRef{
				{Key: "holy-symbol", Name: "Holy symbol", Type: ItemTypeGear},
				{Key: "prayer-book", Name: "Prayer book", Type: ItemTypeGear},
				{Key: "incense", Name: "Sticks of incense", Type: ItemTypeGear},
				{Key: "vestments", Name: "Vestments", Type: ItemTypeGear},
				{Key: "common-clothes", Name: "Common clothes", Type: ItemTypeGear},
				{Key: "pouch", Name: "Belt pouch (15 gp)", Type: ItemTypeGear},
			},
			Feature: Feature{
				Name:        "Shelter of the Faithful",
				Description: "You and your companions can receive free healing and care at a temple of your faith.",
			},
		},
		{
			Key:                "criminal",
			Name:               "Criminal",
			Description:        "You are an experienced criminal with a history of breaking the law.",
			SkillProficiencies: []string{"deception", "stealth"},
			StartingItems: []ItemRef{
				{Key: "crowbar", Name: "Crowbar", Type: ItemTypeTool},
				{Key: "dark-clothes", Name: "Dark common clothes with hood", Type: ItemTypeGear},
				{Key: "pouch", Name: "Belt pouch (15 gp)", Type: ItemTypeGear},
			},
			Feature: Feature{
				Name:        "Criminal Contact",
				Description: "You have a reliable and trustworthy contact in a network of other criminals.",
			},
		},
		{
			Key:                "folk-hero",
			Name:               "Folk Hero",
			Description:        "You come from a humble social rank, but you are destined for so much more.",
			SkillProficiencies: []string{"animal-handling", "survival"},
			StartingItems: []ItemRef{
				{Key: "artisan-tools", Name: "Set of artisan's tools", Type: ItemTypeTool},
				{Key: "shovel", Name: "Shovel", Type: ItemTypeGear},
				{Key: "iron-pot", Name: "Iron pot", Type: ItemTypeGear},
				{Key: "common-clothes", Name: "Common clothes", Type: ItemTypeGear},
				{Key: "pouch", Name: "Belt pouch (10 gp)", Type: ItemTypeGear},
			},
			Feature: Feature{
				Name:        "Rustic Hospitality",
				Description: "Common folk will shelter you from the law or anyone searching for you.",
			},
		},
		{
			Key:                "noble",
			Name:               "Noble",
			Description:        "You understand wealth, power, and privilege.",
			SkillProficiencies: []string{"history", "persuasion"},
			Languages:          []string{"choice"},
			StartingItems: []ItemRef{
				{Key: "fine-clothes", Name: "Fine clothes", Type: ItemTypeGear},
				{Key: "signet-ring", Name: "Signet ring", Type: ItemTypeGear},
				{Key: "scroll-of-pedigree", Name: "Scroll of pedigree", Type: ItemTypeGear},
				{Key: "purse", Name: "Purse (25 gp)", Type: ItemTypeGear},
			},
			Feature: Feature{
				Name:        "Position of Privilege",
				Description: "You are welcome in high society, and people assume you have the right to be wherever you are.",
			},
		},
		{
			Key:                "sage",
			Name:               "Sage",
			Description:        "You spent years learning the lore of the multiverse.",
			SkillProficiencies: []string{"arcana", "history"},
			Languages:          []string{"choice", "choice"},
			StartingItems: []ItemRef{
				{Key: "ink-bottle", Name: "Bottle of black ink", Type: ItemTypeGear},
				{Key: "quill", Name: "Quill", Type: ItemTypeGear},
				{Key: "small-knife", Name: "Small knife", Type: ItemTypeGear},
				{Key: "letter", Name: "Letter from a dead colleague", Type: ItemTypeGear},
				{Key: "common-clothes", Name: "Common clothes", Type: ItemTypeGear},
				{Key: "pouch", Name: "Belt pouch (10 gp)", Type: ItemTypeGear},
			},
			Feature: Feature{
				Name:        "Researcher",
				Description: "When you attempt to learn or recall a piece of lore, you often know where to find it.",
			},
		},
		{
			Key:                "soldier",
			Name:               "Soldier",
			Description:        "War has been your life for as long as you care to remember.",
			SkillProficiencies: []string{"athletics", "intimidation"},
			StartingItems: []ItemRef{
				{Key: "rank-insignia", Name: "Insignia of rank", Type: ItemTypeGear},
				{Key: "trophy", Name: "Trophy taken from a fallen enemy", Type: ItemTypeGear},
				{Key: "dice-set", Name: "Set of bone dice", Type: ItemTypeGear},
				{Key: "common-clothes", Name: "Common clothes", Type: ItemTypeGear},
				{Key: "pouch", Name: "Belt pouch (10 gp)", Type: ItemTypeGear},
			},
			Feature: Feature{
				Name:        "Military Rank",
				Description: "Soldiers loyal to your former military organization still recognize your authority.",
			},
		},
	}
}

// GetBackground looks up a background by key.
func GetBackground(key string) (Background, bool) {
	for _, bg := range GetBackgrounds() {
		if bg.Key == key {
			return bg, true
		}
	}
	return Background{}, false
}
