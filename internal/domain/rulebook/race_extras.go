package rulebook

import "github.com/KirkDiggler/character-forge-discord/internal/domain/shared"

// RaceExtras supplements the sparse API race payload with the trait
// text, subraces, and innate-cantrip grants the wizard presents. The
// catalog client merges these onto the fetched race by key.
type RaceExtras struct {
	Traits        []Trait
	Subraces      []Subrace
	GrantsCantrip bool
	CantripClass  string
}

var raceExtras = map[string]RaceExtras{
	"dwarf": {
		Traits: []Trait{
			{Key: "darkvision", Name: "Darkvision", Description: "You can see in dim light within 60 feet as if it were bright light."},
			{Key: "dwarven-resilience", Name: "Dwarven Resilience", Description: "You have advantage on saving throws against poison."},
			{Key: "speed", Name: "Speed", Description: "Your base walking speed is 25 feet. Your speed is not reduced by wearing heavy armor."},
		},
		Subraces: []Subrace{
			{Key: "hill-dwarf", Name: "Hill Dwarf", AbilityBonuses: []*shared.AbilityBonus{{Attribute: shared.AttributeWisdom, Bonus: 1}}},
			{Key: "mountain-dwarf", Name: "Mountain Dwarf", AbilityBonuses: []*shared.AbilityBonus{{Attribute: shared.AttributeStrength, Bonus: 2}}},
		},
	},
	"elf": {
		Traits: []Trait{
			{Key: "darkvision", Name: "Darkvision", Description: "You can see in dim light within 60 feet as if it were bright light."},
			{Key: "keen-senses", Name: "Keen Senses", Description: "You have proficiency in the Perception skill."},
			{Key: "fey-ancestry", Name: "Fey Ancestry", Description: "You have advantage on saving throws against being charmed."},
		},
		Subraces: []Subrace{
			{Key: "high-elf", Name: "High Elf", AbilityBonuses: []*shared.AbilityBonus{{Attribute: shared.AttributeIntelligence, Bonus: 1}}},
			{Key: "wood-elf", Name: "Wood Elf", AbilityBonuses: []*shared.AbilityBonus{{Attribute: shared.AttributeWisdom, Bonus: 1}}},
		},
		GrantsCantrip: true,
		CantripClass:  "wizard",
	},
	"halfling": {
		Traits: []Trait{
			{Key: "lucky", Name: "Lucky", Description: "When you roll a 1 on a d20, you can reroll and must use the new roll."},
			{Key: "brave", Name: "Brave", Description: "You have advantage on saving throws against being frightened."},
			{Key: "speed", Name: "Speed", Description: "Your base walking speed is 25 feet."},
		},
		Subraces: []Subrace{
			{Key: "lightfoot-halfling", Name: "Lightfoot Halfling", AbilityBonuses: []*shared.AbilityBonus{{Attribute: shared.AttributeCharisma, Bonus: 1}}},
			{Key: "stout-halfling", Name: "Stout Halfling", AbilityBonuses: []*shared.AbilityBonus{{Attribute: shared.AttributeConstitution, Bonus: 1}}},
		},
	},
	"human": {
		Traits: []Trait{
			{Key: "versatile", Name: "Versatile", Description: "Your ability scores each increase by 1."},
		},
	},
	"dragonborn": {
		Traits: []Trait{
			{Key: "breath-weapon", Name: "Breath Weapon", Description: "You can use your action to exhale destructive energy."},
			{Key: "damage-resistance", Name: "Damage Resistance", Description: "You have resistance to the damage type of your draconic ancestry."},
		},
	},
	"gnome": {
		Traits: []Trait{
			{Key: "darkvision", Name: "Darkvision", Description: "You can see in dim light within 60 feet as if it were bright light."},
			{Key: "gnome-cunning", Name: "Gnome Cunning", Description: "You have advantage on Intelligence, Wisdom, and Charisma saves against magic."},
			{Key: "speed", Name: "Speed", Description: "Your base walking speed is 25 feet."},
		},
		Subraces: []Subrace{
			{Key: "forest-gnome", Name: "Forest Gnome", AbilityBonuses: []*shared.AbilityBonus{{Attribute: shared.AttributeDexterity, Bonus: 1}}},
			{Key: "rock-gnome", Name: "Rock Gnome", AbilityBonuses: []*shared.AbilityBonus{{Attribute: shared.AttributeConstitution, Bonus: 1}}},
		},
	},
	"half-elf": {
		Traits: []Trait{
			{Key: "darkvision", Name: "Darkvision", Description: "You can see in dim light within 60 feet as if it were bright light."},
			{Key: "fey-ancestry", Name: "Fey Ancestry", Description: "You have advantage on saving throws against being charmed."},
		},
	},
	"half-orc": {
		Traits: []Trait{
			{Key: "darkvision", Name: "Darkvision", Description: "You can see in dim light within 60 feet as if it were bright light."},
			{Key: "relentless-endurance", Name: "Relentless Endurance", Description: "When reduced to 0 hit points but not killed, you drop to 1 instead, once per long rest."},
		},
	},
	"tiefling": {
		Traits: []Trait{
			{Key: "darkvision", Name: "Darkvision", Description: "You can see in dim light within 60 feet as if it were bright light."},
			{Key: "hellish-resistance", Name: "Hellish Resistance", Description: "You have resistance to fire damage."},
		},
	},
}

// GetRaceExtras returns the supplement for a race key, if one exists
func GetRaceExtras(key string) (RaceExtras, bool) {
	extras, ok := raceExtras[key]
	return extras, ok
}
