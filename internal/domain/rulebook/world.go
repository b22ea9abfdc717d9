package rulebook

// World is a campaign setting the player picks first; every later
// catalog request is scoped by the chosen world.
type World struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Campaign is an adventure arc within a world.
type Campaign struct {
	Key         string `json:"key"`
	WorldKey    string `json:"world_key"`
	Name        string `json:"name"`
	Description string `json:"description"`
	StartLevel  int    `json:"start_level"`
}

// GetWorlds returns the playable settings.
func GetWorlds() []World {
	return []World{
		{
			Key:         "forgotten-realms",
			Name:        "Forgotten Realms",
			Description: "The classic setting of Faerûn: sword coasts, deep dungeons, and old magic.",
		},
		{
			Key:         "dragonlance",
			Name:        "Dragonlance",
			Description: "Krynn in the age of the War of the Lance, where dragons shape history.",
		},
		{
			Key:         "greyhawk",
			Name:        "Greyhawk",
			Description: "The Flanaess: a patchwork of feuding states and ruins of fallen empires.",
		},
	}
}

// GetWorld looks up a world by key.
func GetWorld(key string) (World, bool) {
	for _, w := range GetWorlds() {
		if w.Key == key {
			return w, true
		}
	}
	return World{}, false
}

// GetCampaigns returns the campaigns available in a world.
func GetCampaigns(worldKey string) []Campaign {
	var out []Campaign
	for _, c := range allCampaigns() {
		if c.WorldKey == worldKey {
			out = append(out, c)
		}
	}
	return out
}

// GetCampaign looks up a campaign by key within a world.
func GetCampaign(worldKey, key string) (Campaign, bool) {
	for _, c := range GetCampaigns(worldKey) {
		if c.Key == key {
			return c, true
		}
	}
	return Campaign{}, false
}

func allCampaigns() []Campaign {
	return []Campaign{
		{
			Key:         "dragon-of-icespire-peak",
			WorldKey:    "forgotten-realms",
			Name:        "Dragon of Icespire Peak",
			Description: "A white dragon has made its lair atop Icespire Peak, and Phandalin needs heroes.",
			StartLevel:  1,
		},
		{
			Key:         "lost-mine-of-phandelver",
			WorldKey:    "forgotten-realms",
			Name:        "Lost Mine of Phandelver",
			Description: "A missing dwarf patron and the long-lost Wave Echo Cave.",
			StartLevel:  1,
		},
		{
			Key:         "shadow-of-the-dragon-queen",
			WorldKey:    "dragonlance",
			Name:        "Shadow of the Dragon Queen",
			Description: "Stand against the dragon armies as war engulfs Krynn.",
			StartLevel:  1,
		},
		{
			Key:         "village-of-hommlet",
			WorldKey:    "greyhawk",
			Name:        "The Village of Hommlet",
			Description: "A quiet village on the edge of lands stained by an old temple of evil.",
			StartLevel:  1,
		},
	}
}
