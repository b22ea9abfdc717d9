package rulebook

import (
	"github.com/KirkDiggler/character-forge-discord/internal/domain/shared"
)

// Race carries the racial inputs the wizard folds into a draft: ability
// bonuses, speed, traits, and optional subraces.
type Race struct {
	Key            string                 `json:"key"`
	Name           string                 `json:"name"`
	Speed          int                    `json:"speed"`
	AbilityBonuses []*shared.AbilityBonus `json:"ability_bonuses"`
	Traits         []Trait                `json:"traits,omitempty"`
	Subraces       []Subrace              `json:"subraces,omitempty"`

	// GrantsCantrip marks races whose trait list includes an innate
	// cantrip pick (the high elf pattern). The cantrip is drawn from
	// CantripClass's list.
	GrantsCantrip bool   `json:"grants_cantrip,omitempty"`
	CantripClass  string `json:"cantrip_class,omitempty"`
}

// Trait is a named racial trait with free-text rules description.
// Speed parsing reads these descriptions when the numeric Speed field
// is absent from the catalog payload.
type Trait struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Subrace narrows a race and may add further ability bonuses.
type Subrace struct {
	Key            string                 `json:"key"`
	Name           string                 `json:"name"`
	AbilityBonuses []*shared.AbilityBonus `json:"ability_bonuses,omitempty"`
}
