package character

import (
	"time"

	"github.com/KirkDiggler/character-forge-discord/internal/domain/rulebook"
	"github.com/KirkDiggler/character-forge-discord/internal/domain/shared"
)

// Character is the immutable record a finished draft becomes. It is
// shaped for storage and sheet display; nothing in it is recomputed
// after finalization.
type Character struct {
	ID      string                 `json:"id"`
	OwnerID string                 `json:"owner_id"`
	RealmID string                 `json:"realm_id"`
	Status  shared.CharacterStatus `json:"status"`

	Name        string `json:"name"`
	Level       int    `json:"level"`
	Gender      string `json:"gender,omitempty"`
	Description string `json:"description,omitempty"`

	WorldKey    string `json:"world_key"`
	CampaignKey string `json:"campaign_key"`

	RaceKey       string `json:"race_key"`
	RaceName      string `json:"race_name"`
	SubraceKey    string `json:"subrace_key,omitempty"`
	ClassKey      string `json:"class_key"`
	ClassName     string `json:"class_name"`
	BackgroundKey string `json:"background_key"`
	AlignmentKey  string `json:"alignment_key"`

	Attributes map[shared.Attribute]*AbilityScore `json:"attributes"`
	Skills     []string                           `json:"skills"`
	Features   map[string]string                  `json:"features,omitempty"`
	Inventory  []rulebook.ItemRef                 `json:"inventory"`

	Spellcasting *SpellcastingInfo `json:"spellcasting,omitempty"`

	HitPoints        int `json:"hit_points"`
	MaxHitPoints     int `json:"max_hit_points"`
	ArmorClass       int `json:"armor_class"`
	Initiative       int `json:"initiative"`
	ProficiencyBonus int `json:"proficiency_bonus"`
	Speed            int `json:"speed"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SpellcastingInfo is the finalized spell block.
type SpellcastingInfo struct {
	Ability  shared.Attribute `json:"ability"`
	Cantrips []string         `json:"cantrips"`
	Spells   []string         `json:"spells"`
}

// AttributeScore returns the named ability, or a zero score when the
// record predates it.
func (c *Character) AttributeScore(attr shared.Attribute) *AbilityScore {
	if score, ok := c.Attributes[attr]; ok && score != nil {
		return score
	}
	return NewAbilityScore(0)
}
