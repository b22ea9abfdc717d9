package events

import (
	"github.com/KirkDiggler/character-forge-discord/internal/domain/character"
	"github.com/KirkDiggler/rpg-toolkit/core"
)

// DraftEntity wraps a character draft to implement rpg-toolkit's Entity interface
type DraftEntity struct {
	Draft *character.CharacterDraft
}

// Ensure DraftEntity implements core.Entity
var _ core.Entity = (*DraftEntity)(nil)

// GetID returns the draft's unique identifier
func (d *DraftEntity) GetID() string {
	if d.Draft == nil {
		return ""
	}
	return d.Draft.ID
}

// GetType returns the entity type
func (d *DraftEntity) GetType() string {
	return "character_draft"
}

// WrapDraft creates a DraftEntity from a CharacterDraft
func WrapDraft(draft *character.CharacterDraft) *DraftEntity {
	if draft == nil {
		return nil
	}
	return &DraftEntity{Draft: draft}
}
