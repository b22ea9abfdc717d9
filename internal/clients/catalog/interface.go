package catalog

//go:generate mockgen -destination=mock/mock_client.go -package=mockcatalog . Client

import (
	"github.com/KirkDiggler/character-forge-discord/internal/domain/rulebook"
)

// Client is the single catalog collaborator the creation flow reads
// from. Worlds, campaigns, premades, backgrounds, and alignments are
// served from static tables; classes, races, spells, and equipment are
// fetched from the dnd5e API and normalized to rulebook shapes.
type Client interface {
	ListWorlds() ([]rulebook.World, error)
	ListCampaigns(worldKey string) ([]rulebook.Campaign, error)
	ListPremades() ([]rulebook.Premade, error)
	GetPremade(key string) (*rulebook.Premade, error)
	ListBackgrounds() ([]rulebook.Background, error)
	GetBackground(key string) (*rulebook.Background, error)
	ListAlignments() ([]rulebook.Alignment, error)

	ListClasses() ([]*rulebook.Class, error)
	GetClass(key string) (*rulebook.Class, error)
	ListRaces() ([]*rulebook.Race, error)
	GetRace(key string) (*rulebook.Race, error)
	ListSpellsByClassAndLevel(classKey string, level int) ([]*rulebook.SpellReference, error)
	GetSpell(key string) (*rulebook.Spell, error)
	GetEquipment(key string) (*rulebook.ItemRef, error)

	// LoadClassBundle prefetches everything the wizard needs once a
	// class is chosen: the full class plus its cantrip and level-1
	// spell lists in one round of concurrent fetches
	LoadClassBundle(classKey string) (*ClassBundle, error)
}

// ClassBundle is the prefetched per-class view of the catalog
type ClassBundle struct {
	Class    *rulebook.Class
	Cantrips []*rulebook.SpellReference
	Spells   []*rulebook.SpellReference
}
