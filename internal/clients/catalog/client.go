package catalog

import (
	"net/http"

	dnderr "github.com/KirkDiggler/character-forge-discord/internal/errors"

	"github.com/KirkDiggler/character-forge-discord/internal/domain/rulebook"
	apiDnd5e "github.com/fadedpez/dnd5e-api/clients/dnd5e"
	"golang.org/x/sync/errgroup"
)

// TODO: add context to functions once the upstream API client accepts one
type client struct {
	api apiDnd5e.Interface
}

type Config struct {
	HttpClient *http.Client
}

func New(cfg *Config) (Client, error) {
	if cfg == nil {
		return nil, dnderr.InvalidArgument("cfg is required")
	}

	api, err := apiDnd5e.NewDND5eAPI(&apiDnd5e.DND5eAPIConfig{
		Client: cfg.HttpClient,
	})
	if err != nil {
		return nil, err
	}

	return &client{
		api: api,
	}, nil
}

// ListWorlds serves the static world catalog
func (c *client) ListWorlds() ([]rulebook.World, error) {
	return rulebook.GetWorlds(), nil
}

// ListCampaigns serves the campaigns for one world
func (c *client) ListCampaigns(worldKey string) ([]rulebook.Campaign, error) {
	if _, ok := rulebook.GetWorld(worldKey); !ok {
		return nil, dnderr.NotFoundf("world '%s' not found", worldKey).
			WithMeta("world_key", worldKey)
	}
	return rulebook.GetCampaigns(worldKey), nil
}

// ListPremades serves the static premade roster
func (c *client) ListPremades() ([]rulebook.Premade, error) {
	return rulebook.GetPremades(), nil
}

// GetPremade fetches one premade by key
func (c *client) GetPremade(key string) (*rulebook.Premade, error) {
	premade, ok := rulebook.GetPremade(key)
	if !ok {
		return nil, dnderr.NotFoundf("premade '%s' not found", key).
			WithMeta("premade_key", key)
	}
	return &premade, nil
}

// ListBackgrounds serves the static background catalog
func (c *client) ListBackgrounds() ([]rulebook.Background, error) {
	return rulebook.GetBackgrounds(), nil
}

// GetBackground fetches one background by key
func (c *client) GetBackground(key string) (*rulebook.Background, error) {
	background, ok := rulebook.GetBackground(key)
	if !ok {
		return nil, dnderr.NotFoundf("background '%s' not found", key).
			WithMeta("background_key", key)
	}
	return &background, nil
}

// ListAlignments serves the static alignment grid
func (c *client) ListAlignments() ([]rulebook.Alignment, error) {
	return rulebook.GetAlignments(), nil
}

// ListClasses lists classes as skeletal key/name entries
func (c *client) ListClasses() ([]*rulebook.Class, error) {
	response, err := c.api.ListClasses()
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to list classes")
	}

	return apiReferenceItemsToClasses(response), nil
}

// GetClass fetches a full class and normalizes its choices
func (c *client) GetClass(key string) (*rulebook.Class, error) {
	if key == "" {
		return nil, dnderr.InvalidArgument("class key is required")
	}

	response, err := c.api.GetClass(key)
	if err != nil {
		return nil, dnderr.Wrapf(err, "failed to get class '%s'", key).
			WithMeta("class_key", key)
	}

	return apiClassToClass(response), nil
}

// ListRaces lists races as skeletal key/name entries
func (c *client) ListRaces() ([]*rulebook.Race, error) {
	response, err := c.api.ListRaces()
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to list races")
	}

	return apiReferenceItemsToRaces(response), nil
}

// GetRace fetches a full race and merges the static supplements
func (c *client) GetRace(key string) (*rulebook.Race, error) {
	if key == "" {
		return nil, dnderr.InvalidArgument("race key is required")
	}

	response, err := c.api.GetRace(key)
	if err != nil {
		return nil, dnderr.Wrapf(err, "failed to get race '%s'", key).
			WithMeta("race_key", key)
	}

	return apiRaceToRace(response), nil
}

// ListSpellsByClassAndLevel lists spells available to a class at a specific level
func (c *client) ListSpellsByClassAndLevel(classKey string, level int) ([]*rulebook.SpellReference, error) {
	if classKey == "" {
		return nil, dnderr.InvalidArgument("class key is required")
	}

	spells, err := c.api.ListSpells(&apiDnd5e.ListSpellsInput{
		Class: classKey,
		Level: &level,
	})
	if err != nil {
		return nil, dnderr.Wrapf(err, "failed to list level %d spells for class '%s'", level, classKey).
			WithMeta("class_key", classKey)
	}

	return apiReferenceItemsToSpellReferences(spells), nil
}

// GetSpell fetches a full spell entry
func (c *client) GetSpell(key string) (*rulebook.Spell, error) {
	if key == "" {
		return nil, dnderr.InvalidArgument("spell key is required")
	}

	apiSpell, err := c.api.GetSpell(key)
	if err != nil {
		return nil, dnderr.Wrapf(err, "failed to get spell '%s'", key).
			WithMeta("spell_key", key)
	}

	return apiSpellToSpell(apiSpell), nil
}

// GetEquipment fetches one item and classifies it for the inventory
func (c *client) GetEquipment(key string) (*rulebook.ItemRef, error) {
	if key == "" {
		return nil, dnderr.InvalidArgument("equipment key is required")
	}

	response, err := c.api.GetEquipment(key)
	if err != nil {
		return nil, dnderr.Wrapf(err, "failed to get equipment '%s'", key).
			WithMeta("equipment_key", key)
	}

	item := apiEquipmentToItemRef(response)
	if item == nil {
		return nil, dnderr.NotFoundf("equipment '%s' has an unknown shape", key).
			WithMeta("equipment_key", key)
	}

	return item, nil
}

// LoadClassBundle fans out the class, cantrip, and level-1 spell
// fetches concurrently and assembles the result
func (c *client) LoadClassBundle(classKey string) (*ClassBundle, error) {
	if classKey == "" {
		return nil, dnderr.InvalidArgument("class key is required")
	}

	bundle := &ClassBundle{}

	var g errgroup.Group

	g.Go(func() error {
		class, err := c.GetClass(classKey)
		if err != nil {
			return err
		}
		bundle.Class = class
		return nil
	})

	if rulebook.IsSpellcaster(classKey) {
		g.Go(func() error {
			cantrips, err := c.ListSpellsByClassAndLevel(classKey, 0)
			if err != nil {
				return err
			}
			bundle.Cantrips = cantrips
			return nil
		})

		g.Go(func() error {
			spells, err := c.ListSpellsByClassAndLevel(classKey, 1)
			if err != nil {
				return err
			}
			bundle.Spells = spells
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return bundle, nil
}
