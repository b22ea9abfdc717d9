package characters

import (
	"context"
	"sync"

	"github.com/KirkDiggler/character-forge-discord/internal/domain/character"
	dnderr "github.com/KirkDiggler/character-forge-discord/internal/errors"
)

// InMemoryRepository is an in-memory implementation of the character repository
type InMemoryRepository struct {
	mu    sync.RWMutex
	chars map[string]*character.Character
}

// NewInMemoryRepository creates a new in-memory character repository
func NewInMemoryRepository() Repository {
	return &InMemoryRepository{
		chars: make(map[string]*character.Character),
	}
}

// Create stores a new character
func (r *InMemoryRepository) Create(ctx context.Context, char *character.Character) error {
	if char == nil {
		return dnderr.InvalidArgument("character cannot be nil")
	}

	if char.ID == "" {
		return dnderr.InvalidArgument("character ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.chars[char.ID]; exists {
		return dnderr.AlreadyExistsf("character with ID '%s' already exists", char.ID).
			WithMeta("character_id", char.ID)
	}

	r.chars[char.ID] = char

	return nil
}

// Get retrieves a character by ID
func (r *InMemoryRepository) Get(ctx context.Context, id string) (*character.Character, error) {
	if id == "" {
		return nil, dnderr.InvalidArgument("character ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	char, exists := r.chars[id]
	if !exists {
		return nil, dnderr.NotFoundf("character with ID '%s' not found", id).
			WithMeta("character_id", id)
	}

	return char, nil
}

// GetByOwner retrieves all characters for a specific owner
func (r *InMemoryRepository) GetByOwner(ctx context.Context, ownerID string) ([]*character.Character, error) {
	if ownerID == "" {
		return nil, dnderr.InvalidArgument("owner ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	chars := make([]*character.Character, 0)
	for _, char := range r.chars {
		if char.OwnerID == ownerID {
			chars = append(chars, char)
		}
	}

	return chars, nil
}

// GetByOwnerAndRealm retrieves all characters for a specific owner in a realm
func (r *InMemoryRepository) GetByOwnerAndRealm(ctx context.Context, ownerID, realmID string) ([]*character.Character, error) {
	if ownerID == "" {
		return nil, dnderr.InvalidArgument("owner ID is required")
	}
	if realmID == "" {
		return nil, dnderr.InvalidArgument("realm ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	chars := make([]*character.Character, 0)
	for _, char := range r.chars {
		if char.OwnerID == ownerID && char.RealmID == realmID {
			chars = append(chars, char)
		}
	}

	return chars, nil
}

// Update updates an existing character
func (r *InMemoryRepository) Update(ctx context.Context, char *character.Character) error {
	if char == nil {
		return dnderr.InvalidArgument("character cannot be nil")
	}

	if char.ID == "" {
		return dnderr.InvalidArgument("character ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.chars[char.ID]; !exists {
		return dnderr.NotFoundf("character with ID '%s' not found", char.ID).
			WithMeta("character_id", char.ID)
	}

	r.chars[char.ID] = char

	return nil
}

// Delete removes a character
func (r *InMemoryRepository) Delete(ctx context.Context, id string) error {
	if id == "" {
		return dnderr.InvalidArgument("character ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.chars[id]; !exists {
		return dnderr.NotFoundf("character with ID '%s' not found", id).
			WithMeta("character_id", id)
	}

	delete(r.chars, id)
	return nil
}
