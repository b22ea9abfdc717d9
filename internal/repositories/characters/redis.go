package characters

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/character-forge-discord/internal/domain/character"
	dnderr "github.com/KirkDiggler/character-forge-discord/internal/errors"
)

// TimeProvider supplies timestamps so tests can pin them
type TimeProvider interface {
	Now() time.Time
}

type RealTimeProvider struct{}

func (r *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// redisRepo implements the Repository interface using Redis
type redisRepo struct {
	client       redis.UniversalClient
	timeProvider TimeProvider
}

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client       redis.UniversalClient
	TimeProvider TimeProvider
}

// NewRedisRepository creates a new Redis-backed character repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg == nil {
		panic("RedisRepoConfig cannot be nil")
	}
	if cfg.Client == nil {
		panic("Redis client cannot be nil")
	}

	timeProvider := cfg.TimeProvider
	if timeProvider == nil {
		timeProvider = &RealTimeProvider{}
	}

	return &redisRepo{
		client:       cfg.Client,
		timeProvider: timeProvider,
	}
}

// key generates the Redis key for a character
func (r *redisRepo) key(id string) string {
	return fmt.Sprintf("character:%s", id)
}

// ownerCharactersKey generates the Redis key for an owner's character list
func (r *redisRepo) ownerCharactersKey(ownerID string) string {
	return fmt.Sprintf("owner:%s:characters", ownerID)
}

// realmCharactersKey generates the Redis key for a realm's character list
func (r *redisRepo) realmCharactersKey(realmID string) string {
	return fmt.Sprintf("realm:%s:characters", realmID)
}

// ownerRealmCharactersKey generates the Redis key for an owner's characters in a specific realm
func (r *redisRepo) ownerRealmCharactersKey(ownerID, realmID string) string {
	return fmt.Sprintf("owner:%s:realm:%s:characters", ownerID, realmID)
}

// Create stores a new character
func (r *redisRepo) Create(ctx context.Context, char *character.Character) error {
	if char == nil {
		return dnderr.InvalidArgument("character cannot be nil")
	}
	if char.ID == "" {
		return dnderr.InvalidArgument("character ID is required")
	}
	if char.OwnerID == "" {
		return dnderr.InvalidArgument("character owner ID is required")
	}
	if char.RealmID == "" {
		return dnderr.InvalidArgument("character realm ID is required")
	}

	exists, err := r.client.Exists(ctx, r.key(char.ID)).Result()
	if err != nil {
		return fmt.Errorf("failed to check character existence: %w", err)
	}
	if exists > 0 {
		return dnderr.AlreadyExistsf("character with ID '%s' already exists", char.ID).
			WithMeta("character_id", char.ID)
	}

	now := r.timeProvider.Now().UTC()
	char.CreatedAt = now
	char.UpdatedAt = now

	jsonData, err := json.Marshal(char)
	if err != nil {
		return fmt.Errorf("failed to marshal character: %w", err)
	}

	pipe := r.client.Pipeline()

	// Finalized characters do not expire
	pipe.Set(ctx, r.key(char.ID), string(jsonData), 0)

	pipe.SAdd(ctx, r.ownerCharactersKey(char.OwnerID), char.ID)
	pipe.SAdd(ctx, r.realmCharactersKey(char.RealmID), char.ID)
	pipe.SAdd(ctx, r.ownerRealmCharactersKey(char.OwnerID, char.RealmID), char.ID)

	_, err = pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to create character: %w", err)
	}

	return nil
}

// Get retrieves a character by ID
func (r *redisRepo) Get(ctx context.Context, id string) (*character.Character, error) {
	if id == "" {
		return nil, dnderr.InvalidArgument("character ID is required")
	}

	jsonData, err := r.client.Get(ctx, r.key(id)).Result()
	if err == redis.Nil {
		return nil, dnderr.NotFoundf("character with ID '%s' not found", id).
			WithMeta("character_id", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get character: %w", err)
	}

	var char character.Character
	if unmarshalErr := json.Unmarshal([]byte(jsonData), &char); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to unmarshal character: %w", unmarshalErr)
	}

	return &char, nil
}

// GetByOwner retrieves all characters for a specific owner
func (r *redisRepo) GetByOwner(ctx context.Context, ownerID string) ([]*character.Character, error) {
	if ownerID == "" {
		return nil, dnderr.InvalidArgument("owner ID is required")
	}

	ids, err := r.client.SMembers(ctx, r.ownerCharactersKey(ownerID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list character IDs: %w", err)
	}

	return r.getAll(ctx, ids), nil
}

// GetByOwnerAndRealm retrieves all characters for a specific owner in a realm
func (r *redisRepo) GetByOwnerAndRealm(ctx context.Context, ownerID, realmID string) ([]*character.Character, error) {
	if ownerID == "" {
		return nil, dnderr.InvalidArgument("owner ID is required")
	}
	if realmID == "" {
		return nil, dnderr.InvalidArgument("realm ID is required")
	}

	ids, err := r.client.SMembers(ctx, r.ownerRealmCharactersKey(ownerID, realmID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list character IDs: %w", err)
	}

	return r.getAll(ctx, ids), nil
}

// getAll loads each character by ID, skipping any that can no longer be loaded
func (r *redisRepo) getAll(ctx context.Context, ids []string) []*character.Character {
	chars := make([]*character.Character, 0, len(ids))
	for _, id := range ids {
		char, err := r.Get(ctx, id)
		if err != nil {
			continue
		}
		chars = append(chars, char)
	}
	return chars
}

// Update updates an existing character
func (r *redisRepo) Update(ctx context.Context, char *character.Character) error {
	if char == nil {
		return dnderr.InvalidArgument("character cannot be nil")
	}
	if char.ID == "" {
		return dnderr.InvalidArgument("character ID is required")
	}

	existingData, err := r.client.Get(ctx, r.key(char.ID)).Result()
	if err == redis.Nil {
		return dnderr.NotFoundf("character with ID '%s' not found", char.ID).
			WithMeta("character_id", char.ID)
	}
	if err != nil {
		return fmt.Errorf("failed to get existing character: %w", err)
	}

	var existing character.Character
	if unmarshalErr := json.Unmarshal([]byte(existingData), &existing); unmarshalErr != nil {
		return fmt.Errorf("failed to unmarshal existing character: %w", unmarshalErr)
	}

	char.CreatedAt = existing.CreatedAt
	char.UpdatedAt = r.timeProvider.Now().UTC()

	jsonData, err := json.Marshal(char)
	if err != nil {
		return fmt.Errorf("failed to marshal character: %w", err)
	}

	err = r.client.Set(ctx, r.key(char.ID), string(jsonData), 0).Err()
	if err != nil {
		return fmt.Errorf("failed to update character: %w", err)
	}

	// If owner or realm changed, move the character between indexes
	if existing.OwnerID != char.OwnerID || existing.RealmID != char.RealmID {
		pipe := r.client.Pipeline()

		pipe.SRem(ctx, r.ownerCharactersKey(existing.OwnerID), char.ID)
		pipe.SRem(ctx, r.realmCharactersKey(existing.RealmID), char.ID)
		pipe.SRem(ctx, r.ownerRealmCharactersKey(existing.OwnerID, existing.RealmID), char.ID)

		pipe.SAdd(ctx, r.ownerCharactersKey(char.OwnerID), char.ID)
		pipe.SAdd(ctx, r.realmCharactersKey(char.RealmID), char.ID)
		pipe.SAdd(ctx, r.ownerRealmCharactersKey(char.OwnerID, char.RealmID), char.ID)

		_, err = pipe.Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to update character indexes: %w", err)
		}
	}

	return nil
}

// Delete removes a character
func (r *redisRepo) Delete(ctx context.Context, id string) error {
	if id == "" {
		return dnderr.InvalidArgument("character ID is required")
	}

	// Get character to find owner/realm for index cleanup
	char, err := r.Get(ctx, id)
	if err != nil {
		return err
	}

	pipe := r.client.Pipeline()

	pipe.Del(ctx, r.key(id))

	pipe.SRem(ctx, r.ownerCharactersKey(char.OwnerID), id)
	pipe.SRem(ctx, r.realmCharactersKey(char.RealmID), id)
	pipe.SRem(ctx, r.ownerRealmCharactersKey(char.OwnerID, char.RealmID), id)

	_, err = pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete character: %w", err)
	}

	return nil
}
