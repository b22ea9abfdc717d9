package draft

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/character-forge-discord/internal/domain/character"
	dnderr "github.com/KirkDiggler/character-forge-discord/internal/errors"
)

const defaultTTL = 24 * time.Hour

// redisRepo implements the Repository interface using Redis
type redisRepo struct {
	client       redis.UniversalClient
	timeProvider TimeProvider
	ttl          time.Duration
}

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client       redis.UniversalClient
	TimeProvider TimeProvider
	TTL          time.Duration // How long an unfinished draft survives (default: 24 hours)
}

// NewRedisRepository creates a new Redis-backed draft repository
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

	ttl := cfg.TTL
	if ttl == 0 {
		ttl = defaultTTL
	}

	return &redisRepo{
		client:       cfg.Client,
		timeProvider: timeProvider,
		ttl:          ttl,
	}
}

// key generates the Redis key for a draft
func (r *redisRepo) key(id string) string {
	return fmt.Sprintf("draft:%s", id)
}

// ownerKey generates the Redis key mapping an owner in a realm to their active draft
func (r *redisRepo) ownerKey(ownerID, realmID string) string {
	return fmt.Sprintf("draft:owner:%s:realm:%s", ownerID, realmID)
}

// Create stores a new character draft. An owner has at most one active
// draft per realm, so any previous draft for the pair is replaced.
func (r *redisRepo) Create(ctx context.Context, draft *character.CharacterDraft) error {
	if draft == nil {
		return dnderr.InvalidArgument("draft cannot be nil")
	}
	if draft.ID == "" {
		return dnderr.InvalidArgument("draft ID is required")
	}
	if draft.OwnerID == "" {
		return dnderr.InvalidArgument("draft owner ID is required")
	}
	if draft.RealmID == "" {
		return dnderr.InvalidArgument("draft realm ID is required")
	}

	ownerKey := r.ownerKey(draft.OwnerID, draft.RealmID)

	// Check for an existing draft for this owner/realm
	existingID, err := r.client.Get(ctx, ownerKey).Result()
	if err != nil && err != redis.Nil {
		return fmt.Errorf("failed to check existing draft: %w", err)
	}

	now := r.timeProvider.Now().UTC()
	draft.CreatedAt = now
	draft.UpdatedAt = now

	jsonData, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("failed to marshal draft: %w", err)
	}

	pipe := r.client.Pipeline()

	// Replace any previous draft for this owner/realm
	if existingID != "" && existingID != draft.ID {
		pipe.Del(ctx, r.key(existingID))
	}

	pipe.Set(ctx, r.key(draft.ID), string(jsonData), r.ttl)

	// The mapping key has no TTL; a stale mapping is cleaned up lazily
	// when the draft it points at has expired.
	pipe.Set(ctx, ownerKey, draft.ID, 0)

	_, err = pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to create draft: %w", err)
	}

	return nil
}

// Get retrieves a character draft by ID
func (r *redisRepo) Get(ctx context.Context, id string) (*character.CharacterDraft, error) {
	if id == "" {
		return nil, dnderr.InvalidArgument("draft ID is required")
	}

	jsonData, err := r.client.Get(ctx, r.key(id)).Result()
	if err == redis.Nil {
		return nil, dnderr.NotFoundf("draft with ID '%s' not found", id).
			WithMeta("draft_id", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get draft: %w", err)
	}

	var draft character.CharacterDraft
	if unmarshalErr := json.Unmarshal([]byte(jsonData), &draft); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to unmarshal draft: %w", unmarshalErr)
	}

	return &draft, nil
}

// GetByOwnerAndRealm retrieves the active draft for an owner in a realm
func (r *redisRepo) GetByOwnerAndRealm(ctx context.Context, ownerID, realmID string) (*character.CharacterDraft, error) {
	if ownerID == "" {
		return nil, dnderr.InvalidArgument("owner ID is required")
	}
	if realmID == "" {
		return nil, dnderr.InvalidArgument("realm ID is required")
	}

	ownerKey := r.ownerKey(ownerID, realmID)

	draftID, err := r.client.Get(ctx, ownerKey).Result()
	if err == redis.Nil {
		return nil, dnderr.NotFoundf("no draft found for owner '%s' in realm '%s'", ownerID, realmID).
			WithMeta("owner_id", ownerID).
			WithMeta("realm_id", realmID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get owner draft mapping: %w", err)
	}

	draft, err := r.Get(ctx, draftID)
	if err != nil {
		// The draft expired out from under the mapping; clean it up
		if dnderr.IsNotFound(err) {
			r.client.Del(ctx, ownerKey)
		}
		return nil, err
	}

	return draft, nil
}

// Update updates an existing character draft and refreshes its TTL
func (r *redisRepo) Update(ctx context.Context, draft *character.CharacterDraft) error {
	if draft == nil {
		return dnderr.InvalidArgument("draft cannot be nil")
	}
	if draft.ID == "" {
		return dnderr.InvalidArgument("draft ID is required")
	}

	exists, err := r.client.Exists(ctx, r.key(draft.ID)).Result()
	if err != nil {
		return fmt.Errorf("failed to check draft existence: %w", err)
	}
	if exists == 0 {
		return dnderr.NotFoundf("draft with ID '%s' not found", draft.ID).
			WithMeta("draft_id", draft.ID)
	}

	draft.UpdatedAt = r.timeProvider.Now().UTC()

	jsonData, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("failed to marshal draft: %w", err)
	}

	err = r.client.Set(ctx, r.key(draft.ID), string(jsonData), r.ttl).Err()
	if err != nil {
		return fmt.Errorf("failed to update draft: %w", err)
	}

	return nil
}

// Delete removes a character draft and its owner mapping
func (r *redisRepo) Delete(ctx context.Context, id string) error {
	if id == "" {
		return dnderr.InvalidArgument("draft ID is required")
	}

	// Get the draft to find its owner mapping
	draft, err := r.Get(ctx, id)
	if err != nil {
		return err
	}

	pipe := r.client.Pipeline()
	pipe.Del(ctx, r.key(id))
	pipe.Del(ctx, r.ownerKey(draft.OwnerID, draft.RealmID))

	_, err = pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete draft: %w", err)
	}

	return nil
}
