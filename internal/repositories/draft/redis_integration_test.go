//go:build integration
// +build integration

package draft_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/character-forge-discord/internal/domain/character"
	dnderr "github.com/KirkDiggler/character-forge-discord/internal/errors"
	"github.com/KirkDiggler/character-forge-discord/internal/repositories/draft"
	"github.com/KirkDiggler/character-forge-discord/internal/testutils"
)

func TestRedisRepository_Integration(t *testing.T) {
	client := testutils.CreateTestRedisClient(t)

	repo := draft.NewRedisRepository(&draft.RedisRepoConfig{
		Client: client,
		TTL:    time.Hour,
	})

	ctx := context.Background()

	t.Run("create and retrieve draft", func(t *testing.T) {
		d := testutils.CreateTestDraft("int-draft-1", "user-123", "realm-456")

		err := repo.Create(ctx, d)
		require.NoError(t, err)

		retrieved, err := repo.Get(ctx, d.ID)
		require.NoError(t, err)
		assert.Equal(t, d.ID, retrieved.ID)
		assert.Equal(t, "fighter", retrieved.ClassKey)
		assert.Equal(t, character.StageIdentity, retrieved.CurrentStage)
		assert.Equal(t, character.StageClass, retrieved.FurthestCompleted)
		assert.False(t, retrieved.CreatedAt.IsZero())
	})

	t.Run("owner mapping resolves the active draft", func(t *testing.T) {
		d := testutils.CreateTestDraft("int-draft-2", "user-abc", "realm-456")
		require.NoError(t, repo.Create(ctx, d))

		found, err := repo.GetByOwnerAndRealm(ctx, "user-abc", "realm-456")
		require.NoError(t, err)
		assert.Equal(t, "int-draft-2", found.ID)
	})

	t.Run("creating a second draft replaces the first", func(t *testing.T) {
		first := testutils.CreateTestDraft("int-draft-3", "user-replace", "realm-456")
		second := testutils.CreateTestDraft("int-draft-4", "user-replace", "realm-456")

		require.NoError(t, repo.Create(ctx, first))
		require.NoError(t, repo.Create(ctx, second))

		_, err := repo.Get(ctx, "int-draft-3")
		assert.True(t, dnderr.IsNotFound(err))

		found, err := repo.GetByOwnerAndRealm(ctx, "user-replace", "realm-456")
		require.NoError(t, err)
		assert.Equal(t, "int-draft-4", found.ID)
	})

	t.Run("update round-trips changed selections", func(t *testing.T) {
		d := testutils.CreateTestDraft("int-draft-5", "user-update", "realm-456")
		require.NoError(t, repo.Create(ctx, d))

		d.ClassKey = "wizard"
		d.Cantrips = []string{"fire-bolt", "mage-hand"}
		d.CurrentStage = character.StageSpells
		require.NoError(t, repo.Update(ctx, d))

		retrieved, err := repo.Get(ctx, d.ID)
		require.NoError(t, err)
		assert.Equal(t, "wizard", retrieved.ClassKey)
		assert.Equal(t, []string{"fire-bolt", "mage-hand"}, retrieved.Cantrips)
		assert.Equal(t, character.StageSpells, retrieved.CurrentStage)
	})

	t.Run("delete removes draft and mapping", func(t *testing.T) {
		d := testutils.CreateTestDraft("int-draft-6", "user-delete", "realm-456")
		require.NoError(t, repo.Create(ctx, d))

		require.NoError(t, repo.Delete(ctx, d.ID))

		_, err := repo.Get(ctx, d.ID)
		assert.True(t, dnderr.IsNotFound(err))

		_, err = repo.GetByOwnerAndRealm(ctx, "user-delete", "realm-456")
		assert.True(t, dnderr.IsNotFound(err))
	})
}
