package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_RequiresDiscordToken(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "")
	t.Setenv("DISCORD_APP_ID", "app-123")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DISCORD_TOKEN")
}

func TestLoad_RequiresAppID(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "token-abc")
	t.Setenv("DISCORD_APP_ID", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DISCORD_APP_ID")
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "token-abc")
	t.Setenv("DISCORD_APP_ID", "app-123")
	t.Setenv("REDIS_ADDR", "")
	t.Setenv("REDIS_DB", "")
	t.Setenv("DND5E_API_URL", "")
	t.Setenv("DRAFT_TTL", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, 0, cfg.Redis.DB)
	assert.Equal(t, "https://www.dnd5eapi.co/api", cfg.DND5E.BaseURL)
	assert.Equal(t, 24*time.Hour, cfg.Draft.TTL)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "token-abc")
	t.Setenv("DISCORD_APP_ID", "app-123")
	t.Setenv("DISCORD_GUILD_ID", "guild-9")
	t.Setenv("REDIS_ADDR", "redis.internal:6380")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("DRAFT_TTL", "2h30m")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "guild-9", cfg.Discord.GuildID)
	assert.Equal(t, "redis.internal:6380", cfg.Redis.Addr)
	assert.Equal(t, 3, cfg.Redis.DB)
	assert.Equal(t, 150*time.Minute, cfg.Draft.TTL)
}

func TestLoad_BadIntFallsBack(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "token-abc")
	t.Setenv("DISCORD_APP_ID", "app-123")
	t.Setenv("REDIS_DB", "not-a-number")
	t.Setenv("DRAFT_TTL", "soon")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 0, cfg.Redis.DB)
	assert.Equal(t, 24*time.Hour, cfg.Draft.TTL)
}
