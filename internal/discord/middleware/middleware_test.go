package middleware

import (
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/character-forge-discord/internal/discord/core"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func respondWith(content string, delay time.Duration) core.Handler {
	return core.HandlerFunc(func(ctx *core.InteractionContext) (*core.HandlerResult, error) {
		if delay > 0 {
			time.Sleep(delay)
		}
		return &core.HandlerResult{Response: core.NewResponse(content)}, nil
	})
}

func TestDeferMiddleware_FastHandlerSkipsDefer(t *testing.T) {
	mw := DeferMiddleware(&DeferConfig{After: 50 * time.Millisecond, Logger: discardLogger()})
	handler := mw(respondWith("quick", 0))

	ctx := core.NewTestComponentContext("user_1", "guild_1", "creation:next:draft_1")
	responder := core.NewMockResponder()
	core.WithResponder(ctx, responder)

	result, err := handler.Handle(ctx)
	require.NoError(t, err)
	assert.Empty(t, responder.DeferCalls)
	assert.False(t, result.Deferred)
	assert.Equal(t, "quick", result.Response.Content)
}

func TestDeferMiddleware_SlowHandlerDefers(t *testing.T) {
	mw := DeferMiddleware(&DeferConfig{After: 10 * time.Millisecond, Logger: discardLogger()})
	handler := mw(respondWith("slow", 60*time.Millisecond))

	ctx := core.NewTestComponentContext("user_1", "guild_1", "creation:next:draft_1")
	responder := core.NewMockResponder()
	core.WithResponder(ctx, responder)

	result, err := handler.Handle(ctx)
	require.NoError(t, err)
	assert.Len(t, responder.DeferCalls, 1)
	assert.True(t, result.Deferred)
	assert.Equal(t, "slow", result.Response.Content)
}

func TestDeferMiddleware_SkipRule(t *testing.T) {
	mw := DeferMiddleware(&DeferConfig{
		After:  10 * time.Millisecond,
		Skip:   []DeferSkipRule{{Domain: "creation", Action: "name"}},
		Logger: discardLogger(),
	})
	handler := mw(respondWith("modal instead", 60*time.Millisecond))

	ctx := core.NewTestComponentContext("user_1", "guild_1", "creation:name:draft_1")
	responder := core.NewMockResponder()
	core.WithResponder(ctx, responder)

	result, err := handler.Handle(ctx)
	require.NoError(t, err)
	assert.Empty(t, responder.DeferCalls)
	assert.False(t, result.Deferred)
}

func TestDeferMiddleware_WildcardSkipRule(t *testing.T) {
	mw := DeferMiddleware(&DeferConfig{
		After:  10 * time.Millisecond,
		Skip:   []DeferSkipRule{{Domain: "creation", Action: "*"}},
		Logger: discardLogger(),
	})
	handler := mw(respondWith("never deferred", 60*time.Millisecond))

	ctx := core.NewTestComponentContext("user_1", "guild_1", "creation:equip:draft_1")
	responder := core.NewMockResponder()
	core.WithResponder(ctx, responder)

	_, err := handler.Handle(ctx)
	require.NoError(t, err)
	assert.Empty(t, responder.DeferCalls)
}

func TestDeferMiddleware_NoResponderPassesThrough(t *testing.T) {
	mw := DeferMiddleware(&DeferConfig{After: 10 * time.Millisecond, Logger: discardLogger()})
	handler := mw(respondWith("bare", 30*time.Millisecond))

	result, err := handler.Handle(core.NewTestComponentContext("user_1", "guild_1", "creation:next:draft_1"))
	require.NoError(t, err)
	assert.Equal(t, "bare", result.Response.Content)
}

func TestErrorMiddleware_UserMessageShown(t *testing.T) {
	mw := ErrorMiddleware(discardLogger())
	handler := mw(core.HandlerFunc(func(ctx *core.InteractionContext) (*core.HandlerResult, error) {
		return nil, core.NewValidationError("Choose a race before continuing.")
	}))

	result, err := handler.Handle(core.NewTestComponentContext("user_1", "guild_1", "creation:next:draft_1"))
	require.NoError(t, err)
	require.NotNil(t, result.Response)
	assert.Equal(t, "Choose a race before continuing.", result.Response.Content)
	assert.True(t, result.Response.Ephemeral)
}

func TestErrorMiddleware_InternalErrorHidden(t *testing.T) {
	mw := ErrorMiddleware(discardLogger())
	handler := mw(core.HandlerFunc(func(ctx *core.InteractionContext) (*core.HandlerResult, error) {
		return nil, errors.New("dial tcp: connection refused")
	}))

	result, err := handler.Handle(core.NewTestComponentContext("user_1", "guild_1", "creation:next:draft_1"))
	require.NoError(t, err)
	assert.NotContains(t, result.Response.Content, "dial tcp")
	assert.True(t, result.Response.Ephemeral)
}

func TestErrorMiddleware_SuccessPassesThrough(t *testing.T) {
	mw := ErrorMiddleware(discardLogger())
	handler := mw(respondWith("fine", 0))

	result, err := handler.Handle(core.NewTestComponentContext("user_1", "guild_1", "creation:next:draft_1"))
	require.NoError(t, err)
	assert.Equal(t, "fine", result.Response.Content)
	assert.False(t, result.Response.Ephemeral)
}

func TestRecoveryMiddleware_ConvertsPanic(t *testing.T) {
	mw := RecoveryMiddleware(discardLogger())
	handler := mw(core.HandlerFunc(func(ctx *core.InteractionContext) (*core.HandlerResult, error) {
		panic("nil draft")
	}))

	result, err := handler.Handle(core.NewTestComponentContext("user_1", "guild_1", "creation:next:draft_1"))
	require.Error(t, err)
	assert.Nil(t, result)

	handlerErr, ok := core.AsHandlerError(err)
	require.True(t, ok)
	assert.Equal(t, core.ErrorCodeInternal, handlerErr.Code)
}

func TestUserRateLimitMiddleware(t *testing.T) {
	mw := UserRateLimitMiddleware(2, 40*time.Millisecond)
	handler := mw(respondWith("ok", 0))
	ctx := core.NewTestComponentContext("user_1", "guild_1", "creation:next:draft_1")

	for i := 0; i < 2; i++ {
		result, err := handler.Handle(ctx)
		require.NoError(t, err)
		assert.Equal(t, "ok", result.Response.Content)
	}

	result, err := handler.Handle(ctx)
	require.NoError(t, err)
	assert.NotEqual(t, "ok", result.Response.Content)
	assert.True(t, result.Response.Ephemeral)

	// A different user is counted separately.
	other := core.NewTestComponentContext("user_2", "guild_1", "creation:next:draft_1")
	result, err = handler.Handle(other)
	require.NoError(t, err)
	assert.Equal(t, "ok", result.Response.Content)

	// The window resets.
	time.Sleep(50 * time.Millisecond)
	result, err = handler.Handle(ctx)
	require.NoError(t, err)
	assert.Equal(t, "ok", result.Response.Content)
}

func TestRouteLabel(t *testing.T) {
	tests := []struct {
		name string
		ctx  *core.InteractionContext
		want string
	}{
		{
			name: "command with subcommand",
			ctx:  core.NewTestCommandContext("user_1", "guild_1", "character", "list", nil),
			want: "character/list",
		},
		{
			name: "bare command",
			ctx:  core.NewTestCommandContext("user_1", "guild_1", "character", "", nil),
			want: "character",
		},
		{
			name: "component",
			ctx:  core.NewTestComponentContext("user_1", "guild_1", "creation:class:draft_1", "wizard"),
			want: "creation:class",
		},
		{
			name: "modal",
			ctx: core.NewTestModalContext("user_1", "guild_1", "creation:name_submit:draft_1",
				map[string]string{"character_name": "Mialee"}),
			want: "creation:name_submit",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RouteLabel(tt.ctx))
		})
	}
}
