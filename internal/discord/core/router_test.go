package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler(content string) func(ctx *InteractionContext) (*HandlerResult, error) {
	return func(ctx *InteractionContext) (*HandlerResult, error) {
		return &HandlerResult{Response: NewResponse(content)}, nil
	}
}

func TestRouter_CommandRouting(t *testing.T) {
	router := NewRouter("character", NewPipeline(nil))
	router.CommandFunc(okHandler("root"))
	router.SubcommandFunc("list", okHandler("listed"))
	handler := router.Build()

	tests := []struct {
		name        string
		ctx         *InteractionContext
		wantHandled bool
		wantContent string
	}{
		{
			name:        "bare command",
			ctx:         NewTestCommandContext("user_1", "guild_1", "character", "", nil),
			wantHandled: true,
			wantContent: "root",
		},
		{
			name:        "subcommand",
			ctx:         NewTestCommandContext("user_1", "guild_1", "character", "list", nil),
			wantHandled: true,
			wantContent: "listed",
		},
		{
			name:        "unregistered subcommand",
			ctx:         NewTestCommandContext("user_1", "guild_1", "character", "delete", nil),
			wantHandled: false,
		},
		{
			name:        "different command",
			ctx:         NewTestCommandContext("user_1", "guild_1", "ping", "", nil),
			wantHandled: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantHandled, handler.CanHandle(tt.ctx))
			if !tt.wantHandled {
				return
			}
			result, err := handler.Handle(tt.ctx)
			require.NoError(t, err)
			require.NotNil(t, result)
			assert.Equal(t, tt.wantContent, result.Response.Content)
		})
	}
}

func TestRouter_ComponentRouting(t *testing.T) {
	var gotTarget string
	var gotValues []string

	router := NewRouter("creation", NewPipeline(nil))
	router.ComponentFunc("world", func(ctx *InteractionContext) (*HandlerResult, error) {
		customID, err := ParseCustomID(ctx.GetCustomID())
		require.NoError(t, err)
		gotTarget = customID.Target
		gotValues = ctx.SelectedValues()
		return &HandlerResult{Response: NewResponse("picked")}, nil
	})
	handler := router.Build()

	ctx := NewTestComponentContext("user_1", "guild_1", "creation:world:draft_1", "forgotten-realms")
	require.True(t, handler.CanHandle(ctx))

	result, err := handler.Handle(ctx)
	require.NoError(t, err)
	assert.Equal(t, "picked", result.Response.Content)
	assert.Equal(t, "draft_1", gotTarget)
	assert.Equal(t, []string{"forgotten-realms"}, gotValues)

	assert.False(t, handler.CanHandle(NewTestComponentContext("user_1", "guild_1", "creation:unknown:draft_1")))
	assert.False(t, handler.CanHandle(NewTestComponentContext("user_1", "guild_1", "combat:world:draft_1")))
	assert.False(t, handler.CanHandle(NewTestComponentContext("user_1", "guild_1", "garbage")))
}

func TestRouter_ModalRouting(t *testing.T) {
	var gotName string

	router := NewRouter("creation", NewPipeline(nil))
	router.ModalFunc("name_submit", func(ctx *InteractionContext) (*HandlerResult, error) {
		gotName = ctx.GetStringParam("character_name")
		return &HandlerResult{Response: NewResponse("named")}, nil
	})
	handler := router.Build()

	ctx := NewTestModalContext("user_1", "guild_1", "creation:name_submit:draft_1", map[string]string{
		"character_name": "Tordek",
	})
	require.True(t, handler.CanHandle(ctx))

	result, err := handler.Handle(ctx)
	require.NoError(t, err)
	assert.Equal(t, "named", result.Response.Content)
	assert.Equal(t, "Tordek", gotName)

	// The same action as a component does not match the modal route.
	assert.False(t, handler.CanHandle(NewTestComponentContext("user_1", "guild_1", "creation:name_submit:draft_1")))
}

func TestRouter_MiddlewareOrder(t *testing.T) {
	var calls []string
	named := func(name string) Middleware {
		return func(next Handler) Handler {
			return HandlerFunc(func(ctx *InteractionContext) (*HandlerResult, error) {
				calls = append(calls, name)
				return next.Handle(ctx)
			})
		}
	}

	router := NewRouter("character", NewPipeline(nil))
	router.Use(named("outer"), named("inner"))
	router.CommandFunc(func(ctx *InteractionContext) (*HandlerResult, error) {
		calls = append(calls, "handler")
		return &HandlerResult{Response: NewResponse("done")}, nil
	})

	_, err := router.Build().Handle(NewTestCommandContext("user_1", "guild_1", "character", "", nil))
	require.NoError(t, err)
	assert.Equal(t, []string{"outer", "inner", "handler"}, calls)
}

func TestRouter_CustomIDs(t *testing.T) {
	router := NewRouter("creation", NewPipeline(nil))
	assert.Equal(t, "creation", router.Domain())
	assert.Equal(t, "creation:next:draft_9", router.CustomIDs().Encode("next", "draft_9"))
}
