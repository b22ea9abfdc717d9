// Package middleware provides cross-cutting interaction handling:
// deferral, error rendering, panic recovery, logging, and rate limits.
package middleware

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/KirkDiggler/character-forge-discord/internal/discord/core"
)

// DeferSkipRule names an interaction that must not be deferred, such
// as an action that answers with a modal.
type DeferSkipRule struct {
	Domain string
	// Action matches a component action, or "*" for every action in
	// the domain. Ignored for slash commands.
	Action string
}

// DeferConfig configures the defer middleware
type DeferConfig struct {
	// After is how long the handler may run before the interaction is
	// deferred. Discord closes the window at 3 seconds.
	After time.Duration

	// EphemeralCommands controls visibility of deferred command
	// responses. Component deferrals update in place and ignore this.
	EphemeralCommands bool

	// Skip lists interactions that are never deferred
	Skip []DeferSkipRule

	Logger *slog.Logger
}

// DeferMiddleware acknowledges slow interactions before Discord's
// response deadline. Handlers that finish quickly respond directly.
func DeferMiddleware(config *DeferConfig) core.Middleware {
	if config == nil {
		config = &DeferConfig{}
	}
	after := config.After
	if after <= 0 {
		after = 2 * time.Second
	}
	log := config.Logger
	if log == nil {
		log = slog.Default()
	}

	return func(next core.Handler) core.Handler {
		return core.HandlerFunc(func(ctx *core.InteractionContext) (*core.HandlerResult, error) {
			responder := core.ResponderFrom(ctx)
			if responder == nil || shouldSkipDefer(ctx, config.Skip) {
				return next.Handle(ctx)
			}

			type handlerResponse struct {
				result *core.HandlerResult
				err    error
			}
			done := make(chan handlerResponse, 1)
			go func() {
				// A panic here would escape the recovery middleware
				// on the calling goroutine.
				defer func() {
					if r := recover(); r != nil {
						done <- handlerResponse{nil, fmt.Errorf("panic: %v", r)}
					}
				}()
				result, err := next.Handle(ctx)
				done <- handlerResponse{result, err}
			}()

			timer := time.NewTimer(after)
			defer timer.Stop()

			select {
			case resp := <-done:
				return resp.result, resp.err

			case <-timer.C:
				if err := responder.Defer(config.EphemeralCommands); err != nil {
					log.WarnContext(ctx.Context, "failed to defer interaction",
						slog.String("user_id", ctx.UserID),
						slog.Any("error", err),
					)
				}
				resp := <-done
				if resp.result != nil {
					resp.result.Deferred = true
				}
				return resp.result, resp.err
			}
		})
	}
}

func shouldSkipDefer(ctx *core.InteractionContext, rules []DeferSkipRule) bool {
	if len(rules) == 0 {
		return false
	}

	if ctx.IsComponent() || ctx.IsModal() {
		customID, err := core.ParseCustomID(ctx.GetCustomID())
		if err != nil {
			return false
		}
		for _, rule := range rules {
			if rule.Domain == customID.Domain &&
				(rule.Action == "*" || rule.Action == customID.Action) {
				return true
			}
		}
		return false
	}

	for _, rule := range rules {
		if rule.Domain == ctx.GetCommandName() && rule.Action == "" {
			return true
		}
	}
	return false
}
