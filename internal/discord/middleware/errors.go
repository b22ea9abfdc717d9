package middleware

import (
	"fmt"
	"log/slog"
	"runtime/debug"

	"github.com/KirkDiggler/character-forge-discord/internal/discord/core"
)

// ErrorMiddleware turns handler errors into ephemeral responses so
// they never propagate past the router. HandlerError messages reach
// the user; anything else is logged and hidden behind a generic one.
func ErrorMiddleware(log *slog.Logger) core.Middleware {
	if log == nil {
		log = slog.Default()
	}

	return func(next core.Handler) core.Handler {
		return core.HandlerFunc(func(ctx *core.InteractionContext) (*core.HandlerResult, error) {
			result, err := next.Handle(ctx)
			if err == nil {
				return result, nil
			}

			message := "Something went wrong. Please try again."
			level := slog.LevelError
			if handlerErr, ok := core.AsHandlerError(err); ok {
				message = handlerErr.UserMessage
				if handlerErr.Code < core.ErrorCodeInternal {
					level = slog.LevelWarn
				}
			}

			log.LogAttrs(ctx.Context, level, "interaction failed",
				slog.String("route", RouteLabel(ctx)),
				slog.String("user_id", ctx.UserID),
				slog.String("guild_id", ctx.GuildID),
				slog.Any("error", err),
			)

			return &core.HandlerResult{Response: core.NewEphemeralResponse(message)}, nil
		})
	}
}

// RecoveryMiddleware converts handler panics into errors so one bad
// interaction cannot take down the session event loop.
func RecoveryMiddleware(log *slog.Logger) core.Middleware {
	if log == nil {
		log = slog.Default()
	}

	return func(next core.Handler) core.Handler {
		return core.HandlerFunc(func(ctx *core.InteractionContext) (result *core.HandlerResult, err error) {
			defer func() {
				if r := recover(); r != nil {
					log.ErrorContext(ctx.Context, "panic in interaction handler",
						slog.String("route", RouteLabel(ctx)),
						slog.String("user_id", ctx.UserID),
						slog.Any("panic", r),
						slog.String("stack", string(debug.Stack())),
					)
					switch v := r.(type) {
					case error:
						err = core.NewInternalError(v)
					default:
						err = core.NewInternalError(fmt.Errorf("panic: %v", v))
					}
					result = nil
				}
			}()

			return next.Handle(ctx)
		})
	}
}
