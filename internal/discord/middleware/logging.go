package middleware

import (
	"log/slog"
	"time"

	"github.com/KirkDiggler/character-forge-discord/internal/discord/core"
)

// LoggingMiddleware records every handled interaction with its route
// and duration.
func LoggingMiddleware(log *slog.Logger) core.Middleware {
	if log == nil {
		log = slog.Default()
	}

	return func(next core.Handler) core.Handler {
		return core.HandlerFunc(func(ctx *core.InteractionContext) (*core.HandlerResult, error) {
			start := time.Now()
			result, err := next.Handle(ctx)

			log.InfoContext(ctx.Context, "interaction handled",
				slog.String("route", RouteLabel(ctx)),
				slog.String("user_id", ctx.UserID),
				slog.String("guild_id", ctx.GuildID),
				slog.Duration("duration", time.Since(start)),
				slog.Bool("errored", err != nil),
			)

			return result, err
		})
	}
}

// RouteLabel names an interaction for logs: command/subcommand for
// slash commands, domain:action for components and modals.
func RouteLabel(ctx *core.InteractionContext) string {
	switch {
	case ctx.IsCommand():
		label := ctx.GetCommandName()
		if sub := ctx.GetSubcommand(); sub != "" {
			label += "/" + sub
		}
		return label
	case ctx.IsComponent(), ctx.IsModal():
		customID, err := core.ParseCustomID(ctx.GetCustomID())
		if err != nil {
			return ctx.GetCustomID()
		}
		return customID.Domain + ":" + customID.Action
	}
	return "unknown"
}
