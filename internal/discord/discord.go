// Package discord assembles the interaction pipeline: middleware,
// routers, and the slash command surface.
package discord

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/character-forge-discord/internal/discord/core"
	"github.com/KirkDiggler/character-forge-discord/internal/discord/middleware"
	"github.com/KirkDiggler/character-forge-discord/internal/discord/routers"
	"github.com/KirkDiggler/character-forge-discord/internal/services/creation"
)

// Rate limit for interactions per user. Wizard clicks come fast, so
// this only has to catch runaway loops and abuse.
const (
	rateLimitRequests = 20
	rateLimitWindow   = 10 * time.Second
)

// Config wires the Discord layer.
type Config struct {
	Session *discordgo.Session
	Service creation.Service
	Logger  *slog.Logger
}

// Setup builds the pipeline, registers the routers, and attaches the
// pipeline to the session's interaction events.
func Setup(cfg *Config) *core.Pipeline {
	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}

	pipeline := core.NewPipeline(log)
	pipeline.Use(
		middleware.RecoveryMiddleware(log),
		middleware.LoggingMiddleware(log),
		middleware.ErrorMiddleware(log),
		middleware.UserRateLimitMiddleware(rateLimitRequests, rateLimitWindow),
		middleware.DeferMiddleware(&middleware.DeferConfig{
			EphemeralCommands: true,
			Skip: []middleware.DeferSkipRule{
				// The name button opens a modal, which must be the
				// immediate response.
				{Domain: "creation", Action: "name"},
			},
			Logger: log,
		}),
	)

	creationRouter := routers.NewCreationRouter(&routers.CreationRouterConfig{
		Pipeline: pipeline,
		Service:  cfg.Service,
		Logger:   log,
	})
	routers.NewCharacterRouter(&routers.CharacterRouterConfig{
		Pipeline: pipeline,
		Service:  cfg.Service,
		Creation: creationRouter.Handler(),
		Logger:   log,
	})

	cfg.Session.AddHandler(pipeline.Execute)
	return pipeline
}

// RegisterCommands registers the slash command surface with Discord.
// An empty guildID registers globally.
func RegisterCommands(s *discordgo.Session, guildID string) error {
	commands := []*discordgo.ApplicationCommand{
		{
			Name:        "character",
			Description: "Create and manage D&D 5e characters",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Name:        "create",
					Description: "Create a new character",
					Type:        discordgo.ApplicationCommandOptionSubCommand,
				},
				{
					Name:        "list",
					Description: "List your characters on this server",
					Type:        discordgo.ApplicationCommandOptionSubCommand,
				},
				{
					Name:        "show",
					Description: "Show a character sheet",
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "id",
							Description: "Character ID",
							Required:    true,
						},
					},
				},
			},
		},
	}

	for _, cmd := range commands {
		if _, err := s.ApplicationCommandCreate(s.State.User.ID, guildID, cmd); err != nil {
			return fmt.Errorf("failed to create command %s: %w", cmd.Name, err)
		}
	}
	return nil
}
