package routers

import (
	"log/slog"

	"github.com/KirkDiggler/character-forge-discord/internal/discord/core"
	"github.com/KirkDiggler/character-forge-discord/internal/discord/handlers"
	"github.com/KirkDiggler/character-forge-discord/internal/services/creation"
)

// CharacterRouterConfig wires the /character command router. Creation
// handles the create subcommand so the wizard starts from the same
// code path as its components.
type CharacterRouterConfig struct {
	Pipeline *core.Pipeline
	Service  creation.Service
	Creation *handlers.CreationHandler
	Logger   *slog.Logger
}

// CharacterRouter owns the "character" domain: the /character slash
// command and the sheet buttons.
type CharacterRouter struct {
	router  *core.Router
	handler *handlers.CharacterHandler
}

// NewCharacterRouter builds the read-side handler, maps the command
// surface, and registers the router on the pipeline.
func NewCharacterRouter(cfg *CharacterRouterConfig) *CharacterRouter {
	router := core.NewRouter("character", cfg.Pipeline)

	handler := handlers.NewCharacterHandler(&handlers.CharacterHandlerConfig{
		Service:   cfg.Service,
		CustomIDs: router.CustomIDs(),
		Logger:    cfg.Logger,
	})

	router.
		SubcommandFunc("create", cfg.Creation.StartCreation).
		SubcommandFunc("list", handler.HandleList).
		SubcommandFunc("show", handler.HandleShow).
		ComponentFunc("sheet", handler.HandleSheetButton)

	router.Register()

	return &CharacterRouter{router: router, handler: handler}
}
