// Package routers wires the interaction handlers onto the pipeline,
// one router per custom-ID domain.
package routers

import (
	"log/slog"

	"github.com/KirkDiggler/character-forge-discord/internal/discord/core"
	"github.com/KirkDiggler/character-forge-discord/internal/discord/handlers"
	"github.com/KirkDiggler/character-forge-discord/internal/services/creation"
)

// CreationRouterConfig wires the creation wizard router.
type CreationRouterConfig struct {
	Pipeline *core.Pipeline
	Service  creation.Service
	Logger   *slog.Logger
}

// CreationRouter owns the "creation" domain: every component and modal
// of the character wizard.
type CreationRouter struct {
	router  *core.Router
	handler *handlers.CreationHandler
}

// NewCreationRouter builds the wizard handler, maps its actions, and
// registers the router on the pipeline.
func NewCreationRouter(cfg *CreationRouterConfig) *CreationRouter {
	router := core.NewRouter("creation", cfg.Pipeline)

	handler := handlers.NewCreationHandler(&handlers.CreationHandlerConfig{
		Service:   cfg.Service,
		CustomIDs: router.CustomIDs(),
		SheetIDs:  core.NewCustomIDBuilder("character"),
		Logger:    cfg.Logger,
	})

	router.
		ComponentFunc("world", handler.HandleWorldSelect).
		ComponentFunc("campaign", handler.HandleCampaignSelect).
		ComponentFunc("path", handler.HandlePathButton).
		ComponentFunc("premade", handler.HandlePremadeSelect).
		ComponentFunc("class", handler.HandleClassSelect).
		ComponentFunc("race", handler.HandleRaceSelect).
		ComponentFunc("subrace", handler.HandleSubraceSelect).
		ComponentFunc("background", handler.HandleBackgroundSelect).
		ComponentFunc("name", handler.HandleNameButton).
		ComponentFunc("method", handler.HandleMethodButton).
		ComponentFunc("ability", handler.HandleAbilityFocus).
		ComponentFunc("score", handler.HandleScoreSelect).
		ComponentFunc("value", handler.HandleValueFocus).
		ComponentFunc("assign", handler.HandleAssignSelect).
		ComponentFunc("roll", handler.HandleRollButton).
		ComponentFunc("feature", handler.HandleFeatureSelect).
		ComponentFunc("cantrips", handler.HandleCantripSelect).
		ComponentFunc("spells", handler.HandleSpellSelect).
		ComponentFunc("skills", handler.HandleSkillSelect).
		ComponentFunc("equip", handler.HandleEquipSelect).
		ComponentFunc("alignment", handler.HandleAlignmentSelect).
		ComponentFunc("back", handler.HandleBack).
		ComponentFunc("next", handler.HandleNext).
		ComponentFunc("jump", handler.HandleJump).
		ComponentFunc("finalize", handler.HandleFinalize).
		ComponentFunc("discard", handler.HandleDiscard).
		ModalFunc("name_submit", handler.HandleNameSubmit)

	router.Register()

	return &CreationRouter{router: router, handler: handler}
}

// Handler exposes the wizard handler so the character router can reuse
// StartCreation for /character create.
func (r *CreationRouter) Handler() *handlers.CreationHandler {
	return r.handler
}
