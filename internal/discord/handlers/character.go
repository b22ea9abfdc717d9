package handlers

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/character-forge-discord/internal/discord/builders"
	"github.com/KirkDiggler/character-forge-discord/internal/discord/core"
	"github.com/KirkDiggler/character-forge-discord/internal/domain/character"
	"github.com/KirkDiggler/character-forge-discord/internal/domain/shared"
	dnderr "github.com/KirkDiggler/character-forge-discord/internal/errors"
	"github.com/KirkDiggler/character-forge-discord/internal/services/creation"
)

// listSheetButtons caps how many quick sheet buttons the list shows
const listSheetButtons = 5

// CharacterHandler serves the read side: finalized character lists and
// sheets.
type CharacterHandler struct {
	service creation.Service
	ids     *core.CustomIDBuilder
	log     *slog.Logger
}

// CharacterHandlerConfig wires the character handler's collaborators.
type CharacterHandlerConfig struct {
	Service   creation.Service
	CustomIDs *core.CustomIDBuilder
	Logger    *slog.Logger
}

// NewCharacterHandler creates the handler
func NewCharacterHandler(cfg *CharacterHandlerConfig) *CharacterHandler {
	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}
	return &CharacterHandler{
		service: cfg.Service,
		ids:     cfg.CustomIDs,
		log:     log,
	}
}

// HandleList answers /character list with the caller's finalized
// characters in this guild.
func (h *CharacterHandler) HandleList(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	chars, err := h.service.ListCharacters(ctx.Context, ctx.UserID, ctx.GuildID)
	if err != nil {
		return nil, userFacingServiceError(err)
	}

	if len(chars) == 0 {
		return &core.HandlerResult{
			Response: core.NewEphemeralResponse("You have no characters here yet. Run `/character create` to make one."),
		}, nil
	}

	embed := builders.NewEmbed().
		Title("Your Characters").
		Description(fmt.Sprintf("%d on this server.", len(chars))).
		Color(builders.ColorInfo)
	for _, char := range chars {
		embed.Field(char.Name, characterSummary(char), false)
	}

	components := builders.NewComponents(h.ids)
	for i, char := range chars {
		if i >= listSheetButtons {
			break
		}
		components.SecondaryButton(char.Name, "sheet", char.ID)
	}

	response := core.NewEmbedResponse(embed.Build()).WithComponents(components.Build()...)
	response.Ephemeral = true
	return &core.HandlerResult{Response: response}, nil
}

// HandleShow answers /character show id:<character-id>
func (h *CharacterHandler) HandleShow(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	characterID := ctx.GetStringParam("id")
	if characterID == "" {
		return nil, core.NewValidationError("Give me a character ID. `/character list` shows yours.")
	}

	char, err := h.loadVisibleCharacter(ctx, characterID)
	if err != nil {
		return nil, err
	}

	response := core.NewEmbedResponse(sheetEmbed(char))
	response.Ephemeral = true
	return &core.HandlerResult{Response: response}, nil
}

// HandleSheetButton opens a sheet from a View Sheet button. The sheet
// goes out as a fresh ephemeral message so the originating card stays.
func (h *CharacterHandler) HandleSheetButton(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	customID, err := core.ParseCustomID(ctx.GetCustomID())
	if err != nil || customID.Target == "" {
		return nil, core.NewValidationError("That button has expired. Use `/character show` instead.")
	}

	char, err := h.loadVisibleCharacter(ctx, customID.Target)
	if err != nil {
		return nil, err
	}

	response := core.NewEmbedResponse(sheetEmbed(char))
	response.Ephemeral = true
	return &core.HandlerResult{Response: response}, nil
}

// loadVisibleCharacter fetches a character the caller is allowed to
// see: their own, or anyone's in the same guild. Anything else reads
// as not found so IDs don't leak across servers.
func (h *CharacterHandler) loadVisibleCharacter(ctx *core.InteractionContext, characterID string) (*character.Character, error) {
	char, err := h.service.GetCharacter(ctx.Context, characterID)
	if err != nil {
		return nil, userFacingServiceError(err)
	}
	if char.OwnerID != ctx.UserID && char.RealmID != ctx.GuildID {
		return nil, core.NewNotFoundError("That character")
	}
	return char, nil
}

func characterSummary(char *character.Character) string {
	return fmt.Sprintf("Level %d %s %s · HP %d · AC %d",
		char.Level, char.RaceName, char.ClassName, char.MaxHitPoints, char.ArmorClass)
}

// sheetEmbed renders the full character sheet
func sheetEmbed(char *character.Character) *discordgo.MessageEmbed {
	embed := builders.NewEmbed().
		Title(char.Name).
		Description(sheetHeadline(char)).
		Color(builders.ColorPrimary).
		Footer("ID: " + char.ID)

	for _, attr := range shared.Attributes {
		embed.Field(attr.FullName(), char.AttributeScore(attr).String(), true)
	}

	embed.Field("Combat", fmt.Sprintf("HP %d/%d · AC %d · Initiative %+d · Speed %d ft. · Proficiency %+d",
		char.HitPoints, char.MaxHitPoints, char.ArmorClass, char.Initiative, char.Speed, char.ProficiencyBonus), false)

	if len(char.Skills) > 0 {
		embed.Field("Skills", titleKeys(char.Skills), false)
	}
	if len(char.Features) > 0 {
		embed.Field("Features", featureLine(char.Features), false)
	}
	if char.Spellcasting != nil {
		embed.Field("Spellcasting", spellcastingBlock(char.Spellcasting), false)
	}
	if len(char.Inventory) > 0 {
		embed.Field("Equipment", joinItemNames(char.Inventory), false)
	}

	return embed.Build()
}

func sheetHeadline(char *character.Character) string {
	race := char.RaceName
	if char.SubraceKey != "" {
		race = titleKey(char.SubraceKey)
	}
	parts := []string{fmt.Sprintf("Level %d %s %s", char.Level, race, char.ClassName)}
	if char.BackgroundKey != "" {
		parts = append(parts, titleKey(char.BackgroundKey))
	}
	if char.AlignmentKey != "" {
		parts = append(parts, titleKey(char.AlignmentKey))
	}
	return strings.Join(parts, " · ")
}

func spellcastingBlock(info *character.SpellcastingInfo) string {
	lines := make([]string, 0, 3)
	if info.Ability != shared.AttributeNone {
		lines = append(lines, "Ability: "+info.Ability.FullName())
	}
	if len(info.Cantrips) > 0 {
		lines = append(lines, "Cantrips: "+titleKeys(info.Cantrips))
	}
	if len(info.Spells) > 0 {
		lines = append(lines, "Spells: "+titleKeys(info.Spells))
	}
	return strings.Join(lines, "\n")
}

// userFacingServiceError maps service errors for the read commands
func userFacingServiceError(err error) error {
	if dnderr.IsNotFound(err) {
		return core.NewNotFoundError("That character")
	}
	if dnderr.IsUnavailable(err) {
		return core.NewUserError("The storage layer isn't answering right now. Try again in a moment.", core.ErrorCodeUnavailable)
	}
	return core.NewInternalError(err)
}
