// Package handlers implements the interaction handlers behind the
// character slash commands: the creation wizard and the sheet views.
package handlers

import (
	"errors"
	"log/slog"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/character-forge-discord/internal/discord/builders"
	"github.com/KirkDiggler/character-forge-discord/internal/discord/core"
	"github.com/KirkDiggler/character-forge-discord/internal/domain/character"
	"github.com/KirkDiggler/character-forge-discord/internal/domain/shared"
	dnderr "github.com/KirkDiggler/character-forge-discord/internal/errors"
	"github.com/KirkDiggler/character-forge-discord/internal/services/creation"
)

// Modal input IDs
const (
	inputCharacterName = "character_name"
	inputGender        = "gender"
	inputDescription   = "description"
)

// CreationHandler drives the creation wizard. Every component edits the
// same ephemeral message in place; selections only record, and the
// Continue button advances.
type CreationHandler struct {
	service  creation.Service
	ids      *core.CustomIDBuilder
	sheetIDs *core.CustomIDBuilder
	log      *slog.Logger
}

// CreationHandlerConfig wires the creation handler
type CreationHandlerConfig struct {
	Service creation.Service

	// CustomIDs builds this handler's component IDs
	CustomIDs *core.CustomIDBuilder

	// SheetIDs builds the character domain's IDs, for the sheet button
	// shown after finalizing
	SheetIDs *core.CustomIDBuilder

	Logger *slog.Logger
}

// NewCreationHandler creates the wizard handler
func NewCreationHandler(cfg *CreationHandlerConfig) *CreationHandler {
	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}
	return &CreationHandler{
		service:  cfg.Service,
		ids:      cfg.CustomIDs,
		sheetIDs: cfg.SheetIDs,
		log:      log,
	}
}

// StartCreation begins or resumes the wizard for /character create
func (h *CreationHandler) StartCreation(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	out, err := h.service.GetOrCreateDraft(ctx.Context, &creation.GetOrCreateDraftInput{
		OwnerID: ctx.UserID,
		RealmID: ctx.GuildID,
	})
	if err != nil {
		return nil, h.userFacingError(err)
	}

	response, err := h.stageResponse(ctx, out.Draft, viewFocus{})
	if err != nil {
		return nil, h.userFacingError(err)
	}
	response.Ephemeral = true
	if out.Resumed {
		response.Content = "Picking up where you left off."
	}
	return &core.HandlerResult{Response: response}, nil
}

// HandleWorldSelect records the world choice
func (h *CreationHandler) HandleWorldSelect(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	draft, _, err := h.draftFromComponent(ctx)
	if err != nil {
		return nil, err
	}
	key, err := singleValue(ctx, "Pick a world first.")
	if err != nil {
		return nil, err
	}
	out, err := h.service.UpdateDraft(ctx.Context, &creation.UpdateDraftInput{
		DraftID: draft.ID,
		Updates: &character.DraftUpdates{WorldKey: &key},
	})
	if err != nil {
		return nil, h.userFacingError(err)
	}
	return h.renderAfterUpdate(ctx, out, viewFocus{})
}

// HandleCampaignSelect records the campaign choice
func (h *CreationHandler) HandleCampaignSelect(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	draft, _, err := h.draftFromComponent(ctx)
	if err != nil {
		return nil, err
	}
	key, err := singleValue(ctx, "Pick a campaign first.")
	if err != nil {
		return nil, err
	}
	out, err := h.service.UpdateDraft(ctx.Context, &creation.UpdateDraftInput{
		DraftID: draft.ID,
		Updates: &character.DraftUpdates{CampaignKey: &key},
	})
	if err != nil {
		return nil, h.userFacingError(err)
	}
	return h.renderAfterUpdate(ctx, out, viewFocus{})
}

// HandlePathButton records the custom-or-premade decision carried in
// the button's argument
func (h *CreationHandler) HandlePathButton(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	draft, customID, err := h.draftFromComponent(ctx)
	if err != nil {
		return nil, err
	}

	path := character.Path(customID.Arg(0))
	if path != character.PathCustom && path != character.PathPremade {
		return nil, core.NewValidationError("That button has expired. Run /character create again.")
	}

	out, err := h.service.UpdateDraft(ctx.Context, &creation.UpdateDraftInput{
		DraftID: draft.ID,
		Updates: &character.DraftUpdates{Path: &path},
	})
	if err != nil {
		return nil, h.userFacingError(err)
	}
	return h.renderAfterUpdate(ctx, out, viewFocus{})
}

// HandlePremadeSelect copies the chosen premade hero onto the draft
func (h *CreationHandler) HandlePremadeSelect(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	draft, _, err := h.draftFromComponent(ctx)
	if err != nil {
		return nil, err
	}
	key, err := singleValue(ctx, "Pick a hero first.")
	if err != nil {
		return nil, err
	}
	updated, err := h.service.SelectPremade(ctx.Context, draft.ID, key)
	if err != nil {
		return nil, h.userFacingError(err)
	}
	return h.updateResult(ctx, updated, viewFocus{})
}

// HandleClassSelect records the class choice
func (h *CreationHandler) HandleClassSelect(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	draft, _, err := h.draftFromComponent(ctx)
	if err != nil {
		return nil, err
	}
	key, err := singleValue(ctx, "Pick a class first.")
	if err != nil {
		return nil, err
	}
	out, err := h.service.UpdateDraft(ctx.Context, &creation.UpdateDraftInput{
		DraftID: draft.ID,
		Updates: &character.DraftUpdates{ClassKey: &key},
	})
	if err != nil {
		return nil, h.userFacingError(err)
	}
	return h.renderAfterUpdate(ctx, out, viewFocus{})
}

// HandleRaceSelect records the race choice
func (h *CreationHandler) HandleRaceSelect(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	draft, _, err := h.draftFromComponent(ctx)
	if err != nil {
		return nil, err
	}
	key, err := singleValue(ctx, "Pick a race first.")
	if err != nil {
		return nil, err
	}
	out, err := h.service.UpdateDraft(ctx.Context, &creation.UpdateDraftInput{
		DraftID: draft.ID,
		Updates: &character.DraftUpdates{RaceKey: &key},
	})
	if err != nil {
		return nil, h.userFacingError(err)
	}
	return h.renderAfterUpdate(ctx, out, viewFocus{})
}

// HandleSubraceSelect records the subrace choice
func (h *CreationHandler) HandleSubraceSelect(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	draft, _, err := h.draftFromComponent(ctx)
	if err != nil {
		return nil, err
	}
	key, err := singleValue(ctx, "Pick a subrace first.")
	if err != nil {
		return nil, err
	}
	out, err := h.service.UpdateDraft(ctx.Context, &creation.UpdateDraftInput{
		DraftID: draft.ID,
		Updates: &character.DraftUpdates{SubraceKey: &key},
	})
	if err != nil {
		return nil, h.userFacingError(err)
	}
	return h.renderAfterUpdate(ctx, out, viewFocus{})
}

// HandleBackgroundSelect records the background choice
func (h *CreationHandler) HandleBackgroundSelect(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	draft, _, err := h.draftFromComponent(ctx)
	if err != nil {
		return nil, err
	}
	key, err := singleValue(ctx, "Pick a background first.")
	if err != nil {
		return nil, err
	}
	out, err := h.service.UpdateDraft(ctx.Context, &creation.UpdateDraftInput{
		DraftID: draft.ID,
		Updates: &character.DraftUpdates{BackgroundKey: &key},
	})
	if err != nil {
		return nil, h.userFacingError(err)
	}
	return h.renderAfterUpdate(ctx, out, viewFocus{})
}

// HandleNameButton opens the identity modal. Modals must be the
// immediate response, so this action carries a defer skip rule.
func (h *CreationHandler) HandleNameButton(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	draft, _, err := h.draftFromComponent(ctx)
	if err != nil {
		return nil, err
	}

	modal := &core.Modal{
		CustomID: h.ids.Encode("name_submit", draft.ID),
		Title:    "Who Are You?",
		Inputs: []core.ModalInput{
			{
				CustomID:    inputCharacterName,
				Label:       "Character Name",
				Style:       discordgo.TextInputShort,
				Placeholder: "Tordek Battlehammer",
				Value:       draft.Name,
				Required:    true,
				MaxLength:   50,
			},
			{
				CustomID:  inputGender,
				Label:     "Gender (optional)",
				Style:     discordgo.TextInputShort,
				Value:     draft.Gender,
				MaxLength: 30,
			},
			{
				CustomID:    inputDescription,
				Label:       "Description (optional)",
				Style:       discordgo.TextInputParagraph,
				Placeholder: "A few lines about your character.",
				Value:       draft.Description,
				MaxLength:   500,
			},
		},
	}
	return &core.HandlerResult{Response: core.NewModalResponse(modal)}, nil
}

// HandleNameSubmit records the identity modal's fields
func (h *CreationHandler) HandleNameSubmit(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	draft, _, err := h.draftFromComponent(ctx)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(ctx.GetStringParam(inputCharacterName))
	if name == "" {
		return nil, core.NewValidationError("Give your character a name.")
	}
	gender := strings.TrimSpace(ctx.GetStringParam(inputGender))
	description := strings.TrimSpace(ctx.GetStringParam(inputDescription))

	out, err := h.service.UpdateDraft(ctx.Context, &creation.UpdateDraftInput{
		DraftID: draft.ID,
		Updates: &character.DraftUpdates{
			Name:        &name,
			Gender:      &gender,
			Description: &description,
		},
	})
	if err != nil {
		return nil, h.userFacingError(err)
	}
	return h.renderAfterUpdate(ctx, out, viewFocus{})
}

// HandleMethodButton switches the ability score generation method
func (h *CreationHandler) HandleMethodButton(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	draft, customID, err := h.draftFromComponent(ctx)
	if err != nil {
		return nil, err
	}

	method := character.AbilityMethod(customID.Arg(0))
	switch method {
	case character.AbilityMethodPointBuy, character.AbilityMethodStandardArray, character.AbilityMethodDiceRoll:
	default:
		return nil, core.NewValidationError("That button has expired. Run /character create again.")
	}

	out, err := h.service.UpdateDraft(ctx.Context, &creation.UpdateDraftInput{
		DraftID: draft.ID,
		Updates: &character.DraftUpdates{AbilityMethod: &method},
	})
	if err != nil {
		return nil, h.userFacingError(err)
	}
	return h.renderAfterUpdate(ctx, out, viewFocus{})
}

// HandleAbilityFocus shows the score picker for the chosen ability.
// Nothing is written until a score is picked.
func (h *CreationHandler) HandleAbilityFocus(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	draft, _, err := h.draftFromComponent(ctx)
	if err != nil {
		return nil, err
	}
	value, err := singleValue(ctx, "Pick an ability first.")
	if err != nil {
		return nil, err
	}
	attr := shared.ParseAttribute(value)
	if attr == shared.AttributeNone {
		return nil, core.NewValidationError("That ability isn't recognized.")
	}
	return h.updateResult(ctx, draft, viewFocus{ability: attr})
}

// HandleScoreSelect sets one point-buy score. The ability rides in the
// custom ID; the score is the selected value.
func (h *CreationHandler) HandleScoreSelect(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	draft, customID, err := h.draftFromComponent(ctx)
	if err != nil {
		return nil, err
	}
	attr := shared.ParseAttribute(customID.Arg(0))
	if attr == shared.AttributeNone {
		return nil, core.NewValidationError("That control has expired. Run /character create again.")
	}
	value, err := singleValue(ctx, "Pick a score first.")
	if err != nil {
		return nil, err
	}
	score, err := strconv.Atoi(value)
	if err != nil {
		return nil, core.NewValidationError("That score isn't a number.")
	}

	updated, err := h.service.SetAbilityScore(ctx.Context, &creation.SetAbilityScoreInput{
		DraftID: draft.ID,
		Ability: attr,
		Score:   score,
	})
	if err != nil {
		return nil, h.userFacingError(err)
	}
	return h.updateResult(ctx, updated, viewFocus{})
}

// HandleValueFocus shows the assignment picker for the chosen roll
func (h *CreationHandler) HandleValueFocus(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	draft, _, err := h.draftFromComponent(ctx)
	if err != nil {
		return nil, err
	}
	rollID, err := singleValue(ctx, "Pick a value first.")
	if err != nil {
		return nil, err
	}
	return h.updateResult(ctx, draft, viewFocus{rollID: rollID})
}

// HandleAssignSelect binds the roll named in the custom ID to the
// selected ability
func (h *CreationHandler) HandleAssignSelect(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	draft, customID, err := h.draftFromComponent(ctx)
	if err != nil {
		return nil, err
	}
	rollID := customID.Arg(0)
	if rollID == "" {
		return nil, core.NewValidationError("That control has expired. Run /character create again.")
	}
	value, err := singleValue(ctx, "Pick an ability first.")
	if err != nil {
		return nil, err
	}
	attr := shared.ParseAttribute(value)
	if attr == shared.AttributeNone {
		return nil, core.NewValidationError("That ability isn't recognized.")
	}

	updated, err := h.service.AssignRoll(ctx.Context, &creation.AssignRollInput{
		DraftID: draft.ID,
		Ability: attr,
		RollID:  rollID,
	})
	if err != nil {
		return nil, h.userFacingError(err)
	}
	return h.updateResult(ctx, updated, viewFocus{})
}

// HandleRollButton rolls a fresh set of six scores
func (h *CreationHandler) HandleRollButton(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	draft, _, err := h.draftFromComponent(ctx)
	if err != nil {
		return nil, err
	}
	updated, err := h.service.RollAbilities(ctx.Context, draft.ID)
	if err != nil {
		return nil, h.userFacingError(err)
	}
	return h.updateResult(ctx, updated, viewFocus{})
}

// HandleFeatureSelect records one class feature decision. The feature
// key rides in the custom ID so each select edits only its own entry.
func (h *CreationHandler) HandleFeatureSelect(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	draft, customID, err := h.draftFromComponent(ctx)
	if err != nil {
		return nil, err
	}
	featureKey := customID.Arg(0)
	if featureKey == "" {
		return nil, core.NewValidationError("That control has expired. Run /character create again.")
	}
	optionKey, err := singleValue(ctx, "Pick an option first.")
	if err != nil {
		return nil, err
	}

	// Updates replace the whole map, so carry the other features over.
	choices := make(map[string]string, len(draft.FeatureChoices)+1)
	for k, v := range draft.FeatureChoices {
		choices[k] = v
	}
	choices[featureKey] = optionKey

	out, err := h.service.UpdateDraft(ctx.Context, &creation.UpdateDraftInput{
		DraftID: draft.ID,
		Updates: &character.DraftUpdates{FeatureChoices: choices},
	})
	if err != nil {
		return nil, h.userFacingError(err)
	}
	return h.renderAfterUpdate(ctx, out, viewFocus{})
}

// HandleCantripSelect records the cantrip picks
func (h *CreationHandler) HandleCantripSelect(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	draft, _, err := h.draftFromComponent(ctx)
	if err != nil {
		return nil, err
	}
	out, err := h.service.UpdateDraft(ctx.Context, &creation.UpdateDraftInput{
		DraftID: draft.ID,
		Updates: &character.DraftUpdates{Cantrips: ctx.SelectedValues()},
	})
	if err != nil {
		return nil, h.userFacingError(err)
	}
	return h.renderAfterUpdate(ctx, out, viewFocus{})
}

// HandleSpellSelect records the spell picks
func (h *CreationHandler) HandleSpellSelect(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	draft, _, err := h.draftFromComponent(ctx)
	if err != nil {
		return nil, err
	}
	out, err := h.service.UpdateDraft(ctx.Context, &creation.UpdateDraftInput{
		DraftID: draft.ID,
		Updates: &character.DraftUpdates{Spells: ctx.SelectedValues()},
	})
	if err != nil {
		return nil, h.userFacingError(err)
	}
	return h.renderAfterUpdate(ctx, out, viewFocus{})
}

// HandleSkillSelect records the skill picks
func (h *CreationHandler) HandleSkillSelect(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	draft, _, err := h.draftFromComponent(ctx)
	if err != nil {
		return nil, err
	}
	out, err := h.service.UpdateDraft(ctx.Context, &creation.UpdateDraftInput{
		DraftID: draft.ID,
		Updates: &character.DraftUpdates{Skills: ctx.SelectedValues()},
	})
	if err != nil {
		return nil, h.userFacingError(err)
	}
	return h.renderAfterUpdate(ctx, out, viewFocus{})
}

// HandleEquipSelect records which branch of one equipment choice was
// taken. The choice ID rides in the custom ID; the value is the branch
// index.
func (h *CreationHandler) HandleEquipSelect(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	draft, customID, err := h.draftFromComponent(ctx)
	if err != nil {
		return nil, err
	}
	choiceID := customID.Arg(0)
	if choiceID == "" {
		return nil, core.NewValidationError("That control has expired. Run /character create again.")
	}
	value, err := singleValue(ctx, "Pick an option first.")
	if err != nil {
		return nil, err
	}
	branch, err := strconv.Atoi(value)
	if err != nil {
		return nil, core.NewValidationError("That option isn't recognized.")
	}

	choices := make(map[string]int, len(draft.EquipmentChoices)+1)
	for k, v := range draft.EquipmentChoices {
		choices[k] = v
	}
	choices[choiceID] = branch

	out, err := h.service.UpdateDraft(ctx.Context, &creation.UpdateDraftInput{
		DraftID: draft.ID,
		Updates: &character.DraftUpdates{EquipmentChoices: choices},
	})
	if err != nil {
		return nil, h.userFacingError(err)
	}
	return h.renderAfterUpdate(ctx, out, viewFocus{})
}

// HandleAlignmentSelect records the alignment choice
func (h *CreationHandler) HandleAlignmentSelect(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	draft, _, err := h.draftFromComponent(ctx)
	if err != nil {
		return nil, err
	}
	key, err := singleValue(ctx, "Pick an alignment first.")
	if err != nil {
		return nil, err
	}
	out, err := h.service.UpdateDraft(ctx.Context, &creation.UpdateDraftInput{
		DraftID: draft.ID,
		Updates: &character.DraftUpdates{AlignmentKey: &key},
	})
	if err != nil {
		return nil, h.userFacingError(err)
	}
	return h.renderAfterUpdate(ctx, out, viewFocus{})
}

// HandleBack steps to the previous stage
func (h *CreationHandler) HandleBack(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	draft, _, err := h.draftFromComponent(ctx)
	if err != nil {
		return nil, err
	}
	out, err := h.service.Retreat(ctx.Context, draft.ID)
	if err != nil {
		return nil, h.userFacingError(err)
	}
	return h.updateResult(ctx, out.Draft, viewFocus{})
}

// HandleNext validates the current stage and advances
func (h *CreationHandler) HandleNext(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	draft, _, err := h.draftFromComponent(ctx)
	if err != nil {
		return nil, err
	}
	out, err := h.service.Advance(ctx.Context, draft.ID)
	if err != nil {
		return nil, h.userFacingError(err)
	}
	return h.updateResult(ctx, out.Draft, viewFocus{})
}

// HandleJump moves directly to a previously completed stage
func (h *CreationHandler) HandleJump(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	draft, _, err := h.draftFromComponent(ctx)
	if err != nil {
		return nil, err
	}
	value, err := singleValue(ctx, "Pick a stage first.")
	if err != nil {
		return nil, err
	}
	out, err := h.service.JumpTo(ctx.Context, draft.ID, character.Stage(value))
	if err != nil {
		return nil, h.userFacingError(err)
	}
	return h.updateResult(ctx, out.Draft, viewFocus{})
}

// HandleFinalize turns the draft into a character and replaces the
// wizard view with the result
func (h *CreationHandler) HandleFinalize(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	draft, _, err := h.draftFromComponent(ctx)
	if err != nil {
		return nil, err
	}
	out, err := h.service.FinalizeDraft(ctx.Context, draft.ID)
	if err != nil {
		return nil, h.userFacingError(err)
	}

	char := out.Character
	embed := builders.SuccessEmbed("Character Created!",
		char.Name+" is ready for adventure.").
		Field("Class", char.ClassName, true).
		Field("Race", char.RaceName, true).
		Field("Level", strconv.Itoa(char.Level), true).
		Field("HP", strconv.Itoa(char.MaxHitPoints), true).
		Field("AC", strconv.Itoa(char.ArmorClass), true).
		Field("Speed", strconv.Itoa(char.Speed)+" ft.", true).
		Build()

	components := builders.NewComponents(h.sheetIDs).
		PrimaryButton("View Sheet", "sheet", char.ID).
		Build()

	response := &core.Response{
		Content:    "",
		Embeds:     []*discordgo.MessageEmbed{embed},
		Components: components,
		Update:     true,
	}
	return &core.HandlerResult{Response: response}, nil
}

// HandleDiscard deletes the draft and clears the wizard view
func (h *CreationHandler) HandleDiscard(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	draft, _, err := h.draftFromComponent(ctx)
	if err != nil {
		return nil, err
	}
	if err := h.service.DeleteDraft(ctx.Context, draft.ID); err != nil {
		return nil, h.userFacingError(err)
	}

	response := &core.Response{
		Content:    "🗑️ Draft discarded. Run `/character create` to start fresh.",
		Embeds:     []*discordgo.MessageEmbed{},
		Components: []discordgo.MessageComponent{},
		Update:     true,
	}
	return &core.HandlerResult{Response: response}, nil
}

// draftFromComponent loads the draft named in the interaction's custom
// ID and enforces ownership.
func (h *CreationHandler) draftFromComponent(ctx *core.InteractionContext) (*character.CharacterDraft, *core.CustomID, error) {
	customID, err := core.ParseCustomID(ctx.GetCustomID())
	if err != nil || customID.Target == "" {
		return nil, nil, core.NewValidationError("That control has expired. Run /character create again.")
	}

	draft, err := h.service.GetDraft(ctx.Context, customID.Target)
	if err != nil {
		return nil, nil, h.userFacingError(err)
	}
	if draft.OwnerID != ctx.UserID {
		return nil, nil, core.NewForbiddenError("You can only edit your own characters!")
	}
	return draft, customID, nil
}

// updateResult renders the draft's current stage as an in-place edit
func (h *CreationHandler) updateResult(ctx *core.InteractionContext, draft *character.CharacterDraft, focus viewFocus) (*core.HandlerResult, error) {
	response, err := h.stageResponse(ctx, draft, focus)
	if err != nil {
		return nil, h.userFacingError(err)
	}
	return &core.HandlerResult{Response: response.AsUpdate()}, nil
}

// renderAfterUpdate renders the stage and, when the cascade cleared
// dependent fields, says so.
func (h *CreationHandler) renderAfterUpdate(ctx *core.InteractionContext, out *creation.UpdateDraftOutput, focus viewFocus) (*core.HandlerResult, error) {
	result, err := h.updateResult(ctx, out.Draft, focus)
	if err != nil {
		return nil, err
	}
	if len(out.Cleared) > 0 {
		result.Response.Content = "Changing that reset some dependent choices. They'll come up again as you continue."
	}
	return result, nil
}

// userFacingError maps service errors onto handler errors so the user
// sees stage validation messages verbatim and internals stay hidden.
func (h *CreationHandler) userFacingError(err error) error {
	switch {
	case dnderr.IsValidation(err), dnderr.IsInvalidArgument(err):
		return core.NewUserError(serviceMessage(err), core.ErrorCodeBadRequest)
	case dnderr.IsMissingDependency(err):
		return core.NewUserError(serviceMessage(err), core.ErrorCodeConflict)
	case dnderr.IsNotFound(err):
		return core.NewUserError("That draft is gone. Run /character create to start a new one.", core.ErrorCodeNotFound)
	case dnderr.IsUnavailable(err):
		return core.NewUserError("The rules service isn't answering right now. Try again in a moment.", core.ErrorCodeUnavailable)
	default:
		return core.NewInternalError(err)
	}
}

// serviceMessage extracts the human-readable part of a service error
func serviceMessage(err error) string {
	var appErr *dnderr.Error
	if errors.As(err, &appErr) && appErr.Message != "" {
		return appErr.Message
	}
	return "That didn't work. Check your choices and try again."
}

// singleValue returns the one selected value of a select interaction
func singleValue(ctx *core.InteractionContext, emptyMessage string) (string, error) {
	values := ctx.SelectedValues()
	if len(values) == 0 || values[0] == "" {
		return "", core.NewValidationError(emptyMessage)
	}
	return values[0], nil
}
