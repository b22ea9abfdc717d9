package handlers

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/character-forge-discord/internal/discord/builders"
	"github.com/KirkDiggler/character-forge-discord/internal/discord/core"
	"github.com/KirkDiggler/character-forge-discord/internal/domain/character"
	"github.com/KirkDiggler/character-forge-discord/internal/domain/rulebook"
	"github.com/KirkDiggler/character-forge-discord/internal/domain/shared"
)

// viewFocus carries transient render state that never touches the
// draft: which ability or roll the user is in the middle of placing.
type viewFocus struct {
	ability shared.Attribute
	rollID  string
}

// stageResponse renders the draft's current stage as embed plus
// components. Callers decide whether it goes out fresh or as an edit.
func (h *CreationHandler) stageResponse(ctx *core.InteractionContext, draft *character.CharacterDraft, focus viewFocus) (*core.Response, error) {
	switch draft.CurrentStage {
	case character.StageWorld:
		return h.viewWorld(ctx, draft)
	case character.StageCampaign:
		return h.viewCampaign(ctx, draft)
	case character.StageCharacterType:
		return h.viewCharacterType(draft)
	case character.StagePremadeSelect:
		return h.viewPremade(ctx, draft)
	case character.StageClass:
		return h.viewClass(ctx, draft)
	case character.StageIdentity:
		return h.viewIdentity(ctx, draft)
	case character.StageAbilities:
		return h.viewAbilities(draft, focus)
	case character.StageClassFeatures:
		return h.viewClassFeatures(ctx, draft)
	case character.StageSpells:
		return h.viewSpells(ctx, draft)
	case character.StageSkills:
		return h.viewSkills(ctx, draft)
	case character.StageEquipment:
		return h.viewEquipment(ctx, draft)
	case character.StageAlignment:
		return h.viewAlignment(ctx, draft)
	case character.StageReview:
		return h.viewReview(draft)
	default:
		return nil, fmt.Errorf("no view for stage %q", draft.CurrentStage)
	}
}

func (h *CreationHandler) viewWorld(ctx *core.InteractionContext, draft *character.CharacterDraft) (*core.Response, error) {
	worlds, err := h.service.ListWorlds(ctx.Context)
	if err != nil {
		return nil, err
	}

	embed := h.stageEmbed(draft, "Every catalog choice that follows is scoped to this setting.")
	options := make([]builders.SelectOption, 0, len(worlds))
	for _, world := range worlds {
		options = append(options, builders.SelectOption{
			Label:       world.Name,
			Value:       world.Key,
			Description: world.Description,
			Default:     world.Key == draft.WorldKey,
		})
		if world.Key == draft.WorldKey {
			embed.Field("Selected", world.Name, false)
		}
	}

	components := builders.NewComponents(h.ids).
		SelectMenu("Pick a world", "world", draft.ID, options)
	h.navRow(components, draft)

	return core.NewEmbedResponse(embed.Build()).WithComponents(components.Build()...), nil
}

func (h *CreationHandler) viewCampaign(ctx *core.InteractionContext, draft *character.CharacterDraft) (*core.Response, error) {
	campaigns, err := h.service.ListCampaigns(ctx.Context, draft.WorldKey)
	if err != nil {
		return nil, err
	}

	embed := h.stageEmbed(draft, "Pick the adventure arc your character is built for.")
	options := make([]builders.SelectOption, 0, len(campaigns))
	for _, campaign := range campaigns {
		options = append(options, builders.SelectOption{
			Label:       campaign.Name,
			Value:       campaign.Key,
			Description: campaign.Description,
			Default:     campaign.Key == draft.CampaignKey,
		})
		if campaign.Key == draft.CampaignKey {
			embed.Field("Selected", fmt.Sprintf("%s (starts at level %d)", campaign.Name, campaign.StartLevel), false)
		}
	}

	components := builders.NewComponents(h.ids).
		SelectMenu("Pick a campaign", "campaign", draft.ID, options)
	h.navRow(components, draft)

	return core.NewEmbedResponse(embed.Build()).WithComponents(components.Build()...), nil
}

func (h *CreationHandler) viewCharacterType(draft *character.CharacterDraft) (*core.Response, error) {
	embed := h.stageEmbed(draft,
		"Build a custom character choice by choice, or pick a ready-to-play premade hero.")

	customStyle := discordButtonStyle(draft.Path == character.PathCustom)
	premadeStyle := discordButtonStyle(draft.Path == character.PathPremade)

	components := builders.NewComponents(h.ids).
		Button("Build Custom", customStyle, "path", draft.ID, string(character.PathCustom)).
		Button("Use a Premade", premadeStyle, "path", draft.ID, string(character.PathPremade))
	h.navRow(components, draft)

	return core.NewEmbedResponse(embed.Build()).WithComponents(components.Build()...), nil
}

func (h *CreationHandler) viewPremade(ctx *core.InteractionContext, draft *character.CharacterDraft) (*core.Response, error) {
	premades, err := h.service.ListPremades(ctx.Context)
	if err != nil {
		return nil, err
	}

	embed := h.stageEmbed(draft, "Premade heroes come fully built; confirming one fills in every remaining choice.")
	options := make([]builders.SelectOption, 0, len(premades))
	for _, premade := range premades {
		options = append(options, builders.SelectOption{
			Label:       premade.Name,
			Value:       premade.Key,
			Description: premade.Description,
			Default:     premade.Key == draft.PremadeKey,
		})
		if premade.Key == draft.PremadeKey {
			embed.Field("Hero", premade.Name, true).
				Field("Class", titleKey(premade.ClassKey), true).
				Field("Race", titleKey(premade.RaceKey), true).
				Field("Background", titleKey(premade.BackgroundKey), true).
				Field("Alignment", titleKey(premade.AlignmentKey), true).
				Field("Abilities", scoreLine(premade.AbilityScores), false)
		}
	}

	components := builders.NewComponents(h.ids).
		SelectMenu("Pick a hero", "premade", draft.ID, options)
	h.navRow(components, draft)

	return core.NewEmbedResponse(embed.Build()).WithComponents(components.Build()...), nil
}

func (h *CreationHandler) viewClass(ctx *core.InteractionContext, draft *character.CharacterDraft) (*core.Response, error) {
	classes, err := h.service.ListClasses(ctx.Context)
	if err != nil {
		return nil, err
	}

	embed := h.stageEmbed(draft, "Your class shapes hit points, proficiencies, features, and spellcasting.")
	options := make([]builders.SelectOption, 0, len(classes))
	for _, class := range classes {
		options = append(options, builders.SelectOption{
			Label:       class.Name,
			Value:       class.Key,
			Description: class.Description,
			Default:     class.Key == draft.ClassKey,
		})
		if class.Key == draft.ClassKey {
			embed.Field("Selected", class.Name, true).
				Field("Hit Die", fmt.Sprintf("d%d", class.HitDie), true)
			if ability := class.KeyAbility(); ability != shared.AttributeNone {
				embed.Field("Key Ability", ability.FullName(), true)
			}
		}
	}

	components := builders.NewComponents(h.ids).
		SelectMenu("Pick a class", "class", draft.ID, options)
	h.navRow(components, draft)

	return core.NewEmbedResponse(embed.Build()).WithComponents(components.Build()...), nil
}

func (h *CreationHandler) viewIdentity(ctx *core.InteractionContext, draft *character.CharacterDraft) (*core.Response, error) {
	races, err := h.service.ListRaces(ctx.Context)
	if err != nil {
		return nil, err
	}
	backgrounds, err := h.service.ListBackgrounds(ctx.Context)
	if err != nil {
		return nil, err
	}

	embed := h.stageEmbed(draft, "Race, background, and a name. Racial bonuses are applied on top of the scores you set next.")
	if draft.Name != "" {
		embed.Field("Name", draft.Name, true)
	}
	if draft.Gender != "" {
		embed.Field("Gender", draft.Gender, true)
	}

	var selectedRace *rulebook.Race
	raceOptions := make([]builders.SelectOption, 0, len(races))
	for _, race := range races {
		raceOptions = append(raceOptions, builders.SelectOption{
			Label:       race.Name,
			Value:       race.Key,
			Description: raceSummary(race),
			Default:     race.Key == draft.RaceKey,
		})
		if race.Key == draft.RaceKey {
			selectedRace = race
		}
	}
	if selectedRace != nil {
		name := selectedRace.Name
		if draft.SubraceKey != "" {
			name = titleKey(draft.SubraceKey)
		}
		embed.Field("Race", name, true)
	}

	components := builders.NewComponents(h.ids).
		SelectMenu("Pick a race", "race", draft.ID, raceOptions)

	if selectedRace != nil && len(selectedRace.Subraces) > 0 {
		subraceOptions := make([]builders.SelectOption, 0, len(selectedRace.Subraces))
		for _, subrace := range selectedRace.Subraces {
			subraceOptions = append(subraceOptions, builders.SelectOption{
				Label:   subrace.Name,
				Value:   subrace.Key,
				Default: subrace.Key == draft.SubraceKey,
			})
		}
		components.SelectMenu("Pick a subrace", "subrace", draft.ID, subraceOptions)
	}

	backgroundOptions := make([]builders.SelectOption, 0, len(backgrounds))
	for _, background := range backgrounds {
		backgroundOptions = append(backgroundOptions, builders.SelectOption{
			Label:       background.Name,
			Value:       background.Key,
			Description: background.Description,
			Default:     background.Key == draft.BackgroundKey,
		})
		if background.Key == draft.BackgroundKey {
			embed.Field("Background", background.Name, true)
		}
	}
	components.SelectMenu("Pick a background", "background", draft.ID, backgroundOptions)

	components.SecondaryButton(nameButtonLabel(draft), "name", draft.ID)
	h.navRow(components, draft)

	return core.NewEmbedResponse(embed.Build()).WithComponents(components.Build()...), nil
}

func (h *CreationHandler) viewAbilities(draft *character.CharacterDraft, focus viewFocus) (*core.Response, error) {
	embed := h.stageEmbed(draft, "Pick a generation method, then set all six scores. Racial bonuses are shown on review.")

	components := builders.NewComponents(h.ids).
		Button("Point Buy", discordButtonStyle(draft.AbilityMethod == character.AbilityMethodPointBuy),
			"method", draft.ID, string(character.AbilityMethodPointBuy)).
		Button("Standard Array", discordButtonStyle(draft.AbilityMethod == character.AbilityMethodStandardArray),
			"method", draft.ID, string(character.AbilityMethodStandardArray)).
		Button("Roll Dice", discordButtonStyle(draft.AbilityMethod == character.AbilityMethodDiceRoll),
			"method", draft.ID, string(character.AbilityMethodDiceRoll))

	switch draft.AbilityMethod {
	case character.AbilityMethodPointBuy:
		h.pointBuyView(embed, components, draft, focus)
	case character.AbilityMethodStandardArray:
		h.assignmentView(embed, components, draft, focus, "Array values")
	case character.AbilityMethodDiceRoll:
		components.Button("🎲 Roll", discordgo.SecondaryButton, "roll", draft.ID)
		if len(draft.AbilityRolls) == 0 {
			embed.Field("Rolls", "No rolls yet. Hit the dice to roll 4d6 drop lowest, six times.", false)
		} else {
			h.assignmentView(embed, components, draft, focus, "Rolled values")
		}
	default:
		embed.Field("Method", "Choose how your scores are generated to continue.", false)
	}

	h.navRow(components, draft)
	return core.NewEmbedResponse(embed.Build()).WithComponents(components.Build()...), nil
}

// pointBuyView adds the point-buy score table and pickers
func (h *CreationHandler) pointBuyView(embed *builders.EmbedBuilder, components *builders.ComponentBuilder, draft *character.CharacterDraft, focus viewFocus) {
	spent := character.PointBuyTotal(draft.PointBuyScores)
	embed.Field("Budget", fmt.Sprintf("%d of %d points spent", spent, character.PointBuyBudget), false)
	embed.Field("Scores", pointBuyLine(draft), false)

	abilityOptions := make([]builders.SelectOption, 0, len(shared.Attributes))
	for _, attr := range shared.Attributes {
		score := draft.PointBuyScores[attr]
		abilityOptions = append(abilityOptions, builders.SelectOption{
			Label:       attr.FullName(),
			Value:       string(attr),
			Description: fmt.Sprintf("currently %d", score),
			Default:     attr == focus.ability,
		})
	}
	components.SelectMenu("Pick an ability to adjust", "ability", draft.ID, abilityOptions)

	if focus.ability != shared.AttributeNone {
		current := draft.PointBuyScores[focus.ability]
		scoreOptions := make([]builders.SelectOption, 0, character.PointBuyMax-character.PointBuyMin+1)
		for score := character.PointBuyMin; score <= character.PointBuyMax; score++ {
			scoreOptions = append(scoreOptions, builders.SelectOption{
				Label:       strconv.Itoa(score),
				Value:       strconv.Itoa(score),
				Description: fmt.Sprintf("costs %d points", character.PointBuyCost(score)),
				Default:     score == current,
			})
		}
		components.SelectMenu(focus.ability.FullName()+" score", "score", draft.ID, scoreOptions,
			builders.SelectConfig{MinValues: 1, Args: []string{string(focus.ability)}})
	}
}

// assignmentView adds the roll list and the two-step assignment picker
// shared by the standard array and dice methods.
func (h *CreationHandler) assignmentView(embed *builders.EmbedBuilder, components *builders.ComponentBuilder, draft *character.CharacterDraft, focus viewFocus, valuesName string) {
	embed.Field(valuesName, rollLine(draft), false)
	embed.Field("Assignments", assignmentLine(draft), false)

	valueOptions := make([]builders.SelectOption, 0, len(draft.AbilityRolls))
	for _, roll := range draft.AbilityRolls {
		valueOptions = append(valueOptions, builders.SelectOption{
			Label:       strconv.Itoa(roll.Value),
			Value:       roll.ID,
			Description: assignmentFor(draft, roll.ID),
			Default:     roll.ID == focus.rollID,
		})
	}
	components.SelectMenu("Pick a value to place", "value", draft.ID, valueOptions)

	if focus.rollID != "" {
		abilityOptions := make([]builders.SelectOption, 0, len(shared.Attributes))
		for _, attr := range shared.Attributes {
			description := ""
			if rollID, ok := draft.AbilityAssignments[attr]; ok {
				description = "currently " + rollValue(draft, rollID)
			}
			abilityOptions = append(abilityOptions, builders.SelectOption{
				Label:       attr.FullName(),
				Value:       string(attr),
				Description: description,
			})
		}
		components.SelectMenu("Place "+rollValue(draft, focus.rollID)+" on", "assign", draft.ID, abilityOptions,
			builders.SelectConfig{MinValues: 1, Args: []string{focus.rollID}})
	}
}

func (h *CreationHandler) viewClassFeatures(ctx *core.InteractionContext, draft *character.CharacterDraft) (*core.Response, error) {
	choices, err := h.service.GetFeatureOptions(ctx.Context, draft.ID)
	if err != nil {
		return nil, err
	}

	embed := h.stageEmbed(draft, "Level-1 decisions that come with your class.")
	components := builders.NewComponents(h.ids)

	if len(choices) == 0 {
		embed.Field("Features", "Nothing to decide for this class at level 1.", false)
	}
	for _, choice := range choices {
		selected := draft.FeatureChoices[choice.Key]
		options := make([]builders.SelectOption, 0, len(choice.Options))
		for _, option := range choice.Options {
			options = append(options, builders.SelectOption{
				Label:       option.Name,
				Value:       option.Key,
				Description: option.Description,
				Default:     option.Key == selected,
			})
			if option.Key == selected {
				embed.Field(choice.Name, option.Name, true)
			}
		}
		components.SelectMenu(choice.Name, "feature", draft.ID, options,
			builders.SelectConfig{MinValues: 1, Args: []string{choice.Key}})
	}

	h.navRow(components, draft)
	return core.NewEmbedResponse(embed.Build()).WithComponents(components.Build()...), nil
}

func (h *CreationHandler) viewSpells(ctx *core.InteractionContext, draft *character.CharacterDraft) (*core.Response, error) {
	options, err := h.service.GetSpellOptions(ctx.Context, draft.ID)
	if err != nil {
		return nil, err
	}

	embed := h.stageEmbed(draft, "Cantrips and first-level spells your class knows from day one.")
	components := builders.NewComponents(h.ids)

	if options.CantripQuota == 0 && options.SpellQuota == 0 {
		embed.Field("Spells", "This class has no spells at level 1. Continue on.", false)
	}

	if options.CantripQuota > 0 {
		embed.Field("Cantrips", fmt.Sprintf("%d of %d chosen", len(options.SelectedCantrips), options.CantripQuota), true)
		components.SelectMenu(
			fmt.Sprintf("Pick %d cantrips", options.CantripQuota),
			"cantrips", draft.ID,
			spellOptions(options.Cantrips, options.SelectedCantrips),
			builders.SelectConfig{MinValues: 0, MaxValues: options.CantripQuota},
		)
	}
	if options.SpellQuota > 0 {
		embed.Field("Spells", fmt.Sprintf("%d of %d chosen", len(options.SelectedSpells), options.SpellQuota), true)
		components.SelectMenu(
			fmt.Sprintf("Pick %d spells", options.SpellQuota),
			"spells", draft.ID,
			spellOptions(options.Spells, options.SelectedSpells),
			builders.SelectConfig{MinValues: 0, MaxValues: options.SpellQuota},
		)
	}

	h.navRow(components, draft)
	return core.NewEmbedResponse(embed.Build()).WithComponents(components.Build()...), nil
}

func (h *CreationHandler) viewSkills(ctx *core.InteractionContext, draft *character.CharacterDraft) (*core.Response, error) {
	options, err := h.service.GetSkillOptions(ctx.Context, draft.ID)
	if err != nil {
		return nil, err
	}

	embed := h.stageEmbed(draft, fmt.Sprintf("Choose %d skill proficiencies from your class list. Background skills come free.", options.Count))
	embed.Field("Skills", fmt.Sprintf("%d of %d chosen", len(options.Selected), options.Count), false)

	selectOptions := make([]builders.SelectOption, 0, len(options.Options))
	for _, skill := range options.Options {
		selectOptions = append(selectOptions, builders.SelectOption{
			Label:   titleKey(skill),
			Value:   skill,
			Default: containsString(options.Selected, skill),
		})
	}

	components := builders.NewComponents(h.ids).
		SelectMenu(fmt.Sprintf("Pick %d skills", options.Count), "skills", draft.ID, selectOptions,
			builders.SelectConfig{MinValues: 0, MaxValues: options.Count})
	h.navRow(components, draft)

	return core.NewEmbedResponse(embed.Build()).WithComponents(components.Build()...), nil
}

func (h *CreationHandler) viewEquipment(ctx *core.InteractionContext, draft *character.CharacterDraft) (*core.Response, error) {
	options, err := h.service.GetEquipmentOptions(ctx.Context, draft.ID)
	if err != nil {
		return nil, err
	}

	embed := h.stageEmbed(draft, "Pick one side of each equipment choice. Fixed gear is included automatically.")
	if len(options.Defaults) > 0 {
		embed.Field("Included", joinItemNames(options.Defaults), false)
	}
	if len(options.BackgroundItems) > 0 {
		embed.Field("From your background", joinItemNames(options.BackgroundItems), false)
	}

	components := builders.NewComponents(h.ids)
	for _, choice := range options.Choices {
		selected, hasSelection := options.Selected[choice.ID]
		branchOptions := make([]builders.SelectOption, 0, len(choice.Branches))
		for i, branch := range choice.Branches {
			branchOptions = append(branchOptions, builders.SelectOption{
				Label:   branchLabel(branch),
				Value:   strconv.Itoa(i),
				Default: hasSelection && selected == i,
			})
		}
		components.SelectMenu(choice.Prompt, "equip", draft.ID, branchOptions,
			builders.SelectConfig{MinValues: 1, Args: []string{choice.ID}})
		if hasSelection && selected >= 0 && selected < len(choice.Branches) {
			embed.Field(choice.Prompt, branchLabel(choice.Branches[selected]), false)
		}
	}

	h.navRow(components, draft)
	return core.NewEmbedResponse(embed.Build()).WithComponents(components.Build()...), nil
}

func (h *CreationHandler) viewAlignment(ctx *core.InteractionContext, draft *character.CharacterDraft) (*core.Response, error) {
	alignments, err := h.service.ListAlignments(ctx.Context)
	if err != nil {
		return nil, err
	}

	embed := h.stageEmbed(draft, "The moral compass your character steers by.")
	options := make([]builders.SelectOption, 0, len(alignments))
	for _, alignment := range alignments {
		options = append(options, builders.SelectOption{
			Label:       alignment.Name,
			Value:       alignment.Key,
			Description: alignment.Description,
			Default:     alignment.Key == draft.AlignmentKey,
		})
		if alignment.Key == draft.AlignmentKey {
			embed.Field("Selected", alignment.Name, false)
		}
	}

	components := builders.NewComponents(h.ids).
		SelectMenu("Pick an alignment", "alignment", draft.ID, options)
	h.navRow(components, draft)

	return core.NewEmbedResponse(embed.Build()).WithComponents(components.Build()...), nil
}

func (h *CreationHandler) viewReview(draft *character.CharacterDraft) (*core.Response, error) {
	name := draft.Name
	if name == "" {
		name = "Unnamed hero"
	}
	embed := h.stageEmbed(draft, fmt.Sprintf("**%s** is almost ready. Check everything over, then make it official.", name))

	embed.Field("World", titleKey(draft.WorldKey), true)
	if draft.CampaignKey != "" {
		embed.Field("Campaign", titleKey(draft.CampaignKey), true)
	}
	embed.Field("Class", titleKey(draft.ClassKey), true)
	embed.Field("Race", raceDisplay(draft), true)
	if draft.BackgroundKey != "" {
		embed.Field("Background", titleKey(draft.BackgroundKey), true)
	}
	if draft.AlignmentKey != "" {
		embed.Field("Alignment", titleKey(draft.AlignmentKey), true)
	}

	if scores := draft.FinalScores(); len(scores) > 0 {
		embed.Field("Abilities", scoreLine(scores), false)
	}
	if len(draft.Skills) > 0 {
		embed.Field("Skills", titleKeys(draft.Skills), false)
	}
	if len(draft.FeatureChoices) > 0 {
		embed.Field("Features", featureLine(draft.FeatureChoices), false)
	}
	if len(draft.Cantrips) > 0 || len(draft.Spells) > 0 {
		embed.Field("Spells", spellLine(draft), false)
	}
	if len(draft.Inventory) > 0 {
		embed.Field("Equipment", joinItemNames(draft.Inventory), false)
	}

	components := builders.NewComponents(h.ids)
	if jumpOptions := h.jumpOptions(draft); len(jumpOptions) > 0 {
		components.SelectMenu("Jump back to a step", "jump", draft.ID, jumpOptions)
	}
	components.
		SecondaryButton("Back", "back", draft.ID).
		SuccessButton("Finalize", "finalize", draft.ID).
		DangerButton("Discard", "discard", draft.ID)

	return core.NewEmbedResponse(embed.Build()).WithComponents(components.Build()...), nil
}

// jumpOptions lists the stages the draft may jump back to: everything
// completed so far, on the current path.
func (h *CreationHandler) jumpOptions(draft *character.CharacterDraft) []builders.SelectOption {
	if draft.FurthestCompleted == "" {
		return nil
	}
	furthest := character.StageIndex(draft.Path, draft.FurthestCompleted)
	if furthest < 0 {
		return nil
	}

	sequence := character.StageSequence(draft.Path)
	options := make([]builders.SelectOption, 0, furthest+1)
	for i, stage := range sequence {
		if i > furthest || stage == character.StageReview {
			break
		}
		options = append(options, builders.SelectOption{
			Label: character.StageTitle(stage),
			Value: string(stage),
		})
	}
	return options
}

// stageEmbed starts the standard embed for a wizard stage
func (h *CreationHandler) stageEmbed(draft *character.CharacterDraft, description string) *builders.EmbedBuilder {
	return builders.NewEmbed().
		Title(character.StageTitle(draft.CurrentStage)).
		Description(description).
		Color(builders.ColorPrimary).
		Footer(progressFooter(draft))
}

// navRow appends the Back and Continue buttons
func (h *CreationHandler) navRow(components *builders.ComponentBuilder, draft *character.CharacterDraft) {
	components.NewRow()
	if character.StageIndex(draft.Path, draft.CurrentStage) <= 0 {
		components.DisabledButton("Back", discordgo.SecondaryButton, "back", draft.ID)
	} else {
		components.SecondaryButton("Back", "back", draft.ID)
	}
	components.PrimaryButton("Continue", "next", draft.ID)
}

func progressFooter(draft *character.CharacterDraft) string {
	sequence := character.StageSequence(draft.Path)
	index := character.StageIndex(draft.Path, draft.CurrentStage)
	if index < 0 {
		return ""
	}
	return fmt.Sprintf("Stage %d of %d", index+1, len(sequence))
}

func discordButtonStyle(selected bool) discordgo.ButtonStyle {
	if selected {
		return discordgo.SuccessButton
	}
	return discordgo.SecondaryButton
}

func nameButtonLabel(draft *character.CharacterDraft) string {
	if draft.Name == "" {
		return "Set Name & Details"
	}
	return "Edit Name & Details"
}

// raceSummary compresses a race's bonuses into an option description
func raceSummary(race *rulebook.Race) string {
	parts := make([]string, 0, len(race.AbilityBonuses)+1)
	for _, bonus := range race.AbilityBonuses {
		if bonus == nil {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s %+d", bonus.Attribute, bonus.Bonus))
	}
	if race.Speed > 0 {
		parts = append(parts, fmt.Sprintf("speed %d", race.Speed))
	}
	return strings.Join(parts, ", ")
}

func raceDisplay(draft *character.CharacterDraft) string {
	if draft.SubraceKey != "" {
		return titleKey(draft.SubraceKey)
	}
	return titleKey(draft.RaceKey)
}

// scoreLine renders six abilities on one line in canonical order
func scoreLine(scores map[shared.Attribute]int) string {
	parts := make([]string, 0, len(shared.Attributes))
	for _, attr := range shared.Attributes {
		score, ok := scores[attr]
		if !ok {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s %d (%+d)", attr, score, character.Modifier(score)))
	}
	if len(parts) == 0 {
		return "not set"
	}
	return strings.Join(parts, " · ")
}

func pointBuyLine(draft *character.CharacterDraft) string {
	parts := make([]string, 0, len(shared.Attributes))
	for _, attr := range shared.Attributes {
		parts = append(parts, fmt.Sprintf("%s %d", attr, draft.PointBuyScores[attr]))
	}
	return strings.Join(parts, " · ")
}

func rollLine(draft *character.CharacterDraft) string {
	parts := make([]string, 0, len(draft.AbilityRolls))
	for _, roll := range draft.AbilityRolls {
		parts = append(parts, strconv.Itoa(roll.Value))
	}
	return strings.Join(parts, ", ")
}

func assignmentLine(draft *character.CharacterDraft) string {
	parts := make([]string, 0, len(shared.Attributes))
	for _, attr := range shared.Attributes {
		if rollID, ok := draft.AbilityAssignments[attr]; ok {
			parts = append(parts, fmt.Sprintf("%s %s", attr, rollValue(draft, rollID)))
		}
	}
	if len(parts) == 0 {
		return "none yet"
	}
	return strings.Join(parts, " · ")
}

// assignmentFor names the ability a roll is placed on, if any
func assignmentFor(draft *character.CharacterDraft, rollID string) string {
	for attr, assigned := range draft.AbilityAssignments {
		if assigned == rollID {
			return "on " + attr.FullName()
		}
	}
	return "unplaced"
}

// rollValue renders a roll's numeric value by ID
func rollValue(draft *character.CharacterDraft, rollID string) string {
	for _, roll := range draft.AbilityRolls {
		if roll.ID == rollID {
			return strconv.Itoa(roll.Value)
		}
	}
	return "?"
}

func spellOptions(spells []*rulebook.SpellReference, selected []string) []builders.SelectOption {
	options := make([]builders.SelectOption, 0, len(spells))
	for _, spell := range spells {
		if spell == nil {
			continue
		}
		options = append(options, builders.SelectOption{
			Label:   spell.Name,
			Value:   spell.Key,
			Default: containsString(selected, spell.Key),
		})
	}
	return options
}

func spellLine(draft *character.CharacterDraft) string {
	parts := make([]string, 0, 2)
	if len(draft.Cantrips) > 0 {
		parts = append(parts, "Cantrips: "+titleKeys(draft.Cantrips))
	}
	if len(draft.Spells) > 0 {
		parts = append(parts, "Spells: "+titleKeys(draft.Spells))
	}
	return strings.Join(parts, "\n")
}

func featureLine(choices map[string]string) string {
	parts := make([]string, 0, len(choices))
	for key, value := range choices {
		parts = append(parts, fmt.Sprintf("%s: %s", titleKey(key), titleKey(value)))
	}
	sort.Strings(parts)
	return strings.Join(parts, "\n")
}

// branchLabel names a branch by its items, since catalog branch labels
// are structural ("group", "or") rather than descriptive.
func branchLabel(branch rulebook.EquipmentBranch) string {
	if len(branch.Items) == 0 {
		return "Nothing"
	}

	names := make([]string, 0, len(branch.Items))
	counts := make(map[string]int, len(branch.Items))
	for _, item := range branch.Items {
		if counts[item.Name] == 0 {
			names = append(names, item.Name)
		}
		counts[item.Name]++
	}

	parts := make([]string, 0, len(names))
	for _, name := range names {
		if counts[name] > 1 {
			parts = append(parts, fmt.Sprintf("%d× %s", counts[name], name))
		} else {
			parts = append(parts, name)
		}
	}
	return strings.Join(parts, " + ")
}

func joinItemNames(items []rulebook.ItemRef) string {
	names := make([]string, 0, len(items))
	counts := make(map[string]int, len(items))
	for _, item := range items {
		if counts[item.Name] == 0 {
			names = append(names, item.Name)
		}
		counts[item.Name]++
	}

	parts := make([]string, 0, len(names))
	for _, name := range names {
		if counts[name] > 1 {
			parts = append(parts, fmt.Sprintf("%s ×%d", name, counts[name]))
		} else {
			parts = append(parts, name)
		}
	}
	return strings.Join(parts, ", ")
}

// titleKey turns a catalog key like "mountain-dwarf" into a display
// name like "Mountain Dwarf".
func titleKey(key string) string {
	if key == "" {
		return "Not set"
	}
	words := strings.FieldsFunc(key, func(r rune) bool {
		return r == '-' || r == '_'
	})
	for i, word := range words {
		words[i] = capitalize(word)
	}
	return strings.Join(words, " ")
}

func titleKeys(keys []string) string {
	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		parts = append(parts, titleKey(key))
	}
	return strings.Join(parts, ", ")
}

func capitalize(word string) string {
	if word == "" {
		return word
	}
	runes := []rune(word)
	return strings.ToUpper(string(runes[0])) + string(runes[1:])
}

func containsString(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}
