package core

import (
	"context"

	"github.com/bwmarrin/discordgo"
)

// InteractionContext wraps one Discord interaction with the fields
// handlers actually read, so they never dig through the raw payload.
type InteractionContext struct {
	Session     *discordgo.Session
	Interaction *discordgo.InteractionCreate

	// Extracted common fields
	UserID    string
	GuildID   string
	ChannelID string
	Member    *discordgo.Member

	// Context for cancellation and values
	Context context.Context

	// Parsed interaction data
	params map[string]any
	values []string
}

// NewInteractionContext builds an InteractionContext and parses the
// interaction's options, custom ID values, or modal inputs.
func NewInteractionContext(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) *InteractionContext {
	ic := &InteractionContext{
		Session:     s,
		Interaction: i,
		Context:     ctx,
		params:      make(map[string]any),
	}

	if i.Member != nil {
		ic.Member = i.Member
		if i.Member.User != nil {
			ic.UserID = i.Member.User.ID
		}
	} else if i.User != nil {
		ic.UserID = i.User.ID
	}
	ic.GuildID = i.GuildID
	ic.ChannelID = i.ChannelID

	ic.parseParams()

	return ic
}

func (ic *InteractionContext) parseParams() {
	switch ic.Interaction.Type {
	case discordgo.InteractionApplicationCommand:
		ic.parseOptions(ic.Interaction.ApplicationCommandData().Options)
	case discordgo.InteractionMessageComponent:
		data := ic.Interaction.MessageComponentData()
		ic.values = data.Values
	case discordgo.InteractionModalSubmit:
		ic.parseModalInputs()
	}
}

// parseOptions walks the command option tree. Subcommands and groups
// carry nested options; leaves carry values.
func (ic *InteractionContext) parseOptions(options []*discordgo.ApplicationCommandInteractionDataOption) {
	for _, opt := range options {
		switch opt.Type {
		case discordgo.ApplicationCommandOptionSubCommandGroup:
			ic.params["group"] = opt.Name
			ic.parseOptions(opt.Options)
		case discordgo.ApplicationCommandOptionSubCommand:
			ic.params["subcommand"] = opt.Name
			ic.parseOptions(opt.Options)
		default:
			ic.params[opt.Name] = opt.Value
		}
	}
}

func (ic *InteractionContext) parseModalInputs() {
	data := ic.Interaction.ModalSubmitData()
	for _, comp := range data.Components {
		row, ok := comp.(*discordgo.ActionsRow)
		if !ok {
			continue
		}
		for _, inner := range row.Components {
			if input, ok := inner.(*discordgo.TextInput); ok {
				ic.params[input.CustomID] = input.Value
			}
		}
	}
}

// GetParam retrieves a parsed parameter by name
func (ic *InteractionContext) GetParam(name string) any {
	return ic.params[name]
}

// GetStringParam retrieves a string parameter, or "" when absent
func (ic *InteractionContext) GetStringParam(name string) string {
	if val, ok := ic.params[name].(string); ok {
		return val
	}
	return ""
}

// GetIntParam retrieves an int parameter, or 0 when absent. Discord
// delivers numbers as float64.
func (ic *InteractionContext) GetIntParam(name string) int {
	switch v := ic.params[name].(type) {
	case float64:
		return int(v)
	case int:
		return v
	case int64:
		return int(v)
	}
	return 0
}

// SelectedValues returns the values chosen in a select menu
// interaction, never nil.
func (ic *InteractionContext) SelectedValues() []string {
	if ic.values == nil {
		return []string{}
	}
	return ic.values
}

// IsCommand reports whether this is a slash command interaction
func (ic *InteractionContext) IsCommand() bool {
	return ic.Interaction.Type == discordgo.InteractionApplicationCommand
}

// IsComponent reports whether this is a message component interaction
func (ic *InteractionContext) IsComponent() bool {
	return ic.Interaction.Type == discordgo.InteractionMessageComponent
}

// IsModal reports whether this is a modal submit interaction
func (ic *InteractionContext) IsModal() bool {
	return ic.Interaction.Type == discordgo.InteractionModalSubmit
}

// GetCustomID returns the custom ID for component and modal interactions
func (ic *InteractionContext) GetCustomID() string {
	if ic.IsComponent() {
		return ic.Interaction.MessageComponentData().CustomID
	}
	if ic.IsModal() {
		return ic.Interaction.ModalSubmitData().CustomID
	}
	return ""
}

// GetCommandName returns the slash command name
func (ic *InteractionContext) GetCommandName() string {
	if ic.IsCommand() {
		return ic.Interaction.ApplicationCommandData().Name
	}
	return ""
}

// GetSubcommand returns the subcommand name, or ""
func (ic *InteractionContext) GetSubcommand() string {
	return ic.GetStringParam("subcommand")
}

// WithValue stores a value on the embedded context
func (ic *InteractionContext) WithValue(key, val any) {
	ic.Context = context.WithValue(ic.Context, key, val)
}

// Value retrieves a value from the embedded context
func (ic *InteractionContext) Value(key any) any {
	return ic.Context.Value(key)
}
