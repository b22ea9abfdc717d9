package core

import (
	"context"

	"github.com/bwmarrin/discordgo"
)

// Test helpers for building interaction contexts from realistic
// payloads, so handler tests run through the same parsing as
// production traffic. No Discord session is involved.

// NewTestCommandContext builds a context for a slash command. Pass
// sub as "" for a bare command; opts become the (sub)command options.
func NewTestCommandContext(userID, guildID, name, sub string, opts map[string]any) *InteractionContext {
	options := make([]*discordgo.ApplicationCommandInteractionDataOption, 0, len(opts))
	for optName, optValue := range opts {
		options = append(options, &discordgo.ApplicationCommandInteractionDataOption{
			Name:  optName,
			Type:  optionType(optValue),
			Value: optValue,
		})
	}

	if sub != "" {
		options = []*discordgo.ApplicationCommandInteractionDataOption{
			{
				Name:    sub,
				Type:    discordgo.ApplicationCommandOptionSubCommand,
				Options: options,
			},
		}
	}

	return NewInteractionContext(context.Background(), nil, testInteraction(
		userID, guildID,
		discordgo.InteractionApplicationCommand,
		discordgo.ApplicationCommandInteractionData{
			Name:    name,
			Options: options,
		},
	))
}

// NewTestComponentContext builds a context for a button press or, when
// values are given, a select menu choice.
func NewTestComponentContext(userID, guildID, customID string, values ...string) *InteractionContext {
	componentType := discordgo.ButtonComponent
	if len(values) > 0 {
		componentType = discordgo.SelectMenuComponent
	}

	return NewInteractionContext(context.Background(), nil, testInteraction(
		userID, guildID,
		discordgo.InteractionMessageComponent,
		discordgo.MessageComponentInteractionData{
			CustomID:      customID,
			ComponentType: componentType,
			Values:        values,
		},
	))
}

// NewTestModalContext builds a context for a modal submit with the
// given input field values, keyed by input custom ID.
func NewTestModalContext(userID, guildID, customID string, fields map[string]string) *InteractionContext {
	rows := make([]discordgo.MessageComponent, 0, len(fields))
	for fieldID, value := range fields {
		rows = append(rows, &discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				&discordgo.TextInput{
					CustomID: fieldID,
					Value:    value,
				},
			},
		})
	}

	return NewInteractionContext(context.Background(), nil, testInteraction(
		userID, guildID,
		discordgo.InteractionModalSubmit,
		discordgo.ModalSubmitInteractionData{
			CustomID:   customID,
			Components: rows,
		},
	))
}

func testInteraction(userID, guildID string, interactionType discordgo.InteractionType, data discordgo.InteractionData) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			Type:      interactionType,
			Data:      data,
			GuildID:   guildID,
			ChannelID: "test-channel",
			Member: &discordgo.Member{
				User: &discordgo.User{
					ID:       userID,
					Username: "tester",
				},
			},
		},
	}
}

func optionType(value any) discordgo.ApplicationCommandOptionType {
	switch value.(type) {
	case bool:
		return discordgo.ApplicationCommandOptionBoolean
	case float64, int, int64:
		return discordgo.ApplicationCommandOptionInteger
	default:
		return discordgo.ApplicationCommandOptionString
	}
}

// MockResponder records responses instead of sending them
type MockResponder struct {
	DeferCalls []bool
	Responses  []*Response
	Edits      []*Response

	DeferError   error
	RespondError error
	EditError    error

	Deferred  bool
	Responded bool
}

// NewMockResponder creates an empty mock responder
func NewMockResponder() *MockResponder {
	return &MockResponder{}
}

func (m *MockResponder) Defer(ephemeral bool) error {
	m.DeferCalls = append(m.DeferCalls, ephemeral)
	if m.DeferError != nil {
		return m.DeferError
	}
	m.Deferred = true
	m.Responded = true
	return nil
}

func (m *MockResponder) Respond(response *Response) error {
	m.Responses = append(m.Responses, response)
	if m.RespondError != nil {
		return m.RespondError
	}
	m.Responded = true
	return nil
}

func (m *MockResponder) Edit(response *Response) error {
	m.Edits = append(m.Edits, response)
	return m.EditError
}

func (m *MockResponder) HasResponded() bool {
	return m.Responded
}

func (m *MockResponder) IsDeferred() bool {
	return m.Deferred
}

// LastResponse returns the most recent response or edit
func (m *MockResponder) LastResponse() *Response {
	if len(m.Edits) > 0 {
		return m.Edits[len(m.Edits)-1]
	}
	if len(m.Responses) > 0 {
		return m.Responses[len(m.Responses)-1]
	}
	return nil
}
