package core

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// InteractionResponder abstracts how a handler result reaches Discord.
// Middleware defers through it and the pipeline sends through it, so
// tests can swap in a recorder.
type InteractionResponder interface {
	// Defer acknowledges the interaction before the 3 second deadline
	Defer(ephemeral bool) error

	// Respond sends the initial response
	Respond(response *Response) error

	// Edit updates the response after a deferral
	Edit(response *Response) error

	// HasResponded reports whether any response went out
	HasResponded() bool

	// IsDeferred reports whether the interaction was deferred
	IsDeferred() bool
}

// DiscordResponder sends responses through a discordgo session
type DiscordResponder struct {
	session     *discordgo.Session
	interaction *discordgo.InteractionCreate
	responded   bool
	deferred    bool
}

// NewDiscordResponder creates a responder for the given interaction
func NewDiscordResponder(session *discordgo.Session, interaction *discordgo.InteractionCreate) *DiscordResponder {
	return &DiscordResponder{
		session:     session,
		interaction: interaction,
	}
}

// Defer acknowledges the interaction. Component and modal interactions
// defer as a message update so the original message stays in place;
// commands defer as a new (optionally ephemeral) message.
func (r *DiscordResponder) Defer(ephemeral bool) error {
	if r.responded {
		return fmt.Errorf("interaction already responded to")
	}

	response := &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	}
	switch r.interaction.Type {
	case discordgo.InteractionMessageComponent, discordgo.InteractionModalSubmit:
		response.Type = discordgo.InteractionResponseDeferredMessageUpdate
	default:
		if ephemeral {
			response.Data = &discordgo.InteractionResponseData{
				Flags: discordgo.MessageFlagsEphemeral,
			}
		}
	}

	if err := r.session.InteractionRespond(r.interaction.Interaction, response); err != nil {
		return fmt.Errorf("failed to defer interaction: %w", err)
	}

	r.responded = true
	r.deferred = true
	return nil
}

// Respond sends the initial response. A modal response opens a dialog;
// an Update response edits the message the component lives on.
func (r *DiscordResponder) Respond(response *Response) error {
	if r.responded {
		return fmt.Errorf("interaction already responded to")
	}
	if response == nil {
		return fmt.Errorf("response cannot be nil")
	}

	if response.Modal != nil {
		return r.respondModal(response.Modal)
	}

	responseType := discordgo.InteractionResponseChannelMessageWithSource
	if response.Update {
		switch r.interaction.Type {
		case discordgo.InteractionMessageComponent, discordgo.InteractionModalSubmit:
			responseType = discordgo.InteractionResponseUpdateMessage
		}
	}

	data := &discordgo.InteractionResponseData{
		Content:    response.Content,
		Embeds:     response.Embeds,
		Components: response.Components,
	}
	if response.Ephemeral {
		data.Flags = discordgo.MessageFlagsEphemeral
	}

	err := r.session.InteractionRespond(r.interaction.Interaction, &discordgo.InteractionResponse{
		Type: responseType,
		Data: data,
	})
	if err != nil {
		return fmt.Errorf("failed to respond to interaction: %w", err)
	}

	r.responded = true
	return nil
}

func (r *DiscordResponder) respondModal(modal *Modal) error {
	rows := make([]discordgo.MessageComponent, 0, len(modal.Inputs))
	for _, input := range modal.Inputs {
		rows = append(rows, discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.TextInput{
					CustomID:    input.CustomID,
					Label:       input.Label,
					Style:       input.Style,
					Placeholder: input.Placeholder,
					Value:       input.Value,
					Required:    input.Required,
					MaxLength:   input.MaxLength,
				},
			},
		})
	}

	err := r.session.InteractionRespond(r.interaction.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseModal,
		Data: &discordgo.InteractionResponseData{
			CustomID:   modal.CustomID,
			Title:      modal.Title,
			Components: rows,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to open modal: %w", err)
	}

	r.responded = true
	return nil
}

// Edit updates the deferred response. Components always get sent, so
// an edit with none strips the buttons from the message.
func (r *DiscordResponder) Edit(response *Response) error {
	if !r.responded {
		return fmt.Errorf("cannot edit before responding")
	}
	if response == nil {
		return fmt.Errorf("response cannot be nil")
	}
	if response.Modal != nil {
		return fmt.Errorf("cannot open a modal after deferring")
	}

	components := response.Components
	if components == nil {
		components = []discordgo.MessageComponent{}
	}

	edit := &discordgo.WebhookEdit{
		Content:    &response.Content,
		Embeds:     &response.Embeds,
		Components: &components,
	}

	_, err := r.session.InteractionResponseEdit(r.interaction.Interaction, edit)
	if err != nil {
		return fmt.Errorf("failed to edit response: %w", err)
	}
	return nil
}

// HasResponded reports whether any response went out
func (r *DiscordResponder) HasResponded() bool {
	return r.responded
}

// IsDeferred reports whether the interaction was deferred
func (r *DiscordResponder) IsDeferred() bool {
	return r.deferred
}
