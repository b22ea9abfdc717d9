package core

import (
	"github.com/bwmarrin/discordgo"
)

// Handler processes one Discord interaction and describes the reply.
type Handler interface {
	// CanHandle reports whether this handler should process the interaction
	CanHandle(ctx *InteractionContext) bool

	// Handle processes the interaction and returns a result
	Handle(ctx *InteractionContext) (*HandlerResult, error)
}

// HandlerFunc allows plain functions to implement Handler.
type HandlerFunc func(ctx *InteractionContext) (*HandlerResult, error)

// CanHandle for HandlerFunc always returns true
func (f HandlerFunc) CanHandle(ctx *InteractionContext) bool {
	return true
}

// Handle calls the function
func (f HandlerFunc) Handle(ctx *InteractionContext) (*HandlerResult, error) {
	return f(ctx)
}

// HandlerResult carries the response a handler produced.
type HandlerResult struct {
	// Response to send to Discord
	Response *Response

	// Whether a deferred acknowledgement was already sent, so the
	// response must go out as an edit
	Deferred bool
}

// Response is what a handler wants shown, independent of how the
// responder delivers it.
type Response struct {
	// Text content of the response
	Content string

	// Discord embeds
	Embeds []*discordgo.MessageEmbed

	// Interactive components (buttons, select menus)
	Components []discordgo.MessageComponent

	// Whether the response is visible only to the interacting user
	Ephemeral bool

	// Whether to rewrite the message the interaction came from instead
	// of sending a new one
	Update bool

	// Modal opens a dialog instead of sending a message. A modal must be
	// the immediate response; it cannot follow a deferral.
	Modal *Modal
}

// Modal describes a text-input dialog.
type Modal struct {
	CustomID string
	Title    string
	Inputs   []ModalInput
}

// ModalInput is one text field of a modal.
type ModalInput struct {
	CustomID    string
	Label       string
	Style       discordgo.TextInputStyle
	Placeholder string
	Value       string
	Required    bool
	MaxLength   int
}

// NewResponse creates a response with the given content
func NewResponse(content string) *Response {
	return &Response{
		Content: content,
	}
}

// NewEphemeralResponse creates a response only the interacting user sees
func NewEphemeralResponse(content string) *Response {
	return &Response{
		Content:   content,
		Ephemeral: true,
	}
}

// NewEmbedResponse creates a response carrying one embed
func NewEmbedResponse(embed *discordgo.MessageEmbed) *Response {
	return &Response{
		Embeds: []*discordgo.MessageEmbed{embed},
	}
}

// NewModalResponse creates a response that opens a modal
func NewModalResponse(modal *Modal) *Response {
	return &Response{
		Modal: modal,
	}
}

// WithEmbeds sets the response embeds
func (r *Response) WithEmbeds(embeds ...*discordgo.MessageEmbed) *Response {
	r.Embeds = embeds
	return r
}

// WithComponents sets the response components
func (r *Response) WithComponents(components ...discordgo.MessageComponent) *Response {
	r.Components = components
	return r
}

// AsEphemeral marks the response visible only to the interacting user
func (r *Response) AsEphemeral() *Response {
	r.Ephemeral = true
	return r
}

// AsUpdate marks the response as an edit of the originating message
func (r *Response) AsUpdate() *Response {
	r.Update = true
	return r
}
