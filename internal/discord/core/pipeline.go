package core

import (
	"context"
	"log/slog"
	"sync"

	"github.com/bwmarrin/discordgo"
)

// Middleware wraps a handler with cross-cutting behavior
type Middleware func(Handler) Handler

// ErrorHandler converts a handler error into the response to send
type ErrorHandler func(ctx *InteractionContext, err error) *HandlerResult

// ResponderFactory builds the responder for an interaction. Tests swap
// this out to capture responses without a Discord session.
type ResponderFactory func(s *discordgo.Session, i *discordgo.InteractionCreate) InteractionResponder

type responderKey struct{}

// WithResponder attaches a responder to the context. The pipeline does
// this for every execution; tests do it to inject a MockResponder.
func WithResponder(ctx *InteractionContext, responder InteractionResponder) {
	ctx.WithValue(responderKey{}, responder)
}

// ResponderFrom returns the responder the pipeline attached to the
// context, or nil outside a pipeline execution.
func ResponderFrom(ctx *InteractionContext) InteractionResponder {
	if r, ok := ctx.Value(responderKey{}).(InteractionResponder); ok {
		return r
	}
	return nil
}

// Pipeline dispatches interactions to registered handlers through the
// configured middleware chain.
type Pipeline struct {
	mu           sync.RWMutex
	handlers     []Handler
	middleware   []Middleware
	errorHandler ErrorHandler
	responderFor ResponderFactory
	log          *slog.Logger
}

// NewPipeline creates a pipeline with the default error handler
func NewPipeline(log *slog.Logger) *Pipeline {
	if log == nil {
		log = slog.Default()
	}
	return &Pipeline{
		errorHandler: defaultErrorHandler,
		responderFor: func(s *discordgo.Session, i *discordgo.InteractionCreate) InteractionResponder {
			return NewDiscordResponder(s, i)
		},
		log: log,
	}
}

// Use adds middleware applied to handlers registered after this call
func (p *Pipeline) Use(middleware ...Middleware) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.middleware = append(p.middleware, middleware...)
}

// Register adds a handler wrapped in the current middleware chain
func (p *Pipeline) Register(handler Handler) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for i := len(p.middleware) - 1; i >= 0; i-- {
		handler = p.middleware[i](handler)
	}
	p.handlers = append(p.handlers, handler)
}

// SetErrorHandler replaces the default error handler
func (p *Pipeline) SetErrorHandler(handler ErrorHandler) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.errorHandler = handler
}

// SetResponderFactory replaces how responders are built
func (p *Pipeline) SetResponderFactory(factory ResponderFactory) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.responderFor = factory
}

// Execute dispatches one interaction. Its signature matches what
// discordgo.Session.AddHandler expects for interaction events.
func (p *Pipeline) Execute(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand,
		discordgo.InteractionMessageComponent,
		discordgo.InteractionModalSubmit:
	default:
		return
	}

	p.mu.RLock()
	handlers := make([]Handler, len(p.handlers))
	copy(handlers, p.handlers)
	errorHandler := p.errorHandler
	responderFor := p.responderFor
	p.mu.RUnlock()

	ctx := NewInteractionContext(context.Background(), s, i)
	responder := responderFor(s, i)
	WithResponder(ctx, responder)

	for _, handler := range handlers {
		if !handler.CanHandle(ctx) {
			continue
		}

		result, err := handler.Handle(ctx)
		if err != nil {
			p.log.ErrorContext(ctx.Context, "interaction handler failed",
				slog.String("user_id", ctx.UserID),
				slog.String("custom_id", ctx.GetCustomID()),
				slog.String("command", ctx.GetCommandName()),
				slog.Any("error", err),
			)
			result = errorHandler(ctx, err)
		}

		p.send(ctx, responder, result)
		return
	}

	p.log.WarnContext(ctx.Context, "no handler for interaction",
		slog.String("user_id", ctx.UserID),
		slog.String("custom_id", ctx.GetCustomID()),
		slog.String("command", ctx.GetCommandName()),
	)
	p.send(ctx, responder, &HandlerResult{
		Response: NewEphemeralResponse("Nothing handles that interaction. It may be from an older message."),
	})
}

func (p *Pipeline) send(ctx *InteractionContext, responder InteractionResponder, result *HandlerResult) {
	if result == nil || result.Response == nil {
		return
	}

	var err error
	if result.Deferred || responder.IsDeferred() {
		err = responder.Edit(result.Response)
	} else {
		err = responder.Respond(result.Response)
	}
	if err != nil {
		p.log.ErrorContext(ctx.Context, "failed to send interaction response",
			slog.String("user_id", ctx.UserID),
			slog.Any("error", err),
		)
	}
}

// defaultErrorHandler shows HandlerError messages to the user and hides
// everything else behind a generic message.
func defaultErrorHandler(_ *InteractionContext, err error) *HandlerResult {
	if handlerErr, ok := AsHandlerError(err); ok {
		return &HandlerResult{
			Response: NewEphemeralResponse(handlerErr.UserMessage),
		}
	}
	return &HandlerResult{
		Response: NewEphemeralResponse("Something went wrong. Please try again."),
	}
}
