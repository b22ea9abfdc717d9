package core

import (
	"fmt"
)

// Router maps one domain's interactions to handlers. A domain owns a
// slash command of the same name plus every custom ID under its prefix.
type Router struct {
	domain     string
	handlers   map[string]Handler
	middleware []Middleware
	ids        *CustomIDBuilder
	pipeline   *Pipeline
}

// NewRouter creates a router for a domain
func NewRouter(domain string, pipeline *Pipeline) *Router {
	return &Router{
		domain:   domain,
		handlers: make(map[string]Handler),
		ids:      NewCustomIDBuilder(domain),
		pipeline: pipeline,
	}
}

// Domain returns the domain this router owns
func (r *Router) Domain() string {
	return r.domain
}

// CustomIDs returns the custom ID builder for this domain
func (r *Router) CustomIDs() *CustomIDBuilder {
	return r.ids
}

// Use adds middleware applied to every handler in this router
func (r *Router) Use(middleware ...Middleware) *Router {
	r.middleware = append(r.middleware, middleware...)
	return r
}

// Command registers the handler for the bare slash command
func (r *Router) Command(handler Handler) *Router {
	r.handlers["cmd"] = handler
	return r
}

// CommandFunc registers a function for the bare slash command
func (r *Router) CommandFunc(fn func(ctx *InteractionContext) (*HandlerResult, error)) *Router {
	return r.Command(HandlerFunc(fn))
}

// Subcommand registers the handler for a subcommand
func (r *Router) Subcommand(name string, handler Handler) *Router {
	r.handlers["cmd:"+name] = handler
	return r
}

// SubcommandFunc registers a function for a subcommand
func (r *Router) SubcommandFunc(name string, fn func(ctx *InteractionContext) (*HandlerResult, error)) *Router {
	return r.Subcommand(name, HandlerFunc(fn))
}

// Component registers the handler for a component action
func (r *Router) Component(action string, handler Handler) *Router {
	r.handlers["component:"+action] = handler
	return r
}

// ComponentFunc registers a function for a component action
func (r *Router) ComponentFunc(action string, fn func(ctx *InteractionContext) (*HandlerResult, error)) *Router {
	return r.Component(action, HandlerFunc(fn))
}

// Modal registers the handler for a modal submit action
func (r *Router) Modal(action string, handler Handler) *Router {
	r.handlers["modal:"+action] = handler
	return r
}

// ModalFunc registers a function for a modal submit action
func (r *Router) ModalFunc(action string, fn func(ctx *InteractionContext) (*HandlerResult, error)) *Router {
	return r.Modal(action, HandlerFunc(fn))
}

// Build produces the routing handler with this router's middleware
// applied, outermost first.
func (r *Router) Build() Handler {
	var handler Handler = &routerHandler{router: r}
	for i := len(r.middleware) - 1; i >= 0; i-- {
		handler = r.middleware[i](handler)
	}
	return handler
}

// Register builds the router and registers it on the pipeline
func (r *Router) Register() {
	r.pipeline.Register(r.Build())
}

// routerHandler dispatches by routing pattern
type routerHandler struct {
	router *Router
}

// extractPattern derives the routing pattern for an interaction, or
// reports false when the interaction belongs to another domain.
func (h *routerHandler) extractPattern(ctx *InteractionContext) (string, bool) {
	switch {
	case ctx.IsCommand():
		if ctx.GetCommandName() != h.router.domain {
			return "", false
		}
		if sub := ctx.GetSubcommand(); sub != "" {
			return "cmd:" + sub, true
		}
		return "cmd", true

	case ctx.IsComponent(), ctx.IsModal():
		customID, err := ParseCustomID(ctx.GetCustomID())
		if err != nil {
			return "", false
		}
		if customID.Domain != h.router.domain {
			return "", false
		}
		if ctx.IsModal() {
			return "modal:" + customID.Action, true
		}
		return "component:" + customID.Action, true
	}
	return "", false
}

// CanHandle reports whether a handler is registered for this interaction
func (h *routerHandler) CanHandle(ctx *InteractionContext) bool {
	pattern, ok := h.extractPattern(ctx)
	if !ok {
		return false
	}
	_, found := h.router.handlers[pattern]
	return found
}

// Handle dispatches to the registered handler
func (h *routerHandler) Handle(ctx *InteractionContext) (*HandlerResult, error) {
	pattern, ok := h.extractPattern(ctx)
	if !ok {
		return nil, fmt.Errorf("interaction does not belong to domain %q", h.router.domain)
	}
	handler, found := h.router.handlers[pattern]
	if !found {
		return nil, fmt.Errorf("no handler registered for %s/%s", h.router.domain, pattern)
	}
	return handler.Handle(ctx)
}
