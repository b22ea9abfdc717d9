package events

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/core"
	rpgevents "github.com/KirkDiggler/rpg-toolkit/events"
)

// ToolkitBus distributes creation events over rpg-toolkit's event bus
type ToolkitBus struct {
	bus *rpgevents.Bus
	mu  sync.RWMutex

	// Track subscriptions for ListenerCount and Unsubscribe support
	subscriptions map[EventType]map[EventListener]string // eventType -> listener -> subscriptionID
}

// Ensure ToolkitBus implements Bus
var _ Bus = (*ToolkitBus)(nil)

// NewToolkitBus creates a new event bus using rpg-toolkit directly
func NewToolkitBus() *ToolkitBus {
	return &ToolkitBus{
		bus:           rpgevents.NewBus(),
		subscriptions: make(map[EventType]map[EventListener]string),
	}
}

// GetRPGBus returns the underlying rpg-toolkit event bus for direct usage
func (tb *ToolkitBus) GetRPGBus() *rpgevents.Bus {
	return tb.bus
}

// Subscribe adds a listener for a specific event type
func (tb *ToolkitBus) Subscribe(eventType EventType, listener EventListener) {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	toolkitEvent := toolkitEventName(eventType)

	// Create handler that converts toolkit events back to creation events
	handler := func(ctx context.Context, e rpgevents.Event) error {
		creationEvent := convertToCreationEvent(e, eventType)
		if creationEvent == nil {
			return nil
		}

		return listener.HandleEvent(creationEvent)
	}

	id := tb.bus.SubscribeFunc(toolkitEvent, listener.Priority(), handler)

	if tb.subscriptions[eventType] == nil {
		tb.subscriptions[eventType] = make(map[EventListener]string)
	}
	tb.subscriptions[eventType][listener] = id
}

// Unsubscribe removes a listener for a specific event type
func (tb *ToolkitBus) Unsubscribe(eventType EventType, listener EventListener) {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	if listeners, ok := tb.subscriptions[eventType]; ok {
		if id, ok := listeners[listener]; ok {
			// The subscription might already be gone, keep cleaning up our tracking
			if err := tb.bus.Unsubscribe(id); err != nil {
				log.Printf("ToolkitBus.Unsubscribe: failed to unsubscribe %s: %v", id, err)
			}
			delete(listeners, listener)

			if len(listeners) == 0 {
				delete(tb.subscriptions, eventType)
			}
		}
	}
}

// Emit sends an event to all registered listeners
func (tb *ToolkitBus) Emit(event *CreationEvent) error {
	toolkitEvent := toolkitEventName(event.Type)

	tkEvent := convertToToolkitEvent(toolkitEvent, event)

	return tb.bus.Publish(context.Background(), tkEvent)
}

// Clear removes all listeners
func (tb *ToolkitBus) Clear() {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	for _, listeners := range tb.subscriptions {
		for _, id := range listeners {
			// Best effort, subscriptions may already be gone
			if err := tb.bus.Unsubscribe(id); err != nil {
				log.Printf("ToolkitBus.Clear: failed to unsubscribe %s: %v", id, err)
			}
		}
	}

	tb.subscriptions = make(map[EventType]map[EventListener]string)
}

// ListenerCount returns the number of listeners for an event type
func (tb *ToolkitBus) ListenerCount(eventType EventType) int {
	tb.mu.RLock()
	defer tb.mu.RUnlock()

	if listeners, ok := tb.subscriptions[eventType]; ok {
		return len(listeners)
	}
	return 0
}

// toolkitEventName converts creation event types to toolkit event names
func toolkitEventName(eventType EventType) string {
	return fmt.Sprintf("forge.%s", eventType.String())
}

// knownContextFields are the context keys copied across the toolkit boundary
var knownContextFields = []string{
	ContextFromStage,
	ContextToStage,
	ContextTriggerField,
	ContextClearedFields,
	ContextCharacterID,
	ContextCharacterName,
	ContextResource,
	ContextResourceKey,
	ContextError,
}

// convertToToolkitEvent converts a CreationEvent to a toolkit Event
func convertToToolkitEvent(eventType string, creationEvent *CreationEvent) rpgevents.Event {
	var source core.Entity
	if creationEvent.Draft != nil {
		source = WrapDraft(creationEvent.Draft)
	}

	event := rpgevents.NewGameEvent(eventType, source, nil)

	for k, v := range creationEvent.Context {
		event.Context().Set(k, v)
	}

	return event
}

// convertToCreationEvent converts a toolkit Event back to a CreationEvent
func convertToCreationEvent(tkEvent rpgevents.Event, expectedType EventType) *CreationEvent {
	creationEvent := &CreationEvent{
		Type:    expectedType,
		Context: make(map[string]interface{}),
	}

	if source := tkEvent.Source(); source != nil {
		if draftEntity, ok := source.(*DraftEntity); ok {
			creationEvent.Draft = draftEntity.Draft
		}
	}

	for _, field := range knownContextFields {
		if value, ok := tkEvent.Context().Get(field); ok {
			creationEvent.Context[field] = value
		}
	}

	return creationEvent
}
