package events

import "github.com/KirkDiggler/character-forge-discord/internal/domain/character"

// CreationEvent represents a character creation event that can be processed by the event system
type CreationEvent struct {
	Type    EventType
	Draft   *character.CharacterDraft
	Context map[string]interface{} // Flexible context data
}

// NewCreationEvent creates a new creation event
func NewCreationEvent(eventType EventType, draft *character.CharacterDraft) *CreationEvent {
	return &CreationEvent{
		Type:    eventType,
		Draft:   draft,
		Context: make(map[string]interface{}),
	}
}

// WithContext adds context data to the event
func (e *CreationEvent) WithContext(key string, value interface{}) *CreationEvent {
	e.Context[key] = value
	return e
}

// GetContext retrieves a value from the context
func (e *CreationEvent) GetContext(key string) (interface{}, bool) {
	val, exists := e.Context[key]
	return val, exists
}

// GetStringContext retrieves a string value from the context
func (e *CreationEvent) GetStringContext(key string) (string, bool) {
	val, exists := e.Context[key]
	if !exists {
		return "", false
	}
	strVal, ok := val.(string)
	return strVal, ok
}

// GetStringsContext retrieves a []string value from the context
func (e *CreationEvent) GetStringsContext(key string) ([]string, bool) {
	val, exists := e.Context[key]
	if !exists {
		return nil, false
	}
	strsVal, ok := val.([]string)
	return strsVal, ok
}
