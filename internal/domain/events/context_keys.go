package events

// Context keys for event data
// These constants ensure consistent access to event context across the system
const (
	// Navigation context keys
	ContextFromStage = "from_stage" // string: stage the wizard left
	ContextToStage   = "to_stage"   // string: stage the wizard landed on

	// Cascade context keys
	ContextTriggerField  = "trigger_field"  // string: field whose change triggered invalidation
	ContextClearedFields = "cleared_fields" // []string: downstream fields that were reset

	// Finalization context keys
	ContextCharacterID   = "character_id"   // string: ID of the finalized character
	ContextCharacterName = "character_name" // string: name of the finalized character

	// Catalog context keys
	ContextResource    = "resource"     // string: catalog resource that failed to load
	ContextResourceKey = "resource_key" // string: key of the entry that was requested
	ContextError       = "error"        // string: underlying failure message
)
