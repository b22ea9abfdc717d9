package events

// EventType represents the type of character creation event
type EventType int

const (
	// Draft lifecycle events
	DraftCreated EventType = iota
	DraftUpdated
	DraftFinalized
	DraftDeleted

	// Wizard navigation events
	StageAdvanced
	StageRetreated
	StageJumped

	// Cascade events
	SelectionsInvalidated

	// Catalog events
	CatalogFetchFailed
)

// String returns the string representation of the event type
func (e EventType) String() string {
	names := [...]string{
		"DraftCreated",
		"DraftUpdated",
		"DraftFinalized",
		"DraftDeleted",
		"StageAdvanced",
		"StageRetreated",
		"StageJumped",
		"SelectionsInvalidated",
		"CatalogFetchFailed",
	}
	if e < DraftCreated || int(e) >= len(names) {
		return "Unknown"
	}
	return names[e]
}
