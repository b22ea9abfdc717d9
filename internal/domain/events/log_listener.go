package events

import (
	"log/slog"
)

// AllEventTypes lists every creation event type, for listeners that
// want the whole stream.
var AllEventTypes = []EventType{
	DraftCreated,
	DraftUpdated,
	DraftFinalized,
	DraftDeleted,
	StageAdvanced,
	StageRetreated,
	StageJumped,
	SelectionsInvalidated,
	CatalogFetchFailed,
}

// LogListener writes one structured line per creation event, so the
// wizard's activity shows up in the bot logs without per-feature wiring.
type LogListener struct {
	log *slog.Logger
}

// NewLogListener creates a listener that logs through the given logger
func NewLogListener(log *slog.Logger) *LogListener {
	if log == nil {
		log = slog.Default()
	}
	return &LogListener{log: log}
}

// HandleEvent logs the event with its draft and context attributes
func (l *LogListener) HandleEvent(event *CreationEvent) error {
	attrs := make([]any, 0, 2*(2+len(knownContextFields)))
	attrs = append(attrs, "event", event.Type.String())
	if event.Draft != nil {
		attrs = append(attrs, "draft_id", event.Draft.ID)
	}
	for _, key := range knownContextFields {
		if v, ok := event.Context[key]; ok {
			attrs = append(attrs, key, v)
		}
	}
	l.log.Info("creation event", attrs...)
	return nil
}

// Priority runs the logger after domain listeners
func (l *LogListener) Priority() int {
	return 100
}
