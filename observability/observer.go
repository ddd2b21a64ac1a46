// Package observability delivers storage-engine events to pluggable
// observers. The engine emits one event per operation outcome; observers
// route them to logging or metrics. The default observer discards events, so
// library use is silent unless a caller opts in.
package observability

import (
	"context"
	"log/slog"
	"time"
)

// EventType identifies the kind of event. Each subsystem defines its own
// constants using this type (e.g. "engine.set", "engine.clear.partial").
type EventType string

// Event is a single observability event.
type Event struct {
	Type      EventType
	Level     slog.Level
	Timestamp time.Time
	Source    string
	Data      map[string]any
}

// Observer receives events from subsystems. Implementations must be safe for
// concurrent use and should return quickly; events are emitted inline.
type Observer interface {
	OnEvent(ctx context.Context, event Event)
}
