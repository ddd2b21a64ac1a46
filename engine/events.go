package engine

import (
	"context"
	"log/slog"
	"time"

	"github.com/prefstore/prefstore/observability"
)

// Event types emitted by the engine.
const (
	EventSet          observability.EventType = "engine.set"
	EventSetFailed    observability.EventType = "engine.set.failed"
	EventRemove       observability.EventType = "engine.remove"
	EventRemoveFailed observability.EventType = "engine.remove.failed"
	EventDecodeFailed observability.EventType = "engine.decode.failed"
	EventClear        observability.EventType = "engine.clear"
	EventClearPartial observability.EventType = "engine.clear.partial"
)

const eventSource = "engine"

func (e *Engine) emit(ctx context.Context, typ observability.EventType, namespace, key string) {
	data := map[string]any{"namespace": namespace}
	if key != "" {
		data["key"] = key
	}
	e.observer.OnEvent(ctx, observability.Event{
		Type:      typ,
		Level:     slog.LevelDebug,
		Timestamp: time.Now(),
		Source:    eventSource,
		Data:      data,
	})
}

func (e *Engine) emitError(ctx context.Context, typ observability.EventType, namespace, key string, err error) {
	data := map[string]any{"namespace": namespace, "error": err.Error()}
	if key != "" {
		data["key"] = key
	}
	e.observer.OnEvent(ctx, observability.Event{
		Type:      typ,
		Level:     slog.LevelError,
		Timestamp: time.Now(),
		Source:    eventSource,
		Data:      data,
	})
}
