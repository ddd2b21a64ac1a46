// Package engine implements the namespaced storage engine. It orchestrates
// the codec, the keyspace mapping and a backend into the get/set/remove/clear
// operation set, and owns the error taxonomy callers program against.
//
// The engine is stateless beyond its backend handle: no cache, no in-memory
// mirror, no per-key locks. Namespace isolation is enforced purely by key
// prefixing, so any number of engines may share one backend. Concurrent
// operations on distinct keys never block each other; concurrent writes to
// the same key have no contractual ordering.
package engine

import (
	"context"
	"fmt"

	"github.com/prefstore/prefstore/backend"
	"github.com/prefstore/prefstore/codec"
	"github.com/prefstore/prefstore/keyspace"
	"github.com/prefstore/prefstore/observability"
)

// Engine performs namespaced key-value operations against a backend.
type Engine struct {
	backend    backend.Backend
	observer   observability.Observer
	clearWidth int
}

// Option customizes an Engine.
type Option func(*Engine)

// WithObserver sets the observer receiving engine events.
// If not provided, events are discarded.
func WithObserver(obs observability.Observer) Option {
	return func(e *Engine) {
		if obs != nil {
			e.observer = obs
		}
	}
}

// WithClearWidth caps the number of in-flight backend deletes during Clear.
func WithClearWidth(width int) Option {
	return func(e *Engine) {
		if width > 0 {
			e.clearWidth = width
		}
	}
}

// New creates an Engine over the given backend.
func New(b backend.Backend, opts ...Option) *Engine {
	e := &Engine{
		backend:    b,
		observer:   observability.NoOpObserver{},
		clearWidth: defaultClearWidth,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Set encodes value and stores it under (namespace, key), overwriting any
// prior value. Fails with keyspace.ErrInvalidKey, codec.ErrUnsupportedValue
// or backend.ErrBackend.
func (e *Engine) Set(ctx context.Context, namespace, key string, value any) error {
	backendKey, err := keyspace.BackendKey(namespace, key)
	if err != nil {
		return err
	}

	text, err := codec.Encode(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}

	if err := e.backend.Set(ctx, backendKey, text); err != nil {
		e.emitError(ctx, EventSetFailed, namespace, key, err)
		return err
	}

	e.emit(ctx, EventSet, namespace, key)
	return nil
}

// Get retrieves and decodes the value stored under (namespace, key). Absence
// fails with ErrKeyNotFound; stored text that does not decode fails with
// codec.ErrMalformedData. Absence and corruption are distinct outcomes and
// neither is ever masked here.
func (e *Engine) Get(ctx context.Context, namespace, key string) (any, error) {
	backendKey, err := keyspace.BackendKey(namespace, key)
	if err != nil {
		return nil, err
	}

	text, err := e.backend.Get(ctx, backendKey)
	if err != nil {
		return nil, err
	}

	value, err := codec.Decode(text)
	if err != nil {
		e.emitError(ctx, EventDecodeFailed, namespace, key, err)
		return nil, fmt.Errorf("decode %s: %w", key, err)
	}

	return value, nil
}

// GetOrDefault is Get, except absence returns def instead of ErrKeyNotFound.
// Corrupted stored data still fails: "not found" and "found but unreadable"
// are different outcomes.
func (e *Engine) GetOrDefault(ctx context.Context, namespace, key string, def any) (any, error) {
	value, err := e.Get(ctx, namespace, key)
	if isNotFound(err) {
		return def, nil
	}
	if err != nil {
		return nil, err
	}
	return value, nil
}

// Contains reports whether (namespace, key) holds a value. It checks
// presence only and never decodes the stored text.
func (e *Engine) Contains(ctx context.Context, namespace, key string) (bool, error) {
	backendKey, err := keyspace.BackendKey(namespace, key)
	if err != nil {
		return false, err
	}

	_, err = e.backend.Get(ctx, backendKey)
	if isNotFound(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Remove deletes (namespace, key). Removing an absent key succeeds.
func (e *Engine) Remove(ctx context.Context, namespace, key string) error {
	backendKey, err := keyspace.BackendKey(namespace, key)
	if err != nil {
		return err
	}

	if err := e.backend.Delete(ctx, backendKey); err != nil {
		e.emitError(ctx, EventRemoveFailed, namespace, key, err)
		return err
	}

	e.emit(ctx, EventRemove, namespace, key)
	return nil
}

// Keys returns the logical keys present in namespace. Order follows the
// backend's ListKeys order; both bundled backends list lexicographically.
func (e *Engine) Keys(ctx context.Context, namespace string) ([]string, error) {
	if err := keyspace.ValidateNamespace(namespace); err != nil {
		return nil, err
	}

	backendKeys, err := e.backend.ListKeys(ctx)
	if err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(backendKeys))
	for _, backendKey := range backendKeys {
		if !keyspace.InNamespace(namespace, backendKey) {
			continue
		}
		key, err := keyspace.LogicalKey(namespace, backendKey)
		if err != nil {
			return nil, err
		}
		keys = append(keys, key)
	}

	return keys, nil
}
