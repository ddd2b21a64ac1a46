// Package prefs is the caller-facing surface of the storage engine: a Store
// is bound to one namespace at construction and exposes the narrow
// set/get/remove/clear operation set. Callers never see or build backend
// keys.
//
//	store, err := prefs.New("app1")
//	if err != nil { ... }
//	store.Set(ctx, "settings", map[string]any{"theme": "dark"})
//	value, err := store.Get(ctx, "settings")
//
// The default backend is in-memory; use WithBackend to persist:
//
//	store, err := prefs.New("app1", prefs.WithBackend(backend.NewFileStore(dir)))
package prefs

import (
	"context"

	"github.com/prefstore/prefstore/backend"
	"github.com/prefstore/prefstore/engine"
	"github.com/prefstore/prefstore/keyspace"
	"github.com/prefstore/prefstore/observability"
)

// Store is a namespace-bound view over the storage engine. It adds no state
// or behavior beyond namespace binding and delegation.
type Store struct {
	namespace string
	engine    *engine.Engine
}

// Option customizes a Store.
type Option func(*options)

type options struct {
	backend    backend.Backend
	engineOpts []engine.Option
}

// WithBackend selects the durable medium. If not provided, an in-memory
// backend is used.
func WithBackend(b backend.Backend) Option {
	return func(o *options) {
		if b != nil {
			o.backend = b
		}
	}
}

// WithObserver sets the observer receiving engine events.
func WithObserver(obs observability.Observer) Option {
	return func(o *options) {
		o.engineOpts = append(o.engineOpts, engine.WithObserver(obs))
	}
}

// WithClearWidth caps in-flight deletes during Clear.
func WithClearWidth(width int) Option {
	return func(o *options) {
		o.engineOpts = append(o.engineOpts, engine.WithClearWidth(width))
	}
}

// New creates a Store bound to namespace. The namespace is validated once
// here; it is immutable for the lifetime of the Store.
func New(namespace string, opts ...Option) (*Store, error) {
	if err := keyspace.ValidateNamespace(namespace); err != nil {
		return nil, err
	}

	o := &options{backend: backend.NewMemStore()}
	for _, opt := range opts {
		opt(o)
	}

	return &Store{
		namespace: namespace,
		engine:    engine.New(o.backend, o.engineOpts...),
	}, nil
}

// Namespace returns the namespace this Store is bound to.
func (s *Store) Namespace() string {
	return s.namespace
}

// Set stores a value under key, overwriting any prior value.
func (s *Store) Set(ctx context.Context, key string, value any) error {
	return s.engine.Set(ctx, s.namespace, key, value)
}

// Get retrieves the value stored under key.
func (s *Store) Get(ctx context.Context, key string) (any, error) {
	return s.engine.Get(ctx, s.namespace, key)
}

// GetOrDefault retrieves the value stored under key, or def when absent.
func (s *Store) GetOrDefault(ctx context.Context, key string, def any) (any, error) {
	return s.engine.GetOrDefault(ctx, s.namespace, key, def)
}

// Contains reports whether key holds a value.
func (s *Store) Contains(ctx context.Context, key string) (bool, error) {
	return s.engine.Contains(ctx, s.namespace, key)
}

// Remove deletes key. Removing an absent key succeeds.
func (s *Store) Remove(ctx context.Context, key string) error {
	return s.engine.Remove(ctx, s.namespace, key)
}

// Keys returns all keys present in this Store's namespace.
func (s *Store) Keys(ctx context.Context) ([]string, error) {
	return s.engine.Keys(ctx, s.namespace)
}

// Clear removes every key in this Store's namespace. Other namespaces on the
// same backend are untouched.
func (s *Store) Clear(ctx context.Context) error {
	return s.engine.Clear(ctx, s.namespace)
}
