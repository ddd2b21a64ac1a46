// Package backend defines the minimal durable-storage contract the storage
// engine depends on, plus the two bundled implementations: a crash-consistent
// file store and an in-memory store. Any conforming medium can be substituted
// without changing the engine.
package backend

import "context"

// Backend is the raw key-value medium under the engine. Implementations must
// be safe for concurrent use; no ordering or cross-key atomicity is assumed
// beyond per-call success or failure.
type Backend interface {
	// Get retrieves the stored text for a key. Absent keys fail with
	// ErrKeyNotFound.
	Get(ctx context.Context, key string) (string, error)
	// Set stores text under a key, overwriting any prior value.
	Set(ctx context.Context, key, value string) error
	// Delete removes a key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
	// ListKeys returns every key the backend holds, across all namespaces.
	ListKeys(ctx context.Context) ([]string, error)
}
