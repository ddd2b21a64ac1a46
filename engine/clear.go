package engine

import (
	"context"
	"sync"

	"github.com/prefstore/prefstore/keyspace"
)

// defaultClearWidth caps in-flight deletes during Clear when no width is
// configured.
const defaultClearWidth = 8

// Clear removes every key in namespace. Deletes fan out concurrently, capped
// at the configured width so the backend is never flooded.
//
// The backend offers no cross-key transaction, so the guarantee is "all or
// report the remainder": if some deletes fail, Clear returns a *ClearError
// naming the keys still present and their causes. Re-invoking Clear is safe
// and idempotent; already-removed keys are no-ops.
func (e *Engine) Clear(ctx context.Context, namespace string) error {
	keys, err := e.Keys(ctx, namespace)
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		e.emit(ctx, EventClear, namespace, "")
		return nil
	}

	var (
		wg     sync.WaitGroup
		mu     sync.Mutex
		failed = make(map[string]error)
		sem    = make(chan struct{}, e.clearWidth)
	)

	for _, key := range keys {
		if err := ctx.Err(); err != nil {
			// Aborted mid-clear: record the rest as not removed so the
			// caller sees a complete remainder, then stop dispatching.
			mu.Lock()
			failed[key] = err
			mu.Unlock()
			continue
		}

		backendKey, err := keyspace.BackendKey(namespace, key)
		if err != nil {
			mu.Lock()
			failed[key] = err
			mu.Unlock()
			continue
		}

		wg.Add(1)
		sem <- struct{}{}
		go func(key, backendKey string) {
			defer wg.Done()
			defer func() { <-sem }()

			if err := e.backend.Delete(ctx, backendKey); err != nil {
				mu.Lock()
				failed[key] = err
				mu.Unlock()
			}
		}(key, backendKey)
	}

	wg.Wait()

	if len(failed) > 0 {
		clearErr := &ClearError{Namespace: namespace, Failed: failed}
		e.emitError(ctx, EventClearPartial, namespace, "", clearErr)
		return clearErr
	}

	e.emit(ctx, EventClear, namespace, "")
	return nil
}
