package engine_test

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/prefstore/prefstore/backend"
	"github.com/prefstore/prefstore/engine"
)

// flakyBackend wraps a Backend and fails Delete for selected keys, recording
// the peak number of concurrent deletes.
type flakyBackend struct {
	backend.Backend

	mu       sync.Mutex
	failing  map[string]bool
	inflight int32
	peak     int32
}

func newFlakyBackend(failing ...string) *flakyBackend {
	fb := &flakyBackend{
		Backend: backend.NewMemStore(),
		failing: make(map[string]bool),
	}
	for _, key := range failing {
		fb.failing[key] = true
	}
	return fb
}

func (fb *flakyBackend) heal(key string) {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	delete(fb.failing, key)
}

func (fb *flakyBackend) Delete(ctx context.Context, key string) error {
	n := atomic.AddInt32(&fb.inflight, 1)
	defer atomic.AddInt32(&fb.inflight, -1)
	for {
		peak := atomic.LoadInt32(&fb.peak)
		if n <= peak || atomic.CompareAndSwapInt32(&fb.peak, peak, n) {
			break
		}
	}

	fb.mu.Lock()
	failing := fb.failing[key]
	fb.mu.Unlock()
	if failing {
		return fmt.Errorf("%w: delete %s: injected failure", backend.ErrBackend, key)
	}
	return fb.Backend.Delete(ctx, key)
}

func TestClear_Completeness(t *testing.T) {
	eng, _ := newEngine(t)
	ctx := context.Background()

	for i := 0; i < 30; i++ {
		key := fmt.Sprintf("k%02d", i)
		if err := eng.Set(ctx, "ns", key, float64(i)); err != nil {
			t.Fatalf("Set(%s) error = %v", key, err)
		}
	}

	if err := eng.Clear(ctx, "ns"); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}

	keys, err := eng.Keys(ctx, "ns")
	if err != nil {
		t.Fatalf("Keys() error = %v", err)
	}
	if len(keys) != 0 {
		t.Errorf("Keys() after Clear = %v, want empty", keys)
	}
	if _, err := eng.Get(ctx, "ns", "k00"); !errors.Is(err, engine.ErrKeyNotFound) {
		t.Errorf("Get() after Clear error = %v, want ErrKeyNotFound", err)
	}
}

func TestClear_EmptyNamespace(t *testing.T) {
	eng, _ := newEngine(t)

	if err := eng.Clear(context.Background(), "ns"); err != nil {
		t.Errorf("Clear() on empty namespace error = %v", err)
	}
}

func TestClear_SparesOtherNamespaces(t *testing.T) {
	eng, _ := newEngine(t)
	ctx := context.Background()

	if err := eng.Set(ctx, "appA", "k", "a"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := eng.Set(ctx, "appB", "k", "b"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	if err := eng.Clear(ctx, "appA"); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}

	got, err := eng.Get(ctx, "appB", "k")
	if err != nil {
		t.Fatalf("Get(appB) after Clear(appA) error = %v", err)
	}
	if got != "b" {
		t.Errorf("Get(appB) = %v, want b", got)
	}
}

func TestClear_PartialFailure(t *testing.T) {
	fb := newFlakyBackend("ns.bad1", "ns.bad2")
	eng := engine.New(fb)
	ctx := context.Background()

	for _, key := range []string{"good", "bad1", "bad2"} {
		if err := eng.Set(ctx, "ns", key, "v"); err != nil {
			t.Fatalf("Set(%s) error = %v", key, err)
		}
	}

	err := eng.Clear(ctx, "ns")

	var clearErr *engine.ClearError
	if !errors.As(err, &clearErr) {
		t.Fatalf("Clear() error = %v, want *ClearError", err)
	}
	if !reflect.DeepEqual(clearErr.Keys(), []string{"bad1", "bad2"}) {
		t.Errorf("ClearError.Keys() = %v, want [bad1 bad2]", clearErr.Keys())
	}
	if !errors.Is(err, backend.ErrBackend) {
		t.Errorf("errors.Is(err, ErrBackend) = false, want true")
	}

	// The succeeding key is gone despite the partial failure.
	ok, err := eng.Contains(ctx, "ns", "good")
	if err != nil {
		t.Fatalf("Contains() error = %v", err)
	}
	if ok {
		t.Error("Contains(good) = true after partial Clear, want false")
	}
}

func TestClear_RetryAfterPartialFailure(t *testing.T) {
	fb := newFlakyBackend("ns.bad")
	eng := engine.New(fb)
	ctx := context.Background()

	for _, key := range []string{"a", "b", "bad"} {
		if err := eng.Set(ctx, "ns", key, "v"); err != nil {
			t.Fatalf("Set(%s) error = %v", key, err)
		}
	}

	var clearErr *engine.ClearError
	if err := eng.Clear(ctx, "ns"); !errors.As(err, &clearErr) {
		t.Fatalf("Clear() error = %v, want *ClearError", err)
	}

	// Once the backend recovers, a second Clear removes the remainder.
	fb.heal("ns.bad")
	if err := eng.Clear(ctx, "ns"); err != nil {
		t.Fatalf("Clear() retry error = %v", err)
	}

	keys, err := eng.Keys(ctx, "ns")
	if err != nil {
		t.Fatalf("Keys() error = %v", err)
	}
	if len(keys) != 0 {
		t.Errorf("Keys() after retried Clear = %v, want empty", keys)
	}
}

func TestClear_BoundedConcurrency(t *testing.T) {
	fb := newFlakyBackend()
	eng := engine.New(fb, engine.WithClearWidth(4))
	ctx := context.Background()

	for i := 0; i < 40; i++ {
		key := fmt.Sprintf("k%02d", i)
		if err := eng.Set(ctx, "ns", key, "v"); err != nil {
			t.Fatalf("Set(%s) error = %v", key, err)
		}
	}

	if err := eng.Clear(ctx, "ns"); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}

	if peak := atomic.LoadInt32(&fb.peak); peak > 4 {
		t.Errorf("peak concurrent deletes = %d, want <= 4", peak)
	}
}

func TestClear_Cancelled(t *testing.T) {
	eng, _ := newEngine(t)
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		if err := eng.Set(ctx, "ns", fmt.Sprintf("k%d", i), "v"); err != nil {
			t.Fatalf("Set() error = %v", err)
		}
	}

	cancelled, cancel := context.WithCancel(ctx)
	cancel()

	err := eng.Clear(cancelled, "ns")
	var clearErr *engine.ClearError
	if err != nil && !errors.As(err, &clearErr) {
		t.Fatalf("Clear() with cancelled ctx error = %v, want nil or *ClearError", err)
	}

	// Whatever was aborted, a fresh Clear finishes the job.
	if err := eng.Clear(ctx, "ns"); err != nil {
		t.Fatalf("Clear() after cancel error = %v", err)
	}
	keys, err := eng.Keys(ctx, "ns")
	if err != nil {
		t.Fatalf("Keys() error = %v", err)
	}
	if len(keys) != 0 {
		t.Errorf("Keys() = %v, want empty", keys)
	}
}
