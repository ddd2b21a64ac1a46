package engine

import (
	"errors"
	"fmt"
	"sort"

	"github.com/prefstore/prefstore/backend"
)

// ErrKeyNotFound is returned by Get when the key is absent from the
// namespace. It aliases the backend sentinel so errors.Is works across
// layers.
var ErrKeyNotFound = backend.ErrKeyNotFound

func isNotFound(err error) bool {
	return errors.Is(err, backend.ErrKeyNotFound)
}

// ClearError reports a partially failed Clear: the keys still present in the
// namespace and the failure that kept each one. Callers can retry by
// invoking Clear again; it only touches what remains.
type ClearError struct {
	Namespace string
	Failed    map[string]error
}

func (e *ClearError) Error() string {
	return fmt.Sprintf("clear %s: %d of namespace's keys not removed (%v)",
		e.Namespace, len(e.Failed), e.Keys())
}

// Keys returns the keys not removed, sorted.
func (e *ClearError) Keys() []string {
	keys := make([]string, 0, len(e.Failed))
	for key := range e.Failed {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Unwrap exposes the individual failures so errors.Is can match their
// underlying sentinels.
func (e *ClearError) Unwrap() []error {
	errs := make([]error, 0, len(e.Failed))
	for _, err := range e.Failed {
		errs = append(errs, err)
	}
	return errs
}
