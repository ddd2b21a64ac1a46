package backend

import "errors"

// Sentinel errors for backend operations.
var (
	ErrKeyNotFound = errors.New("key not found")
	ErrBackend     = errors.New("backend failure")
)
