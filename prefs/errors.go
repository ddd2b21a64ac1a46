package prefs

import (
	"github.com/prefstore/prefstore/backend"
	"github.com/prefstore/prefstore/codec"
	"github.com/prefstore/prefstore/keyspace"
)

// Aliases for the engine error taxonomy, so facade callers can match errors
// without importing the inner packages.
var (
	ErrInvalidKey       = keyspace.ErrInvalidKey
	ErrUnsupportedValue = codec.ErrUnsupportedValue
	ErrKeyNotFound      = backend.ErrKeyNotFound
	ErrMalformedData    = codec.ErrMalformedData
	ErrBackend          = backend.ErrBackend
)
