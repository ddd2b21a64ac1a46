package keyspace

import "errors"

// Sentinel errors for key derivation.
var (
	ErrInvalidKey = errors.New("invalid key")
	ErrForeignKey = errors.New("key outside namespace")
)
