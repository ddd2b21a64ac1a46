package codec

import "errors"

// Sentinel errors for codec operations.
var (
	ErrUnsupportedValue = errors.New("unsupported value")
	ErrMalformedData    = errors.New("malformed stored data")
)
