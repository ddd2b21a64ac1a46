// Package codec converts structured values to and from their stored JSON
// text. The supported domain is the JSON data model: nil, bool, string,
// numbers, []any sequences and map[string]any mappings, plus Set (see
// set.go). For every value in the domain, Decode(Encode(v)) is structurally
// equal to v; numbers always decode as float64.
package codec

import (
	"encoding/json"
	"fmt"
)

// Encode serializes a value to its stored text form. Values outside the
// supported domain fail with ErrUnsupportedValue.
func Encode(value any) (string, error) {
	prepared, err := prepare(value)
	if err != nil {
		return "", err
	}
	data, err := json.Marshal(prepared)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnsupportedValue, err)
	}
	return string(data), nil
}

// Decode deserializes stored text back into a value. Text that is not valid
// serialized data fails with ErrMalformedData.
func Decode(text string) (any, error) {
	var value any
	if err := json.Unmarshal([]byte(text), &value); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedData, err)
	}
	return revive(value), nil
}

// prepare validates that value lies within the supported domain and rewrites
// Set values into their marker form.
func prepare(value any) (any, error) {
	switch v := value.(type) {
	case nil, bool, string, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, float32, float64:
		return v, nil
	case Set:
		values := make([]any, len(v))
		for i, elem := range v {
			p, err := prepare(elem)
			if err != nil {
				return nil, err
			}
			values[i] = p
		}
		return map[string]any{setMarkerKey: setMarkerValue, setValuesKey: values}, nil
	case []any:
		out := make([]any, len(v))
		for i, elem := range v {
			p, err := prepare(elem)
			if err != nil {
				return nil, err
			}
			out[i] = p
		}
		return out, nil
	case map[string]any:
		out := make(map[string]any, len(v))
		for key, elem := range v {
			p, err := prepare(elem)
			if err != nil {
				return nil, err
			}
			out[key] = p
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedValue, value)
	}
}

// revive walks a decoded value and restores Set markers.
func revive(value any) any {
	switch v := value.(type) {
	case []any:
		for i, elem := range v {
			v[i] = revive(elem)
		}
		return v
	case map[string]any:
		if set, ok := asSet(v); ok {
			return set
		}
		for key, elem := range v {
			v[key] = revive(elem)
		}
		return v
	default:
		return v
	}
}
