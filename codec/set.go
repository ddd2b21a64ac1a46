package codec

// Set is a collection value with set semantics: element order carries no
// meaning. Plain JSON has no set type, so a Set is stored as a marker object
// {"__type__": "set", "values": [...]} and restored to a Set on decode.
// A stored mapping that happens to match the marker shape exactly is
// indistinguishable from a Set and will decode as one.
type Set []any

const (
	setMarkerKey   = "__type__"
	setMarkerValue = "set"
	setValuesKey   = "values"
)

// asSet reports whether a decoded mapping is a Set marker object and, if so,
// returns the restored Set.
func asSet(m map[string]any) (Set, bool) {
	if len(m) != 2 || m[setMarkerKey] != setMarkerValue {
		return nil, false
	}
	values, ok := m[setValuesKey].([]any)
	if !ok {
		return nil, false
	}
	set := make(Set, len(values))
	for i, elem := range values {
		set[i] = revive(elem)
	}
	return set, true
}

// Contains reports whether the set holds an element structurally equal to v.
// Elements are compared by their encoded form, so composite elements work too.
func (s Set) Contains(v any) bool {
	want, err := Encode(v)
	if err != nil {
		return false
	}
	for _, elem := range s {
		if got, err := Encode(elem); err == nil && got == want {
			return true
		}
	}
	return false
}
