package domain

import "unique"

// Key is the stable identity of a block inside a dependency graph.
// It wraps a unique.Handle so that keys built from equal strings compare equal
// and graph tables can be indexed by value instead of by block reference.
type Key struct {
	h unique.Handle[string]
}

// NewKey interns s and returns its Key.
func NewKey(s string) Key {
	return Key{h: unique.Make(s)}
}

// NewKeys converts a slice of strings to a slice of Keys.
func NewKeys(strs []string) []Key {
	keys := make([]Key, len(strs))
	for i, s := range strs {
		keys[i] = NewKey(s)
	}
	return keys
}

// String returns the underlying string value.
func (k Key) String() string {
	var zero unique.Handle[string]
	if k.h == zero {
		return ""
	}
	return k.h.Value()
}

// IsZero reports whether the key was never assigned.
func (k Key) IsZero() bool {
	var zero unique.Handle[string]
	return k.h == zero
}

// MarshalText implements encoding.TextMarshaler.
func (k Key) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Key) UnmarshalText(text []byte) error {
	k.h = unique.Make(string(text))
	return nil
}
