package idgen

import "github.com/google/uuid"

// NewFunc returns a new globally unique identifier. Override in tests.
var NewFunc = func() string { return uuid.New().String() }

// New returns a new identifier.
func New() string { return NewFunc() }

// Prefixed returns a new identifier with a kind prefix, e.g. "req-<uuid>".
func Prefixed(kind string) string {
	if kind == "" {
		return New()
	}
	return kind + "-" + New()
}
