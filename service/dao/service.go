// Package dao defines the storage contract used by the approval ledger.
package dao

import (
	"context"
)

// Service is a generic keyed store of *T values.
type Service[K comparable, T any] interface {
	Save(ctx context.Context, t *T) error

	// Load returns (nil, nil) when the key is unknown.
	Load(ctx context.Context, id K) (*T, error)

	Delete(ctx context.Context, id K) error

	// List returns the values matching all parameters; implementations
	// without parameter support return everything.
	List(ctx context.Context, parameters ...*Parameter) ([]*T, error)
}
