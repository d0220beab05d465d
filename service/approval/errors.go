package approval

import "errors"

// Construction and ledger errors. Dispatch itself never fails.
var (
	ErrDuplicateHandler = errors.New("approval: duplicate handler")
	ErrUnknownHandler   = errors.New("approval: unknown handler")
	ErrMissingPredicate = errors.New("approval: handler has no predicate")
	ErrUnnamedHandler   = errors.New("approval: handler has no name")
	ErrMissingHead      = errors.New("approval: chain has no head")
	ErrCycle            = errors.New("approval: chain links form a cycle")
	ErrInvalidRequest   = errors.New("approval: invalid request")
	ErrRequestNotFound  = errors.New("approval: request not found")
)
