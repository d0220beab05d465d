// Package approval implements a chain-of-responsibility approval workflow.
//
// Handlers own a predicate and nothing else. A Builder, the only place where
// ordering is decided, wires handlers into a Chain; the chain keeps handlers
// in an arena and successor links in an index table, so tiers can be
// reordered or skipped without touching any handler:
//
//	chain, err := approval.NewBuilder().
//		Add(director, divisionManager, president).
//		Sequence("director", "divisionManager", "president").
//		Build()
//	outcome := chain.Dispatch(ctx, &approval.Request{Magnitude: 20})
//
// A request no handler accepts ends Exhausted. That is an ordinary outcome,
// reported through Request.Approved and Outcome.State, never as an error.
package approval
