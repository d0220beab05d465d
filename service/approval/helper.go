package approval

import (
	"context"
	"sort"
)

// OutcomeFilter selects outcomes.
type OutcomeFilter func(*Outcome) bool

// WithState keeps outcomes in the given state.
func WithState(state State) OutcomeFilter {
	return func(o *Outcome) bool { return o.State == state }
}

// WithHandler keeps outcomes accepted by the named handler.
func WithHandler(name string) OutcomeFilter {
	return func(o *Outcome) bool { return o.Handler == name }
}

// ListOutcomes returns the ledger outcomes matching all filters, oldest decision first.
func ListOutcomes(ctx context.Context, svc Service, filters ...OutcomeFilter) ([]*Outcome, error) {
	all, err := svc.ListOutcomes(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*Outcome, 0, len(all))
outer:
	for _, outcome := range all {
		for _, filter := range filters {
			if !filter(outcome) {
				continue outer
			}
		}
		out = append(out, outcome)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].DecidedAt.Equal(out[j].DecidedAt) {
			return out[i].RequestID < out[j].RequestID
		}
		return out[i].DecidedAt.Before(out[j].DecidedAt)
	})
	return out, nil
}
