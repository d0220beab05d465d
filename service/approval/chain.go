package approval

import (
	"context"
	"log/slog"

	"github.com/viant/cmdchain/internal/clock"
	"github.com/viant/cmdchain/tracing"
)

const noSuccessor = -1

// Chain is an immutable, built handler sequence. Handlers live in an arena;
// next[i] is the arena index of handler i's successor or noSuccessor.
type Chain struct {
	handlers []*Handler
	next     []int
	head     int
	index    map[string]int
	logger   *slog.Logger
}

// ChainOption customises a built chain.
type ChainOption func(c *Chain)

// WithLogger sets the chain logger.
func WithLogger(logger *slog.Logger) ChainOption {
	return func(c *Chain) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// Dispatch forwards r along the chain until a handler accepts it or the
// chain is exhausted. The first accepting handler sets r.Approved.
//
// An already approved request is not re-dispatched: the outcome repeats the
// recorded decision without visiting any handler. Call Request.Reset to
// dispatch it again. A nil request yields a pending outcome.
func (c *Chain) Dispatch(ctx context.Context, r *Request) *Outcome {
	if r == nil {
		return &Outcome{State: StatePending}
	}
	_, span := tracing.StartSpan(ctx, "approval.dispatch")
	span.WithInt("magnitude", r.Magnitude)
	defer tracing.EndSpan(span, nil)

	outcome := &Outcome{RequestID: r.ID}
	if r.Approved {
		outcome.State = StateApproved
		outcome.Handler = r.ApprovedBy
		outcome.DecidedAt = clock.Now()
		return outcome
	}
	for i := c.head; i != noSuccessor; i = c.next[i] {
		handler := c.handlers[i]
		outcome.Visited = append(outcome.Visited, handler.Name)
		accepted, err := handler.Accepts(r)
		if err != nil {
			c.logger.Warn("approval predicate failed", "request", r.ID, "handler", handler.Name, "error", err)
		}
		if accepted {
			r.Approved = true
			r.ApprovedBy = handler.Name
			outcome.State = StateApproved
			outcome.Handler = handler.Name
			outcome.DecidedAt = clock.Now()
			span.WithAttributes(map[string]string{"state": outcome.State.String(), "handler": handler.Name})
			c.logger.Debug("request approved", "request", r.ID, "magnitude", r.Magnitude, "handler", handler.Name)
			return outcome
		}
		c.logger.Debug("request forwarded", "request", r.ID, "magnitude", r.Magnitude, "handler", handler.Name)
	}
	outcome.State = StateExhausted
	outcome.DecidedAt = clock.Now()
	span.WithAttributes(map[string]string{"state": outcome.State.String()})
	c.logger.Info("request not approved by any handler", "request", r.ID, "magnitude", r.Magnitude)
	return outcome
}

// Head returns the name of the first handler, or "" for an empty chain.
func (c *Chain) Head() string {
	if c.head == noSuccessor {
		return ""
	}
	return c.handlers[c.head].Name
}

// Order returns handler names in traversal order.
func (c *Chain) Order() []string {
	var out []string
	for i := c.head; i != noSuccessor; i = c.next[i] {
		out = append(out, c.handlers[i].Name)
	}
	return out
}

// Handler returns a handler owned by the chain, reachable or not.
func (c *Chain) Handler(name string) (*Handler, bool) {
	i, ok := c.index[name]
	if !ok {
		return nil, false
	}
	return c.handlers[i], true
}

// Successor returns the name of the handler following name.
func (c *Chain) Successor(name string) (string, bool) {
	i, ok := c.index[name]
	if !ok || c.next[i] == noSuccessor {
		return "", false
	}
	return c.handlers[c.next[i]].Name, true
}

// Len returns the number of owned handlers.
func (c *Chain) Len() int { return len(c.handlers) }
