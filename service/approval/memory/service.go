package memory

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/viant/cmdchain/internal/clock"
	"github.com/viant/cmdchain/internal/idgen"
	approval "github.com/viant/cmdchain/service/approval"
	"github.com/viant/cmdchain/service/dao"
	"github.com/viant/cmdchain/service/dao/criteria"
	"github.com/viant/cmdchain/service/dao/store"
	"github.com/viant/cmdchain/service/messaging"
)

type service struct {
	chain *approval.Chain

	reqDAO dao.Service[string, approval.Request]
	outDAO dao.Service[string, approval.Outcome]

	// optional fan-out queue
	events messaging.Queue[approval.Event]
	logger *slog.Logger
}

func reqKey(r *approval.Request) string { return r.ID }
func outKey(o *approval.Outcome) string { return o.RequestID }

var outcomeMatcher = criteria.Fields(map[string]func(*approval.Outcome) string{
	approval.ParamState:   func(o *approval.Outcome) string { return o.State.String() },
	approval.ParamHandler: func(o *approval.Outcome) string { return o.Handler },
})

// New creates a ledger dispatching through chain.
func New(chain *approval.Chain, options ...Option) approval.Service {
	ret := &service{
		chain:  chain,
		reqDAO: store.NewMemoryStore[string, approval.Request](reqKey),
		outDAO: store.NewMemoryStore[string, approval.Outcome](outKey).WithMatcher(outcomeMatcher),
		logger: slog.Default(),
	}
	for _, option := range options {
		option(ret)
	}
	return ret
}

func (s *service) Submit(ctx context.Context, r *approval.Request) (*approval.Outcome, error) {
	if r == nil {
		return nil, approval.ErrInvalidRequest
	}
	if s.chain == nil {
		return nil, fmt.Errorf("%w: no chain configured", approval.ErrInvalidRequest)
	}
	if r.ID == "" {
		r.ID = idgen.Prefixed("req")
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = clock.Now()
	}
	return s.dispatch(ctx, r)
}

func (s *service) Resubmit(ctx context.Context, id string) (*approval.Outcome, error) {
	r, err := s.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	r.Reset()
	return s.dispatch(ctx, r)
}

// dispatch runs r through the chain and records copies of the request and
// outcome, so later changes made by the caller do not reach the ledger.
func (s *service) dispatch(ctx context.Context, r *approval.Request) (*approval.Outcome, error) {
	outcome := s.chain.Dispatch(ctx, r)
	if err := s.reqDAO.Save(ctx, cloneRequest(r)); err != nil {
		return nil, fmt.Errorf("failed to save request %s: %w", r.ID, err)
	}
	if err := s.outDAO.Save(ctx, cloneOutcome(outcome)); err != nil {
		return nil, fmt.Errorf("failed to save outcome %s: %w", r.ID, err)
	}
	s.logger.Info("approval dispatched", "request", r.ID, "magnitude", r.Magnitude,
		"state", outcome.State.String(), "handler", outcome.Handler)
	s.publish(ctx, r, outcome)
	return outcome, nil
}

func (s *service) publish(ctx context.Context, r *approval.Request, outcome *approval.Outcome) {
	if s.events == nil {
		return
	}
	topic := approval.TopicRequestExhausted
	if outcome.State == approval.StateApproved {
		topic = approval.TopicRequestApproved
	}
	event := &approval.Event{Topic: topic, Request: cloneRequest(r), Outcome: cloneOutcome(outcome)}
	if err := s.events.Publish(ctx, event); err != nil {
		s.logger.Error("failed to publish approval event", "request", r.ID, "error", err)
	}
}

func (s *service) Load(ctx context.Context, id string) (*approval.Request, error) {
	if id == "" {
		return nil, dao.ErrInvalidID
	}
	r, err := s.reqDAO.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, fmt.Errorf("%w: %s", approval.ErrRequestNotFound, id)
	}
	return cloneRequest(r), nil
}

func (s *service) Outcome(ctx context.Context, id string) (*approval.Outcome, error) {
	if id == "" {
		return nil, dao.ErrInvalidID
	}
	o, err := s.outDAO.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, fmt.Errorf("%w: %s", approval.ErrRequestNotFound, id)
	}
	return cloneOutcome(o), nil
}

func (s *service) ListOutcomes(ctx context.Context, parameters ...*dao.Parameter) ([]*approval.Outcome, error) {
	outcomes, err := s.outDAO.List(ctx, parameters...)
	if err != nil {
		return nil, err
	}
	for i, o := range outcomes {
		outcomes[i] = cloneOutcome(o)
	}
	return outcomes, nil
}

func cloneRequest(r *approval.Request) *approval.Request {
	ret := *r
	return &ret
}

func cloneOutcome(o *approval.Outcome) *approval.Outcome {
	ret := *o
	ret.Visited = append([]string(nil), o.Visited...)
	return &ret
}

func (s *service) Chain() *approval.Chain { return s.chain }

func (s *service) Queue() messaging.Queue[approval.Event] { return s.events }

var _ approval.Service = (*service)(nil)
