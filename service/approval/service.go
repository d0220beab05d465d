package approval

import (
	"context"

	"github.com/viant/cmdchain/service/dao"
	"github.com/viant/cmdchain/service/messaging"
)

// List parameters understood by ledgers.
const (
	ParamState   = "State"   // outcome state name, e.g. "approved"
	ParamHandler = "Handler" // accepting handler name
)

// Service is an approval ledger: it dispatches requests through a chain and
// keeps requests and outcomes.
type Service interface {
	// Submit dispatches r and records the outcome. An exhausted request is
	// not an error.
	Submit(ctx context.Context, r *Request) (*Outcome, error)
	// Resubmit resets a stored request and dispatches it again.
	Resubmit(ctx context.Context, id string) (*Outcome, error)
	Load(ctx context.Context, id string) (*Request, error)
	Outcome(ctx context.Context, id string) (*Outcome, error)
	// ListOutcomes returns outcomes matching every parameter, see
	// ParamState and ParamHandler.
	ListOutcomes(ctx context.Context, parameters ...*dao.Parameter) ([]*Outcome, error)
	Chain() *Chain
	// Queue returns the event queue, nil when events are disabled.
	Queue() messaging.Queue[Event]
}
