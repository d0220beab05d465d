package memory

import (
	"log/slog"

	approval "github.com/viant/cmdchain/service/approval"
	"github.com/viant/cmdchain/service/dao"
	"github.com/viant/cmdchain/service/messaging"
)

type Option func(*service)

// WithQueue attaches an event queue; an Event is published after every
// dispatch. The queue must be consumed.
func WithQueue(q messaging.Queue[approval.Event]) Option {
	return func(s *service) { s.events = q }
}

// WithRequestDAO replaces the in-memory request store.
func WithRequestDAO(d dao.Service[string, approval.Request]) Option {
	return func(s *service) { s.reqDAO = d }
}

// WithOutcomeDAO replaces the in-memory outcome store.
func WithOutcomeDAO(d dao.Service[string, approval.Outcome]) Option {
	return func(s *service) { s.outDAO = d }
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *service) {
		if logger != nil {
			s.logger = logger
		}
	}
}
