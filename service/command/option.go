package command

import (
	"log/slog"

	"github.com/viant/cmdchain/service/messaging"
)

// Option customises a Stack.
type Option func(s *Stack)

// WithLimit caps the undo history; the oldest commands are dropped first.
// Zero or negative means unbounded.
func WithLimit(limit int) Option {
	return func(s *Stack) { s.limit = limit }
}

// WithQueue publishes an Event for every successful transition. The queue
// must be consumed; a full memory queue blocks the publishing call.
func WithQueue(queue messaging.Queue[Event]) Option {
	return func(s *Stack) { s.queue = queue }
}

// WithLogger sets the logger, slog.Default() otherwise.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Stack) {
		if logger != nil {
			s.logger = logger
		}
	}
}
