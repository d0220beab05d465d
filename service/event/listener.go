// Package event consumes command and approval events from a queue and hands
// them to a listener.
package event

import (
	"context"
	"errors"
	"log/slog"

	"github.com/viant/cmdchain/service/messaging"
)

// Listener handles one event; an error rejects the message.
type Listener[T any] func(ctx context.Context, event *T) error

// Stats summarises a drain.
type Stats struct {
	Handled  int
	Rejected int
}

// Drain consumes messages until the queue reports messaging.ErrEmpty, the
// listener being called synchronously for each. Messages are acknowledged
// on success and rejected otherwise. A blocking queue is drained until ctx
// is done, in which case ctx.Err() is returned with the stats so far.
func Drain[T any](ctx context.Context, queue messaging.Queue[T], listener Listener[T]) (Stats, error) {
	var stats Stats
	for {
		message, err := queue.Consume(ctx)
		if err != nil {
			if errors.Is(err, messaging.ErrEmpty) {
				return stats, nil
			}
			return stats, err
		}
		if message == nil {
			return stats, nil
		}
		if err = listener(ctx, message.T()); err != nil {
			stats.Rejected++
			slog.Default().Warn("event rejected", "error", err)
			if nackErr := message.Nack(err); nackErr != nil {
				return stats, nackErr
			}
			continue
		}
		stats.Handled++
		if err = message.Ack(); err != nil {
			return stats, err
		}
	}
}
