package memory

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/viant/cmdchain/internal/idgen"
	"github.com/viant/cmdchain/service/messaging"
)

var (
	// ErrAlreadyProcessed is returned by a second Ack/Nack on the same message.
	ErrAlreadyProcessed = errors.New("message already processed")

	// ErrClosed is returned by Publish and Consume after Close.
	ErrClosed = errors.New("queue is closed")
)

// Config for memory queue implementation
type Config struct {
	MaxRetries  int
	RetryDelay  time.Duration
	DeadLetter  bool
	QueueBuffer int
}

// DefaultConfig returns a standard configuration for memory queue
func DefaultConfig() Config {
	return Config{
		MaxRetries:  3,
		RetryDelay:  100 * time.Millisecond,
		DeadLetter:  true,
		QueueBuffer: 100,
	}
}

// Message implements messaging.Message for the in-memory queue
type Message[T any] struct {
	id         string
	payload    T
	queue      *Queue[T]
	retryCount int
	mu         sync.Mutex
	processed  bool
	createdAt  time.Time
}

// ID returns the message identifier, stable across retries.
func (m *Message[T]) ID() string { return m.id }

// T returns the message payload
func (m *Message[T]) T() *T {
	return &m.payload
}

// Ack acknowledges the message as processed successfully
func (m *Message[T]) Ack() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.processed {
		return ErrAlreadyProcessed
	}
	m.processed = true
	return nil
}

// Nack marks the message as failed; it is re-queued after RetryDelay until
// MaxRetries is exceeded, then moved to the dead letter list when enabled.
// A pending retry is dropped when the queue is closed.
func (m *Message[T]) Nack(err error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.processed {
		return ErrAlreadyProcessed
	}
	m.processed = true
	m.retryCount++

	q := m.queue
	if q.closed() {
		return ErrClosed
	}
	if m.retryCount <= q.config.MaxRetries {
		retry := &Message[T]{
			id:         m.id,
			payload:    m.payload,
			queue:      q,
			retryCount: m.retryCount,
			createdAt:  time.Now(),
		}
		q.retries.Add(1)
		go q.requeue(retry)
		return nil
	}
	if q.config.DeadLetter {
		q.dlqMu.Lock()
		q.dlq = append(q.dlq, m)
		q.dlqMu.Unlock()
	}
	return nil
}

// Queue implements an in-memory messaging.Queue
type Queue[T any] struct {
	messages  chan *Message[T]
	dlq       []*Message[T]
	config    Config
	dlqMu     sync.Mutex
	done      chan struct{}
	closeOnce sync.Once
	retries   sync.WaitGroup
}

// NewQueue creates a new in-memory queue
func NewQueue[T any](config Config) *Queue[T] {
	if config.QueueBuffer <= 0 {
		config.QueueBuffer = DefaultConfig().QueueBuffer
	}
	return &Queue[T]{
		messages: make(chan *Message[T], config.QueueBuffer),
		config:   config,
		done:     make(chan struct{}),
	}
}

func (q *Queue[T]) requeue(retry *Message[T]) {
	defer q.retries.Done()
	timer := time.NewTimer(q.config.RetryDelay)
	defer timer.Stop()
	select {
	case <-timer.C:
	case <-q.done:
		return
	}
	select {
	case q.messages <- retry:
	case <-q.done:
	}
}

func (q *Queue[T]) closed() bool {
	select {
	case <-q.done:
		return true
	default:
		return false
	}
}

// Close stops the queue and waits for pending retries to finish.
func (q *Queue[T]) Close() error {
	q.closeOnce.Do(func() { close(q.done) })
	q.retries.Wait()
	return nil
}

// Publish adds a copy of t to the queue, blocking while the buffer is full.
func (q *Queue[T]) Publish(ctx context.Context, t *T) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if q.closed() {
		return ErrClosed
	}
	msg := &Message[T]{
		id:        idgen.New(),
		payload:   *t,
		queue:     q,
		createdAt: time.Now(),
	}
	select {
	case q.messages <- msg:
		return nil
	case <-q.done:
		return ErrClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Consume retrieves a single item from the queue
func (q *Queue[T]) Consume(ctx context.Context) (messaging.Message[T], error) {
	select {
	case msg := <-q.messages:
		return msg, nil
	case <-q.done:
		return nil, ErrClosed
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Size returns the current number of messages in the queue
func (q *Queue[T]) Size() int {
	return len(q.messages)
}

// DLQSize returns the number of messages in the dead letter queue
func (q *Queue[T]) DLQSize() int {
	q.dlqMu.Lock()
	defer q.dlqMu.Unlock()
	return len(q.dlq)
}

var _ messaging.Queue[any] = (*Queue[any])(nil)
