// Package fs provides a durable messaging.Queue keeping one JSON document
// per message under an afs URL (file://, mem://, s3:// ...). A message moves
// between state folders as it is consumed, acknowledged or rejected.
package fs

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/afs/url"
	"github.com/viant/cmdchain/internal/clock"
	"github.com/viant/cmdchain/internal/idgen"
	"github.com/viant/cmdchain/service/messaging"
)

var (
	// ErrEmpty is returned by Consume when no message is ready.
	ErrEmpty = messaging.ErrEmpty

	// ErrAlreadyProcessed is returned by a second Ack/Nack on the same message.
	ErrAlreadyProcessed = errors.New("message already processed")
)

// State is the folder a message currently lives in.
type State string

const (
	StatePending    State = "pending"
	StateProcessing State = "processing"
	StateCompleted  State = "completed"
	StateFailed     State = "failed"
	StateDead       State = "dead"
)

var states = []State{StatePending, StateProcessing, StateCompleted, StateFailed, StateDead}

// Config for the file system queue.
type Config struct {
	URL           string `json:"url" yaml:"url"`
	MaxRetries    int    `json:"maxRetries" yaml:"maxRetries"`
	KeepCompleted bool   `json:"keepCompleted" yaml:"keepCompleted"`
}

// DefaultConfig returns a configuration rooted at URL.
func DefaultConfig(URL string) Config {
	return Config{URL: URL, MaxRetries: 3, KeepCompleted: true}
}

// Envelope is the persisted form of a message.
type Envelope[T any] struct {
	ID        string    `json:"id"`
	Payload   T         `json:"payload"`
	State     State     `json:"state"`
	Error     string    `json:"error,omitempty"`
	Attempts  int       `json:"attempts"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Message implements messaging.Message.
type Message[T any] struct {
	envelope  *Envelope[T]
	name      string
	queue     *Queue[T]
	mu        sync.Mutex
	processed bool
}

// ID returns the message identifier.
func (m *Message[T]) ID() string { return m.envelope.ID }

// Attempts returns how many times the message was rejected.
func (m *Message[T]) Attempts() int { return m.envelope.Attempts }

// T returns the message payload
func (m *Message[T]) T() *T { return &m.envelope.Payload }

// Ack moves the message to completed, or drops it when completed messages
// are not kept.
func (m *Message[T]) Ack() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.processed {
		return ErrAlreadyProcessed
	}
	m.processed = true
	m.envelope.Error = ""
	if !m.queue.config.KeepCompleted {
		return m.queue.remove(context.Background(), StateProcessing, m.name)
	}
	return m.queue.transition(context.Background(), m.envelope, m.name, StateProcessing, StateCompleted)
}

// Nack moves the message to failed for a later retry, or to dead once
// MaxRetries is exceeded.
func (m *Message[T]) Nack(err error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.processed {
		return ErrAlreadyProcessed
	}
	m.processed = true
	m.envelope.Attempts++
	if err != nil {
		m.envelope.Error = err.Error()
	}
	target := StateFailed
	if m.envelope.Attempts > m.queue.config.MaxRetries {
		target = StateDead
	}
	return m.queue.transition(context.Background(), m.envelope, m.name, StateProcessing, target)
}

// Queue is a durable queue over afs.
type Queue[T any] struct {
	fs     afs.Service
	config Config
	seq    atomic.Uint64
	mu     sync.Mutex
}

// NewQueue creates a queue, creating its state folders when missing.
func NewQueue[T any](ctx context.Context, fs afs.Service, config Config) (*Queue[T], error) {
	if config.URL == "" {
		return nil, fmt.Errorf("queue URL cannot be empty")
	}
	if fs == nil {
		fs = afs.New()
	}
	q := &Queue[T]{fs: fs, config: config}
	for _, state := range states {
		folder := q.folder(state)
		if ok, _ := fs.Exists(ctx, folder); ok {
			continue
		}
		if err := fs.Create(ctx, folder, file.DefaultDirOsMode, true); err != nil {
			return nil, fmt.Errorf("failed to create queue folder %s: %w", folder, err)
		}
	}
	return q, nil
}

// Publish persists t as a pending message.
func (q *Queue[T]) Publish(ctx context.Context, t *T) error {
	if t == nil {
		return fmt.Errorf("message payload was nil")
	}
	now := clock.Now()
	envelope := &Envelope[T]{ID: idgen.New(), Payload: *t, State: StatePending, CreatedAt: now, UpdatedAt: now}
	// the name sorts by publication order
	name := fmt.Sprintf("%020d-%08d-%s.json", now.UnixNano(), q.seq.Add(1), envelope.ID)
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.write(ctx, StatePending, name, envelope)
}

// Consume claims the oldest failed message due for retry, then the oldest
// pending one. It returns ErrEmpty when neither exists.
func (q *Queue[T]) Consume(ctx context.Context) (messaging.Message[T], error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	for _, state := range []State{StateFailed, StatePending} {
		names, err := q.names(ctx, state)
		if err != nil {
			return nil, err
		}
		if len(names) == 0 {
			continue
		}
		name := names[0]
		envelope, err := q.read(ctx, state, name)
		if err != nil {
			if moveErr := q.fs.Move(ctx, url.Join(q.folder(state), name), url.Join(q.folder(StateDead), name)); moveErr != nil {
				return nil, errors.Join(err, moveErr)
			}
			return nil, err
		}
		if err = q.move(ctx, envelope, name, state, StateProcessing); err != nil {
			return nil, err
		}
		return &Message[T]{envelope: envelope, name: name, queue: q}, nil
	}
	return nil, ErrEmpty
}

// Count returns the number of messages in state.
func (q *Queue[T]) Count(ctx context.Context, state State) (int, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	names, err := q.names(ctx, state)
	return len(names), err
}

// Envelopes returns messages in state, oldest first.
func (q *Queue[T]) Envelopes(ctx context.Context, state State) ([]*Envelope[T], error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	names, err := q.names(ctx, state)
	if err != nil {
		return nil, err
	}
	ret := make([]*Envelope[T], 0, len(names))
	for _, name := range names {
		envelope, err := q.read(ctx, state, name)
		if err != nil {
			return nil, err
		}
		ret = append(ret, envelope)
	}
	return ret, nil
}

func (q *Queue[T]) folder(state State) string {
	return url.Join(q.config.URL, string(state))
}

func (q *Queue[T]) transition(ctx context.Context, envelope *Envelope[T], name string, from, to State) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.move(ctx, envelope, name, from, to)
}

func (q *Queue[T]) move(ctx context.Context, envelope *Envelope[T], name string, from, to State) error {
	envelope.State = to
	envelope.UpdatedAt = clock.Now()
	if err := q.write(ctx, to, name, envelope); err != nil {
		return err
	}
	return q.delete(ctx, from, name)
}

func (q *Queue[T]) remove(ctx context.Context, state State, name string) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.delete(ctx, state, name)
}

func (q *Queue[T]) delete(ctx context.Context, state State, name string) error {
	URL := url.Join(q.folder(state), name)
	if ok, _ := q.fs.Exists(ctx, URL); !ok {
		return nil
	}
	if err := q.fs.Delete(ctx, URL); err != nil {
		return fmt.Errorf("failed to delete %s: %w", URL, err)
	}
	return nil
}

func (q *Queue[T]) write(ctx context.Context, state State, name string, envelope *Envelope[T]) error {
	data, err := json.Marshal(envelope)
	if err != nil {
		return fmt.Errorf("failed to marshal message %s: %w", envelope.ID, err)
	}
	URL := url.Join(q.folder(state), name)
	if err = q.fs.Upload(ctx, URL, file.DefaultFileOsMode, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to write %s: %w", URL, err)
	}
	return nil
}

func (q *Queue[T]) read(ctx context.Context, state State, name string) (*Envelope[T], error) {
	URL := url.Join(q.folder(state), name)
	data, err := q.fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", URL, err)
	}
	envelope := &Envelope[T]{}
	if err = json.Unmarshal(data, envelope); err != nil {
		return nil, fmt.Errorf("failed to unmarshal %s: %w", URL, err)
	}
	return envelope, nil
}

func (q *Queue[T]) names(ctx context.Context, state State) ([]string, error) {
	objects, err := q.fs.List(ctx, q.folder(state))
	if err != nil {
		return nil, fmt.Errorf("failed to list %s messages: %w", state, err)
	}
	var ret []string
	for _, object := range objects {
		if object.IsDir() || !strings.HasSuffix(object.Name(), ".json") {
			continue
		}
		ret = append(ret, object.Name())
	}
	sort.Strings(ret)
	return ret, nil
}

var _ messaging.Queue[any] = (*Queue[any])(nil)
