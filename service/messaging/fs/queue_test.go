package fs

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/afs"
)

type record struct {
	Topic string `json:"topic"`
	Count int    `json:"count"`
}

func newTestQueue(t *testing.T, URL string, maxRetries int) *Queue[record] {
	config := DefaultConfig(URL)
	config.MaxRetries = maxRetries
	queue, err := NewQueue[record](context.Background(), afs.New(), config)
	if !assert.NoError(t, err) {
		t.FailNow()
	}
	return queue
}

func TestQueue(t *testing.T) {
	ctx := context.Background()
	queue := newTestQueue(t, "mem://localhost/cmdchain/queue/basic", 1)
	fs := afs.New()
	for _, state := range states {
		exists, err := fs.Exists(ctx, queue.folder(state))
		assert.NoError(t, err)
		assert.True(t, exists, string(state))
	}

	_, err := queue.Consume(ctx)
	assert.ErrorIs(t, err, ErrEmpty)

	for i := 1; i <= 3; i++ {
		assert.NoError(t, queue.Publish(ctx, &record{Topic: "command.executed", Count: i}))
	}
	count, err := queue.Count(ctx, StatePending)
	assert.NoError(t, err)
	assert.Equal(t, 3, count)

	for i := 1; i <= 3; i++ {
		message, err := queue.Consume(ctx)
		if !assert.NoError(t, err) {
			return
		}
		assert.Equal(t, i, message.T().Count, "publication order")
		assert.NoError(t, message.Ack())
		assert.ErrorIs(t, message.Ack(), ErrAlreadyProcessed)
	}

	completed, err := queue.Envelopes(ctx, StateCompleted)
	assert.NoError(t, err)
	assert.Len(t, completed, 3)
	assert.Equal(t, StateCompleted, completed[0].State)
	count, _ = queue.Count(ctx, StateProcessing)
	assert.Equal(t, 0, count)
}

func TestQueue_Retries(t *testing.T) {
	ctx := context.Background()
	queue := newTestQueue(t, "mem://localhost/cmdchain/queue/retries", 1)
	assert.NoError(t, queue.Publish(ctx, &record{Topic: "request.exhausted"}))

	message, err := queue.Consume(ctx)
	assert.NoError(t, err)
	assert.NoError(t, message.Nack(errors.New("boom")))

	failed, err := queue.Envelopes(ctx, StateFailed)
	assert.NoError(t, err)
	if assert.Len(t, failed, 1) {
		assert.Equal(t, "boom", failed[0].Error)
		assert.Equal(t, 1, failed[0].Attempts)
	}

	// failed messages are retried first
	assert.NoError(t, queue.Publish(ctx, &record{Topic: "request.approved"}))
	message, err = queue.Consume(ctx)
	assert.NoError(t, err)
	assert.Equal(t, "request.exhausted", message.T().Topic)
	assert.NoError(t, message.Nack(errors.New("boom again")))

	count, _ := queue.Count(ctx, StateDead)
	assert.Equal(t, 1, count)
	count, _ = queue.Count(ctx, StateFailed)
	assert.Equal(t, 0, count)

	message, err = queue.Consume(ctx)
	assert.NoError(t, err)
	assert.Equal(t, "request.approved", message.T().Topic)
}

func TestQueue_DropCompleted(t *testing.T) {
	ctx := context.Background()
	config := DefaultConfig("mem://localhost/cmdchain/queue/drop")
	config.KeepCompleted = false
	queue, err := NewQueue[record](ctx, nil, config)
	if !assert.NoError(t, err) {
		return
	}
	assert.NoError(t, queue.Publish(ctx, &record{Topic: "command.undone"}))
	message, err := queue.Consume(ctx)
	assert.NoError(t, err)
	assert.NoError(t, message.Ack())
	count, _ := queue.Count(ctx, StateCompleted)
	assert.Equal(t, 0, count)
	count, _ = queue.Count(ctx, StateProcessing)
	assert.Equal(t, 0, count)

	_, err = NewQueue[record](ctx, nil, Config{})
	assert.Error(t, err)
	assert.Error(t, queue.Publish(ctx, nil))
}
