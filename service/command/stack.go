package command

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/viant/cmdchain/internal/clock"
	"github.com/viant/cmdchain/internal/idgen"
	"github.com/viant/cmdchain/service/messaging"
	"github.com/viant/cmdchain/tracing"
)

// Stack executes commands and keeps undo and redo histories.
type Stack struct {
	undo   *History
	redo   *History
	limit  int
	queue  messaging.Queue[Event]
	logger *slog.Logger
}

// New creates an empty stack.
func New(options ...Option) *Stack {
	ret := &Stack{
		undo:   NewHistory(),
		redo:   NewHistory(),
		logger: slog.Default(),
	}
	for _, option := range options {
		option(ret)
	}
	return ret
}

// Execute runs cmd and pushes it onto the undo history. A successful
// Execute discards the redo sequence. A failing command is not recorded.
func (s *Stack) Execute(ctx context.Context, cmd Command) (err error) {
	if isNil(cmd) {
		return ErrInvalidCommand
	}
	name := NameOf(cmd)
	ctx, span := tracing.StartSpan(ctx, "command.execute")
	span.WithAttributes(map[string]string{"command": name})
	defer func() { tracing.EndSpan(span, err) }()

	if err = cmd.Execute(ctx); err != nil {
		s.logger.Warn("command execute failed", "command", name, "error", err)
		return fmt.Errorf("failed to execute %s: %w", name, err)
	}
	s.undo.Push(cmd)
	s.redo.Clear()
	if s.limit > 0 {
		for s.undo.Len() > s.limit {
			dropped := s.undo.DropOldest()
			s.logger.Debug("command history trimmed", "command", NameOf(dropped), "limit", s.limit)
		}
	}
	s.logger.Debug("command executed", "command", name, "depth", s.undo.Len())
	s.publish(ctx, TopicExecuted, name)
	return nil
}

// Undo reverts the most recent command and moves it to the redo sequence.
// When the command fails to undo it stays on the undo history.
func (s *Stack) Undo(ctx context.Context) (cmd Command, err error) {
	cmd = s.undo.Peek()
	if cmd == nil {
		return nil, ErrEmptyHistory
	}
	name := NameOf(cmd)
	ctx, span := tracing.StartSpan(ctx, "command.undo")
	span.WithAttributes(map[string]string{"command": name})
	defer func() { tracing.EndSpan(span, err) }()

	if err = cmd.Undo(ctx); err != nil {
		s.logger.Warn("command undo failed", "command", name, "error", err)
		return nil, fmt.Errorf("failed to undo %s: %w", name, err)
	}
	s.undo.Pop()
	s.redo.Push(cmd)
	s.logger.Debug("command undone", "command", name, "depth", s.undo.Len())
	s.publish(ctx, TopicUndone, name)
	return cmd, nil
}

// Redo re-executes the most recently undone command and moves it back to
// the undo history. When it fails it stays on the redo sequence.
func (s *Stack) Redo(ctx context.Context) (cmd Command, err error) {
	cmd = s.redo.Peek()
	if cmd == nil {
		return nil, ErrEmptyRedo
	}
	name := NameOf(cmd)
	ctx, span := tracing.StartSpan(ctx, "command.redo")
	span.WithAttributes(map[string]string{"command": name})
	defer func() { tracing.EndSpan(span, err) }()

	if err = cmd.Execute(ctx); err != nil {
		s.logger.Warn("command redo failed", "command", name, "error", err)
		return nil, fmt.Errorf("failed to redo %s: %w", name, err)
	}
	s.redo.Pop()
	s.undo.Push(cmd)
	s.logger.Debug("command redone", "command", name, "depth", s.undo.Len())
	s.publish(ctx, TopicRedone, name)
	return cmd, nil
}

// CanUndo reports whether Undo has a command to revert.
func (s *Stack) CanUndo() bool { return s.undo.Len() > 0 }

// CanRedo reports whether Redo has a command to re-apply.
func (s *Stack) CanRedo() bool { return s.redo.Len() > 0 }

// Len returns the undo history length.
func (s *Stack) Len() int { return s.undo.Len() }

// RedoLen returns the redo sequence length.
func (s *Stack) RedoLen() int { return s.redo.Len() }

// History returns the undo history, most recent first.
func (s *Stack) History() []Command { return s.undo.Items() }

// Clear forgets both histories without touching any target.
func (s *Stack) Clear() {
	s.undo.Clear()
	s.redo.Clear()
}

func (s *Stack) publish(ctx context.Context, topic, name string) {
	if s.queue == nil {
		return
	}
	event := &Event{
		ID:        idgen.New(),
		Topic:     topic,
		Command:   name,
		UndoDepth: s.undo.Len(),
		RedoDepth: s.redo.Len(),
		CreatedAt: clock.Now(),
	}
	if err := s.queue.Publish(ctx, event); err != nil {
		s.logger.Error("failed to publish command event", "topic", topic, "error", err)
	}
}
