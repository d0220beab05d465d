package input

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/viant/cmdchain/model/unit"
	"github.com/viant/cmdchain/service/command"
	"github.com/viant/cmdchain/service/command/move"
)

// Selector returns the currently selected unit, or nil.
type Selector func() *unit.Unit

// Factory builds a command for the selected unit.
type Factory func(u *unit.Unit) command.Command

// Option customises a Handler.
type Option func(h *Handler)

// WithStack replaces the handler's own stack.
func WithStack(stack *command.Stack) Option {
	return func(h *Handler) {
		if stack != nil {
			h.stack = stack
		}
	}
}

// WithBinding binds (or rebinds) an intent to a factory.
func WithBinding(intent Intent, factory Factory) Option {
	return func(h *Handler) { h.Bind(intent, factory) }
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(h *Handler) {
		if logger != nil {
			h.logger = logger
		}
	}
}

// Handler maps intents to commands. Undo and Redo always go to the stack;
// every other intent needs a binding.
type Handler struct {
	stack    *command.Stack
	selector Selector
	bindings map[Intent]Factory
	logger   *slog.Logger
}

// New creates a handler with the four grid moves bound.
func New(selector Selector, options ...Option) *Handler {
	ret := &Handler{
		stack:    command.New(),
		selector: selector,
		bindings: map[Intent]Factory{
			MoveUp:    relative(0, 1),
			MoveDown:  relative(0, -1),
			MoveLeft:  relative(-1, 0),
			MoveRight: relative(1, 0),
		},
		logger: slog.Default(),
	}
	for _, option := range options {
		option(ret)
	}
	return ret
}

func relative(dx, dy int) Factory {
	return func(u *unit.Unit) command.Command { return move.By(u, dx, dy) }
}

// Bind binds intent to factory; a nil factory removes the binding.
func (h *Handler) Bind(intent Intent, factory Factory) {
	if factory == nil {
		delete(h.bindings, intent)
		return
	}
	h.bindings[intent] = factory
}

// Stack returns the owned command stack.
func (h *Handler) Stack() *command.Stack { return h.stack }

// Handle applies a single intent.
func (h *Handler) Handle(ctx context.Context, intent Intent) error {
	switch intent {
	case Undo:
		_, err := h.stack.Undo(ctx)
		return err
	case Redo:
		_, err := h.stack.Redo(ctx)
		return err
	}
	factory, ok := h.bindings[intent]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownIntent, intent)
	}
	var selected *unit.Unit
	if h.selector != nil {
		selected = h.selector()
	}
	if selected == nil {
		return ErrNoSelection
	}
	h.logger.Debug("intent recognized", "intent", string(intent), "unit", selected.ID)
	return h.stack.Execute(ctx, factory(selected))
}

// HandleAll applies intents in order and stops at the first error.
func (h *Handler) HandleAll(ctx context.Context, intents ...Intent) error {
	for i, intent := range intents {
		if err := h.Handle(ctx, intent); err != nil {
			return fmt.Errorf("intent %d (%s): %w", i, intent, err)
		}
	}
	return nil
}
