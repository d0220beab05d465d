package command

import (
	"context"
	"errors"
	"fmt"
)

// Macro executes its children in order and undoes them in reverse order.
// It is all-or-nothing: a failing child rolls back the children already
// applied before the error is returned.
type Macro struct {
	name     string
	commands []Command
}

// NewMacro creates a composite command.
func NewMacro(name string, commands ...Command) (*Macro, error) {
	for i, cmd := range commands {
		if isNil(cmd) {
			return nil, fmt.Errorf("macro %s step %d: %w", name, i, ErrInvalidCommand)
		}
	}
	return &Macro{name: name, commands: append([]Command(nil), commands...)}, nil
}

// Name returns the macro name.
func (m *Macro) Name() string { return m.name }

// Len returns the number of children.
func (m *Macro) Len() int { return len(m.commands) }

// Execute runs every child in order.
func (m *Macro) Execute(ctx context.Context) error {
	for i, cmd := range m.commands {
		if err := cmd.Execute(ctx); err != nil {
			err = fmt.Errorf("macro %s step %d (%s): %w", m.name, i, NameOf(cmd), err)
			for j := i - 1; j >= 0; j-- {
				if rErr := m.commands[j].Undo(ctx); rErr != nil {
					err = errors.Join(err, fmt.Errorf("rollback step %d: %w", j, rErr))
				}
			}
			return err
		}
	}
	return nil
}

// Undo reverts every child in reverse order.
func (m *Macro) Undo(ctx context.Context) error {
	for i := len(m.commands) - 1; i >= 0; i-- {
		if err := m.commands[i].Undo(ctx); err != nil {
			err = fmt.Errorf("macro %s undo step %d (%s): %w", m.name, i, NameOf(m.commands[i]), err)
			for j := i + 1; j < len(m.commands); j++ {
				if rErr := m.commands[j].Execute(ctx); rErr != nil {
					err = errors.Join(err, fmt.Errorf("reapply step %d: %w", j, rErr))
				}
			}
			return err
		}
	}
	return nil
}
