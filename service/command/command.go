package command

import (
	"context"
	"fmt"
	"reflect"
)

// Command is a reversible unit of work bound to its target.
// Undo after Execute restores the pre-execute state of the target, Execute
// after Undo restores the post-execute state.
type Command interface {
	Execute(ctx context.Context) error
	Undo(ctx context.Context) error
}

// Named is implemented by commands that report a display name.
type Named interface {
	Name() string
}

// NameOf returns the command name, falling back to its Go type.
func NameOf(cmd Command) string {
	if named, ok := cmd.(Named); ok {
		if name := named.Name(); name != "" {
			return name
		}
	}
	return fmt.Sprintf("%T", cmd)
}

type funcCommand struct {
	name string
	do   func(ctx context.Context) error
	undo func(ctx context.Context) error
}

func (f *funcCommand) Name() string { return f.name }

func (f *funcCommand) Execute(ctx context.Context) error {
	if f.do == nil {
		return nil
	}
	return f.do(ctx)
}

func (f *funcCommand) Undo(ctx context.Context) error {
	if f.undo == nil {
		return nil
	}
	return f.undo(ctx)
}

// Func adapts a pair of functions into a Command. A nil function is a no-op.
func Func(name string, do, undo func(ctx context.Context) error) Command {
	return &funcCommand{name: name, do: do, undo: undo}
}

// isNil reports nil commands, including typed nil pointers.
func isNil(cmd Command) bool {
	if cmd == nil {
		return true
	}
	v := reflect.ValueOf(cmd)
	switch v.Kind() {
	case reflect.Ptr, reflect.Func, reflect.Map, reflect.Slice, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}
