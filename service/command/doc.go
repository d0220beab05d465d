// Package command implements reversible commands and the history stack that
// drives them.
//
// A Command captures its target and everything needed to invert itself when
// it is constructed. The Stack executes commands, keeps them on an undo
// history and moves them to a redo sequence on Undo:
//
//	stack := command.New(command.WithLimit(64))
//	_ = stack.Execute(ctx, move.New(scout, unit.Position{X: 1, Y: 0}))
//	_, _ = stack.Undo(ctx)
//	_, _ = stack.Redo(ctx)
//
// A Stack is owned by a single caller and is not safe for concurrent use.
package command
