package command

import "errors"

var (
	// ErrInvalidCommand is returned when a nil command is executed.
	ErrInvalidCommand = errors.New("command: invalid command")

	// ErrEmptyHistory is returned by Undo when there is nothing to undo.
	ErrEmptyHistory = errors.New("command: empty history")

	// ErrEmptyRedo is returned by Redo when there is nothing to redo.
	ErrEmptyRedo = errors.New("command: empty redo")
)
