// Package input turns already-recognized user intents into commands for the
// selected unit and drives them through a command stack it owns.
package input

import (
	"errors"
	"fmt"
	"strings"
)

// Intent names a recognized user action.
type Intent string

const (
	MoveUp    Intent = "up"
	MoveDown  Intent = "down"
	MoveLeft  Intent = "left"
	MoveRight Intent = "right"
	Undo      Intent = "undo"
	Redo      Intent = "redo"
)

var (
	// ErrUnknownIntent is returned for intents with no binding.
	ErrUnknownIntent = errors.New("input: unknown intent")

	// ErrNoSelection is returned when a move intent arrives with no unit selected.
	ErrNoSelection = errors.New("input: no unit selected")
)

// ParseIntent parses a case-insensitive intent name.
func ParseIntent(text string) (Intent, error) {
	intent := Intent(strings.ToLower(strings.TrimSpace(text)))
	switch intent {
	case MoveUp, MoveDown, MoveLeft, MoveRight, Undo, Redo:
		return intent, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownIntent, text)
}
