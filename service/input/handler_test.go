package input

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/cmdchain/model/unit"
	"github.com/viant/cmdchain/service/command"
	"github.com/viant/cmdchain/service/command/move"
)

func TestParseIntent(t *testing.T) {
	intent, err := ParseIntent(" Up ")
	assert.NoError(t, err)
	assert.Equal(t, MoveUp, intent)

	_, err = ParseIntent("jump")
	assert.ErrorIs(t, err, ErrUnknownIntent)
}

func TestHandler_Handle(t *testing.T) {
	ctx := context.Background()

	var testCases = []struct {
		description string
		intents     []Intent
		expect      unit.Position
		expectErr   error
	}{
		{description: "up then right", intents: []Intent{MoveUp, MoveRight}, expect: unit.Position{X: 1, Y: 1}},
		{description: "down left undo", intents: []Intent{MoveDown, MoveLeft, Undo}, expect: unit.Position{X: 0, Y: -1}},
		{description: "undo redo", intents: []Intent{MoveUp, MoveUp, Undo, Undo, Redo}, expect: unit.Position{X: 0, Y: 1}},
		{description: "undo on empty history", intents: []Intent{Undo}, expectErr: command.ErrEmptyHistory},
		{description: "redo on empty sequence", intents: []Intent{MoveUp, Redo}, expect: unit.Position{X: 0, Y: 1}, expectErr: command.ErrEmptyRedo},
		{description: "unknown intent", intents: []Intent{"jump"}, expectErr: ErrUnknownIntent},
	}

	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			scout := unit.New("scout", unit.Position{})
			handler := New(func() *unit.Unit { return scout })
			err := handler.HandleAll(ctx, testCase.intents...)
			if testCase.expectErr != nil {
				assert.ErrorIs(t, err, testCase.expectErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, testCase.expect, scout.Position())
		})
	}
}

func TestHandler_Selection(t *testing.T) {
	ctx := context.Background()
	scout := unit.New("scout", unit.Position{})
	archer := unit.New("archer", unit.Position{X: 5, Y: 5})
	var selected *unit.Unit
	stack := command.New()
	handler := New(func() *unit.Unit { return selected }, WithStack(stack))

	assert.ErrorIs(t, handler.Handle(ctx, MoveUp), ErrNoSelection)

	selected = scout
	assert.NoError(t, handler.Handle(ctx, MoveUp))
	selected = archer
	assert.NoError(t, handler.Handle(ctx, MoveLeft))
	assert.Same(t, stack, handler.Stack())

	// undo follows history order, not the current selection
	assert.NoError(t, handler.HandleAll(ctx, Undo, Undo))
	assert.Equal(t, unit.Position{}, scout.Position())
	assert.Equal(t, unit.Position{X: 5, Y: 5}, archer.Position())
}

func TestHandler_Bind(t *testing.T) {
	ctx := context.Background()
	scout := unit.New("scout", unit.Position{})
	dash := Intent("dash")
	handler := New(func() *unit.Unit { return scout },
		WithBinding(dash, func(u *unit.Unit) command.Command { return move.By(u, 3, 0) }))

	assert.NoError(t, handler.Handle(ctx, dash))
	assert.Equal(t, unit.Position{X: 3}, scout.Position())

	handler.Bind(MoveUp, nil)
	assert.ErrorIs(t, handler.Handle(ctx, MoveUp), ErrUnknownIntent)
}
