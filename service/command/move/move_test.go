package move

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/cmdchain/model/unit"
)

func TestCommand(t *testing.T) {
	ctx := context.Background()
	origin := unit.Position{X: 2, Y: 3}

	var testCases = []struct {
		description string
		build       func(u *unit.Unit) *Command
		tamper      func(u *unit.Unit)
		expectTo    unit.Position
		expectErr   error
		undoErr     error
	}{
		{
			description: "absolute move",
			build:       func(u *unit.Unit) *Command { return New(u, unit.Position{X: 5, Y: 5}) },
			expectTo:    unit.Position{X: 5, Y: 5},
		},
		{
			description: "relative move up",
			build:       func(u *unit.Unit) *Command { return By(u, 0, 1) },
			expectTo:    unit.Position{X: 2, Y: 4},
		},
		{
			description: "explicit origin",
			build: func(u *unit.Unit) *Command {
				return NewWithOrigin(u, unit.Position{X: 2, Y: 2}, unit.Position{X: 2, Y: 3})
			},
			expectTo: unit.Position{X: 2, Y: 2},
		},
		{
			description: "wrong explicit origin",
			build: func(u *unit.Unit) *Command {
				return NewWithOrigin(u, unit.Position{X: 2, Y: 2}, unit.Position{X: 9, Y: 9})
			},
			expectErr: ErrStaleState,
		},
		{
			description: "moved externally before undo",
			build:       func(u *unit.Unit) *Command { return By(u, 1, 0) },
			tamper:      func(u *unit.Unit) { u.MoveTo(unit.Position{X: 7, Y: 7}) },
			expectTo:    unit.Position{X: 3, Y: 3},
			undoErr:     ErrStaleState,
		},
		{
			description: "no unit",
			build:       func(*unit.Unit) *Command { return By(nil, 1, 0) },
			expectErr:   ErrNoUnit,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			u := unit.New("scout", origin)
			cmd := testCase.build(u)
			err := cmd.Execute(ctx)
			if testCase.expectErr != nil {
				assert.ErrorIs(t, err, testCase.expectErr)
				assert.Equal(t, origin, u.Position())
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, testCase.expectTo, u.Position())

			if testCase.tamper != nil {
				testCase.tamper(u)
			}
			err = cmd.Undo(ctx)
			if testCase.undoErr != nil {
				assert.ErrorIs(t, err, testCase.undoErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, origin, u.Position())

			assert.NoError(t, cmd.Execute(ctx))
			assert.Equal(t, testCase.expectTo, u.Position())
		})
	}
}

func TestCommand_Name(t *testing.T) {
	u := unit.New("scout", unit.Position{})
	assert.Equal(t, "move (0,0)->(0,-1)", By(u, 0, -1).Name())
	assert.Same(t, u, New(u, unit.Position{}).Unit())

	cmd := By(u, 2, 1)
	assert.Equal(t, unit.Position{}, cmd.From())
	assert.Equal(t, unit.Position{X: 2, Y: 1}, cmd.To())
	assert.NoError(t, cmd.Execute(context.Background()))
	assert.Equal(t, unit.Position{}, cmd.From())
	assert.Equal(t, unit.Position{X: 2, Y: 1}, cmd.To())
}
