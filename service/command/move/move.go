// Package move provides the reversible "move unit" command.
package move

import (
	"context"
	"errors"
	"fmt"

	"github.com/viant/cmdchain/model/unit"
	"github.com/viant/cmdchain/service/command"
)

var (
	// ErrNoUnit is returned when the command has no target.
	ErrNoUnit = errors.New("move: no unit")

	// ErrStaleState is returned when the unit is not where the command
	// expects it, e.g. it was moved by other means since Execute.
	ErrStaleState = errors.New("move: stale unit state")
)

// Command moves a unit between two captured positions. Both are fixed at
// construction. Execute requires the unit at From, Undo requires it at To.
type Command struct {
	unit *unit.Unit
	from unit.Position
	to   unit.Position
}

// New captures the unit's current position as the origin.
func New(u *unit.Unit, to unit.Position) *Command {
	ret := &Command{unit: u, to: to}
	if u != nil {
		ret.from = u.Position()
	}
	return ret
}

// NewWithOrigin takes both positions explicitly.
func NewWithOrigin(u *unit.Unit, to, from unit.Position) *Command {
	return &Command{unit: u, to: to, from: from}
}

// By moves the unit relative to its current position.
func By(u *unit.Unit, dx, dy int) *Command {
	if u == nil {
		return &Command{}
	}
	return New(u, u.Position().Add(unit.Position{X: dx, Y: dy}))
}

// Name returns a display name.
func (c *Command) Name() string {
	return fmt.Sprintf("move %v->%v", c.from, c.to)
}

// Unit returns the target.
func (c *Command) Unit() *unit.Unit { return c.unit }

// From returns the origin.
func (c *Command) From() unit.Position { return c.from }

// To returns the destination.
func (c *Command) To() unit.Position { return c.to }

// Execute moves the unit to To.
func (c *Command) Execute(context.Context) error {
	return c.apply(c.from, c.to)
}

// Undo moves the unit back to From.
func (c *Command) Undo(context.Context) error {
	return c.apply(c.to, c.from)
}

func (c *Command) apply(expect, target unit.Position) error {
	if c.unit == nil {
		return ErrNoUnit
	}
	if actual := c.unit.Position(); actual != expect {
		return fmt.Errorf("%w: unit %s at %v, expected %v", ErrStaleState, c.unit.ID, actual, expect)
	}
	c.unit.MoveTo(target)
	return nil
}

var _ command.Command = (*Command)(nil)
