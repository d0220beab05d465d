// Package unit models a grid-positioned game unit, the target of reversible
// move commands.
package unit

import (
	"fmt"

	"github.com/viant/cmdchain/internal/idgen"
)

// Position is a cell on the grid.
type Position struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

// Add returns p shifted by d.
func (p Position) Add(d Position) Position {
	return Position{X: p.X + d.X, Y: p.Y + d.Y}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Unit is a selectable actor with a position.
type Unit struct {
	ID       string   `json:"id"`
	Name     string   `json:"name,omitempty"`
	position Position // mutated only through MoveTo
}

// New creates a unit at the given position.
func New(name string, at Position) *Unit {
	return &Unit{ID: idgen.Prefixed("unit"), Name: name, position: at}
}

// Position returns the current position.
func (u *Unit) Position() Position { return u.position }

// X returns the current column.
func (u *Unit) X() int { return u.position.X }

// Y returns the current row.
func (u *Unit) Y() int { return u.position.Y }

// MoveTo places the unit at p.
func (u *Unit) MoveTo(p Position) {
	u.position = p
}
