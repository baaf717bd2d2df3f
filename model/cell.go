package model

import "fmt"

// CellState is the life state of a cell. Unset is only valid as a pending next state.
type CellState uint8

const (
	Unset CellState = iota
	Dead
	Alive
)

func (s CellState) String() string {
	switch s {
	case Dead:
		return "dead"
	case Alive:
		return "alive"
	default:
		return "unset"
	}
}

// Position is an immutable grid coordinate
type Position struct {
	X, Y, Z int
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d,%d)", p.X, p.Y, p.Z)
}

// Cell is one automaton unit. It carries no render state; renderers key their own data by Position.
type Cell struct {
	pos     Position
	current CellState
	next    CellState
}

// Position returns the cell's fixed coordinate
func (c *Cell) Position() Position {
	return c.pos
}

// State returns the state at the start of the current generation
func (c *Cell) State() CellState {
	return c.current
}

// NextState returns the pending state, Unset outside of a step
func (c *Cell) NextState() CellState {
	return c.next
}

// Visible reports whether a renderer should draw the cell
func (c *Cell) Visible() bool {
	return c.current == Alive
}
