package snake

import (
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/config"
)

// Cell is a cell-aligned position on the play-field, in field units.
type Cell struct {
	X, Y int
}

// Direction represents a movement heading.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Opposite returns the reverse heading.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Field is the bounded play-field, divided into uniform cells.
type Field struct {
	Width, Height int // In field units
	CellW, CellH  int
}

// NewField builds a field from its configuration.
func NewField(cfg config.FieldConfig) Field {
	return Field{
		Width:  cfg.Width,
		Height: cfg.Height,
		CellW:  cfg.CellWidth,
		CellH:  cfg.CellHeight,
	}
}

// Cols returns the number of cell columns.
func (f Field) Cols() int {
	return f.Width / f.CellW
}

// Rows returns the number of cell rows.
func (f Field) Rows() int {
	return f.Height / f.CellH
}

// Center returns the cell-aligned cell nearest to the middle of the field.
func (f Field) Center() Cell {
	return Cell{X: f.Cols() / 2 * f.CellW, Y: f.Rows() / 2 * f.CellH}
}

// Step returns the cell one step away from c in direction d.
// The result may lie outside the field.
func (f Field) Step(c Cell, d Direction) Cell {
	switch d {
	case DirUp:
		c.Y -= f.CellH
	case DirDown:
		c.Y += f.CellH
	case DirLeft:
		c.X -= f.CellW
	case DirRight:
		c.X += f.CellW
	}
	return c
}

// CanStep reports whether one step from c in direction d stays on the field.
func (f Field) CanStep(c Cell, d Direction) bool {
	switch d {
	case DirUp:
		return c.Y > 0
	case DirDown:
		return c.Y+f.CellH < f.Height
	case DirLeft:
		return c.X > 0
	case DirRight:
		return c.X+f.CellW < f.Width
	}
	return false
}

// RandomCell picks a cell uniformly at random over the whole grid.
// Occupancy is not considered.
func (f Field) RandomCell(rng *rand.Rand) Cell {
	return Cell{
		X: rng.Intn(f.Cols()) * f.CellW,
		Y: rng.Intn(f.Rows()) * f.CellH,
	}
}

// CellIndex converts a field position to grid column and row.
func (f Field) CellIndex(c Cell) (col, row int) {
	return c.X / f.CellW, c.Y / f.CellH
}
