// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package grid

import (
	"errors"
	"fmt"
)

// Cell is the colour of a single grid position.
type Cell uint8

const (
	Unmarked Cell = iota
	Marked
)

// Glyphs used when a grid is rendered as text.
const (
	MarkedGlyph   = '#'
	UnmarkedGlyph = '-'
)

// String implements fmt.Stringer.
func (c Cell) String() string {
	if c == Marked {
		return string(MarkedGlyph)
	}
	return string(UnmarkedGlyph)
}

// ErrDimensions is returned when a grid is requested with a negative size
// or with more than MaxCells cells.
var ErrDimensions = errors.New("invalid grid dimensions")

// MaxCells bounds rows, columns and rows*columns so the cell slice can
// always be allocated.
const MaxCells = 1 << 30

// CheckDimensions validates a grid size without allocating it.
func CheckDimensions(rows, columns int) error {
	if rows < 0 || columns < 0 {
		return fmt.Errorf("%w: %dx%d", ErrDimensions, rows, columns)
	}
	if rows > MaxCells || columns > MaxCells || (columns > 0 && rows > MaxCells/columns) {
		return fmt.Errorf("%w: %dx%d exceeds %d cells", ErrDimensions, rows, columns, MaxCells)
	}
	return nil
}

// Grid is a rows x columns board stored row-major.
type Grid struct {
	rows    int
	columns int
	cells   []Cell
}

// New returns an all-unmarked grid.
func New(rows, columns int) (*Grid, error) {
	if err := CheckDimensions(rows, columns); err != nil {
		return nil, err
	}
	return &Grid{
		rows:    rows,
		columns: columns,
		cells:   make([]Cell, rows*columns),
	}, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Columns returns the number of columns.
func (g *Grid) Columns() int { return g.columns }

// Height is an alias of Rows so a whole grid can be scanned like a partition.
func (g *Grid) Height() int { return g.rows }

// At returns the cell at (row, col).
func (g *Grid) At(row, col int) Cell {
	return g.cells[row*g.columns+col]
}

// IsMarked reports whether the cell at (row, col) is marked.
func (g *Grid) IsMarked(row, col int) bool {
	return g.At(row, col) == Marked
}

// Row returns the cells of one row. The slice aliases the grid storage and
// must not be modified.
func (g *Grid) Row(row int) []Cell {
	start := row * g.columns
	return g.cells[start : start+g.columns : start+g.columns]
}

// CountMarked returns the number of marked cells.
func (g *Grid) CountMarked() int {
	n := 0
	for _, c := range g.cells {
		if c == Marked {
			n++
		}
	}
	return n
}

func (g *Grid) set(row, col int, c Cell) {
	g.cells[row*g.columns+col] = c
}

func (g *Grid) toggle(row, col int) {
	i := row*g.columns + col
	if g.cells[i] == Marked {
		g.cells[i] = Unmarked
	} else {
		g.cells[i] = Marked
	}
}
