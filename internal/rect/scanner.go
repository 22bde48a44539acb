// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package rect

// Scanner is the state carried through a single forward pass over a block of
// rows. The zero value is not usable; use newScanner.
//
// The scan fixes the rectangle's edges in the order they become observable:
// the top-left corner on the first marked cell, the right edge on the first
// unmarked cell after it on the same row (or at the start of the next row if
// the row is marked to its end), and the bottom edge on the first unmarked
// cell found below the top-left corner.
type Scanner struct {
	columns int

	status Status
	box    Box

	startFound  bool
	colEndFound bool
	rowEndFound bool
}

func newScanner(columns int) *Scanner {
	return &Scanner{columns: columns}
}

// step consumes cell (i, j). It returns false as soon as the cells seen so
// far cannot belong to one rectangle; the scanner is then in its final Many
// state and must not be stepped again.
func (s *Scanner) step(i, j int, marked bool) bool {
	if !s.startFound {
		if marked {
			s.box.RowStart, s.box.ColStart = i, j
			s.status = One
			s.startFound = true
		}
		return true
	}

	if !s.colEndFound {
		if i == s.box.RowStart {
			if !marked {
				s.box.ColEnd = j - 1
				s.colEndFound = true
			}
			return true
		}
		// A new row began while the start row was still open: the start
		// row was marked up to the last column.
		s.box.ColEnd = s.columns - 1
		s.colEndFound = true
	}

	if s.rowEndFound {
		// Everything left lies below the rectangle or to the right of its
		// closing row.
		if marked {
			return s.fail()
		}
		return true
	}

	inside := j >= s.box.ColStart && j <= s.box.ColEnd
	switch {
	case marked && inside:
		return true
	case marked:
		return s.fail()
	case !inside:
		return true
	case j == s.box.ColStart:
		s.box.RowEnd = i - 1
		s.rowEndFound = true
		return true
	default:
		// The row started inside the column range and stopped early.
		return s.fail()
	}
}

// finish closes edges that were still open when the block ran out.
func (s *Scanner) finish(height int) {
	if !s.startFound {
		return
	}
	if !s.colEndFound {
		// The start row is the last row and is marked to its end.
		s.box.ColEnd = s.columns - 1
		s.colEndFound = true
	}
	if !s.rowEndFound {
		s.box.RowEnd = height - 1
		s.rowEndFound = true
	}
}

func (s *Scanner) fail() bool {
	s.status = Many
	s.box = Box{}
	return false
}

func (s *Scanner) verdict() PartialVerdict {
	if s.status != One {
		return PartialVerdict{Status: s.status}
	}
	return PartialVerdict{Status: One, Box: s.box}
}

// Scan walks src once in row-major order and reports whether its marked
// cells are consistent with a single rectangle. Rows in the returned box are
// relative to src. The walk stops at the first cell that proves Many.
func Scan(src CellSource) PartialVerdict {
	height, columns := src.Height(), src.Columns()
	s := newScanner(columns)
	for i := 0; i < height; i++ {
		for j := 0; j < columns; j++ {
			if !s.step(i, j, src.IsMarked(i, j)) {
				return s.verdict()
			}
		}
	}
	s.finish(height)
	return s.verdict()
}
