package rect

import "fmt"

// Box is an inclusive rectangle of cells.
type Box struct {
	RowStart int
	ColStart int
	RowEnd   int
	ColEnd   int
}

// Valid reports whether the box covers at least one cell.
func (b Box) Valid() bool {
	return b.RowStart <= b.RowEnd && b.ColStart <= b.ColEnd
}

// Shift moves the box down by rows. Columns are already global.
func (b Box) Shift(rows int) Box {
	b.RowStart += rows
	b.RowEnd += rows
	return b
}

// Area returns the number of cells covered by a valid box.
func (b Box) Area() int {
	if !b.Valid() {
		return 0
	}
	return (b.RowEnd - b.RowStart + 1) * (b.ColEnd - b.ColStart + 1)
}

// String implements fmt.Stringer as "rowStart colStart rowEnd colEnd".
func (b Box) String() string {
	return fmt.Sprintf("%d %d %d %d", b.RowStart, b.ColStart, b.RowEnd, b.ColEnd)
}
