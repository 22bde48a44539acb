package rect

import "fmt"

// Status is the outcome of a scan. The numeric values are part of the
// report format.
type Status int

const (
	None Status = iota // no marked cell
	One                // the marked cells form one full rectangle
	Many               // anything else
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case None:
		return "none"
	case One:
		return "one"
	case Many:
		return "many"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// PartialVerdict is what a single partition concludes about its own rows.
// Box rows are local to the partition; columns are global. Box is only
// meaningful when Status is One.
type PartialVerdict struct {
	Status Status
	Box    Box
}

// GlobalVerdict is the answer for the whole grid, in global coordinates.
type GlobalVerdict struct {
	Status Status
	Box    Box
}

// String implements fmt.Stringer as "status rowStart colStart rowEnd colEnd".
func (v GlobalVerdict) String() string {
	return fmt.Sprintf("%d %s", int(v.Status), v.Box)
}

// CellSource is a block of rows that can be scanned. Both a whole grid and a
// single partition satisfy it.
type CellSource interface {
	Height() int
	Columns() int
	IsMarked(row, col int) bool
}
