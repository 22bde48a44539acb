package grid

import (
	"errors"
	"fmt"
)

// ErrNoWorkers is returned when a grid is split across fewer than one worker.
var ErrNoWorkers = errors.New("worker count must be at least 1")

// Partition is a contiguous block of whole rows owned by one worker.
// Row indices passed to At are local to the partition.
type Partition struct {
	Rank      int
	RowOffset int
	height    int
	columns   int
	cells     []Cell
}

// Height returns the number of rows in the partition.
func (p Partition) Height() int { return p.height }

// Columns returns the width of every row in the partition.
func (p Partition) Columns() int { return p.columns }

// At returns the cell at the partition-local row and the global column.
func (p Partition) At(row, col int) Cell {
	return p.cells[row*p.columns+col]
}

// IsMarked reports whether the cell at (row, col) is marked.
func (p Partition) IsMarked(row, col int) bool {
	return p.At(row, col) == Marked
}

// Cells returns the partition's cells row-major. The slice aliases the grid.
func (p Partition) Cells() []Cell { return p.cells }

// NewPartition wraps already scattered rows. len(cells) must be a multiple
// of columns.
func NewPartition(rank, rowOffset, columns int, cells []Cell) (Partition, error) {
	if columns <= 0 {
		if len(cells) != 0 {
			return Partition{}, fmt.Errorf("partition %d: %d cells for zero columns", rank, len(cells))
		}
		return Partition{Rank: rank, RowOffset: rowOffset}, nil
	}
	if len(cells)%columns != 0 {
		return Partition{}, fmt.Errorf("partition %d: %d cells is not a multiple of %d columns", rank, len(cells), columns)
	}
	return Partition{
		Rank:      rank,
		RowOffset: rowOffset,
		height:    len(cells) / columns,
		columns:   columns,
		cells:     cells,
	}, nil
}

// PartitionHeight is the height of every partition but the last one.
func PartitionHeight(rows, workers int) int {
	if workers < 1 || rows <= 0 {
		return 0
	}
	return (rows + workers - 1) / workers
}

// Split cuts the grid into workers partitions in ascending row order. All
// partitions have PartitionHeight rows except the last non-empty one, which
// takes the remainder. When there are more workers than rows the trailing
// partitions are empty so every rank still has a slot.
func Split(g *Grid, workers int) ([]Partition, error) {
	if workers < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrNoWorkers, workers)
	}
	height := PartitionHeight(g.rows, workers)
	parts := make([]Partition, workers)
	offset := 0
	for rank := range parts {
		h := min(height, g.rows-offset)
		start, end := offset*g.columns, (offset+h)*g.columns
		parts[rank] = Partition{
			Rank:      rank,
			RowOffset: offset,
			height:    h,
			columns:   g.columns,
			cells:     g.cells[start:end:end],
		}
		offset += h
	}
	return parts, nil
}
