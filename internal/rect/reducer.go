package rect

import (
	"errors"
	"fmt"
)

// ErrLayout is returned by Reduce when the entries do not describe
// contiguous partitions of a single grid in row order.
var ErrLayout = errors.New("partition layout is not contiguous")

// Entry is one partition's verdict together with where its rows sit in the
// grid.
type Entry struct {
	Verdict   PartialVerdict
	RowOffset int
	Height    int
}

type accState int

const (
	accEmpty accState = iota
	accOne
	accInvalid
)

// accumulator is the running result of the fold.
//
// pendingGap is set when the last accepted rectangle stopped before the
// bottom row of its own partition. Any later marked cell must then belong to
// a second rectangle.
type accumulator struct {
	state      accState
	box        Box
	pendingGap bool
}

// fold adds one partition to the accumulator. It is pure.
func fold(acc accumulator, e Entry) accumulator {
	if acc.state == accInvalid {
		return acc
	}
	switch e.Verdict.Status {
	case None:
		return acc
	case Many:
		return accumulator{state: accInvalid}
	}

	box := e.Verdict.Box.Shift(e.RowOffset)
	switch acc.state {
	case accEmpty:
		acc = accumulator{state: accOne, box: box}
	case accOne:
		if acc.pendingGap ||
			box.RowStart != acc.box.RowEnd+1 ||
			box.ColStart != acc.box.ColStart ||
			box.ColEnd != acc.box.ColEnd {
			return accumulator{state: accInvalid}
		}
		acc.box.RowEnd = box.RowEnd
	}
	acc.pendingGap = e.Verdict.Box.RowEnd != e.Height-1
	return acc
}

func (acc accumulator) verdict() GlobalVerdict {
	switch acc.state {
	case accOne:
		return GlobalVerdict{Status: One, Box: acc.box}
	case accInvalid:
		return GlobalVerdict{Status: Many}
	}
	return GlobalVerdict{Status: None}
}

// Reduce folds partition verdicts, given in ascending row order, into the
// verdict for the whole grid. Row offsets are applied here and nowhere else.
//
// The only error is ErrLayout, for entries that are not contiguous, start
// anywhere but row 0, or have a short partition before the last non-empty
// one.
func Reduce(entries []Entry) (GlobalVerdict, error) {
	if err := checkLayout(entries); err != nil {
		return GlobalVerdict{}, err
	}
	for _, e := range entries {
		if e.Verdict.Status == Many {
			return GlobalVerdict{Status: Many}, nil
		}
	}
	var acc accumulator
	for _, e := range entries {
		acc = fold(acc, e)
		if acc.state == accInvalid {
			break
		}
	}
	return acc.verdict(), nil
}

func checkLayout(entries []Entry) error {
	if len(entries) == 0 {
		return nil
	}
	height := entries[0].Height
	next := 0
	shortSeen := false
	for k, e := range entries {
		if e.Height < 0 {
			return fmt.Errorf("%w: entry %d has negative height %d", ErrLayout, k, e.Height)
		}
		if e.RowOffset != next {
			return fmt.Errorf("%w: entry %d starts at row %d, want %d", ErrLayout, k, e.RowOffset, next)
		}
		if e.Height > height || (shortSeen && e.Height > 0) {
			return fmt.Errorf("%w: entry %d has height %d after a shorter partition", ErrLayout, k, e.Height)
		}
		if e.Height < height {
			shortSeen = true
		}
		if e.Verdict.Status == One {
			b := e.Verdict.Box
			if !b.Valid() || b.RowStart < 0 || b.RowEnd >= e.Height {
				return fmt.Errorf("%w: entry %d box %s outside of its %d rows", ErrLayout, k, b, e.Height)
			}
		}
		next += e.Height
	}
	return nil
}

// Check scans src as a single partition.
func Check(src CellSource) GlobalVerdict {
	v, _ := Reduce([]Entry{{Verdict: Scan(src), Height: src.Height()}})
	return v
}
