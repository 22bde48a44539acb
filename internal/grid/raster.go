package grid

import (
	"errors"
	"fmt"
	"strings"

	"github.com/specialistvlad/rectgrid/internal/rect"
)

// PaintMode is how a rule changes the cells it covers. The numeric values
// are the mode codes used by the plain text rule format.
type PaintMode int

const (
	Clear PaintMode = iota
	Set
	Toggle
)

var paintModeNames = map[PaintMode]string{
	Clear:  "clear",
	Set:    "set",
	Toggle: "toggle",
}

// String implements fmt.Stringer.
func (m PaintMode) String() string {
	if name, ok := paintModeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("PaintMode(%d)", int(m))
}

// Valid reports whether m is one of the known modes.
func (m PaintMode) Valid() bool {
	_, ok := paintModeNames[m]
	return ok
}

// ErrUnknownMode is returned for mode names or codes that are not recognised.
var ErrUnknownMode = errors.New("unknown paint mode")

// ParsePaintMode accepts the mode names used in rule files. "white" and
// "black" are accepted as aliases of clear and set.
func ParsePaintMode(s string) (PaintMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "clear", "white", "unmark":
		return Clear, nil
	case "set", "black", "mark":
		return Set, nil
	case "toggle":
		return Toggle, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// PaintRule paints an inclusive box.
type PaintRule struct {
	Mode PaintMode
	Area rect.Box
}

// String implements fmt.Stringer in the plain text rule format.
func (r PaintRule) String() string {
	return fmt.Sprintf("%d %d %d %d %d", int(r.Mode), r.Area.RowStart, r.Area.ColStart, r.Area.RowEnd, r.Area.ColEnd)
}

// ErrRuleOutOfBounds is returned for rules that do not fit the grid.
var ErrRuleOutOfBounds = errors.New("paint rule outside of grid")

// CheckRule validates a rule against grid dimensions.
func CheckRule(r PaintRule, rows, columns int) error {
	if !r.Mode.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownMode, int(r.Mode))
	}
	a := r.Area
	if !a.Valid() || a.RowStart < 0 || a.ColStart < 0 || a.RowEnd >= rows || a.ColEnd >= columns {
		return fmt.Errorf("%w: %s does not fit %dx%d", ErrRuleOutOfBounds, a, rows, columns)
	}
	return nil
}

// Rasterize builds a grid by applying rules in order. Every rule is checked
// before any cell is painted, so a bad rule never yields a half-built grid.
func Rasterize(rows, columns int, rules []PaintRule) (*Grid, error) {
	g, err := New(rows, columns)
	if err != nil {
		return nil, err
	}
	for i, r := range rules {
		if err := CheckRule(r, rows, columns); err != nil {
			return nil, fmt.Errorf("rule %d: %w", i, err)
		}
	}
	for _, r := range rules {
		g.Paint(r)
	}
	return g, nil
}

// Paint applies a single, already validated rule.
func (g *Grid) Paint(r PaintRule) {
	for i := r.Area.RowStart; i <= r.Area.RowEnd; i++ {
		for j := r.Area.ColStart; j <= r.Area.ColEnd; j++ {
			switch r.Mode {
			case Clear:
				g.set(i, j, Unmarked)
			case Set:
				g.set(i, j, Marked)
			case Toggle:
				g.toggle(i, j)
			}
		}
	}
}
