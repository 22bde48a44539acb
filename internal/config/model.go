package config

import (
	"errors"
	"fmt"
	"io"

	"github.com/specialistvlad/rectgrid/internal/grid"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// Model is the unified representation of a rule file: the declared grid
// size and the paint rules, in application order.
type Model struct {
	Rows    int
	Columns int
	Rules   []grid.PaintRule
}

// Validate checks the grid size and every rule against it.
func (m *Model) Validate() error {
	if err := grid.CheckDimensions(m.Rows, m.Columns); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	for i, r := range m.Rules {
		if err := grid.CheckRule(r, m.Rows, m.Columns); err != nil {
			return fmt.Errorf("%w: rule %d: %w", ErrInvalid, i, err)
		}
	}
	return nil
}

// Rasterize builds the grid described by the model.
func (m *Model) Rasterize() (*grid.Grid, error) {
	return grid.Rasterize(m.Rows, m.Columns, m.Rules)
}

// Write prints the model in the plain text rule format.
func (m *Model) Write(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "%d %d\n%d\n", m.Rows, m.Columns, len(m.Rules)); err != nil {
		return err
	}
	for _, r := range m.Rules {
		if _, err := fmt.Fprintln(w, r.String()); err != nil {
			return err
		}
	}
	return nil
}
