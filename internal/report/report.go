// Package report prints the outcome of a validation round. It is the only
// package that formats verdicts for humans.
package report

import (
	"fmt"
	"io"

	"github.com/specialistvlad/rectgrid/internal/config"
	"github.com/specialistvlad/rectgrid/internal/coordinator"
	"github.com/specialistvlad/rectgrid/internal/grid"
	"github.com/specialistvlad/rectgrid/internal/rect"
)

// Reporter writes to a single output. In verbose mode it also prints the
// rule file, the rasterized grid and a sentence describing the verdict.
type Reporter struct {
	w       io.Writer
	verbose bool
	err     error
}

// New returns a Reporter writing to w.
func New(w io.Writer, verbose bool) *Reporter {
	return &Reporter{w: w, verbose: verbose}
}

// printf remembers the first write error so callers only check Err once.
func (r *Reporter) printf(format string, args ...any) {
	if r.err != nil {
		return
	}
	_, r.err = fmt.Fprintf(r.w, format, args...)
}

// Err returns the first write error, if any.
func (r *Reporter) Err() error { return r.err }

// Config prints the rule file in the plain text format. Verbose only.
func (r *Reporter) Config(m *config.Model) {
	if !r.verbose || r.err != nil {
		return
	}
	r.printf("Configuration:\n")
	if r.err == nil {
		r.err = m.Write(r.w)
	}
}

// Grid prints the rasterized grid. Verbose only.
func (r *Reporter) Grid(g *grid.Grid) {
	if !r.verbose || r.err != nil {
		return
	}
	r.printf("Rectangle:\n")
	if r.err == nil {
		r.err = grid.Render(r.w, g)
	}
}

// Result prints the timing line and the final verdict.
func (r *Reporter) Result(res *coordinator.Result) {
	v := res.Verdict
	r.printf("Time elapsed: %f s\n", res.Elapsed.Seconds())
	r.printf("Final result:\n%s\n", v)
	if !r.verbose {
		return
	}
	switch v.Status {
	case rect.None:
		r.printf("No black rectangle!\n")
	case rect.One:
		r.printf("One black rectangle!\nCoordinates:\n%s\n", v.Box)
	case rect.Many:
		r.printf("More than one black rectangle!\n")
	}
	for i, e := range res.Partitions {
		switch {
		case e.Height == 0:
			r.printf("Partition %d: no rows\n", i)
		case e.Verdict.Status == rect.One:
			r.printf("Partition %d rows %d-%d: %s %s\n", i, e.RowOffset, e.RowOffset+e.Height-1, e.Verdict.Status, e.Verdict.Box.Shift(e.RowOffset))
		default:
			r.printf("Partition %d rows %d-%d: %s\n", i, e.RowOffset, e.RowOffset+e.Height-1, e.Verdict.Status)
		}
	}
}
