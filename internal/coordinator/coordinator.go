// Package coordinator runs one validation round over a process group: the
// root broadcasts the grid shape, scatters row partitions, every rank scans
// its own rows, and the root gathers the partial verdicts in rank order and
// reduces them.
package coordinator

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/specialistvlad/rectgrid/internal/collective"
	"github.com/specialistvlad/rectgrid/internal/ctxlog"
	"github.com/specialistvlad/rectgrid/internal/grid"
	"github.com/specialistvlad/rectgrid/internal/rect"
)

// Shape is broadcast from the root before the rows are scattered.
type Shape struct {
	Rows    int
	Columns int
}

// Result is what the root learns from one round.
type Result struct {
	Verdict rect.GlobalVerdict
	// Partitions holds every rank's verdict in rank order, with the row
	// offset and height the root assigned to it.
	Partitions []rect.Entry
	Workers    int
	Elapsed    time.Duration
}

// Run validates g using workers ranks.
func Run(ctx context.Context, g *grid.Grid, workers int) (*Result, error) {
	if workers < 1 {
		return nil, fmt.Errorf("%w: got %d", grid.ErrNoWorkers, workers)
	}
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Validation round starting.", "rows", g.Rows(), "columns", g.Columns(), "workers", workers)

	start := time.Now()
	var result *Result
	err := collective.Run(ctx, workers, func(ctx context.Context, c *collective.Comm) error {
		ctx = ctxlog.With(ctx, "rank", c.Rank())
		if !c.IsRoot() {
			return work(ctx, c)
		}
		r, err := lead(ctx, c, g)
		result = r
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("validation round failed: %w", err)
	}
	result.Workers = workers
	result.Elapsed = time.Since(start)

	logger.Debug("Validation round finished.", "status", result.Verdict.Status, "elapsed", result.Elapsed)
	return result, nil
}

// lead is the root's side of the round. The root also scans its own rows.
func lead(ctx context.Context, c *collective.Comm, g *grid.Grid) (*Result, error) {
	parts, err := grid.Split(g, c.Size())
	if err != nil {
		return nil, err
	}
	verdicts, err := exchange(ctx, c, g, parts)
	if err != nil {
		return nil, err
	}

	entries := make([]rect.Entry, len(parts))
	for i, p := range parts {
		entries[i] = rect.Entry{Verdict: verdicts[i], RowOffset: p.RowOffset, Height: p.Height()}
	}
	verdict, err := rect.Reduce(entries)
	if err != nil {
		return nil, fmt.Errorf("reduce: %w", err)
	}
	return &Result{Verdict: verdict, Partitions: entries}, nil
}

// work is a non-root rank's side of the round.
func work(ctx context.Context, c *collective.Comm) error {
	_, err := exchange(ctx, c, nil, nil)
	return err
}

// exchange runs the three collectives. g and parts are only read on the
// root; the gathered verdicts are only returned on the root.
func exchange(ctx context.Context, c *collective.Comm, g *grid.Grid, parts []grid.Partition) ([]rect.PartialVerdict, error) {
	logger := ctxlog.FromContext(ctx)

	var shape Shape
	var chunks [][]grid.Cell
	if c.IsRoot() {
		shape = Shape{Rows: g.Rows(), Columns: g.Columns()}
		chunks = make([][]grid.Cell, len(parts))
		for i, p := range parts {
			chunks[i] = slices.Clone(p.Cells())
		}
	}

	if err := collective.Bcast(ctx, c, &shape); err != nil {
		return nil, fmt.Errorf("broadcast shape: %w", err)
	}
	cells, err := collective.Scatter(ctx, c, chunks)
	if err != nil {
		return nil, fmt.Errorf("scatter rows: %w", err)
	}

	height := grid.PartitionHeight(shape.Rows, c.Size())
	offset := min(c.Rank()*height, shape.Rows)
	part, err := grid.NewPartition(c.Rank(), offset, shape.Columns, cells)
	if err != nil {
		return nil, err
	}
	verdict := rect.Scan(part)
	logger.Debug("Partition scanned.", "row_offset", part.RowOffset, "height", part.Height(), "status", verdict.Status, "box", verdict.Box.String())

	verdicts, err := collective.Gather(ctx, c, verdict)
	if err != nil {
		return nil, fmt.Errorf("gather verdicts: %w", err)
	}
	return verdicts, nil
}
