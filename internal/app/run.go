package app

import (
	"context"
	"fmt"

	"github.com/specialistvlad/rectgrid/internal/coordinator"
	"github.com/specialistvlad/rectgrid/internal/ctxlog"
	"github.com/specialistvlad/rectgrid/internal/rect"
	"github.com/specialistvlad/rectgrid/internal/report"
)

// Run executes one validation round and returns the verdict that was
// reported. A configuration error aborts the run before any partitioning.
func (a *App) Run(ctx context.Context) (rect.GlobalVerdict, error) {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Info("Starting.", "rules", a.config.RulesPath, "workers", a.config.WorkerCount)

	model, err := a.loader.Load(ctx, a.config.RulesPath)
	if err != nil {
		return rect.GlobalVerdict{}, fmt.Errorf("failed to load configuration: %w", err)
	}
	a.logger.Debug("Configuration loaded.", "rows", model.Rows, "columns", model.Columns, "rules", len(model.Rules))

	rep := report.New(a.outW, a.config.Verbose)
	rep.Config(model)

	g, err := model.Rasterize()
	if err != nil {
		return rect.GlobalVerdict{}, fmt.Errorf("failed to build grid: %w", err)
	}
	a.logger.Debug("Grid rasterized.", "marked_cells", g.CountMarked())
	rep.Grid(g)

	res, err := coordinator.Run(ctx, g, a.config.WorkerCount)
	if err != nil {
		return rect.GlobalVerdict{}, err
	}
	rep.Result(res)
	if err := rep.Err(); err != nil {
		return res.Verdict, fmt.Errorf("failed to write report: %w", err)
	}

	attrs := []any{"status", res.Verdict.Status, "elapsed", res.Elapsed}
	if res.Verdict.Status == rect.One {
		// A One verdict claims every marked cell lies in the box.
		if area, marked := res.Verdict.Box.Area(), g.CountMarked(); area != marked {
			return res.Verdict, fmt.Errorf("verdict box %s covers %d cells but %d are marked", res.Verdict.Box, area, marked)
		}
		attrs = append(attrs, "cells", res.Verdict.Box.Area())
	}
	a.logger.Info("Finished.", attrs...)
	return res.Verdict, nil
}
