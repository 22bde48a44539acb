package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/specialistvlad/rectgrid/internal/config"
	"github.com/specialistvlad/rectgrid/internal/ctxlog"
	"github.com/specialistvlad/rectgrid/internal/grid"
	"github.com/specialistvlad/rectgrid/internal/rect"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL rule file loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses the file at path.
func (l *Loader) Load(ctx context.Context, path string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path", path)

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
	}
	return l.decode(ctx, path, file)
}

// Parse is Load for in-memory sources. filename is only used in messages.
func (l *Loader) Parse(ctx context.Context, src []byte, filename string) (*config.Model, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", filename, diags)
	}
	return l.decode(ctx, filename, file)
}

func (l *Loader) decode(ctx context.Context, name string, file *hcl.File) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)

	var root fileRoot
	if diags := gohcl.DecodeBody(file.Body, nil, &root); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", name, diags)
	}

	model := &config.Model{
		Rows:    root.Grid.Rows,
		Columns: root.Grid.Columns,
		Rules:   make([]grid.PaintRule, 0, len(root.Rules)),
	}
	evalCtx := evalContext(model.Rows, model.Columns)
	for i, rb := range root.Rules {
		rule, err := translateRule(ctx, rb, evalCtx)
		if err != nil {
			return nil, fmt.Errorf("rule %d in %s: %w", i, name, err)
		}
		model.Rules = append(model.Rules, rule)
	}

	if err := model.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	logger.Debug("HCL loading complete.", "rows", model.Rows, "columns", model.Columns, "rules", len(model.Rules))
	return model, nil
}

// translateRule converts one rule block into the agnostic model.
func translateRule(ctx context.Context, rb *ruleBlock, evalCtx *hcl.EvalContext) (grid.PaintRule, error) {
	mode, err := grid.ParsePaintMode(rb.Mode)
	if err != nil {
		return grid.PaintRule{}, err
	}
	r1, c1, err := decodePoint(ctx, rb.From, evalCtx)
	if err != nil {
		return grid.PaintRule{}, fmt.Errorf("from: %w", err)
	}
	r2, c2, err := decodePoint(ctx, rb.To, evalCtx)
	if err != nil {
		return grid.PaintRule{}, fmt.Errorf("to: %w", err)
	}
	return grid.PaintRule{
		Mode: mode,
		Area: rect.Box{RowStart: r1, ColStart: c1, RowEnd: r2, ColEnd: c2},
	}, nil
}
