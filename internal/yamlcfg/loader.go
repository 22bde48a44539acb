// Package yamlcfg reads rule files written in YAML:
//
//	rows: 5
//	columns: 5
//	rules:
//	  - {mode: set, from: [1, 1], to: [2, 3]}
//	  - {mode: toggle, from: [0, 0], to: [4, 4]}
package yamlcfg

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/specialistvlad/rectgrid/internal/config"
	"github.com/specialistvlad/rectgrid/internal/ctxlog"
	"github.com/specialistvlad/rectgrid/internal/grid"
	"github.com/specialistvlad/rectgrid/internal/rect"
)

type document struct {
	Rows    int    `yaml:"rows"`
	Columns int    `yaml:"columns"`
	Rules   []rule `yaml:"rules"`
}

type rule struct {
	Mode string `yaml:"mode"`
	From []int  `yaml:"from,flow"`
	To   []int  `yaml:"to,flow"`
}

// Loader implements config.Loader for YAML files.
type Loader struct{}

// NewLoader creates a new YAML rule file loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads the file at path.
func (l *Loader) Load(ctx context.Context, path string) (*config.Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open rule file: %w", err)
	}
	defer f.Close()

	model, err := l.Read(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return model, nil
}

// Read decodes a single YAML document from r. Unknown keys are rejected.
func (l *Loader) Read(ctx context.Context, r io.Reader) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var doc document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", config.ErrInvalid)
		}
		return nil, fmt.Errorf("failed to decode YAML: %w", err)
	}

	model := &config.Model{
		Rows:    doc.Rows,
		Columns: doc.Columns,
		Rules:   make([]grid.PaintRule, 0, len(doc.Rules)),
	}
	for i, r := range doc.Rules {
		mode, err := grid.ParsePaintMode(r.Mode)
		if err != nil {
			return nil, fmt.Errorf("rule %d: %w", i, err)
		}
		if len(r.From) != 2 || len(r.To) != 2 {
			return nil, fmt.Errorf("%w: rule %d: from and to must be [row, column]", config.ErrInvalid, i)
		}
		model.Rules = append(model.Rules, grid.PaintRule{
			Mode: mode,
			Area: rect.Box{RowStart: r.From[0], ColStart: r.From[1], RowEnd: r.To[0], ColEnd: r.To[1]},
		})
	}

	if err := model.Validate(); err != nil {
		return nil, err
	}
	logger.Debug("YAML rule file loaded.", "rows", model.Rows, "columns", model.Columns, "rules", len(model.Rules))
	return model, nil
}
