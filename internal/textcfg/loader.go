// Package textcfg reads rule files in the plain whitespace-separated format:
//
//	<rows> <columns>
//	<rule count>
//	<mode> <rowStart> <colStart> <rowEnd> <colEnd>
//	...
//
// Mode is 0 (clear), 1 (set) or 2 (toggle). Line breaks are not significant.
package textcfg

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/specialistvlad/rectgrid/internal/config"
	"github.com/specialistvlad/rectgrid/internal/ctxlog"
	"github.com/specialistvlad/rectgrid/internal/grid"
	"github.com/specialistvlad/rectgrid/internal/rect"
)

// ErrTruncated is returned when the input ends before every declared value
// has been read.
var ErrTruncated = errors.New("unexpected end of rule file")

// Loader implements config.Loader for the plain text format.
type Loader struct{}

// NewLoader creates a new plain text rule file loader.
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

// Read parses a rule file from r.
func (l *Loader) Read(ctx context.Context, r io.Reader) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)

	ints := newIntReader(r)
	var model config.Model
	var count int
	if err := ints.read(&model.Rows, &model.Columns, &count); err != nil {
		return nil, fmt.Errorf("header: %w", err)
	}
	if count < 0 {
		return nil, fmt.Errorf("%w: negative rule count %d", config.ErrInvalid, count)
	}

	model.Rules = make([]grid.PaintRule, 0, count)
	for i := 0; i < count; i++ {
		var mode int
		var b rect.Box
		if err := ints.read(&mode, &b.RowStart, &b.ColStart, &b.RowEnd, &b.ColEnd); err != nil {
			return nil, fmt.Errorf("rule %d: %w", i, err)
		}
		model.Rules = append(model.Rules, grid.PaintRule{Mode: grid.PaintMode(mode), Area: b})
	}

	if err := model.Validate(); err != nil {
		return nil, err
	}
	logger.Debug("Text rule file loaded.", "rows", model.Rows, "columns", model.Columns, "rules", len(model.Rules))
	return &model, nil
}

// intReader yields whitespace-separated integers.
type intReader struct {
	s *bufio.Scanner
}

func newIntReader(r io.Reader) *intReader {
	s := bufio.NewScanner(r)
	s.Split(bufio.ScanWords)
	return &intReader{s: s}
}

func (ir *intReader) read(dst ...*int) error {
	for _, d := range dst {
		if !ir.s.Scan() {
			if err := ir.s.Err(); err != nil {
				return err
			}
			return ErrTruncated
		}
		n, err := strconv.Atoi(ir.s.Text())
		if err != nil {
			return fmt.Errorf("%w: %q is not an integer", config.ErrInvalid, ir.s.Text())
		}
		*d = n
	}
	return nil
}
