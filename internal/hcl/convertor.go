package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/specialistvlad/rectgrid/internal/ctxlog"
)

// pointType is what a from/to expression must convert to.
var pointType = cty.List(cty.Number)

// evalContext exposes the grid size to coordinate expressions.
func evalContext(rows, columns int) *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"rows":    cty.NumberIntVal(int64(rows)),
			"columns": cty.NumberIntVal(int64(columns)),
		},
	}
}

// decodePoint evaluates expr and binds it to a (row, column) pair.
func decodePoint(ctx context.Context, expr hcl.Expression, evalCtx *hcl.EvalContext) (row, col int, err error) {
	logger := ctxlog.FromContext(ctx)

	val, diags := expr.Value(evalCtx)
	if diags.HasErrors() {
		return 0, 0, diags
	}
	if val.IsNull() || !val.IsWhollyKnown() {
		return 0, 0, fmt.Errorf("%s: coordinates must be a known, non-null value", expr.Range())
	}

	converted, err := convert.Convert(val, pointType)
	if err != nil {
		return 0, 0, fmt.Errorf("%s: cannot convert %s to %s: %w", expr.Range(), val.Type().FriendlyName(), pointType.FriendlyName(), err)
	}
	if !val.Type().Equals(converted.Type()) {
		logger.Debug("Implicitly converted coordinate value.",
			"from", val.Type().FriendlyName(),
			"to", converted.Type().FriendlyName(),
		)
	}

	var point []int
	if err := gocty.FromCtyValue(converted, &point); err != nil {
		return 0, 0, fmt.Errorf("%s: %w", expr.Range(), err)
	}
	if len(point) != 2 {
		return 0, 0, fmt.Errorf("%s: expected [row, column], got %d values", expr.Range(), len(point))
	}
	return point[0], point[1], nil
}
