package coordinator

import (
	"context"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/specialistvlad/rectgrid/internal/grid"
	"github.com/specialistvlad/rectgrid/internal/rect"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// mustParse draws a grid from '#' and '-' lines by setting one cell per
// marked glyph.
func mustParse(t *testing.T, picture string) *grid.Grid {
	t.Helper()
	var lines []string
	for _, line := range strings.Split(picture, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	columns := 0
	if len(lines) > 0 {
		columns = len(lines[0])
	}
	var rules []grid.PaintRule
	for i, line := range lines {
		require.Len(t, line, columns, "row %d", i)
		for j := range line {
			if line[j] == grid.MarkedGlyph {
				rules = append(rules, grid.PaintRule{Mode: grid.Set, Area: rect.Box{RowStart: i, ColStart: j, RowEnd: i, ColEnd: j}})
			}
		}
	}
	g, err := grid.Rasterize(len(lines), columns, rules)
	require.NoError(t, err)
	return g
}

func run(t *testing.T, g *grid.Grid, workers int) rect.GlobalVerdict {
	t.Helper()
	res, err := Run(context.Background(), g, workers)
	require.NoError(t, err)
	require.Len(t, res.Partitions, workers)
	assert.Equal(t, workers, res.Workers)
	return res.Verdict
}

const scenarioA = `
	-----
	-###-
	-###-
	-----
	-----`

func TestScenarios(t *testing.T) {
	testCases := []struct {
		name    string
		picture string
		workers []int
		want    rect.GlobalVerdict
	}{
		{
			name:    "A: one rectangle, one worker",
			picture: scenarioA,
			workers: []int{1},
			want:    rect.GlobalVerdict{Status: rect.One, Box: rect.Box{RowStart: 1, ColStart: 1, RowEnd: 2, ColEnd: 3}},
		},
		{
			name:    "B: one rectangle, two partitions",
			picture: scenarioA,
			workers: []int{2},
			want:    rect.GlobalVerdict{Status: rect.One, Box: rect.Box{RowStart: 1, ColStart: 1, RowEnd: 2, ColEnd: 3}},
		},
		{
			name: "C: two disjoint rectangles",
			picture: `
				##---
				##---
				-----
				---##
				---##`,
			workers: []int{1, 2, 3, 4, 5, 6},
			want:    rect.GlobalVerdict{Status: rect.Many},
		},
		{
			name: "D: rectangle across three partitions",
			picture: `
				------
				------
				-###--
				-###--
				-###--
				-###--`,
			workers: []int{3},
			want:    rect.GlobalVerdict{Status: rect.One, Box: rect.Box{RowStart: 2, ColStart: 1, RowEnd: 5, ColEnd: 3}},
		},
		{
			name: "E: all unmarked",
			picture: `
				----
				----
				----
				----`,
			workers: []int{1, 2, 3, 4, 5},
			want:    rect.GlobalVerdict{Status: rect.None},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			g := mustParse(t, tc.picture)
			for _, w := range tc.workers {
				if diff := cmp.Diff(tc.want, run(t, g, w)); diff != "" {
					t.Errorf("workers=%d: verdict mismatch (-want +got):\n%s", w, diff)
				}
			}
		})
	}
}

func TestScenarioD_PartitionVerdicts(t *testing.T) {
	g := mustParse(t, `
		------
		------
		-###--
		-###--
		-###--
		-###--`)

	res, err := Run(context.Background(), g, 3)
	require.NoError(t, err)

	want := []rect.Entry{
		{Verdict: rect.PartialVerdict{Status: rect.None}, RowOffset: 0, Height: 2},
		{Verdict: rect.PartialVerdict{Status: rect.One, Box: rect.Box{RowStart: 0, ColStart: 1, RowEnd: 1, ColEnd: 3}}, RowOffset: 2, Height: 2},
		{Verdict: rect.PartialVerdict{Status: rect.One, Box: rect.Box{RowStart: 0, ColStart: 1, RowEnd: 1, ColEnd: 3}}, RowOffset: 4, Height: 2},
	}
	if diff := cmp.Diff(want, res.Partitions); diff != "" {
		t.Errorf("partition verdicts mismatch (-want +got):\n%s", diff)
	}
}

// oracle decides the answer by looking at the whole grid at once.
func oracle(g *grid.Grid) rect.GlobalVerdict {
	box := rect.Box{RowStart: g.Rows(), ColStart: g.Columns(), RowEnd: -1, ColEnd: -1}
	marked := 0
	for i := 0; i < g.Rows(); i++ {
		for j := 0; j < g.Columns(); j++ {
			if !g.IsMarked(i, j) {
				continue
			}
			marked++
			box.RowStart, box.RowEnd = min(box.RowStart, i), max(box.RowEnd, i)
			box.ColStart, box.ColEnd = min(box.ColStart, j), max(box.ColEnd, j)
		}
	}
	switch {
	case marked == 0:
		return rect.GlobalVerdict{Status: rect.None}
	case marked == box.Area():
		return rect.GlobalVerdict{Status: rect.One, Box: box}
	}
	return rect.GlobalVerdict{Status: rect.Many}
}

func randomGrid(t *testing.T, r *rand.Rand) *grid.Grid {
	t.Helper()
	rows, cols := 1+r.IntN(9), 1+r.IntN(9)
	var rules []grid.PaintRule
	for n := r.IntN(4); n > 0; n-- {
		r1, r2 := r.IntN(rows), r.IntN(rows)
		c1, c2 := r.IntN(cols), r.IntN(cols)
		rules = append(rules, grid.PaintRule{
			Mode: grid.PaintMode(r.IntN(3)),
			Area: rect.Box{RowStart: min(r1, r2), ColStart: min(c1, c2), RowEnd: max(r1, r2), ColEnd: max(c1, c2)},
		})
	}
	g, err := grid.Rasterize(rows, cols, rules)
	require.NoError(t, err)
	return g
}

// Every partition count, from a single worker up to more workers than rows,
// must agree with the whole-grid oracle on both status and box.
func TestRun_AgreesWithOracle(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 11))
	for n := 0; n < 300; n++ {
		g := randomGrid(t, r)
		want := oracle(g)
		for workers := 1; workers <= g.Rows()+1; workers++ {
			got := run(t, g, workers)
			if !assert.Equal(t, want, got, "grid %d, %d workers", n, workers) {
				var sb []byte
				for i := 0; i < g.Rows(); i++ {
					for _, c := range g.Row(i) {
						sb = append(sb, c.String()...)
					}
					sb = append(sb, '\n')
				}
				t.Logf("grid:\n%s", sb)
				return
			}
		}
	}
}

// A second marked region anywhere below a valid rectangle flips the answer
// to Many, whatever the distance and partitioning.
func TestRun_SecondRegionIsAlwaysMany(t *testing.T) {
	for row := 3; row < 10; row++ {
		rules := []grid.PaintRule{
			{Mode: grid.Set, Area: rect.Box{RowStart: 0, ColStart: 1, RowEnd: 1, ColEnd: 3}},
			{Mode: grid.Set, Area: rect.Box{RowStart: row, ColStart: 2, RowEnd: row, ColEnd: 2}},
		}
		g, err := grid.Rasterize(10, 5, rules)
		require.NoError(t, err)
		for _, workers := range []int{1, 2, 5, 10, 11} {
			assert.Equal(t, rect.Many, run(t, g, workers).Status, "second region at row %d, %d workers", row, workers)
		}
	}
}

func TestRun_RejectsNoWorkers(t *testing.T) {
	g := mustParse(t, scenarioA)
	_, err := Run(context.Background(), g, 0)
	require.ErrorIs(t, err, grid.ErrNoWorkers)
}

func TestRun_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Run(ctx, mustParse(t, scenarioA), 3)
	require.ErrorIs(t, err, context.Canceled)
}
