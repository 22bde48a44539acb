package report

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specialistvlad/rectgrid/internal/config"
	"github.com/specialistvlad/rectgrid/internal/coordinator"
	"github.com/specialistvlad/rectgrid/internal/grid"
	"github.com/specialistvlad/rectgrid/internal/rect"
)

func oneResult() *coordinator.Result {
	box := rect.Box{RowStart: 1, ColStart: 1, RowEnd: 2, ColEnd: 3}
	return &coordinator.Result{
		Verdict: rect.GlobalVerdict{Status: rect.One, Box: box},
		Partitions: []rect.Entry{
			{Verdict: rect.PartialVerdict{Status: rect.One, Box: box}, RowOffset: 0, Height: 3},
			{Verdict: rect.PartialVerdict{Status: rect.None}, RowOffset: 3, Height: 2},
		},
		Workers: 2,
		Elapsed: 1500 * time.Millisecond,
	}
}

func TestResult_Terse(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, false)

	r.Result(oneResult())

	require.NoError(t, r.Err())
	assert.Equal(t, "Time elapsed: 1.500000 s\nFinal result:\n1 1 1 2 3\n", buf.String())
}

func TestResult_Verbose(t *testing.T) {
	testCases := []struct {
		name   string
		result *coordinator.Result
		want   []string
	}{
		{
			name:   "one",
			result: oneResult(),
			want: []string{
				"One black rectangle!\nCoordinates:\n1 1 2 3\n",
				"Partition 0 rows 0-2: one 1 1 2 3\n",
				"Partition 1 rows 3-4: none\n",
			},
		},
		{
			name:   "none",
			result: &coordinator.Result{Verdict: rect.GlobalVerdict{Status: rect.None}},
			want:   []string{"Final result:\n0 0 0 0 0\n", "No black rectangle!\n"},
		},
		{
			name:   "many",
			result: &coordinator.Result{Verdict: rect.GlobalVerdict{Status: rect.Many}},
			want:   []string{"Final result:\n2 0 0 0 0\n", "More than one black rectangle!\n"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			r := New(&buf, true)
			r.Result(tc.result)
			require.NoError(t, r.Err())
			for _, w := range tc.want {
				assert.Contains(t, buf.String(), w)
			}
		})
	}
}

func TestConfigAndGrid(t *testing.T) {
	m := &config.Model{
		Rows:    2,
		Columns: 3,
		Rules: []grid.PaintRule{
			{Mode: grid.Set, Area: rect.Box{RowStart: 0, ColStart: 0, RowEnd: 0, ColEnd: 1}},
		},
	}
	g, err := m.Rasterize()
	require.NoError(t, err)

	var quiet bytes.Buffer
	q := New(&quiet, false)
	q.Config(m)
	q.Grid(g)
	assert.Empty(t, quiet.String())

	var buf bytes.Buffer
	r := New(&buf, true)
	r.Config(m)
	r.Grid(g)
	require.NoError(t, r.Err())
	assert.Equal(t, "Configuration:\n2 3\n1\n1 0 0 0 1\nRectangle:\n##-\n---\n", buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestReporter_KeepsFirstError(t *testing.T) {
	r := New(failingWriter{}, true)
	r.Result(oneResult())
	require.EqualError(t, r.Err(), "disk full")
}
