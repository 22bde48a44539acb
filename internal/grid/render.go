package grid

import (
	"bufio"
	"io"
)

// Render writes one line per row using '#' for marked and '-' for unmarked.
func Render(w io.Writer, g *Grid) error {
	bw := bufio.NewWriter(w)
	for i := 0; i < g.rows; i++ {
		for _, c := range g.Row(i) {
			if c == Marked {
				bw.WriteByte(MarkedGlyph)
			} else {
				bw.WriteByte(UnmarkedGlyph)
			}
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
