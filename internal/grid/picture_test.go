package grid

import (
	"errors"
	"fmt"
	"strings"
)

var errBadPicture = errors.New("malformed grid picture")

// parsePicture is the inverse of Render. Blank lines and surrounding
// whitespace are ignored; every remaining line must have the same width.
func parsePicture(picture string) (*Grid, error) {
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
	g, err := New(len(lines), columns)
	if err != nil {
		return nil, err
	}
	for i, line := range lines {
		if len(line) != columns {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", errBadPicture, i, len(line), columns)
		}
		for j := 0; j < len(line); j++ {
			switch line[j] {
			case MarkedGlyph:
				g.set(i, j, Marked)
			case UnmarkedGlyph:
			default:
				return nil, fmt.Errorf("%w: unexpected %q at %d,%d", errBadPicture, line[j], i, j)
			}
		}
	}
	return g, nil
}
