package qurecode

import "strings"

const (
	asciiDark  = 'X'
	asciiLight = ' '
)

// ASCII renders the symbol as a plain-text grid: one character per module,
// one line per row, 'X' for dark and space for light. The grid is built from
// the same cached matrix the HTML and raster renderers read, so the three
// output modes always agree on the dark/light classification of every cell.
func (q *QRCode) ASCII() string {
	var b strings.Builder
	b.Grow(len(q.matrix) * (len(q.matrix) + 1))
	for _, row := range q.matrix {
		for _, dark := range row {
			if dark {
				b.WriteByte(asciiDark)
			} else {
				b.WriteByte(asciiLight)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// String implements fmt.Stringer as an alias for ASCII, so a QRCode printed
// with the fmt verbs shows up as a scannable grid.
func (q *QRCode) String() string {
	return q.ASCII()
}
