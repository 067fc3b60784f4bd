package qurecode

import (
	"fmt"
	"strings"
)

// HTML renders the symbol as a single self-contained <table> string with
// inline per-cell styling; no stylesheet is required. The per-cell pixel
// size is the integer quotient of the approximate size option and the module
// count, so the emitted table can come out slightly narrower than requested.
//
// The margin option is accepted but the table renderer does not emit margin
// cells around the grid; see WithMargin.
func (q *QRCode) HTML(opts ...Option) string {
	o := applyOptions(opts...)

	cellPx := o.approxSizePx / q.Width()
	if cellPx < 1 {
		cellPx = 1
	}

	var b strings.Builder
	b.WriteString(`<table style="border-collapse:collapse;border-spacing:0">`)
	for _, row := range q.matrix {
		b.WriteString("<tr>")
		for _, dark := range row {
			color := o.backgroundColor
			if dark {
				color = o.foregroundColor
			}
			fmt.Fprintf(&b, `<td style="width:%dpx;height:%dpx;background-color:%s"></td>`,
				cellPx, cellPx, color)
		}
		b.WriteString("</tr>")
	}
	b.WriteString("</table>")
	return b.String()
}
