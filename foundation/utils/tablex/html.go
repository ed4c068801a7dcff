// File: html.go
// Title: HTML Table Rendering
// Description: Converts a two-dimensional string array into an HTML table,
//              optionally merging blank cells into the row span of the cell
//              above them.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package tablex

import (
	"html"
	"strconv"
	"strings"

	mdwslicex "github.com/msto63/textkit/foundation/utils/slicex"
)

// HTML renders rows as <table border="1"><tbody>...</tbody></table>.
// Cell contents are escaped.
//
// With rowMerge, a non-blank cell spans the following rows whose cell in
// the same column is blank and whose cells to the left are blank as well.
// Blank cells covered that way are omitted, except in the last column,
// which is always emitted. Use slicex.HangClear to prepare such input.
func HTML(rows [][]string, rowMerge bool) string {
	cols := mdwslicex.ColumnCount(rows)

	var b strings.Builder
	b.WriteString(`<table border="1"><tbody>`)
	for i, row := range rows {
		b.WriteString("<tr>")
		for j, cell := range row {
			if !rowMerge {
				writeCell(&b, cell, 1)
				continue
			}
			if cell != "" {
				writeCell(&b, cell, rowSpan(rows, i, j))
			} else if j == cols-1 {
				writeCell(&b, cell, 1)
			}
		}
		b.WriteString("</tr>")
	}
	b.WriteString("</tbody></table>")
	return b.String()
}

// rowSpan counts the rows below (i, j) that continue the cell.
func rowSpan(rows [][]string, i, j int) int {
	span := 1
	for k := i + 1; k < len(rows); k++ {
		if !blankPrefix(rows[k], j) {
			break
		}
		span++
	}
	return span
}

// blankPrefix reports whether row[0..j] are all blank. Missing cells count
// as blank.
func blankPrefix(row []string, j int) bool {
	for c := 0; c <= j && c < len(row); c++ {
		if row[c] != "" {
			return false
		}
	}
	return true
}

func writeCell(b *strings.Builder, cell string, span int) {
	if span > 1 {
		b.WriteString(`<td rowspan="`)
		b.WriteString(strconv.Itoa(span))
		b.WriteString(`">`)
	} else {
		b.WriteString("<td>")
	}
	b.WriteString(html.EscapeString(cell))
	b.WriteString("</td>")
}
