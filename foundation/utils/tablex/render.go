// File: render.go
// Title: Terminal Table Rendering
// Description: Renders headers and rows as a bordered terminal table with
//              East Asian aware cell shortening and an optional index column.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package tablex

import (
	"sort"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	mdwerror "github.com/msto63/textkit/foundation/core/error"
	mdwslicex "github.com/msto63/textkit/foundation/utils/slicex"
	mdwstringx "github.com/msto63/textkit/foundation/utils/stringx"
)

// DefaultMaxColWidth is the cell width limit used by DefaultOptions.
const DefaultMaxColWidth = 50

// Options controls Render.
type Options struct {
	// MaxColWidth limits every cell when Shorten is set. Cells are cut with
	// stringx.EastAsianShorten and therefore stay below this width.
	MaxColWidth int

	// Shorten enables cutting of long cells. Newlines are collapsed as well.
	Shorten bool

	// Index prepends a column with the 0-based row number.
	Index bool

	// Border names the border style, see Borders. Empty means "normal".
	Border string

	// HeaderStyle is applied to the header row.
	HeaderStyle lipgloss.Style
}

// DefaultOptions returns shortened cells with a normal border and bold
// headers.
func DefaultOptions() Options {
	return Options{
		MaxColWidth: DefaultMaxColWidth,
		Shorten:     true,
		Border:      "normal",
		HeaderStyle: lipgloss.NewStyle().Bold(true),
	}
}

var borders = map[string]lipgloss.Border{
	"normal":   lipgloss.NormalBorder(),
	"rounded":  lipgloss.RoundedBorder(),
	"thick":    lipgloss.ThickBorder(),
	"double":   lipgloss.DoubleBorder(),
	"block":    lipgloss.BlockBorder(),
	"ascii":    lipgloss.ASCIIBorder(),
	"markdown": lipgloss.MarkdownBorder(),
	"hidden":   lipgloss.HiddenBorder(),
}

// Borders returns the accepted border names in sorted order.
func Borders() []string {
	names := make([]string, 0, len(borders))
	for name := range borders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Render draws headers and rows as a table. Rows of different length are
// padded with empty cells. Headers may be nil.
func Render(headers []string, rows [][]string, opts Options) (string, error) {
	name := opts.Border
	if name == "" {
		name = "normal"
	}
	border, ok := borders[name]
	if !ok {
		return "", mdwerror.Newf("unknown border %q", name).
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("tablex.Render").
			WithDetail("border", name).
			WithDetail("accepted", Borders())
	}

	cell := func(s string) string {
		if opts.Shorten && opts.MaxColWidth > 0 {
			return mdwstringx.EastAsianShorten(s, opts.MaxColWidth, mdwstringx.DefaultPlaceholder)
		}
		return s
	}

	body := mdwslicex.EnsureRect(rows, "")
	body = mdwslicex.Map(body, func(row []string) []string {
		return mdwslicex.Map(row, cell)
	})
	if opts.Index {
		body = mdwslicex.MapWithIndex(body, func(i int, row []string) []string {
			return append([]string{strconv.Itoa(i)}, row...)
		})
	}

	t := table.New().
		Border(border).
		StyleFunc(func(row, col int) lipgloss.Style {
			style := lipgloss.NewStyle().Padding(0, 1)
			if row == table.HeaderRow {
				return opts.HeaderStyle.Padding(0, 1)
			}
			if opts.Index && col == 0 {
				return style.Align(lipgloss.Right)
			}
			return style
		}).
		Rows(body...)

	if headers != nil {
		h := mdwslicex.Map(headers, cell)
		if opts.Index {
			h = append([]string{""}, h...)
		}
		t = t.Headers(h...)
	}

	return t.String(), nil
}
