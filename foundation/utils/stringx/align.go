// File: align.go
// Title: List and Column Alignment
// Description: Aligns list items and whitespace separated columns by their
//              display width so that mixed Chinese and Latin text lines up.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package stringx

import (
	"regexp"
	"strconv"
	"strings"

	mdwerror "github.com/msto63/textkit/foundation/core/error"
)

// Align is a horizontal alignment.
type Align int

const (
	// AlignRight pads on the left
	AlignRight Align = iota
	// AlignLeft pads on the right
	AlignLeft
	// AlignCenter pads both sides
	AlignCenter
)

// String returns the one letter form used on the command line
func (a Align) String() string {
	switch a {
	case AlignLeft:
		return "l"
	case AlignCenter:
		return "c"
	default:
		return "r"
	}
}

// ParseAligns parses a string such as "lcr" into one Align per letter.
// Letters are l, c and r in either case.
func ParseAligns(s string) ([]Align, error) {
	aligns := make([]Align, 0, len(s))
	for i, r := range s {
		switch r {
		case 'l', 'L':
			aligns = append(aligns, AlignLeft)
		case 'c', 'C':
			aligns = append(aligns, AlignCenter)
		case 'r', 'R':
			aligns = append(aligns, AlignRight)
		default:
			return nil, mdwerror.Newf("unknown alignment %q", r).
				WithCode(mdwerror.CodeInvalidFormat).
				WithOperation("stringx.ParseAligns").
				WithDetail("position", i)
		}
	}
	return aligns, nil
}

// ListAlignOptions configures ListAlign. The zero value aligns right with
// spaces and counts Chinese characters as two columns.
type ListAlignOptions struct {
	// Aligns holds one alignment per item. A shorter list is extended
	// with its last element, an empty list means AlignRight.
	Aligns []Align
	// Width is a minimum result width. Smaller values are ignored.
	Width int
	// Fill is the padding rune, space by default.
	Fill rune
	// Prefix and Suffix are added after padding.
	Prefix string
	Suffix string
	// ChineseWidth is the width of a Chinese character, 2 by default.
	// Other values pad with ideographic spaces, see WidthAdjust.
	ChineseWidth float64
}

// ListAlign pads every item to the width of the widest one. Newlines in
// items are shown as the two characters \n.
//
//	ListAlign([]string{"a", "哈哈", "ccd"}, ListAlignOptions{})
//	// ["   a", "哈哈", " ccd"]
func ListAlign(items []string, opts ListAlignOptions) ([]string, error) {
	if len(items) == 0 {
		return nil, nil
	}

	fill := opts.Fill
	if fill == 0 {
		fill = ' '
	}
	cw := opts.ChineseWidth
	if cw == 0 {
		cw = 2
	}

	aligns := expandAligns(opts.Aligns, len(items))
	strs := make([]string, len(items))
	widths := make([]int, len(items))

	for i, item := range items {
		item = strings.ReplaceAll(item, "\n", `\n`)
		if cw == 2 {
			strs[i], widths[i] = item, StrWidth(item)
			continue
		}
		adjusted, w, err := WidthAdjust(item, aligns[i], cw)
		if err != nil {
			return nil, mdwerror.Wrap(err, "cannot align list").
				WithOperation("stringx.ListAlign").
				WithDetail("item", i)
		}
		strs[i], widths[i] = adjusted, w
	}

	w := opts.Width
	for _, n := range widths {
		w = max(w, n)
	}

	pad := func(n int) string { return strings.Repeat(string(fill), n) }
	for i, s := range strs {
		t := w - widths[i]
		switch aligns[i] {
		case AlignLeft:
			s = s + pad(t)
		case AlignCenter:
			s = pad(t-t/2) + s + pad(t/2)
		default:
			s = pad(t) + s
		}
		strs[i] = opts.Prefix + s + opts.Suffix
	}
	return strs, nil
}

func expandAligns(aligns []Align, n int) []Align {
	out := make([]Align, n)
	last := AlignRight
	for i := range out {
		if i < len(aligns) {
			last = aligns[i]
		}
		out[i] = last
	}
	return out
}

// RealignOptions configures Realign. Zero values select the defaults.
type RealignOptions struct {
	// LeastBlank is the number of spaces that separates columns, 4 by default.
	LeastBlank int
	// TabWidth is the number of spaces a tab expands to, 4 by default.
	TabWidth int
	// EastAsian measures columns with StrWidth instead of rune count.
	EastAsian bool
	// Separator joins the columns, LeastBlank spaces by default.
	Separator string
}

// Realign reformats text whose columns are separated by at least
// LeastBlank spaces so that every column starts at the same position.
// Lines may have different numbers of columns and are trimmed. The last
// column of a line is never padded.
func Realign(text string, opts RealignOptions) string {
	leastBlank := opts.LeastBlank
	if leastBlank <= 0 {
		leastBlank = 4
	}
	tabWidth := opts.TabWidth
	if tabWidth <= 0 {
		tabWidth = 4
	}
	sep := opts.Separator
	if sep == "" {
		sep = strings.Repeat(" ", leastBlank)
	}
	width := func(s string) int { return len([]rune(s)) }
	if opts.EastAsian {
		width = StrWidth
	}

	s := strings.ReplaceAll(text, "\t", strings.Repeat(" ", tabWidth))
	s = columnGap(leastBlank).ReplaceAllString(s, "\t")

	lines := SplitLines(strings.TrimRight(s, "\r\n"))
	rows := make([][]string, len(lines))
	var maxWidth []int
	for i, line := range lines {
		cells := strings.Split(strings.TrimSpace(line), "\t")
		for j, cell := range cells {
			if j == len(maxWidth) {
				maxWidth = append(maxWidth, 0)
			}
			maxWidth[j] = max(maxWidth[j], width(cell))
		}
		rows[i] = cells
	}

	out := make([]string, len(rows))
	for i, cells := range rows {
		if len(maxWidth) > 1 {
			for j := 0; j < len(cells)-1; j++ {
				cells[j] += strings.Repeat(" ", maxWidth[j]-width(cells[j]))
			}
		}
		out[i] = strings.Join(cells, sep)
	}
	return strings.Join(out, "\n")
}

// columnGap matches n or more spaces. Counts above the regexp repeat
// limit are clamped.
func columnGap(n int) *regexp.Regexp {
	if n == 4 {
		return defaultGap
	}
	n = min(n, 1000)
	return regexp.MustCompile(" {" + strconv.Itoa(n) + ",}")
}

var defaultGap = regexp.MustCompile(" {4,}")
