package cmd

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color Palette
var (
	ColorPrimary = lipgloss.Color("#8B5CF6") // Violet
	ColorAccent  = lipgloss.Color("#F59E0B") // Amber
	ColorMuted   = lipgloss.Color("#6B7280") // Gray
)

var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	MatchStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Italic(true)
)

// highlight renders the runes of s that start at the given byte offsets
// with MatchStyle.
func highlight(s string, positions []int) string {
	marked := make(map[int]bool, len(positions))
	for _, p := range positions {
		marked[p] = true
	}

	var out strings.Builder
	for i, r := range s {
		if marked[i] {
			out.WriteString(MatchStyle.Render(string(r)))
			continue
		}
		out.WriteRune(r)
	}
	return out.String()
}
