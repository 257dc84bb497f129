package components

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Cells is the number of terminal cells s occupies once styling is
// removed. Wide runes take two cells.
func Cells(s string) int {
	return ansi.StringWidth(s)
}

// Clip cuts styled text down to width cells, ending it with tail when
// anything was dropped. Nothing fits in a non-positive width.
func Clip(s string, width int, tail string) string {
	if width <= 0 {
		return ""
	}
	return ansi.Truncate(s, width, tail)
}

// Pad appends spaces until s fills width cells. Wider text is kept whole.
func Pad(s string, width int) string {
	if gap := width - Cells(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}

// Fit clips or pads s to exactly width cells.
func Fit(s string, width int) string {
	return Pad(Clip(s, width, ""), width)
}

// Plain drops every escape sequence from s.
func Plain(s string) string {
	return ansi.Strip(s)
}
