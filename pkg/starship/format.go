package starship

import (
	"strings"

	"github.com/muesli/termenv"

	"gitlab.com/tinyland/lab/thermo-badge/pkg/components"
)

// ssSeparatorText is placed, dimmed, between segments.
const ssSeparatorText = "│"

// ssColorize paints text in a hex foreground color under profile, leaving
// the background to the prompt theme. An empty color leaves text unstyled.
func ssColorize(text, color string, bold bool, profile termenv.Profile) string {
	style := profile.String(text)
	if color != "" {
		style = style.Foreground(profile.Color(color))
	}
	if bold {
		style = style.Bold()
	}
	return style.String()
}

// ssFormatLine renders segments left to right and stops at the first one
// that would push the line past maxWidth cells. A line whose first
// segment does not fit is empty, which hides the module.
func ssFormatLine(segments []*Segment, maxWidth int, profile termenv.Profile) string {
	if maxWidth <= 0 {
		maxWidth = ssDefaultMaxWidth
	}
	sep := " " + profile.String(ssSeparatorText).Faint().String() + " "
	sepCells := components.Cells(sep)

	var b strings.Builder
	used := 0
	for i, seg := range segments {
		text := seg.Text
		if seg.Icon != "" {
			text = seg.Icon + " " + text
		}
		cost := components.Cells(text)
		if i > 0 {
			cost += sepCells
		}
		if used+cost > maxWidth {
			break
		}
		if i > 0 {
			b.WriteString(sep)
		}
		b.WriteString(ssColorize(text, seg.Color, seg.Bold, profile))
		used += cost
	}
	return b.String()
}
