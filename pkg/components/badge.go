// Package components renders temperature displays as terminal badges,
// rows of badges and thermometer bars. Colors go through a lipgloss
// renderer so output degrades with the terminal's color profile.
package components

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"gitlab.com/tinyland/lab/thermo-badge/pkg/temperature"
	"gitlab.com/tinyland/lab/thermo-badge/pkg/theme"
)

// BadgeStyle configures the appearance of a single badge.
type BadgeStyle struct {
	Padding int  // cells of horizontal padding on each side
	Bold    bool // bold label text
	Theme   theme.Theme
}

// DefaultBadgeStyle returns a BadgeStyle with one cell of padding, bold
// text and the current theme.
func DefaultBadgeStyle() BadgeStyle {
	return BadgeStyle{
		Padding: 1,
		Bold:    true,
		Theme:   theme.Current,
	}
}

// NewRenderer returns a lipgloss renderer writing to w with a fixed color
// profile. Use termenv.Ascii for plain output.
func NewRenderer(w io.Writer, profile termenv.Profile) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(profile)
	return r
}

// Badge renders the display label on its band color with contrasting text.
func Badge(r *lipgloss.Renderer, d temperature.Display, st BadgeStyle) string {
	bg := d.Color()
	fg := theme.TextColorFor(st.Theme, bg)

	pad := st.Padding
	if pad < 0 {
		pad = 0
	}

	return r.NewStyle().
		Background(lipgloss.Color(bg)).
		Foreground(lipgloss.Color(fg)).
		Bold(st.Bold).
		Padding(0, pad).
		Render(d.Label())
}

// RowItem is one labeled display in a row.
type RowItem struct {
	Name    string
	Display temperature.Display
}

// RowSeparator sits between row items.
const RowSeparator = "  "

// RenderRow renders "name badge" pairs on one line. Names are faint. A
// positive width truncates the row with an ellipsis.
func RenderRow(r *lipgloss.Renderer, items []RowItem, st BadgeStyle, width int) string {
	if len(items) == 0 {
		return ""
	}

	nameStyle := r.NewStyle().Faint(true)
	parts := make([]string, 0, len(items))
	for _, it := range items {
		badge := Badge(r, it.Display, st)
		if it.Name == "" {
			parts = append(parts, badge)
			continue
		}
		parts = append(parts, nameStyle.Render(it.Name)+" "+badge)
	}

	row := strings.Join(parts, RowSeparator)
	if width > 0 {
		row = Clip(row, width, "…")
	}
	return row
}
