package components

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/thermo-badge/pkg/temperature"
)

// Block characters for sub-cell precision (8 levels per cell).
var gaugeBlocks = [9]rune{
	' ',      // 0/8 empty
	'\u258F', // 1/8 ▏
	'\u258E', // 2/8 ▎
	'\u258D', // 3/8 ▍
	'\u258C', // 4/8 ▌
	'\u258B', // 5/8 ▋
	'\u258A', // 6/8 ▊
	'\u2589', // 7/8 ▉
	'\u2588', // 8/8 █
}

// ThermometerMargin extends the bar range past the outermost breakpoints.
const ThermometerMargin temperature.Absolute = 10

// DefaultThermometerEmpty is the color of the unfilled track.
const DefaultThermometerEmpty = "#333333"

// Thermometer renders d as a horizontal bar filled in the display color.
// The bar spans the outermost breakpoints of d's scale plus
// ThermometerMargin on each side.
func Thermometer(r *lipgloss.Renderer, d temperature.Display, width int, emptyColor string) string {
	if width <= 0 {
		width = 20
	}
	if emptyColor == "" {
		emptyColor = DefaultThermometerEmpty
	}

	full, partial, empty := gaugeCells(ThermometerRatio(d.Kelvin, d.Scale), width)

	var b strings.Builder
	fill := r.NewStyle().Foreground(lipgloss.Color(d.Color())).Background(lipgloss.Color(emptyColor))
	if full > 0 {
		b.WriteString(fill.Render(strings.Repeat(string(gaugeBlocks[8]), full)))
	}
	if partial > 0 {
		b.WriteString(fill.Render(string(gaugeBlocks[partial])))
	}
	if empty > 0 {
		b.WriteString(r.NewStyle().Background(lipgloss.Color(emptyColor)).Render(strings.Repeat(" ", empty)))
	}
	return b.String()
}

// ThermometerRatio places k within the scale's range as a value in [0, 1].
// An empty scale yields 0.
func ThermometerRatio(k temperature.Absolute, s temperature.Scale) float64 {
	if len(s) == 0 {
		return 0
	}
	lo, hi := s[0].Kelvin, s[0].Kelvin
	for _, e := range s[1:] {
		lo = min(lo, e.Kelvin)
		hi = max(hi, e.Kelvin)
	}
	lo -= ThermometerMargin
	hi += ThermometerMargin

	ratio := float64((k - lo) / (hi - lo))
	return math.Max(0, math.Min(1, ratio))
}

// gaugeCells splits a ratio into full cells, the eighths of a partial
// cell, and empty cells.
func gaugeCells(ratio float64, width int) (full, partial, empty int) {
	totalUnits := width * 8
	filledUnits := int(math.Round(ratio * float64(totalUnits)))
	filledUnits = max(0, min(totalUnits, filledUnits))

	full = filledUnits / 8
	partial = filledUnits % 8
	empty = width - full
	if partial > 0 {
		empty--
	}
	return full, partial, max(0, empty)
}
