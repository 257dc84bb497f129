// Package starship renders temperature readings as a single-line prompt
// module for starship and similar prompt engines.
package starship

import (
	"github.com/muesli/termenv"

	"gitlab.com/tinyland/lab/thermo-badge/pkg/temperature"
)

// Config controls the starship output.
type Config struct {
	Icon     string          // shown before the first segment
	MaxWidth int             // max visible width (default 40)
	Profile  termenv.Profile // color profile; termenv.Ascii for plain text
}

// Entry is one reading to show.
type Entry struct {
	Name    string // sensor name, omitted when empty
	Display temperature.Display
	Alert   bool // at or above the sensor's high threshold
}

// Segment represents a single piece of the status line.
type Segment struct {
	Icon  string // emoji or nerd font icon
	Text  string // the actual content
	Color string // hex color
	Bold  bool
}

// ssDefaultMaxWidth is the default maximum visible width of the line.
const ssDefaultMaxWidth = 40

// Render produces a single-line starship module string. Returns an empty
// string if there are no entries (starship hides empty modules).
func Render(cfg Config, entries []Entry) string {
	maxWidth := cfg.MaxWidth
	if maxWidth <= 0 {
		maxWidth = ssDefaultMaxWidth
	}

	segments := make([]*Segment, 0, len(entries))
	for i, e := range entries {
		seg := ssSegment(e)
		if i == 0 {
			seg.Icon = cfg.Icon
		}
		segments = append(segments, seg)
	}

	return ssFormatLine(segments, maxWidth, cfg.Profile)
}

// ssSegment builds the segment for one entry, e.g. "cpu 49.00°C".
func ssSegment(e Entry) *Segment {
	text := e.Display.Label()
	if e.Name != "" {
		text = e.Name + " " + text
	}
	return &Segment{
		Text:  text,
		Color: e.Display.Color(),
		Bold:  e.Alert,
	}
}
