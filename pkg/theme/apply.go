package theme

import (
	"maps"

	"github.com/lucasb-eyer/go-colorful"

	"gitlab.com/tinyland/lab/thermo-badge/pkg/temperature"
)

// thLightnessCutoff is the CIE L* (0..1) above which a background counts
// as light.
const thLightnessCutoff = 0.6

// Apply layers the theme's band colors under o. Colors already present in
// o win. A custom scale in o is returned untouched since it ignores band
// colors.
func Apply(t Theme, o temperature.Overrides) temperature.Overrides {
	if len(o.Scale) > 0 {
		return o
	}
	colors := t.Colors()
	maps.Copy(colors, o.Colors)
	return temperature.Overrides{Colors: colors}
}

// TextColorFor picks TextDark or TextLight for legible text on bg.
// Unparseable backgrounds get TextLight.
func TextColorFor(t Theme, bg string) string {
	if IsLight(bg) {
		return t.TextDark
	}
	return t.TextLight
}

// IsLight reports whether a hex color is perceptually light.
func IsLight(hex string) bool {
	c, err := colorful.Hex(hex)
	if err != nil {
		return false
	}
	l, _, _ := c.Lab()
	return l > thLightnessCutoff
}
