package temperature

// FallbackColor is returned for an empty scale ("no data" gray).
const FallbackColor = "#94A3B8"

// ColorFor returns the color of the last entry whose temperature is at or
// below k. Temperatures under the first entry take the first color, so the
// result is clamped at both ends.
//
// The scan assumes s is sorted. An unsorted scale is not corrected: the
// clamp-low check only looks at s[0] and the scan keeps the last match.
func ColorFor(k Absolute, s Scale) string {
	if len(s) == 0 {
		return FallbackColor
	}
	if k < s[0].Kelvin {
		return s[0].Color
	}
	idx := 0
	for j, e := range s {
		if e.Kelvin <= k {
			idx = j
		}
	}
	return s[idx].Color
}

// ColorFor is shorthand for ColorFor(k, s).
func (s Scale) ColorFor(k Absolute) string {
	return ColorFor(k, s)
}
