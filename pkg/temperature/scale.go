package temperature

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrMalformedScaleEntry is returned when a custom scale entry does not name
// exactly one temperature unit.
var ErrMalformedScaleEntry = errors.New("color scale entry must have exactly one of celsius, fahrenheit or kelvin")

// ErrUnknownBand is returned when parsing an unrecognized band name.
var ErrUnknownBand = errors.New("unknown scale band")

// Entry is one breakpoint of a piecewise-constant color function.
type Entry struct {
	Kelvin Absolute
	Color  string
}

// Scale is a list of breakpoints sorted ascending by Kelvin. Resolve always
// returns sorted scales; hand-built scales are used as given.
type Scale []Entry

// Band names one entry of the default scale so its color can be replaced
// without restating the breakpoint temperature.
type Band int

const (
	VeryCold Band = iota
	Cold
	Cool
	Mild
	Warm
	Hot
)

var tpBandNames = [...]string{
	VeryCold: "veryCold",
	Cold:     "cold",
	Cool:     "cool",
	Mild:     "mild",
	Warm:     "warm",
	Hot:      "hot",
}

// Bands returns the default scale bands in breakpoint order.
func Bands() []Band {
	return []Band{VeryCold, Cold, Cool, Mild, Warm, Hot}
}

// String returns the camelCase band name ("veryCold").
func (b Band) String() string {
	if b < VeryCold || b > Hot {
		return fmt.Sprintf("Band(%d)", int(b))
	}
	return tpBandNames[b]
}

// ParseBand accepts camelCase, snake_case and kebab-case names,
// case-insensitive: "veryCold", "very_cold", "very-cold".
func ParseBand(s string) (Band, error) {
	norm := strings.ToLower(strings.NewReplacer("_", "", "-", "", " ", "").Replace(s))
	for i, name := range tpBandNames {
		if strings.ToLower(name) == norm {
			return Band(i), nil
		}
	}
	return 0, fmt.Errorf("temperature: %w %q", ErrUnknownBand, s)
}

// MarshalText implements encoding.TextMarshaler.
func (b Band) MarshalText() ([]byte, error) {
	if b < VeryCold || b > Hot {
		return nil, fmt.Errorf("temperature: %w %d", ErrUnknownBand, int(b))
	}
	return []byte(tpBandNames[b]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler so bands can be used as
// map keys in TOML and YAML documents.
func (b *Band) UnmarshalText(text []byte) error {
	parsed, err := ParseBand(string(text))
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}

// defaultScaleCelsius holds the default breakpoints. The first two share
// -10 °C: VeryCold is only shown through the clamp below the first
// breakpoint, and Cold wins from -10 °C upward.
var defaultScaleCelsius = [...]struct {
	celsius float64
	color   string
}{
	VeryCold: {-10, "#94A3B8"},
	Cold:     {-10, "#7DD3FC"},
	Cool:     {5, "#A5F3FC"},
	Mild:     {15, "#A7F3D0"},
	Warm:     {25, "#FCD34D"},
	Hot:      {32, "#F87171"},
}

// DefaultScale returns a fresh copy of the built-in six band scale.
func DefaultScale() Scale {
	s := make(Scale, len(defaultScaleCelsius))
	for i, e := range defaultScaleCelsius {
		c := e.celsius
		s[i] = Entry{Kelvin: Absolute(c + absoluteZeroOffset), Color: e.color}
	}
	return s
}

// ScaleInput is one entry of a caller-supplied scale. Unit tags how Value
// should be read.
type ScaleInput struct {
	Value float64
	Unit  Unit
	Color string
}

// Overrides customizes the resolved scale. Scale replaces the default scale
// entirely and takes precedence; Colors only recolors named default bands.
type Overrides struct {
	Colors map[Band]string
	Scale  []ScaleInput
}

// Equal reports whether o and other resolve from identical inputs.
func (o Overrides) Equal(other Overrides) bool {
	if len(o.Colors) != len(other.Colors) || !slices.Equal(o.Scale, other.Scale) {
		return false
	}
	for band, color := range o.Colors {
		if c, ok := other.Colors[band]; !ok || c != color {
			return false
		}
	}
	return true
}

// Resolve builds the scale described by o:
//   - a non-empty o.Scale is converted to Kelvin and stably sorted;
//   - otherwise non-empty o.Colors recolors bands of the default scale;
//   - otherwise the default scale is returned.
func Resolve(o Overrides) (Scale, error) {
	if len(o.Scale) > 0 {
		s := make(Scale, 0, len(o.Scale))
		for i, in := range o.Scale {
			if !in.Unit.Valid() {
				return nil, fmt.Errorf("temperature: color scale entry %d: %w", i, ErrMalformedScaleEntry)
			}
			k, err := ToKelvin(in.Value, in.Unit)
			if err != nil {
				return nil, fmt.Errorf("temperature: color scale entry %d: %w", i, err)
			}
			s = append(s, Entry{Kelvin: k, Color: in.Color})
		}
		slices.SortStableFunc(s, func(a, b Entry) int {
			switch {
			case a.Kelvin < b.Kelvin:
				return -1
			case a.Kelvin > b.Kelvin:
				return 1
			default:
				return 0
			}
		})
		return s, nil
	}

	s := DefaultScale()
	for band, color := range o.Colors {
		if band < VeryCold || band > Hot {
			continue
		}
		s[band].Color = color
	}
	return s, nil
}
