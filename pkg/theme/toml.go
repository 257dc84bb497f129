package theme

import (
	"bytes"
	"fmt"
	"regexp"

	"github.com/BurntSushi/toml"
)

// thTOMLTheme is the TOML-serializable representation of a Theme.
//
//	name = "sunset"
//	[bands]
//	very_cold = "#334155"
//	...
//	[text]
//	dark = "#111111"
//	light = "#FAFAFA"
type thTOMLTheme struct {
	Name  string      `toml:"name"`
	Bands thTOMLBands `toml:"bands"`
	Text  thTOMLText  `toml:"text"`
}

type thTOMLBands struct {
	VeryCold string `toml:"very_cold"`
	Cold     string `toml:"cold"`
	Cool     string `toml:"cool"`
	Mild     string `toml:"mild"`
	Warm     string `toml:"warm"`
	Hot      string `toml:"hot"`
}

type thTOMLText struct {
	Dark  string `toml:"dark"`
	Light string `toml:"light"`
}

var thHexColorRegex = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// ValidHex reports whether s is a "#RRGGBB" color.
func ValidHex(s string) bool {
	return thHexColorRegex.MatchString(s)
}

// LoadFromTOML parses a TOML theme definition from raw bytes.
func LoadFromTOML(data []byte) (Theme, error) {
	var tt thTOMLTheme
	if err := toml.Unmarshal(data, &tt); err != nil {
		return Theme{}, fmt.Errorf("theme: parse TOML: %w", err)
	}

	t := Theme{
		Name:      tt.Name,
		VeryCold:  tt.Bands.VeryCold,
		Cold:      tt.Bands.Cold,
		Cool:      tt.Bands.Cool,
		Mild:      tt.Bands.Mild,
		Warm:      tt.Bands.Warm,
		Hot:       tt.Bands.Hot,
		TextDark:  tt.Text.Dark,
		TextLight: tt.Text.Light,
	}

	if err := thValidateTheme(t); err != nil {
		return Theme{}, err
	}

	return t, nil
}

// SaveToTOML serializes a theme to TOML bytes.
func SaveToTOML(t Theme) ([]byte, error) {
	tt := thTOMLTheme{
		Name: t.Name,
		Bands: thTOMLBands{
			VeryCold: t.VeryCold,
			Cold:     t.Cold,
			Cool:     t.Cool,
			Mild:     t.Mild,
			Warm:     t.Warm,
			Hot:      t.Hot,
		},
		Text: thTOMLText{
			Dark:  t.TextDark,
			Light: t.TextLight,
		},
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(tt); err != nil {
		return nil, fmt.Errorf("theme: encode TOML: %w", err)
	}
	return buf.Bytes(), nil
}

// thValidateTheme checks that the name is set and every color is #RRGGBB.
// Fields are checked in a fixed order so the first problem reported is
// stable.
func thValidateTheme(t Theme) error {
	if t.Name == "" {
		return fmt.Errorf("theme: missing required field %q", "name")
	}

	colorFields := []struct{ field, value string }{
		{"bands.very_cold", t.VeryCold},
		{"bands.cold", t.Cold},
		{"bands.cool", t.Cool},
		{"bands.mild", t.Mild},
		{"bands.warm", t.Warm},
		{"bands.hot", t.Hot},
		{"text.dark", t.TextDark},
		{"text.light", t.TextLight},
	}

	for _, f := range colorFields {
		if f.value == "" {
			return fmt.Errorf("theme: missing required field %q", f.field)
		}
		if !ValidHex(f.value) {
			return fmt.Errorf("theme: invalid hex color %q for field %q (expected #RRGGBB)", f.value, f.field)
		}
	}

	return nil
}
