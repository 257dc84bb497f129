package temperature

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func tpCelsius(c float64) Absolute {
	return Absolute(c + absoluteZeroOffset)
}

// --- ColorFor ---

func TestColorForEmptyScale(t *testing.T) {
	for _, k := range []Absolute{0, 273.15, 1e6} {
		if got := ColorFor(k, nil); got != FallbackColor {
			t.Errorf("ColorFor(%v, empty) = %q, want %q", k, got, FallbackColor)
		}
	}
	if FallbackColor != "#94A3B8" {
		t.Errorf("FallbackColor = %q, want #94A3B8", FallbackColor)
	}
}

func TestColorForSingleEntry(t *testing.T) {
	s := Scale{{Kelvin: 300, Color: "#123456"}}
	for _, k := range []Absolute{0, 299.99, 300, 10000} {
		if got := s.ColorFor(k); got != "#123456" {
			t.Errorf("ColorFor(%v) = %q, want %q", k, got, "#123456")
		}
	}
}

func TestColorForFloorSearch(t *testing.T) {
	s := Scale{
		{Kelvin: 273.15, Color: "A"},
		{Kelvin: 300, Color: "B"},
		{Kelvin: 350, Color: "C"},
	}
	tests := []struct {
		k    Absolute
		want string
	}{
		{200, "A"},
		{273.15, "A"},
		{299.999, "A"},
		{300, "B"},
		{310, "B"},
		{350, "C"},
		{400, "C"},
	}
	for _, tt := range tests {
		if got := ColorFor(tt.k, s); got != tt.want {
			t.Errorf("ColorFor(%v) = %q, want %q", tt.k, got, tt.want)
		}
	}
}

func TestColorForDuplicateBreakpointsTakeLast(t *testing.T) {
	s := Scale{
		{Kelvin: 280, Color: "first"},
		{Kelvin: 280, Color: "second"},
		{Kelvin: 290, Color: "third"},
	}
	if got := ColorFor(280, s); got != "second" {
		t.Errorf("ColorFor(280) = %q, want %q", got, "second")
	}
	if got := ColorFor(279, s); got != "first" {
		t.Errorf("ColorFor(279) = %q, want %q", got, "first")
	}
}

func TestColorForUnsortedScaleIsNotCorrected(t *testing.T) {
	s := Scale{
		{Kelvin: 350, Color: "C"},
		{Kelvin: 273.15, Color: "A"},
		{Kelvin: 300, Color: "B"},
	}
	if got := ColorFor(310, s); got != "C" {
		t.Errorf("ColorFor(310, unsorted) = %q, want %q", got, "C")
	}
	if got := ColorFor(360, s); got != "B" {
		t.Errorf("ColorFor(360, unsorted) = %q, want %q", got, "B")
	}
}

// --- Default scale ---

func TestDefaultScale(t *testing.T) {
	want := Scale{
		{Kelvin: tpCelsius(-10), Color: "#94A3B8"},
		{Kelvin: tpCelsius(-10), Color: "#7DD3FC"},
		{Kelvin: tpCelsius(5), Color: "#A5F3FC"},
		{Kelvin: tpCelsius(15), Color: "#A7F3D0"},
		{Kelvin: tpCelsius(25), Color: "#FCD34D"},
		{Kelvin: tpCelsius(32), Color: "#F87171"},
	}
	if diff := cmp.Diff(want, DefaultScale()); diff != "" {
		t.Errorf("DefaultScale() mismatch (-want +got):\n%s", diff)
	}
}

func TestDefaultScaleReturnsCopy(t *testing.T) {
	s := DefaultScale()
	s[0].Color = "#000000"
	if DefaultScale()[0].Color != "#94A3B8" {
		t.Error("mutating a DefaultScale() result leaked into later calls")
	}
}

func TestDefaultScaleBands(t *testing.T) {
	s := DefaultScale()
	tests := []struct {
		celsius float64
		want    string
	}{
		{-30, "#94A3B8"}, // clamp below the first breakpoint
		{-10, "#7DD3FC"}, // duplicate breakpoint: the later one wins
		{0, "#7DD3FC"},
		{5, "#A5F3FC"},
		{22, "#A7F3D0"},
		{25, "#FCD34D"},
		{40, "#F87171"},
	}
	for _, tt := range tests {
		if got := s.ColorFor(tpCelsius(tt.celsius)); got != tt.want {
			t.Errorf("default scale at %v°C = %q, want %q", tt.celsius, got, tt.want)
		}
	}
}

// --- Resolve ---

func TestResolveNoOverrides(t *testing.T) {
	got, err := Resolve(Overrides{})
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if diff := cmp.Diff(DefaultScale(), got); diff != "" {
		t.Errorf("Resolve({}) mismatch (-want +got):\n%s", diff)
	}
}

func TestResolveBandColors(t *testing.T) {
	got, err := Resolve(Overrides{Colors: map[Band]string{Warm: "#X"}})
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	want := DefaultScale()
	want[Warm].Color = "#X"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Resolve(warm) mismatch (-want +got):\n%s", diff)
	}
}

func TestResolveVeryColdOverrideShowsBelowFirstBreakpoint(t *testing.T) {
	s, err := Resolve(Overrides{Colors: map[Band]string{VeryCold: "#000000", Cold: "#111111"}})
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if got := s.ColorFor(tpCelsius(-20)); got != "#000000" {
		t.Errorf("ColorFor(-20°C) = %q, want %q", got, "#000000")
	}
	if got := s.ColorFor(tpCelsius(-10)); got != "#111111" {
		t.Errorf("ColorFor(-10°C) = %q, want %q", got, "#111111")
	}
}

func TestResolveCustomScaleIsSorted(t *testing.T) {
	got, err := Resolve(Overrides{Scale: []ScaleInput{
		{Value: 40, Unit: Celsius, Color: "r"},
		{Value: -20, Unit: Celsius, Color: "b"},
	}})
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	want := Scale{
		{Kelvin: tpCelsius(-20), Color: "b"},
		{Kelvin: tpCelsius(40), Color: "r"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Resolve(custom) mismatch (-want +got):\n%s", diff)
	}
}

func TestResolveCustomScaleMixedUnitsAndStableTies(t *testing.T) {
	got, err := Resolve(Overrides{Scale: []ScaleInput{
		{Value: 300, Unit: Kelvin, Color: "k300"},
		{Value: 32, Unit: Fahrenheit, Color: "freezing-f"},
		{Value: 0, Unit: Celsius, Color: "freezing-c"},
	}})
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	var colors []string
	for _, e := range got {
		colors = append(colors, e.Color)
	}
	want := []string{"freezing-f", "freezing-c", "k300"}
	if diff := cmp.Diff(want, colors); diff != "" {
		t.Errorf("resolved order mismatch (-want +got):\n%s", diff)
	}
}

func TestResolveCustomScaleIgnoresColors(t *testing.T) {
	got, err := Resolve(Overrides{
		Colors: map[Band]string{Hot: "#FFFFFF"},
		Scale:  []ScaleInput{{Value: 10, Unit: Celsius, Color: "only"}},
	})
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if len(got) != 1 || got[0].Color != "only" {
		t.Errorf("Resolve = %+v, want the single custom entry", got)
	}
}

func TestResolveMalformedEntry(t *testing.T) {
	_, err := Resolve(Overrides{Scale: []ScaleInput{
		{Value: 10, Unit: Celsius, Color: "ok"},
		{Value: 10, Unit: Unit(7), Color: "bad"},
	}})
	if !errors.Is(err, ErrMalformedScaleEntry) {
		t.Errorf("Resolve error = %v, want ErrMalformedScaleEntry", err)
	}
}

func TestResolveEntryBelowAbsoluteZero(t *testing.T) {
	_, err := Resolve(Overrides{Scale: []ScaleInput{{Value: -500, Unit: Fahrenheit, Color: "x"}}})
	if !errors.Is(err, ErrInvalidTemperature) {
		t.Errorf("Resolve error = %v, want ErrInvalidTemperature", err)
	}
}

// --- Band ---

func TestParseBand(t *testing.T) {
	tests := map[string]Band{
		"veryCold":  VeryCold,
		"very_cold": VeryCold,
		"very-cold": VeryCold,
		"COLD":      Cold,
		"cool":      Cool,
		"mild":      Mild,
		"Warm":      Warm,
		"hot":       Hot,
	}
	for in, want := range tests {
		got, err := ParseBand(in)
		if err != nil {
			t.Errorf("ParseBand(%q) error: %v", in, err)
			continue
		}
		if got != want {
			t.Errorf("ParseBand(%q) = %s, want %s", in, got, want)
		}
	}
	if _, err := ParseBand("scorching"); !errors.Is(err, ErrUnknownBand) {
		t.Errorf("ParseBand(scorching) error = %v, want ErrUnknownBand", err)
	}
}

func TestOverridesEqual(t *testing.T) {
	a := Overrides{Colors: map[Band]string{Hot: "#F00"}}
	b := Overrides{Colors: map[Band]string{Hot: "#F00"}}
	if !a.Equal(b) {
		t.Error("identical overrides should be equal")
	}
	b.Colors[Hot] = "#E00"
	if a.Equal(b) {
		t.Error("overrides with different colors should not be equal")
	}
	if !(Overrides{}).Equal(Overrides{Colors: map[Band]string{}}) {
		t.Error("nil and empty color maps should be equal")
	}
	if (Overrides{}).Equal(Overrides{Scale: []ScaleInput{{Value: 1, Unit: Kelvin}}}) {
		t.Error("overrides with different scales should not be equal")
	}
}
