package components

import (
	"io"
	"math"
	"strings"
	"testing"

	"github.com/muesli/termenv"

	"gitlab.com/tinyland/lab/thermo-badge/pkg/temperature"
)

func gaugeTestDisplay(t *testing.T, value float64, unit temperature.Unit) temperature.Display {
	t.Helper()
	d, err := temperature.Build(value, unit, temperature.Overrides{})
	if err != nil {
		t.Fatalf("Build(%v %s): %v", value, unit, err)
	}
	return d
}

func TestGaugeCells(t *testing.T) {
	tests := []struct {
		ratio                float64
		width                int
		full, partial, empty int
	}{
		{0, 20, 0, 0, 20},
		{1, 20, 20, 0, 0},
		{0.5, 20, 10, 0, 10},
		{0.53, 10, 5, 2, 4},
		{1.5, 4, 4, 0, 0},
		{-1, 4, 0, 0, 4},
	}
	for _, tt := range tests {
		full, partial, empty := gaugeCells(tt.ratio, tt.width)
		if full != tt.full || partial != tt.partial || empty != tt.empty {
			t.Errorf("gaugeCells(%v, %d) = (%d, %d, %d), want (%d, %d, %d)",
				tt.ratio, tt.width, full, partial, empty, tt.full, tt.partial, tt.empty)
		}
	}
}

func TestThermometerRatio(t *testing.T) {
	s := temperature.DefaultScale()
	// Default range: -10°C - 10 K .. 32°C + 10 K, 62 K wide.
	tests := []struct {
		celsius float64
		want    float64
	}{
		{-50, 0},
		{-20, 0},
		{22, 42.0 / 62},
		{42, 1},
		{100, 1},
	}
	for _, tt := range tests {
		got := ThermometerRatio(temperature.Absolute(tt.celsius+273.15), s)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("ThermometerRatio(%v°C) = %v, want %v", tt.celsius, got, tt.want)
		}
	}
}

func TestThermometerRatioEmptyScale(t *testing.T) {
	if got := ThermometerRatio(300, nil); got != 0 {
		t.Errorf("ThermometerRatio(empty) = %v, want 0", got)
	}
}

func TestThermometerWidth(t *testing.T) {
	r := NewRenderer(io.Discard, termenv.Ascii)
	for _, c := range []float64{-40, 0, 22, 60} {
		out := Thermometer(r, gaugeTestDisplay(t, c, temperature.Celsius), 16, "")
		if w := Cells(out); w != 16 {
			t.Errorf("Thermometer(%v°C) width = %d, want 16 (%q)", c, w, out)
		}
	}
}

func TestThermometerFullAndEmpty(t *testing.T) {
	r := NewRenderer(io.Discard, termenv.Ascii)

	hot := Plain(Thermometer(r, gaugeTestDisplay(t, 90, temperature.Celsius), 8, ""))
	if hot != strings.Repeat("█", 8) {
		t.Errorf("hot thermometer = %q, want 8 full blocks", hot)
	}

	cold := Plain(Thermometer(r, gaugeTestDisplay(t, -90, temperature.Celsius), 8, ""))
	if cold != strings.Repeat(" ", 8) {
		t.Errorf("cold thermometer = %q, want empty track", cold)
	}
}

func TestThermometerUsesDisplayColor(t *testing.T) {
	r := NewRenderer(io.Discard, termenv.TrueColor)
	out := Thermometer(r, gaugeTestDisplay(t, 40, temperature.Celsius), 10, "#000000")
	// #F87171
	if !strings.Contains(out, "38;2;248;113;113") {
		t.Errorf("expected hot foreground in %q", out)
	}
}
