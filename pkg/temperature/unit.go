// Package temperature converts between Celsius, Fahrenheit and Kelvin and
// maps temperatures onto piecewise color scales. Everything here is pure:
// values in, values out, no shared state beyond the optional Memo.
//
// All color scales are stored in Kelvin so a single scale can serve any
// display unit.
package temperature

import (
	"errors"
	"fmt"
	"strings"
)

// Unit identifies a temperature scale.
type Unit int

const (
	Celsius Unit = iota
	Fahrenheit
	Kelvin
)

var (
	// ErrInvalidTemperature is returned when a value lies below absolute zero.
	ErrInvalidTemperature = errors.New("kelvin cannot be negative")

	// ErrUnknownUnit is returned when parsing an unrecognized unit name.
	ErrUnknownUnit = errors.New("unknown temperature unit")
)

// tpUnitNames maps units to their config/flag spelling.
var tpUnitNames = [...]string{
	Celsius:    "celsius",
	Fahrenheit: "fahrenheit",
	Kelvin:     "kelvin",
}

// tpUnitSymbols is the suffix shown after a formatted value. Kelvin carries
// a leading space and no degree sign.
var tpUnitSymbols = [...]string{
	Celsius:    "°C",
	Fahrenheit: "°F",
	Kelvin:     " K",
}

var tpUnitFullNames = [...]string{
	Celsius:    "Celsius",
	Fahrenheit: "Fahrenheit",
	Kelvin:     "Kelvin",
}

// Units returns every supported unit in cycle order.
func Units() []Unit {
	return []Unit{Celsius, Fahrenheit, Kelvin}
}

// Valid reports whether u is one of the three supported units.
func (u Unit) Valid() bool {
	return u >= Celsius && u <= Kelvin
}

// String returns the lowercase name used in config files ("celsius").
func (u Unit) String() string {
	if !u.Valid() {
		return fmt.Sprintf("Unit(%d)", int(u))
	}
	return tpUnitNames[u]
}

// Symbol returns the display suffix: "°C", "°F" or " K".
func (u Unit) Symbol() string {
	tpMustBeValid(u)
	return tpUnitSymbols[u]
}

// Name returns the capitalized unit name used in accessible descriptions.
func (u Unit) Name() string {
	tpMustBeValid(u)
	return tpUnitFullNames[u]
}

// Next returns the unit that follows u in the Celsius → Fahrenheit → Kelvin
// cycle.
func (u Unit) Next() Unit {
	tpMustBeValid(u)
	return (u + 1) % 3
}

// ParseUnit accepts full names, single letters and symbols, case-insensitive:
// "celsius", "c", "°c", "fahrenheit", "f", "°f", "kelvin", "k".
func ParseUnit(s string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "celsius", "c", "°c":
		return Celsius, nil
	case "fahrenheit", "f", "°f":
		return Fahrenheit, nil
	case "kelvin", "k":
		return Kelvin, nil
	default:
		return 0, fmt.Errorf("temperature: %w %q", ErrUnknownUnit, s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (u Unit) MarshalText() ([]byte, error) {
	if !u.Valid() {
		return nil, fmt.Errorf("temperature: %w %d", ErrUnknownUnit, int(u))
	}
	return []byte(tpUnitNames[u]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler for TOML and YAML.
func (u *Unit) UnmarshalText(text []byte) error {
	parsed, err := ParseUnit(string(text))
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}

// Set implements pflag.Value so a Unit can be bound directly to a flag.
func (u *Unit) Set(s string) error {
	return u.UnmarshalText([]byte(s))
}

// Type implements pflag.Value.
func (u *Unit) Type() string {
	return "unit"
}

// tpMustBeValid panics on an out-of-range unit. Units only come from the
// constants above or ParseUnit, so this is a programming error.
func tpMustBeValid(u Unit) {
	if !u.Valid() {
		panic(fmt.Sprintf("temperature: unexpected unit %d", int(u)))
	}
}
