package temperature

import "fmt"

// Absolute is a temperature in kelvins. Values produced by ToKelvin are
// never negative.
type Absolute float64

// absoluteZeroOffset is the Celsius value of 0 K, negated.
const absoluteZeroOffset = 273.15

// ToKelvin converts value in unit from to Kelvin. It fails with
// ErrInvalidTemperature when the result would be below absolute zero.
func ToKelvin(value float64, from Unit) (Absolute, error) {
	var k float64
	switch from {
	case Kelvin:
		k = value
	case Celsius:
		k = value + absoluteZeroOffset
	case Fahrenheit:
		// Explicit conversion keeps the multiply from being fused with the add.
		k = float64((value-32)*(5.0/9)) + absoluteZeroOffset
	default:
		tpMustBeValid(from)
	}
	if k < 0 {
		return 0, fmt.Errorf("temperature: %g %s: %w", value, from, ErrInvalidTemperature)
	}
	return Absolute(k), nil
}

// FromKelvin converts an absolute temperature to unit to. No validation is
// performed.
func FromKelvin(k Absolute, to Unit) float64 {
	switch to {
	case Kelvin:
		return float64(k)
	case Celsius:
		return float64(k) - absoluteZeroOffset
	case Fahrenheit:
		return float64((float64(k)-absoluteZeroOffset)*(9.0/5)) + 32
	default:
		tpMustBeValid(to)
		return 0
	}
}

// Convert converts value between units by way of Kelvin. Converting a unit
// to itself returns value unchanged and never fails, even for values below
// absolute zero.
func Convert(value float64, from, to Unit) (float64, error) {
	if from == to {
		return value, nil
	}
	k, err := ToKelvin(value, from)
	if err != nil {
		return 0, err
	}
	return FromKelvin(k, to), nil
}
