// Package colorspace converts color channel values between the 8-bit octet
// interval [0, 255] and the decimal interval [0, 1].
//
// Every function is total: out-of-range input saturates to the nearest bound
// instead of failing.
package colorspace

import "math"

const (
	// MaxOctet is the largest value of an 8-bit channel.
	MaxOctet = 255
)

// BoundedDecimal clamps v to [0, 1].
//
// BoundedDecimal(-1.5) is 0, BoundedDecimal(95.7) is 1 and
// BoundedDecimal(0.579) is 0.579.
func BoundedDecimal(v float32) float32 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}

// BoundedOctet clamps v to [0, 255].
func BoundedOctet(v int) int {
	switch {
	case v < 0:
		return 0
	case v > MaxOctet:
		return MaxOctet
	default:
		return v
	}
}

// OctetToDecimal maps an octet to the decimal interval.
// OctetToDecimal(128) is 128/255, OctetToDecimal(458) is 1.
func OctetToDecimal(v int) float32 {
	return BoundedDecimal(float32(v) / MaxOctet)
}

// DecimalToOctet maps a decimal value to a rounded, bounded octet.
// 0.579*255 = 147.645 rounds to 148.
func DecimalToOctet(v float32) int {
	return BoundedOctet(Round(v * MaxOctet))
}

// Round rounds v to the nearest integer with ties going up, saturating at
// the int32 range. NaN rounds to 0.
func Round(v float32) int {
	f := float64(v)
	switch {
	case math.IsNaN(f):
		return 0
	case f >= math.MaxInt32:
		return math.MaxInt32
	case f <= math.MinInt32:
		return math.MinInt32
	}
	return int(math.Floor(f + 0.5))
}
