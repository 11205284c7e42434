// math32 is a stand-in for the built-in math package, but the functions take float32s (if not all comparable numbers) instead of float64s.
// Colors in overlaycolor are stored as float32 components, so this keeps conversions out of the calling code.
package math32

import "math"

// Epsilon is the smallest positive non-zero float32.
const Epsilon = float32(math.SmallestNonzeroFloat32)

// Max returns the maximum value out of two provided values.
func Max[number float32 | float64 | int | int32 | int64](x, y number) number {
	if x > y {
		return x
	}
	return y
}

// Clamp clamps a value to the minimum and maximum values provided.
func Clamp[number float32 | float64 | int | int32 | int64](value, min, max number) number {
	if value < min {
		return min
	} else if value > max {
		return max
	}
	return value
}

// Abs returns the absolute value of x.
func Abs(x float32) float32 {
	return float32(math.Abs(float64(x)))
}

// Lerp linearly interpolates from a to b by the percentage given.
func Lerp(a, b, percentage float32) float32 {
	return a + ((b - a) * percentage)
}

// Pow returns x**y, the base-x exponential of y.
func Pow(x, y float32) float32 {
	return float32(math.Pow(float64(x), float64(y)))
}

// Approximately returns if a and b are close enough to be considered the same value. The tolerance scales with the
// magnitude of the larger operand (one part in a million), but never falls below eight times Epsilon, so values around
// zero still compare sensibly.
func Approximately(a, b float32) bool {
	tolerance := Max(1e-6*Max(Abs(a), Abs(b)), Epsilon*8)
	return Abs(b-a) < tolerance
}
