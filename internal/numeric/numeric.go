// Package numeric provides the small arithmetic helpers shared by the
// scattering kernels.
package numeric

// Clip limits value to the inclusive range [lo, hi].
func Clip(value, lo, hi float64) float64 {
	if value < lo {
		return lo
	}

	if value > hi {
		return hi
	}

	return value
}

// Square returns x*x.
func Square(x float64) float64 {
	return x * x
}

// Cube returns x*x*x.
func Cube(x float64) float64 {
	return x * x * x
}
