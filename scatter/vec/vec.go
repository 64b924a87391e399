// Package vec provides the fixed-size 3-vector algebra used by the magnetic
// scattering kernels.
//
// All operations are pure value-to-value functions; no vector is ever
// mutated in place.
package vec

import "math"

// Vec is a real 3-vector.
type Vec struct {
	X, Y, Z float64
}

// New returns the vector (x, y, z).
func New(x, y, z float64) Vec {
	return Vec{X: x, Y: y, Z: z}
}

// Add returns v + w.
func (v Vec) Add(w Vec) Vec {
	return Vec{v.X + w.X, v.Y + w.Y, v.Z + w.Z}
}

// Sub returns v - w.
func (v Vec) Sub(w Vec) Vec {
	return Vec{v.X - w.X, v.Y - w.Y, v.Z - w.Z}
}

// Scale returns a*v.
func (v Vec) Scale(a float64) Vec {
	return Vec{a * v.X, a * v.Y, a * v.Z}
}

// Dot returns the inner product of v and w.
func (v Vec) Dot(w Vec) float64 {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z
}

// Norm returns the Euclidean length of v.
func (v Vec) Norm() float64 {
	return math.Sqrt(v.Dot(v))
}

// Orth returns the component of v perpendicular to w:
//
//	v - (v·w / w·w) w
//
// w must be non-zero; a zero w produces NaN components.
func (v Vec) Orth(w Vec) Vec {
	s := v.Dot(w) / w.Dot(w)
	return v.Sub(w.Scale(s))
}

// Magnitude returns the Euclidean length of the vector (x, y, z).
func Magnitude(x, y, z float64) float64 {
	return Vec{x, y, z}.Norm()
}
