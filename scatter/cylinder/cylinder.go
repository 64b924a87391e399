// Package cylinder implements the form factor of a right circular cylinder
// with uniform scattering length density, both for a single orientation and
// orientation-averaged over a randomly oriented ensemble.
package cylinder

import (
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-scatter/internal/numeric"
	"github.com/cwbudde/algo-scatter/internal/quadrature"
)

// Volume returns the volume of a cylinder with the given radius and length.
func Volume(radius, length float64) float64 {
	return math.Pi * radius * radius * length
}

// Bessel2J1x returns 2*J1(x)/x for the cylindrical Bessel function J1, with
// the correct limit of 1 at x = 0.
func Bessel2J1x(x float64) float64 {
	if x == 0 {
		return 1
	}

	return 2 * math.J1(x) / x
}

// sinc returns sin(x)/x with the limit 1 at x = 0.
func sinc(x float64) float64 {
	if x == 0 {
		return 1
	}

	return math.Sin(x) / x
}

// Fq returns the normalized single-orientation cylinder amplitude at
// scattering magnitude q, where alpha is the angle between the cylinder
// axis and the scattering vector. The contrast-volume prefactor is applied
// by the caller.
func Fq(q, sinAlpha, cosAlpha, radius, length float64) float64 {
	return sinc(0.5*q*length*cosAlpha) * Bessel2J1x(q*radius*sinAlpha)
}

// Iq returns the orientation-averaged scattering intensity of randomly
// oriented cylinders, averaged over alpha in [0, pi/2] with a 76-point
// Gauss-Legendre rule and normalized by the cylinder volume. The 1e-4
// factor converts SLD units of 1e-6/Ang^2 to an intensity in 1/cm.
func Iq(q, radius, length, sld, solventSLD float64) float64 {
	z, wt := quadrature.Table76()

	// Map the [-1, 1] nodes to alpha in [0, pi/2].
	const alphaM = math.Pi / 4

	fsq := make([]float64, len(z))
	for i := range z {
		alpha := (z[i] + 1) * alphaM
		sinAlpha, cosAlpha := math.Sincos(alpha)

		f := Fq(q, sinAlpha, cosAlpha, radius, length)
		fsq[i] = f * f * sinAlpha
	}

	total := vecmath.DotProduct(wt, fsq) * alphaM

	s := (sld - solventSLD) * Volume(radius, length)

	return 1.0e-4 * numeric.Square(s) * total / Volume(radius, length)
}

// EquivalentRadius returns the radius of a sphere with the same second
// virial coefficient, used as the effective interaction radius when
// combining the cylinder with a structure factor.
func EquivalentRadius(radius, length float64) float64 {
	ddd := 0.75 * radius * (2*radius*length + (length+radius)*(length+math.Pi*radius))
	return 0.5 * math.Cbrt(ddd)
}
