// Package sphere provides the uniform-sphere scattering primitives shared by
// the particle and lattice models: volume, form factor and the spherical
// Bessel kernel 3*j1(x)/x.
package sphere

import (
	"math"

	"github.com/cwbudde/algo-scatter/internal/numeric"
)

// fourPiThirds is the unit-sphere volume 4*pi/3.
const fourPiThirds = 4.0 / 3.0 * math.Pi

// bessel3J1xCutoff is the crossover below which Bessel3J1x switches to its
// Taylor expansion. The closed form loses precision to cancellation as x->0
// while the series is accurate to double precision up to this point.
const bessel3J1xCutoff = 0.1

// Volume returns the volume of a sphere of radius r.
func Volume(r float64) float64 {
	return fourPiThirds * numeric.Cube(r)
}

// Bessel3J1x returns 3*j1(x)/x for the spherical Bessel function j1,
// with the correct limit of 1 at x = 0. The sign of x is ignored.
func Bessel3J1x(x float64) float64 {
	if math.Abs(x) < bessel3J1xCutoff {
		x2 := x * x
		return 1.0 + x2*(-3.0/30.0+x2*(3.0/840.0+x2*(-3.0/45360.0)))
	}

	sin, cos := math.Sincos(x)
	return 3.0 * (sin/x - cos) / (x * x)
}

// Fq returns the scattering amplitude of a uniform sphere of radius r with
// the given scattering length density contrast against the solvent.
func Fq(q, r, sld, solventSLD float64) float64 {
	return (sld - solventSLD) * Volume(r) * Bessel3J1x(q*r)
}

// Form returns the sphere form factor P(q), the squared amplitude scaled by
// 1e-4 to convert from SLD units of 1e-6/Ang^2 to an intensity in 1/cm.
func Form(q, r, sld, solventSLD float64) float64 {
	return 1.0e-4 * numeric.Square(Fq(q, r, sld, solventSLD))
}
