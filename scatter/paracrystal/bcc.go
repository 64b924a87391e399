package paracrystal

import (
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-scatter/internal/numeric"
	"github.com/cwbudde/algo-scatter/internal/quadrature"
	"github.com/cwbudde/algo-scatter/scatter/sphere"
)

// Params describes a BCC paracrystal of spherical particles.
type Params struct {
	// DNN is the nearest-neighbour distance.
	DNN float64
	// DFactor is the Debye-Waller-like paracrystalline distortion factor.
	DFactor float64
	// Radius is the sphere radius.
	Radius float64
	// SLD and SolventSLD set the scattering contrast of the spheres, in
	// units of 1e-6/Ang^2.
	SLD        float64
	SolventSLD float64
}

// SqBCC returns the BCC paracrystal structure factor at the reciprocal-space
// coordinates (qa, qb, qc) along the three cubic axes.
//
// The lattice sum arguments combine the axes pairwise to account for the
// two-point basis of the BCC cell. The closed form is evaluated as
//
//	numerator:   (1 - exp(a)^2)^3        => -expm1(-2 arg)^3
//	denominator: prod over k of
//	             1 - 2 cos(x_k) exp(a) + exp(a)^2
//	                                     => (exp(a) - 2 cos(x_k)) exp(a) + 1
//
// which avoids overflow of the equivalent sinh/cosh form for large arg and
// keeps precision through expm1 for small arg.
func SqBCC(qa, qb, qc, dnn, dFactor float64) float64 {
	a1 := +qa - qc + qb
	a2 := +qa + qc - qb
	a3 := -qa + qc + qb

	halfDNN := 0.5 * dnn
	arg := 0.5 * numeric.Square(halfDNN*dFactor) * (a1*a1 + a2*a2 + a3*a3)

	expArg := math.Exp(-arg)

	return -numeric.Cube(math.Expm1(-2.0*arg)) /
		(((expArg-2.0*math.Cos(halfDNN*a1))*expArg + 1.0) *
			((expArg-2.0*math.Cos(halfDNN*a2))*expArg + 1.0) *
			((expArg-2.0*math.Cos(halfDNN*a3))*expArg + 1.0))
}

// sqBCCHyperbolic is the algebraically equivalent sinh/cosh formulation of
// SqBCC. It overflows for large arg and is kept only as the reference for
// the equivalence test.
func sqBCCHyperbolic(qa, qb, qc, dnn, dFactor float64) float64 {
	a1 := +qa - qc + qb
	a2 := +qa + qc - qb
	a3 := -qa + qc + qb

	halfDNN := 0.5 * dnn
	arg := 0.5 * numeric.Square(halfDNN*dFactor) * (a1*a1 + a2*a2 + a3*a3)

	sinhArg := math.Sinh(arg)
	coshArg := math.Cosh(arg)

	return sinhArg / (coshArg - math.Cos(halfDNN*a1)) *
		sinhArg / (coshArg - math.Cos(halfDNN*a2)) *
		sinhArg / (coshArg - math.Cos(halfDNN*a3))
}

// VolumeFraction returns the occupied volume fraction of a BCC lattice of
// spheres with the given radius and nearest-neighbour distance, from the
// two lattice points per unit cell.
func VolumeFraction(radius, dnn float64) float64 {
	return 2.0 * sphere.Volume(math.Sqrt(0.75)*radius/dnn)
}

// Iq returns the powder-averaged scattering intensity at scattering-vector
// magnitude q: the structure factor averaged over all lattice orientations
// with a 150x150 Gauss-Legendre rule, multiplied by the sphere form factor
// and the BCC volume fraction.
func Iq(q float64, p Params) float64 {
	z, wt := quadrature.Table150()

	// Map the [-1, 1] nodes to phi in [0, 2 pi] and theta in [0, pi].
	const (
		phiM   = math.Pi
		phiB   = math.Pi
		thetaM = math.Pi / 2
		thetaB = math.Pi / 2
	)

	n := len(z)
	cosPhi := make([]float64, n)
	sinPhi := make([]float64, n)
	for j := range z {
		sinPhi[j], cosPhi[j] = math.Sincos(z[j]*phiM + phiB)
	}

	sq := make([]float64, n)

	outerSum := 0.0
	for i := range z {
		theta := z[i]*thetaM + thetaB
		sinTheta, cosTheta := math.Sincos(theta)

		qc := q * cosTheta
		qab := q * sinTheta
		for j := range z {
			sq[j] = SqBCC(qab*cosPhi[j], qab*sinPhi[j], qc, p.DNN, p.DFactor)
		}

		// sum(f(x) dx) = sum(wt f(x)) * half-range
		innerSum := vecmath.DotProduct(wt, sq) * phiM
		outerSum += wt[i] * innerSum * sinTheta
	}
	outerSum *= thetaM

	Sq := outerSum / (4.0 * math.Pi)
	Pq := sphere.Form(q, p.Radius, p.SLD, p.SolventSLD)

	return VolumeFraction(p.Radius, p.DNN) * Pq * Sq
}

// Iqxy returns the scattering intensity for an oriented crystal at detector
// coordinates (qx, qy). The Euler angles theta, phi and psi rotate the
// lattice axes against the beam and are given in radians.
func Iqxy(qx, qy float64, p Params, theta, phi, psi float64) float64 {
	q, xhat, yhat, zhat := orient(qx, qy, theta, phi, psi)

	qa := q * xhat
	qb := q * yhat
	qc := q * zhat

	// Recomputing q guards against a non-orthonormal projection.
	q = math.Sqrt(qa*qa + qb*qb + qc*qc)

	Pq := sphere.Form(q, p.Radius, p.SLD, p.SolventSLD)
	Sq := SqBCC(qa, qb, qc, p.DNN, p.DFactor)

	return VolumeFraction(p.Radius, p.DNN) * Pq * Sq
}
