package paracrystal

import "math"

// orient converts detector coordinates (qx, qy) and the three Euler angles
// of an asymmetric shape into the scattering-vector magnitude and the
// direction cosines along the three lattice axes. Angles are in radians.
//
// qx = qy = 0 produces NaN direction cosines; the forward-scattering point
// must be excluded by the caller.
func orient(qx, qy, theta, phi, psi float64) (q, xhat, yhat, zhat float64) {
	q = math.Hypot(qx, qy)
	qxhat := qx / q
	qyhat := qy / q

	sinTheta, cosTheta := math.Sincos(theta)
	sinPhi, cosPhi := math.Sincos(phi)
	sinPsi, cosPsi := math.Sincos(psi)

	xhat = qxhat*(-sinPhi*sinPsi+cosTheta*cosPhi*cosPsi) +
		qyhat*(cosPhi*sinPsi+cosTheta*sinPhi*cosPsi)
	yhat = qxhat*(-sinPhi*cosPsi-cosTheta*cosPhi*sinPsi) +
		qyhat*(cosPhi*cosPsi-cosTheta*sinPhi*sinPsi)
	zhat = qxhat*(-sinTheta*cosPhi) +
		qyhat*(-sinTheta*sinPhi)

	return q, xhat, yhat, zhat
}
