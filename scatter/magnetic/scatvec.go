package magnetic

import (
	"math"

	"github.com/cwbudde/algo-scatter/scatter/vec"
)

// ScatVec rotates a scattering vector of magnitude q into the
// polarization/magnetization frame, with the field along (0, 0, 1).
//
// cosTheta and sinTheta describe the detector orientation, which precesses
// in a cone around the field with an inclination of theta. alphaDeg and
// betaDeg are the frame-rotation angles in degrees.
func ScatVec(q, cosTheta, sinTheta, alphaDeg, betaDeg float64) vec.Vec {
	sinAlpha, cosAlpha := math.Sincos(alphaDeg * math.Pi / 180)
	sinBeta, cosBeta := math.Sincos(betaDeg * math.Pi / 180)

	return vec.New(
		q*(cosAlpha*cosTheta),
		q*(cosTheta*sinAlpha*sinBeta+cosBeta*sinTheta),
		q*(-cosBeta*cosTheta*sinAlpha+sinBeta*sinTheta),
	)
}
