//go:build !fastmath

package magnetic

import "math"

// langevinCutoff is the Langevin series branch point. math.Tanh is
// correctly rounded, so the closed form only loses precision to the
// coth(x) - 1/x cancellation itself and stays usable down to 1e-5.
const langevinCutoff = 0.00001

// mathTanh computes tanh(x) using the standard library.
func mathTanh(x float64) float64 {
	return math.Tanh(x)
}
