//go:build fastmath

package magnetic

import "github.com/meko-christian/algo-approx"

// langevinCutoff is the Langevin series branch point. The exp-identity
// tanh below carries rounding noise that the coth(x) - 1/x cancellation
// amplifies by ~1/x^3, so the series must cover a much wider region than
// in the standard build before handing over to the closed form.
const langevinCutoff = 0.002

// mathTanh computes tanh(x) using the fast exponential approximation.
// Uses the identity: tanh(x) = 1 - 2/(e^(2x) + 1)
func mathTanh(x float64) float64 {
	return 1.0 - 2.0/(approx.FastExp(2.0*x)+1.0)
}
