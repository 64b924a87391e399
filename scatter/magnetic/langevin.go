package magnetic

// Langevin returns the Langevin function L(x) = coth(x) - 1/x, the mean
// field-aligned moment fraction of an ideal superparamagnet.
//
// coth(x) - 1/x suffers catastrophic cancellation as x -> 0, so below
// langevinCutoff the function switches to its leading series term. The
// cutoff lives next to the mathTanh backend since the usable range of the
// closed form depends on how tanh is computed.
func Langevin(x float64) float64 {
	if x < langevinCutoff {
		return 1.0 / 3.0 * x
	}

	return 1/mathTanh(x) - 1/x
}

// LangevinOverX returns L(x)/x with the correct limit of 1/3 at x = 0.
func LangevinOverX(x float64) float64 {
	if x < langevinCutoff {
		return 1.0 / 3.0
	}

	return Langevin(x) / x
}
