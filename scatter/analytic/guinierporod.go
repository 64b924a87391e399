package analytic

import "math"

// GuinierPorod is the generalized Guinier-Porod crossover model: a
// (possibly non-spherical) Guinier region at low q joined continuously to a
// Porod power law above the crossover point q1.
type GuinierPorod struct {
	// Rg is the radius of gyration.
	Rg float64
	// S is the dimensionality parameter: 0 for spheres, 1 for rods,
	// 2 for platelets.
	S float64
	// M is the Porod exponent.
	M float64
}

// Iq returns the scattering intensity at q. Degenerate parameter sets
// (Rg <= 0, or a non-positive Porod window n-3+m) yield 0, as in the
// reference model.
func (m GuinierPorod) Iq(q float64) float64 {
	n := 3.0 - m.S

	if m.Rg <= 0.0 {
		return 0.0
	}
	if n-3.0+m.M <= 0.0 {
		return 0.0
	}

	if q < m.crossover() {
		return math.Exp(-q*q*m.Rg*m.Rg/n) / math.Pow(q, 3.0-n)
	}

	// The prefactor makes the two branches agree at q1.
	return math.Exp(-(n-3.0+m.M)/2.0) *
		math.Pow((n-3.0+m.M)*n/2.0, (n-3.0+m.M)/2.0) /
		(math.Pow(q, m.M) * math.Pow(m.Rg, n-3.0+m.M))
}

// Iqxy returns the intensity at detector coordinates (qx, qy).
func (m GuinierPorod) Iqxy(qx, qy float64) float64 {
	return m.Iq(math.Hypot(qx, qy))
}

// crossover returns the q value where the Guinier and Porod branches meet.
func (m GuinierPorod) crossover() float64 {
	n := 3.0 - m.S
	return math.Sqrt((n-3.0+m.M)*n/2.0) / m.Rg
}
