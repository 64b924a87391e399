package analytic

import "math"

// BroadPeak is the empirical Porod-plus-Lorentzian shape used for systems
// with a broad correlation peak on top of a power-law background.
type BroadPeak struct {
	PorodScale    float64
	PorodExp      float64
	LorentzScale  float64
	LorentzLength float64
	PeakPos       float64
	LorentzExp    float64
}

// Iq returns the scattering intensity at q.
func (m BroadPeak) Iq(q float64) float64 {
	return m.PorodScale/math.Pow(q, m.PorodExp) +
		m.LorentzScale/(1.0+math.Pow(math.Abs(q-m.PeakPos)*m.LorentzLength, m.LorentzExp))
}

// Iqxy returns the intensity at detector coordinates (qx, qy).
func (m BroadPeak) Iqxy(qx, qy float64) float64 {
	return m.Iq(math.Hypot(qx, qy))
}
