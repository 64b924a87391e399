package analytic

import "math"

// LamellarHG is the form factor of a lamellar bilayer with distinct head
// and tail regions, randomly distributed in solution.
type LamellarHG struct {
	// TailLength and HeadLength are the half-bilayer tail and head
	// thicknesses.
	TailLength float64
	HeadLength float64
	// SLD is the tail scattering length density, SLDHead the head one.
	SLD        float64
	SLDHead    float64
	SLDSolvent float64
}

// Iq returns the scattering intensity at q, normalized by the bilayer
// thickness. q must be non-zero.
func (m LamellarHG) Iq(q float64) float64 {
	drh := m.SLDHead - m.SLDSolvent
	drt := m.SLD - m.SLDSolvent

	qT := q * m.TailLength

	pq := drh*(math.Sin(q*(m.HeadLength+m.TailLength))-math.Sin(qT)) + drt*math.Sin(qT)
	pq *= pq
	pq *= 4.0 / (q * q)

	inten := 2.0e-4 * math.Pi * pq / (q * q)

	return inten / (2.0 * (m.HeadLength + m.TailLength))
}

// Iqxy returns the intensity at detector coordinates (qx, qy).
func (m LamellarHG) Iqxy(qx, qy float64) float64 {
	return m.Iq(math.Hypot(qx, qy))
}
