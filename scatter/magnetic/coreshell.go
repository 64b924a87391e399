package magnetic

import "github.com/cwbudde/algo-scatter/scatter/sphere"

// CoreShellAmplitude accumulates the forward-scattering amplitude of a
// radially layered sphere: a core of the given radius and SLD, shells of
// the given SLDs and thicknesses, embedded in solvent.
//
// shells is rounded to the nearest integer via int(n+0.5); sld and
// thickness must hold at least that many entries — no bounds checking is
// performed. Each shell's outer radius is the previous radius plus its
// thickness, and each layer contributes with its contrast against the
// layer inside it.
func CoreShellAmplitude(q, sldCore, radius, sldSolvent, shells float64, sld, thickness []float64) float64 {
	n := int(shells + 0.5)

	f := 0.0
	r := radius
	lastSLD := sldCore
	for i := 0; i < n; i++ {
		f += sphere.Fq(q, r, sld[i], lastSLD)
		lastSLD = sld[i]
		r += thickness[i]
	}

	f += sphere.Fq(q, r, sldSolvent, lastSLD)

	return f
}
