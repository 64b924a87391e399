package magnetic

import (
	"github.com/cwbudde/algo-scatter/scatter/polarization"
	"github.com/cwbudde/algo-scatter/scatter/vec"
)

// Fixed reference frame: the polarization/field axis and the two axes
// orthogonal to it.
var (
	polAxis = vec.New(0, 0, 1)
	perpY   = vec.New(0, 1, 0)
	perpX   = vec.New(1, 0, 0)
)

// SLD evaluates the magnetic scattering vector (Halpern-Johnson vector) for
// a general scattering direction and collects the terms of the eight
// spin-resolved cross sections.
//
// dir is the scattering direction; it need not be normalized, but must be
// non-zero (the forward-scattering point dir = 0 produces NaN and has to be
// handled by the caller). mReal and mImag are the real and imaginary parts
// of the local magnetization, with the z-component along the applied field.
// nuc is the nuclear scattering length density.
//
// The transversal magnetization is complex-valued, so the spin-flip
// amplitude is MperpPperpQ ± i*MperpP (Moon-Riste-Koehler, Phys Rev 181,
// 920, 1969). The real and imaginary contributions are collected per
// channel; a nuclear imaginary part would only arise for noncentrosymmetric
// structures and is not modeled.
func SLD(dir, mReal, mImag vec.Vec, nuc float64) polarization.CrossSections {
	unit := dir.Scale(1 / dir.Norm())

	// The generic projection is kept instead of the simplified
	// Moon-Riste-Koehler form so it stays valid for any field direction.
	mPerpReal := mReal.Orth(unit)
	mPerpImag := mImag.Orth(unit)

	return polarization.CrossSections{
		DDReal: nuc - polAxis.Dot(mPerpReal),
		DDImag: +polAxis.Dot(mPerpImag),
		UUReal: nuc + polAxis.Dot(mPerpReal),
		UUImag: -polAxis.Dot(mPerpImag),
		DUReal: perpY.Dot(mPerpReal) + perpX.Dot(mPerpImag),
		DUImag: perpY.Dot(mPerpImag) - perpX.Dot(mPerpReal),
		UDReal: perpY.Dot(mPerpReal) - perpX.Dot(mPerpImag),
		UDImag: perpY.Dot(mPerpImag) + perpX.Dot(mPerpReal),
	}
}
