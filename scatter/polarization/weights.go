package polarization

import (
	"math"

	"github.com/cwbudde/algo-scatter/internal/numeric"
)

// Weights converts the polarizer and analyzer efficiencies of a partially
// polarized beam into per-channel weights for reconstructing the measured
// cross section from the eight spin-resolved contributions.
//
// Both efficiencies are mapped through |x| and clipped to [0, 1]; the sign
// carries no physical meaning. The real and imaginary slot of each channel
// receive the same weight — the imaginary slot only matters once combined
// with complex-valued amplitudes.
//
// The normalization keeps the sum of the spin-resolved measurements equal to
// the unpolarised or half-polarised cross section. No weighting is applied
// for the incoming polarizer side, assuming intensities are normalised to
// the incoming flux with the polarizer in place.
func Weights(inSpin, outSpin float64) CrossSections {
	inSpin = numeric.Clip(math.Abs(inSpin), 0, 1)
	outSpin = numeric.Clip(math.Abs(outSpin), 0, 1)

	norm := outSpin
	if outSpin < 0.5 {
		norm = 1 - outSpin
	}

	dd := (1 - inSpin) * (1 - outSpin) / norm
	uu := inSpin * outSpin / norm
	du := (1 - inSpin) * outSpin / norm
	ud := inSpin * (1 - outSpin) / norm

	return CrossSections{
		DDReal: dd, DDImag: dd,
		UUReal: uu, UUImag: uu,
		DUReal: du, DUImag: du,
		UDReal: ud, UDImag: ud,
	}
}
