// Package polarization handles the spin-resolved cross-section bookkeeping
// for polarized-beam scattering: the fixed eight-channel layout, the
// instrument spin weights and the weighted channel combination.
package polarization

// CrossSections holds one value per spin-resolved channel, split into real
// and imaginary parts. The field order mirrors the fixed slot layout used by
// kernel-level consumers:
//
//	0 dd.real  1 dd.imag  2 uu.real  3 uu.imag
//	4 du.real  5 du.imag  6 ud.real  7 ud.imag
//
// dd/uu are the non-spin-flip channels, du/ud the spin-flip channels.
type CrossSections struct {
	DDReal, DDImag float64
	UUReal, UUImag float64
	DUReal, DUImag float64
	UDReal, UDImag float64
}

// Slots returns the channels in the fixed positional layout documented on
// CrossSections.
func (c CrossSections) Slots() [8]float64 {
	return [8]float64{
		c.DDReal, c.DDImag,
		c.UUReal, c.UUImag,
		c.DUReal, c.DUImag,
		c.UDReal, c.UDImag,
	}
}

// FromSlots builds a CrossSections from the fixed positional layout.
func FromSlots(s [8]float64) CrossSections {
	return CrossSections{
		DDReal: s[0], DDImag: s[1],
		UUReal: s[2], UUImag: s[3],
		DUReal: s[4], DUImag: s[5],
		UDReal: s[6], UDImag: s[7],
	}
}

// Combine returns the weighted sum over the eight channels, the reduction a
// model evaluation loop performs per scattering point: each channel value is
// multiplied by its weight and accumulated.
func Combine(w, c CrossSections) float64 {
	return w.DDReal*c.DDReal + w.DDImag*c.DDImag +
		w.UUReal*c.UUReal + w.UUImag*c.UUImag +
		w.DUReal*c.DUReal + w.DUImag*c.DUImag +
		w.UDReal*c.UDReal + w.UDImag*c.UDImag
}
