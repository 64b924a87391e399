package polarization

import (
	"math"
	"testing"
)

func TestWeightsRealChannelsSumToInverseNorm(t *testing.T) {
	// The four products (1-i)(1-o), io, (1-i)o, i(1-o) tile the unit square,
	// so the physical weights always sum to exactly 1/norm; with a perfect
	// analyzer (out_spin 0 or 1) the norm is 1 and the sum is 1.
	cases := []struct{ in, out float64 }{
		{0, 0},
		{1, 1},
		{0.5, 0.5},
		{0.3, 0.9},
		{0.95, 0.2},
		{1, 0.5},
	}

	for _, c := range cases {
		norm := c.out
		if c.out < 0.5 {
			norm = 1 - c.out
		}

		w := Weights(c.in, c.out).Slots()

		sum := w[0] + w[2] + w[4] + w[6]
		if math.Abs(sum-1/norm) > 1e-12 {
			t.Fatalf("Weights(%v, %v): real channels sum to %v, want %v", c.in, c.out, sum, 1/norm)
		}
	}
}

func TestWeightsPerfectAnalyzerSumsToOne(t *testing.T) {
	for _, c := range []struct{ in, out float64 }{{0.3, 1}, {0.7, 0}, {1, 1}, {0, 0}} {
		w := Weights(c.in, c.out).Slots()

		sum := w[0] + w[2] + w[4] + w[6]
		if math.Abs(sum-1) > 1e-12 {
			t.Fatalf("Weights(%v, %v): real channels sum to %v, want 1", c.in, c.out, sum)
		}
	}
}

func TestWeightsRealImagSlotsMatch(t *testing.T) {
	w := Weights(0.7, 0.8).Slots()

	for i := 0; i < 8; i += 2 {
		if w[i] != w[i+1] {
			t.Fatalf("slot %d (%v) != slot %d (%v)", i, w[i], i+1, w[i+1])
		}
	}
}

func TestWeightsClampsEfficiencies(t *testing.T) {
	if got, want := Weights(-0.3, 1.7), Weights(0.3, 1); got != want {
		t.Fatalf("clamped weights = %+v, want %+v", got, want)
	}
}

func TestWeightsFullyPolarized(t *testing.T) {
	w := Weights(1, 1)

	if w.UUReal != 1 {
		t.Fatalf("uu weight = %v, want 1", w.UUReal)
	}

	if w.DDReal != 0 || w.DUReal != 0 || w.UDReal != 0 {
		t.Fatalf("unexpected non-uu weights: %+v", w)
	}
}

func TestWeightsZeroOutSpinUsesComplementNorm(t *testing.T) {
	// out_spin = 0 takes the norm = 1 - out_spin branch, so the weights stay
	// finite: dd = 1, ud = in_spin, everything else 0.
	w := Weights(0.25, 0)

	if w.DDReal != 0.75 || w.UDReal != 0.25 {
		t.Fatalf("Weights(0.25, 0) = %+v", w)
	}

	if w.UUReal != 0 || w.DUReal != 0 {
		t.Fatalf("spin-up analyzer channels non-zero: %+v", w)
	}
}

func TestWeightsDegenerateInputPropagates(t *testing.T) {
	// A NaN efficiency survives the clamp and poisons the normalization.
	// Pinned so that adding a guard is a conscious contract change.
	w := Weights(0.5, math.NaN())

	if !math.IsNaN(w.DDReal) {
		t.Fatalf("Weights(0.5, NaN).DDReal = %v, want NaN", w.DDReal)
	}
}

func TestSlotsRoundTrip(t *testing.T) {
	c := CrossSections{
		DDReal: 1, DDImag: 2,
		UUReal: 3, UUImag: 4,
		DUReal: 5, DUImag: 6,
		UDReal: 7, UDImag: 8,
	}

	if got := FromSlots(c.Slots()); got != c {
		t.Fatalf("FromSlots(Slots()) = %+v, want %+v", got, c)
	}
}

func TestCombineHalfPolarized(t *testing.T) {
	w := Weights(0.5, 0.5)
	c := CrossSections{DDReal: 2, UUReal: 4, DUReal: 6, UDReal: 8}

	want := w.DDReal*2 + w.UUReal*4 + w.DUReal*6 + w.UDReal*8
	if got := Combine(w, c); math.Abs(got-want) > 1e-12 {
		t.Fatalf("Combine = %v, want %v", got, want)
	}
}
