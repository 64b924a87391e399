package sphere

import (
	"math"
	"testing"
)

func almostEqual(a, b, tol float64) bool {
	if a == b {
		return true
	}

	diff := math.Abs(a - b)
	mag := math.Max(math.Abs(a), math.Abs(b))
	if mag > 1 {
		return diff/mag < tol
	}

	return diff < tol
}

func TestVolume(t *testing.T) {
	if got, want := Volume(1), 4.0/3.0*math.Pi; !almostEqual(got, want, 1e-15) {
		t.Fatalf("Volume(1) = %v, want %v", got, want)
	}

	if got, want := Volume(2), 8*Volume(1); !almostEqual(got, want, 1e-15) {
		t.Fatalf("Volume(2) = %v, want %v", got, want)
	}
}

func TestBessel3J1xSmallXLimit(t *testing.T) {
	if got := Bessel3J1x(0); got != 1 {
		t.Fatalf("Bessel3J1x(0) = %v, want 1", got)
	}

	// Series and closed form must agree across the branch point.
	for _, x := range []float64{0.0999, 0.1, 0.1001} {
		series := 1.0 + x*x*(-3.0/30.0+x*x*(3.0/840.0+x*x*(-3.0/45360.0)))
		if got := Bessel3J1x(x); !almostEqual(got, series, 1e-10) {
			t.Fatalf("Bessel3J1x(%v) = %v, series = %v", x, got, series)
		}
	}
}

func TestBessel3J1xEvenInX(t *testing.T) {
	for _, x := range []float64{0.05, 0.7, 3.2} {
		if got, want := Bessel3J1x(-x), Bessel3J1x(x); got != want {
			t.Fatalf("Bessel3J1x(-%v) = %v, want %v", x, got, want)
		}
	}
}

func TestBessel3J1xFirstZero(t *testing.T) {
	// j1 has its first zero at x ~ 4.4934; 3*j1(x)/x must cross zero there.
	lo, hi := Bessel3J1x(4.49), Bessel3J1x(4.50)
	if lo <= 0 || hi >= 0 {
		t.Fatalf("no sign change across first j1 zero: f(4.49)=%v f(4.50)=%v", lo, hi)
	}
}

func TestFormLowQLimit(t *testing.T) {
	// P(q->0) -> 1e-4 * (contrast * V)^2.
	const (
		r       = 40.0
		sld     = 4.0
		solvent = 1.0
	)

	want := 1e-4 * math.Pow((sld-solvent)*Volume(r), 2)
	if got := Form(1e-8, r, sld, solvent); !almostEqual(got, want, 1e-10) {
		t.Fatalf("Form(q->0) = %v, want %v", got, want)
	}
}
