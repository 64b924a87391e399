package magnetic_test

import (
	"fmt"

	"github.com/cwbudde/algo-scatter/scatter/magnetic"
	"github.com/cwbudde/algo-scatter/scatter/vec"
)

func ExampleSLD() {
	// Scattering along x, magnetization saturated along the field axis z:
	// the whole moment is perpendicular to q and splits the non-spin-flip
	// channels.
	cs := magnetic.SLD(vec.New(1, 0, 0), vec.New(0, 0, 1), vec.Vec{}, 2)

	fmt.Printf("dd = %.1f\n", cs.DDReal)
	fmt.Printf("uu = %.1f\n", cs.UUReal)

	// Output:
	// dd = 1.0
	// uu = 3.0
}

func ExampleLangevin() {
	// Saturation of an ideal superparamagnet with increasing field.
	for _, x := range []float64{0.1, 1, 10} {
		fmt.Printf("L(%v) = %.4f\n", x, magnetic.Langevin(x))
	}

	// Output:
	// L(0.1) = 0.0333
	// L(1) = 0.3130
	// L(10) = 0.9000
}
