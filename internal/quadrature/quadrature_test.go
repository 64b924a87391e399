package quadrature

import (
	"math"
	"testing"
)

func TestTableWeightsSumToTwo(t *testing.T) {
	for _, n := range []int{20, 76, 150} {
		_, wt := Table(n)
		if len(wt) != n {
			t.Fatalf("Table(%d) returned %d weights", n, len(wt))
		}

		sum := 0.0
		for _, w := range wt {
			sum += w
		}

		if math.Abs(sum-2.0) > 1e-12 {
			t.Fatalf("Table(%d) weights sum to %v, want 2", n, sum)
		}
	}
}

func TestTableNodesSymmetric(t *testing.T) {
	z, _ := Table150()
	for i := range z {
		j := len(z) - 1 - i
		if math.Abs(z[i]+z[j]) > 1e-12 {
			t.Fatalf("node %d (%v) not mirrored by node %d (%v)", i, z[i], j, z[j])
		}
	}
}

func TestTableIntegratesQuadratic(t *testing.T) {
	// integral of x^2 over [-1, 1] is 2/3; exact for any rule of order >= 2.
	z, wt := Table76()

	sum := 0.0
	for i := range z {
		sum += wt[i] * z[i] * z[i]
	}

	if math.Abs(sum-2.0/3.0) > 1e-12 {
		t.Fatalf("quadrature of x^2 = %v, want %v", sum, 2.0/3.0)
	}
}

func TestTableCached(t *testing.T) {
	a, _ := Table(150)
	b, _ := Table(150)

	if &a[0] != &b[0] {
		t.Fatal("Table(150) did not return the cached slice")
	}
}

func TestTablePanicsOnZeroOrder(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Table(0) did not panic")
		}
	}()

	Table(0)
}
