// Package quadrature provides shared Gauss-Legendre node/weight tables for
// the orientational averages performed by the scattering kernels.
//
// Tables are generated once per order and cached for the lifetime of the
// process. The returned slices are shared: callers must treat them as
// read-only.
package quadrature

import (
	"sync"

	"gonum.org/v1/gonum/integrate/quad"
)

type table struct {
	nodes   []float64
	weights []float64
}

var (
	mu     sync.Mutex
	tables = map[int]table{}
)

// Table returns the n-point Gauss-Legendre nodes and weights on [-1, 1].
// It panics if n < 1.
func Table(n int) (nodes, weights []float64) {
	if n < 1 {
		panic("quadrature: order must be at least 1")
	}

	mu.Lock()
	defer mu.Unlock()

	if t, ok := tables[n]; ok {
		return t.nodes, t.weights
	}

	t := table{
		nodes:   make([]float64, n),
		weights: make([]float64, n),
	}
	quad.Legendre{}.FixedLocations(t.nodes, t.weights, -1, 1)
	tables[n] = t

	return t.nodes, t.weights
}

// Table150 returns the 150-point table used by the paracrystal powder
// averages.
func Table150() (nodes, weights []float64) {
	return Table(150)
}

// Table76 returns the 76-point table used by the cylinder orientation
// average.
func Table76() (nodes, weights []float64) {
	return Table(76)
}
