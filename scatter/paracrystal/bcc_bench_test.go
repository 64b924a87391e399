package paracrystal

import "testing"

func BenchmarkSqBCC(b *testing.B) {
	var sink float64
	for i := 0; i < b.N; i++ {
		sink = SqBCC(0.05, 0.03, 0.01, 160, 0.06)
	}
	_ = sink
}

func BenchmarkIq(b *testing.B) {
	p := Params{DNN: 160, DFactor: 0.06, Radius: 40, SLD: 4, SolventSLD: 1}

	b.ReportAllocs()
	var sink float64
	for i := 0; i < b.N; i++ {
		sink = Iq(0.05, p)
	}
	_ = sink
}

func BenchmarkIqxy(b *testing.B) {
	p := Params{DNN: 160, DFactor: 0.06, Radius: 40, SLD: 4, SolventSLD: 1}

	var sink float64
	for i := 0; i < b.N; i++ {
		sink = Iqxy(0.03, -0.04, p, 0.7, 1.1, -0.4)
	}
	_ = sink
}
