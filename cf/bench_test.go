package cf_test

import (
	"testing"

	"github.com/katalvlaran/cfrac/cf"
	"github.com/katalvlaran/cfrac/rational"
)

// sinks to defeat dead-code elimination
var sinkS string

func BenchmarkPeriodicDecimal(b *testing.B) {
	b.ReportAllocs()
	x, _ := cf.SqrtRational(rational.FromInt(2))
	for i := 0; i < b.N; i++ {
		sinkS, _ = x.DecimalString(50)
	}
}

// BenchmarkBihomographicDecimal rebuilds the engine each round so that
// no memoized state is reused.
func BenchmarkBihomographicDecimal(b *testing.B) {
	b.ReportAllocs()
	x, _ := cf.SqrtRational(rational.FromInt(2))
	y, _ := cf.SqrtRational(rational.FromInt(3))
	for i := 0; i < b.N; i++ {
		sum, _ := cf.Add(x, y)
		sinkS, _ = sum.DecimalString(30)
	}
}

func BenchmarkSqrtDecimal(b *testing.B) {
	b.ReportAllocs()
	phi, _ := cf.QuadraticSurd(rational.FromInt(5), rational.One(), rational.FromInt(2))
	for i := 0; i < b.N; i++ {
		root, _ := cf.Sqrt(phi)
		sinkS, _ = root.DecimalString(12)
	}
}
