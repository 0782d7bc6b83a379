// Package matrix_test provides benchmarks for the exact Dense operations.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/cfrac/matrix"
	"github.com/katalvlaran/cfrac/rational"
)

// sinks to defeat dead-code elimination
var sinkM *matrix.Dense

// BenchmarkMulTermChain multiplies a long chain of term matrices, which is the
// inner loop of every Gosper engine.
func BenchmarkMulTermChain(b *testing.B) {
	b.ReportAllocs()
	step := matrix.TermMatrix(rational.FromInt(2))
	for i := 0; i < b.N; i++ {
		acc, _ := matrix.Identity(2)
		for k := 0; k < 64; k++ {
			acc, _ = matrix.Mul(acc, step)
		}
		sinkM = acc
	}
}

func BenchmarkReduce(b *testing.B) {
	b.ReportAllocs()
	base, _ := matrix.NewFromInts(2, 4, 12, 18, 24, 30, 36, 42, 48, 54)
	for i := 0; i < b.N; i++ {
		m := base.Clone()
		m.Reduce()
		sinkM = m
	}
}
