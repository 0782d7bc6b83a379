package cf

import (
	"slices"

	"github.com/katalvlaran/cfrac/matrix"
	"github.com/katalvlaran/cfrac/rational"
)

// gosper is the state shared by the integer engines. coef has two rows:
// the numerator and denominator of the remaining transformation, one column
// per coefficient ratio. top is initial × every ingested term, so its
// columns bracket the value no matter how many terms were emitted.
type gosper struct {
	coef    *matrix.Dense
	initial *matrix.Dense
	top     *matrix.Dense
	memo    []rational.Rat
	steps   int
	opts    Options
}

func newGosper(coef *matrix.Dense, opts Options) gosper {
	coef.Reduce()
	return gosper{coef: coef, initial: coef.Clone(), top: coef.Clone(), opts: opts}
}

func (g *gosper) clone() gosper {
	return gosper{
		coef:    g.coef.Clone(),
		initial: g.initial.Clone(),
		top:     g.top.Clone(),
		memo:    slices.Clone(g.memo),
		steps:   g.steps,
		opts:    g.opts,
	}
}

// tick counts a step and GCD-reduces on the configured cadence.
func (g *gosper) tick() {
	g.steps++
	if g.steps%g.opts.reduceEvery == 0 {
		g.reduce()
	}
}

func (g *gosper) reduce() {
	g.coef.Reduce()
	g.top.Reduce()
}

// emit records t and replaces the remaining value v by 1/(v - t).
func (g *gosper) emit(t rational.Rat) {
	g.coef, _ = matrix.Mul(matrix.EmitMatrix(t), g.coef)
	g.memo = append(g.memo, t)
}

// ingest substitutes a source term through the right-hand step matrix r.
func (g *gosper) ingest(r *matrix.Dense) {
	g.coef, _ = matrix.Mul(g.coef, r)
	g.top, _ = matrix.Mul(g.top, r)
}

// negated returns the state of -v. With truncated terms, -v has exactly
// the negated terms, and its tail is the negated tail.
func (g *gosper) negated() gosper {
	n := g.clone()
	for i, t := range n.memo {
		n.memo[i] = t.Neg()
	}
	for _, m := range []*matrix.Dense{n.coef, n.initial, n.top} {
		_ = m.NegateRow(0)
	}
	return n
}

// inverted returns the state of 1/v. A known expansion [t0; t1, …] becomes
// [0; t0, t1, …], or [t1; …] when t0 is 0, and the pending tail is shared.
func (g *gosper) inverted() gosper {
	n := g.clone()
	_ = n.initial.SwapRows(0, 1)
	_ = n.top.SwapRows(0, 1)
	switch {
	case len(n.memo) == 0:
		_ = n.coef.SwapRows(0, 1)
	case n.memo[0].IsZero():
		n.memo = slices.Clone(n.memo[1:])
	default:
		n.memo = append([]rational.Rat{rational.Zero()}, n.memo...)
	}
	return n
}

// singleColumn reports whether exactly one column of m has a nonzero
// entry, and returns it.
func singleColumn(m *matrix.Dense) (int, bool) {
	found := -1
	for j := 0; j < m.Cols(); j++ {
		if m.Entry(0, j).Sign() == 0 && m.Entry(1, j).Sign() == 0 {
			continue
		}
		if found >= 0 {
			return 0, false
		}
		found = j
	}
	return found, found >= 0
}

// rowZero reports whether row i of m is all zero.
func rowZero(m *matrix.Dense, i int) bool {
	for j := 0; j < m.Cols(); j++ {
		if m.Entry(i, j).Sign() != 0 {
			return false
		}
	}
	return true
}

// truncs returns the truncated column ratios of a 2-row matrix, or false
// if any denominator is zero.
func truncs(m *matrix.Dense) ([]rational.Rat, bool) {
	out := make([]rational.Rat, m.Cols())
	for j := range out {
		q, err := m.ColumnTrunc(j)
		if err != nil {
			return nil, false
		}
		out[j] = rational.FromBigInt(q)
	}
	return out, true
}

func allEqual(xs []rational.Rat) bool {
	for _, x := range xs[1:] {
		if !x.Equal(xs[0]) {
			return false
		}
	}
	return true
}
