package cf

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/cfrac/matrix"
	"github.com/katalvlaran/cfrac/rational"
)

// Bihomographic is the lazy value (aXY+bX+cY+d)/(eXY+fX+gY+h) over two
// source CFs. Coefficients are held as the 2×4 matrix
//
//	[a b c d]
//	[e f g h]
//
// whose column ratios a/e, b/f, c/g, d/h are the values at the four corners
// of the (X, Y) box still compatible with the terms read so far.
type Bihomographic struct {
	x, y   CF
	ix, iy int
	g      gosper
}

// NewBihomographic returns (aXY+bX+cY+d)/(eXY+fX+gY+h).
//
// Degenerate sets collapse: an all-zero denominator fails with
// ErrZeroDenominator, an all-zero numerator or a single surviving column
// yields a Rational, and a function of only one source becomes a
// Homographic. A Rational source fails with ErrUnsupportedOperation.
func NewBihomographic(x, y CF, a, b, c, d, e, f, g, h int64, opts ...Option) (CF, error) {
	m, _ := matrix.NewFromInts(2, 4, a, b, c, d, e, f, g, h)
	return newBihomographic(x, y, m, gatherOptions(opts...))
}

func newBihomographic(x, y CF, m *matrix.Dense, opts Options) (CF, error) {
	if x == nil || y == nil {
		return nil, fmt.Errorf("bihomographic: nil source: %w", ErrInvalidArgument)
	}
	if x.Kind() == KindRational || y.Kind() == KindRational {
		return nil, fmt.Errorf("bihomographic over %s, %s: %w", x, y, ErrUnsupportedOperation)
	}
	if rowZero(m, 1) {
		return nil, ErrZeroDenominator
	}
	if rowZero(m, 0) {
		return NewRational(rational.Zero()), nil
	}
	if j, ok := singleColumn(m); ok {
		v, _ := m.ColumnRat(j)
		return NewRational(v), nil
	}
	if columnsZero(m, 0, 2) {
		// (bX + d)/(fX + h)
		return newHomographic(x, pick(m, 1, 3), opts)
	}
	if columnsZero(m, 0, 1) {
		// (cY + d)/(gY + h)
		return newHomographic(y, pick(m, 2, 3), opts)
	}
	return wrapBihomographic(x, y, m, opts), nil
}

func wrapBihomographic(x, y CF, m *matrix.Dense, opts Options) *Bihomographic {
	return &Bihomographic{x: x, y: y, g: newGosper(m, opts)}
}

// columnsZero reports whether columns i and j of m are entirely zero.
func columnsZero(m *matrix.Dense, i, j int) bool {
	for _, col := range []int{i, j} {
		if m.Entry(0, col).Sign() != 0 || m.Entry(1, col).Sign() != 0 {
			return false
		}
	}
	return true
}

// pick returns the 2×2 matrix made of columns i and j of m.
func pick(m *matrix.Dense, i, j int) *matrix.Dense {
	out, _ := matrix.NewFromBig(2, 2, m.Entry(0, i), m.Entry(0, j), m.Entry(1, i), m.Entry(1, j))
	return out
}

// downMatrix substitutes Y = t + 1/Y'. It acts on the (a,b) and (c,d)
// column pairs exactly as TermMatrix acts on a homographic.
func downMatrix(t rational.Rat) *matrix.Dense {
	p, q := t.Num(), t.Den()
	m, _ := matrix.NewFromBig(4, 4,
		p, q, nil, nil,
		q, nil, nil, nil,
		nil, nil, p, q,
		nil, nil, q, nil,
	)
	return m
}

// leftMatrix substitutes X = t + 1/X', pairing columns (a,c) and (b,d).
func leftMatrix(t rational.Rat) *matrix.Dense {
	p, q := t.Num(), t.Den()
	m, _ := matrix.NewFromBig(4, 4,
		p, nil, q, nil,
		nil, p, nil, q,
		q, nil, nil, nil,
		nil, q, nil, nil,
	)
	return m
}

// Coefficients returns a copy of the initial 2×4 matrix.
func (b *Bihomographic) Coefficients() *matrix.Dense { return b.g.initial.Clone() }

// Sources returns X and Y.
func (b *Bihomographic) Sources() (CF, CF) { return b.x, b.y }

func (b *Bihomographic) step() error {
	if (b.ix+b.iy)%b.g.opts.reduceEvery == 0 {
		b.g.reduce()
	}
	if t, ok := b.extractable(); ok {
		b.g.emit(t)
		b.g.coef.Reduce()
		return nil
	}
	if b.moveDown() {
		t, err := b.y.Term(b.iy)
		if err != nil {
			return err
		}
		b.iy++
		b.g.ingest(downMatrix(t))
		return nil
	}
	t, err := b.x.Term(b.ix)
	if err != nil {
		return err
	}
	b.ix++
	b.g.ingest(leftMatrix(t))
	return nil
}

// extractable emits the shared integer part of the four corner ratios, or,
// when they only agree within the tolerance window, a digit-bounded a/e.
func (b *Bihomographic) extractable() (rational.Rat, bool) {
	ts, ok := truncs(b.g.coef)
	if !ok {
		return rational.Rat{}, false
	}
	if allEqual(ts) {
		return ts[0], true
	}
	v, ok := closeColumns(b.g.coef, b.g.opts.tolerance)
	if !ok {
		return rational.Rat{}, false
	}
	t := v.Bound(b.g.opts.termDigits)
	b.g.opts.logger.Debug("bihomographic: approximate term",
		"index", len(b.g.memo), "ratio", v.String(), "term", t.String())
	return t, true
}

// moveDown decides whether the next ingest reads from Y.
func (b *Bihomographic) moveDown() bool {
	c := b.g.coef
	zero := func(j int) bool { return c.Entry(1, j).Sign() == 0 }
	if zero(0) && zero(2) || zero(1) && zero(3) {
		return true
	}
	if !zero(0) && !zero(1) && !zero(2) && !zero(3) {
		tol := b.g.opts.tolerance
		r := make([]rational.Rat, 4)
		for j := range r {
			r[j], _ = c.ColumnRat(j)
		}
		if r[1].Dist(r[3]).Less(tol) && r[0].Dist(r[2]).Less(tol) {
			return true
		}
	}
	return b.iy < b.ix+b.g.opts.fairnessWindow && (b.ix+b.iy)%2 == 0
}

func (b *Bihomographic) Kind() Kind { return KindBihomographic }

func (b *Bihomographic) Term(i int) (rational.Rat, error) {
	return termAt(b.memo, b.step, i, b.g.opts.budget())
}

func (b *Bihomographic) memo() []rational.Rat { return b.g.memo }

func (b *Bihomographic) Known() int { return len(b.g.memo) }

// DecimalString waits until all six pairwise distances between the corner
// ratios of the top accumulator are small enough.
func (b *Bihomographic) DecimalString(prec int) (string, error) {
	return approximantDecimal(b.top, b.step, prec, b.g.opts.budget())
}

func (b *Bihomographic) top() *matrix.Dense { return b.g.top }

func (b *Bihomographic) Negate() CF {
	return &Bihomographic{x: b.x, y: b.y, ix: b.ix, iy: b.iy, g: b.g.negated()}
}

func (b *Bihomographic) Invert() (CF, error) {
	return &Bihomographic{x: b.x, y: b.y, ix: b.ix, iy: b.iy, g: b.g.inverted()}, nil
}

// Clone deep-copies both sources, keeping them shared if they were the
// same CF.
func (b *Bihomographic) Clone() CF {
	x := b.x.Clone()
	y := x
	if b.y != b.x {
		y = b.y.Clone()
	}
	return &Bihomographic{x: x, y: y, ix: b.ix, iy: b.iy, g: b.g.clone()}
}

func (b *Bihomographic) FullyKnown() bool { return false }

func (b *Bihomographic) String() string {
	c := b.g.coef
	e := func(i, j int) *big.Int { return c.Entry(i, j) }
	return fmt.Sprintf("Bihomographic[found=%s ix=%d iy=%d (%s·XY + %s·X + %s·Y + %s)/(%s·XY + %s·X + %s·Y + %s) X=%s Y=%s]",
		termList(b.g.memo), b.ix, b.iy,
		e(0, 0), e(0, 1), e(0, 2), e(0, 3), e(1, 0), e(1, 1), e(1, 2), e(1, 3),
		b.x, b.y)
}

func (*Bihomographic) sealed() {}
