package cf

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/cfrac/matrix"
	"github.com/katalvlaran/cfrac/rational"
)

// Generator returns the i-th element of a numerator or denominator stream.
// It must be pure.
type Generator func(i int) rational.Rat

// Generalized is the value (aX+b)/(cX+d) of the generalized continued
// fraction
//
//	X = den(0) + num(0)/(den(1) + num(1)/(den(2) + …))
//
// The engine reads num(i-1) and den(i) together at step i, so num(-1) must
// be defined too (1 for the families in package constants). Terms are
// emitted only on an exact integer-part match.
type Generalized struct {
	num, den Generator
	cursor   int
	g        gosper
}

// NewGeneralized returns (aX+b)/(cX+d) over the stream pair. Nil generators
// fail with ErrInvalidArgument, c = d = 0 with ErrZeroDenominator.
func NewGeneralized(a, b, c, d int64, num, den Generator, opts ...Option) (*Generalized, error) {
	if num == nil || den == nil {
		return nil, fmt.Errorf("generalized: nil generator: %w", ErrInvalidArgument)
	}
	if c == 0 && d == 0 {
		return nil, ErrZeroDenominator
	}
	m, _ := matrix.NewFromInts(2, 2, a, b, c, d)
	return &Generalized{num: num, den: den, g: newGosper(m, gatherOptions(opts...))}, nil
}

// streamMatrix folds X_i = den(i) + num(i-1)/X_{i+1}, written with
// gamma = num(i-1) and alpha = den(i), scaled by the product of their
// denominators so the coefficients stay integral.
func streamMatrix(gamma, alpha rational.Rat) *matrix.Dense {
	al, be := alpha.Num(), alpha.Den()
	ga, de := gamma.Num(), gamma.Den()
	m, _ := matrix.NewFromBig(2, 2,
		new(big.Int).Mul(al, de), new(big.Int).Mul(be, de),
		new(big.Int).Mul(be, ga), nil,
	)
	return m
}

func (x *Generalized) step() error {
	x.g.tick()
	if ts, ok := truncs(x.g.coef); ok && allEqual(ts) {
		x.g.emit(ts[0])
		return nil
	}
	x.g.ingest(streamMatrix(x.num(x.cursor-1), x.den(x.cursor)))
	x.cursor++
	return nil
}

func (x *Generalized) Kind() Kind { return KindGeneralized }

func (x *Generalized) Term(i int) (rational.Rat, error) {
	return termAt(x.memo, x.step, i, x.g.opts.budget())
}

func (x *Generalized) memo() []rational.Rat { return x.g.memo }

func (x *Generalized) Known() int { return len(x.g.memo) }

func (x *Generalized) DecimalString(prec int) (string, error) {
	return approximantDecimal(x.top, x.step, prec, x.g.opts.budget())
}

func (x *Generalized) top() *matrix.Dense { return x.g.top }

// Negate reuses the memo; the generators are shared.
func (x *Generalized) Negate() CF {
	return &Generalized{num: x.num, den: x.den, cursor: x.cursor, g: x.g.negated()}
}

// Invert reuses the memo; the generators are shared.
func (x *Generalized) Invert() (CF, error) {
	return &Generalized{num: x.num, den: x.den, cursor: x.cursor, g: x.g.inverted()}, nil
}

// Clone copies the engine state and shares the pure generators.
func (x *Generalized) Clone() CF {
	return &Generalized{num: x.num, den: x.den, cursor: x.cursor, g: x.g.clone()}
}

func (x *Generalized) FullyKnown() bool { return false }

func (x *Generalized) String() string {
	c := x.g.coef
	return fmt.Sprintf("Generalized[found=%s index=%d (%s·X + %s)/(%s·X + %s)]",
		termList(x.g.memo), x.cursor, c.Entry(0, 0), c.Entry(0, 1), c.Entry(1, 0), c.Entry(1, 1))
}

func (*Generalized) sealed() {}
