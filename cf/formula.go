package cf

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/katalvlaran/cfrac/rational"
)

// formulaPreview is how many leading terms String shows.
const formulaPreview = 8

// Formula is a CF whose i-th term is f(i). f must be pure and defined for
// every i ≥ 0. A Formula may carry a hook returning its own square root,
// which Sqrt prefers over the generic engine.
type Formula struct {
	f    func(int) *big.Int
	sqrt func() CF
	opts Options
}

// NewFormula returns the CF with terms f(0), f(1), ….
// A nil f fails with ErrInvalidArgument.
func NewFormula(f func(int) *big.Int, opts ...Option) (*Formula, error) {
	return NewFormulaWithSqrt(f, nil, opts...)
}

// NewFormulaWithSqrt is NewFormula plus a closed form for the square root.
// sqrt may be nil.
func NewFormulaWithSqrt(f func(int) *big.Int, sqrt func() CF, opts ...Option) (*Formula, error) {
	if f == nil {
		return nil, fmt.Errorf("formula: nil term function: %w", ErrInvalidArgument)
	}
	return &Formula{f: f, sqrt: sqrt, opts: gatherOptions(opts...)}, nil
}

func (x *Formula) Kind() Kind { return KindFormula }

func (x *Formula) Term(i int) (rational.Rat, error) {
	if i < 0 {
		return rational.Rat{}, ErrInvalidArgument
	}
	return rational.FromBigInt(x.f(i)), nil
}

func (x *Formula) Known() int { return Infinite }

func (x *Formula) DecimalString(prec int) (string, error) {
	return expandDecimal(x.Term, prec, x.opts.budget())
}

// Negate negates every term. The square-root hook does not survive.
func (x *Formula) Negate() CF {
	f := x.f
	return &Formula{f: func(i int) *big.Int { return new(big.Int).Neg(f(i)) }, opts: x.opts}
}

// Invert drops a leading zero term or prepends one.
func (x *Formula) Invert() (CF, error) {
	f := x.f
	if f(0).Sign() == 0 {
		return &Formula{f: func(i int) *big.Int { return f(i + 1) }, opts: x.opts}, nil
	}
	return &Formula{f: func(i int) *big.Int {
		if i == 0 {
			return new(big.Int)
		}
		return f(i - 1)
	}, opts: x.opts}, nil
}

// Clone shares f, which is pure.
func (x *Formula) Clone() CF { return &Formula{f: x.f, sqrt: x.sqrt, opts: x.opts} }

func (x *Formula) FullyKnown() bool { return true }

func (x *Formula) String() string {
	parts := make([]string, formulaPreview)
	for i := range parts {
		parts[i] = x.f(i).String()
	}
	return "Formula[" + strings.Join(parts, ", ") + ", …]"
}

func (*Formula) sealed() {}
