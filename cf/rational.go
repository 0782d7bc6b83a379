package cf

import (
	"math"
	"math/big"

	"github.com/katalvlaran/cfrac/rational"
)

// Rational is a CF holding a single exact value. It has no lazy term
// sequence: Term fails, and arithmetic with it folds into the other operand.
type Rational struct {
	v rational.Rat
}

// NewRational wraps r.
func NewRational(r rational.Rat) *Rational { return &Rational{v: r} }

// FromInt returns the integer n.
func FromInt(n int64) *Rational { return &Rational{v: rational.FromInt(n)} }

// FromFraction returns num/den, or ErrZeroDenominator.
func FromFraction(num, den int64) (*Rational, error) {
	v, err := rational.New(num, den)
	if err != nil {
		return nil, err
	}
	return &Rational{v: v}, nil
}

// FromTerms folds a finite list of integer partial quotients.
// An empty list, or one whose value is undefined, fails with
// ErrZeroDenominator.
func FromTerms(terms []*big.Int) (*Rational, error) {
	v, err := rational.FromTerms(terms)
	if err != nil {
		return nil, err
	}
	return &Rational{v: v}, nil
}

// FromFloat rounds x to digits decimal places and returns that value
// exactly. NaN, ±Inf and negative digits fail with ErrInvalidArgument.
func FromFloat(x float64, digits int) (*Rational, error) {
	if math.IsNaN(x) || math.IsInf(x, 0) || digits < 0 {
		return nil, ErrInvalidArgument
	}
	exact := rational.FromBigRat(new(big.Rat).SetFloat64(x))
	scale := rational.FromBigInt(rational.Pow10(digits))
	half := rational.MustNew(1, 2)

	scaled := exact.Mul(scale)
	if scaled.Sign() < 0 {
		scaled = scaled.Sub(half)
	} else {
		scaled = scaled.Add(half)
	}
	v, _ := scaled.TruncRat().Quo(scale)
	return &Rational{v: v}, nil
}

// Value returns the exact value.
func (r *Rational) Value() rational.Rat { return r.v }

// Terms returns the finite expansion of the value.
func (r *Rational) Terms() []*big.Int { return r.v.ToTerms() }

func (r *Rational) Kind() Kind { return KindRational }

// Term always fails: a Rational is folded, never expanded lazily.
func (r *Rational) Term(int) (rational.Rat, error) {
	return rational.Rat{}, ErrUnsupportedOperation
}

func (r *Rational) Known() int { return Infinite }

func (r *Rational) DecimalString(prec int) (string, error) {
	return r.v.DecimalString(prec)
}

func (r *Rational) Negate() CF { return &Rational{v: r.v.Neg()} }

// Invert returns 1/r, or ErrDivisionByZero for 0.
func (r *Rational) Invert() (CF, error) {
	v, err := r.v.Inv()
	if err != nil {
		return nil, ErrDivisionByZero
	}
	return &Rational{v: v}, nil
}

func (r *Rational) Clone() CF { return &Rational{v: r.v} }

func (r *Rational) FullyKnown() bool { return true }

func (r *Rational) String() string { return "Rational[" + r.v.String() + "]" }

func (*Rational) sealed() {}
