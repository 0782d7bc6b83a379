package rational

import (
	"math/big"
)

// Rat is an exact rational number. The zero value is 0.
type Rat struct {
	r *big.Rat // nil means 0; never mutated once set
}

var bigOne = big.NewInt(1)

// New returns num/den reduced to lowest terms.
// Returns ErrZeroDenominator if den == 0.
func New(num, den int64) (Rat, error) {
	if den == 0 {
		return Rat{}, ErrZeroDenominator
	}
	return Rat{r: big.NewRat(num, den)}, nil
}

// MustNew is like New but panics on a zero denominator.
// Intended for literals in tests and closed-form tables.
func MustNew(num, den int64) Rat {
	x, err := New(num, den)
	if err != nil {
		panic(err)
	}
	return x
}

// NewBig returns num/den reduced to lowest terms. The arguments are copied.
// Returns ErrZeroDenominator if den == 0.
func NewBig(num, den *big.Int) (Rat, error) {
	if den.Sign() == 0 {
		return Rat{}, ErrZeroDenominator
	}
	return Rat{r: new(big.Rat).SetFrac(num, den)}, nil
}

// FromInt returns the integer n as a Rat.
func FromInt(n int64) Rat {
	return Rat{r: new(big.Rat).SetInt64(n)}
}

// FromBigInt returns the integer n as a Rat. n is copied.
func FromBigInt(n *big.Int) Rat {
	return Rat{r: new(big.Rat).SetInt(n)}
}

// FromBigRat returns a copy of r as a Rat.
func FromBigRat(r *big.Rat) Rat {
	return Rat{r: new(big.Rat).Set(r)}
}

// Zero returns 0.
func Zero() Rat { return Rat{} }

// One returns 1.
func One() Rat { return FromInt(1) }

// val returns the underlying value for read-only use.
func (x Rat) val() *big.Rat {
	if x.r == nil {
		return new(big.Rat)
	}
	return x.r
}

// BigRat returns a copy of x as a *big.Rat.
func (x Rat) BigRat() *big.Rat {
	return new(big.Rat).Set(x.val())
}

// Num returns a copy of the numerator (carries the sign).
func (x Rat) Num() *big.Int {
	return new(big.Int).Set(x.val().Num())
}

// Den returns a copy of the denominator (always positive).
func (x Rat) Den() *big.Int {
	return new(big.Int).Set(x.val().Denom())
}

// Add returns x+y.
func (x Rat) Add(y Rat) Rat {
	return Rat{r: new(big.Rat).Add(x.val(), y.val())}
}

// Sub returns x-y.
func (x Rat) Sub(y Rat) Rat {
	return Rat{r: new(big.Rat).Sub(x.val(), y.val())}
}

// Mul returns x*y.
func (x Rat) Mul(y Rat) Rat {
	return Rat{r: new(big.Rat).Mul(x.val(), y.val())}
}

// Quo returns x/y, or ErrZeroDenominator if y == 0.
func (x Rat) Quo(y Rat) (Rat, error) {
	if y.IsZero() {
		return Rat{}, ErrZeroDenominator
	}
	return Rat{r: new(big.Rat).Quo(x.val(), y.val())}, nil
}

// Neg returns -x.
func (x Rat) Neg() Rat {
	return Rat{r: new(big.Rat).Neg(x.val())}
}

// Inv returns 1/x, or ErrZeroDenominator if x == 0.
func (x Rat) Inv() (Rat, error) {
	if x.IsZero() {
		return Rat{}, ErrZeroDenominator
	}
	return Rat{r: new(big.Rat).Inv(x.val())}, nil
}

// Abs returns |x|.
func (x Rat) Abs() Rat {
	return Rat{r: new(big.Rat).Abs(x.val())}
}

// Sign returns -1, 0 or +1.
func (x Rat) Sign() int { return x.val().Sign() }

// Cmp compares x and y and returns -1, 0 or +1.
func (x Rat) Cmp(y Rat) int { return x.val().Cmp(y.val()) }

// Equal reports whether x == y.
func (x Rat) Equal(y Rat) bool { return x.Cmp(y) == 0 }

// Less reports whether x < y.
func (x Rat) Less(y Rat) bool { return x.Cmp(y) < 0 }

// IsZero reports whether x == 0.
func (x Rat) IsZero() bool { return x.Sign() == 0 }

// IsInt reports whether the denominator of x is 1.
func (x Rat) IsInt() bool { return x.val().IsInt() }

// IsOne reports whether x == 1.
func (x Rat) IsOne() bool {
	return x.IsInt() && x.val().Num().Cmp(bigOne) == 0
}

// Trunc returns the integer part of x, rounded toward zero.
func (x Rat) Trunc() *big.Int {
	return new(big.Int).Quo(x.val().Num(), x.val().Denom())
}

// TruncRat is Trunc as a Rat.
func (x Rat) TruncRat() Rat {
	return FromBigInt(x.Trunc())
}

// Frac returns x - Trunc(x); it has the sign of x.
func (x Rat) Frac() Rat {
	return x.Sub(x.TruncRat())
}

// Dist returns |x-y|.
func (x Rat) Dist(y Rat) Rat {
	return x.Sub(y).Abs()
}

// Float64 returns the nearest float64 to x.
func (x Rat) Float64() float64 {
	f, _ := x.val().Float64()
	return f
}

// String renders x as "num" or "num/den".
func (x Rat) String() string {
	b := x.val()
	if b.IsInt() {
		return b.Num().String()
	}
	return b.Num().String() + "/" + b.Denom().String()
}

// Min returns the smallest of xs, or ErrEmptyList.
func Min(xs ...Rat) (Rat, error) {
	if len(xs) == 0 {
		return Rat{}, ErrEmptyList
	}
	m := xs[0]
	for _, x := range xs[1:] {
		if x.Less(m) {
			m = x
		}
	}
	return m, nil
}

// Max returns the largest of xs, or ErrEmptyList.
func Max(xs ...Rat) (Rat, error) {
	if len(xs) == 0 {
		return Rat{}, ErrEmptyList
	}
	m := xs[0]
	for _, x := range xs[1:] {
		if m.Less(x) {
			m = x
		}
	}
	return m, nil
}

// Average returns the arithmetic mean of xs, or ErrEmptyList.
func Average(xs ...Rat) (Rat, error) {
	if len(xs) == 0 {
		return Rat{}, ErrEmptyList
	}
	sum := new(big.Rat)
	for _, x := range xs {
		sum.Add(sum, x.val())
	}
	sum.Quo(sum, new(big.Rat).SetInt64(int64(len(xs))))
	return Rat{r: sum}, nil
}

// Pow10 returns 10^n for n >= 0.
func Pow10(n int) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil)
}

// Pow returns x^n. A negative n inverts x first and fails with
// ErrZeroDenominator when x == 0.
func (x Rat) Pow(n int) (Rat, error) {
	if n < 0 {
		inv, err := x.Inv()
		if err != nil {
			return Rat{}, err
		}
		return inv.Pow(-n)
	}
	e := big.NewInt(int64(n))
	num := new(big.Int).Exp(x.val().Num(), e, nil)
	den := new(big.Int).Exp(x.val().Denom(), e, nil)
	return NewBig(num, den)
}
