package cf

import (
	"errors"
	"fmt"
	"math/big"
	"strconv"

	"github.com/katalvlaran/cfrac/matrix"
	"github.com/katalvlaran/cfrac/rational"
)

// Add returns x + y.
func Add(x, y CF) (CF, error) {
	if err := operands(x, y); err != nil {
		return nil, err
	}
	if x == y && x.Kind() != KindRational {
		// X + X = 2X, which folds into composites.
		return mulTable[KindRational][x.Kind()](FromInt(2), x)
	}
	return addTable[x.Kind()][y.Kind()](x, y)
}

// Sub returns x - y. Sub(x, x) is 0 without computing anything.
func Sub(x, y CF) (CF, error) {
	if err := operands(x, y); err != nil {
		return nil, err
	}
	if x == y {
		return NewRational(rational.Zero()), nil
	}
	return subTable[x.Kind()][y.Kind()](x, y)
}

// Mul returns x · y.
func Mul(x, y CF) (CF, error) {
	if err := operands(x, y); err != nil {
		return nil, err
	}
	return mulTable[x.Kind()][y.Kind()](x, y)
}

// Div returns x / y. Dividing by a Rational zero fails with
// ErrDivisionByZero; Div(x, x) is 1 otherwise.
func Div(x, y CF) (CF, error) {
	if err := operands(x, y); err != nil {
		return nil, err
	}
	if x == y {
		if r, ok := x.(*Rational); ok && r.v.IsZero() {
			return nil, ErrDivisionByZero
		}
		return NewRational(rational.One()), nil
	}
	return divTable[x.Kind()][y.Kind()](x, y)
}

// AddRational returns x + r.
func AddRational(x CF, r rational.Rat) (CF, error) {
	return Add(x, NewRational(r))
}

func operands(x, y CF) error {
	if x == nil || y == nil {
		return fmt.Errorf("nil operand: %w", ErrInvalidArgument)
	}
	return nil
}

// Sqrt returns √x, picking the cheapest exact route: the quadratic-surd
// constructor for rationals, a Formula's own closed form, or pulling a
// rational factor out of a monomial composite. Everything else goes to the
// generic engine. A negative x fails with ErrInvalidArgument.
func Sqrt(x CF) (CF, error) {
	if x == nil {
		return nil, fmt.Errorf("sqrt: nil operand: %w", ErrInvalidArgument)
	}
	switch v := x.(type) {
	case *Rational:
		return SqrtRational(v.v)
	case *Formula:
		if v.sqrt != nil {
			return v.sqrt(), nil
		}
	}
	if err := nonNegative(x); err != nil {
		return nil, err
	}
	var factored func() (CF, error)
	ok := false
	switch v := x.(type) {
	case *Homographic:
		factored, ok = v.sqrtMonomial()
	case *Bihomographic:
		factored, ok = v.sqrtMonomial()
	}
	if ok {
		// XY can be positive with both factors negative; then only the
		// generic engine applies.
		res, err := factored()
		if !errors.Is(err, ErrInvalidArgument) {
			return res, err
		}
	}
	r, err := newSqrt(x, inherit(x, nil))
	if err != nil {
		return nil, err
	}
	return r, nil
}

// nonNegative inspects the leading terms. With truncated terms a negative
// value starts with a negative term, or with 0 followed by a negative one.
func nonNegative(x CF) error {
	t0, err := x.Term(0)
	if err != nil {
		return err
	}
	if t0.Sign() > 0 {
		return nil
	}
	if t0.Sign() == 0 {
		t1, err := x.Term(1)
		if err != nil {
			return err
		}
		if t1.Sign() >= 0 {
			return nil
		}
	}
	return fmt.Errorf("sqrt of negative %s: %w", x, ErrInvalidArgument)
}

// sqrtMonomial recognizes b/(cX) and aX/d, whose roots factor as
// √(b/c)·√(1/X) and √(a/d)·√X.
func (h *Homographic) sqrtMonomial() (func() (CF, error), bool) {
	m := h.g.initial
	a, b, c, d := m.Entry(0, 0), m.Entry(0, 1), m.Entry(1, 0), m.Entry(1, 1)
	switch {
	case a.Sign() == 0 && d.Sign() == 0:
		k, ok := positiveRatio(b, c)
		if !ok {
			return nil, false
		}
		return func() (CF, error) {
			inv, err := h.src.Invert()
			if err != nil {
				return nil, err
			}
			return scaledRoot(k, inv, nil)
		}, true
	case b.Sign() == 0 && c.Sign() == 0:
		k, ok := positiveRatio(a, d)
		if !ok {
			return nil, false
		}
		return func() (CF, error) { return scaledRoot(k, h.src, nil) }, true
	}
	return nil, false
}

// sqrtMonomial recognizes aXY/h, bX/(gY) and cY/(fX).
func (b *Bihomographic) sqrtMonomial() (func() (CF, error), bool) {
	m := b.g.initial
	only := func(num, den int) bool {
		for j := 0; j < 4; j++ {
			if (j != num) != (m.Entry(0, j).Sign() == 0) || (j != den) != (m.Entry(1, j).Sign() == 0) {
				return false
			}
		}
		return true
	}
	var num, den int
	var over, under CF
	switch {
	case only(0, 3):
		num, den, over = 0, 3, b.x
	case only(1, 2):
		num, den, over, under = 1, 2, b.x, b.y
	case only(2, 1):
		num, den, over, under = 2, 1, b.y, b.x
	default:
		return nil, false
	}
	k, ok := positiveRatio(m.Entry(0, num), m.Entry(1, den))
	if !ok {
		return nil, false
	}
	if under == nil {
		// aXY/h = (a/h)·X·Y
		return func() (CF, error) { return scaledRoot(k, b.x, b.y) }, true
	}
	return func() (CF, error) {
		inv, err := under.Invert()
		if err != nil {
			return nil, err
		}
		return scaledRoot(k, over, inv)
	}, true
}

func positiveRatio(n, d *big.Int) (rational.Rat, bool) {
	k, err := rational.NewBig(n, d)
	return k, err == nil && k.Sign() > 0
}

// scaledRoot returns √k · √x, times √y when y is not nil.
func scaledRoot(k rational.Rat, x, y CF) (CF, error) {
	rk, err := SqrtRational(k)
	if err != nil {
		return nil, err
	}
	acc, err := Sqrt(x)
	if err != nil {
		return nil, err
	}
	if y != nil {
		ry, err := Sqrt(y)
		if err != nil {
			return nil, err
		}
		if acc, err = Mul(acc, ry); err != nil {
			return nil, err
		}
	}
	return Mul(rk, acc)
}

// Fill computes the first n terms of x. A Rational returns at most n terms
// of its finite expansion.
func Fill(x CF, n int) ([]rational.Rat, error) {
	if n < 0 {
		return nil, ErrInvalidArgument
	}
	if r, ok := x.(*Rational); ok {
		ts := r.v.ToTerms()
		if len(ts) > n {
			ts = ts[:n]
		}
		out := make([]rational.Rat, len(ts))
		for i, t := range ts {
			out[i] = rational.FromBigInt(t)
		}
		return out, nil
	}
	out := make([]rational.Rat, n)
	for i := range out {
		t, err := x.Term(i)
		if err != nil {
			return out[:i], err
		}
		out[i] = t
	}
	return out, nil
}

// Convergents returns the first n convergents of x. For a Rational, n ≤ 0
// means all of them; lazy variants need n > 0.
func Convergents(x CF, n int) ([]rational.Rat, error) {
	if r, ok := x.(*Rational); ok {
		all := rational.Convergents(r.v.ToTerms())
		if n > 0 && n < len(all) {
			all = all[:n]
		}
		return all, nil
	}
	if n <= 0 {
		return nil, fmt.Errorf("convergents of %s: need n > 0: %w", x.Kind(), ErrInvalidArgument)
	}
	ts, err := Fill(x, n)
	if err != nil {
		return nil, err
	}
	acc, _ := matrix.Identity(2)
	out := make([]rational.Rat, 0, n)
	for _, t := range ts {
		acc, _ = matrix.Mul(acc, matrix.TermMatrix(t))
		v, err := acc.ColumnRat(0)
		if err != nil {
			// An undefined prefix (a zero denominator) ends the list.
			break
		}
		out = append(out, v)
	}
	return out, nil
}

// Float returns x rounded to prec decimal digits as a float64.
func Float(x CF, prec int) (float64, error) {
	s, err := x.DecimalString(prec)
	if err != nil {
		return 0, err
	}
	return strconv.ParseFloat(s, 64)
}
