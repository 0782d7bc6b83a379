package constants

import (
	"fmt"

	"github.com/katalvlaran/cfrac/cf"
	"github.com/katalvlaran/cfrac/rational"
)

// The generalized expansions below share the shape
//
//	den(0) + num(0)/(den(1) + num(1)/(den(2) + …))
//
// with den(0) = 0 and num(-1) = 1, so the value is num(0)/(den(1) + …).

// generalized builds the identity map over a stream pair.
func generalized(num, den cf.Generator, opts []cf.Option) *cf.Generalized {
	x, _ := cf.NewGeneralized(1, 0, 0, 1, num, den, opts...)
	return x
}

func rint(n int) rational.Rat { return rational.FromInt(int64(n)) }

// Pi returns π = 4/(1 + 1²/(3 + 2²/(5 + 3²/(7 + …)))). It gains roughly
// three digits every four terms.
func Pi(opts ...cf.Option) *cf.Generalized {
	num := func(i int) rational.Rat {
		switch i {
		case -1:
			return rational.One()
		case 0:
			return rint(4)
		}
		return rint(i * i)
	}
	den := func(i int) rational.Rat {
		if i == 0 {
			return rational.Zero()
		}
		return rint(2*i - 1)
	}
	return generalized(num, den, opts)
}

// Exp returns e^x = 1/(1 - x/(1 + x - x/(2 + x - 2x/(3 + x - …)))).
// Exp(0) is the Rational 1.
func Exp(x rational.Rat, opts ...cf.Option) (cf.CF, error) {
	if x.IsZero() {
		return cf.FromInt(1), nil
	}
	num := func(i int) rational.Rat {
		switch {
		case i < 1:
			return rational.One()
		case i == 1:
			return x.Neg()
		}
		return x.Mul(rint(1 - i))
	}
	den := func(i int) rational.Rat {
		switch {
		case i == 0:
			return rational.Zero()
		case i == 1:
			return rational.One()
		}
		return x.Add(rint(i - 1))
	}
	return generalized(num, den, opts), nil
}

// Ln1PlusX returns ln(1+x) for |x| < 1. Ln1PlusX(0) is the Rational 0.
func Ln1PlusX(x rational.Rat, opts ...cf.Option) (cf.CF, error) {
	if !x.Abs().Less(rational.One()) {
		return nil, fmt.Errorf("ln(1+%s): need |x| < 1: %w", x, cf.ErrInvalidArgument)
	}
	if x.IsZero() {
		return cf.FromInt(0), nil
	}
	num := func(i int) rational.Rat {
		switch {
		case i == -1:
			return rational.One()
		case i == 0:
			return x
		}
		return x.Mul(rint(i * i))
	}
	den := func(i int) rational.Rat {
		switch {
		case i == 0:
			return rational.Zero()
		case i == 1:
			return rational.One()
		}
		return x.Mul(rint(1 - i)).Add(rint(i))
	}
	return generalized(num, den, opts), nil
}

// Arctan returns arctan x = x/(1 + x²/(3 + 4x²/(5 + 9x²/(7 + …)))).
// Arctan(0) is the Rational 0.
func Arctan(x rational.Rat, opts ...cf.Option) (cf.CF, error) {
	if x.IsZero() {
		return cf.FromInt(0), nil
	}
	x2 := x.Mul(x)
	num := func(i int) rational.Rat {
		switch {
		case i == -1:
			return rational.One()
		case i == 0:
			return x
		}
		return x2.Mul(rint(i * i))
	}
	den := func(i int) rational.Rat {
		if i == 0 {
			return rational.Zero()
		}
		return rint(2*i - 1)
	}
	return generalized(num, den, opts), nil
}

// Sin returns sin x. Sin(0) is the Rational 0.
func Sin(x rational.Rat, opts ...cf.Option) (cf.CF, error) {
	if x.IsZero() {
		return cf.FromInt(0), nil
	}
	x2 := x.Mul(x)
	num := func(i int) rational.Rat {
		switch {
		case i == -1:
			return rational.One()
		case i == 0:
			return x
		case i == 1:
			return x2
		}
		return x2.Mul(rint((2*i - 1) * (2*i - 2)))
	}
	den := func(i int) rational.Rat {
		switch {
		case i == 0:
			return rational.Zero()
		case i == 1:
			return rational.One()
		}
		return rint((2*i - 1) * (2*i - 2)).Sub(x2)
	}
	return generalized(num, den, opts), nil
}

// Cos returns cos x. Cos(0) is the Rational 1.
func Cos(x rational.Rat, opts ...cf.Option) (cf.CF, error) {
	if x.IsZero() {
		return cf.FromInt(1), nil
	}
	x2 := x.Mul(x)
	num := func(i int) rational.Rat {
		switch {
		case i < 1:
			return rational.One()
		case i == 1:
			return x2
		}
		return x2.Mul(rint((2*i - 3) * (2*i - 2)))
	}
	den := func(i int) rational.Rat {
		switch {
		case i == 0:
			return rational.Zero()
		case i == 1:
			return rational.One()
		}
		return rint((2*i - 3) * (2*i - 2)).Sub(x2)
	}
	return generalized(num, den, opts), nil
}

// Arcsin returns arcsin x for |x| ≤ 1. Convergence slows down as |x|
// approaches 1. Arcsin(0) is the Rational 0.
func Arcsin(x rational.Rat, opts ...cf.Option) (cf.CF, error) {
	if rational.One().Less(x.Abs()) {
		return nil, fmt.Errorf("arcsin(%s): need |x| ≤ 1: %w", x, cf.ErrInvalidArgument)
	}
	if x.IsZero() {
		return cf.FromInt(0), nil
	}
	x2 := x.Mul(x)
	num := func(i int) rational.Rat {
		switch {
		case i == -1:
			return rational.One()
		case i == 0:
			return x
		case i == 1:
			return x2.Neg()
		}
		k := 2*i - 1
		return x2.Mul(rint(k * k * k * (2*i - 2))).Neg()
	}
	den := func(i int) rational.Rat {
		switch {
		case i == 0:
			return rational.Zero()
		case i == 1:
			return rational.One()
		}
		k := 2*i - 3
		return rint((2*i - 1) * (2*i - 2)).Add(x2.Mul(rint(k * k)))
	}
	return generalized(num, den, opts), nil
}

// Sinh returns sinh x. Sinh(0) is the Rational 0.
func Sinh(x rational.Rat, opts ...cf.Option) (cf.CF, error) {
	if x.IsZero() {
		return cf.FromInt(0), nil
	}
	x2 := x.Mul(x)
	num := func(i int) rational.Rat {
		switch {
		case i == -1:
			return rational.One()
		case i == 0:
			return x
		case i == 1:
			return x2.Neg()
		}
		return x2.Mul(rint((2*i - 1) * (2*i - 2))).Neg()
	}
	den := func(i int) rational.Rat {
		switch {
		case i == 0:
			return rational.Zero()
		case i == 1:
			return rational.One()
		}
		return rint((2*i - 1) * (2*i - 2)).Add(x2)
	}
	return generalized(num, den, opts), nil
}

// Cosh returns cosh x. Cosh(0) is the Rational 1.
func Cosh(x rational.Rat, opts ...cf.Option) (cf.CF, error) {
	if x.IsZero() {
		return cf.FromInt(1), nil
	}
	x2 := x.Mul(x)
	num := func(i int) rational.Rat {
		switch {
		case i < 1:
			return rational.One()
		case i == 1:
			return x2.Neg()
		}
		return x2.Mul(rint((2*i - 3) * (2*i - 2))).Neg()
	}
	den := func(i int) rational.Rat {
		switch {
		case i == 0:
			return rational.Zero()
		case i == 1:
			return rational.One()
		}
		return rint((2*i - 3) * (2*i - 2)).Add(x2)
	}
	return generalized(num, den, opts), nil
}
