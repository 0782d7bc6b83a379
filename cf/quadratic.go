package cf

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/cfrac/rational"
)

// SqrtRational returns √p. A perfect square yields a Rational; anything
// else yields its eventually periodic expansion. Negative p fails with
// ErrInvalidArgument.
func SqrtRational(p rational.Rat, opts ...Option) (CF, error) {
	return QuadraticSurd(p, rational.Zero(), rational.One(), opts...)
}

// QuadraticSurd returns (√p + b)/c as an exact CF. It is ScaledSurd with
// a = 1; a surd a·√p with a > 0 may also be passed as √(a²·p).
func QuadraticSurd(p, b, c rational.Rat, opts ...Option) (CF, error) {
	return ScaledSurd(rational.One(), p, b, c, opts...)
}

// ScaledSurd returns (a·√p + b)/c as an exact CF.
//
// By Lagrange's theorem the expansion of a quadratic irrational is
// eventually periodic, so the result is a Periodic found by running the
// surd recurrence until a state repeats. Negative p fails with
// ErrInvalidArgument, c = 0 with ErrZeroDenominator. A perfect square p or
// a = 0 yields a Rational.
func ScaledSurd(a, p, b, c rational.Rat, opts ...Option) (CF, error) {
	if p.Sign() < 0 {
		return nil, fmt.Errorf("sqrt of %s: %w", p, ErrInvalidArgument)
	}
	if c.IsZero() {
		return nil, ErrZeroDenominator
	}
	o := gatherOptions(opts...)
	if a.IsZero() {
		v, _ := b.Quo(c)
		return NewRational(v), nil
	}
	if r, ok := exactSqrt(p); ok {
		v, _ := a.Mul(r).Add(b).Quo(c)
		return NewRational(v), nil
	}

	// (an/ad·√p + bn/bd)/(cn/cd) = (an·bd·cd·√p + bn·ad·cd)/(cn·ad·bd)
	an, ad := a.Num(), a.Den()
	bn, bd := b.Num(), b.Den()
	cn, cd := c.Num(), c.Den()
	s := surd{
		a:  an.Mul(an, bd).Mul(an, cd),
		b:  bn.Mul(bn, ad).Mul(bn, cd),
		c:  cn.Mul(cn, ad).Mul(cn, bd),
		pn: p.Num(),
		pd: p.Den(),
	}
	s.normalize()
	init, period, err := s.expand(o)
	if err != nil {
		return nil, err
	}
	o.logger.Debug("quadratic surd: period found",
		"p", p.String(), "initial", len(init), "period", len(period))
	return NewPeriodic(init, period, opts...)
}

// exactSqrt returns √p when numerator and denominator are both squares.
func exactSqrt(p rational.Rat) (rational.Rat, bool) {
	num, den := p.Num(), p.Den()
	sn, sd := new(big.Int).Sqrt(num), new(big.Int).Sqrt(den)
	if new(big.Int).Mul(sn, sn).Cmp(num) != 0 || new(big.Int).Mul(sd, sd).Cmp(den) != 0 {
		return rational.Rat{}, false
	}
	v, _ := rational.NewBig(sn, sd)
	return v, true
}

// surd is the state (a·√(pn/pd) + b)/c, kept with c > 0.
type surd struct {
	a, b, c *big.Int
	pn, pd  *big.Int
}

func (s *surd) key() string {
	return s.a.String() + "," + s.b.String() + "," + s.c.String()
}

// normalize divides out the common factor and makes c positive.
func (s *surd) normalize() {
	g := new(big.Int).GCD(nil, nil, new(big.Int).Abs(s.a), new(big.Int).Abs(s.b))
	g.GCD(nil, nil, g, new(big.Int).Abs(s.c))
	if g.Sign() != 0 && g.Cmp(big.NewInt(1)) != 0 {
		s.a.Quo(s.a, g)
		s.b.Quo(s.b, g)
		s.c.Quo(s.c, g)
	}
	if s.c.Sign() < 0 {
		s.a.Neg(s.a)
		s.b.Neg(s.b)
		s.c.Neg(s.c)
	}
}

// term returns the value truncated toward zero. The value is irrational,
// so floor and truncation differ exactly for negative values.
func (s *surd) term() *big.Int {
	// a·√(pn/pd) = √(a²·pn·pd)/pd
	n := new(big.Int).Mul(s.a, s.a)
	n.Mul(n, s.pn)
	n.Mul(n, s.pd)
	root := new(big.Int).Sqrt(n)
	if s.a.Sign() < 0 {
		// floor(-√n) for non-square n
		root.Neg(root)
		root.Sub(root, big.NewInt(1))
	}
	num := new(big.Int).Mul(s.b, s.pd)
	num.Add(num, root)
	den := new(big.Int).Mul(s.c, s.pd)

	fl := floorDiv(num, den)
	if fl.Sign() < 0 {
		fl.Add(fl, big.NewInt(1))
	}
	return fl
}

// advance replaces v by 1/(v - t):
//
//	a' = a·c·pd, b' = (c²t - bc)·pd, c' = a²·pn - pd·(b - ct)²
func (s *surd) advance(t *big.Int) {
	r := new(big.Int).Mul(s.c, t)
	r.Sub(s.b, r) // b - ct

	a := new(big.Int).Mul(s.a, s.c)
	a.Mul(a, s.pd)

	b := new(big.Int).Mul(s.c, r)
	b.Neg(b)
	b.Mul(b, s.pd)

	c := new(big.Int).Mul(s.a, s.a)
	c.Mul(c, s.pn)
	r.Mul(r, r)
	r.Mul(r, s.pd)
	c.Sub(c, r)

	s.a, s.b, s.c = a, b, c
	s.normalize()
}

// expand runs the recurrence until a state repeats and splits the terms
// at the first occurrence of that state.
func (s *surd) expand(o Options) (init, period []*big.Int, err error) {
	seen := make(map[string]int)
	var terms []*big.Int
	bud := o.budget()
	for {
		k := s.key()
		if at, ok := seen[k]; ok {
			return terms[:at], terms[at:], nil
		}
		if err := bud.spend(); err != nil {
			return nil, nil, err
		}
		seen[k] = len(terms)
		t := s.term()
		terms = append(terms, t)
		s.advance(t)
	}
}

// floorDiv returns ⌊n/d⌋ for d > 0. Euclidean division agrees with the
// floor when the divisor is positive.
func floorDiv(n, d *big.Int) *big.Int {
	return new(big.Int).Div(n, d)
}
