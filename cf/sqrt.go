package cf

import (
	"fmt"

	"github.com/katalvlaran/cfrac/matrix"
	"github.com/katalvlaran/cfrac/rational"
)

// Limits of one fixed-point search. A search that runs out falls back to
// ingesting another source term, which narrows the coefficients.
const (
	maxFixedPointIterations = 64
	maxGuessRestarts        = 16
	guessGrowth             = 4
)

// SqrtComposite is the lazy value √X for a source CF with no closed form.
//
// The output Y satisfies Y = X/Y. The engine keeps eight rational
// coefficients describing two homographic maps of Y,
//
//	f1(y) = (c·y + d)/(g·y + h)
//	f2(y) = (a·y + b)/(e·y + f)
//
// bracketing the remaining value. A term is emitted when a damped fixed-point
// search finds y with y ≈ f1(y) ≈ f2(y); otherwise another term of X is
// ingested. At least one ingest separates two emissions.
type SqrtComposite struct {
	src    CF
	cursor int

	a, b, c, d, e, f, g, h rational.Rat

	top           *matrix.Dense
	memo          []rational.Rat
	guess         rational.Rat
	justExtracted bool
	opts          Options
}

// NewSqrt returns √x through the generic engine. A Rational x fails with
// ErrUnsupportedOperation; use SqrtRational or Sqrt instead.
func NewSqrt(x CF, opts ...Option) (*SqrtComposite, error) {
	return newSqrt(x, gatherOptions(opts...))
}

func newSqrt(x CF, opts Options) (*SqrtComposite, error) {
	if x == nil {
		return nil, fmt.Errorf("sqrt: nil source: %w", ErrInvalidArgument)
	}
	if x.Kind() == KindRational {
		return nil, fmt.Errorf("sqrt over %s: %w", x, ErrUnsupportedOperation)
	}
	top, _ := matrix.Identity(2)
	zero, one := rational.Zero(), rational.One()
	s := &SqrtComposite{
		src:           x,
		top:           top,
		guess:         opts.sqrtStartGuess,
		justExtracted: true,
		opts:          opts,
	}
	// Y = X/Y, i.e. (0·XY + 1·X + 0·Y + 0)/(0·XY + 0·X + 1·Y + 0).
	s.a, s.b, s.c, s.d = zero, one, zero, zero
	s.e, s.f, s.g, s.h = zero, zero, one, zero
	return s, nil
}

// f1 evaluates (c·y + d)/(g·y + h).
func (s *SqrtComposite) f1(y rational.Rat) (rational.Rat, bool) {
	return mobius(s.c, s.d, s.g, s.h, y)
}

// f2 evaluates (a·y + b)/(e·y + f).
func (s *SqrtComposite) f2(y rational.Rat) (rational.Rat, bool) {
	return mobius(s.a, s.b, s.e, s.f, y)
}

// mobius evaluates (p·y + q)/(r·y + t), reporting false on a zero
// denominator.
func mobius(p, q, r, t, y rational.Rat) (rational.Rat, bool) {
	v, err := p.Mul(y).Add(q).Quo(r.Mul(y).Add(t))
	return v, err == nil
}

func (s *SqrtComposite) step() error {
	if !s.justExtracted {
		if t, ok := s.extractable(); ok {
			s.emit(t)
			return nil
		}
	}
	return s.ingest()
}

// extractable runs the fixed-point search and checks the result against
// both maps.
func (s *SqrtComposite) extractable() (rational.Rat, bool) {
	if s.g.IsZero() && s.h.IsZero() || s.e.IsZero() && s.f.IsZero() {
		return rational.Rat{}, false
	}
	y, ok := s.fixedPoint()
	if !ok {
		return rational.Rat{}, false
	}
	v1, ok1 := s.f1(y)
	v2, ok2 := s.f2(y)
	if !ok1 || !ok2 {
		return rational.Rat{}, false
	}
	ty := y.TruncRat()
	if ty.Equal(v2.TruncRat()) && ty.Equal(v1.TruncRat()) {
		return ty, true
	}
	if !y.Dist(v2).Less(s.opts.sqrtTolerance) {
		return rational.Rat{}, false
	}
	lo, _ := rational.Min(y, v1, v2)
	t := lo.Bound(s.opts.termDigits)
	s.opts.logger.Debug("sqrt: approximate term",
		"index", len(s.memo), "fixed_point", y.String(), "term", t.String())
	return t, true
}

// search is the outcome of one damped iteration run.
type search int

const (
	searchFound     search = iota // converged to a positive y
	searchRestart                 // left the domain; enlarge the guess
	searchExhausted               // no verdict within the iteration cap
)

// fixedPoint iterates y ← (y + f1(y))/2 from the current starting guess.
// Leaving the positive domain or hitting a pole multiplies the starting
// guess and restarts.
func (s *SqrtComposite) fixedPoint() (rational.Rat, bool) {
	one := rational.One()
	for restart := 0; restart < maxGuessRestarts; restart++ {
		y := s.guess
		for s.g.Mul(y).Add(s.h).IsZero() || s.e.Mul(y).Add(s.f).IsZero() {
			y = y.Add(one)
		}
		y, res := s.iterate(y)
		switch res {
		case searchFound:
			return y, true
		case searchExhausted:
			return rational.Rat{}, false
		}
		s.guess = s.guess.Mul(rational.FromInt(guessGrowth))
		s.opts.logger.Debug("sqrt: enlarging starting guess", "guess", s.guess.String())
	}
	return rational.Rat{}, false
}

// iterate runs the damped iteration from y. Iterates are digit-bounded;
// they only steer the choice of the next term.
func (s *SqrtComposite) iterate(y rational.Rat) (rational.Rat, search) {
	half := rational.MustNew(1, 2)
	for it := 0; it < maxFixedPointIterations; it++ {
		v, ok := s.f1(y)
		if !ok || y.Sign() <= 0 && v.Sign() <= 0 {
			return y, searchRestart
		}
		y = y.Add(v).Mul(half).Bound(2 * s.opts.termDigits)
		if y.TruncRat().Equal(v.TruncRat()) || y.Dist(v).Less(s.opts.fixedTolerance) {
			if y.Sign() > 0 {
				return y, searchFound
			}
			return y, searchRestart
		}
	}
	return y, searchExhausted
}

// emit records t and rewrites the coefficients for the tail 1/(Y - t).
func (s *SqrtComposite) emit(t rational.Rat) {
	a, b, c, d, e, f, g, h := s.a, s.b, s.c, s.d, s.e, s.f, s.g, s.h
	ra := a.Sub(t.Mul(e))
	rc := c.Sub(t.Mul(g))
	s.a, s.b = t.Mul(e).Add(f), e
	s.c, s.d = t.Mul(g).Add(h), g
	s.e, s.f = t.Mul(ra).Add(b.Sub(t.Mul(f))), ra
	s.g, s.h = t.Mul(rc).Add(d.Sub(t.Mul(h))), rc

	s.memo = append(s.memo, t)
	s.top, _ = matrix.Mul(s.top, matrix.TermMatrix(t))
	s.justExtracted = true
}

// ingest substitutes the next source term x into X = x + 1/X'.
func (s *SqrtComposite) ingest() error {
	x, err := s.src.Term(s.cursor)
	if err != nil {
		return err
	}
	s.cursor++
	s.a, s.b, s.c, s.d = s.a.Mul(x).Add(s.c), s.b.Mul(x).Add(s.d), s.a, s.b
	s.e, s.f, s.g, s.h = s.e.Mul(x).Add(s.g), s.f.Mul(x).Add(s.h), s.e, s.f
	s.guess = s.opts.sqrtRestartGuess
	s.justExtracted = false
	return nil
}

// Source returns the CF under the root.
func (s *SqrtComposite) Source() CF { return s.src }

func (s *SqrtComposite) Kind() Kind { return KindSqrt }

func (s *SqrtComposite) Term(i int) (rational.Rat, error) {
	return termAt(func() []rational.Rat { return s.memo }, s.step, i, s.opts.budget())
}

func (s *SqrtComposite) Known() int { return len(s.memo) }

// DecimalString reads the convergents of the terms emitted so far.
func (s *SqrtComposite) DecimalString(prec int) (string, error) {
	return approximantDecimal(func() *matrix.Dense { return s.top }, s.step, prec, s.opts.budget())
}

// Negate wraps the root in a Homographic computing -Y.
func (s *SqrtComposite) Negate() CF {
	m, _ := matrix.NewFromInts(2, 2, -1, 0, 0, 1)
	return wrapHomographic(s, m, s.opts)
}

// Invert wraps the root in a Homographic computing 1/Y.
func (s *SqrtComposite) Invert() (CF, error) {
	m, _ := matrix.NewFromInts(2, 2, 0, 1, 1, 0)
	return wrapHomographic(s, m, s.opts), nil
}

// Clone copies every piece of state, including the source.
func (s *SqrtComposite) Clone() CF {
	n := *s
	n.src = s.src.Clone()
	n.top = s.top.Clone()
	n.memo = append([]rational.Rat(nil), s.memo...)
	return &n
}

func (s *SqrtComposite) FullyKnown() bool { return false }

func (s *SqrtComposite) String() string {
	return fmt.Sprintf("Sqrt[found=%s cursor=%d (%s·XY + %s·X + %s·Y + %s)/(%s·XY + %s·X + %s·Y + %s) X=%s]",
		termList(s.memo), s.cursor, s.a, s.b, s.c, s.d, s.e, s.f, s.g, s.h, s.src)
}

func (*SqrtComposite) sealed() {}
