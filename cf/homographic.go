package cf

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/cfrac/matrix"
	"github.com/katalvlaran/cfrac/rational"
)

// Homographic is the lazy value (aX+b)/(cX+d) over one source CF X.
//
// Each step either emits a term, once a/c and b/d agree on the integer
// part (or lie within the tolerance window), or ingests the next term of X.
// Terms are always read from a/c so that Negate and Invert can reuse them.
type Homographic struct {
	src    CF
	cursor int
	g      gosper
}

// NewHomographic returns (aX+b)/(cX+d), collapsing degenerate coefficient
// sets: a zero denominator fails with ErrZeroDenominator, a constant
// function (ad = bc) yields a Rational, and the identity yields a clone of
// x. A Rational x fails with ErrUnsupportedOperation; use the arithmetic
// functions instead.
func NewHomographic(x CF, a, b, c, d int64, opts ...Option) (CF, error) {
	m, _ := matrix.NewFromInts(2, 2, a, b, c, d)
	return newHomographic(x, m, gatherOptions(opts...))
}

func newHomographic(x CF, m *matrix.Dense, opts Options) (CF, error) {
	if x == nil {
		return nil, fmt.Errorf("homographic: nil source: %w", ErrInvalidArgument)
	}
	if x.Kind() == KindRational {
		return nil, fmt.Errorf("homographic over %s: %w", x, ErrUnsupportedOperation)
	}
	if rowZero(m, 1) {
		return nil, ErrZeroDenominator
	}
	if det, _ := m.Det2(); det.Sign() == 0 {
		// Constant function; some column has a nonzero denominator.
		v, err := m.ColumnRat(0)
		if err != nil {
			v, _ = m.ColumnRat(1)
		}
		return NewRational(v), nil
	}
	b, c := m.Entry(0, 1), m.Entry(1, 0)
	if b.Sign() == 0 && c.Sign() == 0 && m.Entry(0, 0).Cmp(m.Entry(1, 1)) == 0 {
		return x.Clone(), nil
	}
	return wrapHomographic(x, m, opts), nil
}

// wrapHomographic builds the engine without collapsing.
func wrapHomographic(x CF, m *matrix.Dense, opts Options) *Homographic {
	return &Homographic{src: x, g: newGosper(m, opts)}
}

// Coefficients returns a copy of the initial matrix [[a, b], [c, d]].
func (h *Homographic) Coefficients() *matrix.Dense { return h.g.initial.Clone() }

// Source returns the source CF.
func (h *Homographic) Source() CF { return h.src }

// step performs one ingest or emit.
func (h *Homographic) step() error {
	h.g.tick()
	if t, ok := h.extractable(); ok {
		h.g.emit(t)
		return nil
	}
	x, err := h.src.Term(h.cursor)
	if err != nil {
		return err
	}
	h.cursor++
	h.g.ingest(matrix.TermMatrix(x))
	return nil
}

// extractable reports whether a/c and b/d pin down the next term.
func (h *Homographic) extractable() (rational.Rat, bool) {
	ts, ok := truncs(h.g.coef)
	if !ok {
		return rational.Rat{}, false
	}
	if allEqual(ts) {
		return ts[0], true
	}
	if _, ok := closeColumns(h.g.coef, h.g.opts.tolerance); ok {
		return ts[0], true
	}
	return rational.Rat{}, false
}

func (h *Homographic) Kind() Kind { return KindHomographic }

func (h *Homographic) Term(i int) (rational.Rat, error) {
	return termAt(h.memo, h.step, i, h.g.opts.budget())
}

func (h *Homographic) memo() []rational.Rat { return h.g.memo }

func (h *Homographic) Known() int { return len(h.g.memo) }

func (h *Homographic) DecimalString(prec int) (string, error) {
	return approximantDecimal(h.top, h.step, prec, h.g.opts.budget())
}

func (h *Homographic) top() *matrix.Dense { return h.g.top }

// Negate shares the source and reuses the memo.
func (h *Homographic) Negate() CF {
	return &Homographic{src: h.src, cursor: h.cursor, g: h.g.negated()}
}

// Invert shares the source and reuses the memo.
func (h *Homographic) Invert() (CF, error) {
	return &Homographic{src: h.src, cursor: h.cursor, g: h.g.inverted()}, nil
}

// Clone deep-copies the engine and its source.
func (h *Homographic) Clone() CF {
	return &Homographic{src: h.src.Clone(), cursor: h.cursor, g: h.g.clone()}
}

func (h *Homographic) FullyKnown() bool { return false }

func (h *Homographic) String() string {
	c := h.g.coef
	return fmt.Sprintf("Homographic[found=%s cursor=%d (%s·X + %s)/(%s·X + %s) X=%s]",
		termList(h.g.memo), h.cursor,
		c.Entry(0, 0), c.Entry(0, 1), c.Entry(1, 0), c.Entry(1, 1), h.src)
}

func (*Homographic) sealed() {}

// termList formats terms as "[t0 t1 …]".
func termList(ts []rational.Rat) string {
	parts := make([]string, len(ts))
	for i, t := range ts {
		parts[i] = t.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}
