package cf

import (
	"math/big"

	"github.com/katalvlaran/cfrac/matrix"
	"github.com/katalvlaran/cfrac/rational"
)

// binaryOp combines two CFs of known kinds.
type binaryOp func(x, y CF) (CF, error)

// table maps a (left kind, right kind) pair to its combinator.
type table [numKinds][numKinds]binaryOp

// arith describes one operator for the table builder.
type arith struct {
	// lazy is the bihomographic coefficient row pair used for two lazy operands.
	lazy [8]int64
	// exact combines two rationals.
	exact func(x, y rational.Rat) (rational.Rat, error)
	// shortcut handles identities and zeros; ok reports whether it applied.
	shortcut func(r rational.Rat, x CF, rationalLeft bool) (res CF, ok bool, err error)
	// outer returns the 2×2 matrix applying the operation with r to a value.
	outer func(r rational.Rat, rationalLeft bool) *matrix.Dense
}

// The tables are filled once in init and only read afterwards.
var addTable, subTable, mulTable, divTable table

func init() {
	addTable = buildTable(arith{
		lazy:  [8]int64{0, 1, 1, 0, 0, 0, 0, 1},
		exact: func(x, y rational.Rat) (rational.Rat, error) { return x.Add(y), nil },
		shortcut: func(r rational.Rat, x CF, _ bool) (CF, bool, error) {
			return x, r.IsZero(), nil
		},
		outer: func(r rational.Rat, _ bool) *matrix.Dense {
			n, m := r.Num(), r.Den()
			return mat2(m, n, nil, m)
		},
	})
	subTable = buildTable(arith{
		lazy:  [8]int64{0, 1, -1, 0, 0, 0, 0, 1},
		exact: func(x, y rational.Rat) (rational.Rat, error) { return x.Sub(y), nil },
		shortcut: func(r rational.Rat, x CF, left bool) (CF, bool, error) {
			if !r.IsZero() {
				return nil, false, nil
			}
			if left {
				return x.Negate(), true, nil
			}
			return x, true, nil
		},
		outer: func(r rational.Rat, left bool) *matrix.Dense {
			n, m := r.Num(), r.Den()
			if left {
				// r - X
				return mat2(new(big.Int).Neg(m), n, nil, m)
			}
			// X - r
			return mat2(m, n.Neg(n), nil, m)
		},
	})
	mulTable = buildTable(arith{
		lazy:  [8]int64{1, 0, 0, 0, 0, 0, 0, 1},
		exact: func(x, y rational.Rat) (rational.Rat, error) { return x.Mul(y), nil },
		shortcut: func(r rational.Rat, x CF, _ bool) (CF, bool, error) {
			switch {
			case r.IsZero():
				return NewRational(rational.Zero()), true, nil
			case r.IsOne():
				return x, true, nil
			}
			return nil, false, nil
		},
		outer: func(r rational.Rat, _ bool) *matrix.Dense {
			return mat2(r.Num(), nil, nil, r.Den())
		},
	})
	divTable = buildTable(arith{
		lazy: [8]int64{0, 1, 0, 0, 0, 0, 1, 0},
		exact: func(x, y rational.Rat) (rational.Rat, error) {
			v, err := x.Quo(y)
			if err != nil {
				return rational.Rat{}, ErrDivisionByZero
			}
			return v, nil
		},
		shortcut: func(r rational.Rat, x CF, left bool) (CF, bool, error) {
			switch {
			case !left && r.IsZero():
				return nil, true, ErrDivisionByZero
			case left && r.IsZero():
				return NewRational(rational.Zero()), true, nil
			case r.IsOne() && left:
				inv, err := x.Invert()
				return inv, true, err
			case r.IsOne():
				return x, true, nil
			}
			return nil, false, nil
		},
		outer: func(r rational.Rat, left bool) *matrix.Dense {
			n, m := r.Num(), r.Den()
			if left {
				// r / X
				return mat2(nil, n, m, nil)
			}
			// X / r
			return mat2(m, nil, nil, n)
		},
	})
}

// buildTable fills every cell: two lazy operands meet in a Bihomographic,
// a rational operand folds into the other one, two rationals fold exactly.
func buildTable(op arith) table {
	var t table
	for i := range t {
		for j := range t[i] {
			t[i][j] = func(x, y CF) (CF, error) {
				m, _ := matrix.NewFromInts(2, 4, op.lazy[:]...)
				return newBihomographic(x, y, m, inherit(x, y))
			}
		}
	}
	for k := Kind(0); k < numKinds; k++ {
		t[KindRational][k] = func(x, y CF) (CF, error) {
			return withRational(op, x.(*Rational).v, y, true)
		}
		t[k][KindRational] = func(x, y CF) (CF, error) {
			return withRational(op, y.(*Rational).v, x, false)
		}
	}
	t[KindRational][KindRational] = func(x, y CF) (CF, error) {
		v, err := op.exact(x.(*Rational).v, y.(*Rational).v)
		if err != nil {
			return nil, err
		}
		return NewRational(v), nil
	}
	return t
}

// withRational applies op between r and the lazy operand x.
func withRational(op arith, r rational.Rat, x CF, rationalLeft bool) (CF, error) {
	if res, ok, err := op.shortcut(r, x, rationalLeft); ok {
		return res, err
	}
	return foldOuter(op.outer(r, rationalLeft), x)
}

// foldOuter returns L(x) for the homographic map L. Composite operands
// absorb L into their initial coefficients instead of gaining a layer.
func foldOuter(l *matrix.Dense, x CF) (CF, error) {
	switch v := x.(type) {
	case *Homographic:
		m, _ := matrix.Mul(l, v.g.initial)
		return newHomographic(v.src, m, v.g.opts)
	case *Bihomographic:
		m, _ := matrix.Mul(l, v.g.initial)
		return newBihomographic(v.x, v.y, m, v.g.opts)
	case *Generalized:
		m, _ := matrix.Mul(l, v.g.initial)
		return &Generalized{num: v.num, den: v.den, g: newGosper(m, v.g.opts)}, nil
	}
	return newHomographic(x, l, inherit(x, nil))
}

// mat2 builds [[a, b], [c, d]]; nil entries are zero.
func mat2(a, b, c, d *big.Int) *matrix.Dense {
	m, _ := matrix.NewFromBig(2, 2, a, b, c, d)
	return m
}

// inherit picks the options of a new composite: those of a composite
// operand, left first, then of any configured operand, else the defaults.
func inherit(x, y CF) Options {
	for _, c := range []CF{x, y} {
		switch v := c.(type) {
		case *Homographic:
			return v.g.opts
		case *Bihomographic:
			return v.g.opts
		case *SqrtComposite:
			return v.opts
		case *Generalized:
			return v.g.opts
		}
	}
	for _, c := range []CF{x, y} {
		switch v := c.(type) {
		case *Periodic:
			return v.opts
		case *Formula:
			return v.opts
		}
	}
	return DefaultOptions()
}
