package cf

import (
	"github.com/katalvlaran/cfrac/matrix"
	"github.com/katalvlaran/cfrac/rational"
)

// decimalTolerance is 10^-(prec+1): two bracketing approximants closer than
// this round to the same prec digits except at an exact rounding boundary.
func decimalTolerance(prec int) rational.Rat {
	v, _ := rational.FromBigInt(rational.Pow10(prec + 1)).Inv()
	return v
}

// closeColumns reads every column of a 2-row matrix as a fraction and
// reports whether all of them are defined and pairwise within tol.
// The first column's value is returned.
func closeColumns(m *matrix.Dense, tol rational.Rat) (rational.Rat, bool) {
	vals := make([]rational.Rat, m.Cols())
	for j := range vals {
		v, err := m.ColumnRat(j)
		if err != nil {
			return rational.Rat{}, false
		}
		vals[j] = v
	}
	lo, _ := rational.Min(vals...)
	hi, _ := rational.Max(vals...)
	if !hi.Sub(lo).Less(tol) {
		return rational.Rat{}, false
	}
	return vals[0], true
}

// expandDecimal folds terms into a continuant until the last two
// convergents agree to prec digits, then rounds the latest one. It serves
// the variants whose terms cost nothing to produce.
func expandDecimal(term func(int) (rational.Rat, error), prec int, b budget) (string, error) {
	if prec < 0 {
		return "", rational.ErrNegativePrecision
	}
	tol := decimalTolerance(prec)
	acc, _ := matrix.Identity(2)
	for i := 0; ; i++ {
		if err := b.spend(); err != nil {
			return "", err
		}
		t, err := term(i)
		if err != nil {
			return "", err
		}
		acc, _ = matrix.Mul(acc, matrix.TermMatrix(t))
		if v, ok := closeColumns(acc, tol); ok {
			return v.DecimalString(prec)
		}
	}
}

// approximantDecimal steps an engine until its top accumulator pins the
// value to prec digits.
func approximantDecimal(top func() *matrix.Dense, step func() error, prec int, b budget) (string, error) {
	if prec < 0 {
		return "", rational.ErrNegativePrecision
	}
	tol := decimalTolerance(prec)
	for {
		if v, ok := closeColumns(top(), tol); ok {
			return v.DecimalString(prec)
		}
		if err := b.spend(); err != nil {
			return "", err
		}
		if err := step(); err != nil {
			return "", err
		}
	}
}

// termAt steps an engine until its memo holds index i.
func termAt(memo func() []rational.Rat, step func() error, i int, b budget) (rational.Rat, error) {
	if i < 0 {
		return rational.Rat{}, ErrInvalidArgument
	}
	for len(memo()) <= i {
		if err := b.spend(); err != nil {
			return rational.Rat{}, err
		}
		if err := step(); err != nil {
			return rational.Rat{}, err
		}
	}
	return memo()[i], nil
}
