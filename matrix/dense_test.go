// Package matrix_test contains unit tests for the exact Dense matrix.
package matrix_test

import (
	"math/big"
	"testing"

	"github.com/katalvlaran/cfrac/matrix"
	"github.com/katalvlaran/cfrac/rational"
	"github.com/stretchr/testify/require"
)

func mustInts(t *testing.T, rows, cols int, vals ...int64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromInts(rows, cols, vals...)
	require.NoError(t, err)
	return m
}

// TestNewDenseBadShape ensures that NewDense rejects non-positive dimensions.
func TestNewDenseBadShape(t *testing.T) {
	_, err := matrix.NewDense(0, 5)
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.NewDense(5, 0)
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.NewFromInts(2, 2, 1, 2, 3)
	require.ErrorIs(t, err, matrix.ErrBadShape, "value count must match shape")
}

// TestRowsCols verifies that Rows() and Cols() return the requested shape.
func TestRowsCols(t *testing.T) {
	m, err := matrix.NewDense(2, 4)
	require.NoError(t, err)
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 4, m.Cols())
	require.True(t, m.IsZero())
}

// TestEntryOutOfRange panics on unchecked access past the shape.
func TestEntryOutOfRange(t *testing.T) {
	m := mustInts(t, 2, 2, 1, 2, 3, 4)
	require.Equal(t, "4", m.Entry(1, 1).String())
	require.Panics(t, func() { m.Entry(5, 5) })
	require.Panics(t, func() { m.Entry(-1, 0) })
}

// TestNewFromBigCopies keeps the matrix independent of its inputs.
func TestNewFromBigCopies(t *testing.T) {
	v := big.NewInt(789)
	m, err := matrix.NewFromBig(1, 2, nil, v)
	require.NoError(t, err)
	v.SetInt64(0)
	require.Equal(t, "789", m.Entry(0, 1).String(), "constructor must copy its argument")
	require.Equal(t, "0", m.Entry(0, 0).String(), "nil reads as zero")

	_, err = matrix.NewFromBig(1, 2, v)
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

// TestCloneIndependence ensures Clone() returns a deep copy that does not share storage.
func TestCloneIndependence(t *testing.T) {
	m := mustInts(t, 2, 2, 1, 0, 0, 2)
	clone := m.Clone()
	require.NoError(t, clone.NegateRow(0))

	require.Equal(t, "1", m.Entry(0, 0).String())
	require.Equal(t, "-1", clone.Entry(0, 0).String())
	require.False(t, m.Equal(clone))
}

// TestStringOutput checks that String() formats the matrix as expected.
func TestStringOutput(t *testing.T) {
	m := mustInts(t, 2, 2, 1, -2, 3, 4)
	require.Equal(t, "[1, -2]\n[3, 4]\n", m.String())
}

// TestMul covers shapes, identity and mismatch.
func TestMul(t *testing.T) {
	a := mustInts(t, 2, 2, 1, 2, 3, 4)
	b := mustInts(t, 2, 2, 5, 6, 7, 8)

	p, err := matrix.Mul(a, b)
	require.NoError(t, err)
	require.True(t, p.Equal(mustInts(t, 2, 2, 19, 22, 43, 50)), "got %s", p)

	id, err := matrix.Identity(2)
	require.NoError(t, err)
	p, err = matrix.Mul(a, id)
	require.NoError(t, err)
	require.True(t, p.Equal(a))

	wide := mustInts(t, 2, 4, 0, 1, 1, 0, 0, 0, 0, 1)
	_, err = matrix.Mul(wide, a)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.Mul(nil, a)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestReduce divides out the common factor and leaves ratios intact.
func TestReduce(t *testing.T) {
	m := mustInts(t, 2, 2, 6, -9, 12, 0)
	require.Equal(t, "3", m.GCD().String())
	m.Reduce()
	require.True(t, m.Equal(mustInts(t, 2, 2, 2, -3, 4, 0)), "got %s", m)

	z, _ := matrix.NewDense(2, 2)
	z.Reduce()
	require.True(t, z.IsZero())
}

// TestRowOps covers SwapRows and NegateRow.
func TestRowOps(t *testing.T) {
	m := mustInts(t, 2, 2, 1, 2, 3, 4)
	require.NoError(t, m.SwapRows(0, 1))
	require.True(t, m.Equal(mustInts(t, 2, 2, 3, 4, 1, 2)))
	require.NoError(t, m.NegateRow(0))
	require.True(t, m.Equal(mustInts(t, 2, 2, -3, -4, 1, 2)))
	require.ErrorIs(t, m.SwapRows(0, 2), matrix.ErrOutOfRange)
}

// TestColumnRatios reads columns as fractions.
func TestColumnRatios(t *testing.T) {
	m := mustInts(t, 2, 2, 7, -7, 2, 0)

	r, err := m.ColumnRat(0)
	require.NoError(t, err)
	require.Equal(t, "7/2", r.String())

	q, err := m.ColumnTrunc(0)
	require.NoError(t, err)
	require.Equal(t, "3", q.String())

	_, err = m.ColumnRat(1)
	require.ErrorIs(t, err, matrix.ErrZeroEntry)

	_, err = m.ColumnRat(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	q.SetInt64(100)
	q2, err := m.ColumnTrunc(0)
	require.NoError(t, err)
	require.Equal(t, "3", q2.String(), "ColumnTrunc returns a fresh value")
	require.Equal(t, "7", m.Entry(0, 0).String(), "reading a column leaves the matrix intact")

	neg := mustInts(t, 2, 1, -7, 2)
	q, err = neg.ColumnTrunc(0)
	require.NoError(t, err)
	require.Equal(t, "-3", q.String(), "truncation is toward zero")
}

// TestTermAndEmit checks that emitting a term undoes ingesting it.
func TestTermAndEmit(t *testing.T) {
	term := rational.MustNew(5, 3)
	coef := mustInts(t, 2, 2, 2, 1, 0, 1) // 2x+1

	in, err := matrix.Mul(coef, matrix.TermMatrix(term))
	require.NoError(t, err)
	require.True(t, in.Equal(mustInts(t, 2, 2, 13, 6, 3, 0)), "got %s", in)

	// [[0,q],[q,-p]] × [[p,q],[q,0]] = q²·I, so emit∘ingest is a scalar.
	back, err := matrix.Mul(matrix.EmitMatrix(term), matrix.TermMatrix(term))
	require.NoError(t, err)
	require.True(t, back.Equal(mustInts(t, 2, 2, 9, 0, 0, 9)), "got %s", back)
}

// TestDet2 checks the 2×2 determinant and its shape guard.
func TestDet2(t *testing.T) {
	d, err := mustInts(t, 2, 2, 3, 7, 2, 5).Det2()
	require.NoError(t, err)
	require.Equal(t, "1", d.String())

	_, err = mustInts(t, 2, 4, 0, 1, 1, 0, 0, 0, 0, 1).Det2()
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
