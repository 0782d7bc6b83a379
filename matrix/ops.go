package matrix

import (
	"math/big"

	"github.com/katalvlaran/cfrac/rational"
)

// Mul returns the product a×b as a new matrix.
// Stage 1 (Validate): non-nil operands and a.Cols == b.Rows.
// Stage 2 (Execute): naive triple loop; matrices here are at most 4×4.
// Complexity: O(n·m·p) big-integer multiplications.
func Mul(a, b *Dense) (*Dense, error) {
	if a == nil || b == nil {
		return nil, ErrNilMatrix
	}
	if a.c != b.r {
		return nil, ErrDimensionMismatch
	}
	out, _ := NewDense(a.r, b.c)
	t := new(big.Int)
	for i := 0; i < a.r; i++ {
		for j := 0; j < b.c; j++ {
			acc := out.data[i*out.c+j]
			for k := 0; k < a.c; k++ {
				x, y := a.data[i*a.c+k], b.data[k*b.c+j]
				if x.Sign() == 0 || y.Sign() == 0 {
					continue
				}
				acc.Add(acc, t.Mul(x, y))
			}
		}
	}

	return out, nil
}

// GCD returns the non-negative greatest common divisor of all elements.
// The GCD of an all-zero matrix is 0.
func (m *Dense) GCD() *big.Int {
	g := new(big.Int)
	abs := new(big.Int)
	for _, v := range m.data {
		if v.Sign() == 0 {
			continue
		}
		abs.Abs(v)
		if g.Sign() == 0 {
			g.Set(abs)
		} else {
			g.GCD(nil, nil, g, abs)
		}
		if g.Cmp(big.NewInt(1)) == 0 {
			break
		}
	}

	return g
}

// Reduce divides every element by the overall GCD in place.
// All column ratios are unchanged. An all-zero matrix is left untouched.
func (m *Dense) Reduce() {
	g := m.GCD()
	if g.Sign() == 0 || g.IsInt64() && g.Int64() == 1 {
		return
	}
	for _, v := range m.data {
		v.Quo(v, g)
	}
}

// SwapRows exchanges rows i and j in place.
func (m *Dense) SwapRows(i, j int) error {
	if _, err := m.indexOf("SwapRows", i, 0); err != nil {
		return err
	}
	if _, err := m.indexOf("SwapRows", j, 0); err != nil {
		return err
	}
	for k := 0; k < m.c; k++ {
		m.data[i*m.c+k], m.data[j*m.c+k] = m.data[j*m.c+k], m.data[i*m.c+k]
	}

	return nil
}

// NegateRow flips the sign of every element of row i in place.
func (m *Dense) NegateRow(i int) error {
	if _, err := m.indexOf("NegateRow", i, 0); err != nil {
		return err
	}
	for k := 0; k < m.c; k++ {
		v := m.data[i*m.c+k]
		v.Neg(v)
	}

	return nil
}

// ColumnRat reads column j of a matrix as the fraction m[0][j]/m[1][j].
// Returns ErrZeroEntry when m[1][j] == 0.
func (m *Dense) ColumnRat(j int) (rational.Rat, error) {
	num, den, err := m.column(j)
	if err != nil {
		return rational.Rat{}, err
	}

	return rational.NewBig(num, den)
}

// ColumnTrunc returns m[0][j]/m[1][j] truncated toward zero.
// Returns ErrZeroEntry when m[1][j] == 0.
func (m *Dense) ColumnTrunc(j int) (*big.Int, error) {
	num, den, err := m.column(j)
	if err != nil {
		return nil, err
	}

	return num.Quo(num, den), nil
}

func (m *Dense) column(j int) (*big.Int, *big.Int, error) {
	if m.r < 2 {
		return nil, nil, ErrDimensionMismatch
	}
	den, err := m.at(1, j)
	if err != nil {
		return nil, nil, err
	}
	if den.Sign() == 0 {
		return nil, nil, denseErrorf("Column", 1, j, ErrZeroEntry)
	}
	num, _ := m.at(0, j)

	return num, den, nil
}

// TermMatrix returns [[p, q], [q, 0]] for the term p/q.
// Right-multiplying a coefficient matrix by it substitutes x = t + 1/x'.
func TermMatrix(t rational.Rat) *Dense {
	p, q := t.Num(), t.Den()
	m, _ := NewFromBig(2, 2, p, q, q, nil)

	return m
}

// EmitMatrix returns [[0, q], [q, -p]] for the term p/q.
// Left-multiplying a coefficient matrix by it maps a value v to 1/(v - t).
func EmitMatrix(t rational.Rat) *Dense {
	p, q := t.Num(), t.Den()
	m, _ := NewFromBig(2, 2, nil, q, q, p.Neg(p))

	return m
}

// Det2 returns the determinant of a 2×2 matrix.
func (m *Dense) Det2() (*big.Int, error) {
	if m.r != 2 || m.c != 2 {
		return nil, ErrDimensionMismatch
	}
	ad := new(big.Int).Mul(m.data[0], m.data[3])
	bc := new(big.Int).Mul(m.data[1], m.data[2])

	return ad.Sub(ad, bc), nil
}
