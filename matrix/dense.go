// Dense is a row-major matrix of exact integers,
// storing elements in a flat slice for cache friendliness.
package matrix

import (
	"fmt"
	"math/big"
	"strings"
)

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of *big.Int values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
// Every stored element is owned by the matrix.
type Dense struct {
	r, c int        // number of rows and columns
	data []*big.Int // flat backing storage, length == r*c
}

// NewDense creates an r×c Dense matrix initialized to zeros.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate flat backing slice of fresh zeros.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}
	data := make([]*big.Int, rows*cols)
	for i := range data {
		data[i] = new(big.Int)
	}

	return &Dense{r: rows, c: cols, data: data}, nil
}

// NewFromInts builds a rows×cols matrix from vals in row-major order.
// Returns ErrBadShape if the shape is invalid or len(vals) != rows*cols.
func NewFromInts(rows, cols int, vals ...int64) (*Dense, error) {
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	if len(vals) != rows*cols {
		return nil, ErrBadShape
	}
	for i, v := range vals {
		m.data[i].SetInt64(v)
	}

	return m, nil
}

// NewFromBig is NewFromInts for big integers. Values are copied; a nil
// element is read as zero.
func NewFromBig(rows, cols int, vals ...*big.Int) (*Dense, error) {
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	if len(vals) != rows*cols {
		return nil, ErrBadShape
	}
	for i, v := range vals {
		if v == nil {
			continue
		}
		if err := m.set(i/cols, i%cols, v); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// Identity returns the n×n identity matrix.
func Identity(n int) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i].SetInt64(1)
	}

	return m, nil
}

// Rows returns the number of rows in the matrix.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns in the matrix.
func (m *Dense) Cols() int { return m.c }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// at returns a copy of the element at (row, col).
// Complexity: O(1) plus the copy.
func (m *Dense) at(row, col int) (*big.Int, error) {
	idx, err := m.indexOf("at", row, col)
	if err != nil {
		return nil, err
	}

	return new(big.Int).Set(m.data[idx]), nil
}

// set stores a copy of v at (row, col).
func (m *Dense) set(row, col int, v *big.Int) error {
	idx, err := m.indexOf("set", row, col)
	if err != nil {
		return err
	}
	m.data[idx].Set(v)

	return nil
}

// Entry returns the stored element at (row, col) without copying.
// The caller must not modify it. Panics when the index is out of range;
// out-of-range indices are a programming error here.
func (m *Dense) Entry(row, col int) *big.Int {
	idx, err := m.indexOf("Entry", row, col)
	if err != nil {
		panic(err)
	}

	return m.data[idx]
}

// IsZero reports whether every element is zero.
func (m *Dense) IsZero() bool {
	for _, v := range m.data {
		if v.Sign() != 0 {
			return false
		}
	}

	return true
}

// Equal reports whether m and o have the same shape and elements.
func (m *Dense) Equal(o *Dense) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.r != o.r || m.c != o.c {
		return false
	}
	for i := range m.data {
		if m.data[i].Cmp(o.data[i]) != 0 {
			return false
		}
	}

	return true
}

// Clone returns a deep copy of the Dense matrix.
// Complexity: O(r*c) time and memory.
func (m *Dense) Clone() *Dense {
	data := make([]*big.Int, len(m.data))
	for i, v := range m.data {
		data[i] = new(big.Int).Set(v)
	}

	return &Dense{r: m.r, c: m.c, data: data}
}

// String formats the matrix one bracketed row per line.
func (m *Dense) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteByte('[')
		for j := 0; j < m.c; j++ {
			sb.WriteString(m.data[i*m.c+j].String())
			if j < m.c-1 {
				sb.WriteString(", ")
			}
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
