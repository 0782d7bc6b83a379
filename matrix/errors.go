// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All functions return these sentinels (possibly wrapped with method context)
// and tests match them via errors.Is. Nothing here panics on user input
// except the Entry accessor, which is reserved for callers that own the shape.

package matrix

import "errors"

// Every message is prefixed with "matrix: ..." so failures are easy to grep.
// Wrap with fmt.Errorf("ctx: %w", ErrX) at the outer boundary when context helps.

var (
	// ErrBadShape is returned when a requested shape is invalid (rows<=0 or cols<=0),
	// or when the number of supplied values does not match rows*cols.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operands, e.g. Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil *Dense was passed where a matrix was required.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrZeroEntry signals a column ratio whose denominator entry is zero.
	ErrZeroEntry = errors.New("matrix: zero denominator entry")
)
