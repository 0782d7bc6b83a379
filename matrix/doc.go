// Package matrix provides exact integer matrices over math/big.
//
// The package provides:
//
//   - Dense, a row-major matrix of *big.Int with read-only Entry access,
//     deep Clone and a compact String form. Constructors copy their inputs
//     and column readers return copies, so callers never share storage.
//   - Mul for exact products, the only operation the Gosper state machines
//     need: every ingest and emit step is a left or right multiplication.
//   - Reduce, which divides all entries by their common GCD to keep
//     coefficients small without changing any column ratio.
//   - Column ratio helpers (ColumnRat, ColumnTrunc) that read a 2-row matrix
//     as the fractions m[0][j]/m[1][j].
//   - Constructors for the continued-fraction step matrices (TermMatrix,
//     EmitMatrix).
//
// Matrices here are tiny (2×2 up to 4×4) but their entries grow without
// bound, so all arithmetic allocates fresh big.Int values and never aliases
// caller-owned integers.
package matrix
