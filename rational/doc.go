// Package rational provides the exact rational numbers that continued
// fractions are built from.
//
// A Rat is an immutable value over math/big: every operation returns a new
// Rat and never mutates its receiver, so values can be shared freely between
// composites without copying. The denominator is always positive and
// the fraction is always in lowest terms.
//
// What lives here:
//
//   - arithmetic (Add, Sub, Mul, Quo, Neg, Inv, Abs) and comparison helpers
//     (Cmp, Dist, Min, Max, Average);
//   - truncation toward zero (Trunc, Frac), which is the partial-quotient
//     convention used throughout the cf package;
//   - conversion between a rational and its simple continued-fraction term
//     list (ToTerms, FromTerms, Convergents);
//   - fixed-precision decimal formatting (DecimalString) with
//     bias-then-truncate rounding;
//   - a literal parser (Parse) for inputs such as "-355/113" or " 42 ".
//
// Division by zero never panics; it is reported as ErrZeroDenominator.
package rational
