// Package constants provides continued fractions of classical constants and
// elementary functions at rational arguments.
//
// Two families are offered:
//
//   - Regular expansions with a closed-form term pattern, returned as
//     *cf.Formula: E, ESquared, E1N, E2N, Tan1, Tan1N, Tanh1N. The e-family
//     carries square-root hooks, so cf.Sqrt(E()) is E1N(2) exactly.
//   - Generalized expansions a0 + b1/(a1 + b2/(a2 + …)) with rational
//     elements, returned as *cf.Generalized: Pi, Exp, Ln1PlusX, Arctan, Sin,
//     Cos, Arcsin, Sinh, Cosh.
//
// GoldenRatio is the periodic [1; 1, 1, …].
//
// Arguments outside a function's domain fail with cf.ErrInvalidArgument.
// Arguments where the function takes a rational value (Sin(0), Cos(0), …)
// return that value as a *cf.Rational.
//
// Example:
//
//	x, _ := constants.Exp(rational.FromInt(6))
//	s, _ := x.DecimalString(4) // "403.4288"
package constants
