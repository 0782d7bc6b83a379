// Package cf implements exact arithmetic on continued fractions.
//
// A CF is one of seven sealed variants:
//
//   - Rational: a single exact value, never expanded lazily.
//   - Periodic: an initial term list followed by a repeating block.
//   - Formula: terms given by a pure function of the index.
//   - Homographic: (aX+b)/(cX+d) over one source CF.
//   - Bihomographic: (aXY+bX+cY+d)/(eXY+fX+gY+h) over two source CFs.
//   - SqrtComposite: √X over one source CF, found by a fixed-point search.
//   - Generalized: a0 + b1/(a1 + b2/(a2 + …)) from generator functions.
//
// Composite variants are lazy. Requesting a term or a decimal expansion
// drives Gosper's algorithm, which pulls only as many source terms as it
// needs and memoizes every term it emits. Negate and Invert reuse the memo
// instead of recomputing it.
//
// Arithmetic goes through Add, Sub, Mul, Div and Sqrt. They dispatch on the
// variant pair through read-only tables built at package initialization, so
// a rational operand is folded into an existing coefficient matrix rather
// than wrapped in another layer.
//
// Partial quotients are truncated toward zero, so negating a CF negates each
// of its terms. All arithmetic is exact (math/big); floats appear only in
// Float and FromFloat.
//
// A CF is not safe for concurrent use: computing terms mutates its memo.
// Clone gives an independent copy.
//
// Example:
//
//	x, _ := cf.SqrtRational(rational.FromInt(2))
//	y, _ := cf.Add(x, cf.FromInt(1))
//	s, _ := y.DecimalString(10) // "2.4142135624"
package cf
