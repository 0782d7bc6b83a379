// Package cfrac is exact real arithmetic on continued fractions.
//
// Numbers are represented by their (possibly infinite) continued fraction
// expansions and evaluated lazily: a term is computed only when asked for,
// and every request for decimal digits returns digits that are provably
// correct. Arithmetic follows Gosper's homographic and bihomographic
// algorithms, so sums, products and quotients of irrationals are again lazy
// continued fractions.
//
// The module is organized into:
//
//	rational/  — immutable exact rationals on math/big, term lists, parsing, decimal formatting
//	matrix/    — small exact integer matrices used as Gosper coefficient sets
//	cf/        — the CF variants, their engines, Add/Sub/Mul/Div/Sqrt dispatch and options
//	constants/ — e, π, e^(1/n), tan(1/n), exp, ln, trig and hyperbolic functions
//	cmd/cfcalc — a command-line calculator over all of the above
//	examples/  — runnable worked scenarios
//
// Quick example:
//
//	two, _ := cf.SqrtRational(rational.FromInt(2))
//	three, _ := cf.SqrtRational(rational.FromInt(3))
//	sum, _ := cf.Add(two, three)
//	s, _ := sum.DecimalString(12) // "3.146264369942"
//
//	go get github.com/katalvlaran/cfrac
package cfrac
