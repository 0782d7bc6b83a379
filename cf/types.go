package cf

import (
	"math"

	"github.com/katalvlaran/cfrac/rational"
)

// Kind tags the variant behind a CF.
type Kind int

const (
	KindRational Kind = iota
	KindPeriodic
	KindFormula
	KindHomographic
	KindBihomographic
	KindSqrt
	KindGeneralized

	numKinds
)

var kindNames = [numKinds]string{
	KindRational:      "Rational",
	KindPeriodic:      "Periodic",
	KindFormula:       "Formula",
	KindHomographic:   "Homographic",
	KindBihomographic: "Bihomographic",
	KindSqrt:          "Sqrt",
	KindGeneralized:   "Generalized",
}

// String returns the variant name.
func (k Kind) String() string {
	if k < 0 || k >= numKinds {
		return "Kind(?)"
	}
	return kindNames[k]
}

// Infinite is what Known reports for variants whose terms are all
// available without computation.
const Infinite = math.MaxInt

// CF is a real number held as a (possibly infinite) continued fraction.
//
// Term returns the i-th partial quotient (i ≥ 0), computing and memoizing
// earlier terms as needed. Terms of simple continued fractions are integers;
// the bihomographic and square-root engines may emit digit-bounded
// fractions when they extract a term heuristically.
//
// The set of implementations is closed; see Kind.
type CF interface {
	// Kind reports the variant.
	Kind() Kind
	// Term returns the i-th partial quotient.
	// A Rational returns ErrUnsupportedOperation.
	Term(i int) (rational.Rat, error)
	// Known returns how many terms are available without further stepping,
	// or Infinite for fully known variants.
	Known() int
	// DecimalString returns the value rounded to prec digits after the point.
	DecimalString(prec int) (string, error)
	// Negate returns -x, reusing computed terms.
	Negate() CF
	// Invert returns 1/x, reusing computed terms.
	Invert() (CF, error)
	// Clone returns a deep copy whose state evolves independently.
	Clone() CF
	// FullyKnown reports whether every term was known at construction.
	FullyKnown() bool
	// String describes the variant and its current state.
	String() string

	sealed()
}
