package cf

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/cfrac/rational"
)

// Periodic is an eventually periodic CF: the initial terms followed by the
// repeating block forever. Every quadratic irrational has this form.
//
// The lists are kept canonical: no adjacent zero pair remains (a pair of
// zero terms is the identity), and boundary zeros are moved so that the
// block neither starts and ends with 0 nor starts with 0 right after an
// initial list ending in 0.
type Periodic struct {
	initial, period []*big.Int
	opts            Options
}

// NewPeriodic builds initial + repeat(period).
//
// An empty period yields the Rational of the initial terms. Both lists
// empty, or a period made only of zeros, fail with ErrInvalidArgument.
func NewPeriodic(initial, period []*big.Int, opts ...Option) (CF, error) {
	if len(period) == 0 {
		if len(initial) == 0 {
			return nil, fmt.Errorf("periodic: no terms: %w", ErrInvalidArgument)
		}
		r, err := FromTerms(initial)
		if err != nil {
			return nil, err
		}
		return r, nil
	}
	if allZero(period) {
		return nil, fmt.Errorf("periodic: repeating block %v is all zero: %w", period, ErrInvalidArgument)
	}
	init, per := canonicalPeriodic(copyTerms(initial), copyTerms(period))

	return &Periodic{initial: init, period: per, opts: gatherOptions(opts...)}, nil
}

// canonicalPeriodic removes zero pairs and rebalances boundary zeros until
// nothing changes. Every rule shortens the lists, so this terminates.
func canonicalPeriodic(init, per []*big.Int) ([]*big.Int, []*big.Int) {
	for {
		init, per = dropZeroPairs(init), dropZeroPairs(per)
		switch {
		case len(per) > 1 && per[0].Sign() == 0 && per[len(per)-1].Sign() == 0:
			// 0,x..,0 | 0,x..,0 = 0 | x.., x..
			init = append(init, new(big.Int))
			per = per[1 : len(per)-1]
		case len(init) > 0 && init[len(init)-1].Sign() == 0 && per[0].Sign() == 0:
			// ..,0 | 0,x.. = .. | x..,0
			init = init[:len(init)-1]
			per = append(per[1:len(per):len(per)], new(big.Int))
		default:
			return init, per
		}
	}
}

// dropZeroPairs removes adjacent pairs of zero terms.
// [[0,1],[1,0]] squares to the identity, so the value is unchanged.
func dropZeroPairs(ts []*big.Int) []*big.Int {
	out := make([]*big.Int, 0, len(ts))
	for _, t := range ts {
		if t.Sign() == 0 && len(out) > 0 && out[len(out)-1].Sign() == 0 {
			out = out[:len(out)-1]
			continue
		}
		out = append(out, t)
	}
	return out
}

func allZero(ts []*big.Int) bool {
	for _, t := range ts {
		if t.Sign() != 0 {
			return false
		}
	}
	return true
}

func copyTerms(ts []*big.Int) []*big.Int {
	out := make([]*big.Int, len(ts))
	for i, t := range ts {
		out[i] = new(big.Int).Set(t)
	}
	return out
}

func negTerms(ts []*big.Int) []*big.Int {
	out := make([]*big.Int, len(ts))
	for i, t := range ts {
		out[i] = new(big.Int).Neg(t)
	}
	return out
}

// Initial returns a copy of the non-repeating prefix.
func (p *Periodic) Initial() []*big.Int { return copyTerms(p.initial) }

// Repeating returns a copy of the repeating block.
func (p *Periodic) Repeating() []*big.Int { return copyTerms(p.period) }

func (p *Periodic) Kind() Kind { return KindPeriodic }

func (p *Periodic) Term(i int) (rational.Rat, error) {
	if i < 0 {
		return rational.Rat{}, ErrInvalidArgument
	}
	if i < len(p.initial) {
		return rational.FromBigInt(p.initial[i]), nil
	}
	i -= len(p.initial)
	return rational.FromBigInt(p.period[i%len(p.period)]), nil
}

func (p *Periodic) Known() int { return Infinite }

func (p *Periodic) DecimalString(prec int) (string, error) {
	return expandDecimal(p.Term, prec, p.opts.budget())
}

func (p *Periodic) Negate() CF {
	return &Periodic{initial: negTerms(p.initial), period: negTerms(p.period), opts: p.opts}
}

// Invert prepends a zero term; canonicalization absorbs a leading zero.
func (p *Periodic) Invert() (CF, error) {
	init := append([]*big.Int{new(big.Int)}, copyTerms(p.initial)...)
	i, per := canonicalPeriodic(init, copyTerms(p.period))
	return &Periodic{initial: i, period: per, opts: p.opts}, nil
}

func (p *Periodic) Clone() CF {
	return &Periodic{initial: copyTerms(p.initial), period: copyTerms(p.period), opts: p.opts}
}

func (p *Periodic) FullyKnown() bool { return true }

func (p *Periodic) String() string {
	return fmt.Sprintf("Periodic[init=%v repeat=%v]", p.initial, p.period)
}

func (*Periodic) sealed() {}
