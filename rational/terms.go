package rational

import (
	"math"
	"math/big"
)

// ToTerms expands x into its finite simple continued fraction.
// Terms are integer parts truncated toward zero, so every term of a negative
// value is non-positive. ToTerms(0) is [0].
//
// Complexity: O(log den) big-integer divisions.
func (x Rat) ToTerms() []*big.Int {
	num := x.Num()
	den := x.Den()
	terms := make([]*big.Int, 0, 8)
	for {
		q, r := new(big.Int).QuoRem(num, den, new(big.Int))
		terms = append(terms, q)
		if r.Sign() == 0 {
			return terms
		}
		num, den = den, r
	}
}

// FromTerms folds a finite continued fraction back into a Rat.
// Returns ErrZeroDenominator for an empty list or for a term sequence whose
// value is undefined (for example [1, 0]).
func FromTerms(terms []*big.Int) (Rat, error) {
	if len(terms) == 0 {
		return Rat{}, ErrZeroDenominator
	}
	h, k, err := fold(terms)
	if err != nil {
		return Rat{}, err
	}
	return NewBig(h, k)
}

// Convergents returns the successive convergents p_i/q_i of terms.
// A prefix whose value is undefined stops the list early.
func Convergents(terms []*big.Int) []Rat {
	out := make([]Rat, 0, len(terms))
	// Stage 1: running projective pair (h, k), seeded with (1,0), (0,1).
	h0, h1 := big.NewInt(0), big.NewInt(1)
	k0, k1 := big.NewInt(1), big.NewInt(0)
	for _, t := range terms {
		h0, h1 = h1, new(big.Int).Add(new(big.Int).Mul(t, h1), h0)
		k0, k1 = k1, new(big.Int).Add(new(big.Int).Mul(t, k1), k0)
		// Stage 2: emit while the denominator is defined.
		if k1.Sign() == 0 {
			break
		}
		r, _ := NewBig(h1, k1)
		out = append(out, r)
	}
	return out
}

// fold evaluates terms as the product of [[t,1],[1,0]] matrices.
func fold(terms []*big.Int) (*big.Int, *big.Int, error) {
	h0, h1 := big.NewInt(0), big.NewInt(1)
	k0, k1 := big.NewInt(1), big.NewInt(0)
	for _, t := range terms {
		h0, h1 = h1, new(big.Int).Add(new(big.Int).Mul(t, h1), h0)
		k0, k1 = k1, new(big.Int).Add(new(big.Int).Mul(t, k1), k0)
	}
	if k1.Sign() == 0 {
		return nil, nil, ErrZeroDenominator
	}
	return h1, k1, nil
}

// FloatTerms returns the first n partial quotients of f, computed in
// float64 arithmetic. Expansion stops early once the remainder vanishes,
// so only the leading terms are trustworthy for irrational inputs.
func FloatTerms(f float64, n int) []*big.Int {
	out := make([]*big.Int, 0, n)
	for i := 0; i < n; i++ {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			break
		}
		ip := math.Trunc(f)
		bi, _ := big.NewFloat(ip).Int(nil)
		out = append(out, bi)
		rest := f - ip
		if rest == 0 || math.IsInf(1/rest, 0) {
			break
		}
		f = 1 / rest
	}
	return out
}
