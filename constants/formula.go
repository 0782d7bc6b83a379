package constants

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/cfrac/cf"
)

// formula wraps a term pattern that is known to be non-nil.
func formula(f func(int) *big.Int, sqrt func() cf.CF, opts []cf.Option) *cf.Formula {
	x, _ := cf.NewFormulaWithSqrt(f, sqrt, opts...)
	return x
}

// E returns e = [2; 1, 2, 1, 1, 4, 1, 1, 6, …]. Its square root is E1N(2).
func E(opts ...cf.Option) *cf.Formula {
	f := func(i int) *big.Int {
		switch {
		case i == 0:
			return big.NewInt(2)
		case i%3 == 2:
			return big.NewInt(int64(2 * (i + 1) / 3))
		}
		return big.NewInt(1)
	}
	return formula(f, func() cf.CF { return e1n(2, opts) }, opts)
}

// ESquared returns e² = [7; 2, 1, 1, 3, 18, 5, 1, 1, 6, 30, …].
// Its square root is E.
func ESquared(opts ...cf.Option) *cf.Formula {
	f := func(i int) *big.Int {
		n := int64(i)
		switch {
		case i == 0:
			return big.NewInt(7)
		case i%5 == 2 || i%5 == 3:
			return big.NewInt(1)
		case i%5 == 4:
			return big.NewInt((3*n + 3) / 5)
		case i%5 == 0:
			return big.NewInt((12*n + 30) / 5)
		}
		return big.NewInt((3*n + 7) / 5)
	}
	return formula(f, func() cf.CF { return E(opts...) }, opts)
}

// E1N returns e^(1/n) = [1; n-1, 1, 1, 3n-1, 1, 1, 5n-1, …] for n ≥ 1.
// Its square root is E1N(2n).
func E1N(n int64, opts ...cf.Option) (*cf.Formula, error) {
	if n < 1 {
		return nil, fmt.Errorf("e^(1/%d): n must be positive: %w", n, cf.ErrInvalidArgument)
	}
	return e1n(n, opts), nil
}

func e1n(n int64, opts []cf.Option) *cf.Formula {
	bn := big.NewInt(n)
	f := func(i int) *big.Int {
		if i%3 != 1 {
			return big.NewInt(1)
		}
		// i = 3k+1 holds (2k+1)·n - 1
		t := big.NewInt(int64(1 + 2*i/3))
		t.Mul(t, bn)
		return t.Sub(t, big.NewInt(1))
	}
	return formula(f, func() cf.CF { return e1n(2*n, opts) }, opts)
}

// E2N returns e^(2/n) for odd n ≥ 1. Its square root is E1N(n).
func E2N(n int64, opts ...cf.Option) (*cf.Formula, error) {
	if n < 1 || n%2 == 0 {
		return nil, fmt.Errorf("e^(2/%d): n must be odd and positive: %w", n, cf.ErrInvalidArgument)
	}
	f := func(i int) *big.Int {
		k := int64(i / 5)
		switch i % 5 {
		case 1:
			return big.NewInt(((6*k+1)*n - 1) / 2)
		case 2:
			return big.NewInt((6 + 12*k) * n)
		case 3:
			return big.NewInt(((5+6*k)*n - 1) / 2)
		}
		return big.NewInt(1)
	}
	return formula(f, func() cf.CF { return e1n(n, opts) }, opts), nil
}

// Tan1 returns tan 1 = [1; 1, 1, 3, 1, 5, 1, 7, …].
func Tan1(opts ...cf.Option) *cf.Formula {
	f := func(i int) *big.Int {
		if i%2 == 1 {
			return big.NewInt(int64(i))
		}
		return big.NewInt(1)
	}
	return formula(f, nil, opts)
}

// Tan1N returns tan(1/n) = [0; n-1, 1, 3n-2, 1, 5n-2, …] for n ≥ 1.
func Tan1N(n int64, opts ...cf.Option) (*cf.Formula, error) {
	if n < 1 {
		return nil, fmt.Errorf("tan(1/%d): n must be positive: %w", n, cf.ErrInvalidArgument)
	}
	if n == 1 {
		return Tan1(opts...), nil
	}
	f := func(i int) *big.Int {
		switch {
		case i == 0:
			return big.NewInt(0)
		case i == 1:
			return big.NewInt(n - 1)
		case i%2 == 0:
			return big.NewInt(1)
		}
		return big.NewInt(n*int64(i) - 2)
	}
	return formula(f, nil, opts), nil
}

// Tanh1N returns tanh(1/n) = [0; n, 3n, 5n, …] for n ≥ 1.
func Tanh1N(n int64, opts ...cf.Option) (*cf.Formula, error) {
	if n < 1 {
		return nil, fmt.Errorf("tanh(1/%d): n must be positive: %w", n, cf.ErrInvalidArgument)
	}
	f := func(i int) *big.Int {
		if i == 0 {
			return big.NewInt(0)
		}
		return big.NewInt((2*int64(i) - 1) * n)
	}
	return formula(f, nil, opts), nil
}

// GoldenRatio returns φ = [1; 1, 1, …].
func GoldenRatio(opts ...cf.Option) cf.CF {
	x, _ := cf.NewPeriodic(nil, []*big.Int{big.NewInt(1)}, opts...)
	return x
}
