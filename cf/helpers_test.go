package cf_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cfrac/cf"
	"github.com/katalvlaran/cfrac/rational"
)

// ints builds a term list.
func ints(vs ...int64) []*big.Int {
	out := make([]*big.Int, len(vs))
	for i, v := range vs {
		out[i] = big.NewInt(v)
	}
	return out
}

// sqrtOf returns the exact periodic expansion of √n.
func sqrtOf(t *testing.T, n int64, opts ...cf.Option) cf.CF {
	t.Helper()
	x, err := cf.SqrtRational(rational.FromInt(n), opts...)
	require.NoError(t, err)
	return x
}

// golden returns φ = [1; 1, 1, …].
func golden(t *testing.T) cf.CF {
	t.Helper()
	x, err := cf.NewPeriodic(nil, ints(1))
	require.NoError(t, err)
	return x
}

// decimal renders x to prec digits and fails the test on error.
func decimal(t *testing.T, x cf.CF, prec int) string {
	t.Helper()
	s, err := x.DecimalString(prec)
	require.NoError(t, err)
	return s
}

// terms reads the first n terms of x as strings.
func terms(t *testing.T, x cf.CF, n int) []string {
	t.Helper()
	out := make([]string, n)
	for i := range out {
		v, err := x.Term(i)
		require.NoError(t, err)
		out[i] = v.String()
	}
	return out
}

// strs renders big integers for comparison.
func strs(ts []*big.Int) []string {
	out := make([]string, len(ts))
	for i, v := range ts {
		out[i] = v.String()
	}
	return out
}

// must returns a checker that unwraps (CF, error) results.
func must(t *testing.T) func(cf.CF, error) cf.CF {
	return func(x cf.CF, err error) cf.CF {
		t.Helper()
		require.NoError(t, err)
		return x
	}
}
