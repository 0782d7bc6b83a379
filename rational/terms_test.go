package rational_test

import (
	"math"
	"math/big"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/cfrac/rational"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ints(xs ...int64) []*big.Int {
	out := make([]*big.Int, len(xs))
	for i, x := range xs {
		out[i] = big.NewInt(x)
	}
	return out
}

func strs(xs []*big.Int) []string {
	out := make([]string, len(xs))
	for i, x := range xs {
		out[i] = x.String()
	}
	return out
}

// TestToTerms covers positive, negative and integral inputs.
func TestToTerms(t *testing.T) {
	cases := []struct {
		in   rational.Rat
		want []string
	}{
		{rational.MustNew(355, 113), []string{"3", "7", "16"}},
		{rational.MustNew(100, 3), []string{"33", "3"}},
		{rational.MustNew(-355, 113), []string{"-3", "-7", "-16"}},
		{rational.MustNew(3, 7), []string{"0", "2", "3"}},
		{rational.Zero(), []string{"0"}},
		{rational.FromInt(-4), []string{"-4"}},
	}
	for _, c := range cases {
		got := strs(c.in.ToTerms())
		if diff := cmp.Diff(c.want, got); diff != "" {
			t.Errorf("ToTerms(%s) mismatch (-want +got):\n%s", c.in, diff)
		}
	}
}

// TestTermsRoundTrip checks list -> rational -> list for canonical lists.
func TestTermsRoundTrip(t *testing.T) {
	lists := [][]int64{
		{1, 2, 2, 2, 2},
		{0, 1, 5, 3},
		{3, 7, 15, 1, 292},
		{-2, -3, -4},
		{42},
	}
	for _, l := range lists {
		r, err := rational.FromTerms(ints(l...))
		require.NoError(t, err, "FromTerms(%v)", l)
		got := strs(r.ToTerms())
		assert.Equal(t, strs(ints(l...)), got, "round trip of %v", l)
	}
}

// TestFromTerms_Errors covers empty and undefined sequences.
func TestFromTerms_Errors(t *testing.T) {
	_, err := rational.FromTerms(nil)
	assert.ErrorIs(t, err, rational.ErrZeroDenominator)

	_, err = rational.FromTerms(ints(1, 0))
	assert.ErrorIs(t, err, rational.ErrZeroDenominator)
}

// TestConvergents checks the classic pi prefix.
func TestConvergents(t *testing.T) {
	got := rational.Convergents(ints(3, 7, 15, 1))
	want := []string{"3", "22/7", "333/106", "355/113"}
	require.Len(t, got, len(want))
	for i := range want {
		assert.Equal(t, want[i], got[i].String(), "convergent %d", i)
	}

	assert.Len(t, rational.Convergents(ints(1, 0, 2)), 1, "stops at undefined prefix")
}

// TestFloatTerms expands a float and stops on an exact remainder.
func TestFloatTerms(t *testing.T) {
	assert.Equal(t, []string{"3", "7", "15", "1"}, strs(rational.FloatTerms(math.Pi, 4)))
	assert.Equal(t, []string{"2", "2"}, strs(rational.FloatTerms(2.5, 10)))
	assert.Empty(t, rational.FloatTerms(math.NaN(), 3))
}
