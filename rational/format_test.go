package rational_test

import (
	"testing"

	"github.com/katalvlaran/cfrac/rational"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDecimalString exercises bias-then-truncate rounding.
func TestDecimalString(t *testing.T) {
	cases := []struct {
		in   rational.Rat
		prec int
		want string
	}{
		{rational.MustNew(1, 3), 4, "0.3333"},
		{rational.MustNew(2, 3), 4, "0.6667"},
		{rational.MustNew(-2, 3), 4, "-0.6667"},
		{rational.MustNew(355, 113), 6, "3.141593"},
		{rational.MustNew(1, 8), 2, "0.13"},
		{rational.MustNew(-1, 8), 2, "-0.13"},
		{rational.MustNew(5, 2), 0, "3"},
		{rational.MustNew(-5, 2), 0, "-3"},
		{rational.MustNew(7, 1), 3, "7.000"},
		{rational.MustNew(1, 1000), 5, "0.00100"},
		{rational.Zero(), 2, "0.00"},
		{rational.MustNew(999, 1000), 2, "1.00"},
	}
	for _, c := range cases {
		got, err := c.in.DecimalString(c.prec)
		require.NoError(t, err, "DecimalString(%s, %d)", c.in, c.prec)
		assert.Equal(t, c.want, got, "DecimalString(%s, %d)", c.in, c.prec)
	}
}

// TestDecimalString_NegativePrecision verifies the precision guard.
func TestDecimalString_NegativePrecision(t *testing.T) {
	_, err := rational.One().DecimalString(-1)
	assert.ErrorIs(t, err, rational.ErrNegativePrecision)
}

// TestHalfUnit checks the rounding bias constant.
func TestHalfUnit(t *testing.T) {
	assert.Equal(t, "1/2", rational.HalfUnit(0).String())
	assert.Equal(t, "1/200", rational.HalfUnit(2).String())
}

// TestDecimalString_ZeroHasNoSign checks that tiny negatives print as zero.
func TestDecimalString_ZeroHasNoSign(t *testing.T) {
	got, err := rational.MustNew(-1, 1000).DecimalString(2)
	require.NoError(t, err)
	assert.Equal(t, "0.00", got)
}

// TestBound checks that large fractions shrink while small ones survive.
func TestBound(t *testing.T) {
	x := rational.MustNew(31415926, 10000000)
	assert.Equal(t, "157/50", x.Bound(2).String())
	assert.Equal(t, "-157/50", x.Neg().Bound(2).String())
	assert.Equal(t, "22/7", rational.MustNew(22, 7).Bound(2).String())
	assert.True(t, rational.Zero().Bound(4).IsZero())
}
