package cf_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cfrac/cf"
)

// TestPeriodicCanonical checks that zero pairs and boundary zeros are
// normalized away without changing the value.
func TestPeriodicCanonical(t *testing.T) {
	cases := []struct {
		name                 string
		init, per            []int64
		wantInit, wantRepeat []string
	}{
		{"leading zero pair", []int64{0, 0, 1}, []int64{2}, []string{"1"}, []string{"2"}},
		{"zeros around block", []int64{1}, []int64{0, 3, 0}, []string{"1", "0"}, []string{"3"}},
		{"zero across boundary", []int64{1, 0}, []int64{0, 3}, []string{"1"}, []string{"3", "0"}},
		{"already canonical", nil, []int64{1, 2}, []string{}, []string{"1", "2"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			x, err := cf.NewPeriodic(ints(c.init...), ints(c.per...))
			require.NoError(t, err)
			p := x.(*cf.Periodic)
			require.Equal(t, c.wantInit, strs(p.Initial()))
			require.Equal(t, c.wantRepeat, strs(p.Repeating()))
		})
	}
}

// TestPeriodicDegenerate covers the inputs that are not periodic at all.
func TestPeriodicDegenerate(t *testing.T) {
	_, err := cf.NewPeriodic(nil, nil)
	require.ErrorIs(t, err, cf.ErrInvalidArgument)

	_, err = cf.NewPeriodic(ints(1), ints(0, 0))
	require.ErrorIs(t, err, cf.ErrInvalidArgument)

	x, err := cf.NewPeriodic(ints(3, 7, 16), nil)
	require.NoError(t, err)
	require.Equal(t, cf.KindRational, x.Kind())
	require.Equal(t, "355/113", x.(*cf.Rational).Value().String())
}

// TestPeriodicTerms reads through the initial list into the block.
func TestPeriodicTerms(t *testing.T) {
	x := sqrtOf(t, 2)
	require.Equal(t, cf.KindPeriodic, x.Kind())
	require.Equal(t, []string{"1", "2", "2", "2", "2"}, terms(t, x, 5))
	require.Equal(t, cf.Infinite, x.Known())
	require.True(t, x.FullyKnown())
	require.Equal(t, "Periodic[init=[1] repeat=[2]]", x.String())

	_, err := x.Term(-1)
	require.ErrorIs(t, err, cf.ErrInvalidArgument)
}

func TestPeriodicDecimal(t *testing.T) {
	require.Equal(t, "1.414213562373", decimal(t, sqrtOf(t, 2), 12))
	require.Equal(t, "1.732050807569", decimal(t, sqrtOf(t, 3), 12))
	require.Equal(t, "1.618033988750", decimal(t, golden(t), 12))
	require.Equal(t, "1", decimal(t, sqrtOf(t, 2), 0))

	_, err := golden(t).DecimalString(-1)
	require.Error(t, err)
}

// TestPeriodicNegateInvert checks the term-level transformations.
func TestPeriodicNegateInvert(t *testing.T) {
	x := sqrtOf(t, 2)

	neg := x.Negate()
	require.Equal(t, []string{"-1", "-2", "-2"}, terms(t, neg, 3))
	require.Equal(t, "-1.414213562373", decimal(t, neg, 12))

	inv, err := x.Invert()
	require.NoError(t, err)
	p := inv.(*cf.Periodic)
	require.Equal(t, []string{"0", "1"}, strs(p.Initial()))
	require.Equal(t, "0.7071067812", decimal(t, inv, 10))

	back, err := inv.Invert()
	require.NoError(t, err)
	require.Equal(t, []string{"1"}, strs(back.(*cf.Periodic).Initial()))
	require.Equal(t, []string{"2"}, strs(back.(*cf.Periodic).Repeating()))
}

// TestPeriodicStepLimit bounds the number of terms a request may fold.
func TestPeriodicStepLimit(t *testing.T) {
	x := sqrtOf(t, 2, cf.WithStepLimit(5))
	_, err := x.DecimalString(30)
	require.ErrorIs(t, err, cf.ErrStepLimit)

	s, err := x.DecimalString(1)
	require.NoError(t, err)
	require.Equal(t, "1.4", s)
}
