package cf_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cfrac/cf"
)

// eTerms is [2; 1, 2, 1, 1, 4, 1, 1, 6, …].
func eTerms(i int) *big.Int {
	switch {
	case i == 0:
		return big.NewInt(2)
	case i%3 == 2:
		return big.NewInt(int64(2 * (i + 1) / 3))
	}
	return big.NewInt(1)
}

func TestFormula(t *testing.T) {
	x, err := cf.NewFormula(eTerms)
	require.NoError(t, err)

	require.Equal(t, cf.KindFormula, x.Kind())
	require.Equal(t, []string{"2", "1", "2", "1", "1", "4"}, terms(t, x, 6))
	require.Equal(t, "2.718281828459", decimal(t, x, 12))
	require.Equal(t, "Formula[2, 1, 2, 1, 1, 4, 1, 1, …]", x.String())
	require.True(t, x.FullyKnown())

	_, err = cf.NewFormula(nil)
	require.ErrorIs(t, err, cf.ErrInvalidArgument)
}

// TestFormulaNegateInvert checks the index shifts of Invert.
func TestFormulaNegateInvert(t *testing.T) {
	x, _ := cf.NewFormula(eTerms)

	neg := x.Negate()
	require.Equal(t, []string{"-2", "-1", "-2"}, terms(t, neg, 3))
	require.Equal(t, "-2.718281828459", decimal(t, neg, 12))

	inv, err := x.Invert()
	require.NoError(t, err)
	require.Equal(t, []string{"0", "2", "1"}, terms(t, inv, 3))

	back, err := inv.Invert()
	require.NoError(t, err)
	require.Equal(t, []string{"2", "1", "2"}, terms(t, back, 3))
}

// TestFormulaSqrtHook makes Sqrt use the closed form.
func TestFormulaSqrtHook(t *testing.T) {
	root := sqrtOf(t, 2)
	x, err := cf.NewFormulaWithSqrt(func(int) *big.Int { return big.NewInt(2) }, func() cf.CF { return root })
	require.NoError(t, err)

	got, err := cf.Sqrt(x)
	require.NoError(t, err)
	require.Same(t, root, got)

	require.Equal(t, cf.KindSqrt, must(t)(cf.Sqrt(x.Negate().Negate())).Kind(),
		"negation drops the hook")
}
