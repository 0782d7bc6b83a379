package cf_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cfrac/cf"
	"github.com/katalvlaran/cfrac/rational"
)

// TestQuadraticSurdPeriods checks known expansions of quadratic irrationals.
func TestQuadraticSurdPeriods(t *testing.T) {
	cases := []struct {
		name        string
		p, b, c     rational.Rat
		init, block []string
	}{
		{"sqrt 2", rational.FromInt(2), rational.Zero(), rational.One(), []string{"1"}, []string{"2"}},
		{"sqrt 3", rational.FromInt(3), rational.Zero(), rational.One(), []string{"1"}, []string{"1", "2"}},
		{"sqrt 3/2", rational.MustNew(3, 2), rational.Zero(), rational.One(), []string{"1"}, []string{"4", "2"}},
		{"golden ratio", rational.FromInt(5), rational.One(), rational.FromInt(2), []string{}, []string{"1"}},
		{"minus sqrt 2", rational.FromInt(2), rational.Zero(), rational.FromInt(-1), []string{"-1"}, []string{"-2"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			x, err := cf.QuadraticSurd(c.p, c.b, c.c)
			require.NoError(t, err)
			p, ok := x.(*cf.Periodic)
			require.True(t, ok, "got %s", x)
			require.Equal(t, c.init, strs(p.Initial()))
			require.Equal(t, c.block, strs(p.Repeating()))
		})
	}
}

func TestQuadraticSurdDecimal(t *testing.T) {
	phi, err := cf.QuadraticSurd(rational.FromInt(5), rational.One(), rational.FromInt(2))
	require.NoError(t, err)
	require.Equal(t, "1.618033988750", decimal(t, phi, 12))
}

// TestScaledSurd matches the unscaled form after folding a into p or c.
func TestScaledSurd(t *testing.T) {
	cases := []struct {
		name       string
		a, p, b, c rational.Rat
		same       func() (cf.CF, error)
	}{
		{"2·√3 + 1 over 4", rational.FromInt(2), rational.FromInt(3), rational.One(), rational.FromInt(4),
			func() (cf.CF, error) {
				return cf.QuadraticSurd(rational.FromInt(12), rational.One(), rational.FromInt(4))
			}},
		{"minus sqrt 2", rational.FromInt(-1), rational.FromInt(2), rational.Zero(), rational.One(),
			func() (cf.CF, error) {
				return cf.QuadraticSurd(rational.FromInt(2), rational.Zero(), rational.FromInt(-1))
			}},
		{"half sqrt 5 plus half", rational.MustNew(1, 2), rational.FromInt(5), rational.MustNew(1, 2), rational.One(),
			func() (cf.CF, error) {
				return cf.QuadraticSurd(rational.FromInt(5), rational.One(), rational.FromInt(2))
			}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			x, err := cf.ScaledSurd(c.a, c.p, c.b, c.c)
			require.NoError(t, err)
			y, err := c.same()
			require.NoError(t, err)
			px, ok := x.(*cf.Periodic)
			require.True(t, ok, "got %s", x)
			py := y.(*cf.Periodic)
			require.Equal(t, strs(py.Initial()), strs(px.Initial()))
			require.Equal(t, strs(py.Repeating()), strs(px.Repeating()))
		})
	}

	x, err := cf.ScaledSurd(rational.Zero(), rational.FromInt(2), rational.FromInt(3), rational.FromInt(2))
	require.NoError(t, err)
	require.Equal(t, "3/2", x.(*cf.Rational).Value().String(), "a = 0 leaves b/c")

	x, err = cf.ScaledSurd(rational.FromInt(3), rational.FromInt(4), rational.One(), rational.FromInt(7))
	require.NoError(t, err)
	require.Equal(t, "1", x.(*cf.Rational).Value().String(), "(3·2 + 1)/7")
}

// TestSqrtRationalExact returns perfect squares as rationals.
func TestSqrtRationalExact(t *testing.T) {
	x, err := cf.SqrtRational(rational.MustNew(16, 9))
	require.NoError(t, err)
	require.Equal(t, "4/3", x.(*cf.Rational).Value().String())

	x, err = cf.SqrtRational(rational.Zero())
	require.NoError(t, err)
	require.True(t, x.(*cf.Rational).Value().IsZero())

	_, err = cf.SqrtRational(rational.FromInt(-1))
	require.ErrorIs(t, err, cf.ErrInvalidArgument)

	_, err = cf.QuadraticSurd(rational.FromInt(2), rational.Zero(), rational.Zero())
	require.ErrorIs(t, err, cf.ErrZeroDenominator)
}

// TestQuadraticSurdLogs reports the period it found at debug level.
func TestQuadraticSurdLogs(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	x, err := cf.SqrtRational(rational.FromInt(7), cf.WithLogger(logger))
	require.NoError(t, err)
	require.Equal(t, []string{"2", "1", "1", "1", "4"}, terms(t, x, 5))
	require.Contains(t, buf.String(), "quadratic surd: period found")
	require.Contains(t, buf.String(), "period=4")
}
