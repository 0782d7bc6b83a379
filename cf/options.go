// SPDX-License-Identifier: MIT
// Package: cfrac/cf
//
// options.go — functional options for the lazy engines.
//
// Contract:
//   • Options are functional (type Option func(*Options)).
//   • Option constructors validate and PANIC on meaningless inputs.
//     Engines themselves never panic on caller input.
//   • Tolerances are exact rationals; the defaults below are documented as
//     reciprocals (DefaultTolerance = 6 means 1/6).
//   • Composites built by Add/Sub/Mul/Div/Sqrt inherit the options of their
//     composite operand, left operand first.

package cf

import (
	"log/slog"

	"github.com/katalvlaran/cfrac/rational"
)

// Extraction heuristics. Tolerances are given as reciprocals.
const (
	// DefaultTolerance is 1/6: the homographic and bihomographic engines
	// emit a term once all candidate ratios lie within this window.
	DefaultTolerance = 6
	// DefaultSqrtTolerance is 1/3: how close the fixed point of the square
	// root search must be to both halves of the coefficient set.
	DefaultSqrtTolerance = 3
	// DefaultFixedPointTolerance is 1/10: when successive fixed-point
	// iterates are considered converged.
	DefaultFixedPointTolerance = 10
	// DefaultReduceEvery is the step cadence of GCD reduction.
	DefaultReduceEvery = 6
	// DefaultFairnessWindow bounds how far the Y cursor of a bihomographic
	// engine may trail the X cursor before it is advanced regardless.
	DefaultFairnessWindow = 80
	// DefaultTermDigits bounds the numerator and denominator of
	// heuristically extracted fractional terms.
	DefaultTermDigits = 4
	// DefaultSqrtStartGuess seeds the first fixed-point search.
	DefaultSqrtStartGuess = 3
	// DefaultSqrtRestartGuess seeds the search after every ingest.
	DefaultSqrtRestartGuess = 12
	// DefaultStepLimit of 0 means requests may step without bound.
	DefaultStepLimit = 0
)

// Panic messages for invalid option values.
const (
	panicToleranceNonPositive = "cf: WithTolerance(tol<=0)"
	panicSqrtTolerance        = "cf: WithSqrtTolerance(tol<=0)"
	panicFixedPointTolerance  = "cf: WithFixedPointTolerance(tol<=0)"
	panicReduceEvery          = "cf: WithReduceEvery(n<1)"
	panicFairnessWindow       = "cf: WithFairnessWindow(n<0)"
	panicTermDigits           = "cf: WithTermDigits(n<1)"
	panicSqrtGuesses          = "cf: WithSqrtGuesses(guess<=0)"
	panicStepLimit            = "cf: WithStepLimit(n<0)"
	panicNilLogger            = "cf: WithLogger(nil)"
)

// Options configures the lazy engines. Fields are unexported; use the
// With* constructors.
type Options struct {
	tolerance        rational.Rat
	sqrtTolerance    rational.Rat
	fixedTolerance   rational.Rat
	reduceEvery      int
	fairnessWindow   int
	termDigits       int
	sqrtStartGuess   rational.Rat
	sqrtRestartGuess rational.Rat
	stepLimit        int
	logger           *slog.Logger
}

// Option customizes Options.
type Option func(*Options)

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		tolerance:        rational.MustNew(1, DefaultTolerance),
		sqrtTolerance:    rational.MustNew(1, DefaultSqrtTolerance),
		fixedTolerance:   rational.MustNew(1, DefaultFixedPointTolerance),
		reduceEvery:      DefaultReduceEvery,
		fairnessWindow:   DefaultFairnessWindow,
		termDigits:       DefaultTermDigits,
		sqrtStartGuess:   rational.FromInt(DefaultSqrtStartGuess),
		sqrtRestartGuess: rational.FromInt(DefaultSqrtRestartGuess),
		stepLimit:        DefaultStepLimit,
		logger:           slog.New(slog.DiscardHandler),
	}
}

// gatherOptions applies opts over the defaults, later options winning.
func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	return o
}

// WithTolerance sets the extraction window of the homographic and
// bihomographic engines. Panics if tol ≤ 0.
func WithTolerance(tol rational.Rat) Option {
	if tol.Sign() <= 0 {
		panic(panicToleranceNonPositive)
	}
	return func(o *Options) { o.tolerance = tol }
}

// WithSqrtTolerance sets the acceptance window of the square-root engine.
// Panics if tol ≤ 0.
func WithSqrtTolerance(tol rational.Rat) Option {
	if tol.Sign() <= 0 {
		panic(panicSqrtTolerance)
	}
	return func(o *Options) { o.sqrtTolerance = tol }
}

// WithFixedPointTolerance sets the convergence window of the fixed-point
// search. Panics if tol ≤ 0.
func WithFixedPointTolerance(tol rational.Rat) Option {
	if tol.Sign() <= 0 {
		panic(panicFixedPointTolerance)
	}
	return func(o *Options) { o.fixedTolerance = tol }
}

// WithReduceEvery sets the GCD reduction cadence. Panics if n < 1.
func WithReduceEvery(n int) Option {
	if n < 1 {
		panic(panicReduceEvery)
	}
	return func(o *Options) { o.reduceEvery = n }
}

// WithFairnessWindow sets the bihomographic fairness window. Panics if n < 0.
func WithFairnessWindow(n int) Option {
	if n < 0 {
		panic(panicFairnessWindow)
	}
	return func(o *Options) { o.fairnessWindow = n }
}

// WithTermDigits bounds heuristic fractional terms. Panics if n < 1.
func WithTermDigits(n int) Option {
	if n < 1 {
		panic(panicTermDigits)
	}
	return func(o *Options) { o.termDigits = n }
}

// WithSqrtGuesses sets the first and the post-ingest starting guesses of
// the fixed-point search. Panics unless both are positive.
func WithSqrtGuesses(start, restart rational.Rat) Option {
	if start.Sign() <= 0 || restart.Sign() <= 0 {
		panic(panicSqrtGuesses)
	}
	return func(o *Options) {
		o.sqrtStartGuess = start
		o.sqrtRestartGuess = restart
	}
}

// WithStepLimit caps the engine steps a single Term or DecimalString call
// may take before failing with ErrStepLimit. Zero means no cap.
// Panics if n < 0.
func WithStepLimit(n int) Option {
	if n < 0 {
		panic(panicStepLimit)
	}
	return func(o *Options) { o.stepLimit = n }
}

// WithLogger routes engine debug records to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}
	return func(o *Options) { o.logger = l }
}

// Tolerance returns the extraction window.
func (o Options) Tolerance() rational.Rat { return o.tolerance }

// StepLimit returns the per-request step cap, 0 meaning none.
func (o Options) StepLimit() int { return o.stepLimit }

// Logger returns the configured logger.
func (o Options) Logger() *slog.Logger { return o.logger }

// budget counts steps against the configured limit.
type budget struct {
	limit, used int
}

func (o Options) budget() budget { return budget{limit: o.stepLimit} }

// spend records one step and reports ErrStepLimit once the cap is passed.
func (b *budget) spend() error {
	b.used++
	if b.limit > 0 && b.used > b.limit {
		return ErrStepLimit
	}
	return nil
}
