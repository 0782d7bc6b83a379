// SPDX-License-Identifier: MIT
// Package cf: sentinel error set.
// Constructors and arithmetic return these sentinels, possibly wrapped with
// context; callers match them with errors.Is. Option constructors panic on
// nonsensical values instead, since those are programmer errors.

package cf

import (
	"errors"

	"github.com/katalvlaran/cfrac/rational"
)

var (
	// ErrZeroDenominator is returned when a rational value or a composite
	// coefficient set would have a zero denominator.
	ErrZeroDenominator = rational.ErrZeroDenominator

	// ErrDivisionByZero is returned when dividing by a CF known to be zero.
	ErrDivisionByZero = errors.New("cf: division by zero")

	// ErrInvalidArgument covers malformed input: negative square-root
	// arguments, all-zero periodic blocks, out-of-domain constants.
	ErrInvalidArgument = errors.New("cf: invalid argument")

	// ErrUnsupportedOperation is returned for terms of a Rational and for
	// composite engines built directly over a Rational source.
	ErrUnsupportedOperation = errors.New("cf: unsupported operation")

	// ErrStepLimit is returned when a request exceeds the step budget set
	// with WithStepLimit.
	ErrStepLimit = errors.New("cf: step limit exceeded")
)
