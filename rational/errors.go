// SPDX-License-Identifier: MIT

package rational

import "errors"

var (
	// ErrZeroDenominator is returned when a rational would have denominator 0,
	// either by construction or by dividing by zero.
	ErrZeroDenominator = errors.New("rational: zero denominator")

	// ErrSyntax is returned by Parse for malformed literals.
	ErrSyntax = errors.New("rational: invalid syntax")

	// ErrNegativePrecision is returned when a negative number of decimal
	// digits is requested.
	ErrNegativePrecision = errors.New("rational: negative precision")

	// ErrEmptyList is returned by the list helpers (Min, Max, Average) when
	// called with no values.
	ErrEmptyList = errors.New("rational: empty list")
)
