// SPDX-License-Identifier: MIT

package spline

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvcurve/hermite"
)

// Sentinel errors. Validation failures match ErrInvalidInput and one of the
// specific sentinels below; check them with errors.Is. Numerical failures
// after valid input match ErrNumericalFailure only.
var (
	// ErrInvalidInput is the umbrella for every validation failure.
	ErrInvalidInput = errors.New("spline: invalid input")

	// ErrTooFewPoints is returned when the method needs more data points.
	ErrTooFewPoints = errors.New("spline: too few data points")

	// ErrLengthMismatch indicates len(y) is neither len(x) nor len(x)+2, or
	// that the method does not accept the given layout.
	ErrLengthMismatch = errors.New("spline: length mismatch between x and y")

	// ErrNaNInf signals a NaN or ±Inf input value.
	ErrNaNInf = errors.New("spline: NaN or Inf encountered")

	// ErrNotIncreasing indicates duplicate or decreasing knots.
	ErrNotIncreasing = hermite.ErrNotIncreasing

	// ErrPrimaryNotCubic is returned when a cubic filter wraps a method that
	// does not produce order-4 pieces.
	ErrPrimaryNotCubic = errors.New("spline: primary method is not cubic")

	// ErrUnknownMethod is returned for an unrecognised Kind or strategy name.
	ErrUnknownMethod = errors.New("spline: unknown method")

	// ErrBadOptions indicates a negative or non-finite tolerance or step, or
	// a negative worker count.
	ErrBadOptions = errors.New("spline: invalid options")

	// ErrNumericalFailure signals a singular system or a non-finite
	// coefficient produced from finite, valid input.
	ErrNumericalFailure = errors.New("spline: numerical failure")
)

// InputError pinpoints a validation failure: which array, which index
// (-1 when the whole array is at fault) and which sentinel.
type InputError struct {
	Array string
	Index int
	Err   error
}

func (e *InputError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("spline: %s: %v", e.Array, e.Err)
	}

	return fmt.Sprintf("spline: %s[%d]: %v", e.Array, e.Index, e.Err)
}

// Unwrap exposes both ErrInvalidInput and the specific sentinel.
func (e *InputError) Unwrap() []error { return []error{ErrInvalidInput, e.Err} }

func inputErr(array string, index int, err error) error {
	return &InputError{Array: array, Index: index, Err: err}
}

func numericErr(op string, cause error) error {
	if cause == nil {
		return fmt.Errorf("%s: %w", op, ErrNumericalFailure)
	}

	return fmt.Errorf("%s: %v: %w", op, cause, ErrNumericalFailure)
}
