// SPDX-License-Identifier: MIT

package hermite

import (
	"errors"
	"fmt"
)

var (
	// ErrNotIncreasing indicates that the knots are not strictly increasing.
	ErrNotIncreasing = errors.New("hermite: knots not strictly increasing")

	// ErrTooFewKnots is returned when fewer than two knots are given.
	ErrTooFewKnots = errors.New("hermite: at least two knots required")
)

// Intervals returns h[i] = x[i+1] - x[i].
//
// Errors:
//   - ErrTooFewKnots:   len(x) < 2.
//   - ErrNotIncreasing: some x[i+1] <= x[i]; the message names the index.
func Intervals(x []float64) ([]float64, error) {
	if len(x) < 2 {
		return nil, ErrTooFewKnots
	}
	h := make([]float64, len(x)-1)
	for i := range h {
		h[i] = x[i+1] - x[i]
		if !(h[i] > 0) {
			return nil, fmt.Errorf("Intervals: x[%d]=%g after x[%d]=%g: %w", i+1, x[i+1], i, x[i], ErrNotIncreasing)
		}
	}

	return h, nil
}

// Slopes returns the secant slopes s[i] = (y[i+1]-y[i]) / h[i].
// It panics if len(y) != len(h)+1.
func Slopes(y, h []float64) []float64 {
	if len(y) != len(h)+1 {
		panic(fmt.Sprintf("hermite: Slopes with %d values and %d intervals", len(y), len(h)))
	}
	s := make([]float64, len(h))
	for i := range s {
		s[i] = (y[i+1] - y[i]) / h[i]
	}

	return s
}

// SlopeSensitivity returns the (n-1)×n Jacobian of Slopes with respect to y:
// row i is -1/h[i] at column i and 1/h[i] at column i+1.
func SlopeSensitivity(h []float64) [][]float64 {
	n := len(h) + 1
	out := make([][]float64, n-1)
	for i := range out {
		row := make([]float64, n)
		row[i] = -1 / h[i]
		row[i+1] = 1 / h[i]
		out[i] = row
	}

	return out
}
