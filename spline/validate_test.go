// SPDX-License-Identifier: MIT

package spline_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/lvcurve/spline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFit_ValidationErrors pins array, index and sentinel for every check.
func TestFit_ValidationErrors(t *testing.T) {
	nak := spline.Method{Kind: spline.NotAKnot}
	cases := []struct {
		name     string
		x, y     []float64
		m        spline.Method
		sentinel error
		array    string
		index    int
	}{
		{"one point", []float64{0}, []float64{1}, nak, spline.ErrTooFewPoints, "x", -1},
		{"monotone four points", []float64{0, 1, 2, 3}, []float64{0, 1, 2, 3}, spline.Method{Kind: spline.Monotone}, spline.ErrTooFewPoints, "x", -1},
		{"chained strictest count", []float64{0, 1, 2, 3}, []float64{0, 1, 2, 3}, spline.WithNonnegativity(spline.WithMonotonicity(nak)), spline.ErrTooFewPoints, "x", -1},
		{"y too long", []float64{0, 1, 2}, []float64{0, 1, 2, 3}, nak, spline.ErrLengthMismatch, "y", -1},
		{"clamped needs n+2", []float64{0, 1, 2}, []float64{0, 1, 2}, spline.Method{Kind: spline.Clamped}, spline.ErrLengthMismatch, "y", -1},
		{"natural rejects n+2", []float64{0, 1, 2}, []float64{0, 0, 1, 2, 0}, spline.Method{Kind: spline.Natural}, spline.ErrLengthMismatch, "y", -1},
		{"NaN in x", []float64{0, math.NaN(), 2}, []float64{0, 1, 2}, nak, spline.ErrNaNInf, "x", 1},
		{"Inf in y", []float64{0, 1, 2}, []float64{0, 1, math.Inf(-1)}, nak, spline.ErrNaNInf, "y", 2},
		{"duplicate knot", []float64{0, 1, 2, 2, 3}, []float64{0, 1, 2, 3, 4}, nak, spline.ErrNotIncreasing, "x", 3},
		{"decreasing knot", []float64{0, 2, 1}, []float64{0, 1, 2}, nak, spline.ErrNotIncreasing, "x", 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := spline.FitWithSensitivity(tc.x, tc.y, tc.m, nil)
			require.Error(t, err)
			assert.ErrorIs(t, err, spline.ErrInvalidInput)
			assert.ErrorIs(t, err, tc.sentinel)
			assert.NotErrorIs(t, err, spline.ErrNumericalFailure)

			var ie *spline.InputError
			require.True(t, errors.As(err, &ie))
			assert.Equal(t, tc.array, ie.Array)
			assert.Equal(t, tc.index, ie.Index)
		})
	}
}

// TestFit_CheckOrder: the point count is checked before finiteness.
func TestFit_CheckOrder(t *testing.T) {
	_, err := spline.Fit([]float64{math.NaN()}, []float64{1}, spline.Method{Kind: spline.Natural}, nil)
	assert.ErrorIs(t, err, spline.ErrTooFewPoints)

	_, err = spline.Fit([]float64{0, 0, math.NaN()}, []float64{1, 2, 3}, spline.Method{Kind: spline.Natural}, nil)
	assert.ErrorIs(t, err, spline.ErrNaNInf, "finiteness before ordering")
}

// TestFit_MethodErrors covers bad strategy values and options.
func TestFit_MethodErrors(t *testing.T) {
	x, y := xIrregular, yIrregular

	_, err := spline.Fit(x, y, spline.Method{Kind: spline.Kind(42)}, nil)
	assert.ErrorIs(t, err, spline.ErrUnknownMethod)
	assert.ErrorIs(t, err, spline.ErrInvalidInput)

	quintic := spline.Method{Kind: spline.QuinticNonnegative}
	_, err = spline.Fit(x, y, spline.WithMonotonicity(quintic), nil)
	assert.ErrorIs(t, err, spline.ErrPrimaryNotCubic)
	_, err = spline.Fit(x, y, spline.WithQuinticNonnegativity(quintic), nil)
	assert.ErrorIs(t, err, spline.ErrPrimaryNotCubic)

	_, err = spline.Fit(x, y, spline.Method{Kind: spline.Natural}, &spline.Options{TieTolerance: -1})
	assert.ErrorIs(t, err, spline.ErrBadOptions)
	_, err = spline.Fit(x, y, spline.Method{Kind: spline.Natural}, &spline.Options{Workers: -2})
	assert.ErrorIs(t, err, spline.ErrBadOptions)

	for _, o := range []spline.Options{
		{TieTolerance: math.NaN()},
		{TieTolerance: math.Inf(1)},
		{FDStep: math.NaN()},
		{FDStep: math.Inf(1)},
	} {
		_, err = spline.FitWithSensitivity(x, y, spline.Method{Kind: spline.Monotone}, &o)
		assert.ErrorIs(t, err, spline.ErrBadOptions, "%+v", o)
		assert.ErrorIs(t, err, spline.ErrInvalidInput, "%+v", o)
	}
}

// TestFit_NumericalFailure: finite input whose slopes overflow.
func TestFit_NumericalFailure(t *testing.T) {
	x := []float64{0, 1e-10, 2e-10}
	y := []float64{0, 1e308, 0}
	_, err := spline.Fit(x, y, spline.Method{Kind: spline.Natural}, nil)
	assert.ErrorIs(t, err, spline.ErrNumericalFailure)
	assert.NotErrorIs(t, err, spline.ErrInvalidInput)
}

// TestFit_DoesNotModifyInput: inputs are copied.
func TestFit_DoesNotModifyInput(t *testing.T) {
	x := append([]float64(nil), xDip...)
	y := append([]float64(nil), yDip...)
	res, err := spline.FitWithSensitivity(x, y, spline.Method{Kind: spline.Monotone}, nil)
	require.NoError(t, err)
	assert.Equal(t, xDip, x)
	assert.Equal(t, yDip, y)

	x[0] = -100
	assert.Equal(t, 0.0, res.Knots[0], "result does not alias x")
}

// TestDefaultOptions: zero fields fall back to the defaults.
func TestDefaultOptions(t *testing.T) {
	o := spline.DefaultOptions()
	assert.Equal(t, spline.DefaultTieTolerance, o.TieTolerance)
	assert.Equal(t, spline.DefaultFDStep, o.FDStep)
	assert.Zero(t, o.Workers)

	a, err := spline.Fit(xIrregular, yIrregular, spline.Method{Kind: spline.Monotone}, &spline.Options{Workers: 3})
	require.NoError(t, err)
	b, err := spline.Fit(xIrregular, yIrregular, spline.Method{Kind: spline.Monotone}, nil)
	require.NoError(t, err)
	assert.Equal(t, b.Coefs, a.Coefs)
}
