// SPDX-License-Identifier: MIT

package spline

import (
	"testing"

	"github.com/katalvlaran/lvcurve/hermite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSignBounds_Ties: a derivative on a bound keeps its value and takes the
// average of its own gradient and the bound's.
func TestSignBounds_Ties(t *testing.T) {
	const tol = DefaultTieTolerance
	cases := []struct {
		name string
		y, d float64
		want candidate
	}{
		// hi = 3y/hL = 3, ∂hi/∂y[1] = 3
		{"upper", 1, 3, candidate{value: 3, grad: []float64{0, 2.5, 0}}},
		// lo = -3y/hR = -3, ∂lo/∂y[1] = -3
		{"lower", 1, -3, candidate{value: -3, grad: []float64{0, -0.5, 0}}},
		// τ = -1: τd = -3 sits on lo = -3τy, ∂lo/∂y[1] = 3 in τ-space
		{"lower negative data", -1, 3, candidate{value: 3, grad: []float64{0, -0.5, 0}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := candidate{value: tc.d, grad: []float64{0, 2, 0}}
			got := signBounds(candidate{value: tc.y}, d, 1, 1, 1, 3, tol, 3)
			assert.InDelta(t, tc.want.value, got.value, 1e-15)
			assert.InDeltaSlice(t, tc.want.grad, got.grad, 1e-15)
		})
	}

	// within tol but not equal: ref's value is kept when inside the range
	d := candidate{value: 3 - 1e-15, grad: []float64{0, 2, 0}}
	got := signBounds(candidate{value: 1}, d, 1, 1, 1, 3, tol, 3)
	assert.Equal(t, 3-1e-15, got.value)
	assert.InDeltaSlice(t, []float64{0, 2.5, 0}, got.grad, 1e-15)

	// untracked gradients stay untracked
	got = signBounds(candidate{value: 1}, candidate{value: 3}, 1, 1, 1, 3, tol, 0)
	assert.Equal(t, 3.0, got.value)
	assert.Nil(t, got.grad)
}

// TestSettle_Tie: |d| equal to the limit averages d's gradient with the
// signed limit's gradient.
func TestSettle_Tie(t *testing.T) {
	st := &monotoneState{tol: DefaultTieTolerance}

	got := st.settle(candidate{value: 1, grad: []float64{1, 0}}, candidate{value: 1, grad: []float64{0, 1}})
	assert.Equal(t, 1.0, got.value)
	assert.Equal(t, []float64{0.5, 0.5}, got.grad)

	got = st.settle(candidate{value: -2, grad: []float64{1, 0}}, candidate{value: 2, grad: []float64{0, 1}})
	assert.Equal(t, -2.0, got.value)
	assert.Equal(t, []float64{0.5, -0.5}, got.grad)

	// |d| just above the limit, within tol: the limit wins the value
	got = st.settle(candidate{value: 1 + 1e-15, grad: []float64{1, 0}}, candidate{value: 1, grad: []float64{0, 1}})
	assert.Equal(t, 1.0, got.value)
	assert.Equal(t, []float64{0.5, 0.5}, got.grad)
}

// TestMonotone_FlatFirstInterval: s[0] = 0 with a non-zero primary
// derivative flattens knot 0 and gives it the gradient of 1.5·s[0].
func TestMonotone_FlatFirstInterval(t *testing.T) {
	x := []float64{0, 1, 2, 3, 4, 5}
	y := []float64{1, 1, 2.5, 3, 5.5, 6}

	in, err := prepare(x, y, minPointsMonotone, layoutAny)
	require.NoError(t, err)
	require.False(t, slopesTiedWithinTolerance(in.s, DefaultTieTolerance), "analytic path expected")

	res, err := FitWithSensitivity(x, y, Method{Kind: Monotone}, nil)
	require.NoError(t, err)
	assert.Zero(t, res.KnotDerivatives(1)[0])
	assert.InDeltaSlice(t, []float64{-1.5, 1.5, 0, 0, 0, 0}, res.KnotDerivativeSensitivities(1)[0], 1e-12)
}

// TestMonotone_EndpointNearZeroDerivative: a primary derivative below tol
// keeps its value and half its sensitivity.
func TestMonotone_EndpointNearZeroDerivative(t *testing.T) {
	h := []float64{1, 1}
	st := &monotoneState{
		h:      h,
		s:      []float64{1, 1},
		sSens:  hermite.SlopeSensitivity(h),
		width:  3,
		tol:    DefaultTieTolerance,
		init:   []float64{1e-16, 1, -1e-16},
		initGr: [][]float64{{0.2, 0.4, 0.6}, {0, 1, 0}, {0.2, -0.4, 0.6}},
	}

	got := st.endpoint(0, 0)
	assert.Equal(t, 1e-16, got.value)
	assert.InDeltaSlice(t, []float64{0.1, 0.2, 0.3}, got.grad, 1e-15)

	// opposite sign to the adjacent slope: flattened, no sensitivity
	got = st.endpoint(2, 1)
	assert.Zero(t, got.value)
	assert.Equal(t, []float64{0, 0, 0}, got.grad)
}
