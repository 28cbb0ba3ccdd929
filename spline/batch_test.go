// SPDX-License-Identifier: MIT

package spline_test

import (
	"context"
	"math"
	"testing"

	"github.com/katalvlaran/lvcurve/spline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scenarioRows(count int) [][]float64 {
	rows := make([][]float64, count)
	for r := range rows {
		rows[r] = make([]float64, len(yIrregular))
		for i, v := range yIrregular {
			rows[r][i] = v + 0.1*float64(r)*float64(i)
		}
	}

	return rows
}

// TestFitRows_MatchesSingleFits for several worker limits.
func TestFitRows_MatchesSingleFits(t *testing.T) {
	rows := scenarioRows(9)
	m := spline.Method{Kind: spline.Monotone}
	for _, workers := range []int{0, 1, 4} {
		opts := &spline.Options{Workers: workers}
		got, err := spline.FitRows(context.Background(), xIrregular, rows, m, opts)
		require.NoError(t, err)
		require.Len(t, got, len(rows))
		for r, y := range rows {
			want, err := spline.Fit(xIrregular, y, m, opts)
			require.NoError(t, err)
			assert.Equal(t, want.Coefs, got[r].Coefs, "workers=%d row %d", workers, r)
		}
	}

	sens, err := spline.FitRowsWithSensitivity(context.Background(), xIrregular, rows, m, &spline.Options{Workers: 2})
	require.NoError(t, err)
	for r, y := range rows {
		want, err := spline.FitWithSensitivity(xIrregular, y, m, nil)
		require.NoError(t, err)
		assert.Equal(t, want.Sensitivities, sens[r].Sensitivities, "row %d", r)
	}
}

// TestFitRows_RowError names the failing row.
func TestFitRows_RowError(t *testing.T) {
	rows := scenarioRows(3)
	rows[1][2] = math.NaN()
	_, err := spline.FitRows(context.Background(), xIrregular, rows, spline.Method{Kind: spline.Natural}, &spline.Options{Workers: 1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 1")
	assert.ErrorIs(t, err, spline.ErrNaNInf)
}

// TestFitRows_Cancelled returns the context error.
func TestFitRows_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := spline.FitRows(ctx, xIrregular, scenarioRows(5), spline.Method{Kind: spline.Natural}, nil)
	assert.ErrorIs(t, err, context.Canceled)
}

// TestFitRows_Empty: no rows is not an error.
func TestFitRows_Empty(t *testing.T) {
	got, err := spline.FitRows(context.Background(), xIrregular, nil, spline.Method{Kind: spline.Natural}, nil)
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = spline.FitRows(context.Background(), xIrregular, nil, spline.Method{Kind: spline.Natural}, &spline.Options{Workers: -1})
	assert.ErrorIs(t, err, spline.ErrBadOptions)
}
