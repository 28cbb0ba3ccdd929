// SPDX-License-Identifier: MIT

package spline

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvcurve/piecewise"
	"golang.org/x/sync/errgroup"
)

// FitRows fits every row of a value matrix against the shared knots x, for
// example one curve per scenario. Rows are fitted concurrently with at most
// opts.Workers fits in flight (0 means no limit); results keep row order.
//
// The first failing row cancels the rest and its error is returned wrapped
// with the row index. ctx cancellation is checked before each row starts.
func FitRows(ctx context.Context, x []float64, rows [][]float64, m Method, opts *Options) ([]*piecewise.Result, error) {
	out := make([]*piecewise.Result, len(rows))
	err := forEachRow(ctx, rows, opts, func(i int) error {
		res, err := Fit(x, rows[i], m, opts)
		if err != nil {
			return err
		}
		out[i] = res
		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// FitRowsWithSensitivity is FitRows with FitWithSensitivity per row.
func FitRowsWithSensitivity(ctx context.Context, x []float64, rows [][]float64, m Method, opts *Options) ([]*piecewise.SensitiveResult, error) {
	out := make([]*piecewise.SensitiveResult, len(rows))
	err := forEachRow(ctx, rows, opts, func(i int) error {
		res, err := FitWithSensitivity(x, rows[i], m, opts)
		if err != nil {
			return err
		}
		out[i] = res
		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

func forEachRow(ctx context.Context, rows [][]float64, opts *Options, fn func(i int) error) error {
	o, err := resolve(opts)
	if err != nil {
		return inputErr("opts", -1, err)
	}
	g, gctx := errgroup.WithContext(ctx)
	if o.Workers > 0 {
		g.SetLimit(o.Workers)
	}
	for i := range rows {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if err := fn(i); err != nil {
				return fmt.Errorf("row %d: %w", i, err)
			}
			return nil
		})
	}

	if err = g.Wait(); err != nil {
		return err
	}

	return ctx.Err()
}
