// SPDX-License-Identifier: MIT

package spline

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvcurve/hermite"
)

// input is a validated, privately owned copy of one data set.
type input struct {
	x       []float64 // knots, strictly increasing
	raw     []float64 // y as supplied: n values, or n+2 when clamped
	y       []float64 // the n ordinates (a view into raw)
	h       []float64 // intervals, n-1
	s       []float64 // secant slopes, n-1
	clamped bool      // raw carries endpoint derivatives at 0 and n+1
}

func (in *input) n() int { return len(in.x) }

// layout says which y lengths a method accepts.
type layout int

const (
	layoutAny     layout = iota // n or n+2
	layoutPlain                 // n
	layoutClamped               // n+2
)

func (l layout) accepts(n, ny int) bool {
	switch l {
	case layoutPlain:
		return ny == n
	case layoutClamped:
		return ny == n+2
	default:
		return ny == n || ny == n+2
	}
}

func (l layout) want(n int) string {
	switch l {
	case layoutPlain:
		return fmt.Sprint(n)
	case layoutClamped:
		return fmt.Sprint(n + 2)
	default:
		return fmt.Sprintf("%d or %d", n, n+2)
	}
}

// prepare validates x and y for a method needing minPoints points in the
// given layout and returns private copies together with intervals and
// slopes.
//
// Checks, in order: point count, y layout, finiteness of x then y, strict
// increase of x. No computation happens before all checks pass.
func prepare(x, y []float64, minPoints int, lay layout) (*input, error) {
	n := len(x)
	if n < minPoints {
		return nil, inputErr("x", -1, fmt.Errorf("%d points, need at least %d: %w", n, minPoints, ErrTooFewPoints))
	}
	if !lay.accepts(n, len(y)) {
		return nil, inputErr("y", -1, fmt.Errorf("len(y)=%d, want %s: %w", len(y), lay.want(n), ErrLengthMismatch))
	}
	if i := firstNonFinite(x); i >= 0 {
		return nil, inputErr("x", i, ErrNaNInf)
	}
	if i := firstNonFinite(y); i >= 0 {
		return nil, inputErr("y", i, ErrNaNInf)
	}
	for i := 1; i < n; i++ {
		if x[i] <= x[i-1] {
			return nil, inputErr("x", i, ErrNotIncreasing)
		}
	}

	in := &input{
		x:       append([]float64(nil), x...),
		raw:     append([]float64(nil), y...),
		clamped: len(y) == n+2,
	}
	if in.clamped {
		in.y = in.raw[1 : n+1]
	} else {
		in.y = in.raw
	}
	h, err := hermite.Intervals(in.x)
	if err != nil {
		// unreachable after the loop above; kept for the error contract
		return nil, inputErr("x", -1, err)
	}
	in.h = h
	in.s = hermite.Slopes(in.y, h)

	return in, nil
}

// withValues returns a copy of in sharing knots and intervals but using raw
// as the supplied values. raw must have the same layout as in.raw.
func (in *input) withValues(raw []float64) *input {
	out := &input{x: in.x, h: in.h, raw: raw, clamped: in.clamped}
	if in.clamped {
		out.y = raw[1 : in.n()+1]
	} else {
		out.y = raw
	}
	out.s = hermite.Slopes(out.y, in.h)

	return out
}

func firstNonFinite(v []float64) int {
	for i, f := range v {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return i
		}
	}

	return -1
}
