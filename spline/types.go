// SPDX-License-Identifier: MIT

package spline

import "math"

// Kind selects one member of the closed set of fitting algorithms.
//
//   - Natural:            cubic spline with zero second derivative at both ends.
//   - NotAKnot:           cubic spline with continuous third derivative at x[1] and x[n-2].
//   - Clamped:            cubic spline with given first derivatives at both ends
//     (y carries them at y[0] and y[n+1]).
//   - Monotone:           Dougherty–Edelman–Hyman monotonicity filter over a cubic primary.
//   - Nonnegative:        non-negativity filter over a cubic primary.
//   - QuinticNonnegative: quintic non-negativity filter over a cubic primary.
type Kind int

const (
	// Natural endpoint conditions: m[0] = m[n-1] = 0.
	Natural Kind = iota

	// NotAKnot endpoint conditions: third derivative continuous at x[1], x[n-2].
	NotAKnot

	// Clamped endpoint conditions: first derivatives supplied by the caller.
	Clamped

	// Monotone wraps a cubic primary and limits its knot derivatives.
	Monotone

	// Nonnegative wraps a cubic primary and clamps its knot derivatives.
	Nonnegative

	// QuinticNonnegative wraps a cubic primary and builds quintic pieces.
	QuinticNonnegative
)

// Minimum number of data points per method.
const (
	minPointsSolver      = 2
	minPointsNonnegative = 3
	minPointsMonotone    = 5
)

// Numeric policy defaults.
const (
	// DefaultTieTolerance decides when two candidates in a min/max/clamp are
	// tied, and when two adjacent |slopes| count as equal.
	DefaultTieTolerance = 1e-14

	// DefaultFDStep is the relative step of the finite-difference fallback
	// (absolute when |y| < DefaultTieTolerance).
	DefaultFDStep = 1e-7
)

// Method is a strategy value: a Kind plus, for the filters, the cubic method
// whose knot derivatives are adjusted. A nil Primary picks the default:
// NotAKnot for the cubic filters and Natural for QuinticNonnegative, or
// Clamped whenever y carries the two endpoint derivatives.
//
// Example:
//
//	m := spline.WithMonotonicity(spline.Method{Kind: spline.Natural})
//	res, err := spline.Fit(x, y, m, nil)
type Method struct {
	Kind    Kind
	Primary *Method
}

// WithMonotonicity wraps primary in the monotonicity filter.
func WithMonotonicity(primary Method) Method {
	return Method{Kind: Monotone, Primary: &primary}
}

// WithNonnegativity wraps primary in the cubic non-negativity filter.
func WithNonnegativity(primary Method) Method {
	return Method{Kind: Nonnegative, Primary: &primary}
}

// WithQuinticNonnegativity wraps primary in the quintic non-negativity filter.
func WithQuinticNonnegativity(primary Method) Method {
	return Method{Kind: QuinticNonnegative, Primary: &primary}
}

// Options configures the numeric policy and batch parallelism.
//
// Fields:
//   - TieTolerance: closeness under which two candidates are tied; 0 means default.
//   - FDStep:       relative finite-difference step; 0 means default.
//   - Workers:      concurrent fits in FitRows; 0 means one per row.
type Options struct {
	TieTolerance float64
	FDStep       float64
	Workers      int
}

// DefaultOptions returns the policy used when nil Options are passed.
func DefaultOptions() Options {
	return Options{
		TieTolerance: DefaultTieTolerance,
		FDStep:       DefaultFDStep,
	}
}

// resolve applies defaults and validates opts.
func resolve(opts *Options) (Options, error) {
	if opts == nil {
		return DefaultOptions(), nil
	}
	o := *opts
	if !nonNegativeFinite(o.TieTolerance) || !nonNegativeFinite(o.FDStep) || o.Workers < 0 {
		return o, ErrBadOptions
	}
	if o.TieTolerance == 0 {
		o.TieTolerance = DefaultTieTolerance
	}
	if o.FDStep == 0 {
		o.FDStep = DefaultFDStep
	}

	return o, nil
}

func nonNegativeFinite(v float64) bool {
	return v >= 0 && !math.IsInf(v, 1)
}
