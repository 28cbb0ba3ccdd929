// SPDX-License-Identifier: MIT

// Package spline fits shape-preserving piecewise cubic and quintic curves
// through discrete points and returns, on request, the Jacobian of every
// coefficient with respect to every input ordinate.
//
// 🚀 What is it for?
//
//	Curve construction (yield, discount, hazard-rate curves) needs a smooth
//	interpolant through market-implied nodes, and risk needs the derivative
//	of that curve with respect to each node. Plain cubic splines overshoot;
//	the filters here keep monotone data monotone and positive data positive
//	while still reporting exact sensitivities.
//
// ✨ Methods (Kind):
//   - Natural            – cubic, zero curvature at both ends
//   - NotAKnot           – cubic, third derivative continuous at x[1] and x[n-2]
//   - Clamped            – cubic, first derivatives supplied in y[0] and y[n+1]
//   - Monotone           – Dougherty–Edelman–Hyman filter over a cubic primary (n ≥ 5)
//   - Nonnegative        – sign-preserving filter over a cubic primary (n ≥ 3)
//   - QuinticNonnegative – sign-preserving quintic built from a cubic primary (n ≥ 3)
//
// Filters wrap a primary method; a nil Primary means NotAKnot for the cubic
// filters, Natural for QuinticNonnegative, and Clamped whenever y carries
// endpoint derivatives.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvcurve/spline"
//
//	m := spline.WithMonotonicity(spline.Method{Kind: spline.Natural})
//	res, err := spline.FitWithSensitivity(x, y, m, nil)
//	if err != nil {
//	    // errors.Is(err, spline.ErrInvalidInput) / spline.ErrNumericalFailure
//	}
//	v, _ := res.Evaluate(2.5)
//	dv, _ := res.ValueSensitivity(2.5) // ∂v/∂y[m]
//
//	// or by name, e.g. from a configuration file
//	m, err = spline.ParseMethod("Nonnegative(Clamped)")
//
// Ties:
//
//	Where a filter chooses between two candidates that agree within
//	Options.TieTolerance, the value is the usual min/max/clamp and the
//	sensitivity is the average of both candidates' sensitivities. When two
//	adjacent secant slopes have equal magnitude the Monotone Jacobian is not
//	defined analytically and is computed by central finite differences
//	(Options.FDStep) for the whole curve.
//
// Concurrency: every call works on private copies and returns fresh
// results; FitRows fits many value rows in parallel.
package spline
