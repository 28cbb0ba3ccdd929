// Package lvcurve builds smooth piecewise-polynomial curves through
// discrete points, together with the Jacobian of every coefficient with
// respect to every input ordinate.
//
// 🚀 What is lvcurve?
//
//	A small, allocation-per-call, stateless library for curve construction:
//		• Cubic splines: natural, not-a-knot, clamped end conditions
//		• Monotonicity filter: Dougherty–Edelman–Hyman limiter over any cubic
//		• Non-negativity filters: cubic and quintic
//		• Sensitivities: ∂coefficient/∂y propagated through every filter
//		• Batch fitting: one curve per row of a value matrix, concurrently
//
// ✨ Why choose lvcurve?
//
//   - Exact Jacobians – analytic wherever the filter is differentiable
//   - Deterministic – refits of the same input are bit-identical
//   - Explicit errors – sentinels for every validation failure, no panics
//   - Composable – filters wrap a primary method, and wrap each other
//
// Under the hood the work is split into three packages:
//
//	piecewise/  Result and SensitiveResult: knots, coefficients, evaluation
//	hermite/    intervals, slopes, cubic and quintic Hermite coefficients
//	spline/     validation, endpoint solvers, filters, strategy registry, batch
//
// plus the splinefit command (JSON in, JSON out) under cmd/ and a
// yield-curve walkthrough under examples/.
//
// Quick example:
//
//	m, _ := spline.ParseMethod("Monotone(NotAKnot)")
//	res, err := spline.FitWithSensitivity(tenors, rates, m, nil)
//	r, _ := res.Evaluate(4)            // interpolated rate at 4Y
//	g, _ := res.ValueSensitivity(4)    // ∂r(4)/∂rates
//
//	go get github.com/katalvlaran/lvcurve
package lvcurve
