// SPDX-License-Identifier: MIT

// Package piecewise holds fitted piecewise-polynomial curves and their
// sensitivities to the input ordinates.
//
// A Result stores the knots x[0] < … < x[n-1] and one coefficient row per
// interval. Row i describes the polynomial valid on [x[i], x[i+1]) in the
// local coordinate t = x - x[i], highest power first:
//
//	p_i(t) = c[0]·t^(k-1) + c[1]·t^(k-2) + … + c[k-1],   k = Order
//
// A SensitiveResult adds, for every interval, an Order×n Jacobian whose
// entry [j][m] is ∂c[j]/∂y[m].
//
// Both types are produced once by a fitter and never mutated afterwards, so
// they are safe to share between goroutines.
//
// ⚙️ Usage:
//
//	v, err := res.Evaluate(2.5)          // curve value
//	d, err := res.Derivative(2.5, 1)     // first derivative
//	g, err := sres.ValueSensitivity(2.5) // ∂value/∂y[m] for every m
package piecewise
