// SPDX-License-Identifier: MIT

// Package hermite provides the interval, slope and Hermite-basis building
// blocks shared by every curve fitter in lvcurve.
//
// Given knots x, ordinates y and first (and, for quintics, second)
// derivatives at the knots, the Hermite map produces per-interval
// polynomial coefficients in descending powers of t = x - x[i]. The map is
// linear in (y, d, c), so every function here has an exact sensitivity
// counterpart that applies the same map to the Jacobians of its inputs.
//
//	h[i] = x[i+1] - x[i]
//	s[i] = (y[i+1] - y[i]) / h[i]
//
// Cubic piece on [x[i], x[i+1]):
//
//	a3 = (d[i] + d[i+1] - 2s[i]) / h²
//	a2 = (3s[i] - 2d[i] - d[i+1]) / h
//	a1 = d[i]
//	a0 = y[i]
//
// All functions are pure and allocate their results.
package hermite
