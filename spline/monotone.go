// SPDX-License-Identifier: MIT

package spline

import (
	"math"

	"github.com/katalvlaran/lvcurve/hermite"
	"github.com/katalvlaran/lvcurve/piecewise"
)

// Monotone filter (Dougherty, Edelman & Hyman 1989).
//
// The primary's knot derivatives d are limited so that each cubic piece is
// monotone wherever the data are. At an interior knot i with secant slopes
// s[i-1], s[i] and the centred parabola slope pc:
//
//	d = 0                               if sign(d) and sign(pc) disagree
//	d = sign(d)·min(|d|, ref)           otherwise
//	ref = 3·min(|s[i-1]|, |s[i]|, |pc|)
//
// ref is raised to 1.5·min(|pl|, |pc|) (resp. |pr|) when the left (resp.
// right) parabola slope and the slope differences agree in sign. The right
// raise starts from ref and its sensitivity as left by the left raise, not
// from the unraised values. At the end knots ref is 3|s| of the adjacent
// interval.

// parabola holds, for interior knot x[j+1], the slopes at that knot of the
// parabolas through (x[j-1], x[j], x[j+1]), (x[j], x[j+1], x[j+2]) and
// (x[j+1], x[j+2], x[j+3]). A missing parabola is +Inf.
type parabola struct {
	left, center, right float64
}

func parabolaSlopes(h, s []float64) []parabola {
	n := len(h) + 1
	out := make([]parabola, n-2)
	for j := range out {
		p := &out[j]
		p.center = (s[j]*h[j+1] + s[j+1]*h[j]) / (h[j] + h[j+1])
		p.left = math.Inf(1)
		if j > 0 {
			p.left = (s[j]*(2*h[j]+h[j-1]) - s[j-1]*h[j]) / (h[j-1] + h[j])
		}
		p.right = math.Inf(1)
		if j < n-3 {
			p.right = (s[j+1]*(2*h[j+1]+h[j+2]) - s[j+2]*h[j+1]) / (h[j+1] + h[j+2])
		}
	}

	return out
}

// monotoneState carries the per-fit data shared by every knot.
type monotoneState struct {
	h, s   []float64
	p      []parabola
	sSens  [][]float64 // nil when gradients are not tracked
	width  int         // gradient length; 0 when not tracked
	tol    float64
	init   []float64
	initGr [][]float64
}

// absSlope returns |s[i]| with its gradient.
func (st *monotoneState) absSlope(i int) candidate {
	c := candidate{value: st.s[i]}
	if st.sSens != nil {
		c.grad = st.sSens[i]
	}

	return c.scaled(sign(st.s[i]))
}

// absParabola returns |v| for the parabola slope v = a·s[ia] + b·s[ib]
// (the weights are recomputed for the gradient only).
func (st *monotoneState) absParabola(v, a float64, ia int, b float64, ib int) candidate {
	c := candidate{value: math.Abs(v)}
	if st.sSens != nil {
		g := make([]float64, st.width)
		sg := sign(v)
		for k := range g {
			g[k] = sg * (a*st.sSens[ia][k] + b*st.sSens[ib][k])
		}
		c.grad = g
	}

	return c
}

func (st *monotoneState) centerAbs(j int) candidate {
	h := st.h
	w := h[j] + h[j+1]
	return st.absParabola(st.p[j].center, h[j+1]/w, j, h[j]/w, j+1)
}

func (st *monotoneState) leftAbs(j int) candidate {
	h := st.h
	w := h[j-1] + h[j]
	return st.absParabola(st.p[j].left, (2*h[j]+h[j-1])/w, j, -h[j]/w, j-1)
}

func (st *monotoneState) rightAbs(j int) candidate {
	h := st.h
	w := h[j+1] + h[j+2]
	return st.absParabola(st.p[j].right, (2*h[j+1]+h[j+2])/w, j+1, -h[j+1]/w, j+2)
}

func (st *monotoneState) initial(i int) candidate {
	c := candidate{value: st.init[i]}
	if st.initGr != nil {
		c.grad = st.initGr[i]
	}

	return c
}

func (st *monotoneState) zero() candidate {
	if st.width == 0 {
		return candidate{}
	}

	return candidate{grad: make([]float64, st.width)}
}

// raise returns max(ref, 1.5·min(u, v)), ties averaged on exact equality.
func raise(ref, u, v candidate) candidate {
	return tieMax(ref, tieMin(u, v, 0).scaled(1.5), 0)
}

// settle returns sign(d)·min(|d|, ref); a tie within tol keeps the smaller
// value and averages the gradients.
func (st *monotoneState) settle(d, ref candidate) candidate {
	sig := sign(d.value)
	abs := math.Abs(d.value)
	lim := ref.scaled(sig)
	switch {
	case tied(abs, ref.value, st.tol):
		v := lim.value
		if abs <= ref.value {
			v = d.value
		}
		return candidate{value: v, grad: averageGrad(d.grad, lim.grad)}
	case abs < ref.value:
		return d
	default:
		return lim
	}
}

func (st *monotoneState) interior(i int) candidate {
	j := i - 1
	s, p := st.s, st.p[j]
	d := st.initial(i)
	if sign(d.value)*sign(p.center) < 0 {
		return st.zero()
	}

	pc := st.centerAbs(j)
	lo := st.absSlope(i)
	if a := st.absSlope(i - 1); a.value < lo.value {
		lo = a
	}
	ref := tieMin(pc, lo, 0).scaled(3)

	if i > 1 && allEqual(sign(p.center), sign(p.left), sign(s[i-1]-s[i-2]), sign(s[i]-s[i-1])) {
		ref = raise(ref, st.leftAbs(j), pc)
	}
	if i < len(s)-1 && allEqual(sign(-p.center), sign(-p.right), sign(s[i+1]-s[i]), sign(s[i]-s[i-1])) {
		ref = raise(ref, st.rightAbs(j), pc)
	}

	return st.settle(d, ref)
}

// endpoint limits the derivative at knot k against interval iv.
func (st *monotoneState) endpoint(k, iv int) candidate {
	d := st.initial(k)
	sv := st.s[iv]
	if sign(d.value)*sign(sv) < 0 {
		return st.zero()
	}
	if math.Abs(d.value) > st.tol && math.Abs(sv) < st.tol {
		c := st.zero()
		if c.grad != nil {
			c.grad[iv] = -1.5 / st.h[iv]
			c.grad[iv+1] = 1.5 / st.h[iv]
		}
		return c
	}

	ref := st.absSlope(iv).scaled(3)
	out := st.settle(d, ref)
	abs := math.Abs(d.value)
	if abs < st.tol && abs < ref.value && !tied(abs, ref.value, st.tol) {
		out = out.scaled(0.5)
		out.value = d.value
	}

	return out
}

func allEqual(a, b, c, d float64) bool {
	return a == b && b == c && c == d
}

// monotoneDerivatives applies the filter to init. initSens, when not nil,
// is the n×n Jacobian of init and the result's Jacobian is returned too.
func monotoneDerivatives(h, s, init []float64, initSens [][]float64, tol float64) ([]float64, [][]float64) {
	n := len(init)
	st := &monotoneState{h: h, s: s, p: parabolaSlopes(h, s), tol: tol, init: init, initGr: initSens}
	if initSens != nil {
		st.sSens = hermite.SlopeSensitivity(h)
		st.width = n
	}

	d := make([]float64, n)
	var dSens [][]float64
	if initSens != nil {
		dSens = make([][]float64, n)
	}
	put := func(i int, c candidate) {
		d[i] = c.value
		if dSens != nil {
			dSens[i] = c.grad
		}
	}
	for i := 1; i < n-1; i++ {
		put(i, st.interior(i))
	}
	put(0, st.endpoint(0, 0))
	put(n-1, st.endpoint(n-1, n-2))

	return d, dSens
}

// slopesTiedWithinTolerance reports whether any two adjacent secant slopes
// have equal magnitude within tol. The analytic Jacobian is not defined
// there and finite differences are used for the whole curve.
func slopesTiedWithinTolerance(s []float64, tol float64) bool {
	for i := 0; i+1 < len(s); i++ {
		if math.Abs(math.Abs(s[i])-math.Abs(s[i+1])) < tol {
			return true
		}
	}

	return false
}

// fitMonotone runs primary and limits its knot derivatives.
func fitMonotone(in *input, primary Method, o Options, withSens bool) (*piecewise.SensitiveResult, error) {
	useFD := withSens && slopesTiedWithinTolerance(in.s, o.TieTolerance)
	base, err := cubicPrimary(in, primary, o, withSens && !useFD)
	if err != nil {
		return nil, err
	}
	var initSens [][]float64
	if withSens && !useFD {
		initSens = base.KnotDerivativeSensitivities(1)
	}
	d, dSens := monotoneDerivatives(in.h, in.s, base.KnotDerivatives(1), initSens, o.TieTolerance)

	if useFD {
		if dSens, err = monotoneFD(in, primary, o); err != nil {
			return nil, err
		}
	}

	coefs := hermite.CubicCoefs(in.y, in.h, in.s, d)
	var sens [][][]float64
	if withSens {
		sens = hermite.CubicSensitivity(in.h, hermite.SlopeSensitivity(in.h), dSens)
	}

	return newResult(in, Monotone, coefs, sens)
}

// monotoneFD is the finite-difference Jacobian of the filtered knot
// derivatives: every perturbed input refits the primary and reruns the
// filter.
func monotoneFD(in *input, primary Method, o Options) ([][]float64, error) {
	jac, err := centralJacobian(in, func(raw []float64) ([]float64, error) {
		pin := in.withValues(raw)
		res, err := cubicPrimary(pin, primary, o, false)
		if err != nil {
			return nil, err
		}
		d, _ := monotoneDerivatives(pin.h, pin.s, res.KnotDerivatives(1), nil, o.TieTolerance)
		return d, nil
	}, in.n(), o.FDStep, o.TieTolerance)
	if err != nil {
		return nil, numericErr(kindName(Monotone)+": finite differences", err)
	}

	return jac, nil
}
