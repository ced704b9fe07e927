// Copyright 2026 The UNEDA-sub000 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eval

import (
	"github.com/uneda-cda/UNEDA-sub000/codes"
	"github.com/uneda-cda/UNEDA-sub000/skewnorm"
)

// BeliefLo/BeliefHi are the belief-level clamp bounds: belief levels are
// clamped to [1e-5, 0.9990234375].
const (
	BeliefLo = 1e-5
	BeliefHi = 0.9990234375
)

// MassResult carries a mass/support value plus the informational code the
// underlying DTL query produced (e.g. weak-mass-distribution).
type MassResult struct {
	Value float64
	Info  codes.Code
}

// MassAbove returns the fraction of alternative i's (rule-combined) EV
// distribution above level, truncated/renormalised to its own EV hull.
func (e *Evaluator) MassAbove(rule Rule, i, j int, subset []int, level float64) MassResult {
	fit := e.RuleFit(rule, i, j, subset)
	b := e.RuleBounds(rule, i, j, subset)
	r := skewnorm.MassAbove(fit, b.Lo, b.Hi, level, FitEps)
	return MassResult{Value: r.Mass, Info: r.Info}
}

// MassBelow is the complement of MassAbove.
func (e *Evaluator) MassBelow(rule Rule, i, j int, subset []int, level float64) MassResult {
	fit := e.RuleFit(rule, i, j, subset)
	b := e.RuleBounds(rule, i, j, subset)
	r := skewnorm.MassBelow(fit, b.Lo, b.Hi, level, FitEps)
	return MassResult{Value: r.Mass, Info: r.Info}
}

// MassRange returns the mass between [a, b].
func (e *Evaluator) MassRange(rule Rule, i, j int, subset []int, a, b float64) MassResult {
	fit := e.RuleFit(rule, i, j, subset)
	bd := e.RuleBounds(rule, i, j, subset)
	r := skewnorm.MassRange(fit, bd.Lo, bd.Hi, a, b, FitEps)
	return MassResult{Value: r.Mass, Info: r.Info}
}

// MassDensity returns the (untruncated) density at level — a continuous
// quantity, so no hull renormalisation or weak-mass flag applies.
func (e *Evaluator) MassDensity(rule Rule, i, j int, subset []int, level float64) float64 {
	fit := e.RuleFit(rule, i, j, subset)
	return fit.PDF(level)
}

// clampBelief pulls belief into [BeliefLo, BeliefHi] and reports whether it
// had to.
func clampBelief(belief float64) (clamped float64, wasClamped bool) {
	if belief < BeliefLo {
		return BeliefLo, true
	}
	if belief > BeliefHi {
		return BeliefHi, true
	}
	return belief, false
}

// supportAt inverts the rule's fit at belief, applying a clamp-then-
// quadratic-extrapolate rule: within range it is InvCDF directly; outside
// range the curve is extended past the clamp boundary by a quadratic
// matched to the boundary's value and one-sided finite-difference slope
// and curvature (taken inward from the boundary), so that belief values all the way out to 0 and 1 still
// produce a finite, monotone-extended answer instead of the InvCDF's own
// +/-Inf.
func supportAt(fit skewnorm.Params, belief float64) float64 {
	c, clamped := clampBelief(belief)
	if !clamped {
		return fit.InvCDF(c)
	}
	const h = 1e-4
	x0 := fit.InvCDF(c)
	var xm, xp float64
	if c == BeliefLo {
		xp = fit.InvCDF(c + h)
		xm = fit.InvCDF(c + 2*h)
		d1 := (xp - x0) / h
		d2 := (xm - 2*xp + x0) / (h * h)
		dt := belief - c
		return x0 + d1*dt + 0.5*d2*dt*dt
	}
	xm = fit.InvCDF(c - h)
	xp = fit.InvCDF(c - 2*h)
	d1 := (x0 - xm) / h
	d2 := (xp - 2*xm + x0) / (h * h)
	dt := belief - c
	return x0 + d1*dt + 0.5*d2*dt*dt
}

// SupportMass returns the EV level at the given belief; an alias of
// SupportUpper kept for its more common call name.
func (e *Evaluator) SupportMass(rule Rule, i, j int, subset []int, belief float64) float64 {
	return e.SupportUpper(rule, i, j, subset, belief)
}

// SupportUpper returns the EV level x such that mass_above(x) == belief.
func (e *Evaluator) SupportUpper(rule Rule, i, j int, subset []int, belief float64) float64 {
	fit := e.RuleFit(rule, i, j, subset)
	return supportAt(fit, 1-belief)
}

// SupportLower returns the EV level x such that mass_below(x) == belief.
func (e *Evaluator) SupportLower(rule Rule, i, j int, subset []int, belief float64) float64 {
	fit := e.RuleFit(rule, i, j, subset)
	return supportAt(fit, belief)
}
