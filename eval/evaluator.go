// Copyright 2026 The UNEDA-sub000 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eval

import (
	"github.com/uneda-cda/UNEDA-sub000/moment"
	"github.com/uneda-cda/UNEDA-sub000/skewnorm"
)

// FitEps is the variance floor below which a skew-normal fit is treated as
// degenerate (the m2 > ε precondition for a well-defined skew shape).
const FitEps = 1e-9

// Evaluator answers the public evaluation operations for a single
// criterion: it combines a moment.Engine (first three moments per
// alternative), a BoundsEngine (EV hulls per alternative) and a per-
// alternative skew-normal fit, and caches all three per alternative until
// Invalidate drops the cache, so a fresh evaluation is only recomputed
// after a base mutation. The Evaluator does not read base generations
// itself; its owner calls Invalidate.
type Evaluator struct {
	Moments *moment.Engine
	Bounds  *BoundsEngine

	generation int
	cache      []cacheEntry // lazily populated, one slot per alternative
}

type cacheEntry struct {
	valid  bool
	triple moment.Triple
	bounds Bounds
	fit    skewnorm.Params
}

// New builds an Evaluator from a moment engine and bounds engine that share
// the same underlying frame and P/V bases.
func New(m *moment.Engine, b *BoundsEngine) *Evaluator {
	return &Evaluator{Moments: m, Bounds: b}
}

// Invalidate drops the cache; call after any P/V/W base mutation (the
// caller — the engine package's frame manager — tracks the generation
// counter and calls this when it changes).
func (e *Evaluator) Invalidate() {
	e.cache = nil
}

func (e *Evaluator) entry(i int) cacheEntry {
	if e.cache == nil {
		e.cache = make([]cacheEntry, e.Moments.Frame.NAlts())
	}
	if e.cache[i].valid {
		return e.cache[i]
	}
	tr := e.Moments.Alternative(i)
	bd := e.Bounds.Alternative(i)
	fit := skewnorm.Fit(tr.M1, tr.M2, tr.M3, FitEps)
	ce := cacheEntry{valid: true, triple: tr, bounds: bd, fit: fit}
	e.cache[i] = ce
	return ce
}

// allData returns the per-alternative moment triple and EV bounds for every
// alternative, populating the cache (fits included) as needed.
func (e *Evaluator) allData() ([]moment.Triple, []Bounds) {
	n := e.Moments.Frame.NAlts()
	triples := make([]moment.Triple, n)
	bounds := make([]Bounds, n)
	for i := 0; i < n; i++ {
		ce := e.entry(i)
		triples[i] = ce.triple
		bounds[i] = ce.bounds
	}
	return triples, bounds
}

// ruleBounds applies Rule to the EV-bounds view of the requested
// alternative(s).
func ruleBounds(rule Rule, all []Bounds, i, j int, subset []int) Bounds {
	switch rule {
	case RuleDelta:
		return Delta(all, i, j)
	case RuleGamma:
		return Gamma(all, i)
	case RuleDeltaGamma:
		return DeltaGamma(all, subset)
	default:
		return Psi(all, i)
	}
}

// ruleMoments applies Rule to the moment-triple view of the requested
// alternative(s).
func ruleMoments(rule Rule, all []moment.Triple, i, j int, subset []int) moment.Triple {
	switch rule {
	case RuleDelta:
		return moment.Delta(all, i, j)
	case RuleGamma:
		return moment.Gamma(all, i)
	case RuleDeltaGamma:
		return moment.DeltaGamma(all, subset)
	default:
		return moment.Psi(all, i)
	}
}

// EVResult is the result of Evaluate: the EV hull endpoints and a midpoint.
type EVResult struct {
	Min, Mid, Max float64
}

// Evaluate computes {min, mid, max} for the given rule applied to
// alternatives i (and j / subset, depending on rule). mid is the moment
// mean m1 of the ruled distribution, as an alternative to the raw bounds
// midpoint; EvaluateRaw returns the other convention for callers that want
// it instead.
func (e *Evaluator) Evaluate(rule Rule, i, j int, subset []int) EVResult {
	triples, bounds := e.allData()
	b := ruleBounds(rule, bounds, i, j, subset)
	m := ruleMoments(rule, triples, i, j, subset)
	return EVResult{Min: b.Lo, Mid: m.M1, Max: b.Hi}
}

// EvaluateRaw is Evaluate but with Mid as the raw (min+max)/2 bounds
// midpoint instead of the moment mean.
func (e *Evaluator) EvaluateRaw(rule Rule, i, j int, subset []int) EVResult {
	_, bounds := e.allData()
	b := ruleBounds(rule, bounds, i, j, subset)
	return EVResult{Min: b.Lo, Mid: b.Mid(), Max: b.Hi}
}

// Fit returns the cached skew-normal fit for alternative i's own (ψ) EV
// distribution.
func (e *Evaluator) Fit(i int) skewnorm.Params {
	return e.entry(i).fit
}

// RuleFit fits a skew-normal to the ruled combination directly (used by
// mass/support queries on δ/γ/Δγ views, which are not one of the cached
// per-alternative entries).
func (e *Evaluator) RuleFit(rule Rule, i, j int, subset []int) skewnorm.Params {
	triples, _ := e.allData()
	m := ruleMoments(rule, triples, i, j, subset)
	return skewnorm.Fit(m.M1, m.M2, m.M3, FitEps)
}

// RuleBounds returns just the EV bounds for the given rule/alternatives,
// without a skew-normal fit.
func (e *Evaluator) RuleBounds(rule Rule, i, j int, subset []int) Bounds {
	_, bounds := e.allData()
	return ruleBounds(rule, bounds, i, j, subset)
}
