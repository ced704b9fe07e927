// Copyright 2026 The UNEDA-sub000 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package eval orchestrates the hull solver, the moment engine and the
// skew-normal layer into the public evaluation operations: EV hulls,
// belief-mass/support queries, aversion value, rankings, and the
// daisy-chain/pie-chart composite views.
package eval

import (
	"sort"

	"github.com/uneda-cda/UNEDA-sub000/base"
	"github.com/uneda-cda/UNEDA-sub000/tree"
)

// Bounds is an expected-value interval [Lo, Hi].
type Bounds struct {
	Lo, Hi float64
}

// Mid returns the raw midpoint of the interval, distinct from a
// moment-based mean: Evaluate's mid is either the raw midpoint or the
// mean m1 depending on the query.
func (b Bounds) Mid() float64 { return (b.Lo + b.Hi) / 2 }

// Negate returns the bounds of -X.
func (b Bounds) Negate() Bounds { return Bounds{Lo: -b.Hi, Hi: -b.Lo} }

// Add returns the bounds of the sum of two independent bounded variables.
func (b Bounds) Add(o Bounds) Bounds { return Bounds{Lo: b.Lo + o.Lo, Hi: b.Hi + o.Hi} }

// Sub returns the bounds of b - o for independent bounded variables.
func (b Bounds) Sub(o Bounds) Bounds { return Bounds{Lo: b.Lo - o.Hi, Hi: b.Hi - o.Lo} }

// BoundsEngine computes per-alternative EV bounds over a frame's P/V bases,
// using the same independence assumption the moment engine uses: since a
// node's probability box and its children's value bounds constrain disjoint
// variable sets, the joint minimum (or maximum) of Σ p_c·Y_c is the minimum
// (maximum) over p of Σ p_c·(the already-extremised bound of Y_c) — the
// inner extremisation over each Y_c and the outer extremisation over the
// simplex of p commute exactly, so this is an exact bound, not an
// approximation, under that independence assumption.
type BoundsEngine struct {
	Frame *tree.Frame
	P     *base.Base
	V     *base.Base
}

// NewBoundsEngine builds a BoundsEngine over an attached frame and its P/V
// bases.
func NewBoundsEngine(fr *tree.Frame, p, v *base.Base) *BoundsEngine {
	return &BoundsEngine{Frame: fr, P: p, V: v}
}

// Alternative returns the EV bounds of alternative a.
func (e *BoundsEngine) Alternative(a int) Bounds {
	root := e.Frame.Siblings(a, -1)[0]
	return e.nodeBounds(a, root)
}

// All returns Alternative for every alternative of the frame.
func (e *BoundsEngine) All() []Bounds {
	out := make([]Bounds, e.Frame.NAlts())
	for a := range out {
		out[a] = e.Alternative(a)
	}
	return out
}

func (e *BoundsEngine) nodeBounds(a, t int) Bounds {
	if e.Frame.Kind(a, t) == tree.Real {
		r := e.Frame.RealFlatOfNode(a, t)
		lo, up := e.V.HullOf(r)
		return Bounds{Lo: lo, Hi: up}
	}
	children := e.Frame.Siblings(a, t)
	n := len(children)
	plo := make([]float64, n)
	pup := make([]float64, n)
	blo := make([]float64, n)
	bup := make([]float64, n)
	for i, c := range children {
		f := e.Frame.FlatOfNode(a, c)
		plo[i], pup[i] = e.P.HullOf(f)
		b := e.nodeBounds(a, c)
		blo[i], bup[i] = b.Lo, b.Hi
	}
	return Bounds{
		Lo: simplexExtreme(blo, plo, pup, true),
		Hi: simplexExtreme(bup, plo, pup, false),
	}
}

// simplexExtreme returns min (if minimize) or max of Σ coeff[i]*p[i] over
// p in the simplex Σp=1, lo[i]<=p[i]<=up[i] — an exact greedy solution: push
// probability mass to the most favorable coordinates first, respecting each
// coordinate's own box, since the LP has a single equality constraint and a
// linear objective (the classic bounded fractional-knapsack argument).
func simplexExtreme(coeff, lo, up []float64, minimize bool) float64 {
	n := len(coeff)
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(i, j int) bool {
		if minimize {
			return coeff[idx[i]] < coeff[idx[j]]
		}
		return coeff[idx[i]] > coeff[idx[j]]
	})
	// Start every coordinate at its own lower bound, then greedily raise
	// the most-favorable ones up to their upper bound until the mass
	// remaining to distribute is exhausted.
	sumLo := 0.0
	for _, l := range lo {
		sumLo += l
	}
	remaining := 1 - sumLo
	p := make([]float64, n)
	copy(p, lo)
	for _, i := range idx {
		room := up[i] - lo[i]
		if room <= 0 {
			continue
		}
		if remaining <= 0 {
			break
		}
		take := room
		if take > remaining {
			take = remaining
		}
		p[i] += take
		remaining -= take
	}
	total := 0.0
	for i, c := range coeff {
		total += c * p[i]
	}
	return total
}
