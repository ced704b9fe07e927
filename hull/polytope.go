// Copyright 2026 The UNEDA-sub000 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package hull is the constraint-base polytope solver: given a statement
// list, an interval box and a midpoint box, it either declares the
// conjunction inconsistent or produces, for every variable, the minimum
// and maximum it can take over the feasible region — the orthogonal hull.
// It knows nothing about trees, criteria or alternatives; callers (package
// base) translate their own bookkeeping into the plain index-space
// Polytope defined here.
package hull

import "github.com/cpmech/gosl/chk"

// EPS is the hull solver's inner numerical horizon: bounds crossing by
// more than EPS make a variable, and therefore the polytope, inconsistent.
const EPS = 1e-6

// EmptyMidpoint is the mbox sentinel meaning "no midpoint recorded for
// this variable". It is distinct from the bulk-set "skip this slot"
// sentinel (-2), which belongs to package base's SetMbox API and must
// never reach this package.
const EmptyMidpoint = -1.0

// Term is one operand of a statement: the variable it references and its
// sign (+1 or -1).
type Term struct {
	Var  int
	Sign float64
}

// Stmt is one statement: 1 or 2 terms with a closed bound [Lobo, Upbo].
// A single-term statement is a direct interval bound on Term[0].Var; a
// two-term statement bounds the signed linear combination of both terms.
type Stmt struct {
	Terms      []Term
	Lobo, Upbo float64
}

// Group is one simplex constraint: the variables in it must sum to
// exactly 1 (a P or W sibling group under one event node). The V-base
// passes no groups, since a V-base is a product of per-variable intervals
// only.
type Group struct {
	Vars []int
}

// Polytope is the plain-data contract the solver consumes: nVars
// variables, a box (interval per variable), an optional midpoint box
// (mean bounds per variable; EmptyMidpoint means "no midpoint"), the one-
// and two-term range statements, and the simplex groups.
type Polytope struct {
	NVars int

	BoxLo, BoxUp   []float64
	MboxLo, MboxUp []float64

	Stmts  []Stmt
	Groups []Group
}

// NewPolytope allocates a Polytope for nVars variables with the widest
// possible box ([-1,1] for signed bases, callers narrow it) and empty
// midpoints.
func NewPolytope(nVars int, lo, up float64) *Polytope {
	p := &Polytope{
		NVars: nVars,
		BoxLo: make([]float64, nVars),
		BoxUp: make([]float64, nVars),
		MboxLo: make([]float64, nVars),
		MboxUp: make([]float64, nVars),
	}
	for i := 0; i < nVars; i++ {
		p.BoxLo[i] = lo
		p.BoxUp[i] = up
		p.MboxLo[i] = EmptyMidpoint
		p.MboxUp[i] = EmptyMidpoint
	}
	return p
}

// Clone returns a deep copy, used by the transactional mutation wrappers
// in package base to snapshot state before a tentative change.
func (p *Polytope) Clone() *Polytope {
	q := &Polytope{NVars: p.NVars}
	q.BoxLo = append([]float64(nil), p.BoxLo...)
	q.BoxUp = append([]float64(nil), p.BoxUp...)
	q.MboxLo = append([]float64(nil), p.MboxLo...)
	q.MboxUp = append([]float64(nil), p.MboxUp...)
	q.Stmts = make([]Stmt, len(p.Stmts))
	for i, s := range p.Stmts {
		q.Stmts[i] = Stmt{Terms: append([]Term(nil), s.Terms...), Lobo: s.Lobo, Upbo: s.Upbo}
	}
	q.Groups = make([]Group, len(p.Groups))
	for i, g := range p.Groups {
		q.Groups[i] = Group{Vars: append([]int(nil), g.Vars...)}
	}
	return q
}

func (p *Polytope) checkVar(v int) {
	if v < 0 || v >= p.NVars {
		chk.Panic("hull: variable index %d out of range [0,%d)", v, p.NVars)
	}
}
