// Copyright 2026 The UNEDA-sub000 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hull

import (
	"fmt"

	"github.com/cpmech/gosl/la"
)

// InconsistentError is returned by Solve when the statement list, box and
// midpoint box together have no feasible point.
type InconsistentError struct {
	Reason string
}

func (e *InconsistentError) Error() string { return "hull: inconsistent: " + e.Reason }

// KernelError is returned when the simplex iteration cap is hit — a
// numerical-degeneracy failure of the solver itself rather than of the
// caller's data.
type KernelError struct {
	Stage string
}

func (e *KernelError) Error() string { return "hull: kernel failure in " + e.Stage }

// Result is the consolidated hull: per-variable minimum and maximum over
// the feasible polytope.
type Result struct {
	Lo, Up []float64
}

// Subset returns the "local" hull restricted to the given variable
// indices, e.g. the variables of a single alternative, for use by the
// evaluator without re-solving.
func (r *Result) Subset(vars []int) *Result {
	s := &Result{Lo: make([]float64, len(vars)), Up: make([]float64, len(vars))}
	for i, v := range vars {
		s.Lo[i] = r.Lo[v]
		s.Up[i] = r.Up[v]
	}
	return s
}

// Solve computes the orthogonal hull of p, or returns *InconsistentError /
// *KernelError. It never mutates p.
func Solve(p *Polytope) (*Result, error) {
	n := p.NVars
	effLo := make([]float64, n)
	effUp := make([]float64, n)
	for v := 0; v < n; v++ {
		lo, up := p.BoxLo[v], p.BoxUp[v]
		if p.MboxLo[v] != EmptyMidpoint && p.MboxLo[v] > lo {
			lo = p.MboxLo[v]
		}
		if p.MboxUp[v] != EmptyMidpoint && p.MboxUp[v] < up {
			up = p.MboxUp[v]
		}
		if lo > up+EPS {
			return nil, &InconsistentError{Reason: fmt.Sprintf("variable %d box/midpoint bounds cross: [%g,%g]", v, lo, up)}
		}
		if lo > up {
			lo = up
		}
		effLo[v], effUp[v] = lo, up
	}

	nSlack := len(p.Stmts)
	nStruct := n + nSlack
	m := len(p.Stmts) + len(p.Groups)

	lo := make([]float64, nStruct)
	up := make([]float64, nStruct)
	copy(lo, effLo)
	copy(up, effUp)
	for k, s := range p.Stmts {
		if s.Lobo > s.Upbo+EPS {
			return nil, &InconsistentError{Reason: fmt.Sprintf("statement %d has lobo>upbo", k)}
		}
		lo[n+k], up[n+k] = s.Lobo, s.Upbo
		if lo[n+k] > up[n+k] {
			lo[n+k] = up[n+k]
		}
	}

	if m == 0 {
		// No cross-variable constraints at all (pure V-base with no
		// statements): the hull is just the box itself.
		return &Result{Lo: effLo, Up: effUp}, nil
	}

	a := la.MatAlloc(m, nStruct)
	rawRhs := make([]float64, m)
	row := 0
	for k, s := range p.Stmts {
		for _, t := range s.Terms {
			p.checkVar(t.Var)
			a[row][t.Var] += t.Sign
		}
		a[row][n+k] = -1
		rawRhs[row] = 0
		row++
	}
	for _, g := range p.Groups {
		for _, v := range g.Vars {
			p.checkVar(v)
			a[row][v] += 1
		}
		rawRhs[row] = 1
		row++
	}

	// Shift to zero lower bounds: x = lo + s, s in [0, U].
	shiftedU := make([]float64, nStruct)
	b := make([]float64, m)
	for j := 0; j < nStruct; j++ {
		shiftedU[j] = up[j] - lo[j]
		if shiftedU[j] < 0 {
			shiftedU[j] = 0
		}
	}
	for i := 0; i < m; i++ {
		v := rawRhs[i]
		for j := 0; j < nStruct; j++ {
			v -= a[i][j] * lo[j]
		}
		b[i] = v
	}

	// Append one artificial variable per row, normalizing sign so b>=0.
	nTotal := nStruct + m
	full := la.MatAlloc(m, nTotal)
	u := make([]float64, nTotal)
	copy(u, shiftedU)
	for i := 0; i < m; i++ {
		copy(full[i], a[i])
		sign := 1.0
		if b[i] < 0 {
			sign = -1.0
		}
		for j := 0; j < nStruct; j++ {
			full[i][j] *= sign
		}
		b[i] *= sign
		full[i][nStruct+i] = 1
		u[nStruct+i] = bigU
	}

	t0 := newTableau(full, b, u)
	for i := 0; i < m; i++ {
		t0.basis[i] = nStruct + i
	}
	for j := nStruct; j < nTotal; j++ {
		t0.disabled[j] = false
	}

	// Phase 1: minimize sum of artificials. Raw cost is 1 on artificials,
	// canonicalize against the initial (artificial) basis.
	rawCost := make([]float64, nTotal)
	for j := nStruct; j < nTotal; j++ {
		rawCost[j] = 1
	}
	cost := canonicalCost(t0, rawCost)
	if ok := t0.run(cost); !ok {
		return nil, &KernelError{Stage: "phase1"}
	}
	infeasibility := 0.0
	for i := 0; i < m; i++ {
		if t0.basis[i] >= nStruct {
			infeasibility += t0.basicValue(i)
		}
	}
	if infeasibility > 1e-5 {
		return nil, &InconsistentError{Reason: "no feasible point satisfies all statements and boxes"}
	}
	for j := nStruct; j < nTotal; j++ {
		t0.disabled[j] = true
	}

	result := &Result{Lo: make([]float64, n), Up: make([]float64, n)}
	for v := 0; v < n; v++ {
		lov, err := optimize(t0, v, nTotal, +1)
		if err != nil {
			return nil, err
		}
		upv, err := optimize(t0, v, nTotal, -1)
		if err != nil {
			return nil, err
		}
		result.Lo[v] = lo[v] + lov
		result.Up[v] = lo[v] + upv
	}
	return result, nil
}

// optimize clones the feasible tableau t0 and minimizes sign*x_v (sign=+1
// minimizes, sign=-1 maximizes), returning the shifted value of x_v at the
// optimum.
func optimize(t0 *tableau, v, nTotal int, sign float64) (float64, error) {
	t := t0.clone()
	rawCost := make([]float64, nTotal)
	rawCost[v] = sign
	cost := canonicalCost(t, rawCost)
	if ok := t.run(cost); !ok {
		return 0, &KernelError{Stage: "phase2"}
	}
	return t.xValue(v), nil
}

// canonicalCost reduces rawCost against t's current basis so it is a valid
// simplex reduced-cost row for iterating from t's present state.
func canonicalCost(t *tableau, rawCost []float64) []float64 {
	cost := append([]float64(nil), rawCost...)
	for i := 0; i < t.m; i++ {
		bi := t.basis[i]
		f := rawCost[bi]
		if f == 0 {
			continue
		}
		la.VecAdd(cost, -f, t.a[i])
	}
	return cost
}
