// Copyright 2026 The UNEDA-sub000 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hull

import (
	"math"

	"github.com/cpmech/gosl/la"
)

// bigU stands in for "no finite displacement needed" when an artificial
// variable's own upper bound is reached; artificials are only ever driven
// to zero, so a generous but finite bound keeps the ratio test uniform
// (no special-cased +Inf branch).
const bigU = 1e12

// tableau is a dense bounded-variable simplex tableau. Rows are equality
// constraints; every variable (structural, slack or artificial) has a
// finite [0, U] range after the lower-bound shift described in solve.go.
// This is the bounded-variable primal simplex (Dantzig's "simplex method
// with upper bounds"): nonbasic variables sit at 0 or at U and a "bound
// flip" moves a nonbasic variable between them without a pivot whenever
// that is the tightest limit. The tableau stays small (MAX_ROWS =
// 2·MAX_STMTS + MAX_COPA) so a dense method is appropriate.
type tableau struct {
	m, n     int
	a        [][]float64 // m x n, in current (pivoted) form
	rhs      []float64   // m, current b' column (nonbasic-at-0 convention)
	u        []float64   // n, shifted upper bound of each variable
	basis    []int       // m, column index basic in each row
	atUpper  []bool      // n, nonbasic status (ignored for basic vars)
	disabled []bool      // n, variable may never be chosen to enter (phase-2 artificials)
}

func newTableau(a [][]float64, b []float64, u []float64) *tableau {
	m := len(a)
	n := 0
	if m > 0 {
		n = len(a[0])
	}
	return &tableau{
		m: m, n: n,
		a:        la.MatClone(a),
		rhs:      la.VecClone(b),
		u:        la.VecClone(u),
		basis:    make([]int, m),
		atUpper:  make([]bool, n),
		disabled: make([]bool, n),
	}
}

// xValue returns the current value of variable j (basic or nonbasic).
func (t *tableau) xValue(j int) float64 {
	for i, bj := range t.basis {
		if bj == j {
			return t.basicValue(i)
		}
	}
	if t.atUpper[j] {
		return t.u[j]
	}
	return 0
}

// basicValue computes the value of the variable basic in row i, given the
// current nonbasic-at-upper set (spec'd by the shifted-bound convention:
// rhs[i] already accounts for nonbasic-at-0 variables via pivoting, so only
// the at-upper contributions need subtracting here).
func (t *tableau) basicValue(i int) float64 {
	v := t.rhs[i]
	for j := 0; j < t.n; j++ {
		if t.atUpper[j] && !t.isBasicCol(j) {
			v -= t.a[i][j] * t.u[j]
		}
	}
	return v
}

// clone returns a deep, independent copy so multiple per-variable
// re-optimizations can all start from the same phase-1 feasible basis.
func (t *tableau) clone() *tableau {
	return &tableau{
		m: t.m, n: t.n,
		a:        la.MatClone(t.a),
		rhs:      la.VecClone(t.rhs),
		u:        la.VecClone(t.u),
		basis:    append([]int(nil), t.basis...),
		atUpper:  append([]bool(nil), t.atUpper...),
		disabled: append([]bool(nil), t.disabled...),
	}
}

func (t *tableau) isBasicCol(j int) bool {
	for _, bj := range t.basis {
		if bj == j {
			return true
		}
	}
	return false
}

// pivot performs Gauss-Jordan elimination making column col the unit
// vector e_row, and also updates the supplied cost row in place.
func (t *tableau) pivot(row, col int, cost []float64) {
	piv := t.a[row][col]
	for j := 0; j < t.n; j++ {
		t.a[row][j] /= piv
	}
	t.rhs[row] /= piv
	for i := 0; i < t.m; i++ {
		if i == row {
			continue
		}
		f := t.a[i][col]
		if f == 0 {
			continue
		}
		la.VecAdd(t.a[i], -f, t.a[row])
		t.rhs[i] -= f * t.rhs[row]
	}
	if cost != nil {
		f := cost[col]
		if f != 0 {
			la.VecAdd(cost, -f, t.a[row])
		}
	}
	t.basis[row] = col
}

// run executes the bounded-variable primal simplex minimizing cost (a
// length-n reduced-cost row already in canonical form w.r.t. the initial
// basis) until optimal or unbounded (never happens here: every variable is
// box-bounded). It returns false if iterations exceed the safety cap
// (numerical degeneracy cycling), which the caller treats as a kernel
// failure.
func (t *tableau) run(cost []float64) bool {
	maxIter := 50*(t.m+t.n) + 200
	for iter := 0; iter < maxIter; iter++ {
		enter, dir := -1, 0.0
		for j := 0; j < t.n; j++ {
			if t.disabled[j] || t.isBasicCol(j) {
				continue
			}
			if !t.atUpper[j] && cost[j] < -EPS {
				enter, dir = j, 1
				break
			}
			if t.atUpper[j] && cost[j] > EPS {
				enter, dir = j, -1
				break
			}
		}
		if enter < 0 {
			return true // optimal
		}

		// Ratio test: how far can `enter` move in direction dir before
		// some basic variable or the entering variable itself hits a
		// bound.
		limit := t.u[enter]
		leaveRow := -1
		for i := 0; i < t.m; i++ {
			coef := dir * t.a[i][enter]
			if math.Abs(coef) < 1e-12 {
				continue
			}
			xb := t.basicValue(i)
			var room float64
			if coef > 0 {
				room = xb / coef // basic var falling toward 0
			} else {
				room = (t.u[t.basis[i]] - xb) / (-coef) // basic var rising toward its U
			}
			if room < -1e-9 {
				room = 0
			}
			if room < limit-1e-12 {
				limit = room
				leaveRow = i
			}
		}
		if leaveRow < 0 {
			// Bound flip: entering variable swings to its opposite bound,
			// no basis change.
			t.atUpper[enter] = !t.atUpper[enter]
			continue
		}
		leaveVar := t.basis[leaveRow]
		// The leaving variable settles at 0 if it was driven down, or at
		// its own U if driven up.
		t.atUpper[leaveVar] = dir*t.a[leaveRow][enter] < 0
		t.atUpper[enter] = false
		t.pivot(leaveRow, enter, cost)
	}
	return false
}
