// Copyright 2026 The UNEDA-sub000 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dominance implements pairwise stochastic dominance, its
// non-transitive reduction, dominance-based ranking, and the
// weight-independent "absolute dominance" composition across criteria.
package dominance

import (
	"gonum.org/v1/gonum/floats"

	"github.com/uneda-cda/UNEDA-sub000/eval"
)

// Limit is the threshold below which the accumulated cone difference is
// treated as no dominance at all.
const Limit = 1e-3

// Order is the dominance verdict between an ordered pair.
type Order int

const (
	None  Order = 0
	First Order = 1
	Second Order = 2
)

// Get computes get_dominance(crit, Ai, Aj): expand each alternative's ψ EV
// to the 21-step half-cdf cone, accumulate the sign-sensitive differences,
// and classify the result.
func Get(ev *eval.Evaluator, i, j int) (cdValue float64, order Order) {
	ci := ev.EvaluateFull(eval.RulePsi, i, 0, nil, eval.FullConeToHalf)
	cj := ev.EvaluateFull(eval.RulePsi, j, 0, nil, eval.FullConeToHalf)

	domI, domJ := 0, 0
	n := len(ci[0])
	diffs := make([]float64, n)
	for k := 0; k < n; k++ {
		// Average the (lo,mid,hi) triple at this step into one scalar
		// comparison point per alternative before differencing.
		vi := (ci[0][k] + ci[1][k] + ci[2][k]) / 3
		vj := (cj[0][k] + cj[1][k] + cj[2][k]) / 3
		d := vi - vj
		diffs[k] = d
		if d > Limit {
			domI++
		} else if -d > Limit {
			domJ++
		}
	}
	cdValue = floats.Sum(diffs) / float64(n)

	if abs(cdValue) < Limit {
		return cdValue, None
	}
	dom := 0
	if domI > 0 {
		dom |= 1
	}
	if domJ > 0 {
		dom |= 2
	}
	switch {
	case dom == 1:
		return cdValue, First
	case dom == 2 || dom == 3:
		return cdValue, Second
	default:
		return cdValue, None
	}
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

// Matrix returns Get's order for every ordered pair (i,j), i != j;
// Matrix[i][j] == None for i == j.
func Matrix(ev *eval.Evaluator, n int) [][]Order {
	m := make([][]Order, n)
	for i := range m {
		m[i] = make([]Order, n)
		for j := range m[i] {
			if i == j {
				continue
			}
			_, m[i][j] = Get(ev, i, j)
		}
	}
	return m
}
