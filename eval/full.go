// Copyright 2026 The UNEDA-sub000 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eval

// FullSteps is the number of support-level brackets EvaluateFull produces
// per row: a 3 x 21 matrix of increasing support-level bracketings.
const FullSteps = 21

// FullMode selects one of the four EvaluateFull expansion modes: the cone
// can converge in belief space toward the 50% cdf level, or in EV space
// toward the distribution's own mean ("mass point"); either can
// additionally have its min/max rows swapped (used when a caller wants the
// pessimistic bound listed first).
type FullMode int

const (
	FullConeToHalf FullMode = iota
	FullConeToHalfSwap
	FullConeToMassPoint
	FullConeToMassPointSwap
)

// FullMatrix is evaluate_full's 3x21 result: row 0/1/2 are conventionally
// (min, mid, max) per step, or (max, mid, min) under a swap mode.
type FullMatrix [3][FullSteps]float64

// EvaluateFull computes the bracketing cone for the given rule/mode.
func (e *Evaluator) EvaluateFull(rule Rule, i, j int, subset []int, mode FullMode) FullMatrix {
	fit := e.RuleFit(rule, i, j, subset)
	bounds := e.RuleBounds(rule, i, j, subset)
	mid := e.ruleMean(rule, i, j, subset)

	var out FullMatrix
	swap := mode == FullConeToHalfSwap || mode == FullConeToMassPointSwap
	byMassPoint := mode == FullConeToMassPoint || mode == FullConeToMassPointSwap

	for k := 0; k < FullSteps; k++ {
		frac := float64(k) / float64(FullSteps-1) // 0 at the outer edge, 1 at the center
		var lo, hi float64
		if byMassPoint {
			lo = bounds.Lo + (mid-bounds.Lo)*frac
			hi = bounds.Hi - (bounds.Hi-mid)*frac
		} else {
			belief := 1 - 0.5*frac // 1.0 at k=0 down to 0.5 at k=FullSteps-1
			lo = supportAt(fit, 1-belief)
			hi = supportAt(fit, belief)
		}
		if swap {
			out[0][k], out[2][k] = hi, lo
		} else {
			out[0][k], out[2][k] = lo, hi
		}
		out[1][k] = mid
	}
	return out
}

// ruleMean returns the moment mean of the ruled combination (evaluate_full's
// own "mid" convention always uses the moment mean, not the raw bounds
// midpoint).
func (e *Evaluator) ruleMean(rule Rule, i, j int, subset []int) float64 {
	triples, _ := e.allData()
	return ruleMoments(rule, triples, i, j, subset).M1
}
