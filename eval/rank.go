// Copyright 2026 The UNEDA-sub000 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eval

import "sort"

// DominanceLimit is the threshold below which two alternatives' aggregated
// difference is treated as "no meaningful separation", reused here for
// rank grouping/tie-breaking.
const DominanceLimit = 1e-3

// CompareResult is the result of comparing two alternatives pairwise.
type CompareResult struct {
	EV     EVResult
	Belief float64 // mass that i's EV exceeds j's, i.e. P(delta > 0)
}

// CompareAlternatives evaluates the δ rule between i and j and the belief
// mass that i outperforms j.
func (e *Evaluator) CompareAlternatives(i, j int) CompareResult {
	ev := e.Evaluate(RuleDelta, i, j, nil)
	belief := e.MassAbove(RuleDelta, i, j, nil, 0).Value
	return CompareResult{EV: ev, Belief: belief}
}

// DeltaMass is the belief mass that i's EV exceeds j's by at least margin.
func (e *Evaluator) DeltaMass(i, j int, margin float64) float64 {
	return e.MassAbove(RuleDelta, i, j, nil, margin).Value
}

// RankMode selects one of the four positive ranking modes.
type RankMode int

const (
	RankOlympic RankMode = iota
	RankStrict
	RankStrictTiebreak
	RankGroup
)

// RankAlternatives ranks alternatives by descending ψ mean, 1 = best.
func (e *Evaluator) RankAlternatives(mode RankMode) []int {
	triples, _ := e.allData()
	n := len(triples)
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		ia, ib := order[a], order[b]
		if mode == RankStrictTiebreak {
			if closeEnough(triples[ia].M1, triples[ib].M1) {
				return triples[ia].M2 < triples[ib].M2 // lower variance ranks better on a tie
			}
		}
		return triples[ia].M1 > triples[ib].M1
	})
	ranks := make([]int, n)
	switch mode {
	case RankStrict, RankStrictTiebreak:
		for pos, alt := range order {
			ranks[alt] = pos + 1
		}
	default: // RankOlympic, RankGroup: ties (within DominanceLimit) share a rank
		rank := 1
		for pos, alt := range order {
			if pos > 0 {
				prev := order[pos-1]
				if !closeEnough(triples[alt].M1, triples[prev].M1) {
					rank = pos + 1
				}
			}
			ranks[alt] = rank
		}
	}
	return ranks
}

func closeEnough(a, b float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < DominanceLimit
}

// SecLevel is the "security level": the EV that is exceeded with at least
// the given belief. belief ∈ [0,1], e.g. 0.95 asks "what EV am I
// guaranteed to beat 95% of the time".
func (e *Evaluator) SecLevel(rule Rule, i, j int, subset []int, belief float64) float64 {
	return e.SupportUpper(rule, i, j, subset, belief)
}
