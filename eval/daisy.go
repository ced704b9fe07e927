// Copyright 2026 The UNEDA-sub000 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eval

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// DaisyChain computes the pairwise-adjacent belief masses along the
// ψ-ranked chain of alternatives: sort alternatives by ψ mean descending,
// then for each adjacent pair return the belief that the
// higher-ranked one exceeds the lower-ranked one. When radius > 0, the
// belief mass is blended with the normalised EV delta for pairs whose mean
// gap is within radius — close calls lean on the raw magnitude of the
// difference rather than an over-confident 0/1-ish belief mass.
func (e *Evaluator) DaisyChain(radius float64) []float64 {
	ranks := e.RankAlternatives(RankStrict)
	n := len(ranks)
	chain := make([]int, n)
	for alt, r := range ranks {
		chain[r-1] = alt
	}
	out := make([]float64, 0, n-1)
	for k := 0; k < n-1; k++ {
		i, j := chain[k], chain[k+1]
		belief := e.MassAbove(RuleDelta, i, j, nil, 0).Value
		ev := e.Evaluate(RuleDelta, i, j, nil)
		gap := math.Abs(ev.Mid)
		if radius > 0 && gap < radius {
			span := ev.Max - ev.Min
			norm := 0.5
			if span > 1e-12 {
				norm = (ev.Mid - ev.Min) / span
			}
			w := gap / radius
			belief = w*belief + (1-w)*norm
		}
		out = append(out, belief)
	}
	return out
}

// PieChart normalises DaisyChain's values into proportions summing to 1.
func PieChart(daisy []float64) []float64 {
	sum := floats.Sum(daisy)
	out := make([]float64, len(daisy))
	if sum <= 0 {
		for i := range out {
			out[i] = 1.0 / float64(len(out))
		}
		return out
	}
	for i, d := range daisy {
		out[i] = d / sum
	}
	return out
}
