// Copyright 2026 The UNEDA-sub000 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package moment

// AverageMoments returns the plain per-moment average across components:
// mean of means, mean of variances, mean of third central moments. This is
// the combination rule behind the γ (one-vs-rest) and Δγ (subset-vs-peer)
// evaluation modes — each moment is averaged on its own, with no
// between-component dispersion term added in, matching δ's plain
// cm2[i]+cm2[j] sum for the pairwise case.
func AverageMoments(ts []Triple) Triple {
	n := len(ts)
	if n == 0 {
		return Triple{}
	}
	var mean, m2, m3 float64
	for _, t := range ts {
		mean += t.M1
		m2 += t.M2
		m3 += t.M3
	}
	return Triple{M1: mean / float64(n), M2: m2 / float64(n), M3: m3 / float64(n)}
}

// Psi (ψ) is the trivial single-alternative evaluation rule: the moments
// of alternative i's own expected value, unmodified.
func Psi(all []Triple, i int) Triple {
	return all[i]
}

// Delta (δ) is the pairwise-difference evaluation rule: alternative i
// minus alternative j, as independent random variables.
func Delta(all []Triple, i, j int) Triple {
	return all[i].Sub(all[j])
}

// Gamma (γ) is the one-vs-rest evaluation rule: alternative i against a
// uniformly-chosen one of the other alternatives.
func Gamma(all []Triple, i int) Triple {
	rest := make([]Triple, 0, len(all)-1)
	for k, t := range all {
		if k != i {
			rest = append(rest, t)
		}
	}
	return all[i].Sub(AverageMoments(rest))
}

// DeltaGamma (Δγ) is the subset-vs-peer evaluation rule: a uniformly-chosen
// member of subset against a uniformly-chosen member of its complement
// within all.
func DeltaGamma(all []Triple, subset []int) Triple {
	inSubset := make(map[int]bool, len(subset))
	for _, i := range subset {
		inSubset[i] = true
	}
	in := make([]Triple, 0, len(subset))
	out := make([]Triple, 0, len(all)-len(subset))
	for k, t := range all {
		if inSubset[k] {
			in = append(in, t)
		} else {
			out = append(out, t)
		}
	}
	return AverageMoments(in).Sub(AverageMoments(out))
}

// CombineCriteria folds the per-criterion expected-value moments of one
// alternative into an overall multi-criteria (MC) moment triple, weighted
// by the frame's W-base: the same Σ w_k * Y_k structure as combining a
// sibling group, with criterion weights standing in for branch
// probabilities.
func CombineCriteria(meanW, loW, upW []float64, perCriterion []Triple) Triple {
	return GroupMoments(meanW, loW, upW, perCriterion)
}
