// Copyright 2026 The UNEDA-sub000 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package moment

import "math"

// TriangularLeaf returns the (mean, variance, third-central-moment) of a
// single leaf's value, modeled as an independent symmetric triangular
// random variable on its hull, whose mode sits at the midpoint (mean) and
// whose half-width is clipped to stay inside [lo, up]. A symmetric
// triangular's third central moment is exactly zero.
//
// If no midpoint is recorded, the triangular is centred on the hull's own
// midpoint with the full hull as its support.
func TriangularLeaf(lo, up float64, mid float64, hasMid bool) Triple {
	c := mid
	if !hasMid {
		c = (lo + up) / 2
	}
	w := math.Min(c-lo, up-c)
	if w < 0 {
		w = 0
	}
	if w == 0 {
		return Triple{M1: c, M2: 0, M3: 0}
	}
	return Triple{M1: c, M2: w * w / 6, M3: 0}
}

// betaMoments returns the (variance, third-central-moment) of a
// Beta(alpha, beta) marginal with the given mean=alpha/(alpha+beta) and
// concentration alpha+beta=kappa — the exact marginal of one coordinate of
// a Dirichlet(kappa * mean_1, ..., kappa * mean_n) vector.
func betaMoments(mean, kappa float64) (variance, m3 float64) {
	alpha := mean * kappa
	beta := (1 - mean) * kappa
	variance = alpha * beta / (kappa * kappa * (kappa + 1))
	// Standard Beta skewness: 2(beta-alpha)*sqrt(kappa+1) / ((kappa+2)*sqrt(alpha*beta))
	if alpha <= 0 || beta <= 0 {
		return variance, 0
	}
	skew := 2 * (beta - alpha) * math.Sqrt(kappa+1) / ((kappa + 2) * math.Sqrt(alpha*beta))
	m3 = skew * math.Pow(variance, 1.5)
	return variance, m3
}

// EstimateConcentration derives a single shared Dirichlet concentration
// kappa for one sibling group from each sibling's own hull width, by
// solving, per sibling, the kappa that would make a Beta marginal's
// variance match a symmetric-triangular-equivalent spread over that
// sibling's hull, then averaging. The data model gives hull + midpoint,
// not a concentration parameter directly, so one is inferred from the
// stated uncertainty width rather than assumed fixed.
func EstimateConcentration(mean, lo, up []float64) float64 {
	const minKappa = 0.5
	sum, n := 0.0, 0
	for k := range mean {
		m := mean[k]
		if m < 1e-6 {
			m = 1e-6
		} else if m > 1-1e-6 {
			m = 1 - 1e-6
		}
		w := up[k] - lo[k]
		if w <= 1e-9 {
			continue // a Dirac sibling carries no information about kappa
		}
		sigma2 := w * w / 24
		kappa := m*(1-m)/sigma2 - 1
		if kappa < minKappa {
			kappa = minKappa
		}
		sum += kappa
		n++
	}
	if n == 0 {
		return 50 // all siblings Dirac: a large kappa collapses variance to ~0 anyway
	}
	return sum / float64(n)
}

// Product returns the moments of the product Z = P*Y of two independent
// random variables P (mean meanP, variance varP, third central moment
// m3P) and Y (mean meanY, variance varY, third central moment m3Y). The
// variance formula is the standard Var(XY) identity for independents; the
// third-central-moment formula is the exact expansion of
// E[((P-meanP)(Y-meanY) + meanP(Y-meanY) + meanY(P-meanP))^3] using
// independence to zero out mixed odd-moment cross terms.
func Product(meanP, varP, m3P, meanY, varY, m3Y float64) Triple {
	mean := meanP * meanY
	variance := meanP*meanP*varY + meanY*meanY*varP + varP*varY
	m3 := meanP*meanP*meanP*m3Y +
		meanY*meanY*meanY*m3P +
		m3P*m3Y +
		3*meanP*varP*m3Y +
		3*meanY*m3P*varY +
		6*meanP*meanY*varP*varY
	return Triple{M1: mean, M2: variance, M3: m3}
}

// GroupMoments combines a Dirichlet-correlated sibling group (means lo/up
// hulls for the branch probabilities, and the already-computed moments of
// each branch's own value) into the moments of Σ_c P_c * Y_c. The second
// moment includes the exact pairwise Dirichlet covariance term; the third
// moment sums only the per-branch (diagonal) contribution — cross-branch
// third-order covariance terms are dropped as an approximation, since the
// fit's hard invariants bind mean, variance and CDF endpoints, and skew
// only steers the fit's asymmetry.
func GroupMoments(meanP, loP, upP []float64, branch []Triple) Triple {
	n := len(meanP)
	if n == 0 {
		return Triple{}
	}
	kappa := EstimateConcentration(meanP, loP, upP)
	pVar := make([]float64, n)
	pM3 := make([]float64, n)
	terms := make([]Triple, n)
	var total Triple
	for c := 0; c < n; c++ {
		pVar[c], pM3[c] = betaMoments(meanP[c], kappa)
		terms[c] = Product(meanP[c], pVar[c], pM3[c], branch[c].M1, branch[c].M2, branch[c].M3)
		total = total.Add(terms[c])
	}
	for c := 0; c < n; c++ {
		for d := c + 1; d < n; d++ {
			cov := -meanP[c] * meanP[d] / (kappa + 1)
			total.M2 += 2 * cov * branch[c].M1 * branch[d].M1
		}
	}
	return total
}
