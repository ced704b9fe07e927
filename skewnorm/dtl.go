// Copyright 2026 The UNEDA-sub000 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package skewnorm

import (
	"math"

	"github.com/uneda-cda/UNEDA-sub000/codes"
)

// WeakMassThreshold is the fraction of the untruncated skew-normal's mass
// that the hull must retain before a DTL query is considered trustworthy;
// below it a query is flagged weak-mass-distribution.
const WeakMassThreshold = 0.90

// DTLResult is a truncated, hull-renormalised belief-mass query result.
type DTLResult struct {
	Mass float64
	Info codes.Code // codes.OK or codes.InfoWeakMassDistribution
}

// DTLCdf returns the ABOVE-level mass at x, truncated to [lo, hi] and
// renormalised so the hull's own total mass is exactly 1. A hull narrower
// than eps collapses to a Dirac at its midpoint: the
// query then answers 1 at or below the midpoint and 0 above, with plain
// codes.OK as its Info; no separate Dirac code is reported.
func DTLCdf(p Params, lo, hi, x float64, eps float64) DTLResult {
	if hi-lo < eps {
		mid := (lo + hi) / 2
		mass := 1.0
		if x > mid {
			mass = 0
		}
		return DTLResult{Mass: mass, Info: codes.OK}
	}
	total := p.CDF(hi) - p.CDF(lo)
	info := codes.OK
	if total < WeakMassThreshold {
		info = codes.InfoWeakMassDistribution
	}
	if total <= eps {
		// Degenerate fit against this hull: fall back to a uniform mass
		// model over [lo, hi] rather than divide by ~0.
		if x <= lo {
			return DTLResult{Mass: 1, Info: info}
		}
		if x >= hi {
			return DTLResult{Mass: 0, Info: info}
		}
		return DTLResult{Mass: (hi - x) / (hi - lo), Info: info}
	}
	above := p.CDF(hi) - p.CDF(math.Max(x, lo))
	if x >= hi {
		above = 0
	}
	if x <= lo {
		above = total
	}
	return DTLResult{Mass: above / total, Info: info}
}

// MassAbove/MassBelow/MassRange are the convenience wrappers the evaluator
// calls directly; each goes through DTLCdf, so its answer is truncated to
// [lo, hi] and renormalised the same way.
func MassAbove(p Params, lo, hi, level float64, eps float64) DTLResult {
	return DTLCdf(p, lo, hi, level, eps)
}

func MassBelow(p Params, lo, hi, level float64, eps float64) DTLResult {
	r := DTLCdf(p, lo, hi, level, eps)
	r.Mass = 1 - r.Mass
	return r
}

func MassRange(p Params, lo, hi, a, b float64, eps float64) DTLResult {
	above := DTLCdf(p, lo, hi, a, eps)
	below := DTLCdf(p, lo, hi, b, eps)
	return DTLResult{Mass: above.Mass - below.Mass, Info: maxInfo(above.Info, below.Info)}
}

func maxInfo(a, b codes.Code) codes.Code {
	if a > b {
		return a
	}
	return b
}
