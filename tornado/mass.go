// Copyright 2026 The UNEDA-sub000 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tornado

import "github.com/uneda-cda/UNEDA-sub000/skewnorm"

// BeliefBracket is a Bracket translated into belief-mass space.
type BeliefBracket struct {
	Lo, Up float64
}

// ToBeliefMass converts an EV-shift Bracket into belief mass by evaluating
// cdf(baseline+delta) - cdf(baseline) at each end. When symmetric is true
// and the original EV bracket is itself roughly symmetric around baseline,
// the two belief shifts are averaged in magnitude and re-signed — an
// optional rebalancing applied only when the original bounds were
// symmetric.
func ToBeliefMass(fit skewnorm.Params, baseline float64, br Bracket, symmetric bool) BeliefBracket {
	base := fit.CDF(baseline)
	lo := fit.CDF(baseline+br.Lo) - base
	up := fit.CDF(baseline+br.Up) - base
	if symmetric && isSymmetric(br) {
		mag := (absf(lo) + absf(up)) / 2
		lo, up = -mag, mag
	}
	return BeliefBracket{Lo: lo, Up: up}
}

func isSymmetric(br Bracket) bool {
	const tol = 1e-2
	return absf(absf(br.Lo)-absf(br.Up)) < tol*(absf(br.Lo)+absf(br.Up)+1e-12)
}

func absf(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

// The W-tornado needs no dedicated function: Variable already operates on
// any *base.Base, so calling Variable(wBase, v, mode, evalFn) with wBase
// the weight Base and evalFn recomputing an eval.OmegaEngine.Omega
// aggregate of the per-criterion psi EVs *is* the W-tornado: the ordinary
// tornado algorithm run on the weight simplex (engine.Manager.WTornado
// does exactly this).
