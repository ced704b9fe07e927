// Copyright 2026 The UNEDA-sub000 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eval

import "math"

// AversionValue implements the risk-attitude-adjusted EV query for
// r in [-10, 10]. A naive cdf formula of 1 - 2^(-|r|) does not itself pass
// through 0.5 at r=0 (it is 0 there), but the result still needs to
// interpolate toward the 50% cdf near r=0; this is resolved by using the
// symmetric half-distance form cdf = 0.5 + sign(r)*0.5*(1-2^-|r|), which is
// continuous, equals exactly 0.5 at r=0, and asymptotes to 0/1 as r
// reaches +/-10.
func (e *Evaluator) AversionValue(rule Rule, i, j int, subset []int, r float64) float64 {
	if r > 10 {
		r = 10
	} else if r < -10 {
		r = -10
	}
	sign := 1.0
	if r < 0 {
		sign = -1
	}
	belief := 0.5 + sign*0.5*(1-math.Pow(2, -math.Abs(r)))
	fit := e.RuleFit(rule, i, j, subset)
	return supportAt(fit, belief)
}
