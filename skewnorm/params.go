// Copyright 2026 The UNEDA-sub000 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package skewnorm fits a skew-normal ("B-normal") distribution to a
// (mean, variance, third-central-moment) triple and answers CDF/inverse-CDF
// and truncated belief-mass queries against it.
package skewnorm

import "math"

// MaxAbsSkew is the hard clamp on the standardized skewness used for
// fitting: values beyond this are folded back down rather than rejected,
// since a moment triple arising from a valid hull can still carry more
// raw skew than a skew-normal can represent exactly.
const MaxAbsSkew = 0.955

// Params is a fitted skew-normal: CDF(x) = Φ((x-Location)/Scale) -
// 2*T((x-Location)/Scale, Alpha).
type Params struct {
	Location float64
	Scale    float64
	Alpha    float64
	M1, M2, M3 float64 // the moments this was fitted from, kept for the evaluation cache
}

// clampSkew folds |gamma| down to MaxAbsSkew via a two-piece map: identity
// below 0.9, a linear ramp on [0.9, 2] that is continuous at both ends
// ((17.1+x)/20 hits 0.9 at x=0.9 and 0.955 at x=2), flat at 0.955 above.
func clampSkew(gamma float64) float64 {
	sign := 1.0
	if gamma < 0 {
		sign = -1
	}
	x := math.Abs(gamma)
	switch {
	case x <= 0.9:
		return sign * x
	case x <= 2.0:
		return sign * (17.1 + x) / 20
	default:
		return sign * MaxAbsSkew
	}
}

// Fit derives skew-normal parameters from a moment triple.
// m2 must exceed a small epsilon; a near-zero variance is the caller's
// signal to treat the alternative as a Dirac rather than call Fit.
func Fit(m1, m2, m3 float64, eps float64) Params {
	if m2 < eps {
		m2 = eps
	}
	gamma := clampSkew(m3 / math.Pow(m2, 1.5))
	tau := math.Pow(math.Abs(gamma), 2.0/3.0)
	dpi := 2 * math.Pow((4-math.Pi)/2, 2.0/3.0)
	sign := 1.0
	if gamma < 0 {
		sign = -1
	}
	var delta float64
	if tau+dpi/2 != 0 {
		delta = sign * math.Sqrt(math.Pi*tau/(2*tau+dpi))
	}
	// delta must stay strictly inside (-1, 1) for alpha below to be finite.
	if delta >= 1 {
		delta = 1 - 1e-9
	} else if delta <= -1 {
		delta = -1 + 1e-9
	}
	alpha := delta / math.Sqrt(1-delta*delta)
	scale2 := m2 / (1 - 2*delta*delta/math.Pi)
	if scale2 < eps {
		scale2 = eps
	}
	scale := math.Sqrt(scale2)
	location := m1 - scale*delta*math.Sqrt(2/math.Pi)
	return Params{Location: location, Scale: scale, Alpha: alpha, M1: m1, M2: m2, M3: m3}
}

// IsDirac reports whether the fit is degenerate enough (near-zero scale)
// to treat as a point mass at Location rather than a continuous
// skew-normal: sub-EPS differences in hull endpoints degrade the full
// answer to a Dirac at the midpoint.
func (p Params) IsDirac(eps float64) bool {
	return p.Scale < eps
}
