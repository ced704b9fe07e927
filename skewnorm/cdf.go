// Copyright 2026 The UNEDA-sub000 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package skewnorm

import "math"

// stdNormalCDF is Φ, the standard normal CDF, via math.Erf — exact in
// double precision; Go's math.Erf is itself a minimax rational
// approximation in the Abramowitz-Stegun family.
func stdNormalCDF(x float64) float64 {
	return 0.5 * (1 + math.Erf(x/math.Sqrt2))
}

func stdNormalPDF(x float64) float64 {
	return math.Exp(-x*x/2) / math.Sqrt(2*math.Pi)
}

// CDF evaluates the fitted skew-normal's CDF at x.
func (p Params) CDF(x float64) float64 {
	if p.Scale <= 0 {
		if x >= p.Location {
			return 1
		}
		return 0
	}
	z := (x - p.Location) / p.Scale
	return stdNormalCDF(z) - 2*OwenT(z, p.Alpha)
}

// PDF evaluates the fitted skew-normal's density at x: 2*φ(z)*Φ(αz)/scale,
// the standard skew-normal density (the derivative of CDF's Φ−2T form).
func (p Params) PDF(x float64) float64 {
	if p.Scale <= 0 {
		return 0
	}
	z := (x - p.Location) / p.Scale
	return 2 / p.Scale * stdNormalPDF(z) * stdNormalCDF(p.Alpha*z)
}

// InvCDF inverts CDF at belief level, by bisection bracketed on
// [location - 40*scale, location + 40*scale] (ample for any of the clamped
// skews this package ever fits) followed by a few Newton refinements guarded
// against a zero-density step.
func (p Params) InvCDF(belief float64) float64 {
	if p.Scale <= 0 {
		return p.Location
	}
	if belief <= 0 {
		return math.Inf(-1)
	}
	if belief >= 1 {
		return math.Inf(1)
	}
	lo := p.Location - 40*p.Scale
	hi := p.Location + 40*p.Scale
	for i := 0; i < 100; i++ {
		mid := (lo + hi) / 2
		if p.CDF(mid) < belief {
			lo = mid
		} else {
			hi = mid
		}
	}
	x := (lo + hi) / 2
	for i := 0; i < 4; i++ {
		d := p.PDF(x)
		if d < 1e-12 {
			break
		}
		x -= (p.CDF(x) - belief) / d
	}
	return x
}
