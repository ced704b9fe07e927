// Copyright 2026 The UNEDA-sub000 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package autoscale implements the per-criterion affine scale mapping
// between a user's own value range and the engine's normalised internal
// [0,1] V-base, including reverse scales, Dirac inflation, and weight
// renormalisation after a scale change.
package autoscale

import "math"

// DiracEps is the half-width a degenerate (single-point) input scale at
// zero is inflated to on each side; a nonzero single point is doubled
// instead (see inflateIfDirac).
const DiracEps = 1e-3

// Scale is one criterion's (av_min, av_max) endpoints plus the direction of
// preference: Rev true means a lower raw value is the more preferred one.
type Scale struct {
	Min, Max float64
	Rev      bool
}

// Span is the raw extreme-to-extreme distance Max - Min; it is
// non-negative whenever Min <= Max, as every scale SetBox builds is.
func (s Scale) Span() float64 { return s.Max - s.Min }

// Normalize maps a user-scale value x into the engine's [0,1] internal
// representation, where 1 always means "most preferred" regardless of Rev.
func (s Scale) Normalize(x float64) float64 {
	span := s.Span()
	if span == 0 {
		return 0.5
	}
	u := (x - s.Min) / span
	if s.Rev {
		return 1 - u
	}
	return u
}

// Denormalize is Normalize's inverse.
func (s Scale) Denormalize(u float64) float64 {
	if s.Rev {
		u = 1 - u
	}
	return s.Min + u*s.Span()
}

// inflateIfDirac widens a degenerate [v, v] extreme pair so Span() is never
// zero. A zero value inflates symmetrically to [-eps, eps]; a nonzero value
// doubles away from zero, preserving sign.
func inflateIfDirac(lo, up float64) (float64, float64) {
	if lo != up {
		return lo, up
	}
	if lo == 0 {
		return -DiracEps, DiracEps
	}
	if lo > 0 {
		return lo, 2 * lo
	}
	return 2 * lo, lo
}

// findExtremes returns the global min over lobox and max over upbox across
// every alternative/consequence entry.
func findExtremes(lobox, upbox []float64) (lo, up float64) {
	lo, up = math.Inf(1), math.Inf(-1)
	for _, v := range lobox {
		if v < lo {
			lo = v
		}
	}
	for _, v := range upbox {
		if v > up {
			up = v
		}
	}
	return lo, up
}
