// Copyright 2026 The UNEDA-sub000 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package base

import (
	"github.com/uneda-cda/UNEDA-sub000/codes"
	"github.com/uneda-cda/UNEDA-sub000/hull"
)

// modalEps is the collapse/validity epsilon for modal<->mean conversion.
// The V-base layer uses hull.EPS throughout, so modal conversion does too,
// rather than carrying a second independent tolerance.
const modalEps = hull.EPS

// ModeToMean converts a triangular fit's mode m on hull [lo, up] to its
// mean: μ = (lo + m + up) / 3.
func ModeToMean(lo, m, up float64) float64 {
	return (lo + m + up) / 3
}

// MeanToMode is the inverse: m = 3μ - lo - up. The caller must check the
// result lies within [lo-modalEps, up+modalEps] via IsValidMode before
// trusting it as a real mode.
func MeanToMode(lo, mean, up float64) float64 {
	return 3*mean - lo - up
}

// IsValidMode reports whether m lies in [lo, up] within modalEps.
func IsValidMode(lo, m, up float64) bool {
	return m >= lo-modalEps && m <= up+modalEps
}

// modalHull returns the [lo, up] the modal conversion works on: variable
// v's hull solved without v's own midpoint, since the solver narrows a
// variable to its midpoint range once one is set.
func (b *Base) modalHull(v int) (lo, up float64) {
	q := b.poly.Clone()
	q.MboxLo[v], q.MboxUp[v] = hull.EmptyMidpoint, hull.EmptyMidpoint
	res, err := hull.Solve(q)
	if err != nil {
		return b.HullOf(v)
	}
	return res.Lo[v], res.Up[v]
}

// SetModal sets variable v's midpoint (mean) from a modal value, valid
// only for the V-base. The conversion uses the variable's current hull,
// solved without its own midpoint, as [lo, up].
func (b *Base) SetModal(v int, mode float64) error {
	if b.kind != KindV {
		return codes.New(codes.ErrWrongFrameType, "set_modal is only defined for the V-base")
	}
	if v < 0 || v >= b.poly.NVars {
		return codes.New(codes.ErrBadMode, "variable %d out of range", v)
	}
	lo, up := b.modalHull(v)
	if !IsValidMode(lo, mode, up) {
		return codes.New(codes.ErrBoundsCross, "mode %g outside hull [%g,%g]", mode, lo, up)
	}
	mean := ModeToMean(lo, mode, up)
	return b.AddMidStmt(v, mean, mean)
}

// GetModal returns the modal value implied by variable v's current
// midpoint and its hull without that midpoint, and whether a midpoint is
// set at all.
func (b *Base) GetModal(v int) (mode float64, ok bool) {
	loMid, upMid, set := b.MidOf(v)
	if !set {
		return 0, false
	}
	mean := (loMid + upMid) / 2
	lo, up := b.modalHull(v)
	return MeanToMode(lo, mean, up), true
}

// CheckModality reports whether variable v's current midpoint, if any,
// converts to a valid (in-hull) mode.
func (b *Base) CheckModality(v int) bool {
	mode, ok := b.GetModal(v)
	if !ok {
		return true // no midpoint recorded: vacuously "modal-consistent"
	}
	lo, up := b.modalHull(v)
	return IsValidMode(lo, mode, up)
}

// ModalityMatrix reports CheckModality for every variable.
func (b *Base) ModalityMatrix() []bool {
	out := make([]bool, b.poly.NVars)
	for v := range out {
		out[v] = b.CheckModality(v)
	}
	return out
}
