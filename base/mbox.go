// Copyright 2026 The UNEDA-sub000 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package base

import (
	"github.com/uneda-cda/UNEDA-sub000/codes"
	"github.com/uneda-cda/UNEDA-sub000/hull"
)

// skipMbox is the bulk-set-only sentinel meaning "leave this slot
// unchanged". It is never accepted by AddMidStmt/DeleteMidStmt, only by
// SetMbox: the sentinel never crosses into the single-slot statement API.
const skipMbox = -2.0

// AddMidStmt records a midpoint (mean) bound [lobo, upbo] for variable v.
// A midpoint is a mean, never a mode.
func (b *Base) AddMidStmt(v int, lobo, upbo float64) error {
	if v < 0 || v >= b.poly.NVars {
		return codes.New(codes.ErrBadMode, "variable %d out of range", v)
	}
	if lobo > upbo+hull.EPS {
		return codes.New(codes.ErrTooNarrowStatement, "midpoint lobo %g > upbo %g", lobo, upbo)
	}
	return b.mutate(func(p *hull.Polytope) {
		p.MboxLo[v], p.MboxUp[v] = lobo, upbo
	})
}

// DeleteMidStmt clears the midpoint of variable v back to "empty".
func (b *Base) DeleteMidStmt(v int) error {
	if v < 0 || v >= b.poly.NVars {
		return codes.New(codes.ErrBadMode, "variable %d out of range", v)
	}
	return b.mutate(func(p *hull.Polytope) {
		p.MboxLo[v], p.MboxUp[v] = hull.EmptyMidpoint, hull.EmptyMidpoint
	})
}

// RemoveMbox clears every variable's midpoint at once.
func (b *Base) RemoveMbox() error {
	return b.mutate(func(p *hull.Polytope) {
		for v := 0; v < p.NVars; v++ {
			p.MboxLo[v], p.MboxUp[v] = hull.EmptyMidpoint, hull.EmptyMidpoint
		}
	})
}

// SetMbox is the bulk variant of AddMidStmt: skipMbox (-2) in lobo[v] or
// upbo[v] leaves that variable's current midpoint untouched when setting in
// bulk.
func (b *Base) SetMbox(lobo, upbo []float64) error {
	if len(lobo) != b.poly.NVars || len(upbo) != b.poly.NVars {
		return codes.New(codes.ErrBadMode, "mbox length mismatch: got %d/%d, want %d", len(lobo), len(upbo), b.poly.NVars)
	}
	return b.mutate(func(p *hull.Polytope) {
		for v := 0; v < p.NVars; v++ {
			if lobo[v] == skipMbox || upbo[v] == skipMbox {
				continue
			}
			p.MboxLo[v], p.MboxUp[v] = lobo[v], upbo[v]
		}
	})
}

// SetMbox1 is SetMbox with lobo aliased to upbo (a single midpoint value
// per variable rather than a range).
func (b *Base) SetMbox1(mid []float64) error {
	return b.SetMbox(mid, mid)
}

// SetBox sets the per-variable interval box in bulk.
func (b *Base) SetBox(lobo, upbo []float64) error {
	if len(lobo) != b.poly.NVars || len(upbo) != b.poly.NVars {
		return codes.New(codes.ErrBadMode, "box length mismatch: got %d/%d, want %d", len(lobo), len(upbo), b.poly.NVars)
	}
	for v := range lobo {
		if lobo[v] > upbo[v]+hull.EPS {
			return codes.New(codes.ErrTooNarrowStatement, "box[%d] lobo %g > upbo %g", v, lobo[v], upbo[v])
		}
	}
	return b.mutate(func(p *hull.Polytope) {
		copy(p.BoxLo, lobo)
		copy(p.BoxUp, upbo)
	})
}

// SetBoxVar narrows the box of a single variable.
func (b *Base) SetBoxVar(v int, lobo, upbo float64) error {
	if v < 0 || v >= b.poly.NVars {
		return codes.New(codes.ErrBadMode, "variable %d out of range", v)
	}
	if lobo > upbo+hull.EPS {
		return codes.New(codes.ErrTooNarrowStatement, "box lobo %g > upbo %g", lobo, upbo)
	}
	return b.mutate(func(p *hull.Polytope) {
		p.BoxLo[v], p.BoxUp[v] = lobo, upbo
	})
}

// MidOf returns the current midpoint bound of variable v, and whether it
// is set at all (false means "empty").
func (b *Base) MidOf(v int) (lobo, upbo float64, set bool) {
	lobo, upbo = b.poly.MboxLo[v], b.poly.MboxUp[v]
	if lobo == hull.EmptyMidpoint && upbo == hull.EmptyMidpoint {
		return 0, 0, false
	}
	return lobo, upbo, true
}
