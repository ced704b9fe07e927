// Copyright 2026 The UNEDA-sub000 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tornado implements sensitivity tornados: for a single P/V/W
// variable, bracket how far its feasible movement shifts an alternative's
// ψ expected value, by temporarily pinning the variable near its feasible
// minimum, then its feasible maximum, and measuring the shift against a
// baseline.
package tornado

import (
	"github.com/uneda-cda/UNEDA-sub000/base"
	"github.com/uneda-cda/UNEDA-sub000/codes"
)

// TEps is the pin width used when a variable is temporarily forced to its
// movability limit: comfortably above hull.EPS = 1e-6, and larger than
// twice any add-on package's own epsilon.
const TEps = 4e-6

// Mode selects whether other variables' midpoints stay in force while one
// variable is swept, or are floated (cleared) for the duration.
type Mode int

const (
	MidpointKept Mode = iota
	FloatingMidpoint
)

// Bracket is one variable's tornado result: the EV shift from baseline when
// pushed to its feasible minimum (Lo) and maximum (Up).
type Bracket struct {
	Lo, Up float64
}

// Variable runs the tornado algorithm for a single variable of b, using
// evalFn to measure whatever scalar (typically an alternative's ψ EV mean)
// the caller cares about. evalFn is called with b already re-solved for
// each of the three states (baseline, pinned-low, pinned-high); the
// temporary statement is always removed and, for FloatingMidpoint, every
// midpoint is restored before Variable returns, whatever its outcome.
func Variable(b *base.Base, v int, mode Mode, evalFn func() float64) (Bracket, error) {
	var saved map[int][2]float64
	if mode == FloatingMidpoint {
		saved = snapshotMidpoints(b)
		for mv := range saved {
			if err := b.DeleteMidStmt(mv); err != nil {
				return Bracket{}, translate(err)
			}
		}
		defer restoreMidpoints(b, saved)
	}

	baseline := evalFn()

	lo, up := b.HullOf(v)
	idx, err := b.AddStmt([]base.Term{{Var: v, Sign: 1}}, lo, lo+TEps)
	if err != nil {
		return Bracket{}, translate(err)
	}
	defer b.DeleteStmt(idx)

	valLo := evalFn()

	if err := b.ChangeStmt(idx, up-TEps, up); err != nil {
		return Bracket{}, translate(err)
	}
	valUp := evalFn()

	return Bracket{Lo: valLo - baseline, Up: valUp - baseline}, nil
}

func snapshotMidpoints(b *base.Base) map[int][2]float64 {
	saved := make(map[int][2]float64)
	for v := 0; v < b.NVars(); v++ {
		if lo, up, set := b.MidOf(v); set {
			saved[v] = [2]float64{lo, up}
		}
	}
	return saved
}

func restoreMidpoints(b *base.Base, saved map[int][2]float64) {
	for v, lu := range saved {
		_ = b.AddMidStmt(v, lu[0], lu[1])
	}
}

func translate(err error) error {
	if codes.IsError(codes.Decode(err)) {
		return err
	}
	return codes.New(codes.ErrAssertFailed, "%s", err)
}

// MCScale multiplies a Bracket by a criterion's current weight midpoint:
// MC variants scale each variable's tornado range by the current midpoint
// of the criterion's global weight.
func (br Bracket) MCScale(weightMid float64) Bracket {
	return Bracket{Lo: br.Lo * weightMid, Up: br.Up * weightMid}
}
