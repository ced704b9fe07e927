// Copyright 2026 The UNEDA-sub000 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package autoscale

import (
	"github.com/uneda-cda/UNEDA-sub000/base"
	"github.com/uneda-cda/UNEDA-sub000/codes"
)

// Result carries the outcome of a box/modal load: the resolved scale and
// whether it differs from the one passed in as "current".
type Result struct {
	Scale   Scale
	Changed bool
}

// SetBox loads a criterion's V-base from raw per-real-leaf box bounds
// (lobox/upbox, each length fr.NFlatReal()), inflating a degenerate input
// range and normalising into v's internal [0,1] representation. cur is the
// criterion's scale before this call; the returned Result reports the new
// scale and whether it moved. rev selects a "lower raw value is preferred"
// scale.
func SetBox(v *base.Base, cur Scale, rev bool, lobox, upbox []float64) (Result, error) {
	if len(lobox) != v.NVars() || len(upbox) != v.NVars() {
		return Result{}, codes.New(codes.ErrBadMode, "box length mismatch: got %d/%d, want %d", len(lobox), len(upbox), v.NVars())
	}
	rawLo, rawUp := findExtremes(lobox, upbox)
	rawLo, rawUp = inflateIfDirac(rawLo, rawUp)

	next := Scale{Min: rawLo, Max: rawUp, Rev: rev}
	normLo := make([]float64, len(lobox))
	normUp := make([]float64, len(upbox))
	for i := range lobox {
		a, b := next.Normalize(lobox[i]), next.Normalize(upbox[i])
		if rev {
			a, b = b, a // reversal flips which raw endpoint is the normalized lower bound
		}
		normLo[i], normUp[i] = a, b
	}
	if err := v.SetBox(normLo, normUp); err != nil {
		return Result{}, err
	}

	changed := next.Min != cur.Min || next.Max != cur.Max || next.Rev != cur.Rev
	return Result{Scale: next, Changed: changed}, nil
}

// SetModal is SetBox plus a modal (most-likely) point per leaf, converted
// to a mean via mu = (lo + m + up) / 3 (the mean of a symmetric triangular
// distribution implied by a box and its mode) before being loaded as the
// V-base's midpoint.
func SetModal(v *base.Base, cur Scale, rev bool, lobox, upbox, modal []float64) (Result, error) {
	if len(modal) != v.NVars() {
		return Result{}, codes.New(codes.ErrBadMode, "modal length mismatch: got %d, want %d", len(modal), v.NVars())
	}
	res, err := SetBox(v, cur, rev, lobox, upbox)
	if err != nil {
		return Result{}, err
	}
	mids := make([]float64, len(modal))
	for i := range modal {
		mu := (lobox[i] + modal[i] + upbox[i]) / 3
		mids[i] = res.Scale.Normalize(mu)
	}
	if err := v.SetMbox1(mids); err != nil {
		return Result{}, err
	}
	return res, nil
}

// ResultCode turns a Result into the informational code callers switch on:
// InfoScaleChange if the endpoints moved, OK otherwise.
func (r Result) ResultCode() codes.Code {
	if r.Changed {
		return codes.InfoScaleChange
	}
	return codes.OK
}
