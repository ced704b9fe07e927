// Copyright 2026 The UNEDA-sub000 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package autoscale

import "github.com/uneda-cda/UNEDA-sub000/base"

// RenormalizeSiblings rescales one weight variable (flat index v, the
// criterion whose scale just changed) by ratio = newSpan/oldSpan, then
// renormalises every sibling in the same simplex group (siblingFlat,
// including v) so their hull-box bounds still sum to a feasible [0,1]
// simplex, clamping every rescaled bound to [0,1].
//
// This is set_AV_box's "renorm" step: a scale change shifts how much a
// unit of that criterion's weight "is worth" relative to its siblings, so
// only v's bounds are multiplied by ratio; every bound in the group
// (including v's) is then divided by the sum of the group's upper bounds,
// so the upper bounds sum back to 1 before clamping.
func RenormalizeSiblings(w *base.Base, v int, siblingFlat []int, ratio float64) error {
	if ratio == 1 || ratio <= 0 {
		return nil
	}
	lobo := make([]float64, len(siblingFlat))
	upbo := make([]float64, len(siblingFlat))
	sumLo, sumUp := 0.0, 0.0
	for i, f := range siblingFlat {
		lo, up := w.HullOf(f)
		if f == v {
			lo *= ratio
			up *= ratio
		}
		lobo[i], upbo[i] = clamp01(lo), clamp01(up)
		sumLo += lobo[i]
		sumUp += upbo[i]
	}
	if sumUp <= 0 {
		return nil
	}
	normLo := make([]float64, len(siblingFlat))
	normUp := make([]float64, len(siblingFlat))
	for i := range siblingFlat {
		normLo[i] = clamp01(lobo[i] / sumUp)
		normUp[i] = clamp01(upbo[i] / sumUp)
		if normLo[i] > normUp[i] {
			normLo[i] = normUp[i]
		}
	}
	for i, f := range siblingFlat {
		if err := w.SetBoxVar(f, normLo[i], normUp[i]); err != nil {
			return err
		}
	}
	return nil
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
