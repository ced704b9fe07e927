// Copyright 2026 The UNEDA-sub000 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eval

import (
	"github.com/uneda-cda/UNEDA-sub000/base"
	"github.com/uneda-cda/UNEDA-sub000/tree"
)

// OmegaEngine combines per-criterion ψ expected values for one alternative,
// weighted by W-base midpoints through the weight tree. Omega and Omega1
// return only the weighted sum; the individual weighted per-criterion
// terms are not returned.
type OmegaEngine struct {
	WFrame *tree.Frame
	W      *base.Base
}

func NewOmegaEngine(wFrame *tree.Frame, w *base.Base) *OmegaEngine {
	return &OmegaEngine{WFrame: wFrame, W: w}
}

func wMidOf(w *base.Base, f int) float64 {
	lo, up, set := w.MidOf(f)
	if set {
		return (lo + up) / 2
	}
	lo2, up2 := w.HullOf(f)
	return (lo2 + up2) / 2
}

// Omega computes the full recursive W-weighted aggregate of per-criterion
// ψ values, descending the whole weight tree. values is indexed by the
// weight tree's flat real order (one entry per criterion leaf).
func (o *OmegaEngine) Omega(values []float64) float64 {
	root := o.WFrame.Siblings(0, -1)[0]
	return o.node(root, values)
}

func (o *OmegaEngine) node(t int, values []float64) float64 {
	if o.WFrame.Kind(0, t) == tree.Real {
		r := o.WFrame.RealFlatOfNode(0, t)
		return values[r]
	}
	children := o.WFrame.Siblings(0, t)
	sum := 0.0
	for _, c := range children {
		f := o.WFrame.FlatOfNode(0, c)
		sum += wMidOf(o.W, f) * o.node(c, values)
	}
	return sum
}

// Omega1 aggregates only up to the first weight-tree level: the root's
// immediate children are weighted and summed directly, without recursing
// further — branchValues supplies each first-level
// child's own already-combined value (a per-criterion ψ EV if that child is
// a leaf, or a caller-supplied sub-aggregate otherwise), in child order as
// returned by the root's sibling chain.
func (o *OmegaEngine) Omega1(branchValues []float64) float64 {
	root := o.WFrame.Siblings(0, -1)[0]
	children := o.WFrame.Siblings(0, root)
	sum := 0.0
	for i, c := range children {
		f := o.WFrame.FlatOfNode(0, c)
		sum += wMidOf(o.W, f) * branchValues[i]
	}
	return sum
}
