// Copyright 2026 The UNEDA-sub000 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package moment

import (
	"fmt"

	"github.com/uneda-cda/UNEDA-sub000/base"
	"github.com/uneda-cda/UNEDA-sub000/tree"
)

// Engine recursively combines a frame's P-base (probabilities, indexed by
// global flat TOTAL index — a probability variable exists for every node
// reached by a branch, real or intermediate) and V-base (values, indexed
// by global flat REAL index — only leaves carry a value) into the first
// three moments of each alternative's expected value.
//
// Decision nodes are combined exactly like Event nodes: there is no
// distinction between "choose the best branch" optimal-policy semantics
// and "average over branches" chance semantics at the moment-engine
// level, which keeps the recursion uniform across node kinds.
type Engine struct {
	Frame *tree.Frame
	P     *base.Base
	V     *base.Base
}

// New builds a moment Engine over an attached frame and its P/V bases.
func New(fr *tree.Frame, p, v *base.Base) (*Engine, error) {
	if !fr.Attached() {
		return nil, fmt.Errorf("moment: frame %q is not attached", fr.Name)
	}
	if p.Kind() != base.KindP {
		return nil, fmt.Errorf("moment: P base has kind %s", p.Kind())
	}
	if v.Kind() != base.KindV {
		return nil, fmt.Errorf("moment: V base has kind %s", v.Kind())
	}
	return &Engine{Frame: fr, P: p, V: v}, nil
}

// Alternative returns the (mean, variance, third-central-moment) of
// alternative a's expected value, combining its tree bottom-up. Every
// alternative has exactly one root node, so there is no probability
// attached to "choosing" it — Alternative recurses straight into the root
// rather than folding it through combineGroup, which would otherwise
// double-count the root's own P-base variable as if it were one outcome
// among siblings.
func (e *Engine) Alternative(a int) Triple {
	root := e.Frame.Siblings(a, -1)[0]
	return e.nodeTriple(a, root)
}

// All returns Alternative for every alternative of the frame, in order.
func (e *Engine) All() []Triple {
	out := make([]Triple, e.Frame.NAlts())
	for a := range out {
		out[a] = e.Alternative(a)
	}
	return out
}

// nodeTriple returns the moments contributed by local node (a, t): the
// leaf's own triangular-leaf moments if t is real, otherwise the combined
// moments of its children's group.
func (e *Engine) nodeTriple(a, t int) Triple {
	if e.Frame.Kind(a, t) == tree.Real {
		r := e.Frame.RealFlatOfNode(a, t)
		lo, up := e.V.HullOf(r)
		midLo, midUp, set := e.V.MidOf(r)
		var mid float64
		if set {
			mid = (midLo + midUp) / 2
		}
		return TriangularLeaf(lo, up, mid, set)
	}
	return e.combineGroup(a, e.Frame.Siblings(a, t))
}

// combineGroup combines one sibling chain — a simplex group in the P-base
// — into the moments of Σ_c P_c * Y_c, where Y_c is child c's own (already
// recursively combined) value moments.
func (e *Engine) combineGroup(a int, children []int) Triple {
	n := len(children)
	if n == 0 {
		return Triple{}
	}
	meanP := make([]float64, n)
	loP := make([]float64, n)
	upP := make([]float64, n)
	branch := make([]Triple, n)
	for i, c := range children {
		f := e.Frame.FlatOfNode(a, c)
		lo, up := e.P.HullOf(f)
		loP[i], upP[i] = lo, up
		if midLo, midUp, set := e.P.MidOf(f); set {
			meanP[i] = (midLo + midUp) / 2
		} else {
			meanP[i] = (lo + up) / 2
		}
		branch[i] = e.nodeTriple(a, c)
	}
	return GroupMoments(meanP, loP, upP, branch)
}
