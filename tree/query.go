// Copyright 2026 The UNEDA-sub000 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

// Kind returns the node kind of local node (alt, t).
func (fr *Frame) Kind(a, t int) NodeKind { return fr.alts[a].kind[t] }

// Down returns the first child of local node (alt, t), or -1 if t is real.
func (fr *Frame) Down(a, t int) int { return fr.alts[a].down[t] }

// Next returns the next sibling of local node (alt, t), or -1 if t is the
// last of its sibling chain.
func (fr *Frame) Next(a, t int) int { return fr.alts[a].next[t] }

// Up returns the parent of local node (alt, t), or -1 for the root.
func (fr *Frame) Up(a, t int) int { return fr.alts[a].up[t] }

// Prev returns the previous sibling of local node (alt, t), or -1 if t is
// the first of its sibling chain.
func (fr *Frame) Prev(a, t int) int { return fr.alts[a].prev[t] }

// Siblings returns the full sibling chain starting at the first child of
// parent (local node (alt, parent)), in order. parent == -1 means "the
// alternative's root", i.e. the chain containing t=0.
func (fr *Frame) Siblings(a, parent int) []int {
	al := &fr.alts[a]
	var first int
	if parent < 0 {
		first = 0
	} else {
		first = al.down[parent]
	}
	var out []int
	for n := first; n >= 0; n = al.next[n] {
		out = append(out, n)
	}
	return out
}

// NbrOfSiblings returns the number of nodes in node's sibling chain
// (including node itself).
func (fr *Frame) NbrOfSiblings(a, node int) int {
	return len(fr.Siblings(a, fr.alts[a].up[node]))
}

// DifferentParents reports whether n1 and n2 have different parents; used
// by the tornado and autoscale-renormalisation logic to tell whether two
// variables compete in the same simplex.
func (fr *Frame) DifferentParents(a, n1, n2 int) bool {
	al := &fr.alts[a]
	return al.up[n1] != al.up[n2]
}

// PureTree reports whether every sibling group of alternative a is either
// all-real or all-intermediate. A mixed sibling group — some
// real, some intermediate children under the same parent — is legal in
// general but disqualifies the alternative from the simplified tornado and
// autoscale paths that assume purity.
func (fr *Frame) PureTree(a int) bool {
	al := &fr.alts[a]
	seen := make(map[int]bool)
	for t := range al.kind {
		p := al.up[t]
		if seen[p] {
			continue
		}
		seen[p] = true
		chain := fr.Siblings(a, p)
		if len(chain) == 0 {
			continue
		}
		allReal := al.kind[chain[0]] == Real
		for _, c := range chain[1:] {
			if (al.kind[c] == Real) != allReal {
				return false
			}
		}
	}
	return true
}

// EventGroup is one event node's sibling chain of children, in order —
// the unit over which a P/W-base simplex constraint (Σ siblings = 1)
// applies.
type EventGroup struct {
	Alt      int
	Parent   int // -1 if the group is the alternative's own root chain
	Children []int
}

// EventGroups returns every sibling group of alternative a whose parent is
// an event node (or whose parent is -1, i.e. the alternative root, which
// behaves as an implicit event for P/W-base purposes). Used by the hull
// solver to build the per-alternative simplex rows and by the moment
// engine to find Dirichlet covariance groups.
func (fr *Frame) EventGroups(a int) []EventGroup {
	al := &fr.alts[a]
	var groups []EventGroup
	seen := make(map[int]bool)
	root := fr.Siblings(a, -1)
	groups = append(groups, EventGroup{Alt: a, Parent: -1, Children: root})
	for t, k := range al.kind {
		if k != Event {
			continue
		}
		if seen[t] {
			continue
		}
		seen[t] = true
		children := fr.Siblings(a, t)
		if len(children) > 0 {
			groups = append(groups, EventGroup{Alt: a, Parent: t, Children: children})
		}
	}
	return groups
}

// RealNodes returns the local total ids of every real (leaf) node of
// alternative a, in node order.
func (fr *Frame) RealNodes(a int) []int {
	al := &fr.alts[a]
	out := make([]int, 0, al.nReal)
	for t, k := range al.kind {
		if k == Real {
			out = append(out, t)
		}
	}
	return out
}
