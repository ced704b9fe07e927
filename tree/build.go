// Copyright 2026 The UNEDA-sub000 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import "fmt"

// NewFlat builds a frame whose nAlts alternatives are each a single event
// node ('E') with nCons[a] direct real children — the "flat" topology used
// by the new_*_flat entry points. A flat alternative still carries one
// intermediate (the implicit event root), so its siblings-sum-to-one
// simplex constraint applies to the P/W base exactly as a tree frame's
// would.
func NewFlat(typ FrameType, name string, nCons []int) (*Frame, error) {
	if len(nCons) == 0 {
		return nil, fmt.Errorf("tree: NewFlat requires at least one alternative")
	}
	if len(nCons) > MaxAlternatives {
		return nil, fmt.Errorf("tree: %d alternatives exceeds MaxAlternatives %d", len(nCons), MaxAlternatives)
	}
	descs := make([]Desc, len(nCons))
	for a, n := range nCons {
		if n < 1 {
			return nil, fmt.Errorf("tree: alt %d has %d consequences, need >=1", a, n)
		}
		leaves := make([]Desc, n)
		for i := range leaves {
			leaves[i] = Leaf()
		}
		descs[a] = Node(Event, leaves...)
	}
	return NewTree(typ, name, descs)
}

// NewTree builds a frame from a per-alternative recursive-descent
// description — a Desc tree in place of the parallel (type, next, down)
// integer arrays a C implementation would use.
func NewTree(typ FrameType, name string, descs []Desc) (*Frame, error) {
	if len(descs) == 0 {
		return nil, fmt.Errorf("tree: NewTree requires at least one alternative")
	}
	if len(descs) > MaxAlternatives {
		return nil, fmt.Errorf("tree: %d alternatives exceeds MaxAlternatives %d", len(descs), MaxAlternatives)
	}
	fr := &Frame{Type: typ, Name: name, alts: make([]alt, len(descs))}
	for a, d := range descs {
		if d.Kind == Real {
			return nil, fmt.Errorf("tree: alt %d root cannot be a real leaf", a)
		}
		built, err := buildAlt(d)
		if err != nil {
			return nil, fmt.Errorf("tree: alt %d: %w", a, err)
		}
		if built.nTotal > MaxNodesPerAlt {
			return nil, fmt.Errorf("tree: alt %d has %d nodes, exceeds MaxNodesPerAlt %d", a, built.nTotal, MaxNodesPerAlt)
		}
		if built.nReal > MaxConsPerAlt {
			return nil, fmt.Errorf("tree: alt %d has %d real nodes, exceeds MaxConsPerAlt %d", a, built.nReal, MaxConsPerAlt)
		}
		fr.alts[a] = *built
	}
	return fr, nil
}

// buildAlt flattens one alternative's recursive Desc into parallel
// down/next/up/prev/kind arrays in node-creation (pre-)order, which is also
// the total ordinal t used throughout this package.
func buildAlt(root Desc) (*alt, error) {
	a := &alt{}
	// push allocates the next node id and returns it.
	push := func(kind NodeKind) int {
		id := len(a.kind)
		a.kind = append(a.kind, kind)
		a.down = append(a.down, -1)
		a.next = append(a.next, -1)
		a.up = append(a.up, -1)
		a.prev = append(a.prev, -1)
		return id
	}
	var walk func(d Desc, parent int) (int, error)
	walk = func(d Desc, parent int) (int, error) {
		id := push(d.Kind)
		a.up[id] = parent
		if d.Kind == Real {
			if len(d.Children) != 0 {
				return -1, fmt.Errorf("real node has children")
			}
			return id, nil
		}
		if len(d.Children) == 0 {
			return -1, fmt.Errorf("intermediate node %q has no children", string(d.Kind))
		}
		prev := -1
		for i, c := range d.Children {
			if d.Kind != Event && (c.Kind == Decision || c.Kind == FrameNode) {
				return -1, fmt.Errorf("decision node may only appear immediately below an event node")
			}
			cid, err := walk(c, id)
			if err != nil {
				return -1, err
			}
			if i == 0 {
				a.down[id] = cid
			} else {
				a.next[prev] = cid
			}
			a.prev[cid] = prev
			prev = cid
		}
		return id, nil
	}
	if _, err := walk(root, -1); err != nil {
		return nil, err
	}
	for _, k := range a.kind {
		if k == Real {
			a.nReal++
		} else {
			a.nInterm++
		}
	}
	a.nTotal = len(a.kind)
	if a.nReal == 0 {
		return nil, fmt.Errorf("alternative has no real (leaf) consequences")
	}
	return a, nil
}
