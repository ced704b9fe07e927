// Copyright 2026 The UNEDA-sub000 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tree holds the decision-frame data model: flat and
// tree-structured alternatives built from real (leaf) and intermediate
// nodes, plus the index maps (total/real/intermediate/flat) that must stay
// consistent across attach/detach cycles. Node ids are 0-based per
// alternative with -1 as the "no link" sentinel, so node id 0 stays
// addressable like any other Go slice index.
package tree

import "fmt"

// NodeKind distinguishes the structural role of a node. Only intermediate
// nodes carry a Kind other than Real; Decision/Event/Frame are the
// tree-construction alphabet a node can take.
type NodeKind byte

const (
	Real       NodeKind = 'R'
	Decision   NodeKind = 'D'
	Event      NodeKind = 'E'
	FrameNode  NodeKind = 'F'
)

// FrameType distinguishes PS (single-criterion probability tree), PM
// (multi-criterion; criterion 0 holds the weight tree), DM
// (decision-matrix, value-only) and SM (single-criterion matrix) frames.
type FrameType byte

const (
	PS FrameType = iota
	PM
	DM
	SM
)

func (t FrameType) String() string {
	switch t {
	case PS:
		return "PS"
	case PM:
		return "PM"
	case DM:
		return "DM"
	case SM:
		return "SM"
	default:
		return "?"
	}
}

// Desc is one node of the recursive-descent description used to build a
// tree-topology alternative: Kind is 'R' for a leaf or one of 'D'/'E'/'F'
// for an intermediate; Children lists the node's down-chain in sibling
// order (empty for a leaf).
type Desc struct {
	Kind     NodeKind
	Children []Desc
}

// Leaf returns a real-node descriptor.
func Leaf() Desc { return Desc{Kind: Real} }

// Node returns an intermediate-node descriptor of the given kind with the
// given children, in sibling order.
func Node(kind NodeKind, children ...Desc) Desc {
	return Desc{Kind: kind, Children: children}
}

// alt is the per-alternative topology plus its derived index tables, all
// built once at Attach and read-only afterwards.
type alt struct {
	down []int
	next []int
	up   []int
	prev []int
	kind []NodeKind

	nTotal int
	nReal  int
	nInterm int

	t2r []int // local total ordinal -> local real ordinal, -1 if not real
	t2i []int // local total ordinal -> local intermediate ordinal, -1 if not intermediate
	r2t []int
	i2t []int
}

// Frame is a decision frame: one criterion's tree of alternatives (for a
// PS/DM/SM frame) or the weight tree (criterion 0 of a PM frame).
type Frame struct {
	Type FrameType
	Name string

	alts     []alt
	attached bool

	// global (flat) index maps, valid only while attached.
	altFlatBase []int // per-alt base offset into the flat total space
	altRealBase []int // per-alt base offset into the flat real space
	altIntBase  []int // per-alt base offset into the flat intermediate space

	nFlatTotal int
	nFlatReal  int
	nFlatInterm int

	f2r []int // global flat total -> global flat real, -1 if not real
	f2i []int // global flat total -> global flat intermediate, -1 if not intermediate
	r2f []int
	i2f []int
}

// NAlts returns the number of alternatives.
func (fr *Frame) NAlts() int { return len(fr.alts) }

// Attached reports whether index maps are currently built.
func (fr *Frame) Attached() bool { return fr.attached }

// NNodesReal returns the number of real (leaf) nodes of alternative a.
func (fr *Frame) NNodesReal(a int) int { return fr.alts[a].nReal }

// NNodesInterm returns the number of intermediate nodes of alternative a.
func (fr *Frame) NNodesInterm(a int) int { return fr.alts[a].nInterm }

// NNodesTotal returns the total node count (real + intermediate) of
// alternative a.
func (fr *Frame) NNodesTotal(a int) int { return fr.alts[a].nTotal }

// NFlatReal returns the total number of real nodes across all alternatives.
func (fr *Frame) NFlatReal() int { return fr.nFlatReal }

// NFlatInterm returns the total number of intermediate nodes across all
// alternatives.
func (fr *Frame) NFlatInterm() int { return fr.nFlatInterm }

// NFlatTotal returns the total node count across all alternatives.
func (fr *Frame) NFlatTotal() int { return fr.nFlatTotal }

func (fr *Frame) checkAlt(a int) error {
	if a < 0 || a >= len(fr.alts) {
		return fmt.Errorf("alt %d out of range [0,%d)", a, len(fr.alts))
	}
	return nil
}
