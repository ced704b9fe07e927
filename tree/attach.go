// Copyright 2026 The UNEDA-sub000 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import "fmt"

// Attach validates the topology (decision-below-event placement is already
// enforced at build time; here the remaining attach-time checks from spec
// §4.1 run: per-alt node/consequence ceilings, and that every intermediate
// has at least one descendant) and builds the read-only index maps
// (t2r/t2i/r2t/i2t per alternative, f2r/f2i/r2f/i2f across the whole
// frame). At most one frame may be attached at a time is a process-wide
// invariant enforced by the frame manager (package engine), not here — a
// Frame on its own has no notion of "the" attached frame.
func (fr *Frame) Attach() error {
	if fr.attached {
		return fmt.Errorf("tree: frame %q already attached", fr.Name)
	}
	for a := range fr.alts {
		if err := validateAlt(&fr.alts[a]); err != nil {
			return fmt.Errorf("tree: alt %d: %w", a, err)
		}
		buildLocalIndex(&fr.alts[a])
	}
	fr.buildFlatIndex()
	fr.attached = true
	return nil
}

// Detach releases the index maps. The topology itself is untouched so the
// frame can be re-attached later (e.g. the frame manager cycling through
// MC criteria one at a time).
func (fr *Frame) Detach() {
	fr.attached = false
	fr.altFlatBase = nil
	fr.altRealBase = nil
	fr.altIntBase = nil
	fr.f2r = nil
	fr.f2i = nil
	fr.r2f = nil
	fr.i2f = nil
	fr.nFlatTotal, fr.nFlatReal, fr.nFlatInterm = 0, 0, 0
}

func validateAlt(a *alt) error {
	if a.nTotal > MaxNodesPerAlt {
		return fmt.Errorf("%d total nodes exceeds MaxNodesPerAlt %d", a.nTotal, MaxNodesPerAlt)
	}
	if a.nReal > MaxConsPerAlt {
		return fmt.Errorf("%d real nodes exceeds MaxConsPerAlt %d", a.nReal, MaxConsPerAlt)
	}
	for t, k := range a.kind {
		if k != Real && a.down[t] < 0 {
			return fmt.Errorf("intermediate node %d has no descendant", t)
		}
	}
	return nil
}

func buildLocalIndex(a *alt) {
	a.t2r = make([]int, a.nTotal)
	a.t2i = make([]int, a.nTotal)
	a.r2t = make([]int, 0, a.nReal)
	a.i2t = make([]int, 0, a.nInterm)
	for t, k := range a.kind {
		if k == Real {
			a.t2r[t] = len(a.r2t)
			a.t2i[t] = -1
			a.r2t = append(a.r2t, t)
		} else {
			a.t2i[t] = len(a.i2t)
			a.t2r[t] = -1
			a.i2t = append(a.i2t, t)
		}
	}
}

func (fr *Frame) buildFlatIndex() {
	n := len(fr.alts)
	fr.altFlatBase = make([]int, n)
	fr.altRealBase = make([]int, n)
	fr.altIntBase = make([]int, n)
	totalBase, realBase, intBase := 0, 0, 0
	for a := range fr.alts {
		fr.altFlatBase[a] = totalBase
		fr.altRealBase[a] = realBase
		fr.altIntBase[a] = intBase
		totalBase += fr.alts[a].nTotal
		realBase += fr.alts[a].nReal
		intBase += fr.alts[a].nInterm
	}
	fr.nFlatTotal, fr.nFlatReal, fr.nFlatInterm = totalBase, realBase, intBase

	fr.f2r = make([]int, fr.nFlatTotal)
	fr.f2i = make([]int, fr.nFlatTotal)
	fr.r2f = make([]int, fr.nFlatReal)
	fr.i2f = make([]int, fr.nFlatInterm)
	for a := range fr.alts {
		al := &fr.alts[a]
		for t := 0; t < al.nTotal; t++ {
			f := fr.altFlatBase[a] + t
			if al.kind[t] == Real {
				r := fr.altRealBase[a] + al.t2r[t]
				fr.f2r[f] = r
				fr.f2i[f] = -1
				fr.r2f[r] = f
			} else {
				i := fr.altIntBase[a] + al.t2i[t]
				fr.f2i[f] = i
				fr.f2r[f] = -1
				fr.i2f[i] = f
			}
		}
	}
}

// FlatOfNode returns the global flat index f of local node (alt, t).
func (fr *Frame) FlatOfNode(a, t int) int {
	return fr.altFlatBase[a] + t
}

// RealFlatOfNode returns the global flat-real index of local real node
// (alt, t), or -1 if t is not real.
func (fr *Frame) RealFlatOfNode(a, t int) int {
	r := fr.alts[a].t2r[t]
	if r < 0 {
		return -1
	}
	return fr.altRealBase[a] + r
}

// IntermFlatOfNode returns the global flat-intermediate index of local
// intermediate node (alt, t), or -1 if t is not intermediate.
func (fr *Frame) IntermFlatOfNode(a, t int) int {
	i := fr.alts[a].t2i[t]
	if i < 0 {
		return -1
	}
	return fr.altIntBase[a] + i
}

// F2R maps a global flat total index to its global flat real index, or -1.
func (fr *Frame) F2R(f int) int { return fr.f2r[f] }

// F2I maps a global flat total index to its global flat intermediate
// index, or -1.
func (fr *Frame) F2I(f int) int { return fr.f2i[f] }

// R2F maps a global flat real index back to its global flat total index.
func (fr *Frame) R2F(r int) int { return fr.r2f[r] }

// I2F maps a global flat intermediate index back to its global flat total
// index.
func (fr *Frame) I2F(i int) int { return fr.i2f[i] }
