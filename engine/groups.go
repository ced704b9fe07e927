// Copyright 2026 The UNEDA-sub000 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package engine is the frame manager and mutex façade: it owns the
// process-wide "currently attached frame" slot, serialises every public
// call through a non-blocking re-entrancy guard, and dispatches base
// mutation, evaluation, dominance, sensitivity and autoscale requests to
// the packages that implement them, translating their results into the
// engine's single error/code contract.
package engine

import (
	"github.com/uneda-cda/UNEDA-sub000/hull"
	"github.com/uneda-cda/UNEDA-sub000/tree"
)

// buildSimplexGroups converts every alternative's event-sibling chains
// (tree.Frame.EventGroups, in local node ids) into the flat-indexed
// hull.Group list a P- or W-base polytope needs. fr must already be
// attached.
func buildSimplexGroups(fr *tree.Frame) []hull.Group {
	var groups []hull.Group
	for a := 0; a < fr.NAlts(); a++ {
		for _, eg := range fr.EventGroups(a) {
			vars := make([]int, len(eg.Children))
			for i, c := range eg.Children {
				vars[i] = fr.FlatOfNode(a, c)
			}
			groups = append(groups, hull.Group{Vars: vars})
		}
	}
	return groups
}
