// Copyright 2026 The UNEDA-sub000 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

// Configuration ceilings. These are not hardware limits; they bound the
// size of the small dense tableaux the hull solver builds. Callers needing
// larger frames may raise them before any frame is created.
var (
	// MaxAlternatives bounds the number of alternatives in one frame.
	MaxAlternatives = 64

	// MaxCriteria bounds the number of criteria in an MC frame (criterion
	// 0 is the aggregate, so this is the count of real criteria plus one).
	MaxCriteria = 32

	// MaxNodesPerAlt bounds total (real + intermediate) nodes per
	// alternative.
	MaxNodesPerAlt = 256

	// MaxConsPerAlt bounds real (leaf) consequences per alternative.
	MaxConsPerAlt = 128

	// MaxStatements bounds the statement list of one constraint base.
	MaxStatements = 512
)

// MaxRows is the row ceiling of the hull solver's augmented tableau: two
// rows per statement (lo/up) plus one simplex row per alternative's
// consequence group.
func MaxRows() int {
	return 2*MaxStatements + MaxConsPerAlt
}
