// Copyright 2026 The UNEDA-sub000 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dominance

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestComposeStopsEarlyOnNone(t *testing.T) {
	require.Equal(t, None, Compose([]Order{First, None, Second}))
}

func TestComposeSecondOverridesFirst(t *testing.T) {
	require.Equal(t, Second, Compose([]Order{First, Second, First}))
}

func TestComposeAllFirst(t *testing.T) {
	require.Equal(t, First, Compose([]Order{First, First}))
}

func TestColumnDominatedPrefersFirst(t *testing.T) {
	// Column 1 is dominated at 2nd order by row 0 and at 1st order by row 2.
	m := [][]Order{
		{None, Second, None},
		{None, None, None},
		{None, First, None},
	}
	require.Equal(t, First, ColumnDominated(m, 1))
}

func TestReduceRemovesTransitiveEdge(t *testing.T) {
	// 0 beats 1, 1 beats 2, 0 beats 2: the direct 0->2 edge is redundant.
	m := [][]Order{
		{None, First, First},
		{None, None, First},
		{None, None, None},
	}
	out := Reduce(m, ReduceStrictFirstOrder)
	require.Equal(t, None, out[0][2])
	require.Equal(t, First, out[0][1])
	require.Equal(t, First, out[1][2])
}

func TestRankStrictAssignsDistinctLevels(t *testing.T) {
	// 0 beats 1 beats 2: strict chain.
	m := [][]Order{
		{None, First, First},
		{None, None, First},
		{None, None, None},
	}
	ranks := Rank(m, RankStrict, ReduceStrictFirstOrder)
	require.Equal(t, 1, ranks[0])
	require.Equal(t, 2, ranks[1])
	require.Equal(t, 3, ranks[2])
}
