// Copyright 2026 The UNEDA-sub000 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewFlatAttach(t *testing.T) {
	fr, err := NewFlat(PS, "s1", []int{2, 2})
	require.NoError(t, err)
	require.NoError(t, fr.Attach())
	require.Equal(t, 2, fr.NAlts())
	require.Equal(t, 2, fr.NNodesReal(0))
	require.Equal(t, 1, fr.NNodesInterm(0))
	require.Equal(t, 3, fr.NNodesTotal(0))
	require.Equal(t, 4, fr.NFlatReal())
	require.Equal(t, 2, fr.NFlatInterm())
	require.True(t, fr.PureTree(0))
}

func TestFlatIndexRoundTrip(t *testing.T) {
	fr, err := NewFlat(PS, "s1", []int{3, 1})
	require.NoError(t, err)
	require.NoError(t, fr.Attach())
	for r := 0; r < fr.NFlatReal(); r++ {
		f := fr.R2F(r)
		require.Equal(t, r, fr.F2R(f))
		require.Equal(t, -1, fr.F2I(f))
	}
	for i := 0; i < fr.NFlatInterm(); i++ {
		f := fr.I2F(i)
		require.Equal(t, i, fr.F2I(f))
		require.Equal(t, -1, fr.F2R(f))
	}
}

func TestTreeDecisionBelowEvent(t *testing.T) {
	// Decision node directly under another decision node: illegal.
	_, err := NewTree(PS, "bad", []Desc{
		Node(Decision, Node(Decision, Leaf(), Leaf()), Leaf()),
	})
	require.Error(t, err)
}

func TestTreeValidTopology(t *testing.T) {
	// Decision -> Event -> {Real, Decision -> Event -> {Real, Real}}
	descs := []Desc{
		Node(Decision,
			Node(Event, Leaf(), Leaf()),
			Node(Event,
				Leaf(),
				Node(Decision, Node(Event, Leaf(), Leaf())),
			),
		),
	}
	fr, err := NewTree(PS, "t1", descs)
	require.NoError(t, err)
	require.NoError(t, fr.Attach())
	require.Equal(t, 5, fr.NNodesReal(0))
	groups := fr.EventGroups(0)
	require.NotEmpty(t, groups)
}

func TestDetachReattach(t *testing.T) {
	fr, err := NewFlat(PS, "s1", []int{2})
	require.NoError(t, err)
	require.NoError(t, fr.Attach())
	require.True(t, fr.Attached())
	fr.Detach()
	require.False(t, fr.Attached())
	require.NoError(t, fr.Attach())
	require.True(t, fr.Attached())
}

func TestNbrOfSiblings(t *testing.T) {
	fr, err := NewFlat(PS, "s1", []int{3})
	require.NoError(t, err)
	require.NoError(t, fr.Attach())
	root := fr.Siblings(0, -1)
	require.Len(t, root, 1) // one event root
	children := fr.Siblings(0, root[0])
	require.Len(t, children, 3)
	require.Equal(t, 3, fr.NbrOfSiblings(0, children[0]))
}
