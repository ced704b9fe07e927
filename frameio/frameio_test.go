// Copyright 2026 The UNEDA-sub000 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frameio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/uneda-cda/UNEDA-sub000/engine"
)

func writeDoc(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "frame.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestBuildPSFlatWithBoxAndStatement(t *testing.T) {
	path := writeDoc(t, `
name = "two-alt"
type = "PS"
alts = [2, 2]

[[pbox]]
crit = 0
basis = "P"
var = 1
lobo = 0.2
upbo = 0.6

[[vbox]]
crit = 0
var = 0
lobo = 10
upbo = 50
`)
	doc, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "two-alt", doc.Name)

	m := engine.New()
	h, err := Build(m, doc)
	require.NoError(t, err)

	// P-base var 0 is alternative 0's event root (pinned to 1 by its own
	// singleton group); var 1 is that alternative's first leaf.
	lo, up, err := m.GetHull(h, 0, engine.BasisP, 1)
	require.NoError(t, err)
	require.InDelta(t, 0.2, lo, 1e-6)
	require.InDelta(t, 0.6, up, 1e-6)

	loV, upV, err := m.GetAVUserInterval(h, 0, 0)
	require.NoError(t, err)
	require.InDelta(t, 10, loV, 1e-6)
	require.InDelta(t, 50, upV, 1e-6)
}

func TestBuildPMWithChildCriterionAndScale(t *testing.T) {
	path := writeDoc(t, `
name = "site-selection"
type = "PM"

[[crit]]
index = 1
alts = [2, 2]
min = 0
max = 100

[[crit]]
index = 2
alts = [2, 2]

[[pstmt]]
crit = 0
basis = "W"
vars = [0, 1]
signs = [1, 1]
lobo = 1.0
upbo = 1.0

[[vbox]]
crit = 1
var = 0
lobo = 20
upbo = 80
`)
	doc, err := Load(path)
	require.NoError(t, err)

	m := engine.New()
	h, err := Build(m, doc)
	require.NoError(t, err)

	sc, err := m.GetAVCritScale(h, 1)
	require.NoError(t, err)
	require.Equal(t, 0.0, sc.Min)
	require.Equal(t, 100.0, sc.Max)

	loV, upV, err := m.GetAVUserInterval(h, 1, 0)
	require.NoError(t, err)
	require.InDelta(t, 20, loV, 1e-6)
	require.InDelta(t, 80, upV, 1e-6)
}

func TestBuildRejectsUnknownFrameType(t *testing.T) {
	path := writeDoc(t, `
name = "bad"
type = "XX"
alts = [1]
`)
	doc, err := Load(path)
	require.NoError(t, err)

	m := engine.New()
	_, err = Build(m, doc)
	require.Error(t, err)
}
