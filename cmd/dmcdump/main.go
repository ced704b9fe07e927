// Copyright 2026 The UNEDA-sub000 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// dmcdump loads a frame definition and pretty-prints its P/V/W bases'
// current hull and statement state, for inspecting a frame without
// running any evaluation.
package main

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/uneda-cda/UNEDA-sub000/engine"
	"github.com/uneda-cda/UNEDA-sub000/frameio"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			chk.Verbose = true
			for i := 8; i > 3; i-- {
				chk.CallerInfo(i)
			}
			io.PfRed("ERROR: %v\n", err)
		}
	}()

	fnamepath, _ := io.ArgToFilename(0, "", ".toml", true)
	verbose := io.ArgToBool(1, true)

	if verbose {
		io.PfWhite("\ndmcdump -- UNEDA-sub000 frame inspector\n\n")
		io.Pf("\n%v\n", io.ArgsTable(
			"frame definition path", "fnamepath", fnamepath,
			"show messages", "verbose", verbose,
		))
	}

	doc, err := frameio.Load(fnamepath)
	if err != nil {
		chk.Panic("load failed:\n%v", err)
	}

	m := engine.New()
	h, err := frameio.Build(m, doc)
	if err != nil {
		chk.Panic("build failed:\n%v", err)
	}
	defer func() {
		_ = m.Unload(h)
		_ = m.Dispose(h)
		m.Teardown()
	}()

	io.Pf("\nframe %q type=%v\n", doc.Name, doc.Type)

	dumpCriterion(m, h, 0, "weight/main")
	for _, cd := range doc.Crit {
		dumpCriterion(m, h, cd.Index, io.Sf("crit %d", cd.Index))
	}
}

func dumpCriterion(m *engine.Manager, h engine.Handle, crit int, label string) {
	if crit > 0 {
		if err := m.LoadPMCrit(h, crit); err != nil {
			// not a PM frame, or criterion doesn't exist: nothing to dump
			return
		}
	}
	io.PfWhite("\n-- %s (criterion %d) --\n", label, crit)
	dumpBase(m, h, crit, engine.BasisP, "P")
	dumpBase(m, h, crit, engine.BasisV, "V")
}

func dumpBase(m *engine.Manager, h engine.Handle, crit int, b engine.Basis, name string) {
	n, err := m.NVars(h, crit, b)
	if err != nil {
		return
	}
	io.Pf("  %s-base (%d vars)\n", name, n)
	for v := 0; v < n; v++ {
		lo, up, err := m.GetHull(h, crit, b, v)
		if err != nil {
			io.PfRed("    var %3d  error: %v\n", v, err)
			continue
		}
		io.Pf("    var %3d  hull = [%8.4f, %8.4f]\n", v, lo, up)
	}
}
