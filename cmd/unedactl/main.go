// Copyright 2026 The UNEDA-sub000 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// unedactl loads a frame definition, runs one evaluation and prints a
// report: a thin CLI wrapper over packages frameio and engine.
package main

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/uneda-cda/UNEDA-sub000/engine"
	"github.com/uneda-cda/UNEDA-sub000/eval"
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

	// read input parameters
	fnamepath, _ := io.ArgToFilename(0, "", ".toml", true)
	verbose := io.ArgToBool(1, true)
	critIdx := argToInt(2, 0)
	ruleArg := io.ArgToString(3, "psi")

	if verbose {
		io.PfWhite("\nunedactl -- UNEDA-sub000 frame evaluator\n\n")
		io.Pf("Copyright 2026 The UNEDA-sub000 Authors. All rights reserved.\n")
		io.Pf("Use of this source code is governed by a BSD-style\n")
		io.Pf("license that can be found in the LICENSE file.\n\n")

		io.Pf("\n%v\n", io.ArgsTable(
			"frame definition path", "fnamepath", fnamepath,
			"show messages", "verbose", verbose,
			"criterion index", "crit", critIdx,
			"rule", "rule", ruleArg,
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
		if rep := m.Teardown(); rep != nil {
			io.PfRed("leak report: %+v\n", rep)
		}
	}()

	rule := ruleFromArg(ruleArg)
	nAlts, err := m.NAlts(h, critIdx)
	if err != nil {
		chk.Panic("NAlts failed:\n%v", err)
	}

	ranks, err := m.RankAlternatives(h, critIdx, eval.RankOlympic)
	if err != nil {
		chk.Panic("rank failed:\n%v", err)
	}

	io.Pf("\nframe %q (%v), %d alternatives\n", doc.Name, doc.Type, nAlts)
	for a := 0; a < nAlts; a++ {
		res, err := m.Evaluate(h, critIdx, rule, a, 0, nil)
		if err != nil {
			chk.Panic("evaluate failed for alternative %d:\n%v", a, err)
		}
		io.Pf("  alt %2d  rank %2d  EV = [%8.4f, %8.4f, %8.4f]\n", a, ranks[a], res.Min, res.Mid, res.Max)
	}
}

// argToInt is a minimal stand-in for an integer command-line argument,
// since io.ArgToString/io.ArgToBool cover string and bool forms but the
// teacher's CLI never needed a bare integer argument.
func argToInt(idx int, def int) int {
	s := io.ArgToString(idx, "")
	if s == "" {
		return def
	}
	n := 0
	neg := false
	for i, r := range s {
		if i == 0 && r == '-' {
			neg = true
			continue
		}
		if r < '0' || r > '9' {
			return def
		}
		n = n*10 + int(r-'0')
	}
	if neg {
		n = -n
	}
	return n
}

func ruleFromArg(s string) eval.Rule {
	switch s {
	case "delta":
		return eval.RuleDelta
	case "gamma":
		return eval.RuleGamma
	case "delta-gamma":
		return eval.RuleDeltaGamma
	default:
		return eval.RulePsi
	}
}
