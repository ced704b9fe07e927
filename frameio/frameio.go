// Copyright 2026 The UNEDA-sub000 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package frameio reads a frame definition from a TOML document and builds
// it in an *engine.Manager, mirroring the role package inp plays for a
// .sim file: turn a textual description into in-memory structures, ready
// for Load and evaluation. It knows nothing about presentation; cmd/unedactl
// and cmd/dmcdump both build on top of it.
package frameio

import (
	"fmt"
	"math"

	"github.com/BurntSushi/toml"

	"github.com/uneda-cda/UNEDA-sub000/autoscale"
	"github.com/uneda-cda/UNEDA-sub000/engine"
	"github.com/uneda-cda/UNEDA-sub000/hull"
	"github.com/uneda-cda/UNEDA-sub000/tree"
)

// Doc is the top-level shape of a frame-definition TOML file.
type Doc struct {
	Name string `toml:"name"`
	Type string `toml:"type"` // "PS", "PM", "DM" or "SM"

	// Alts is nCons per decision alternative. Ignored for type "PM": a PM
	// frame's weight tree is always built flat, one leaf per criterion
	// declared in Crit, and each decision alternative lives instead in
	// every child criterion's own tree.
	Alts []int `toml:"alts"`

	Crit []CritDoc `toml:"crit"`

	PStmt []StmtDoc `toml:"pstmt"`
	PBox  []BoxDoc  `toml:"pbox"`
	VBox  []VBoxDoc `toml:"vbox"`
	VMid  []VMidDoc `toml:"vmid"`
}

// CritDoc declares one PM child criterion (index > 0) plus its raw-value
// autoscale endpoints.
type CritDoc struct {
	Index int     `toml:"index"`
	Alts  []int   `toml:"alts"`
	Min   float64 `toml:"min"`
	Max   float64 `toml:"max"`
	Rev   bool    `toml:"rev"`
}

// StmtDoc is a two-term (or single-term) P/W-base statement in the
// engine's internal [0,1]/simplex units.
type StmtDoc struct {
	Crit  int       `toml:"crit"`
	Basis string    `toml:"basis"` // "P" or "W"
	Vars  []int     `toml:"vars"`
	Signs []float64 `toml:"signs"`
	Lobo  float64   `toml:"lobo"`
	Upbo  float64   `toml:"upbo"`
}

// BoxDoc is a single-variable P/W-base interval bound, a shorthand for a
// one-term StmtDoc.
type BoxDoc struct {
	Crit  int     `toml:"crit"`
	Basis string  `toml:"basis"`
	Var   int     `toml:"var"`
	Lobo  float64 `toml:"lobo"`
	Upbo  float64 `toml:"upbo"`
}

// VBoxDoc is a raw-scale V-base interval bound for one leaf of criterion
// crit; raw units are whatever the criterion's own scale names (money,
// score points, distance, ...), converted by autoscale at Build time.
type VBoxDoc struct {
	Crit int     `toml:"crit"`
	Var  int     `toml:"var"`
	Lobo float64 `toml:"lobo"`
	Upbo float64 `toml:"upbo"`
}

// VMidDoc is a raw-scale V-base point estimate (lobo == upbo == Mid).
type VMidDoc struct {
	Crit int     `toml:"crit"`
	Var  int     `toml:"var"`
	Mid  float64 `toml:"mid"`
}

// Load decodes a frame-definition file at path.
func Load(path string) (*Doc, error) {
	var d Doc
	if _, err := toml.DecodeFile(path, &d); err != nil {
		return nil, fmt.Errorf("frameio: %w", err)
	}
	return &d, nil
}

func frameType(s string) (tree.FrameType, error) {
	switch s {
	case "PS":
		return tree.PS, nil
	case "PM":
		return tree.PM, nil
	case "DM":
		return tree.DM, nil
	case "SM":
		return tree.SM, nil
	default:
		return 0, fmt.Errorf("frameio: unknown frame type %q", s)
	}
}

func basisOf(s string) (engine.Basis, error) {
	switch s {
	case "P":
		return engine.BasisP, nil
	case "W":
		return engine.BasisW, nil
	default:
		return 0, fmt.Errorf("frameio: pstmt/pbox basis must be P or W, got %q", s)
	}
}

// flatDescs replicates tree.NewFlat's topology (one Event node per
// alternative, nCons[a] real children) as a plain []tree.Desc, since
// Manager exposes no flat constructor for a PM child criterion.
func flatDescs(nCons []int) []tree.Desc {
	descs := make([]tree.Desc, len(nCons))
	for a, n := range nCons {
		leaves := make([]tree.Desc, n)
		for i := range leaves {
			leaves[i] = tree.Leaf()
		}
		descs[a] = tree.Node(tree.Event, leaves...)
	}
	return descs
}

// Build constructs and loads the frame doc describes in m, returning its
// handle already passed to Load. Callers are responsible for Unload and
// Dispose when done with it.
func Build(m *engine.Manager, doc *Doc) (engine.Handle, error) {
	typ, err := frameType(doc.Type)
	if err != nil {
		return 0, err
	}

	var h engine.Handle
	switch typ {
	case tree.PS:
		h, err = m.NewPSFlat(doc.Name, doc.Alts)
	case tree.DM:
		h, err = m.NewDMFlat(doc.Name, doc.Alts)
	case tree.PM:
		h, err = m.NewPMFlat(doc.Name, []int{len(doc.Crit)})
	case tree.SM:
		return 0, fmt.Errorf("frameio: SM frames need tree descriptors; not supported by this flat loader")
	}
	if err != nil {
		return 0, err
	}

	if typ == tree.PM {
		for _, cd := range doc.Crit {
			if cd.Index <= 0 {
				return 0, fmt.Errorf("frameio: crit index must be > 0, got %d", cd.Index)
			}
			if err := m.NewPMCritTree(h, cd.Index, flatDescs(cd.Alts)); err != nil {
				return 0, err
			}
		}
	}

	if err := m.Load(h); err != nil {
		return 0, err
	}

	// Criterion 0 (the lone criterion of PS/DM/SM, or the weight tree of a
	// PM frame) is attached as soon as its Frame is built; PM child
	// criteria start detached and must be loaded one at a time before
	// their bases can be addressed.
	if err := applyPBase(m, h, doc, 0); err != nil {
		return 0, err
	}
	if err := applyVBase(m, h, doc, 0, autoscale.Scale{}); err != nil {
		return 0, err
	}
	for _, cd := range doc.Crit {
		if err := m.LoadPMCrit(h, cd.Index); err != nil {
			return 0, err
		}
		if err := applyPBase(m, h, doc, cd.Index); err != nil {
			return 0, err
		}
		if err := applyVBase(m, h, doc, cd.Index, autoscale.Scale{Min: cd.Min, Max: cd.Max, Rev: cd.Rev}); err != nil {
			return 0, err
		}
	}
	return h, nil
}

func applyPBase(m *engine.Manager, h engine.Handle, doc *Doc, crit int) error {
	for _, b := range doc.PBox {
		if b.Crit != crit {
			continue
		}
		basis, err := basisOf(b.Basis)
		if err != nil {
			return err
		}
		if _, err := m.AddStmt(h, crit, basis, singleTerm(b.Var), b.Lobo, b.Upbo); err != nil {
			return err
		}
	}
	for _, s := range doc.PStmt {
		if s.Crit != crit {
			continue
		}
		basis, err := basisOf(s.Basis)
		if err != nil {
			return err
		}
		if len(s.Vars) != len(s.Signs) {
			return fmt.Errorf("frameio: pstmt crit %d has %d vars but %d signs", s.Crit, len(s.Vars), len(s.Signs))
		}
		if _, err := m.AddStmt(h, crit, basis, termsOf(s.Vars, s.Signs), s.Lobo, s.Upbo); err != nil {
			return err
		}
	}
	return nil
}

// applyVBase gathers crit's raw vbox/vmid rows and applies them as a
// single bulk SetAVBox call, the unit of work autoscale actually operates
// on (a whole criterion's box at once). want is the criterion's configured
// scale endpoints (the zero value for criterion 0, whose scale then comes
// from its rows' own extremes).
func applyVBase(m *engine.Manager, h engine.Handle, doc *Doc, crit int, want autoscale.Scale) error {
	vars := map[int][2]float64{}
	for _, b := range doc.VBox {
		if b.Crit == crit {
			vars[b.Var] = [2]float64{b.Lobo, b.Upbo}
		}
	}
	for _, mdoc := range doc.VMid {
		if mdoc.Crit == crit {
			vars[mdoc.Var] = [2]float64{mdoc.Mid, mdoc.Mid}
		}
	}
	if len(vars) == 0 {
		return nil
	}

	n, err := m.NVars(h, crit, engine.BasisV)
	if err != nil {
		return err
	}
	lobox := make([]float64, n)
	upbox := make([]float64, n)

	// Variables with no explicit row fall back to the criterion's
	// configured scale endpoints (want), or, lacking that, the extremes
	// already present among the given rows. With want set and any variable
	// left without a row, the autoscale span therefore reaches at least
	// want's endpoints; without want, the fill values lie within the rows'
	// own extremes and leave the span those rows produce unchanged.
	fillLo, fillUp := want.Min, want.Max
	if fillLo == 0 && fillUp == 0 {
		fillLo, fillUp = math.Inf(1), math.Inf(-1)
		for _, b := range vars {
			if b[0] < fillLo {
				fillLo = b[0]
			}
			if b[1] > fillUp {
				fillUp = b[1]
			}
		}
	}
	for v := 0; v < n; v++ {
		lobox[v], upbox[v] = fillLo, fillUp
	}
	for v, b := range vars {
		if v < 0 || v >= n {
			return fmt.Errorf("frameio: vbox/vmid crit %d var %d out of range [0,%d)", crit, v, n)
		}
		lobox[v], upbox[v] = b[0], b[1]
	}
	if _, err := m.SetAVBox(h, crit, want.Rev, true, lobox, upbox); err != nil {
		return err
	}
	return nil
}

func singleTerm(v int) []hull.Term {
	return []hull.Term{{Var: v, Sign: 1}}
}

func termsOf(vars []int, signs []float64) []hull.Term {
	out := make([]hull.Term, len(vars))
	for i, v := range vars {
		out[i] = hull.Term{Var: v, Sign: signs[i]}
	}
	return out
}
