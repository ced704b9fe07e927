// Copyright 2026 The UNEDA-sub000 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package base holds the P-, V- and W-bases of linear interval
// constraints: the statement list, the midpoint (mean) box and the
// interval box, together with the transactional mutation operations
// (add/change/replace/delete statement, set/remove midpoint, set box,
// reset). The actual linear feasibility solve is delegated to package
// hull; this package owns only the bookkeeping and the
// rollback-on-failure contract.
package base

import (
	"github.com/cpmech/gosl/utl"

	"github.com/uneda-cda/UNEDA-sub000/codes"
	"github.com/uneda-cda/UNEDA-sub000/hull"
)

// Kind identifies which of the three bases (P, V, W) this Base is; it only
// affects the natural bound range used by newly-created variables and by
// validation, since the solver itself (package hull) is basis-agnostic.
type Kind int

const (
	KindP Kind = iota
	KindV
	KindW
)

func (k Kind) String() string {
	switch k {
	case KindP:
		return "P"
	case KindV:
		return "V"
	case KindW:
		return "W"
	default:
		return "?"
	}
}

// NaturalRange returns the default variable range for this basis: [0,1]
// for P and W (probabilities/weights), [-1,1] for V (signed values).
func (k Kind) NaturalRange() (lo, up float64) {
	if k == KindV {
		return -1, 1
	}
	return 0, 1
}

// Base is one constraint base (P, V or W) over nVars variables, grouped
// into simplex Groups (nil for V).
type Base struct {
	kind   Kind
	poly   *hull.Polytope
	result *hull.Result

	generation int
}

// New allocates a Base with the natural range for kind, over nVars
// variables partitioned into the given simplex groups (nil for V).
func New(kind Kind, nVars int, groups []hull.Group) *Base {
	lo, up := kind.NaturalRange()
	p := hull.NewPolytope(nVars, lo, up)
	p.Groups = groups
	b := &Base{kind: kind, poly: p}
	b.resolve() // an empty base (no statements) is always consistent
	return b
}

// Kind returns which basis this is.
func (b *Base) Kind() Kind { return b.kind }

// NVars returns the number of variables.
func (b *Base) NVars() int { return b.poly.NVars }

// NStmts returns the current statement count.
func (b *Base) NStmts() int { return len(b.poly.Stmts) }

// Generation is a monotonically increasing counter bumped on every
// committed mutation; the evaluator's cache keys off (criterion,
// generation) to know when to recompute.
func (b *Base) Generation() int { return b.generation }

// Hull returns the most recently consolidated orthogonal hull. It is
// always valid: a freshly-created or just-rolled-back Base keeps the hull
// from its last successful resolve.
func (b *Base) Hull() *hull.Result { return b.result }

// HullOf returns (lo, up) for variable v from the current hull.
func (b *Base) HullOf(v int) (lo, up float64) {
	return b.result.Lo[v], b.result.Up[v]
}

// resolve re-solves the polytope and, on success, stores the new hull and
// bumps the generation counter. It never mutates poly itself.
func (b *Base) resolve() error {
	res, err := hull.Solve(b.poly)
	if err != nil {
		return err
	}
	b.result = res
	b.generation++
	return nil
}

// snapshot captures enough state to restore b.poly verbatim after a failed
// mutation: a full Polytope clone. Taking a full clone is simpler than
// tracking per-field diffs and, given the small tableau sizes in play here,
// cheap enough to take on every mutating call.
func (b *Base) snapshot() *hull.Polytope {
	return b.poly.Clone()
}

func (b *Base) restore(snap *hull.Polytope) {
	b.poly = snap
	// The hull result already reflects the pre-mutation state (it was
	// never overwritten, since resolve() only commits on success), so no
	// re-solve is required to roll back.
}

// mutate snapshots the current polytope, applies fn to it in place and
// tries to resolve it; on failure the snapshot is put back, so the base is
// left exactly as it was, and the error (an *hull.InconsistentError or *hull.KernelError)
// is translated into the matching codes.Code-bearing error.
func (b *Base) mutate(fn func(p *hull.Polytope)) error {
	snap := b.snapshot()
	fn(b.poly)
	if err := b.resolve(); err != nil {
		b.restore(snap)
		return translate(err)
	}
	return nil
}

func translate(err error) error {
	switch e := err.(type) {
	case *hull.InconsistentError:
		return codes.New(codes.ErrInconsistent, "%s", e.Reason)
	case *hull.KernelError:
		return codes.New(codes.KernelError(1), "%s", e.Stage)
	default:
		return codes.New(codes.ErrAssertFailed, "%s", err)
	}
}

// String renders a short human summary via utl.Sf.
func (b *Base) String() string {
	return utl.Sf("{Base kind=%s nvars=%d nstmts=%d gen=%d}", b.kind, b.poly.NVars, len(b.poly.Stmts), b.generation)
}
