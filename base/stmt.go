// Copyright 2026 The UNEDA-sub000 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package base

import (
	"github.com/uneda-cda/UNEDA-sub000/codes"
	"github.com/uneda-cda/UNEDA-sub000/hull"
)

// Term mirrors hull.Term at the public API surface so callers never need
// to import package hull directly for ordinary statement mutation.
type Term = hull.Term

// AddStmt appends a new statement (1 or 2 terms) with bound [lobo, upbo]
// and re-consolidates the hull. On failure (inconsistent or too-narrow)
// the base is left exactly as it was and the statement is not added.
func (b *Base) AddStmt(terms []Term, lobo, upbo float64) (int, error) {
	if len(terms) == 0 || len(terms) > 2 {
		return -1, codes.New(codes.ErrBadMode, "statement must have 1 or 2 terms, got %d", len(terms))
	}
	if lobo > upbo+hull.EPS {
		return -1, codes.New(codes.ErrTooNarrowStatement, "lobo %g > upbo %g", lobo, upbo)
	}
	if len(b.poly.Stmts) >= maxStatements {
		return -1, codes.New(codes.ErrOverflow, "statement list full (%d)", maxStatements)
	}
	idx := len(b.poly.Stmts)
	err := b.mutate(func(p *hull.Polytope) {
		p.Stmts = append(p.Stmts, hull.Stmt{Terms: append([]Term(nil), terms...), Lobo: lobo, Upbo: upbo})
	})
	if err != nil {
		return -1, err
	}
	return idx, nil
}

// ChangeStmt rewrites the bound of an existing statement in place,
// keeping its terms.
func (b *Base) ChangeStmt(idx int, lobo, upbo float64) error {
	if idx < 0 || idx >= len(b.poly.Stmts) {
		return codes.New(codes.ErrBadMode, "statement index %d out of range", idx)
	}
	if lobo > upbo+hull.EPS {
		return codes.New(codes.ErrTooNarrowStatement, "lobo %g > upbo %g", lobo, upbo)
	}
	return b.mutate(func(p *hull.Polytope) {
		p.Stmts[idx].Lobo, p.Stmts[idx].Upbo = lobo, upbo
	})
}

// ReplaceStmt swaps both the terms and the bound of an existing statement.
func (b *Base) ReplaceStmt(idx int, terms []Term, lobo, upbo float64) error {
	if idx < 0 || idx >= len(b.poly.Stmts) {
		return codes.New(codes.ErrBadMode, "statement index %d out of range", idx)
	}
	if len(terms) == 0 || len(terms) > 2 {
		return codes.New(codes.ErrBadMode, "statement must have 1 or 2 terms, got %d", len(terms))
	}
	if lobo > upbo+hull.EPS {
		return codes.New(codes.ErrTooNarrowStatement, "lobo %g > upbo %g", lobo, upbo)
	}
	return b.mutate(func(p *hull.Polytope) {
		p.Stmts[idx] = hull.Stmt{Terms: append([]Term(nil), terms...), Lobo: lobo, Upbo: upbo}
	})
}

// DeleteStmt removes a statement by index. Deleting a statement can never
// make the base inconsistent (removing a constraint only enlarges the
// feasible region), but re-consolidation still runs so the hull stays
// current.
func (b *Base) DeleteStmt(idx int) error {
	if idx < 0 || idx >= len(b.poly.Stmts) {
		return codes.New(codes.ErrBadMode, "statement index %d out of range", idx)
	}
	return b.mutate(func(p *hull.Polytope) {
		p.Stmts = append(p.Stmts[:idx], p.Stmts[idx+1:]...)
	})
}

// ResetBase clears every statement and midpoint, restoring the box to the
// basis's natural full range.
func (b *Base) ResetBase() error {
	lo, up := b.kind.NaturalRange()
	return b.mutate(func(p *hull.Polytope) {
		p.Stmts = nil
		for v := 0; v < p.NVars; v++ {
			p.BoxLo[v], p.BoxUp[v] = lo, up
			p.MboxLo[v], p.MboxUp[v] = hull.EmptyMidpoint, hull.EmptyMidpoint
		}
	})
}

// maxStatements is the per-base statement list ceiling.
var maxStatements = 512
