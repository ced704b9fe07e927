// Copyright 2026 The UNEDA-sub000 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import (
	"github.com/uneda-cda/UNEDA-sub000/autoscale"
	"github.com/uneda-cda/UNEDA-sub000/base"
	"github.com/uneda-cda/UNEDA-sub000/eval"
	"github.com/uneda-cda/UNEDA-sub000/moment"
	"github.com/uneda-cda/UNEDA-sub000/tree"
)

// Criterion is one P/V tree plus everything derived from it: the moment
// and bounds engines, the evaluator built on top of them, and (for real
// criteria of a PM frame) the autoscale state mapping user values onto the
// V-base's internal [0,1] range. A PS/DM/SM frame's sole criterion and each
// child criterion of a PM frame are both represented the same way; the
// weight tree of a PM frame is represented identically except its "V"
// slot is unused and its "P" slot holds the W-base.
type Criterion struct {
	Frame   *tree.Frame
	P, V    *base.Base
	Scale   autoscale.Scale
	MCScale autoscale.MCScale

	evalGenP, evalGenV int
	evaluator          *eval.Evaluator
}

// newCriterion builds and attaches a Criterion's tree, sizing fresh P and V
// bases from its flat index counts. The tree is left attached.
func newCriterion(fr *tree.Frame) (*Criterion, error) {
	if err := fr.Attach(); err != nil {
		return nil, err
	}
	groups := buildSimplexGroups(fr)
	p := base.New(base.KindP, fr.NFlatTotal(), groups)
	v := base.New(base.KindV, fr.NFlatReal(), nil)
	return &Criterion{Frame: fr, P: p, V: v, Scale: autoscale.Scale{Min: 0, Max: 1}, MCScale: autoscale.DefaultMCScale()}, nil
}

// Evaluator returns c's evaluator, rebuilding the moment/bounds engines
// first if either base has mutated since the last call.
func (c *Criterion) Evaluator() (*eval.Evaluator, error) {
	if c.evaluator != nil && c.evalGenP == c.P.Generation() && c.evalGenV == c.V.Generation() {
		return c.evaluator, nil
	}
	me, err := moment.New(c.Frame, c.P, c.V)
	if err != nil {
		return nil, err
	}
	be := eval.NewBoundsEngine(c.Frame, c.P, c.V)
	c.evaluator = eval.New(me, be)
	c.evalGenP, c.evalGenV = c.P.Generation(), c.V.Generation()
	return c.evaluator, nil
}

// InvalidateCache forces the next Evaluator call to rebuild from scratch,
// matching the "evaluation cache invalidated on any base mutation"
// contract even for mutation paths engine routes around the cached
// generation check (e.g. a temporary tornado statement insert/remove pair
// that nets the generation back to where it started).
func (c *Criterion) InvalidateCache() {
	if c.evaluator != nil {
		c.evaluator.Invalidate()
	}
}
