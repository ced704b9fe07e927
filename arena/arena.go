// Copyright 2026 The UNEDA-sub000 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package arena is the memory registry: every frame-sized allocation made
// by the tree/base/engine packages is registered here under a type tag and
// a source label, so a leak check at teardown can report anything still
// outstanding. This is a plain Go map standing in for a C allocator's
// bookkeeping table — registration is cheap bookkeeping, not an actual
// custom allocator, since Go already owns memory safety.
package arena

import (
	"fmt"
	"sync"

	"github.com/cpmech/gosl/utl"
)

// Tag classifies what kind of object a Handle stands for; used only for
// leak-report grouping.
type Tag int

const (
	TagFrame Tag = iota
	TagCriterion
	TagStatementSnapshot
	TagEvalCache
	TagOther
)

func (t Tag) String() string {
	switch t {
	case TagFrame:
		return "frame"
	case TagCriterion:
		return "criterion"
	case TagStatementSnapshot:
		return "stmt-snapshot"
	case TagEvalCache:
		return "eval-cache"
	default:
		return "other"
	}
}

// Handle identifies one registered allocation.
type Handle uint64

// entry is the bookkeeping record kept per live Handle.
type entry struct {
	tag    Tag
	source string
}

// Arena is the registry. The zero value is ready to use.
type Arena struct {
	mu      sync.Mutex
	next    Handle
	live    map[Handle]entry
	counts  map[Tag]int
}

// New returns an empty, ready-to-use Arena.
func New() *Arena {
	return &Arena{
		live:   make(map[Handle]entry),
		counts: make(map[Tag]int),
	}
}

// Register records a new allocation tagged tag, attributed to source (a
// short label such as "tree.NewFlat" or "base.snapshot"), and returns the
// Handle to release it with later.
func (a *Arena) Register(tag Tag, source string) Handle {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.next++
	h := a.next
	a.live[h] = entry{tag: tag, source: source}
	a.counts[tag]++
	return h
}

// Release retires a Handle. Releasing an unknown or already-released
// handle is a programming error and panics: an invariant that must never
// fail in correct code.
func (a *Arena) Release(h Handle) {
	a.mu.Lock()
	defer a.mu.Unlock()
	e, ok := a.live[h]
	if !ok {
		panic(fmt.Sprintf("arena: release of unknown or already-released handle %d", h))
	}
	delete(a.live, h)
	a.counts[e.tag]--
}

// Count returns the number of currently-live allocations under tag.
func (a *Arena) Count(tag Tag) int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.counts[tag]
}

// Len returns the total number of live allocations across all tags.
func (a *Arena) Len() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.live)
}

// LeakReport is what Teardown returns when allocations are still live.
type LeakReport struct {
	Total   int
	BySource map[string]int
}

func (r *LeakReport) String() string {
	s := utl.Sf("memory-leak: %d allocation(s) still registered\n", r.Total)
	for src, n := range r.BySource {
		s += utl.Sf("  %s: %d\n", src, n)
	}
	return s
}

// Teardown checks that the arena is empty and, if not, returns a
// LeakReport describing what is still outstanding. Exit-time code calls
// this and surfaces codes.ErrMemoryLeak when the report is non-nil.
func (a *Arena) Teardown() *LeakReport {
	a.mu.Lock()
	defer a.mu.Unlock()
	if len(a.live) == 0 {
		return nil
	}
	report := &LeakReport{Total: len(a.live), BySource: make(map[string]int)}
	for _, e := range a.live {
		report.BySource[fmt.Sprintf("%s/%s", e.tag, e.source)]++
	}
	return report
}
