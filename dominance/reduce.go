// Copyright 2026 The UNEDA-sub000 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dominance

// ReduceMode selects which transitive chains a non-transitive reduction
// removes: strict first-order only, or either order.
type ReduceMode int

const (
	ReduceStrictFirstOrder ReduceMode = iota
	ReduceAnyOrder
)

// beats reports whether order counts as i dominating j under mode.
func beats(o Order, mode ReduceMode) bool {
	if mode == ReduceStrictFirstOrder {
		return o == First
	}
	return o == First || o == Second
}

// Reduce removes pairs (i, j) for which some k satisfies i beats k and k
// beats j — i's dominance over j is implied transitively through k, so the
// direct edge is redundant.
func Reduce(m [][]Order, mode ReduceMode) [][]Order {
	n := len(m)
	out := make([][]Order, n)
	for i := range out {
		out[i] = append([]Order(nil), m[i]...)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j || !beats(m[i][j], mode) {
				continue
			}
			for k := 0; k < n; k++ {
				if k == i || k == j {
					continue
				}
				if beats(m[i][k], mode) && beats(m[k][j], mode) {
					out[i][j] = None
					break
				}
			}
		}
	}
	return out
}

// RankMode mirrors eval.RankMode's tie-numbering choices, applied to the
// levels dominance_rank peels off.
type RankMode int

const (
	RankGroup RankMode = iota
	RankOlympic
	RankStrict
)

// Rank implements dominance_rank: iteratively peels off the set of
// currently-undominated alternatives (those with no incoming dominance edge
// among the remaining candidates) to form successive levels, then numbers
// alternatives within and across levels per mode.
func Rank(m [][]Order, mode RankMode, dmode ReduceMode) []int {
	n := len(m)
	remaining := make(map[int]bool, n)
	for i := 0; i < n; i++ {
		remaining[i] = true
	}
	ranks := make([]int, n)
	level := 1
	for len(remaining) > 0 {
		undominated := []int{}
		for i := range remaining {
			dominated := false
			for j := range remaining {
				if j == i {
					continue
				}
				if beats(m[j][i], dmode) {
					dominated = true
					break
				}
			}
			if !dominated {
				undominated = append(undominated, i)
			}
		}
		if len(undominated) == 0 {
			// A dominance cycle among all that remain: break it by taking
			// everyone still in, rather than loop forever.
			for i := range remaining {
				undominated = append(undominated, i)
			}
		}
		for _, i := range undominated {
			switch mode {
			case RankStrict:
				ranks[i] = level
				level++
			default: // RankGroup, RankOlympic: the whole level shares one rank
				ranks[i] = level
			}
			delete(remaining, i)
		}
		if mode != RankStrict {
			level += len(undominated)
		}
	}
	return ranks
}
