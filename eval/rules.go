// Copyright 2026 The UNEDA-sub000 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eval

// mixtureBounds returns the bounds of a uniformly-chosen one of the given
// components: its own minimum can be as low as the lowest component's
// minimum, and as high as the highest component's maximum.
func mixtureBounds(bs []Bounds) Bounds {
	if len(bs) == 0 {
		return Bounds{}
	}
	out := bs[0]
	for _, b := range bs[1:] {
		if b.Lo < out.Lo {
			out.Lo = b.Lo
		}
		if b.Hi > out.Hi {
			out.Hi = b.Hi
		}
	}
	return out
}

// Psi (ψ) is alternative i's own EV bounds, unmodified.
func Psi(all []Bounds, i int) Bounds { return all[i] }

// Delta (δ) is alternative i minus alternative j.
func Delta(all []Bounds, i, j int) Bounds { return all[i].Sub(all[j]) }

// Gamma (γ) is alternative i against a uniformly-chosen one of the rest.
func Gamma(all []Bounds, i int) Bounds {
	rest := make([]Bounds, 0, len(all)-1)
	for k, b := range all {
		if k != i {
			rest = append(rest, b)
		}
	}
	return all[i].Sub(mixtureBounds(rest))
}

// DeltaGamma (Δγ) is a uniformly-chosen member of subset against a
// uniformly-chosen member of its complement within all.
func DeltaGamma(all []Bounds, subset []int) Bounds {
	inSubset := make(map[int]bool, len(subset))
	for _, i := range subset {
		inSubset[i] = true
	}
	var in, out []Bounds
	for k, b := range all {
		if inSubset[k] {
			in = append(in, b)
		} else {
			out = append(out, b)
		}
	}
	return mixtureBounds(in).Sub(mixtureBounds(out))
}

// Rule identifies which of the four evaluation rules to apply.
type Rule int

const (
	RulePsi Rule = iota
	RuleDelta
	RuleGamma
	RuleDeltaGamma
)

func (r Rule) String() string {
	switch r {
	case RulePsi:
		return "psi"
	case RuleDelta:
		return "delta"
	case RuleGamma:
		return "gamma"
	case RuleDeltaGamma:
		return "delta-gamma"
	default:
		return "?"
	}
}
