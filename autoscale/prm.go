// Copyright 2026 The UNEDA-sub000 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package autoscale

import "github.com/cpmech/gosl/fun"

// ToPrms renders a Scale as a named, bounded parameter set in the form
// configuration loaders and CLI tools already expect for numeric records.
func (s Scale) ToPrms() fun.Prms {
	rev := 0.0
	if s.Rev {
		rev = 1
	}
	return fun.Prms{
		&fun.Prm{N: "av_min", V: s.Min},
		&fun.Prm{N: "av_max", V: s.Max},
		&fun.Prm{N: "av_rev", V: rev},
	}
}

// ScaleFromPrms is ToPrms's inverse, used by the TOML frame loader to turn
// a parsed criterion scale section back into a Scale.
func ScaleFromPrms(prms fun.Prms) Scale {
	var s Scale
	for _, p := range prms {
		switch p.N {
		case "av_min":
			s.Min = p.V
		case "av_max":
			s.Max = p.V
		case "av_rev":
			s.Rev = p.V != 0
		}
	}
	return s
}
