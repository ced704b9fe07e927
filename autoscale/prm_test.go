// Copyright 2026 The UNEDA-sub000 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package autoscale

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScalePrmRoundTrip(t *testing.T) {
	s := Scale{Min: 10, Max: 100, Rev: true}
	got := ScaleFromPrms(s.ToPrms())
	require.Equal(t, s, got)
}
