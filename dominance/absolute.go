// Copyright 2026 The UNEDA-sub000 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dominance

// composeStep folds old x cur -> new, stopping the conjunction early on
// "no dominance" (0 kills it), and letting 2nd-order override 1st-order
// once both have appeared.
func composeStep(old, cur Order) Order {
	if old == None || cur == None {
		return None
	}
	if old == Second || cur == Second {
		return Second
	}
	return First
}

// Compose folds per-criterion orders for the fixed pair (i, j) across every
// criterion into a single absolute-dominance order, via composeStep.
func Compose(perCriterion []Order) Order {
	if len(perCriterion) == 0 {
		return None
	}
	acc := perCriterion[0]
	for _, o := range perCriterion[1:] {
		acc = composeStep(acc, o)
		if acc == None {
			return None
		}
	}
	return acc
}

// AbsMatrix computes abs_dominance_matrix: Ai absolutely dominates Aj iff
// Ai dominates Aj in every criterion (Compose over each criterion's
// per-criterion dominance matrix).
func AbsMatrix(perCriterionMatrices [][][]Order) [][]Order {
	if len(perCriterionMatrices) == 0 {
		return nil
	}
	n := len(perCriterionMatrices[0])
	out := make([][]Order, n)
	for i := range out {
		out[i] = make([]Order, n)
		for j := range out[i] {
			if i == j {
				continue
			}
			perCrit := make([]Order, len(perCriterionMatrices))
			for c, m := range perCriterionMatrices {
				perCrit[c] = m[i][j]
			}
			out[i][j] = Compose(perCrit)
		}
	}
	return out
}

// sumStep is the abs_sum state machine: aggregating whether a column
// (an alternative being compared against) is dominated by any other row,
// where 1st-order wins over 2nd-order wins over no-dominance.
func sumStep(acc, cur Order) Order {
	if cur == First || acc == First {
		return First
	}
	if cur == Second || acc == Second {
		return Second
	}
	return None
}

// ColumnDominated reports, for column j of an absolute-dominance matrix,
// the strongest order at which any other row dominates it.
func ColumnDominated(m [][]Order, j int) Order {
	acc := None
	for i := range m {
		if i == j {
			continue
		}
		acc = sumStep(acc, m[i][j])
	}
	return acc
}
