// SPDX-License-Identifier: MIT

package store

// Relax evaluates the candidate path i→l→j.
//
// It returns (il+lj, true) only when the candidate is strictly shorter than ij.
// A sentinel operand never forms a candidate; a finite sum that overflows to
// +Inf compares greater than every stored distance and is rejected as well.
// Strict comparison keeps the first-found predecessor on ties, which makes
// every solver deterministic for a fixed sweep order.
func Relax(il, lj, ij float32) (float32, bool) {
	if il == Unreachable || lj == Unreachable {
		return ij, false
	}
	cand := il + lj
	if cand < ij {
		return cand, true
	}

	return ij, false
}
