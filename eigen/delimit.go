package eigen

import "math"

// delimitSubproblem recomputes the active window [start, end] of the
// still-unconverged tridiagonal block, scanning downward from the given
// trailing index.
//
// Phase 1 walks n from end toward 0 and stops at the first index whose
// trailing off-diagonal entry is NOT negligible against its neighboring
// diagonal magnitudes; that n is the new trailing bound. Reaching 0 means
// the whole prefix has converged and the window is empty.
//
// Phase 2 continues backward from n-1 looking for a further negligible
// entry. Finding one commits the decoupling: the entry is zeroed in place
// (a real numerical side effect) and the window starts just above it, so
// converged leading blocks are never revisited.
func delimitSubproblem(diag, offDiag []float64, end int, eps float64) (int, int) {
	n := end
	for n > 0 {
		m := n - 1
		if math.Abs(offDiag[m]) > eps*(math.Abs(diag[n])+math.Abs(diag[m])) {
			break
		}
		n--
	}
	if n == 0 {
		return 0, 0
	}

	newStart := n - 1
	for newStart > 0 {
		m := newStart - 1
		if offDiag[m] == 0 ||
			math.Abs(offDiag[m]) <= eps*(math.Abs(diag[newStart])+math.Abs(diag[m])) {
			offDiag[m] = 0
			break
		}
		newStart--
	}

	return newStart, n
}
