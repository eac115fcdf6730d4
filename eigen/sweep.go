package eigen

import (
	"math"

	"github.com/katalvlaran/spectral/givens"
	"github.com/katalvlaran/spectral/matrix"
)

// qrSweep chases one Wilkinson-shifted bulge through the active window
// [start, end] of the tridiagonal (diag, offDiag), folding every rotation
// into the eigenvector accumulator q. Requires end-start+1 > 2.
//
// The shift is taken from the trailing 2×2 block; the seed vector
// (diag[start]-shift, offDiag[start]) is the first column of T - shift·I
// restricted to the window. Each cancelling rotation is applied as a
// similarity transform to the local 2×2 block and propagates the bulge one
// step further down the band. A degenerate direction (nothing to cancel)
// ends the sweep early; the deflation scan takes over from there.
//
// Returns the (possibly decremented) trailing bound: the window shrinks by
// one when the sweep has made the trailing off-diagonal entry negligible.
func qrSweep(q *matrix.Dense, diag, offDiag []float64, start, end int, eps float64) int {
	m, n := end-1, end
	shift := WilkinsonShift(diag[m], diag[n], offDiag[m])
	vx := diag[start] - shift
	vy := offDiag[start]

	for i := start; i < n; i++ {
		j := i + 1

		rot, norm, ok := givens.CancelY(vx, vy)
		if !ok {
			break
		}
		if i > start {
			// The cancelled component is the bulge chased out of the
			// previous step; its norm lands on the restored band.
			offDiag[i-1] = norm
		}

		mii, mjj, mij := diag[i], diag[j], offDiag[i]
		cc := rot.C * rot.C
		ss := rot.S * rot.S
		cs := rot.C * rot.S
		b := 2 * cs * mij

		diag[i] = cc*mii + ss*mjj - b
		diag[j] = ss*mii + cc*mjj + b
		offDiag[i] = cs*(mii-mjj) + mij*(cc-ss)

		if i != n-1 {
			// Seed the next step with the bulge just pushed below the band.
			vx = offDiag[i]
			vy = -rot.S * offDiag[i+1]
			offDiag[i+1] *= rot.C
		}

		// Fold the similarity transform into the eigenvector basis.
		_ = rot.Inverse().ApplyToColumns(q, i, j) // indices proven in range
	}

	if math.Abs(offDiag[m]) <= eps*(math.Abs(diag[m])+math.Abs(diag[n])) {
		end--
	}

	return end
}

// solve2x2 handles an active window of exactly two elements in closed form:
// the block's eigenvalues replace diag[start] and diag[start+1] directly,
// and the rotation aligning the basis with the first eigenvector is folded
// into q. The window always deflates by one afterwards (caller decrements).
//
// The rotation basis (l1 - diag[start+1], offDiag[start]) may degenerate to
// near-zero when the block is already diagonal; below eps no rotation is
// applied.
func solve2x2(q *matrix.Dense, diag, offDiag []float64, start int, eps float64) {
	l1, l2 := givens.Eigen2(diag[start], offDiag[start], diag[start+1])
	bx := l1 - diag[start+1]
	by := offDiag[start]

	diag[start] = l1
	diag[start+1] = l2

	norm := math.Hypot(bx, by)
	if norm > eps {
		rot := givens.New(bx/norm, by/norm)
		_ = rot.ApplyToColumns(q, start, start+1) // indices proven in range
	}
}
