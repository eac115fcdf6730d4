package tridiag

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/spectral/matrix"
)

// Decompose reduces the symmetric matrix defined by the lower triangle and
// diagonal of m to tridiagonal form, returning the orthogonal basis q, the
// main diagonal (length n) and the sub-diagonal (length n-1).
//
// m is not mutated. The returned slices are freshly allocated and owned by
// the caller for the lifetime of the iteration that consumes them.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrNonSquare.
// Complexity: O(n³) time, O(n²) memory.
func Decompose(m *matrix.Dense) (q *matrix.Dense, diag, offDiag []float64, err error) {
	a, err := matrix.SymmetrizeFromLower(m)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("tridiag.Decompose: %w", err)
	}
	n := a.Rows()

	q, err = matrix.Identity(n)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("tridiag.Decompose: %w", err)
	}

	ad := a.RawData()
	qd := q.RawData()
	v := make([]float64, n) // Householder direction, unit length
	w := make([]float64, n) // workspace: a·v, then the symmetric update

	for k := 0; k < n-2; k++ {
		// Length of column k below the diagonal.
		var norm float64
		for i := k + 1; i < n; i++ {
			norm = math.Hypot(norm, ad[i*n+k])
		}
		if norm == 0 {
			// Column already has tridiagonal shape.
			continue
		}

		// Householder vector v with H·x = alpha·e1. The sign of alpha
		// opposes x[0] so the leading component accumulates magnitude
		// instead of cancelling.
		alpha := -math.Copysign(norm, ad[(k+1)*n+k])
		for i := range v {
			v[i] = 0
		}
		v[k+1] = ad[(k+1)*n+k] - alpha
		for i := k + 2; i < n; i++ {
			v[i] = ad[i*n+k]
		}
		vnorm := floats.Norm(v, 2)
		if vnorm == 0 {
			continue
		}
		floats.Scale(1/vnorm, v)

		// Similarity update a ← H·a·H with H = I - 2vvᵗ:
		//   w = a·v, kappa = vᵗ·w,
		//   a ← a - 2vwᵗ - 2wvᵗ + 4·kappa·vvᵗ.
		for i := 0; i < n; i++ {
			w[i] = floats.Dot(ad[i*n:(i+1)*n], v)
		}
		kappa := floats.Dot(v, w)
		for i := 0; i < n; i++ {
			vi, wi := v[i], w[i]
			row := ad[i*n : (i+1)*n]
			for j := 0; j < n; j++ {
				row[j] += 4*kappa*vi*v[j] - 2*vi*w[j] - 2*wi*v[j]
			}
		}

		// Accumulate q ← q·H.
		for i := 0; i < n; i++ {
			row := qd[i*n : (i+1)*n]
			t := 2 * floats.Dot(row, v)
			floats.AddScaled(row, -t, v)
		}
	}

	diag = make([]float64, n)
	offDiag = make([]float64, n-1)
	for i := 0; i < n; i++ {
		diag[i] = ad[i*n+i]
	}
	for i := 0; i+1 < n; i++ {
		offDiag[i] = ad[(i+1)*n+i]
	}

	return q, diag, offDiag, nil
}
