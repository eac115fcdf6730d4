package eigen

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/spectral/matrix"
	"github.com/katalvlaran/spectral/tridiag"
)

// DefaultEpsilon is the convergence tolerance used by Decompose: an
// off-diagonal entry counts as zero once it is below DefaultEpsilon times
// the magnitude of its neighboring diagonal entries. 0x1p-52 is the
// float64 machine epsilon.
const DefaultEpsilon = 0x1p-52

// UnboundedIterations disables the iteration cap in DecomposeWith.
const UnboundedIterations = 0

// Decomposition is the eigendecomposition of a symmetric matrix:
// Vectors·diag(Values)·Vectorsᵗ reconstructs the input. Vectors is
// orthogonal; Values is unsorted, entry i pairing with column i of
// Vectors. A Decomposition is immutable once returned.
type Decomposition struct {
	// Vectors holds the eigenvectors as columns.
	Vectors *matrix.Dense
	// Values holds the unsorted eigenvalues.
	Values []float64
}

// Decompose computes the eigendecomposition of the symmetric matrix
// defined by the lower triangle and diagonal of m, using the machine
// epsilon tolerance and no iteration cap.
//
// Errors: ErrNilMatrix, ErrNotSquare.
func Decompose(m *matrix.Dense) (*Decomposition, error) {
	return DecomposeWith(m, DefaultEpsilon, UnboundedIterations)
}

// DecomposeWith computes the eigendecomposition with an explicit
// convergence tolerance eps and a cap on the total number of
// iteration cycles (sweeps and 2×2 solves) across the whole matrix.
// maxIter == UnboundedIterations runs until convergence.
//
// m is not mutated; only its lower triangle and diagonal are read.
//
// Errors: ErrNilMatrix and ErrNotSquare (contract violations),
// ErrIterationLimit when the budget runs out — in which case no partial
// result is returned.
func DecomposeWith(m *matrix.Dense, eps float64, maxIter int) (*Decomposition, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	if m.Rows() != m.Cols() {
		return nil, ErrNotSquare
	}
	dim := m.Rows()

	// Normalize by the largest magnitude to improve conditioning of the
	// shift arithmetic. The zero matrix is left untouched.
	work, err := matrix.SymmetrizeFromLower(m)
	if err != nil {
		return nil, fmt.Errorf("DecomposeWith: %w", err)
	}
	amax, err := matrix.MaxAbs(work)
	if err != nil {
		return nil, fmt.Errorf("DecomposeWith: %w", err)
	}
	if amax != 0 {
		if err = matrix.Scale(1/amax, work); err != nil {
			return nil, fmt.Errorf("DecomposeWith: %w", err)
		}
	}

	q, diag, offDiag, err := tridiag.Decompose(work)
	if err != nil {
		return nil, fmt.Errorf("DecomposeWith: %w", err)
	}

	if dim == 1 {
		if amax != 0 {
			diag[0] *= amax
		}

		return &Decomposition{Vectors: q, Values: diag}, nil
	}

	// One iteration counter for the whole decomposition, spanning every
	// deflation window — never reset per subproblem.
	niter := 0
	start, end := delimitSubproblem(diag, offDiag, dim-1, eps)

	for end != start {
		if subdim := end - start + 1; subdim > 2 {
			end = qrSweep(q, diag, offDiag, start, end, eps)
		} else {
			// subdim == 2: closed form, always deflates by one.
			solve2x2(q, diag, offDiag, start, eps)
			end--
		}

		// Re-delimit in case the sweep decoupled an inner block.
		start, end = delimitSubproblem(diag, offDiag, end, eps)

		niter++
		if niter == maxIter {
			return nil, ErrIterationLimit
		}
	}

	if amax != 0 {
		floats.Scale(amax, diag)
	}

	return &Decomposition{Vectors: q, Values: diag}, nil
}

// Recompose rebuilds the matrix the decomposition came from as
// Vectors·diag(Values)·Vectorsᵗ. It is a pure function of the
// decomposition: d is not mutated, so editing Values between calls (a
// common spectral-filtering trick) and recomposing yields the filtered
// matrix while the decomposition itself stays reusable.
func (d *Decomposition) Recompose() *matrix.Dense {
	// Scale a copy's columns by the eigenvalues, transpose, and multiply
	// by the original eigenvector matrix.
	ut := d.Vectors.Clone()
	for i, val := range d.Values {
		_ = matrix.ScaleColumn(val, ut, i) // index ranges over Values, always valid
	}
	ut, err := matrix.Transpose(ut)
	if err != nil {
		// ut is non-nil by construction; reaching this is a bug.
		panic(err)
	}
	out, err := matrix.Mul(d.Vectors, ut)
	if err != nil {
		// Shapes agree by construction (n×n times n×n).
		panic(err)
	}

	return out
}
