package givens

import (
	"math"

	"github.com/katalvlaran/spectral/matrix"
)

// Rotation is a 2D rotation with cosine C and sine S, representing the
// orthogonal matrix [[C, -S], [S, C]]. The zero value is NOT a valid
// rotation; construct via New or CancelY.
type Rotation struct {
	C, S float64
}

// New returns the rotation with the given cosine and sine.
// Callers are responsible for c² + s² == 1.
// Complexity: O(1).
func New(c, s float64) Rotation {
	return Rotation{C: c, S: s}
}

// CancelY builds the rotation G with G·(x, y) = (norm, 0), where norm is
// the Euclidean length of (x, y). The second return is that norm.
//
// When y == 0 the second component is already cancelled and no rotation
// direction is defined: ok is false and the other returns are zero.
// The norm computation uses math.Hypot, so extreme magnitudes neither
// overflow nor underflow.
// Complexity: O(1).
func CancelY(x, y float64) (rot Rotation, norm float64, ok bool) {
	if y == 0 {
		return Rotation{}, 0, false
	}
	norm = math.Hypot(x, y)

	return Rotation{C: x / norm, S: -y / norm}, norm, true
}

// Inverse returns the inverse (transpose) rotation.
// Complexity: O(1).
func (r Rotation) Inverse() Rotation {
	return Rotation{C: r.C, S: -r.S}
}

// ApplyToColumns right-multiplies columns i and j of m by the rotation:
// every row (a, b) restricted to those columns becomes
//
//	(a·C + b·S, -a·S + b·C).
//
// This is the accumulation step Q ← Q·G used to fold a similarity
// transform into an orthogonal basis, mutating m in place.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrOutOfRange.
// Complexity: O(rows) time, O(1) memory.
func (r Rotation) ApplyToColumns(m *matrix.Dense, i, j int) error {
	if err := matrix.ValidateNotNil(m); err != nil {
		return err
	}
	cols := m.Cols()
	if i < 0 || i >= cols || j < 0 || j >= cols {
		return matrix.ErrOutOfRange
	}

	data := m.RawData()
	for row := 0; row < m.Rows(); row++ {
		base := row * cols
		a, b := data[base+i], data[base+j]
		data[base+i] = a*r.C + b*r.S
		data[base+j] = -a*r.S + b*r.C
	}

	return nil
}

// Eigen2 returns the two eigenvalues of the symmetric 2×2 matrix
//
//	| a  b |
//	| b  c |
//
// as (halfTrace + root, halfTrace - root) where root² = ((a-c)/2)² + b².
// The discriminant of a symmetric matrix is never negative, so both
// eigenvalues are always real. For b == 0 the result is a and c
// themselves, larger-first.
// Complexity: O(1).
func Eigen2(a, b, c float64) (l1, l2 float64) {
	halfTrace := (a + c) * 0.5
	root := math.Hypot((a-c)*0.5, b)

	return halfTrace + root, halfTrace - root
}
