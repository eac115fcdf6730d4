// SPDX-License-Identifier: MIT
// Package matrix: linear-algebra kernels shared by the spectral pipeline.
// All kernels perform strict fail-fast validation, return plain sentinels
// wrapped via matrixErrorf at the facade, and never mutate operands unless
// the doc comment says "in place".

package matrix

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opMul        = "Mul"
	opTranspose  = "Transpose"
	opScale      = "Scale"
	opScaleCol   = "ScaleColumn"
	opMaxAbs     = "MaxAbs"
	opSymmetrize = "SymmetrizeFromLower"
)

// matrixErrorf wraps err with an operation tag, preserving the original error
// via %w so callers can still match sentinels with errors.Is.
// Call only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul computes the matrix product a·b into a fresh Dense.
//
// Stage 1 (Validate): both operands non-nil, a.Cols == b.Rows.
// Stage 2 (Execute): accumulate row-by-row in i→k→j order so the inner loop
// walks both operands contiguously.
// Complexity: O(a.Rows · a.Cols · b.Cols) time, O(a.Rows · b.Cols) memory.
func Mul(a, b *Dense) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if a.c != b.r {
		return nil, matrixErrorf(opMul, ErrDimensionMismatch)
	}

	out := &Dense{r: a.r, c: b.c, data: make([]float64, a.r*b.c)}
	for i := 0; i < a.r; i++ {
		arow := a.data[i*a.c : (i+1)*a.c]
		orow := out.data[i*out.c : (i+1)*out.c]
		for k, aik := range arow {
			if aik == 0 {
				continue
			}
			floats.AddScaled(orow, aik, b.data[k*b.c:(k+1)*b.c])
		}
	}

	return out, nil
}

// Transpose returns a new matrix with rows and columns exchanged.
// Complexity: O(r*c) time and memory.
func Transpose(m *Dense) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	out := &Dense{r: m.c, c: m.r, data: make([]float64, len(m.data))}
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			out.data[j*out.c+i] = m.data[i*m.c+j]
		}
	}

	return out, nil
}

// Scale multiplies every entry of m by alpha, in place.
// Complexity: O(r*c) time, O(1) memory.
func Scale(alpha float64, m *Dense) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(opScale, err)
	}
	floats.Scale(alpha, m.data)

	return nil
}

// ScaleColumn multiplies column j of m by alpha, in place.
// Returns ErrOutOfRange on an invalid column index.
// Complexity: O(r) time, O(1) memory.
func ScaleColumn(alpha float64, m *Dense, j int) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(opScaleCol, err)
	}
	if j < 0 || j >= m.c {
		return matrixErrorf(opScaleCol, ErrOutOfRange)
	}
	for i := 0; i < m.r; i++ {
		m.data[i*m.c+j] *= alpha
	}

	return nil
}

// MaxAbs returns the largest absolute entry of m (the max norm).
// Complexity: O(r*c) time.
func MaxAbs(m *Dense) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opMaxAbs, err)
	}

	return floats.Norm(m.data, math.Inf(1)), nil
}

// SymmetrizeFromLower builds a fully symmetric matrix from the lower
// triangle and diagonal of m; the strict upper triangle of m is ignored.
// This is the ingestion step for routines whose contract is "only the
// lower-triangular part carries information".
//
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(n²) time and memory.
func SymmetrizeFromLower(m *Dense) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opSymmetrize, err)
	}

	n := m.r
	out := &Dense{r: n, c: n, data: make([]float64, n*n)}
	for i := 0; i < n; i++ {
		for j := 0; j <= i; j++ {
			v := m.data[i*n+j]
			out.data[i*n+j] = v
			out.data[j*n+i] = v
		}
	}

	return out, nil
}

// EqualApprox reports whether a and b have the same shape and entries equal
// within tol (absolute-or-relative, per floats.EqualApprox).
// Complexity: O(r*c) time.
func EqualApprox(a, b *Dense, tol float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.r != b.r || a.c != b.c {
		return false
	}

	return floats.EqualApprox(a.data, b.data, tol)
}
