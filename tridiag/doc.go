// Package tridiag reduces a dense real symmetric matrix to symmetric
// tridiagonal form via Householder reflections.
//
// Description:
//
//	Given a symmetric M (only the lower triangle and diagonal are read),
//	Decompose produces an orthogonal Q, a main diagonal d and a
//	sub-diagonal e such that
//
//	    Qᵗ · M · Q = T,   T tridiagonal with T[i][i] = d[i],
//	                      T[i+1][i] = T[i][i+1] = e[i].
//
//	Equivalently M = Q·T·Qᵗ, so an eigendecomposition of T lifts to one
//	of M through Q. This is the standard preprocessing step of the
//	symmetric QR eigenvalue algorithm: the iteration then works on two
//	vectors instead of a full matrix.
//
// Algorithm outline:
//  1. Mirror the lower triangle into a full working copy.
//  2. For k = 0..n-3: form the Householder vector from column k below the
//     diagonal (sign chosen to avoid cancellation), apply the reflector
//     H = I - 2vvᵗ as a similarity transform to the trailing block, and
//     accumulate Q ← Q·H.
//  3. Read d from the diagonal and e from the first sub-diagonal.
//
// A zero sub-column needs no reflection and is skipped, so an already
// tridiagonal (or diagonal) input returns Q = I unchanged.
//
// Complexity:
//
//	Time   O(n³)
//	Memory O(n²) for the working copy and Q.
package tridiag
