// Package spectral is a pure-Go toolkit for dense real symmetric
// eigendecomposition — from matrix primitives to the implicitly shifted
// QR iteration.
//
// 🚀 What is spectral?
//
//	A small, deterministic numerical library that brings together:
//		• Dense storage: row-major float64 matrices with strict validation
//		• Givens rotations: construction, inversion, column updates
//		• Householder reduction: symmetric matrix → tridiagonal form
//		• Eigendecomposition: Wilkinson-shifted implicit QR with deflation
//		• Recomposition: rebuild V·diag(λ)·Vᵗ for verification
//
// ✨ Why choose spectral?
//
//   - Predictable – bit-for-bit reproducible output for a fixed input
//   - Rock-solid guarantees – sentinel errors, no panics on user input
//   - Pure Go – no cgo, no assembly
//   - Honest failure – an exhausted iteration budget yields an explicit
//     error, never a partial or corrupted decomposition
//
// Under the hood, everything is organized under four subpackages:
//
//	matrix/  — dense row-major storage, kernels and validators
//	givens/  — 2D rotation primitive and the closed-form 2×2 eigenproblem
//	tridiag/ — Householder tridiagonalization Qᵗ·M·Q = T
//	eigen/   — Wilkinson-shifted QR driver, deflation and recomposition
//
// Quick example:
//
//	m, _ := matrix.NewDenseFromRows([][]float64{
//	    {2, 0, 0},
//	    {1, 2, 0},
//	    {0, 1, 2},
//	})
//	d, err := eigen.Decompose(m) // reads the lower triangle only
//
// d.Values are the unsorted eigenvalues; column i of d.Vectors is the
// eigenvector paired with d.Values[i].
//
// Start with eigen.Decompose; reach for eigen.DecomposeWith when you need
// an explicit tolerance or an iteration budget.
//
//	go get github.com/katalvlaran/spectral/eigen
package spectral
