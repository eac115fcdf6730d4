// Package eigen computes the eigendecomposition of a dense real symmetric
// matrix with the implicitly shifted (Wilkinson) tridiagonal QR iteration.
//
// Description:
//
//	Decompose reads the lower triangle and diagonal of a square matrix M
//	and returns an orthogonal matrix V of eigenvectors and a vector λ of
//	unsorted eigenvalues with
//
//	    M = V · diag(λ) · Vᵗ,   Vᵗ·V ≈ I.
//
//	Eigenvalue i pairs with column i of V. Callers that need sorted
//	eigenvalues sort externally.
//
// Algorithm outline:
//  1. Scale M by 1/max|entry| (conditioning; skipped for the zero matrix).
//  2. Householder-reduce to tridiagonal form (package tridiag), yielding
//     the accumulator Q and the diag/off-diag vectors the iteration owns.
//  3. Repeat until fully deflated: delimit the active window by scanning
//     the off-diagonal for negligible entries (splitting off converged
//     blocks), then either chase one Wilkinson-shifted bulge through the
//     window (size > 2) or solve the 2×2 block in closed form (size 2).
//     Each Givens rotation is folded into Q.
//  4. Rescale the eigenvalues by the normalization factor.
//
// Iteration budget:
//
//	DecomposeWith takes a cap on the total number of sweep/solve cycles
//	across the whole matrix — one global counter, never reset per window.
//	Exhausting it returns ErrIterationLimit and no result: the caller
//	retries with a larger budget or looser tolerance. A cap of
//	UnboundedIterations (0) lets the iteration run to convergence.
//
// Numerical degeneracies (a rotation with nothing to cancel, a basis
// vector too short to normalize) end the current cycle early and are left
// to the next deflation scan; they are not errors.
//
// Complexity:
//
//	Time   O(n³) dominated by the tridiagonalization and the rotation
//	       accumulation (O(n) sweeps of O(n²) work in practice).
//	Memory O(n²).
package eigen
