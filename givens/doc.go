// Package givens implements the 2D rotation primitive used by the
// tridiagonal QR iteration, plus the closed-form symmetric 2×2
// eigenproblem it shares with the base-case solver.
//
// Description:
//
//	A Givens rotation G(c, s) is the 2×2 orthogonal matrix
//
//	    | c  -s |
//	    | s   c |     with c² + s² = 1.
//
//	CancelY builds, for a 2-vector v = (x, y), the rotation with
//	G·v = (‖v‖, 0): it "cancels" the second component. Applied as a
//	similarity transform to adjacent rows/columns of a tridiagonal
//	matrix, a chain of such rotations chases the bulge introduced by a
//	shifted QR step back off the band.
//
// Degeneracy:
//
//	When y == 0 there is nothing to cancel and no rotation direction is
//	defined; CancelY reports ok=false and callers break out of the sweep.
//	This is a normal control-flow outcome, not an error.
//
// Complexity:
//
//	Construction and inversion are O(1); ApplyToColumns is O(rows).
package givens
