// Package eigen: sentinel error set. All public entry points return these
// sentinels (wrapped with an operation tag where context helps) and tests
// match them via errors.Is. Nothing in this package panics on user input.

package eigen

import "errors"

var (
	// ErrNilMatrix indicates a nil input matrix.
	ErrNilMatrix = errors.New("eigen: nil matrix")

	// ErrNotSquare is the contract violation for a non-square input: a
	// symmetric matrix is square by definition, so this signals a caller
	// bug rather than a runtime condition. It is reported immediately,
	// before any work.
	ErrNotSquare = errors.New("eigen: matrix is not square")

	// ErrIterationLimit is returned by DecomposeWith when the global
	// iteration budget is exhausted before full deflation. No partial
	// decomposition accompanies it; retry with a larger budget or a
	// looser eps.
	ErrIterationLimit = errors.New("eigen: iteration limit reached before convergence")
)
