// Package matrix offers the dense storage primitive and the small set of
// linear-algebra kernels the spectral pipeline is built on.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked At/Set and a
//     RawData view for hot kernels.
//   - Construction helpers: NewDense, NewDenseFromRows, Identity,
//     SymmetrizeFromLower (mirror the lower triangle).
//   - Kernels: Mul, Transpose, Scale, ScaleColumn, MaxAbs, EqualApprox.
//   - Validators: ValidateNotNil, ValidateSquare, ValidateSameShape —
//     plain-sentinel guards shared by every facade.
//
// Error policy:
//
//	All user-triggered failures surface as "matrix: ..." sentinels
//	(ErrBadShape, ErrOutOfRange, ErrDimensionMismatch, ErrNonSquare,
//	ErrNilMatrix, ErrRagged), wrapped with an operation tag and matched
//	via errors.Is. Nothing in this package panics on user input.
//
// Determinism:
//
//	Every kernel iterates in a fixed order and allocates exactly one
//	result; outputs are bit-for-bit reproducible for fixed inputs.
package matrix
