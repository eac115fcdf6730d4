package eigen

import "math"

// WilkinsonShift returns the eigenvalue of the symmetric 2×2 matrix
//
//	| tmm  tmn |
//	| tmn  tnn |
//
// closest to its trailing entry tnn. Shifting the QR step by this value
// drives the trailing off-diagonal to zero cubically.
//
// The evaluation tnn - tmn² / (d + sign(d)·sqrt(d² + tmn²)) with
// d = (tmm - tnn)/2 avoids the catastrophic cancellation a naive
// quadratic-formula form suffers when tmm ≈ tnn. math.Copysign(1, d)
// yields ±1 for ±0, so with tmn ≠ 0 the denominator can never vanish:
// sqrt(d² + tmn²) > |d| and the sign term never cancels it.
//
// For tmn == 0 the block is already diagonal in that corner and tnn is
// returned exactly.
func WilkinsonShift(tmm, tnn, tmn float64) float64 {
	sqTmn := tmn * tmn
	if sqTmn == 0 {
		return tnn
	}
	d := (tmm - tnn) * 0.5

	return tnn - sqTmn/(d+math.Copysign(1, d)*math.Sqrt(d*d+sqTmn))
}
