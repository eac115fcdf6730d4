package givens_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spectral/givens"
	"github.com/katalvlaran/spectral/matrix"
)

// apply multiplies the rotation matrix [[C,-S],[S,C]] by the column
// vector (x, y).
func apply(r givens.Rotation, x, y float64) (float64, float64) {
	return r.C*x - r.S*y, r.S*x + r.C*y
}

func TestCancelY_ZeroesSecondComponent(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 100; i++ {
		x := rng.NormFloat64() * 10
		y := rng.NormFloat64() * 10
		if y == 0 {
			continue
		}

		rot, norm, ok := givens.CancelY(x, y)
		require.True(t, ok)
		require.InDelta(t, math.Hypot(x, y), norm, 1e-12)

		gx, gy := apply(rot, x, y)
		require.InDelta(t, norm, gx, 1e-12, "first component must carry the length")
		require.InDelta(t, 0, gy, 1e-12, "second component must vanish")

		// Unit rotation: C² + S² == 1.
		require.InDelta(t, 1, rot.C*rot.C+rot.S*rot.S, 1e-12)
	}
}

func TestCancelY_DegenerateDirection(t *testing.T) {
	_, _, ok := givens.CancelY(3.5, 0)
	require.False(t, ok, "y == 0 has nothing to cancel")
	_, _, ok = givens.CancelY(0, 0)
	require.False(t, ok)
}

func TestCancelY_ExtremeMagnitudes(t *testing.T) {
	// Naive x²+y² would overflow here; Hypot-based construction must not.
	rot, norm, ok := givens.CancelY(1e200, 1e200)
	require.True(t, ok)
	require.False(t, math.IsInf(norm, 0))
	require.InDelta(t, 1, rot.C*rot.C+rot.S*rot.S, 1e-12)
}

func TestInverse_RoundTrip(t *testing.T) {
	rot, _, ok := givens.CancelY(1, 2)
	require.True(t, ok)

	x, y := 0.3, -1.7
	gx, gy := apply(rot, x, y)
	bx, by := apply(rot.Inverse(), gx, gy)
	require.InDelta(t, x, bx, 1e-12)
	require.InDelta(t, y, by, 1e-12)
}

func TestApplyToColumns_MatchesMatrixProduct(t *testing.T) {
	m, err := matrix.NewDenseFromRows([][]float64{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	})
	require.NoError(t, err)

	rot, _, ok := givens.CancelY(3, 4)
	require.True(t, ok)

	// Explicit product m·G restricted to columns 0 and 2, where G embeds
	// [[C,-S],[S,C]] into the identity at those columns: right
	// multiplication combines columns, so
	//   col0' = C·col0 + S·col2, col2' = -S·col0 + C·col2.
	want := m.Clone()
	for row := 0; row < 3; row++ {
		a, _ := m.At(row, 0)
		b, _ := m.At(row, 2)
		require.NoError(t, want.Set(row, 0, a*rot.C+b*rot.S))
		require.NoError(t, want.Set(row, 2, -a*rot.S+b*rot.C))
	}

	require.NoError(t, rot.ApplyToColumns(m, 0, 2))
	require.True(t, matrix.EqualApprox(m, want, 1e-15))
}

func TestApplyToColumns_Validation(t *testing.T) {
	rot := givens.New(1, 0)
	require.ErrorIs(t, rot.ApplyToColumns(nil, 0, 1), matrix.ErrNilMatrix)

	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	require.ErrorIs(t, rot.ApplyToColumns(m, 0, 5), matrix.ErrOutOfRange)
}

func TestApplyToColumns_InverseUndoes(t *testing.T) {
	m, err := matrix.NewDenseFromRows([][]float64{
		{1, 2},
		{3, 4},
	})
	require.NoError(t, err)
	orig := m.Clone()

	rot, _, ok := givens.CancelY(-2, 5)
	require.True(t, ok)
	require.NoError(t, rot.ApplyToColumns(m, 0, 1))
	require.NoError(t, rot.Inverse().ApplyToColumns(m, 0, 1))
	require.True(t, matrix.EqualApprox(m, orig, 1e-14))
}

func TestEigen2_KnownBlocks(t *testing.T) {
	cases := []struct {
		name     string
		a, b, c  float64
		wantL1   float64
		wantL2   float64
		absError float64
	}{
		{name: "diagonal", a: 42, b: 0, c: 64, wantL1: 64, wantL2: 42},
		{name: "zero trace", a: 0, b: 1, c: 0, wantL1: 1, wantL2: -1},
		{name: "rank one", a: 2, b: 4, c: 8, wantL1: 10, wantL2: 0},
		{name: "equal diagonal", a: 3, b: 2, c: 3, wantL1: 5, wantL2: 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			l1, l2 := givens.Eigen2(tc.a, tc.b, tc.c)
			require.InDelta(t, tc.wantL1, l1, 1e-12)
			require.InDelta(t, tc.wantL2, l2, 1e-12)
		})
	}
}

func TestEigen2_TraceAndDeterminant(t *testing.T) {
	// Eigenvalues of a 2×2 must preserve trace and determinant.
	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 200; i++ {
		a := rng.NormFloat64() * 5
		b := rng.NormFloat64() * 5
		c := rng.NormFloat64() * 5
		l1, l2 := givens.Eigen2(a, b, c)
		require.InDelta(t, a+c, l1+l2, 1e-9)
		require.InDelta(t, a*c-b*b, l1*l2, 1e-9)
	}
}
