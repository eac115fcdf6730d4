package eigen_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/spectral/eigen"
	"github.com/katalvlaran/spectral/matrix"
)

// benchSymmetric builds a deterministic random n×n symmetric matrix.
func benchSymmetric(b *testing.B, n int) *matrix.Dense {
	b.Helper()
	rng := rand.New(rand.NewSource(42))
	m, err := matrix.NewDense(n, n)
	if err != nil {
		b.Fatalf("setup NewDense failed: %v", err)
	}
	for i := 0; i < n; i++ {
		for j := 0; j <= i; j++ {
			v := 2*rng.Float64() - 1
			_ = m.Set(i, j, v)
			_ = m.Set(j, i, v)
		}
	}

	return m
}

// BenchmarkDecompose measures the full pipeline (normalize, tridiagonalize,
// QR iterate) on random symmetric matrices of growing size.
// Complexity: O(n³).
func BenchmarkDecompose(b *testing.B) {
	for _, n := range []int{10, 50, 100} {
		m := benchSymmetric(b, n)
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := eigen.Decompose(m); err != nil {
					b.Fatalf("Decompose failed: %v", err)
				}
			}
		})
	}
}

// BenchmarkRecompose measures the reconstruction kernel alone.
func BenchmarkRecompose(b *testing.B) {
	m := benchSymmetric(b, 100)
	d, err := eigen.Decompose(m)
	if err != nil {
		b.Fatalf("setup Decompose failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = d.Recompose()
	}
}
