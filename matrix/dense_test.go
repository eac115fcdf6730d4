package matrix_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/spectral/matrix"
)

func TestNewDense_InvalidShape(t *testing.T) {
	if _, err := matrix.NewDense(0, 3); !errors.Is(err, matrix.ErrBadShape) {
		t.Fatalf("NewDense(0,3): expected ErrBadShape, got %v", err)
	}
	if _, err := matrix.NewDense(3, -1); !errors.Is(err, matrix.ErrBadShape) {
		t.Fatalf("NewDense(3,-1): expected ErrBadShape, got %v", err)
	}
}

func TestNewDenseFromRows_Ragged(t *testing.T) {
	_, err := matrix.NewDenseFromRows([][]float64{{1, 2}, {3}})
	if !errors.Is(err, matrix.ErrRagged) {
		t.Fatalf("expected ErrRagged, got %v", err)
	}
}

func TestNewDenseFromRows_Empty(t *testing.T) {
	if _, err := matrix.NewDenseFromRows(nil); !errors.Is(err, matrix.ErrBadShape) {
		t.Fatalf("expected ErrBadShape, got %v", err)
	}
}

func TestDense_AtSetBounds(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	if err != nil {
		t.Fatalf("NewDense failed: %v", err)
	}
	if err = m.Set(1, 2, 7.5); err != nil {
		t.Fatalf("Set(1,2) failed: %v", err)
	}
	got, err := m.At(1, 2)
	if err != nil || got != 7.5 {
		t.Fatalf("At(1,2) = %v, %v; want 7.5, nil", got, err)
	}

	if _, err = m.At(2, 0); !errors.Is(err, matrix.ErrOutOfRange) {
		t.Errorf("At(2,0): expected ErrOutOfRange, got %v", err)
	}
	if err = m.Set(0, 3, 1); !errors.Is(err, matrix.ErrOutOfRange) {
		t.Errorf("Set(0,3): expected ErrOutOfRange, got %v", err)
	}
	if _, err = m.At(-1, 0); !errors.Is(err, matrix.ErrOutOfRange) {
		t.Errorf("At(-1,0): expected ErrOutOfRange, got %v", err)
	}
}

func TestDense_CloneIsIndependent(t *testing.T) {
	m, _ := matrix.NewDenseFromRows([][]float64{{1, 2}, {3, 4}})
	c := m.Clone()
	if err := c.Set(0, 0, 99); err != nil {
		t.Fatalf("Set on clone failed: %v", err)
	}
	orig, _ := m.At(0, 0)
	if orig != 1 {
		t.Fatalf("mutating the clone leaked into the original: got %v", orig)
	}
}

func TestIdentity(t *testing.T) {
	id, err := matrix.Identity(3)
	if err != nil {
		t.Fatalf("Identity failed: %v", err)
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			got, _ := id.At(i, j)
			if got != want {
				t.Errorf("Identity(3)[%d][%d] = %v; want %v", i, j, got, want)
			}
		}
	}
}

func TestDense_RowView(t *testing.T) {
	m, _ := matrix.NewDenseFromRows([][]float64{{1, 2}, {3, 4}})
	row, err := m.RowView(1)
	if err != nil {
		t.Fatalf("RowView(1) failed: %v", err)
	}
	row[0] = 9 // the view is mutable
	got, _ := m.At(1, 0)
	if got != 9 {
		t.Fatalf("RowView mutation not visible: got %v", got)
	}
	if _, err = m.RowView(5); !errors.Is(err, matrix.ErrOutOfRange) {
		t.Fatalf("RowView(5): expected ErrOutOfRange, got %v", err)
	}
}
