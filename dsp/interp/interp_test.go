package interp

import (
	"errors"
	"math"
	"testing"
)

func TestLinearInteriorAndKnots(t *testing.T) {
	xp := []float64{0, 1, 3}
	fp := []float64{0, 10, 30}

	got, err := Linear(xp, fp, []float64{0, 0.5, 1, 2, 3})
	if err != nil {
		t.Fatalf("Linear: %v", err)
	}

	want := []float64{0, 5, 10, 20, 30}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-12 {
			t.Fatalf("got[%d]=%v want %v", i, got[i], want[i])
		}
	}
}

func TestLinearClampsOutsideRange(t *testing.T) {
	got, err := Linear([]float64{1, 2}, []float64{-1, 1}, []float64{0, 2.5})
	if err != nil {
		t.Fatalf("Linear: %v", err)
	}
	if got[0] != -1 || got[1] != 1 {
		t.Fatalf("got %v, want [-1 1]", got)
	}
}

func TestLinearSinglePoint(t *testing.T) {
	got, err := Linear([]float64{5}, []float64{7}, []float64{4, 5, 6})
	if err != nil {
		t.Fatalf("Linear: %v", err)
	}
	for i, v := range got {
		if v != 7 {
			t.Fatalf("got[%d]=%v want 7", i, v)
		}
	}
}

func TestLinearRejectsInvalidInput(t *testing.T) {
	if _, err := Linear(nil, nil, []float64{1}); !errors.Is(err, ErrEmpty) {
		t.Fatalf("expected ErrEmpty, got %v", err)
	}
	if _, err := Linear([]float64{0, 1}, []float64{0}, nil); err == nil {
		t.Fatal("expected length mismatch error")
	}
	if _, err := Linear([]float64{0, 0}, []float64{0, 1}, nil); err == nil {
		t.Fatal("expected non-increasing error")
	}
}

func TestLinear2(t *testing.T) {
	if got := Linear2(0.25, 2, 4); got != 2.5 {
		t.Fatalf("Linear2 got %v want 2.5", got)
	}
}
