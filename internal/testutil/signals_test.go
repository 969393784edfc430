package testutil

import (
	"math"
	"testing"
)

func TestDeterministicSine(t *testing.T) {
	s := DeterministicSine(10, 100, 1.0, 100)
	if len(s) != 100 {
		t.Fatalf("len = %d, want 100", len(s))
	}
	if math.Abs(s[0]) > 1e-15 {
		t.Fatalf("s[0] = %v, want 0", s[0])
	}
	for i, v := range s {
		if v < -1 || v > 1 {
			t.Fatalf("s[%d] = %v out of range", i, v)
		}
	}
}

func TestDeterministicNoiseReproducible(t *testing.T) {
	a := DeterministicNoise(42, 0.5, 64)
	b := DeterministicNoise(42, 0.5, 64)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("non-deterministic at index %d", i)
		}
		if math.Abs(a[i]) > 0.5 {
			t.Fatalf("a[%d] = %v exceeds amplitude", i, a[i])
		}
	}
}

func TestJitteredTimesStrictlyIncreasing(t *testing.T) {
	times := JitteredTimes(1, 250, 0.3, 500)
	RequireStrictlyIncreasing(t, times)
	for i, v := range times {
		if math.Abs(v-float64(i)/250) > 0.3/250+1e-15 {
			t.Fatalf("times[%d] = %v displaced too far", i, v)
		}
	}
}

func TestUniformTimesAndSineAt(t *testing.T) {
	times := UniformTimes(1, 4, 5)
	RequireSliceNearlyEqual(t, times, []float64{1, 1.25, 1.5, 1.75, 2}, 1e-15)

	s := SineAt([]float64{0, 0.25}, 1, 2)
	RequireSliceNearlyEqual(t, s, []float64{0, 2}, 1e-12)
}
