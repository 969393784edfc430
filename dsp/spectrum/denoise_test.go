package spectrum

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-eeg/internal/testutil"
)

func rms(x []float64) float64 {
	var s float64
	for _, v := range x {
		s += v * v
	}
	return math.Sqrt(s / float64(len(x)))
}

func TestDenoisePreservesLength(t *testing.T) {
	for _, n := range []int{2, 9, 256, 1000} {
		x := testutil.DeterministicNoise(7, 1, n)
		y, err := Denoise(x, DefaultDenoiseFactor)
		if err != nil {
			t.Fatalf("n=%d: Denoise: %v", n, err)
		}
		if len(y) != n {
			t.Fatalf("n=%d: len=%d", n, len(y))
		}
		testutil.RequireFinite(t, y)
	}
}

func TestDenoiseIsIdempotent(t *testing.T) {
	clean := testutil.DeterministicSine(10, 100, 1, 1000)
	noise := testutil.DeterministicNoise(42, 0.3, 1000)
	x := make([]float64, len(clean))
	for i := range x {
		x[i] = clean[i] + noise[i]
	}

	once, err := Denoise(x, DefaultDenoiseFactor)
	if err != nil {
		t.Fatalf("Denoise: %v", err)
	}
	twice, err := Denoise(once, DefaultDenoiseFactor)
	if err != nil {
		t.Fatalf("Denoise: %v", err)
	}

	testutil.RequireSliceNearlyEqual(t, twice, once, 1e-9)
}

func TestDenoiseReducesBroadbandNoise(t *testing.T) {
	clean := testutil.DeterministicSine(10, 100, 1, 1000)
	noise := testutil.DeterministicNoise(3, 0.3, 1000)
	x := make([]float64, len(clean))
	for i := range x {
		x[i] = clean[i] + noise[i]
	}

	y, err := Denoise(x, DefaultDenoiseFactor)
	if err != nil {
		t.Fatalf("Denoise: %v", err)
	}

	before := make([]float64, len(x))
	after := make([]float64, len(x))
	for i := range x {
		before[i] = x[i] - clean[i]
		after[i] = y[i] - clean[i]
	}
	if rms(after) >= rms(before) {
		t.Fatalf("residual rms %v not below input noise rms %v", rms(after), rms(before))
	}
}

func TestDenoiseZeroFactorPassThrough(t *testing.T) {
	x := testutil.DeterministicNoise(11, 1, 300)
	y, err := Denoise(x, 0)
	if err != nil {
		t.Fatalf("Denoise: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, y, x, 1e-9)
}

func TestDenoiseMasksExactlyToZero(t *testing.T) {
	// Strong tone on bin 8 plus weak tones on the remaining bins.
	const n = 64
	x := make([]float64, n)
	for i := range x {
		x[i] = 10 * math.Cos(2*math.Pi*8*float64(i)/n)
		for k := 1; k < n/2; k++ {
			if k != 8 {
				x[i] += 0.01 * math.Cos(2*math.Pi*float64(k)*float64(i)/n)
			}
		}
	}

	y, err := Denoise(x, DefaultDenoiseFactor)
	if err != nil {
		t.Fatalf("Denoise: %v", err)
	}

	bins, err := RealFFT(y)
	if err != nil {
		t.Fatalf("RealFFT: %v", err)
	}
	mags := Magnitude(bins)
	if math.Abs(mags[8]-10*n/2) > 1e-6 {
		t.Fatalf("tone bin magnitude = %v, want %v", mags[8], 10*n/2)
	}
	for k, m := range mags {
		if k != 8 && m > 1e-9 {
			t.Fatalf("bin %d magnitude = %v, want 0", k, m)
		}
	}
}

func TestDenoiseThreshold(t *testing.T) {
	bins := []complex128{1, 2i, 3, -4}
	if got := DenoiseThreshold(bins, 2); math.Abs(got-5) > 1e-12 {
		t.Fatalf("threshold = %v, want 5", got)
	}
	if DenoiseThreshold(nil, 3) != 0 {
		t.Fatal("expected 0 for empty bins")
	}
}
