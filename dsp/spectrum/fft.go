package spectrum

import (
	"errors"
	"fmt"
	"math/cmplx"

	algofft "github.com/MeKo-Christian/algo-fft"
	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/cwbudde/algo-eeg/dsp/core"
)

var (
	// ErrEmptyInput indicates a transform or estimate over no samples.
	ErrEmptyInput = errors.New("spectrum: empty input")
	// ErrBinCount indicates a half spectrum that does not match the requested length.
	ErrBinCount = errors.New("spectrum: bin count does not match length")
)

// forwardFunc computes the unnormalized forward DFT of src into dst.
type forwardFunc func(dst, src []complex128) error

// minPlanLength is the shortest power-of-two length routed to algo-fft.
const minPlanLength = 64

// newForward selects a complex forward transform of length n. gonum's
// mixed-radix FFT serves every length algo-fft does not plan.
func newForward(n int) forwardFunc {
	if n >= minPlanLength && core.IsPowerOfTwo(n) {
		if plan, err := algofft.NewPlan64(n); err == nil {
			return plan.Forward
		}
	}

	fft := fourier.NewCmplxFFT(n)
	return func(dst, src []complex128) error {
		fft.Coefficients(dst, src)
		return nil
	}
}

// RealFFT returns the n/2+1 non-negative frequency bins of the DFT of x.
func RealFFT(x []float64) ([]complex128, error) {
	n := len(x)
	if n == 0 {
		return nil, ErrEmptyInput
	}

	forward := newForward(n)

	in := make([]complex128, n)
	for i, v := range x {
		in[i] = complex(v, 0)
	}

	out := make([]complex128, n)
	if err := forward(out, in); err != nil {
		return nil, fmt.Errorf("spectrum: forward FFT failed: %w", err)
	}

	return out[:n/2+1], nil
}

// InverseRealFFT reconstructs n real samples from the n/2+1 non-negative
// frequency bins of a real signal. Imaginary parts of the DC and (for even n)
// Nyquist bins are ignored.
func InverseRealFFT(bins []complex128, n int) ([]float64, error) {
	if n <= 0 {
		return nil, ErrEmptyInput
	}
	if len(bins) != n/2+1 {
		return nil, fmt.Errorf("%w: %d bins for length %d", ErrBinCount, len(bins), n)
	}

	forward := newForward(n)

	// x = conj(DFT(conj(X))) / n over the Hermitian-extended spectrum.
	full := make([]complex128, n)
	for k, b := range bins {
		full[k] = cmplx.Conj(b)
	}
	for k := 1; k < (n+1)/2; k++ {
		full[n-k] = bins[k]
	}

	out := make([]complex128, n)
	if err := forward(out, full); err != nil {
		return nil, fmt.Errorf("spectrum: inverse FFT failed: %w", err)
	}

	scale := 1 / float64(n)
	y := make([]float64, n)
	for i, c := range out {
		y[i] = real(c) * scale
	}

	return y, nil
}

// BinFrequencies returns the frequencies k*sampleRate/n for k = 0..n/2.
func BinFrequencies(n int, sampleRate float64) []float64 {
	if n <= 0 {
		return nil
	}
	out := make([]float64, n/2+1)
	df := sampleRate / float64(n)
	for k := range out {
		out[k] = float64(k) * df
	}
	return out
}
