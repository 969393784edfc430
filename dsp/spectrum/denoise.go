package spectrum

import (
	"fmt"

	timestats "github.com/cwbudde/algo-eeg/stats/time"
)

// DefaultDenoiseFactor is the threshold multiplier applied to the median bin
// magnitude by [Denoise].
const DefaultDenoiseFactor = 3.0

// DenoiseThreshold returns median(|X[k]|) * factor over the given bins.
func DenoiseThreshold(bins []complex128, factor float64) float64 {
	if len(bins) == 0 {
		return 0
	}
	return timestats.Median(Magnitude(bins)) * factor
}

// Denoise zeroes every real-DFT coefficient of x whose magnitude falls below
// median(|X|)*factor and transforms back to a sequence of len(x) samples.
//
// Coefficients at or above the threshold pass unchanged, so applying Denoise
// twice with the same factor yields the same result as applying it once. A
// threshold of zero returns the input unchanged up to rounding.
func Denoise(x []float64, factor float64) ([]float64, error) {
	if len(x) == 0 {
		return nil, ErrEmptyInput
	}

	bins, err := RealFFT(x)
	if err != nil {
		return nil, fmt.Errorf("spectrum: denoise: %w", err)
	}

	mags := Magnitude(bins)
	threshold := timestats.Median(mags) * factor
	for k, m := range mags {
		if m < threshold {
			bins[k] = 0
		}
	}

	y, err := InverseRealFFT(bins, len(x))
	if err != nil {
		return nil, fmt.Errorf("spectrum: denoise: %w", err)
	}

	return y, nil
}
