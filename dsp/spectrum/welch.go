package spectrum

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-eeg/dsp/core"
	"github.com/cwbudde/algo-eeg/dsp/window"
	timestats "github.com/cwbudde/algo-eeg/stats/time"
)

const (
	// MinSegmentLength and MaxSegmentLength bound the rate-derived Welch segment.
	MinSegmentLength = 256
	MaxSegmentLength = 2048
)

// ErrInvalidRate indicates a non-positive or non-finite sample rate.
var ErrInvalidRate = errors.New("spectrum: invalid sample rate")

// PSD is a one-sided power spectral density estimate.
type PSD struct {
	Freq          []float64 // Hz, increasing from 0 to Nyquist
	Power         []float64 // density units per Hz, non-negative
	SegmentLength int
	Segments      int
}

// Len returns the number of frequency bins.
func (p PSD) Len() int { return len(p.Freq) }

// SegmentLength returns the Welch segment length for a sample rate: two
// seconds of signal, clamped to [MinSegmentLength, MaxSegmentLength].
func SegmentLength(sampleRate float64) int {
	return int(core.Clamp(2*sampleRate, MinSegmentLength, MaxSegmentLength))
}

type welchConfig struct {
	segmentLength int
	overlap       int
	window        window.Type
}

// WelchOption configures [Welch].
type WelchOption func(*welchConfig)

// WithSegmentLength overrides the rate-derived segment length.
func WithSegmentLength(n int) WelchOption {
	return func(cfg *welchConfig) {
		if n > 0 {
			cfg.segmentLength = n
		}
	}
}

// WithOverlap sets the number of samples shared by consecutive segments.
// The default is half the segment length.
func WithOverlap(n int) WelchOption {
	return func(cfg *welchConfig) {
		if n >= 0 {
			cfg.overlap = n
		}
	}
}

// WithWindow selects the segment taper. The default is a periodic Hann window.
func WithWindow(t window.Type) WelchOption {
	return func(cfg *welchConfig) {
		cfg.window = t
	}
}

// Welch estimates the power spectral density of x with Welch's averaged
// periodogram: segments of SegmentLength(sampleRate) samples overlapping by
// half, each mean-removed and tapered, density-scaled and averaged.
//
// A segment longer than x is shortened to len(x). The returned power is
// one-sided: interior bins carry the power of their negative-frequency mirror.
func Welch(x []float64, sampleRate float64, opts ...WelchOption) (PSD, error) {
	if len(x) == 0 {
		return PSD{}, ErrEmptyInput
	}
	if !core.IsFinite(sampleRate) || sampleRate <= 0 {
		return PSD{}, fmt.Errorf("%w: %v", ErrInvalidRate, sampleRate)
	}

	cfg := welchConfig{
		segmentLength: SegmentLength(sampleRate),
		overlap:       -1,
		window:        window.TypeHann,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	nseg := cfg.segmentLength
	if nseg > len(x) {
		nseg = len(x)
	}
	overlap := cfg.overlap
	if overlap < 0 || overlap >= nseg {
		overlap = nseg / 2
	}
	step := nseg - overlap
	segments := (len(x) - overlap) / step

	taper := window.Generate(cfg.window, nseg, window.WithPeriodic())
	energy := window.SumSquares(taper)
	if energy == 0 {
		return PSD{}, fmt.Errorf("spectrum: window %q has zero energy", window.Info(cfg.window).Name)
	}

	acc := make([]float64, nseg/2+1)
	seg := make([]float64, nseg)
	for s := 0; s < segments; s++ {
		start := s * step
		copy(seg, x[start:start+nseg])
		timestats.RemoveMean(seg)
		if err := window.Apply(seg, taper); err != nil {
			return PSD{}, fmt.Errorf("spectrum: welch: %w", err)
		}

		bins, err := RealFFT(seg)
		if err != nil {
			return PSD{}, fmt.Errorf("spectrum: welch: %w", err)
		}
		floats.Add(acc, Power(bins))
	}

	floats.Scale(1/(sampleRate*energy*float64(segments)), acc)

	last := len(acc)
	if nseg%2 == 0 {
		last--
	}
	for k := 1; k < last; k++ {
		acc[k] *= 2
	}

	return PSD{
		Freq:          BinFrequencies(nseg, sampleRate),
		Power:         acc,
		SegmentLength: nseg,
		Segments:      segments,
	}, nil
}
