// Package frequency provides descriptors of a power spectral density.
package frequency

import "math"

// Stats holds shape descriptors of a one-sided PSD over explicit frequencies.
type Stats struct {
	BinCount  int
	PeakFreq  float64 // frequency of the largest power bin (Hz)
	PeakPower float64
	Centroid  float64 // power-weighted mean frequency (Hz)
	Spread    float64 // power-weighted standard deviation around Centroid (Hz)
	Edge95    float64 // frequency below which 95% of summed power lies (Hz)
}

// Calculate computes descriptors of the PSD given by freq and power.
//
// freq must be increasing and have the same length as power. Negative power
// values are treated as zero. A zero-power spectrum yields zero descriptors.
func Calculate(freq, power []float64) Stats {
	n := len(power)
	if n == 0 || len(freq) != n {
		return Stats{}
	}

	s := Stats{BinCount: n}

	var sum, weighted float64
	for i, p := range power {
		if p < 0 {
			p = 0
		}
		if p > s.PeakPower {
			s.PeakPower = p
			s.PeakFreq = freq[i]
		}
		sum += p
		weighted += p * freq[i]
	}
	if sum == 0 {
		return Stats{BinCount: n}
	}

	s.Centroid = weighted / sum

	var variance float64
	for i, p := range power {
		if p < 0 {
			continue
		}
		d := freq[i] - s.Centroid
		variance += p * d * d
	}
	s.Spread = math.Sqrt(variance / sum)
	s.Edge95 = EdgeFrequency(freq, power, 0.95)

	return s
}

// PeakFrequency returns the frequency of the largest power bin, or 0 when
// the input is empty or mismatched.
func PeakFrequency(freq, power []float64) float64 {
	return Calculate(freq, power).PeakFreq
}

// EdgeFrequency returns the lowest frequency at which the cumulative summed
// power reaches fraction of the total. fraction is clamped to [0, 1].
func EdgeFrequency(freq, power []float64, fraction float64) float64 {
	if len(power) == 0 || len(freq) != len(power) {
		return 0
	}
	fraction = math.Max(0, math.Min(1, fraction))

	var total float64
	for _, p := range power {
		if p > 0 {
			total += p
		}
	}
	if total == 0 {
		return 0
	}

	target := fraction * total
	var acc float64
	for i, p := range power {
		if p > 0 {
			acc += p
		}
		if acc >= target {
			return freq[i]
		}
	}

	return freq[len(freq)-1]
}
