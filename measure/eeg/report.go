package eeg

import (
	"encoding/json"

	"github.com/cwbudde/algo-eeg/dsp/spectrum"
	"github.com/cwbudde/algo-eeg/stats/frequency"
)

// Reason explains a failed report.
type Reason string

const (
	ReasonCleaning  Reason = "insufficient samples after cleaning"
	ReasonFiltering Reason = "insufficient samples after filtering"
)

// Diagnostics records what each stage of one run did.
type Diagnostics struct {
	Rows                int     // rows in the input table
	ValidRows           int     // rows with a valid time and amplitude
	DuplicatesRemoved   int     // samples merged into a shared timestamp
	NonMonotonicRemoved int     // samples dropped for a non-increasing time
	Interval            float64 // resampling step in seconds
	SampleRate          float64 // 1 / Interval in Hz
	Resampled           int     // samples on the uniform grid
	BandLimited         bool    // false when the filter band collapsed and was skipped
	Segment             int     // Welch segment length
	Segments            int     // Welch segments averaged
}

// Report is the result of one analysis. When OK is false only Reason and N
// are meaningful.
type Report struct {
	OK     bool
	Reason Reason
	// N is the sample count at the failing gate, or the filtered sample
	// count on success.
	N int

	Band          BandType
	Range         Range
	SampleRate    float64
	Duration      float64
	TotalPower    float64
	BandPower     float64
	RelativePower float64
	PSD           spectrum.PSD
	Diagnostics   Diagnostics
}

func failure(reason Reason, n int) Report {
	return Report{Reason: reason, N: n}
}

// PeakFrequency returns the frequency of the largest PSD bin.
func (r Report) PeakFrequency() float64 {
	return frequency.PeakFrequency(r.PSD.Freq, r.PSD.Power)
}

// SpectralStats summarizes the shape of the PSD.
func (r Report) SpectralStats() frequency.Stats {
	return frequency.Calculate(r.PSD.Freq, r.PSD.Power)
}

// ToMap returns the key/value form of the report. A failure carries exactly
// ok, reason and n.
func (r Report) ToMap() map[string]any {
	if !r.OK {
		return map[string]any{
			"ok":     false,
			"reason": string(r.Reason),
			"n":      r.N,
		}
	}

	d := r.Diagnostics
	return map[string]any{
		"ok":                  true,
		"band":                string(r.Band),
		"band_range_hz":       []float64{r.Range.Low, r.Range.High},
		"fs_hz":               r.SampleRate,
		"duration_s":          r.Duration,
		"n_samples":           r.N,
		"total_power":         r.TotalPower,
		"band_power":          r.BandPower,
		"relative_band_power": r.RelativePower,
		"psd_f":               r.PSD.Freq,
		"psd_pxx":             r.PSD.Power,
		"stages": map[string]any{
			"duplicates_removed":   d.DuplicatesRemoved,
			"nonmonotonic_removed": d.NonMonotonicRemoved,
			"interpolation_dt":     d.Interval,
			"fs_estimated":         d.SampleRate,
			"n_regular":            d.Resampled,
		},
	}
}

// MarshalJSON encodes ToMap.
func (r Report) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.ToMap())
}
