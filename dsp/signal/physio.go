package signal

import (
	"math"

	"github.com/cwbudde/algo-eeg/dsp/core"
)

// Waveform shapes of the synthetic physiological sources.
const (
	EEGAlphaHz        = 10.0
	EEGAlphaAmplitude = 0.8
	EEGNoiseSigma     = 0.2

	ECGPeriod = 0.8 // seconds, about 75 bpm

	PPGRateHz = 1.3

	gsrStart = 0.2
	gsrStep  = 0.003
)

func (g *Generator) at(i int) float64 {
	return float64(i) / g.cfg.SampleRate
}

// EEG generates a 10 Hz alpha rhythm with additive Gaussian noise.
func (g *Generator) EEG(samples int) ([]float64, error) {
	if err := g.check("eeg", samples); err != nil {
		return nil, err
	}
	out := make([]float64, samples)
	rng := g.rng()
	for i := range out {
		alpha := EEGAlphaAmplitude * math.Sin(2*math.Pi*EEGAlphaHz*g.at(i))
		out[i] = alpha + EEGNoiseSigma*rng.NormFloat64()
	}
	return out, nil
}

// ECG generates a crude PQRST train: a narrow QRS spike followed by a
// half-sine T wave, repeating every ECGPeriod.
func (g *Generator) ECG(samples int) ([]float64, error) {
	if err := g.check("ecg", samples); err != nil {
		return nil, err
	}
	out := make([]float64, samples)
	for i := range out {
		pos := math.Mod(g.at(i), ECGPeriod)
		switch {
		case pos < 0.02:
			d := (pos - 0.01) / 0.003
			out[i] = 1.5 * math.Exp(-d*d/2)
		case pos < 0.12:
			out[i] = 0.2 * math.Sin(math.Pi*(pos-0.02)/0.10)
		}
	}
	return out, nil
}

// EMG generates low-level broadband noise with a strong burst during every
// third second.
func (g *Generator) EMG(samples int) ([]float64, error) {
	if err := g.check("emg", samples); err != nil {
		return nil, err
	}
	out := make([]float64, samples)
	rng := g.rng()
	for i := range out {
		y := 0.1 * rng.NormFloat64()
		if int(g.at(i))%3 == 0 {
			y += 0.6 * rng.NormFloat64()
		}
		out[i] = y
	}
	return out, nil
}

// PPG generates a half-wave rectified 1.3 Hz pulse on a 0.5 baseline.
func (g *Generator) PPG(samples int) ([]float64, error) {
	if err := g.check("ppg", samples); err != nil {
		return nil, err
	}
	out := make([]float64, samples)
	for i := range out {
		out[i] = 0.5 + 0.4*math.Max(0, math.Sin(2*math.Pi*PPGRateHz*g.at(i)))
	}
	return out, nil
}

// GSR generates a slow random walk bounded to [0, 1].
func (g *Generator) GSR(samples int) ([]float64, error) {
	if err := g.check("gsr", samples); err != nil {
		return nil, err
	}
	out := make([]float64, samples)
	rng := g.rng()
	level := gsrStart
	for i := range out {
		level = core.Clamp(level+gsrStep*rng.NormFloat64(), 0, 1)
		out[i] = level
	}
	return out, nil
}
