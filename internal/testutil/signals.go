// Package testutil holds deterministic signal fixtures and tolerance checks
// shared by package tests.
package testutil

import (
	"math"
	"math/rand"
)

// DeterministicSine samples amplitude*sin(2*pi*freqHz*n/sampleRate).
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// DeterministicNoise generates uniform noise in [-amplitude, amplitude] with a
// fixed seed.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// UniformTimes returns n timestamps i/sampleRate starting at start.
func UniformTimes(start, sampleRate float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = start + float64(i)/sampleRate
	}
	return out
}

// JitteredTimes returns n nominally uniform timestamps with each sample
// displaced by up to jitter*interval in either direction. jitter must stay
// below 0.5 to keep the times strictly increasing.
func JitteredTimes(seed int64, sampleRate, jitter float64, n int) []float64 {
	rng := rand.New(rand.NewSource(seed))
	dt := 1 / sampleRate
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i)*dt + (rng.Float64()*2-1)*jitter*dt
	}
	return out
}

// SineAt evaluates amplitude*sin(2*pi*freqHz*t) at each time.
func SineAt(times []float64, freqHz, amplitude float64) []float64 {
	out := make([]float64, len(times))
	for i, t := range times {
		out[i] = amplitude * math.Sin(2*math.Pi*freqHz*t)
	}
	return out
}
