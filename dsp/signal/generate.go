package signal

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/cwbudde/algo-eeg/dsp/core"
)

// Generator creates deterministic test and synthetic physiological signals
// from a shared sampling configuration.
type Generator struct {
	cfg  core.ProcessorConfig
	seed int64
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed sets the random seed used by every stochastic source.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// DefaultSeed is the seed used when WithSeed is not given.
const DefaultSeed = 267

// NewGenerator creates a generator from sampling options.
func NewGenerator(opts ...core.ProcessorOption) *Generator {
	return NewGeneratorWithOptions(opts)
}

// NewGeneratorWithOptions creates a generator from sampling options and
// generator options.
func NewGeneratorWithOptions(coreOpts []core.ProcessorOption, opts ...Option) *Generator {
	g := &Generator{
		cfg:  core.ApplyProcessorOptions(coreOpts...),
		seed: DefaultSeed,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// Config returns the sampling configuration.
func (g *Generator) Config() core.ProcessorConfig {
	return g.cfg
}

// Seed returns the random seed.
func (g *Generator) Seed() int64 {
	return g.seed
}

func (g *Generator) rng() *rand.Rand {
	return rand.New(rand.NewSource(g.seed))
}

func (g *Generator) check(what string, samples int) error {
	if samples <= 0 {
		return fmt.Errorf("signal: %s samples must be > 0: %d", what, samples)
	}
	if g.cfg.SampleRate <= 0 {
		return fmt.Errorf("signal: %s sample rate must be > 0: %f", what, g.cfg.SampleRate)
	}
	return nil
}

// Sine generates amplitude*sin(2*pi*freqHz*t).
func (g *Generator) Sine(freqHz, amplitude float64, samples int) ([]float64, error) {
	if err := g.check("sine", samples); err != nil {
		return nil, err
	}
	out := make([]float64, samples)
	step := 2 * math.Pi * freqHz / g.cfg.SampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out, nil
}

// WhiteNoise generates zero-mean Gaussian noise with standard deviation
// sigma.
func (g *Generator) WhiteNoise(sigma float64, samples int) ([]float64, error) {
	if err := g.check("noise", samples); err != nil {
		return nil, err
	}
	if sigma < 0 {
		return nil, fmt.Errorf("signal: noise sigma must be >= 0: %f", sigma)
	}
	out := make([]float64, samples)
	rng := g.rng()
	for i := range out {
		out[i] = sigma * rng.NormFloat64()
	}
	return out, nil
}

// Timestamps returns sample times i/SampleRate, each displaced by up to
// jitter sample intervals in either direction. jitter must lie in [0, 0.5)
// so the times stay strictly increasing.
func (g *Generator) Timestamps(jitter float64, samples int) ([]float64, error) {
	if err := g.check("timestamp", samples); err != nil {
		return nil, err
	}
	if jitter < 0 || jitter >= 0.5 {
		return nil, fmt.Errorf("signal: jitter must be in [0, 0.5): %f", jitter)
	}
	dt := 1 / g.cfg.SampleRate
	out := make([]float64, samples)
	rng := g.rng()
	for i := range out {
		out[i] = float64(i) * dt
		if jitter > 0 {
			out[i] += (rng.Float64()*2 - 1) * jitter * dt
		}
	}
	return out, nil
}

// Normalize scales data to a target peak amplitude and returns a new slice.
func Normalize(data []float64, targetPeak float64) ([]float64, error) {
	if targetPeak < 0 {
		return nil, fmt.Errorf("signal: normalize target peak must be >= 0: %f", targetPeak)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("signal: normalize input must not be empty")
	}

	maxAbs := 0.0
	for _, v := range data {
		maxAbs = math.Max(maxAbs, math.Abs(v))
	}

	out := make([]float64, len(data))
	if maxAbs == 0 || targetPeak == 0 {
		return out, nil
	}

	scale := targetPeak / maxAbs
	for i, v := range data {
		out[i] = v * scale
	}
	return out, nil
}
