package eeg

import (
	"go.uber.org/zap"

	"github.com/cwbudde/algo-eeg/dsp/spectrum"
)

// FilterConfig controls the band-limiting and denoising stages.
type FilterConfig struct {
	// Low and High confine the signal before spectral estimation, in Hz.
	Low, High float64
	// Order is the Butterworth prototype order; the band-pass has twice
	// as many poles.
	Order int
	// DenoiseFactor scales the median DFT magnitude into the hard-mask
	// threshold.
	DenoiseFactor float64
}

// DefaultFilterConfig returns the 0.5-40 Hz fourth-order band-pass with a
// denoise factor of 3.
func DefaultFilterConfig() FilterConfig {
	return FilterConfig{
		Low:           0.5,
		High:          40,
		Order:         4,
		DenoiseFactor: spectrum.DefaultDenoiseFactor,
	}
}

// Gate thresholds on the number of samples.
const (
	MinCleanedSamples  = 8
	MinFilteredSamples = 16
)

type config struct {
	timeColumn      string
	amplitudeColumn string
	bands           Bands
	filter          FilterConfig
	logger          *zap.Logger
}

func defaultConfig() config {
	return config{
		bands:  DefaultBands(),
		filter: DefaultFilterConfig(),
		logger: zap.NewNop(),
	}
}

// Option configures a Session.
type Option func(*config)

// WithTimeColumn names the time column instead of inferring it.
func WithTimeColumn(name string) Option {
	return func(c *config) { c.timeColumn = name }
}

// WithAmplitudeColumn names the amplitude column instead of inferring it.
func WithAmplitudeColumn(name string) Option {
	return func(c *config) { c.amplitudeColumn = name }
}

// WithBands replaces the band table. The table is cloned.
func WithBands(b Bands) Option {
	return func(c *config) { c.bands = b.Clone() }
}

// WithFilter replaces the filter configuration.
func WithFilter(f FilterConfig) Option {
	return func(c *config) { c.filter = f }
}

// WithLogger sets the logger for per-stage debug records. Default is a
// no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}
