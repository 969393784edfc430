package eeg

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/cwbudde/algo-eeg/dsp/filter/design/pass"
	"github.com/cwbudde/algo-eeg/dsp/resample"
	"github.com/cwbudde/algo-eeg/dsp/spectrum"
	"github.com/cwbudde/algo-eeg/series"
	"github.com/cwbudde/algo-eeg/table"
)

// ErrUndefinedBandRange is returned when the requested band has no
// registered range.
var ErrUndefinedBandRange = errors.New("eeg: no range defined for band")

// Analyzer produces a band report for one recording.
type Analyzer interface {
	Analyze(band BandType) (Report, error)
}

var _ Analyzer = (*Session)(nil)

// Session analyzes one table. Columns are resolved and coerced once at
// construction; each Analyze call runs the full chain on that data and
// shares nothing with other sessions.
type Session struct {
	cfg    config
	roles  table.Roles
	rows   int
	series series.Series
}

// NewSession resolves the time and amplitude columns of t and extracts
// the raw series. It fails with table.ErrColumnResolution when a column
// cannot be found.
func NewSession(t *table.Table, opts ...Option) (*Session, error) {
	cfg := defaultConfig()
	for _, o := range opts {
		if o != nil {
			o(&cfg)
		}
	}

	roles, err := table.ResolveRoles(t, cfg.timeColumn, cfg.amplitudeColumn)
	if err != nil {
		return nil, fmt.Errorf("eeg: %w", err)
	}

	s := &Session{
		cfg:    cfg,
		roles:  roles,
		rows:   t.Rows(),
		series: series.Normalize(t, roles),
	}
	cfg.logger.Debug("session ready",
		zap.String("time_column", roles.Time),
		zap.String("amplitude_column", roles.Amplitude),
		zap.Int("rows", s.rows),
		zap.Int("valid_rows", s.series.Len()),
	)
	return s, nil
}

// Roles returns the resolved column names.
func (s *Session) Roles() table.Roles { return s.roles }

// Bands returns a copy of the session's band table.
func (s *Session) Bands() Bands { return s.cfg.bands.Clone() }

// Analyze measures the power of band relative to the whole spectrum.
//
// An unregistered band fails with ErrUndefinedBandRange before any
// processing. Too few samples after cleaning or after filtering yields a
// Report with OK false and a nil error.
func (s *Session) Analyze(band BandType) (Report, error) {
	rng, ok := s.cfg.bands.Range(band)
	if !ok {
		return Report{}, fmt.Errorf("%w %q", ErrUndefinedBandRange, band)
	}
	log := s.cfg.logger.With(zap.String("band", string(band)))

	diag := Diagnostics{Rows: s.rows, ValidRows: s.series.Len()}

	clean, cs := series.Clean(s.series)
	diag.DuplicatesRemoved = cs.DuplicatesRemoved
	diag.NonMonotonicRemoved = cs.NonMonotonicRemoved
	log.Debug("cleaned",
		zap.Int("samples", clean.Len()),
		zap.Int("duplicates_removed", cs.DuplicatesRemoved),
		zap.Int("nonmonotonic_removed", cs.NonMonotonicRemoved),
	)
	if clean.Len() < MinCleanedSamples {
		log.Info("analysis stopped", zap.String("reason", string(ReasonCleaning)), zap.Int("n", clean.Len()))
		return failure(ReasonCleaning, clean.Len()), nil
	}

	grid, err := resample.Uniform(clean.Time, clean.Amp)
	if err != nil {
		return Report{}, fmt.Errorf("eeg: %w", err)
	}
	diag.Interval = grid.Interval
	diag.SampleRate = grid.Rate
	diag.Resampled = grid.Len()
	log.Debug("resampled",
		zap.Float64("interpolation_dt", grid.Interval),
		zap.Float64("fs_hz", grid.Rate),
		zap.Int("n_regular", grid.Len()),
	)

	denoised, err := spectrum.Denoise(grid.Values, s.cfg.filter.DenoiseFactor)
	if err != nil {
		return Report{}, fmt.Errorf("eeg: %w", err)
	}

	filtered, limited, err := s.bandLimit(denoised, grid.Rate)
	if err != nil {
		return Report{}, err
	}
	diag.BandLimited = limited
	log.Debug("band-limited",
		zap.Bool("applied", limited),
		zap.Float64("low_hz", s.cfg.filter.Low),
		zap.Float64("high_hz", s.cfg.filter.High),
	)
	if len(filtered) < MinFilteredSamples {
		log.Info("analysis stopped", zap.String("reason", string(ReasonFiltering)), zap.Int("n", len(filtered)))
		return failure(ReasonFiltering, len(filtered)), nil
	}

	psd, err := spectrum.Welch(filtered, grid.Rate)
	if err != nil {
		return Report{}, fmt.Errorf("eeg: %w", err)
	}
	diag.Segment = psd.SegmentLength
	diag.Segments = psd.Segments

	total := spectrum.Trapezoid(psd.Freq, psd.Power)
	bandPower, bins := spectrum.BandPower(psd.Freq, psd.Power, rng.Low, rng.High)
	relative := 0.0
	if total > 0 {
		relative = bandPower / total
	}

	rep := Report{
		OK:            true,
		N:             len(filtered),
		Band:          band,
		Range:         rng,
		SampleRate:    grid.Rate,
		Duration:      grid.Duration(),
		TotalPower:    total,
		BandPower:     bandPower,
		RelativePower: relative,
		PSD:           psd,
		Diagnostics:   diag,
	}
	log.Info("analysis complete",
		zap.Float64("fs_hz", rep.SampleRate),
		zap.Float64("duration_s", rep.Duration),
		zap.Int("segment", psd.SegmentLength),
		zap.Int("band_bins", bins),
		zap.Float64("total_power", total),
		zap.Float64("relative_band_power", relative),
	)
	return rep, nil
}

// bandLimit applies the zero-phase band-pass, or copies x when the
// configured band collapses at this sample rate.
func (s *Session) bandLimit(x []float64, sampleRate float64) ([]float64, bool, error) {
	f := s.cfg.filter
	chain, ok, err := pass.Bandpass(f.Order, f.Low, f.High, sampleRate)
	if err != nil {
		return nil, false, fmt.Errorf("eeg: design band-pass: %w", err)
	}
	if !ok {
		return append([]float64(nil), x...), false, nil
	}
	return chain.FiltFilt(x), true, nil
}

// AnalyzeAll runs Analyze for every registered band, in Registered order.
func (s *Session) AnalyzeAll() ([]Report, error) {
	bands := s.cfg.bands.Registered()
	out := make([]Report, 0, len(bands))
	for _, b := range bands {
		rep, err := s.Analyze(b)
		if err != nil {
			return nil, err
		}
		out = append(out, rep)
	}
	return out, nil
}

// DominantBand returns the successful report with the largest relative
// power. ok is false when no report succeeded.
func DominantBand(reports []Report) (Report, bool) {
	var (
		best  Report
		found bool
	)
	for _, r := range reports {
		if r.OK && (!found || r.RelativePower > best.RelativePower) {
			best, found = r, true
		}
	}
	return best, found
}
