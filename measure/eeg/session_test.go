package eeg

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/cwbudde/algo-eeg/internal/testutil"
	"github.com/cwbudde/algo-eeg/table"
)

// sineTable samples a sine of freqHz for n samples at fs with a little
// deterministic noise on top.
func sineTable(t *testing.T, freqHz, fs float64, n int, noise float64) *table.Table {
	t.Helper()
	times := testutil.UniformTimes(0, fs, n)
	amps := testutil.SineAt(times, freqHz, 1)
	for i, v := range testutil.DeterministicNoise(11, noise, n) {
		amps[i] += v
	}
	tbl, err := table.FromSamples(times, amps)
	require.NoError(t, err)
	return tbl
}

func newSession(t *testing.T, tbl *table.Table, opts ...Option) *Session {
	t.Helper()
	s, err := NewSession(tbl, opts...)
	require.NoError(t, err)
	return s
}

func TestAnalyzeTenHertzSine(t *testing.T) {
	s := newSession(t, sineTable(t, 10, 100, 1000, 1e-3))

	alpha, err := s.Analyze(Alpha)
	require.NoError(t, err)
	require.True(t, alpha.OK)
	assert.Greater(t, alpha.RelativePower, 0.9)
	assert.InDelta(t, 100, alpha.SampleRate, 1e-9)
	assert.InDelta(t, 9.99, alpha.Duration, 1e-9)
	assert.Equal(t, 1000, alpha.N)
	assert.Equal(t, Range{8, 13}, alpha.Range)
	assert.InDelta(t, 10, alpha.PeakFrequency(), 0.5)
	assert.Equal(t, 256, alpha.Diagnostics.Segment)
	assert.True(t, alpha.Diagnostics.BandLimited)

	delta, err := s.Analyze(Delta)
	require.NoError(t, err)
	require.True(t, delta.OK)
	assert.Less(t, delta.RelativePower, 0.1)
	assert.Equal(t, alpha.TotalPower, delta.TotalPower)
}

func TestAnalyzeIrregularTimestamps(t *testing.T) {
	times := testutil.JitteredTimes(4, 250, 0.2, 2500)
	amps := testutil.SineAt(times, 10, 1)
	tbl, err := table.FromSamples(times, amps)
	require.NoError(t, err)

	rep, err := newSession(t, tbl).Analyze(Alpha)
	require.NoError(t, err)
	require.True(t, rep.OK)
	assert.InDelta(t, 250, rep.SampleRate, 5)
	assert.Greater(t, rep.RelativePower, 0.9)
}

func TestAnalyzeSevenSamples(t *testing.T) {
	tbl, err := table.FromSamples(
		[]float64{0, 1, 2, 3, 4, 5, 6},
		[]float64{1, 2, 3, 4, 5, 6, 7},
	)
	require.NoError(t, err)

	rep, err := newSession(t, tbl).Analyze(Alpha)
	require.NoError(t, err)
	assert.False(t, rep.OK)
	assert.Equal(t, map[string]any{
		"ok":     false,
		"reason": "insufficient samples after cleaning",
		"n":      7,
	}, rep.ToMap())

	raw, err := json.Marshal(rep)
	require.NoError(t, err)
	assert.JSONEq(t, `{"ok":false,"reason":"insufficient samples after cleaning","n":7}`, string(raw))
}

func TestAnalyzeDuplicatesCountTowardsGateA(t *testing.T) {
	// Ten rows but only seven distinct timestamps.
	tbl, err := table.FromSamples(
		[]float64{0, 0, 1, 2, 2, 3, 4, 5, 6, 6},
		[]float64{1, 3, 2, 3, 5, 4, 5, 6, 7, 9},
	)
	require.NoError(t, err)

	rep, err := newSession(t, tbl).Analyze(Beta)
	require.NoError(t, err)
	assert.Equal(t, Report{Reason: ReasonCleaning, N: 7}, rep)
}

func TestAnalyzeShortGridFailsAfterFiltering(t *testing.T) {
	tbl, err := table.FromSamples(
		testutil.UniformTimes(0, 1, 10),
		testutil.DeterministicNoise(1, 1, 10),
	)
	require.NoError(t, err)

	rep, err := newSession(t, tbl).Analyze(Theta)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"ok":     false,
		"reason": "insufficient samples after filtering",
		"n":      10,
	}, rep.ToMap())
}

func TestAnalyzeCollapsedFilterBand(t *testing.T) {
	// At 1 Hz sampling the 0.5-40 Hz band collapses and is skipped.
	tbl, err := table.FromSamples(
		testutil.UniformTimes(0, 1, 300),
		testutil.DeterministicNoise(2, 1, 300),
	)
	require.NoError(t, err)

	rep, err := newSession(t, tbl).Analyze(Delta)
	require.NoError(t, err)
	require.True(t, rep.OK)
	assert.False(t, rep.Diagnostics.BandLimited)
	assert.Equal(t, 300, rep.N)
	assert.GreaterOrEqual(t, rep.RelativePower, 0.0)
	assert.LessOrEqual(t, rep.RelativePower, 1.0)
}

func TestAnalyzeUndefinedBand(t *testing.T) {
	tbl, err := table.FromSamples([]float64{0, 1}, []float64{1, 2})
	require.NoError(t, err)
	s := newSession(t, tbl)

	for _, b := range []BandType{Kappa, Lambda, BandType("gamma")} {
		_, err := s.Analyze(b)
		require.ErrorIs(t, err, ErrUndefinedBandRange)
		assert.Contains(t, err.Error(), string(b))
	}
}

func TestRelativePowerWithinUnitInterval(t *testing.T) {
	tbl, err := table.FromSamples(
		testutil.UniformTimes(0, 200, 4000),
		testutil.DeterministicNoise(9, 5, 4000),
	)
	require.NoError(t, err)

	reports, err := newSession(t, tbl).AnalyzeAll()
	require.NoError(t, err)
	require.Len(t, reports, 5)
	for _, r := range reports {
		require.True(t, r.OK, r.Band)
		assert.GreaterOrEqual(t, r.RelativePower, 0.0, r.Band)
		assert.LessOrEqual(t, r.RelativePower, 1.0, r.Band)
	}
	assert.Equal(t, Delta, reports[0].Band)
}

func TestSubBandAdditivity(t *testing.T) {
	var bands Bands
	require.NoError(t, bands.Set(Alpha, Range{0.5, 20}))
	require.NoError(t, bands.Set(Beta, Range{20, 40}))

	s := newSession(t, sineTable(t, 10, 100, 1000, 0.01), WithBands(bands))
	lower, err := s.Analyze(Alpha)
	require.NoError(t, err)
	upper, err := s.Analyze(Beta)
	require.NoError(t, err)

	sum := lower.BandPower + upper.BandPower
	assert.InDelta(t, 1, sum/lower.TotalPower, 0.02)
}

func TestSessionCopiesBands(t *testing.T) {
	bands := DefaultBands()
	s := newSession(t, sineTable(t, 10, 100, 1000, 0), WithBands(bands))

	require.NoError(t, bands.Set(Kappa, Range{1, 2}))
	bands.Delete(Alpha)

	_, err := s.Analyze(Kappa)
	assert.ErrorIs(t, err, ErrUndefinedBandRange)
	rep, err := s.Analyze(Alpha)
	require.NoError(t, err)
	assert.True(t, rep.OK)
}

func TestNewSessionColumnResolution(t *testing.T) {
	tbl, err := table.New(
		table.NumericColumn("Время", []float64{0, 1}),
		table.NumericColumn("signal", []float64{1, 2}),
		table.NumericColumn("other", []float64{3, 4}),
	)
	require.NoError(t, err)

	s := newSession(t, tbl)
	assert.Equal(t, table.Roles{Time: "Время", Amplitude: "signal"}, s.Roles())

	s = newSession(t, tbl, WithAmplitudeColumn("other"))
	assert.Equal(t, "other", s.Roles().Amplitude)

	_, err = NewSession(tbl, WithTimeColumn("clock"))
	assert.ErrorIs(t, err, table.ErrColumnResolution)
}

func TestAnalyzeLogsStages(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	s := newSession(t, sineTable(t, 10, 100, 1000, 0), WithLogger(zap.New(core)))

	_, err := s.Analyze(Alpha)
	require.NoError(t, err)

	var messages []string
	for _, e := range logs.All() {
		messages = append(messages, e.Message)
	}
	assert.Equal(t, []string{"session ready", "cleaned", "resampled", "band-limited", "analysis complete"}, messages)

	done := logs.FilterMessage("analysis complete").All()[0].ContextMap()
	assert.Equal(t, "alpha", done["band"])
	assert.InDelta(t, 100, done["fs_hz"], 1e-9)
}

func TestSuccessMapKeys(t *testing.T) {
	rep, err := newSession(t, sineTable(t, 10, 100, 1000, 0)).Analyze(Mu)
	require.NoError(t, err)

	m := rep.ToMap()
	for _, k := range []string{
		"ok", "band", "band_range_hz", "fs_hz", "duration_s", "n_samples", "total_power",
		"band_power", "relative_band_power", "psd_f", "psd_pxx", "stages",
	} {
		assert.Contains(t, m, k)
	}
	assert.Len(t, m, 12)
	assert.Equal(t, "mu", m["band"])
	assert.Equal(t, []float64{8, 13}, m["band_range_hz"])

	stages := m["stages"].(map[string]any)
	assert.Equal(t, 0, stages["duplicates_removed"])
	assert.Equal(t, 1000, stages["n_regular"])
	assert.False(t, math.IsNaN(rep.TotalPower))
}

func TestDominantBand(t *testing.T) {
	reports, err := newSession(t, sineTable(t, 20, 100, 1000, 1e-3)).AnalyzeAll()
	require.NoError(t, err)

	best, ok := DominantBand(reports)
	require.True(t, ok)
	assert.Equal(t, Beta, best.Band)

	_, ok = DominantBand([]Report{failure(ReasonCleaning, 3)})
	assert.False(t, ok)
}
