package resample

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-eeg/dsp/core"
	"github.com/cwbudde/algo-eeg/dsp/interp"
	timestats "github.com/cwbudde/algo-eeg/stats/time"
)

var (
	// ErrDegenerate indicates a series that cannot define a sampling interval.
	ErrDegenerate = errors.New("resample: degenerate series")
	// ErrLengthMismatch indicates time and value slices of different length.
	ErrLengthMismatch = errors.New("resample: time/value length mismatch")
)

// Grid is a series on a uniform time grid.
type Grid struct {
	Time     []float64
	Values   []float64
	Interval float64 // grid step in seconds
	Rate     float64 // 1 / Interval in Hz
}

// Len returns the number of grid points.
func (g Grid) Len() int { return len(g.Time) }

// Duration returns the time span between the first and last grid point.
func (g Grid) Duration() float64 {
	if len(g.Time) == 0 {
		return 0
	}
	return g.Time[len(g.Time)-1] - g.Time[0]
}

// Interval estimates the sampling interval of strictly increasing times as
// the median successive difference, falling back to the mean spacing
// (t[n-1]-t[0])/(n-1) when the median is not finite and positive.
func Interval(t []float64) (float64, error) {
	if len(t) < 2 {
		return 0, fmt.Errorf("%w: need at least 2 samples, got %d", ErrDegenerate, len(t))
	}

	dt := timestats.Median(timestats.Diff(t))
	if !core.IsFinite(dt) || dt <= 0 {
		dt = (t[len(t)-1] - t[0]) / float64(len(t)-1)
	}
	if !core.IsFinite(dt) || dt <= 0 {
		return 0, fmt.Errorf("%w: non-positive interval %v", ErrDegenerate, dt)
	}

	return dt, nil
}

// GridTimes returns start, start+dt, ... up to but excluding stop+dt/2, so the
// final point is kept even when accumulated rounding would just miss it.
func GridTimes(start, stop, dt float64) []float64 {
	if !(dt > 0) || stop < start {
		return nil
	}

	n := int(math.Ceil((stop + 0.5*dt - start) / dt))
	if n < 1 {
		n = 1
	}

	out := make([]float64, n)
	for i := range out {
		out[i] = start + float64(i)*dt
	}

	return out
}

// Uniform resamples (t, x) onto a uniform grid spanning [t[0], t[n-1]].
//
// t must be strictly increasing with at least two samples.
func Uniform(t, x []float64) (Grid, error) {
	if len(t) != len(x) {
		return Grid{}, fmt.Errorf("%w: %d != %d", ErrLengthMismatch, len(t), len(x))
	}

	dt, err := Interval(t)
	if err != nil {
		return Grid{}, err
	}

	times := GridTimes(t[0], t[len(t)-1], dt)

	values, err := interp.Linear(t, x, times)
	if err != nil {
		return Grid{}, fmt.Errorf("resample: %w", err)
	}

	return Grid{
		Time:     times,
		Values:   values,
		Interval: dt,
		Rate:     1 / dt,
	}, nil
}
