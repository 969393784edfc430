// Package series turns a resolved table into a clean (time, amplitude)
// sample series: numeric coercion, stable time ordering, duplicate-time
// collapsing and a strict monotonicity filter.
package series

import (
	"math"
	"sort"
	"time"

	timestats "github.com/cwbudde/algo-eeg/stats/time"
	"github.com/cwbudde/algo-eeg/table"
)

// Series is a single-channel signal as parallel time (seconds) and
// amplitude slices.
type Series struct {
	Time []float64
	Amp  []float64
}

// Len returns the number of samples.
func (s Series) Len() int { return len(s.Time) }

// Normalize extracts the time and amplitude columns named by r. A DateTime
// time column becomes seconds elapsed since the first recorded timestamp;
// everything else
// is coerced to float. Rows where either value is missing or non-finite are
// dropped. Names in r that are absent from t yield an empty series.
func Normalize(t *table.Table, r table.Roles) Series {
	tc, ok := t.Column(r.Time)
	if !ok {
		return Series{}
	}
	ac, ok := t.Column(r.Amplitude)
	if !ok {
		return Series{}
	}

	n := t.Rows()
	out := Series{
		Time: make([]float64, 0, n),
		Amp:  make([]float64, 0, n),
	}
	t0 := firstRecorded(tc)
	for i := range n {
		ti := timeAt(tc, i, t0)
		ai := ac.Float(i)
		if !finite(ti) || !finite(ai) {
			continue
		}
		out.Time = append(out.Time, ti)
		out.Amp = append(out.Amp, ai)
	}
	return out
}

// firstRecorded returns the first non-missing timestamp of a DateTime
// column, or the zero time.
func firstRecorded(c *table.Column) time.Time {
	if c.Kind != table.DateTime {
		return time.Time{}
	}
	for _, ts := range c.Times {
		if !ts.IsZero() {
			return ts
		}
	}
	return time.Time{}
}

func timeAt(c *table.Column, i int, t0 time.Time) float64 {
	if c.Kind != table.DateTime {
		return c.Float(i)
	}
	if t0.IsZero() || c.Times[i].IsZero() {
		return math.NaN()
	}
	return c.Times[i].Sub(t0).Seconds()
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// CleanStats counts what Clean removed.
type CleanStats struct {
	Input               int
	DuplicatesRemoved   int
	NonMonotonicRemoved int
}

// Clean stable-sorts s by time, replaces each run of identical timestamps
// by one sample carrying the run's median amplitude, and keeps only samples
// whose time strictly exceeds the previously kept one. The result has
// strictly increasing time. s is not modified.
func Clean(s Series) (Series, CleanStats) {
	stats := CleanStats{Input: s.Len()}
	if s.Len() == 0 {
		return Series{Time: []float64{}, Amp: []float64{}}, stats
	}

	order := make([]int, s.Len())
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return s.Time[order[a]] < s.Time[order[b]]
	})

	var (
		times = make([]float64, 0, len(order))
		amps  = make([]float64, 0, len(order))
		group []float64
	)
	for k := 0; k < len(order); {
		t := s.Time[order[k]]
		group = group[:0]
		for k < len(order) && s.Time[order[k]] == t {
			group = append(group, s.Amp[order[k]])
			k++
		}
		times = append(times, t)
		amps = append(amps, timestats.Median(group))
	}
	stats.DuplicatesRemoved = s.Len() - len(times)

	out := Series{
		Time: make([]float64, 0, len(times)),
		Amp:  make([]float64, 0, len(times)),
	}
	for i, t := range times {
		if i > 0 && !(t-out.Time[len(out.Time)-1] > 0) {
			stats.NonMonotonicRemoved++
			continue
		}
		out.Time = append(out.Time, t)
		out.Amp = append(out.Amp, amps[i])
	}

	return out, stats
}
