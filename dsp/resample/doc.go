// Package resample maps irregularly sampled, strictly increasing time series
// onto a uniform time grid.
//
// The grid step is the median of successive sample intervals, which makes the
// estimate robust against occasional dropped or delayed samples. Values on
// the grid are obtained by linear interpolation.
//
// Common workflow:
//
//	g, err := resample.Uniform(t, x)
//	// g.Time, g.Values on a grid of step g.Interval (g.Rate Hz)
package resample
