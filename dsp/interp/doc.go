// Package interp provides interpolation of sampled sequences at arbitrary
// abscissae.
//
// [Linear] evaluates a piecewise-linear interpolant through strictly
// increasing sample positions, clamping to the end values outside the sampled
// range. It is the building block for resampling irregular time series onto a
// uniform grid.
package interp
