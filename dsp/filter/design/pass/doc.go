// Package pass designs Butterworth band-pass filters as biquad cascades.
//
// Designs go through the analog zero-pole-gain route: a normalized
// Butterworth prototype is shifted to a band-pass, mapped to the z-plane
// with a prewarped bilinear transform, and split into conjugate pole pairs.
// The returned sections plus gain drive a [biquad.Chain].
package pass
