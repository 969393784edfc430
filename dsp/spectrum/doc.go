// Package spectrum provides frequency-domain analysis of uniformly sampled
// real signals.
//
// It covers the real DFT and its inverse ([RealFFT], [InverseRealFFT]),
// magnitude-threshold denoising ([Denoise]), Welch power spectral density
// estimation ([Welch]) and trapezoidal integration of a PSD over a frequency
// band ([Trapezoid], [BandPower]).
//
// Power-of-two transform lengths run on algo-fft plans; every other length
// falls back to gonum's mixed-radix FFT, so callers never need to pad.
package spectrum
