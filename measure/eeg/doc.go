// Package eeg measures the spectral power of an EEG frequency band relative
// to the total power of a single-channel recording.
//
// A [Session] owns one input table and runs a fixed chain over it for each
// requested band:
//
//	clean -> resample -> denoise -> band-limit -> Welch PSD -> integrate
//
// Too little data after cleaning or filtering is reported as a failed
// [Report], not as an error. Errors are reserved for structural problems
// such as unresolvable columns or a band without a frequency range.
package eeg
