// Package biquad provides second-order IIR sections, cascades of them, and
// zero-phase forward-backward filtering.
//
// A [Section] runs Direct Form II Transposed on one set of [Coefficients].
// A [Chain] cascades sections behind an input gain, which is how the
// bandpass designs in dsp/filter/design/pass are applied. [Chain.FiltFilt]
// runs a chain forward and then backward over an odd-extended copy of the
// input so the result has no phase distortion.
package biquad
