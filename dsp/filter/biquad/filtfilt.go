package biquad

import "gonum.org/v1/gonum/floats"

// PadLength returns the odd-extension length used by FiltFilt for a signal
// of n samples: three times the number of transfer-function coefficients,
// capped at n-1.
func (c *Chain) PadLength(n int) int {
	pad := 3 * (2*len(c.sections) + 1)
	if pad > n-1 {
		pad = n - 1
	}
	if pad < 0 {
		pad = 0
	}

	return pad
}

// FiltFilt applies the chain forward and then backward and returns a new
// slice of len(x). The magnitude response is squared and the phase
// cancels.
//
// Both ends are extended by point reflection about the edge samples, and
// each pass starts from the steady state for its first sample, which keeps
// start-up transients out of the returned range. The chain's own state is
// restored on return.
func (c *Chain) FiltFilt(x []float64) []float64 {
	n := len(x)
	if n == 0 {
		return []float64{}
	}

	saved := c.State()
	defer c.SetState(saved)

	pad := c.PadLength(n)
	ext := oddExtend(x, pad)

	c.settle(ext[0])
	c.ProcessBlock(ext)

	floats.Reverse(ext)
	c.settle(ext[0])
	c.ProcessBlock(ext)
	floats.Reverse(ext)

	out := make([]float64, n)
	copy(out, ext[pad:pad+n])

	return out
}

// oddExtend returns x with pad samples on each side, reflected through the
// first and last values.
func oddExtend(x []float64, pad int) []float64 {
	n := len(x)
	ext := make([]float64, n+2*pad)
	first, last := x[0], x[n-1]

	for i := range pad {
		ext[i] = 2*first - x[pad-i]
		ext[pad+n+i] = 2*last - x[n-2-i]
	}
	copy(ext[pad:], x)

	return ext
}
