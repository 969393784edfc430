package spectrum

import "gonum.org/v1/gonum/integrate"

// Trapezoid integrates y over x with the trapezoidal rule. x must be
// increasing. Fewer than two points integrate to 0.
func Trapezoid(x, y []float64) float64 {
	if len(x) < 2 || len(x) != len(y) {
		return 0
	}
	return integrate.Trapezoidal(x, y)
}

// BandPower integrates power over the frequencies f with low <= f < high.
//
// It returns the integral and the number of bins inside the band. Bands with
// fewer than two bins have no integrable extent and yield exactly 0.
func BandPower(freq, power []float64, low, high float64) (float64, int) {
	if len(freq) != len(power) {
		return 0, 0
	}

	var bf, bp []float64
	for i, f := range freq {
		if f >= low && f < high {
			bf = append(bf, f)
			bp = append(bp, power[i])
		}
	}
	if len(bf) < 2 {
		return 0, len(bf)
	}

	return Trapezoid(bf, bp), len(bf)
}
