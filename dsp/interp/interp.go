package interp

import (
	"errors"
	"fmt"
	"sort"
)

var ErrEmpty = errors.New("interp: empty sample positions")

// Linear performs piecewise-linear interpolation of (xp, fp) at each query.
//
// xp must be strictly increasing and have the same length as fp. Queries at or
// below xp[0] return fp[0]; queries at or above the last position return the
// last value.
func Linear(xp, fp, query []float64) ([]float64, error) {
	if len(xp) == 0 || len(fp) == 0 {
		return nil, ErrEmpty
	}
	if len(xp) != len(fp) {
		return nil, fmt.Errorf("interp: x/y length mismatch: %d != %d", len(xp), len(fp))
	}
	for i := 1; i < len(xp); i++ {
		if !(xp[i] > xp[i-1]) {
			return nil, fmt.Errorf("interp: x must be strictly increasing at index %d", i)
		}
	}

	last := len(xp) - 1
	out := make([]float64, len(query))
	for i, q := range query {
		if q <= xp[0] {
			out[i] = fp[0]
			continue
		}
		if q >= xp[last] {
			out[i] = fp[last]
			continue
		}

		j := sort.SearchFloat64s(xp, q)
		if xp[j] == q {
			out[i] = fp[j]
			continue
		}
		out[i] = Linear2((q-xp[j-1])/(xp[j]-xp[j-1]), fp[j-1], fp[j])
	}

	return out, nil
}

// Linear2 computes 2-point linear interpolation between x0 and x1 at frac.
func Linear2(frac, x0, x1 float64) float64 {
	return x0 + frac*(x1-x0)
}
