// Package window provides tapering windows for segment-based spectral estimation.
package window

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"
)

// Type identifies a window function.
type Type int

const (
	TypeRectangular Type = iota
	TypeHann
	TypeHamming
	TypeBlackman
)

// Metadata holds spectral properties of a window type.
type Metadata struct {
	Name         string
	ENBW         float64
	CoherentGain float64
}

var metadataByType = map[Type]Metadata{
	TypeRectangular: {Name: "rectangular", ENBW: 1, CoherentGain: 1},
	TypeHann:        {Name: "hann", ENBW: 1.5, CoherentGain: 0.5},
	TypeHamming:     {Name: "hamming", ENBW: 1.3628, CoherentGain: 0.54},
	TypeBlackman:    {Name: "blackman", ENBW: 1.7268, CoherentGain: 0.42},
}

var (
	hannCoeffs     = []float64{0.5, -0.5}
	hammingCoeffs  = []float64{0.54, -0.46}
	blackmanCoeffs = []float64{0.42, -0.5, 0.08}
)

// Option configures window generation.
type Option func(*config)

type config struct {
	periodic bool
}

// WithPeriodic configures the periodic form (DFT-even, as used for spectral
// framing) instead of the symmetric form.
func WithPeriodic() Option {
	return func(c *config) {
		c.periodic = true
	}
}

// Generate returns window coefficients of the given length.
func Generate(t Type, length int, opts ...Option) []float64 {
	if length <= 0 {
		return nil
	}

	var cfg config
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	out := make([]float64, length)
	for i := range out {
		out[i] = evalWindow(t, samplePosition(i, length, cfg.periodic))
	}

	return out
}

// Apply multiplies buf in-place by coeffs. Both must have the same length.
func Apply(buf, coeffs []float64) error {
	if len(coeffs) == 0 {
		return errEmptyCoeffs
	}
	if len(buf) != len(coeffs) {
		return errMismatchedLength
	}

	vecmath.MulBlockInPlace(buf, coeffs)

	return nil
}

// ApplyTo writes samples*coeffs into dst. All slices must have the same length.
func ApplyTo(dst, samples, coeffs []float64) error {
	if len(coeffs) == 0 {
		return errEmptyCoeffs
	}
	if len(samples) != len(coeffs) || len(dst) != len(coeffs) {
		return errMismatchedLength
	}

	vecmath.MulBlock(dst, samples, coeffs)

	return nil
}

// SumSquares returns the window energy sum(w[n]^2), the normalization used
// for density-scaled periodograms.
func SumSquares(coeffs []float64) float64 {
	return floats.Dot(coeffs, coeffs)
}

// Info returns static metadata for a window type.
func Info(t Type) Metadata {
	if m, ok := metadataByType[t]; ok {
		return m
	}

	return Metadata{}
}

// ParseType resolves a window name as reported by [Info].
func ParseType(name string) (Type, error) {
	for t, m := range metadataByType {
		if m.Name == name {
			return t, nil
		}
	}
	return 0, unknownTypeError(name)
}

func evalWindow(t Type, x float64) float64 {
	switch t {
	case TypeHann:
		return cosineFromCoeffs(x, hannCoeffs)
	case TypeHamming:
		return cosineFromCoeffs(x, hammingCoeffs)
	case TypeBlackman:
		return cosineFromCoeffs(x, blackmanCoeffs)
	default:
		return 1
	}
}

func cosineFromCoeffs(x float64, coeffs []float64) float64 {
	phase := 2 * math.Pi * x

	sum := 0.0
	for k, c := range coeffs {
		sum += c * math.Cos(float64(k)*phase)
	}

	return sum
}

func samplePosition(n, size int, periodic bool) float64 {
	if size <= 1 {
		return 0
	}

	den := float64(size - 1)
	if periodic {
		den = float64(size)
	}

	return float64(n) / den
}
