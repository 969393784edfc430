package pass

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-eeg/dsp/filter/biquad"
)

// ErrInvalidParams is returned for a non-positive order or band edges
// outside 0 < low < high < 1.
var ErrInvalidParams = errors.New("pass: invalid filter parameters")

const (
	// MinNormalizedEdge is the smallest low edge NormalizeBand returns.
	MinNormalizedEdge = 1e-6
	// MaxNormalizedEdge is the largest high edge NormalizeBand returns.
	MaxNormalizedEdge = 0.999
)

// NormalizeBand converts band edges in Hz to fractions of Nyquist, clamps
// them into [MinNormalizedEdge, MaxNormalizedEdge] and reports whether a
// band-pass is still meaningful (high > low).
func NormalizeBand(lowHz, highHz, sampleRate float64) (low, high float64, ok bool) {
	nyquist := sampleRate / 2
	low = math.Max(lowHz/nyquist, MinNormalizedEdge)
	high = math.Min(highHz/nyquist, MaxNormalizedEdge)

	return low, high, high > low
}

// ButterworthPrototype returns the poles of the unit-cutoff analog
// Butterworth lowpass of the given order.
func ButterworthPrototype(order int) []complex128 {
	poles := make([]complex128, order)
	for k := range order {
		theta := math.Pi * float64(2*k+order+1) / float64(2*order)
		poles[k] = cmplx.Rect(1, theta)
	}

	return poles
}

// ButterworthBP designs a band-pass of the given prototype order between
// lowNorm and highNorm, both fractions of Nyquist. The result has 2*order
// poles split into order sections; the returned gain must be applied to the
// input of the cascade.
func ButterworthBP(order int, lowNorm, highNorm float64) ([]biquad.Coefficients, float64, error) {
	if order <= 0 || !(lowNorm > 0) || !(highNorm < 1) || !(lowNorm < highNorm) {
		return nil, 0, fmt.Errorf("%w: order=%d band=[%g, %g]", ErrInvalidParams, order, lowNorm, highNorm)
	}

	// Prewarp for a bilinear transform at fs = 2.
	const fs2 = 4.0
	wl := fs2 * math.Tan(math.Pi*lowNorm/2)
	wh := fs2 * math.Tan(math.Pi*highNorm/2)
	bw := wh - wl
	w0 := math.Sqrt(wl * wh)

	analog := lowpassToBandpass(ButterworthPrototype(order), w0, bw)

	// Zeros: order at s=0 map to z=+1, the remaining order go to z=-1,
	// so every section carries 1 - z^-2.
	den := complex(1, 0)
	digital := make([]complex128, len(analog))
	for i, p := range analog {
		den *= fs2 - p
		digital[i] = (fs2 + p) / (fs2 - p)
	}
	gain := math.Pow(bw, float64(order)) * real(complex(math.Pow(fs2, float64(order)), 0)/den)

	sections, err := pairPoles(digital)
	if err != nil {
		return nil, 0, err
	}

	return sections, gain, nil
}

// Bandpass designs a ButterworthBP between lowHz and highHz and returns it
// as a ready Chain. ok is false when the clamped edges leave no band.
func Bandpass(order int, lowHz, highHz, sampleRate float64) (*biquad.Chain, bool, error) {
	low, high, ok := NormalizeBand(lowHz, highHz, sampleRate)
	if !ok {
		return nil, false, nil
	}

	sections, gain, err := ButterworthBP(order, low, high)
	if err != nil {
		return nil, false, err
	}

	return biquad.NewChain(sections, biquad.WithGain(gain)), true, nil
}

// lowpassToBandpass maps each prototype pole p to the two roots of
// s^2 - p*bw*s + w0^2.
func lowpassToBandpass(poles []complex128, w0, bw float64) []complex128 {
	out := make([]complex128, 0, 2*len(poles))
	w0sq := complex(w0*w0, 0)
	for _, p := range poles {
		half := p * complex(bw/2, 0)
		root := cmplx.Sqrt(half*half - w0sq)
		out = append(out, half+root, half-root)
	}

	return out
}

// pairPoles groups z-plane poles into second-order sections. Complex poles
// pair with their conjugate; real poles pair with each other.
func pairPoles(poles []complex128) ([]biquad.Coefficients, error) {
	const imagTol = 1e-12

	var (
		sections []biquad.Coefficients
		reals    []float64
	)
	for _, p := range poles {
		switch {
		case imag(p) > imagTol:
			sections = append(sections, section(-2*real(p), real(p)*real(p)+imag(p)*imag(p)))
		case imag(p) >= -imagTol:
			reals = append(reals, real(p))
		}
	}

	if len(reals)%2 != 0 {
		return nil, fmt.Errorf("%w: unpaired real pole", ErrInvalidParams)
	}
	for i := 0; i < len(reals); i += 2 {
		sections = append(sections, section(-(reals[i] + reals[i+1]), reals[i]*reals[i+1]))
	}

	return sections, nil
}

func section(a1, a2 float64) biquad.Coefficients {
	return biquad.Coefficients{B0: 1, B2: -1, A1: a1, A2: a2}
}
