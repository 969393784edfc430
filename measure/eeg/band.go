package eeg

import (
	"errors"
	"fmt"
	"maps"
	"math"
	"slices"
	"strings"
)

// BandType identifies a clinical EEG frequency band.
type BandType string

const (
	Delta  BandType = "delta"
	Theta  BandType = "theta"
	Alpha  BandType = "alpha"
	Beta   BandType = "beta"
	Mu     BandType = "mu"
	Kappa  BandType = "kappa"
	Lambda BandType = "lambda"
)

// AllBandTypes lists every known identifier, registered or not.
var AllBandTypes = []BandType{Delta, Theta, Alpha, Beta, Mu, Kappa, Lambda}

var (
	// ErrUnknownBand is returned by ParseBand for an unrecognized name.
	ErrUnknownBand = errors.New("eeg: unknown band")
	// ErrInvalidRange is returned by Bands.Set for a range that is not a
	// finite, non-negative interval with Low < High.
	ErrInvalidRange = errors.New("eeg: invalid band range")
)

// ParseBand parses a band name case-insensitively.
func ParseBand(name string) (BandType, error) {
	b := BandType(strings.ToLower(strings.TrimSpace(name)))
	if slices.Contains(AllBandTypes, b) {
		return b, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownBand, name)
}

// Range is a half-open frequency interval [Low, High) in Hz.
type Range struct {
	Low  float64
	High float64
}

// Contains reports whether Low <= f < High.
func (r Range) Contains(f float64) bool {
	return f >= r.Low && f < r.High
}

func (r Range) String() string {
	return fmt.Sprintf("[%g, %g) Hz", r.Low, r.High)
}

func (r Range) valid() bool {
	return !math.IsNaN(r.Low) && !math.IsInf(r.High, 0) && r.Low >= 0 && r.Low < r.High
}

// Bands maps band identifiers to frequency ranges. The zero value is an
// empty table. Bands is copied into each session, so later changes to the
// caller's table do not affect sessions already created.
type Bands struct {
	ranges map[BandType]Range
}

// DefaultBands returns delta, theta, alpha, beta and mu with their usual
// ranges. Kappa and lambda are left unregistered.
func DefaultBands() Bands {
	return Bands{ranges: map[BandType]Range{
		Delta: {0.5, 4},
		Theta: {4, 8},
		Alpha: {8, 13},
		Beta:  {13, 30},
		Mu:    {8, 13},
	}}
}

// Range returns the registered range of b.
func (bs Bands) Range(b BandType) (Range, bool) {
	r, ok := bs.ranges[b]
	return r, ok
}

// Set registers or replaces the range of b.
func (bs *Bands) Set(b BandType, r Range) error {
	if !r.valid() {
		return fmt.Errorf("%w: %s %v", ErrInvalidRange, b, r)
	}
	if bs.ranges == nil {
		bs.ranges = make(map[BandType]Range)
	}
	bs.ranges[b] = r
	return nil
}

// Delete unregisters b.
func (bs *Bands) Delete(b BandType) {
	delete(bs.ranges, b)
}

// Clone returns an independent copy.
func (bs Bands) Clone() Bands {
	return Bands{ranges: maps.Clone(bs.ranges)}
}

// Registered lists the registered bands ordered by low edge, then name.
func (bs Bands) Registered() []BandType {
	out := slices.Collect(maps.Keys(bs.ranges))
	slices.SortFunc(out, func(a, b BandType) int {
		ra, rb := bs.ranges[a], bs.ranges[b]
		switch {
		case ra.Low < rb.Low:
			return -1
		case ra.Low > rb.Low:
			return 1
		default:
			return strings.Compare(string(a), string(b))
		}
	})
	return out
}
