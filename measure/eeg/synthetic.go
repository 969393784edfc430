package eeg

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cwbudde/algo-eeg/dsp/signal"
	"github.com/cwbudde/algo-eeg/table"
)

// SignalType names a physiological signal family.
type SignalType string

const (
	EEG SignalType = "eeg"
	ECG SignalType = "ecg"
	EMG SignalType = "emg"
	PPG SignalType = "ppg"
	GSR SignalType = "gsr"
)

// ErrUnknownSignal is returned for an unrecognized signal type.
var ErrUnknownSignal = errors.New("eeg: unknown signal type")

// ParseSignalType parses a signal type name case-insensitively.
func ParseSignalType(name string) (SignalType, error) {
	st := SignalType(strings.ToLower(strings.TrimSpace(name)))
	switch st {
	case EEG, ECG, EMG, PPG, GSR:
		return st, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSignal, name)
}

// Synthesize renders a recording of the given type from g, with sample
// times jittered by up to jitter sample intervals, in the recorder layout
// (time, amp1).
func Synthesize(g *signal.Generator, st SignalType, jitter float64) (*table.Table, error) {
	n := g.Config().Samples()

	var (
		amps []float64
		err  error
	)
	switch st {
	case EEG:
		amps, err = g.EEG(n)
	case ECG:
		amps, err = g.ECG(n)
	case EMG:
		amps, err = g.EMG(n)
	case PPG:
		amps, err = g.PPG(n)
	case GSR:
		amps, err = g.GSR(n)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSignal, st)
	}
	if err != nil {
		return nil, fmt.Errorf("eeg: synthesize %s: %w", st, err)
	}

	times, err := g.Timestamps(jitter, n)
	if err != nil {
		return nil, fmt.Errorf("eeg: synthesize %s: %w", st, err)
	}

	return table.RecorderTable(times, amps)
}
