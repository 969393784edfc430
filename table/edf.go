package table

import (
	"errors"
	"fmt"
	"io"

	"github.com/OpenPSG/edf"
)

// ErrSampleRate is returned by ReadEDF without a positive sample rate.
var ErrSampleRate = errors.New("table: edf sample rate must be > 0")

type edfConfig struct {
	signal     int
	label      string
	sampleRate float64
	maxSamples int
}

// EDFOption configures ReadEDF.
type EDFOption func(*edfConfig)

// WithEDFSignal selects the signal index inside the file. Default 0.
func WithEDFSignal(index int) EDFOption {
	return func(c *edfConfig) { c.signal = index }
}

// WithEDFLabel names the amplitude column. Default "eeg".
func WithEDFLabel(label string) EDFOption {
	return func(c *edfConfig) {
		if label != "" {
			c.label = label
		}
	}
}

// WithEDFSampleRate sets the sample rate of the selected signal in Hz,
// i.e. samples per record divided by the record duration.
func WithEDFSampleRate(hz float64) EDFOption {
	return func(c *edfConfig) { c.sampleRate = hz }
}

// WithEDFMaxSamples stops reading after n samples. Zero reads to the end.
func WithEDFMaxSamples(n int) EDFOption {
	return func(c *edfConfig) {
		if n >= 0 {
			c.maxSamples = n
		}
	}
}

// ReadEDF reads one EDF/EDF+ signal into a two-column table: a numeric time
// column in seconds from the start of the recording and the physical
// amplitude under the configured label.
func ReadEDF(r io.ReadSeeker, opts ...EDFOption) (*Table, error) {
	cfg := edfConfig{label: "eeg"}
	for _, o := range opts {
		o(&cfg)
	}
	if !(cfg.sampleRate > 0) {
		return nil, ErrSampleRate
	}

	er, err := edf.Open(r)
	if err != nil {
		return nil, fmt.Errorf("table: open edf: %w", err)
	}
	sr, err := er.Signal(cfg.signal)
	if err != nil {
		return nil, fmt.Errorf("table: edf signal %d: %w", cfg.signal, err)
	}

	var amps []float64
	buf := make([]float64, 1024)
	for {
		n, err := sr.Read(buf)
		amps = append(amps, buf[:n]...)
		if cfg.maxSamples > 0 && len(amps) >= cfg.maxSamples {
			amps = amps[:cfg.maxSamples]
			break
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("table: read edf signal %d: %w", cfg.signal, err)
		}
	}

	times := make([]float64, len(amps))
	for i := range times {
		times[i] = float64(i) / cfg.sampleRate
	}

	return New(NumericColumn("time", times), NumericColumn(cfg.label, amps))
}
