// Command eegband estimates EEG band power for a recording.
//
// The recording comes from a CSV file, a single EDF signal, or a synthetic
// source. The program cleans and resamples it, band-limits it with a
// zero-phase Butterworth filter and reports the absolute and relative power
// of one band or of every registered band.
//
// Usage:
//
//	eegband [flags]
//
// Examples:
//
//	eegband -csv session.csv -band alpha
//	eegband -edf night.edf -edf-rate 256 -band all -format json
//	eegband -synthetic eeg -fs 250 -duration 10 -band all -plot psd.png
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-eeg/dsp/core"
	"github.com/cwbudde/algo-eeg/dsp/signal"
	"github.com/cwbudde/algo-eeg/internal/logging"
	"github.com/cwbudde/algo-eeg/internal/psdplot"
	"github.com/cwbudde/algo-eeg/measure/eeg"
	"github.com/cwbudde/algo-eeg/table"
	"go.uber.org/zap"
)

var errUsage = errors.New("eegband: invalid usage")

type options struct {
	csvPath   string
	edfPath   string
	edfRate   float64
	edfSignal int
	synthetic string
	fs        float64
	duration  float64
	jitter    float64
	seed      int64

	band    string
	timeCol string
	ampCol  string
	low     float64
	high    float64
	denoise float64

	format    string
	plotPath  string
	writeCSV  string
	logLevel  string
	logFormat string
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			_, _ = fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(1)
	}
}

func newFlagSet(o *options, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("eegband", flag.ContinueOnError)
	fs.SetOutput(stderr)

	filter := eeg.DefaultFilterConfig()

	fs.StringVar(&o.csvPath, "csv", "", "read the recording from a CSV file")
	fs.StringVar(&o.edfPath, "edf", "", "read the recording from an EDF file")
	fs.Float64Var(&o.edfRate, "edf-rate", 0, "sample rate of the EDF signal in Hz")
	fs.IntVar(&o.edfSignal, "edf-signal", 0, "index of the EDF signal")
	fs.StringVar(&o.synthetic, "synthetic", "", "synthesize a recording: eeg, ecg, emg, ppg or gsr")
	fs.Float64Var(&o.fs, "fs", 250, "synthetic sample rate in Hz")
	fs.Float64Var(&o.duration, "duration", 10, "synthetic duration in seconds")
	fs.Float64Var(&o.jitter, "jitter", 0, "synthetic timestamp jitter in sample intervals, [0, 0.5)")
	fs.Int64Var(&o.seed, "seed", signal.DefaultSeed, "synthetic noise seed")

	fs.StringVar(&o.band, "band", "alpha", "band name, or \"all\" for every registered band")
	fs.StringVar(&o.timeCol, "time-col", "", "time column name (auto-detected when empty)")
	fs.StringVar(&o.ampCol, "amp-col", "", "amplitude column name (auto-detected when empty)")
	fs.Float64Var(&o.low, "low", filter.Low, "band-pass lower edge in Hz")
	fs.Float64Var(&o.high, "high", filter.High, "band-pass upper edge in Hz")
	fs.Float64Var(&o.denoise, "denoise", filter.DenoiseFactor, "spectral mask factor relative to the median magnitude")

	fs.StringVar(&o.format, "format", "text", "output format: text or json")
	fs.StringVar(&o.plotPath, "plot", "", "write the PSD plot to this .png, .svg or .pdf file")
	fs.StringVar(&o.writeCSV, "write-csv", "", "write the input recording as CSV to this file")
	fs.StringVar(&o.logLevel, "log-level", "warn", "log level: debug, info, warn or error")
	fs.StringVar(&o.logFormat, "log-format", "console", "log format: console or json")

	fs.Usage = func() {
		_, _ = fmt.Fprintf(stderr, "eegband - EEG band power estimation\n\n")
		_, _ = fmt.Fprintf(stderr, "Usage:\n  eegband [flags]\n\n")
		_, _ = fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
		_, _ = fmt.Fprintf(stderr, "\nExamples:\n")
		_, _ = fmt.Fprintf(stderr, "  eegband -csv session.csv -band alpha\n")
		_, _ = fmt.Fprintf(stderr, "  eegband -edf night.edf -edf-rate 256 -band all -format json\n")
		_, _ = fmt.Fprintf(stderr, "  eegband -synthetic eeg -band all -plot psd.png\n")
	}
	return fs
}

func run(args []string, stdout, stderr io.Writer) error {
	var o options
	fs := newFlagSet(&o, stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		fs.Usage()
		return fmt.Errorf("%w: unexpected arguments %v", errUsage, fs.Args())
	}
	if o.format != "text" && o.format != "json" {
		return fmt.Errorf("%w: unknown format %q", errUsage, o.format)
	}

	logger, err := logging.New(o.logLevel, o.logFormat)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	tbl, err := load(o)
	if err != nil {
		return err
	}
	logger.Info("recording loaded", zap.Int("rows", tbl.Rows()), zap.Strings("columns", tbl.Names()))

	if o.writeCSV != "" {
		if err := writeTable(o.writeCSV, tbl); err != nil {
			return err
		}
	}

	session, err := eeg.NewSession(tbl,
		eeg.WithTimeColumn(o.timeCol),
		eeg.WithAmplitudeColumn(o.ampCol),
		eeg.WithFilter(eeg.FilterConfig{
			Low:           o.low,
			High:          o.high,
			Order:         eeg.DefaultFilterConfig().Order,
			DenoiseFactor: o.denoise,
		}),
		eeg.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	bands, reports, err := analyze(session, o.band)
	if err != nil {
		return err
	}

	if o.plotPath != "" {
		if err := plot(o.plotPath, reports); err != nil {
			return err
		}
	}

	if o.format == "json" {
		return printJSON(stdout, o.band, reports)
	}
	return printText(stdout, bands, reports)
}

func load(o options) (*table.Table, error) {
	sources := 0
	for _, s := range []string{o.csvPath, o.edfPath, o.synthetic} {
		if s != "" {
			sources++
		}
	}
	if sources != 1 {
		return nil, fmt.Errorf("%w: exactly one of -csv, -edf or -synthetic is required", errUsage)
	}

	switch {
	case o.csvPath != "":
		f, err := os.Open(o.csvPath)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return table.ReadCSV(f)
	case o.edfPath != "":
		f, err := os.Open(o.edfPath)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return table.ReadEDF(f,
			table.WithEDFSampleRate(o.edfRate),
			table.WithEDFSignal(o.edfSignal),
		)
	default:
		st, err := eeg.ParseSignalType(o.synthetic)
		if err != nil {
			return nil, err
		}
		g := signal.NewGeneratorWithOptions(
			[]core.ProcessorOption{core.WithSampleRate(o.fs), core.WithDuration(o.duration)},
			signal.WithSeed(o.seed),
		)
		return eeg.Synthesize(g, st, o.jitter)
	}
}

// analyze returns the analyzed bands alongside their reports; failed reports
// do not carry the band themselves.
func analyze(s *eeg.Session, band string) ([]eeg.BandType, []eeg.Report, error) {
	if strings.EqualFold(band, "all") {
		reports, err := s.AnalyzeAll()
		if err != nil {
			return nil, nil, err
		}
		return s.Bands().Registered(), reports, nil
	}
	b, err := eeg.ParseBand(band)
	if err != nil {
		return nil, nil, err
	}
	r, err := s.Analyze(b)
	if err != nil {
		return nil, nil, err
	}
	return []eeg.BandType{b}, []eeg.Report{r}, nil
}

func writeTable(path string, t *table.Table) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := table.WriteCSV(f, t); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// plot renders the PSD of the dominant successful report, marking its band.
func plot(path string, reports []eeg.Report) error {
	r, ok := eeg.DominantBand(reports)
	if !ok {
		return errors.New("eegband: no successful analysis to plot")
	}
	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	err = psdplot.Render(f, r.PSD, psdplot.Options{
		Title:    fmt.Sprintf("PSD, %s %s", r.Band, r.Range),
		BandLow:  r.Range.Low,
		BandHigh: r.Range.High,
		Format:   format,
	})
	if err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func printJSON(w io.Writer, band string, reports []eeg.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if !strings.EqualFold(band, "all") && len(reports) == 1 {
		return enc.Encode(reports[0])
	}
	return enc.Encode(reports)
}

func printText(w io.Writer, bands []eeg.BandType, reports []eeg.Report) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Band\tRange\tN\tFs [Hz]\tBand Power\tTotal Power\tRelative\tRelative [dB]\tPeak [Hz]\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(tw, "----\t-----\t-\t-------\t----------\t-----------\t--------\t-------------\t---------\n"); err != nil {
		return err
	}
	for i, r := range reports {
		if !r.OK {
			if _, err := fmt.Fprintf(tw, "%s\t-\t%d\t-\t-\t-\t-\t-\t%s\n", bands[i], r.N, r.Reason); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%d\t%.3f\t%.6g\t%.6g\t%.4f\t%.2f\t%.2f\n",
			r.Band,
			r.Range,
			r.N,
			r.SampleRate,
			r.BandPower,
			r.TotalPower,
			r.RelativePower,
			core.LinearPowerToDB(r.RelativePower),
			r.PeakFrequency(),
		); err != nil {
			return err
		}
	}
	return tw.Flush()
}
