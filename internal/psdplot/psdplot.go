// Package psdplot renders a power spectral density as an image with the
// analyzed band marked.
package psdplot

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/cwbudde/algo-eeg/dsp/core"
	"github.com/cwbudde/algo-eeg/dsp/spectrum"
)

// ErrEmpty is returned for a PSD without bins.
var ErrEmpty = errors.New("psdplot: empty psd")

// FloorDB is how far below the peak the dB axis extends.
const FloorDB = 120.0

// Options controls the rendered figure.
type Options struct {
	Title     string
	BandLow   float64 // Hz; no band marker when BandHigh <= BandLow
	BandHigh  float64
	Width     vg.Length
	Height    vg.Length
	Format    string // "png", "svg" or "pdf"
	MaxFreqHz float64 // 0 shows up to Nyquist
}

func (o Options) withDefaults() Options {
	if o.Width == 0 {
		o.Width = vg.Points(800)
	}
	if o.Height == 0 {
		o.Height = vg.Points(400)
	}
	if o.Format == "" {
		o.Format = "png"
	}
	return o
}

// Points converts a PSD into dB points, clamping empty bins to FloorDB
// below the peak so the curve stays finite.
func Points(psd spectrum.PSD, maxFreq float64) plotter.XYs {
	peak := math.Inf(-1)
	for _, p := range psd.Power {
		peak = math.Max(peak, core.LinearPowerToDB(p))
	}
	floor := peak - FloorDB

	pts := make(plotter.XYs, 0, psd.Len())
	for i, f := range psd.Freq {
		if maxFreq > 0 && f > maxFreq {
			break
		}
		db := core.LinearPowerToDB(psd.Power[i])
		if math.IsNaN(db) || db < floor {
			db = floor
		}
		pts = append(pts, plotter.XY{X: f, Y: db})
	}
	return pts
}

// Render writes the PSD figure to w in o.Format.
func Render(w io.Writer, psd spectrum.PSD, o Options) error {
	if psd.Len() == 0 {
		return ErrEmpty
	}
	o = o.withDefaults()

	p := plot.New()
	p.Title.Text = o.Title
	p.X.Label.Text = "Frequency (Hz)"
	p.Y.Label.Text = "PSD (dB)"
	p.Add(plotter.NewGrid())

	pts := Points(psd, o.MaxFreqHz)
	line, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("psdplot: line: %w", err)
	}
	line.Color = color.RGBA{B: 200, A: 255}
	line.LineStyle.Width = vg.Points(1.2)
	p.Add(line)

	if o.BandHigh > o.BandLow {
		yMin, yMax := pts[0].Y, pts[0].Y
		for _, pt := range pts {
			yMin = math.Min(yMin, pt.Y)
			yMax = math.Max(yMax, pt.Y)
		}
		for _, edge := range []float64{o.BandLow, o.BandHigh} {
			marker, err := plotter.NewLine(plotter.XYs{{X: edge, Y: yMin}, {X: edge, Y: yMax}})
			if err != nil {
				return fmt.Errorf("psdplot: band marker: %w", err)
			}
			marker.Color = color.RGBA{R: 220, A: 255}
			marker.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(5)}
			p.Add(marker)
		}
	}

	wt, err := p.WriterTo(o.Width, o.Height, o.Format)
	if err != nil {
		return fmt.Errorf("psdplot: writer: %w", err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("psdplot: write: %w", err)
	}
	return nil
}
