// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/slabguide/modesolver"
)

// Default image size.
const (
	PlotWidth  = 6 * vg.Inch
	PlotHeight = 4 * vg.Inch
)

// Series is a named residual profile.
type Series struct {
	Name    string
	Samples []modesolver.Sample
}

// NewSeries names samples after req.
func NewSeries(req modesolver.Request, samples []modesolver.Sample) Series {
	return Series{Name: req.String(), Samples: samples}
}

// points returns the finite samples of s with x converted to unit.
func (s Series) points(unit AngleUnit) plotter.XYs {
	xys := make(plotter.XYs, 0, len(s.Samples))
	for _, p := range s.Samples {
		if math.IsNaN(p.Residual) || math.IsInf(p.Residual, 0) {
			continue
		}
		xys = append(xys, plotter.XY{X: unit.Convert(p.Angle), Y: p.Residual})
	}

	return xys
}

// Extent returns the angle range (in unit) and the largest finite residual
// of all series. ok is false when no finite sample exists.
func Extent(unit AngleUnit, series ...Series) (lo, hi, maxResidual float64, ok bool) {
	var xs, ys []float64
	for _, s := range series {
		for _, p := range s.points(unit) {
			xs = append(xs, p.X)
			ys = append(ys, p.Y)
		}
	}
	if len(xs) == 0 {
		return 0, 0, 0, false
	}

	return floats.Min(xs), floats.Max(xs), floats.Max(ys), true
}

var plotFormats = map[string]bool{
	"png": true, "svg": true, "pdf": true, "eps": true,
	"jpg": true, "jpeg": true, "tif": true, "tiff": true,
}

// NewPlot builds a residual-vs-angle line plot.
func NewPlot(unit AngleUnit, series ...Series) (*plot.Plot, error) {
	lo, hi, _, ok := Extent(unit, series...)
	if !ok {
		return nil, ErrNoData
	}

	p := plot.New()
	p.Title.Text = "Eigenvalue residual"
	p.X.Label.Text = fmt.Sprintf("angle (%s)", unit)
	p.Y.Label.Text = "residual"
	p.X.Min, p.X.Max = lo, hi
	p.Add(plotter.NewGrid())

	var lines []interface{}
	for _, s := range series {
		xys := s.points(unit)
		if len(xys) == 0 {
			continue
		}
		lines = append(lines, s.Name, xys)
	}
	if err := plotutil.AddLines(p, lines...); err != nil {
		return nil, err
	}

	return p, nil
}

// WritePlot renders the plot in format (png, svg, pdf, ...) to w.
func WritePlot(w io.Writer, format string, unit AngleUnit, series ...Series) error {
	format = strings.ToLower(format)
	if !plotFormats[format] {
		return fmt.Errorf("%q: %w", format, ErrUnsupportedFormat)
	}
	p, err := NewPlot(unit, series...)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(PlotWidth, PlotHeight, format)
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)

	return err
}

// SavePlot writes the plot to path; the format follows the file extension.
func SavePlot(path string, unit AngleUnit, series ...Series) (err error) {
	format := strings.TrimPrefix(filepath.Ext(path), ".")
	if !plotFormats[strings.ToLower(format)] {
		return fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return WritePlot(f, format, unit, series...)
}
