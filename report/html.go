// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// NewChart builds an interactive residual-vs-angle line chart. The x axis is
// numeric so series sampled on different grids share it.
func NewChart(unit AngleUnit, series ...Series) (*charts.Line, error) {
	lo, hi, _, ok := Extent(unit, series...)
	if !ok {
		return nil, ErrNoData
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Eigenvalue residual",
			Subtitle: "residual vs propagation angle",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{
			Type:   "scroll",
			Orient: "vertical",
			Right:  "10",
			Top:    "20",
			Bottom: "20",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: fmt.Sprintf("angle (%s)", unit),
			Type: "value",
			Min:  lo,
			Max:  hi,
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name:  "residual",
			Scale: opts.Bool(true),
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "inside",
			XAxisIndex: []int{0},
		}),
	)
	for _, s := range series {
		xys := s.points(unit)
		if len(xys) == 0 {
			continue
		}
		items := make([]opts.LineData, len(xys))
		for i, p := range xys {
			items[i] = opts.LineData{Value: []float64{p.X, p.Y}}
		}
		line.AddSeries(s.Name, items)
	}

	return line, nil
}

// WriteHTML renders the chart as a standalone HTML page.
func WriteHTML(w io.Writer, unit AngleUnit, series ...Series) error {
	line, err := NewChart(unit, series...)
	if err != nil {
		return err
	}

	return line.Render(w)
}
