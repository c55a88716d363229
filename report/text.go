// SPDX-License-Identifier: MIT

package report

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/slabguide/modesolver"
	"github.com/katalvlaran/slabguide/slab"
)

var (
	// ErrUnknownUnit is returned by ParseAngleUnit.
	ErrUnknownUnit = errors.New("report: unknown angle unit")

	// ErrNoData is returned when no series has a finite sample.
	ErrNoData = errors.New("report: nothing to plot")

	// ErrUnsupportedFormat is returned for an image format gonum/plot cannot write.
	ErrUnsupportedFormat = errors.New("report: unsupported image format")
)

// AngleUnit selects how angles are printed.
type AngleUnit int

const (
	Degrees AngleUnit = iota
	Radians
)

// String implements fmt.Stringer.
func (u AngleUnit) String() string {
	if u == Radians {
		return "rad"
	}

	return "deg"
}

// Convert maps an angle in radians to u.
func (u AngleUnit) Convert(rad float64) float64 {
	if u == Radians {
		return rad
	}

	return slab.Degrees(rad)
}

// ParseAngleUnit accepts "deg"/"degrees" and "rad"/"radians".
func ParseAngleUnit(s string) (AngleUnit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "deg", "degree", "degrees", "":
		return Degrees, nil
	case "rad", "radian", "radians":
		return Radians, nil
	}

	return 0, fmt.Errorf("unit %q: %w", s, ErrUnknownUnit)
}

// Line renders one solution in the historical report format.
func Line(sol modesolver.Solution, unit AngleUnit) string {
	return fmt.Sprintf("Modo %s %d: Angulo optimo = %f, n efectivo = %f",
		sol.Request.Label(), sol.Request.Order, unit.Convert(sol.Angle), sol.EffectiveIndex)
}

// WriteTable writes one Line per solution.
func WriteTable(w io.Writer, sols []modesolver.Solution, unit AngleUnit) error {
	for _, s := range sols {
		if _, err := fmt.Fprintln(w, Line(s, unit)); err != nil {
			return err
		}
	}

	return nil
}

// csvHeader is the column layout of WriteCSV.
var csvHeader = []string{"polarization", "theory", "parity", "order", "angle_rad", "angle_deg", "residual", "n_eff"}

// WriteCSV writes solutions as CSV with a header row.
func WriteCSV(w io.Writer, sols []modesolver.Solution) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, s := range sols {
		parity := ""
		if s.Request.Theory == slab.Wave {
			parity = s.Request.Parity.String()
		}
		rec := []string{
			s.Request.Polarization.String(),
			s.Request.Theory.String(),
			parity,
			strconv.Itoa(s.Request.Order),
			formatFloat(s.Angle),
			formatFloat(slab.Degrees(s.Angle)),
			formatFloat(s.Residual),
			formatFloat(s.EffectiveIndex),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

// WriteProfileCSV writes one row per sample: series, angle_rad, angle_deg, residual.
func WriteProfileCSV(w io.Writer, series ...Series) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"series", "angle_rad", "angle_deg", "residual"}); err != nil {
		return err
	}
	for _, s := range series {
		for _, p := range s.Samples {
			rec := []string{s.Name, formatFloat(p.Angle), formatFloat(slab.Degrees(p.Angle)), formatFloat(p.Residual)}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
	}
	cw.Flush()

	return cw.Error()
}

func formatFloat(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
