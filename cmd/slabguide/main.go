// SPDX-License-Identifier: MIT

// Command slabguide solves guided modes of a planar dielectric slab waveguide.
//
//	slabguide solve   -pol te -theory ray -order 0
//	slabguide sweep   -pols te,tm -theories ray,wave -orders 4 -csv modes.csv
//	slabguide profile -pol tm -theory wave -parity even -plot residual.png -html residual.html
//
// Every command accepts -config file.yaml; flags given explicitly override it.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"

	"github.com/katalvlaran/slabguide/modesolver"
	"github.com/katalvlaran/slabguide/report"
	"github.com/katalvlaran/slabguide/slab"
)

var logger = log.New(os.Stderr, "slabguide: ", 0)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	if len(args) == 0 {
		return usageError("missing command")
	}

	switch args[0] {
	case "solve":
		return runSolve(ctx, args[1:], stdout)
	case "sweep":
		return runSweep(ctx, args[1:], stdout)
	case "profile":
		return runProfile(ctx, args[1:], stdout)
	default:
		return usageError(fmt.Sprintf("unknown command: %s", args[0]))
	}
}

func usageError(msg string) error {
	return fmt.Errorf("%s\nusage: slabguide <solve|sweep|profile> [flags]", msg)
}

// modeFlags select one mode variant.
type modeFlags struct {
	pol    string
	theory string
	parity string
	order  int
}

func bindMode(fs *flag.FlagSet) *modeFlags {
	m := &modeFlags{}
	fs.StringVar(&m.pol, "pol", "te", "polarization: te|tm")
	fs.StringVar(&m.theory, "theory", "ray", "formulation: ray|wave|ray-legacy")
	fs.StringVar(&m.parity, "parity", "even", "field parity for wave theory: even|odd")
	fs.IntVar(&m.order, "order", 0, "mode order")

	return m
}

func (m *modeFlags) request() (modesolver.Request, error) {
	pol, err := slab.ParsePolarization(m.pol)
	if err != nil {
		return modesolver.Request{}, err
	}
	theory, err := slab.ParseTheory(m.theory)
	if err != nil {
		return modesolver.Request{}, err
	}
	parity, err := slab.ParseParity(m.parity)
	if err != nil {
		return modesolver.Request{}, err
	}
	req := modesolver.Request{Polarization: pol, Theory: theory, Parity: parity, Order: m.order}

	return req, req.Validate()
}

func runSolve(_ context.Context, args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("solve", flag.ContinueOnError)
	common := bindCommon(fs)
	mode := bindMode(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	cfg, err := common.resolve(fs)
	if err != nil {
		return err
	}
	g, err := cfg.geometry()
	if err != nil {
		return err
	}
	req, err := mode.request()
	if err != nil {
		return err
	}

	sol, err := modesolver.Solve(g, req, cfg.solverOptions()...)
	if err != nil {
		return err
	}
	if !sol.Guided(g, cfg.Solver.Tolerance) {
		logger.Printf("%s: not guided (residual %.3g)", req, sol.Residual)
	}
	_, err = fmt.Fprintln(stdout, report.Line(sol, cfg.unit()))

	return err
}

func runSweep(ctx context.Context, args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("sweep", flag.ContinueOnError)
	common := bindCommon(fs)
	pols := fs.String("pols", "te,tm", "comma-separated polarizations")
	theories := fs.String("theories", "ray", "comma-separated formulations: ray,wave,ray-legacy")
	parities := fs.String("parities", "even,odd", "comma-separated parities for wave theory")
	orders := fs.Int("orders", 3, "number of mode orders, starting at 0")
	guidedOnly := fs.Bool("guided-only", false, "print guided modes only")
	csvPath := fs.String("csv", "", "also write the table as CSV to this path")
	if err := fs.Parse(args); err != nil {
		return err
	}
	cfg, err := common.resolve(fs)
	if err != nil {
		return err
	}
	g, err := cfg.geometry()
	if err != nil {
		return err
	}
	reqs, err := sweepRequests(*pols, *theories, *parities)
	if err != nil {
		return err
	}

	var all []modesolver.Solution
	for _, req := range reqs {
		if err := ctx.Err(); err != nil {
			return err
		}
		sols, err := modesolver.SolveOrders(g, req, modesolver.Orders(*orders), cfg.solverOptions()...)
		if errors.Is(err, modesolver.ErrUndefinedResidual) {
			logger.Printf("%s: skipped, %v", req.Label(), err)
			continue
		}
		if err != nil {
			return err
		}
		for _, s := range sols {
			guided := s.Guided(g, cfg.Solver.Tolerance)
			if !guided {
				logger.Printf("%s: not guided (residual %.3g)", s.Request, s.Residual)
			}
			if guided || !*guidedOnly {
				all = append(all, s)
			}
		}
	}

	if err := report.WriteTable(stdout, all, cfg.unit()); err != nil {
		return err
	}
	if *csvPath == "" {
		return nil
	}

	return writeFile(*csvPath, func(w io.Writer) error { return report.WriteCSV(w, all) })
}

func sweepRequests(pols, theories, parities string) ([]modesolver.Request, error) {
	var reqs []modesolver.Request
	for _, t := range splitList(theories) {
		theory, err := slab.ParseTheory(t)
		if err != nil {
			return nil, err
		}
		for _, p := range splitList(pols) {
			pol, err := slab.ParsePolarization(p)
			if err != nil {
				return nil, err
			}
			if theory != slab.Wave {
				reqs = append(reqs, modesolver.Request{Polarization: pol, Theory: theory})
				continue
			}
			for _, q := range splitList(parities) {
				parity, err := slab.ParseParity(q)
				if err != nil {
					return nil, err
				}
				reqs = append(reqs, modesolver.Request{Polarization: pol, Theory: theory, Parity: parity})
			}
		}
	}

	return reqs, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}

	return out
}

func runProfile(_ context.Context, args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("profile", flag.ContinueOnError)
	common := bindCommon(fs)
	mode := bindMode(fs)
	points := fs.Int("points", 0, "number of samples (0: config value)")
	csvPath := fs.String("csv", "", "write samples as CSV to this path (default: stdout)")
	imgPath := fs.String("plot", "", "write a plot; format follows the extension (.png, .svg, .pdf)")
	htmlPath := fs.String("html", "", "write an interactive HTML chart")
	if err := fs.Parse(args); err != nil {
		return err
	}
	cfg, err := common.resolve(fs)
	if err != nil {
		return err
	}
	if *points > 0 {
		cfg.Output.Points = *points
	}
	g, err := cfg.geometry()
	if err != nil {
		return err
	}
	req, err := mode.request()
	if err != nil {
		return err
	}

	samples, err := modesolver.Profile(g, req, cfg.Output.Points, cfg.solverOptions()...)
	if err != nil {
		return err
	}
	series := report.NewSeries(req, samples)

	if *csvPath == "" {
		if err := report.WriteProfileCSV(stdout, series); err != nil {
			return err
		}
	} else if err := writeFile(*csvPath, func(w io.Writer) error { return report.WriteProfileCSV(w, series) }); err != nil {
		return err
	}
	if *imgPath != "" {
		if err := report.SavePlot(*imgPath, cfg.unit(), series); err != nil {
			return err
		}
	}
	if *htmlPath != "" {
		return writeFile(*htmlPath, func(w io.Writer) error { return report.WriteHTML(w, cfg.unit(), series) })
	}

	return nil
}

func writeFile(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return write(f)
}
