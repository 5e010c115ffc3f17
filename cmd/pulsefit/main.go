// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// pulsefit loads a time-domain flux table, assembles a pulse plus
// baseline flux model, and prints the prior mapping and likelihood
// contract that a nested sampler would consume. Sampling itself, plots
// and result databases are external collaborators.
package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/astrokit/pulsefit/data"
	"github.com/astrokit/pulsefit/flux"
	"github.com/astrokit/pulsefit/likelihood"
	"github.com/astrokit/pulsefit/prior"
)

var opts struct {
	pulseNumber    int
	nShapelets     []int
	nPolynomial    int
	truncate       float64
	betaMin        float64
	betaMax        float64
	betaPrior      string
	cMix           float64
	cMaxMultiplier float64
	toaPriorWidth  float64
	toaPriorTime   string
	toaMinSpacing  float64
	verbose        bool
}

func main() {
	root := &cobra.Command{
		Use:   "pulsefit <data-file>",
		Short: "Derive the priors and likelihood for a pulse-fitting analysis",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return run(args[0])
		},
	}

	f := root.Flags()
	f.IntVarP(&opts.pulseNumber, "pulse-number", "p", data.AllPulses,
		"pulse number to load; all rows if unset")
	f.IntSliceVarP(&opts.nShapelets, "n-shapelets", "s", []int{1},
		"shapelet counts, one per pulse component")
	f.IntVarP(&opts.nPolynomial, "n-polynomial", "b", 1,
		"order of the baseline polynomial")
	f.Float64Var(&opts.truncate, "truncate-data", 0,
		"truncate to this duration fraction around the reference time")
	f.Float64Var(&opts.betaMin, "beta-min", 0, "minimum beta; data-derived if unset")
	f.Float64Var(&opts.betaMax, "beta-max", 0, "maximum beta; data-derived if unset")
	f.StringVar(&opts.betaPrior, "beta-prior", flux.BetaUniform,
		"beta prior type: uniform or log-uniform")
	f.Float64Var(&opts.cMix, "c-mix", 0.1, "spike weight of the coefficient priors")
	f.Float64Var(&opts.cMaxMultiplier, "c-max-multiplier", 1,
		"flux-range multiplier for the coefficient slab bound")
	f.Float64Var(&opts.toaPriorWidth, "toa-prior-width", 1,
		"duration fraction for the arrival-time prior window; 1 uses the whole span")
	f.StringVar(&opts.toaPriorTime, "toa-prior-time", "auto",
		"window center: auto, or a fraction through the duration")
	f.Float64Var(&opts.toaMinSpacing, "toa-min-spacing", 0,
		"minimum spacing between ordered arrival times")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger() zerolog.Logger {
	level := zerolog.InfoLevel
	if opts.verbose {
		level = zerolog.DebugLevel
	}
	out := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}

func run(path string) error {
	log := newLogger()

	log.Info().Str("file", path).Int("pulse", opts.pulseNumber).Msg("loading data")
	series, err := data.FromFile(path, opts.pulseNumber)
	if err != nil {
		return err
	}
	if opts.truncate > 0 {
		series.Truncate(opts.truncate)
	}
	log.Info().
		Int("samples", series.Len()).
		Float64("start", series.Start()).
		Float64("end", series.End()).
		Float64("rms", series.RMS()).
		Float64("max_flux", series.MaxFlux()).
		Msg("data loaded")

	full, null, pulses, err := buildModels()
	if err != nil {
		return err
	}

	fullPriors, err := samplerPriors(series, full, pulses)
	if err != nil {
		return err
	}
	nullPriors, err := samplerPriors(series, null, nil)
	if err != nil {
		return err
	}

	fullL := likelihood.New(series, full)
	nullL := likelihood.NewNull(series, null)
	log.Debug().
		Int("full_params", len(fullL.Params)).
		Int("null_params", len(nullL.Params)).
		Msg("likelihoods constructed")

	fmt.Printf("Null model priors (%d parameters):\n", nullPriors.Len())
	if err := printPriors(nullPriors); err != nil {
		return err
	}
	fmt.Printf("\nFull model priors (%d parameters):\n", fullPriors.Len())
	return printPriors(fullPriors)
}

// buildModels assembles the full (pulses + baseline) and null
// (baseline only) models, returning the shapelet components so their
// arrival times can be ordered.
func buildModels() (full, null flux.Model, pulses []flux.Shapelet, err error) {
	fullParts := []flux.Model{flux.Zero{}}
	for i, n := range opts.nShapelets {
		if n <= 0 {
			continue
		}
		s := flux.Shapelet{
			N:              n,
			Name:           fmt.Sprintf("S%d", i),
			TOAPriorWidth:  opts.toaPriorWidth,
			CMix:           opts.cMix,
			CMaxMultiplier: opts.cMaxMultiplier,
			BetaMin:        opts.betaMin,
			BetaMax:        opts.betaMax,
			BetaPrior:      opts.betaPrior,
		}
		if opts.toaPriorTime == "auto" {
			s.TOAPriorAuto = true
		} else {
			s.TOAPriorTime, err = strconv.ParseFloat(opts.toaPriorTime, 64)
			if err != nil {
				return nil, nil, nil, fmt.Errorf("bad --toa-prior-time: %w", err)
			}
		}
		pulses = append(pulses, s)
		fullParts = append(fullParts, s)
	}

	nullParts := []flux.Model{flux.Zero{}}
	if opts.nPolynomial > 0 {
		baseline := flux.Polynomial{N: opts.nPolynomial, Name: "BP"}
		fullParts = append(fullParts, baseline)
		nullParts = append(nullParts, baseline)
	}

	full, err = flux.Join(fullParts...)
	if err != nil {
		return nil, nil, nil, err
	}
	null, err = flux.Join(nullParts...)
	if err != nil {
		return nil, nil, nil, err
	}
	return full, null, pulses, nil
}

// samplerPriors derives the model's priors, adds the noise-scale
// prior and, for multi-pulse models, replaces the arrival-time priors
// with the ordering chain.
func samplerPriors(series *data.TimeSeries, model flux.Model, pulses []flux.Shapelet) (*prior.Dict, error) {
	priors, err := model.Priors(series)
	if err != nil {
		return nil, err
	}
	priors.Set(likelihood.SigmaKey, likelihood.SigmaPrior(series))

	toaKeys := make([]string, len(pulses))
	for i, s := range pulses {
		toaKeys[i] = s.TOAKey()
	}
	if err := priors.OrderArrivalTimes(toaKeys, opts.toaMinSpacing); err != nil {
		return nil, err
	}
	return priors, nil
}

func printPriors(priors *prior.Dict) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header([]string{"Parameter", "Type", "Min", "Max"})

	var rows [][]string
	for _, k := range priors.Keys() {
		p, _ := priors.Get(k)
		min, max := p.Bounds()
		rows = append(rows, []string{
			k,
			fmt.Sprintf("%T", p),
			strconv.FormatFloat(min, 'g', 6, 64),
			strconv.FormatFloat(max, 'g', 6, 64),
		})
	}
	if err := table.Bulk(rows); err != nil {
		return err
	}
	return table.Render()
}
