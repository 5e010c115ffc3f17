// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// likelihood scores flux-model parameters against observed data under
// i.i.d. Gaussian noise with unknown scale sigma, itself a fit
// parameter. The core is the pure function LogLikelihood; Gaussian
// and Null wrap it in the mutable-parameter calling convention the
// external sampler expects (set every key, then call LogLikelihood
// with no arguments, once per proposed parameter vector).
package likelihood

import (
	"math"

	"github.com/astrokit/pulsefit/data"
	"github.com/astrokit/pulsefit/flux"
	"github.com/astrokit/pulsefit/prior"
)

// SigmaKey is the parameter key of the noise scale.
const SigmaKey = "sigma"

// LogLikelihood returns the Gaussian log likelihood of the model
// flux against the observed flux:
//
//	-0.5·Σ_i [((flux_i - model_i)/sigma)² + log(2π·sigma²)]
//
// where modelFlux is the model evaluated at the observation times and
// sigma is read from p. A non-finite result (from a degenerate
// parameter draw, say sigma = 0) is coerced to zero so the sampler
// never sees it; that tolerance can mask real problems, so fix the
// priors rather than rely on it.
func LogLikelihood(obsFlux, modelFlux []float64, p flux.Params) float64 {
	sigma := p[SigmaKey]
	norm := math.Log(2 * math.Pi * sigma * sigma)
	sum := 0.0
	for i, f := range obsFlux {
		r := (f - modelFlux[i]) / sigma
		sum += -0.5 * (r*r + norm)
	}
	if math.IsNaN(sum) || math.IsInf(sum, 0) {
		return 0
	}
	return sum
}

// Gaussian is the full-model likelihood. The sampler writes proposed
// values into Params and calls LogLikelihood.
type Gaussian struct {
	// Params holds the current parameter values. Its keys are the
	// model's parameters plus SigmaKey.
	Params flux.Params

	time  []float64
	flux  []float64
	model flux.Model

	noiseLogL float64
	hasNoise  bool
}

// New builds a Gaussian likelihood over the data and model. The data
// arrays are snapshotted, so later truncation of the series does not
// affect the likelihood.
func New(d *data.TimeSeries, model flux.Model) *Gaussian {
	g := &Gaussian{
		Params: make(flux.Params),
		time:   d.Time(),
		flux:   d.Flux(),
		model:  model,
	}
	for _, k := range model.Parameters() {
		g.Params[k] = math.NaN()
	}
	g.Params[SigmaKey] = math.NaN()
	return g
}

// LogLikelihood evaluates the likelihood at the current Params.
func (g *Gaussian) LogLikelihood() float64 {
	return LogLikelihood(g.flux, g.model.Evaluate(g.time, g.Params), g.Params)
}

// SetNoiseLogLikelihood records the precomputed reference value
// (typically the null model's log evidence) used downstream for
// Bayes-factor comparison.
func (g *Gaussian) SetNoiseLogLikelihood(v float64) {
	g.noiseLogL = v
	g.hasNoise = true
}

// NoiseLogLikelihood returns the recorded reference value, or NaN if
// none was set.
func (g *Gaussian) NoiseLogLikelihood() float64 {
	if !g.hasNoise {
		return math.NaN()
	}
	return g.noiseLogL
}

// Null is the baseline-only likelihood: the same Gaussian form
// evaluated against only the non-pulse part of the model. Its
// evidence is the reference for Bayes-factor comparison against the
// full model.
type Null struct {
	// Params holds the current parameter values: the baseline
	// parameters plus SigmaKey.
	Params flux.Params

	time  []float64
	flux  []float64
	model flux.Model
}

// NewNull builds the baseline-only likelihood over the data and
// model. Pulse components of the model are ignored during
// evaluation, but note their parameters still appear in Params when
// the full model is passed; pass the baseline-only model to keep the
// parameter space minimal.
func NewNull(d *data.TimeSeries, model flux.Model) *Null {
	n := &Null{
		Params: make(flux.Params),
		time:   d.Time(),
		flux:   d.Flux(),
		model:  model,
	}
	for _, k := range model.Parameters() {
		n.Params[k] = math.NaN()
	}
	n.Params[SigmaKey] = math.NaN()
	return n
}

// LogLikelihood evaluates the baseline-only likelihood at the current
// Params.
func (n *Null) LogLikelihood() float64 {
	return LogLikelihood(n.flux, flux.BaselineOnly(n.model, n.time, n.Params), n.Params)
}

// SigmaPrior returns the prior for the noise scale: uniform from zero
// to the observed flux range.
func SigmaPrior(d *data.TimeSeries) prior.Uniform {
	return prior.Uniform{Min: 0, Max: d.RangeFlux()}
}
