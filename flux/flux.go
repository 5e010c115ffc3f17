// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// flux provides parametric models of time-domain flux: a localized
// shapelet pulse, a polynomial baseline, and additive composites of
// the two. A model declares its parameters, derives priors for them
// from a TimeSeries, and evaluates the flux it predicts for a
// parameter mapping.
package flux

import (
	"github.com/astrokit/pulsefit/data"
	"github.com/astrokit/pulsefit/prior"
)

// Params is a mapping from parameter name to value. The external
// sampler fills one in before every likelihood evaluation.
type Params map[string]float64

// A Model is a parametric flux model.
type Model interface {
	// Parameters returns the model's parameter keys in
	// declaration order.
	Parameters() []string

	// Priors derives a prior for each parameter from the data.
	Priors(d *data.TimeSeries) (*prior.Dict, error)

	// Evaluate returns the model flux at each time for the given
	// parameter values.
	Evaluate(time []float64, p Params) []float64

	// Pulse reports whether the model contributes to pulse-only
	// queries.
	Pulse() bool
}

// Key builds the namespaced parameter key for a model component:
// "toa" for an unnamed component, "toa_S0" for a component named
// "S0". Giving each component a distinct name is what keeps composite
// parameter mappings collision-free.
func Key(base, name string) string {
	if name == "" {
		return base
	}
	return base + "_" + name
}

// Zero is the empty flux model: no parameters, zero flux. It is the
// identity under composition and the seed for incrementally built
// models.
type Zero struct{}

func (Zero) Parameters() []string { return nil }

func (Zero) Priors(*data.TimeSeries) (*prior.Dict, error) { return prior.NewDict(), nil }

func (Zero) Evaluate(time []float64, _ Params) []float64 {
	return make([]float64, len(time))
}

func (Zero) Pulse() bool { return false }

// PulseOnly evaluates only the pulse part of m: for a composite, the
// sum of its pulse-flagged children; for a leaf, its own flux or
// zeros according to its flag. It locates the temporal support of the
// signal for windowing and display.
func PulseOnly(m Model, time []float64, p Params) []float64 {
	if c, ok := m.(*Composite); ok {
		return c.sumWhere(time, p, true)
	}
	if m.Pulse() {
		return m.Evaluate(time, p)
	}
	return make([]float64, len(time))
}

// BaselineOnly evaluates only the non-pulse part of m.
func BaselineOnly(m Model, time []float64, p Params) []float64 {
	if c, ok := m.(*Composite); ok {
		return c.sumWhere(time, p, false)
	}
	if m.Pulse() {
		return make([]float64, len(time))
	}
	return m.Evaluate(time, p)
}
