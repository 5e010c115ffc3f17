// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prior

import "gonum.org/v1/gonum/stat/distuv"

// OrderedUniform is the "minimum of remaining" order-statistics prior
// for one arrival time in an ordered chain. For N arrival times each
// independently uniform on [Min, Max], the earliest is the first
// order statistic, distributed as Beta(1, N) rescaled onto [Min, Max];
// each later one is the minimum of the values still to be placed,
// Beta(1, Remaining) on [lo, Max] where lo is conditioned at sample
// time on the realized value of the immediately preceding arrival
// time (plus Spacing). Chaining these conditionals reproduces exactly
// the joint law of ordered uniform order statistics, so draws come
// out non-decreasing by construction.
type OrderedUniform struct {
	// Min, Max is the span of the underlying uniforms.
	Min, Max float64

	// Remaining counts this arrival time and every one after it
	// in the chain.
	Remaining int

	// ReferenceKey names the immediately preceding arrival-time
	// parameter. It is empty for the first in the chain, in which
	// case the lower bound is simply Min.
	ReferenceKey string

	// Spacing is the minimum separation from the referenced
	// arrival time.
	Spacing float64
}

func (d OrderedUniform) beta() distuv.Beta {
	return distuv.Beta{Alpha: 1, Beta: float64(d.Remaining)}
}

func (d OrderedUniform) Bounds() (float64, float64) {
	return d.Min, d.Max
}

// RescaleFrom maps u onto [lo, Max] through the Beta(1, Remaining)
// quantile. Dict.Rescale supplies lo from the realized reference
// value; Rescale uses the unconditioned Min.
func (d OrderedUniform) RescaleFrom(u, lo float64) float64 {
	return lo + (d.Max-lo)*d.beta().Quantile(u)
}

func (d OrderedUniform) Rescale(u float64) float64 {
	return d.RescaleFrom(u, d.Min)
}

// DensityFrom returns the conditional density of x given the lower
// bound lo.
func (d OrderedUniform) DensityFrom(x, lo float64) float64 {
	if x < lo || x > d.Max {
		return 0
	}
	width := d.Max - lo
	return d.beta().Prob((x-lo)/width) / width
}

func (d OrderedUniform) Density(x float64) float64 {
	return d.DensityFrom(x, d.Min)
}
