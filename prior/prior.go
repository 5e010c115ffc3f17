// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// prior provides the one-dimensional prior distributions consumed by
// an external nested sampler. Each prior maps the unit interval onto
// its support through an analytic inverse CDF.
package prior

import "math"

var inf = math.Inf(1)

// A Prior is a one-dimensional prior distribution.
type Prior interface {
	// Bounds returns the support of the prior. Unbounded supports
	// report ±Inf.
	Bounds() (min, max float64)

	// Rescale maps u in [0, 1] onto the prior's support. This is
	// the inverse CDF, so a uniform unit draw rescales to a draw
	// from the prior.
	Rescale(u float64) float64

	// Density returns the probability density of the prior at x.
	Density(x float64) float64
}

// RescaleEach returns p.Rescale(us[i]) for each i.
func RescaleEach(p Prior, us []float64) []float64 {
	out := make([]float64, len(us))
	for i, u := range us {
		out[i] = p.Rescale(u)
	}
	return out
}

// DensityEach returns p.Density(xs[i]) for each i.
func DensityEach(p Prior, xs []float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = p.Density(x)
	}
	return out
}
