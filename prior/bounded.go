// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prior

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// Uniform is a bounded uniform prior on [Min, Max].
type Uniform struct {
	Min, Max float64
}

func (d Uniform) Bounds() (float64, float64) {
	return d.Min, d.Max
}

func (d Uniform) Rescale(u float64) float64 {
	return d.Min + u*(d.Max-d.Min)
}

func (d Uniform) Density(x float64) float64 {
	if x < d.Min || x > d.Max {
		return 0
	}
	return 1 / (d.Max - d.Min)
}

// LogUniform is a prior uniform in log x on [Min, Max]. Min must be
// positive.
type LogUniform struct {
	Min, Max float64
}

func (d LogUniform) Bounds() (float64, float64) {
	return d.Min, d.Max
}

func (d LogUniform) Rescale(u float64) float64 {
	return d.Min * math.Pow(d.Max/d.Min, u)
}

func (d LogUniform) Density(x float64) float64 {
	if x < d.Min || x > d.Max {
		return 0
	}
	return 1 / (x * math.Log(d.Max/d.Min))
}

// Normal is an unbounded Gaussian prior.
type Normal struct {
	Mu, Sigma float64
}

func (d Normal) dist() distuv.Normal {
	return distuv.Normal{Mu: d.Mu, Sigma: d.Sigma}
}

func (d Normal) Bounds() (float64, float64) {
	return -inf, inf
}

func (d Normal) Rescale(u float64) float64 {
	return d.dist().Quantile(u)
}

func (d Normal) Density(x float64) float64 {
	return d.dist().Prob(x)
}
