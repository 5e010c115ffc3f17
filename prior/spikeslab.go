// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prior

import (
	"errors"
	"fmt"
)

// ErrSlabNotUniform is reported by NewSpikeAndSlab for slab
// distributions other than Uniform.
var ErrSlabNotUniform = errors.New("spike-and-slab requires a uniform slab")

// SpikeAndSlab is a mixture prior: with probability Mix the value is
// exactly the slab minimum (the "spike"), otherwise it is uniform on
// the slab. It models coefficients that are plausibly exactly zero
// (component absent) or continuously distributed.
type SpikeAndSlab struct {
	Slab Uniform
	Mix  float64
}

// NewSpikeAndSlab builds a SpikeAndSlab over the given slab. Only a
// bounded Uniform slab admits the analytic inverse CDF below, so any
// other prior is rejected.
func NewSpikeAndSlab(slab Prior, mix float64) (SpikeAndSlab, error) {
	u, ok := slab.(Uniform)
	if !ok {
		return SpikeAndSlab{}, fmt.Errorf("prior: %w, got %T", ErrSlabNotUniform, slab)
	}
	return SpikeAndSlab{Slab: u, Mix: mix}, nil
}

// Spike returns the location of the point mass.
func (d SpikeAndSlab) Spike() float64 {
	return d.Slab.Min
}

func (d SpikeAndSlab) Bounds() (float64, float64) {
	return d.Slab.Min, d.Slab.Max
}

// Rescale maps u onto the mixture. The CDF jumps by Mix at the spike,
// so the inverse sends u <= Mix to the spike and spreads the rest
// uniformly over the slab.
func (d SpikeAndSlab) Rescale(u float64) float64 {
	p := (u - d.Mix) / (1 - d.Mix)
	if p < 0 {
		return d.Slab.Min
	}
	return d.Slab.Min + p*(d.Slab.Max-d.Slab.Min)
}

// Density returns Mix at the spike and (1-Mix)·slab density
// elsewhere. The spike is detected by exact equality against the same
// value Rescale emits; this is a density only in the distributional
// sense (point mass plus continuous part).
func (d SpikeAndSlab) Density(x float64) float64 {
	if x == d.Spike() {
		return d.Mix
	}
	return (1 - d.Mix) * d.Slab.Density(x)
}
