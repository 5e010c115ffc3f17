// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prior

import (
	"errors"
	"fmt"
	"strings"
)

// Errors reported by Dict operations.
var (
	ErrMissingUnit  = errors.New("no unit value for prior")
	ErrUnknownKey   = errors.New("no prior with key")
	ErrBadReference = errors.New("ordered prior references a later or missing key")
)

// Dict is a mapping from parameter name to Prior that remembers
// insertion order. Declaration order is what makes conditional
// ordered priors resolvable, so it is part of the contract handed to
// the external sampler.
type Dict struct {
	keys []string
	m    map[string]Prior
}

// NewDict returns an empty Dict.
func NewDict() *Dict {
	return &Dict{m: make(map[string]Prior)}
}

// Set inserts or replaces the prior for name. Replacing keeps the
// original declaration position.
func (d *Dict) Set(name string, p Prior) {
	if _, ok := d.m[name]; !ok {
		d.keys = append(d.keys, name)
	}
	d.m[name] = p
}

// Get returns the prior for name.
func (d *Dict) Get(name string) (Prior, bool) {
	p, ok := d.m[name]
	return p, ok
}

// Keys returns the keys in declaration order.
func (d *Dict) Keys() []string {
	return append([]string(nil), d.keys...)
}

// Len returns the number of priors.
func (d *Dict) Len() int {
	return len(d.keys)
}

// Merge copies every prior from other into d, in other's declaration
// order. Existing keys are overwritten in place.
func (d *Dict) Merge(other *Dict) {
	for _, k := range other.keys {
		d.Set(k, other.m[k])
	}
}

// Rescale maps one unit value per prior onto the parameter space,
// walking declaration order so that each OrderedUniform can condition
// its lower bound on the already-rescaled value of its reference key.
func (d *Dict) Rescale(units map[string]float64) (map[string]float64, error) {
	out := make(map[string]float64, len(d.keys))
	for _, k := range d.keys {
		u, ok := units[k]
		if !ok {
			return nil, fmt.Errorf("prior: %w %q", ErrMissingUnit, k)
		}
		p := d.m[k]
		if op, isOrdered := p.(OrderedUniform); isOrdered && op.ReferenceKey != "" {
			ref, ok := out[op.ReferenceKey]
			if !ok {
				return nil, fmt.Errorf("prior: %q: %w (%q)", k, ErrBadReference, op.ReferenceKey)
			}
			out[k] = op.RescaleFrom(u, ref+op.Spacing)
			continue
		}
		out[k] = p.Rescale(u)
	}
	return out, nil
}

// ArrivalTimeKeys returns, in declaration order, the keys containing
// the given marker substring. It reconstructs the pulse-component
// order for OrderArrivalTimes when the caller declared the components
// in pulse order.
func (d *Dict) ArrivalTimeKeys(marker string) []string {
	var keys []string
	for _, k := range d.keys {
		if strings.Contains(k, marker) {
			keys = append(keys, k)
		}
	}
	return keys
}

// OrderArrivalTimes replaces the priors named by keys with the
// order-statistics chain of ordered uniforms: the first key gets the
// first order statistic of len(keys) uniforms on its existing bounds,
// and each later key gets the conditional minimum-of-remaining prior
// referencing the key before it, separated by at least spacing. The
// keys must be supplied in pulse order. With fewer than two keys the
// pass is a no-op.
func (d *Dict) OrderArrivalTimes(keys []string, spacing float64) error {
	if len(keys) < 2 {
		return nil
	}
	for _, k := range keys {
		if _, ok := d.m[k]; !ok {
			return fmt.Errorf("prior: %w %q", ErrUnknownKey, k)
		}
	}
	for i, k := range keys {
		min, max := d.m[k].Bounds()
		op := OrderedUniform{
			Min:       min,
			Max:       max,
			Remaining: len(keys) - i,
			Spacing:   spacing,
		}
		if i > 0 {
			op.ReferenceKey = keys[i-1]
		}
		d.m[k] = op
	}
	return nil
}
