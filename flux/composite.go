// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flux

import (
	"errors"
	"fmt"

	"github.com/astrokit/pulsefit/data"
	"github.com/astrokit/pulsefit/prior"
)

// ErrDuplicateParameter is reported by Join when two components
// declare the same parameter key.
var ErrDuplicateParameter = errors.New("duplicate parameter key")

// Composite is the additive combination of an ordered collection of
// flux models. Its parameter mapping is the union of its children's
// and its flux is the elementwise sum of theirs.
type Composite struct {
	models []Model
}

// Join combines flux models into a single flat Composite. Composite
// arguments are absorbed rather than nested, so joining already
// joined models never stacks composites. Join fails if two components
// declare the same parameter key; name the components to avoid
// collisions.
func Join(models ...Model) (*Composite, error) {
	c := &Composite{}
	for _, m := range models {
		if sub, ok := m.(*Composite); ok {
			c.models = append(c.models, sub.models...)
			continue
		}
		c.models = append(c.models, m)
	}

	seen := make(map[string]bool)
	for _, m := range c.models {
		for _, k := range m.Parameters() {
			if seen[k] {
				return nil, fmt.Errorf("flux: %w %q", ErrDuplicateParameter, k)
			}
			seen[k] = true
		}
	}
	return c, nil
}

// Models returns the component models in order.
func (c *Composite) Models() []Model {
	return append([]Model(nil), c.models...)
}

func (c *Composite) Parameters() []string {
	var keys []string
	for _, m := range c.models {
		keys = append(keys, m.Parameters()...)
	}
	return keys
}

func (c *Composite) Priors(d *data.TimeSeries) (*prior.Dict, error) {
	pd := prior.NewDict()
	for _, m := range c.models {
		sub, err := m.Priors(d)
		if err != nil {
			return nil, err
		}
		pd.Merge(sub)
	}
	return pd, nil
}

func (c *Composite) Evaluate(time []float64, p Params) []float64 {
	out := make([]float64, len(time))
	for _, m := range c.models {
		for i, v := range m.Evaluate(time, p) {
			out[i] += v
		}
	}
	return out
}

// Pulse reports whether any component is a pulse.
func (c *Composite) Pulse() bool {
	for _, m := range c.models {
		if m.Pulse() {
			return true
		}
	}
	return false
}

// sumWhere sums the children whose Pulse flag equals pulse.
func (c *Composite) sumWhere(time []float64, p Params, pulse bool) []float64 {
	out := make([]float64, len(time))
	for _, m := range c.models {
		if m.Pulse() != pulse {
			continue
		}
		for i, v := range m.Evaluate(time, p) {
			out[i] += v
		}
	}
	return out
}
