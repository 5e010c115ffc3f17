// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flux

import (
	"fmt"
	"math"

	"github.com/astrokit/pulsefit/data"
	"github.com/astrokit/pulsefit/mathx"
	"github.com/astrokit/pulsefit/prior"
)

// Polynomial models the smooth baseline flux as a degree N-1
// polynomial about the midpoint of the time array, coefficients
// ordered lowest degree first.
type Polynomial struct {
	// N is the number of coefficients.
	N int

	// Name namespaces this component's parameter keys.
	Name string

	// Basename prefixes the coefficient keys. Default "b".
	Basename string
}

// CoeffKeys returns the coefficient keys in degree order.
func (m Polynomial) CoeffKeys() []string {
	base := m.Basename
	if base == "" {
		base = "b"
	}
	keys := make([]string, m.N)
	for i := range keys {
		keys[i] = Key(fmt.Sprintf("%s%d", base, i), m.Name)
	}
	return keys
}

func (m Polynomial) Parameters() []string { return m.CoeffKeys() }

func (m Polynomial) Pulse() bool { return false }

func (m Polynomial) Evaluate(time []float64, p Params) []float64 {
	out := make([]float64, len(time))
	if len(time) == 0 || m.N == 0 {
		return out
	}
	cs := make([]float64, m.N)
	for i, k := range m.CoeffKeys() {
		cs[i] = p[k]
	}
	mid := 0.5 * (time[0] + time[len(time)-1])
	for i, t := range time {
		// Horner on the shifted time.
		x := t - mid
		v := cs[len(cs)-1]
		for j := len(cs) - 2; j >= 0; j-- {
			v = v*x + cs[j]
		}
		out[i] = v
	}
	return out
}

// Priors gives the constant term a uniform prior up to the flux
// maximum and each higher-degree term a zero-mean normal whose scale
// shrinks as range/duration^i/i!, since a baseline drifting that fast
// at order i would dominate the observed range.
func (m Polynomial) Priors(d *data.TimeSeries) (*prior.Dict, error) {
	pd := prior.NewDict()
	for i, k := range m.CoeffKeys() {
		if i == 0 {
			pd.Set(k, prior.Uniform{Min: 0, Max: d.MaxFlux()})
			continue
		}
		scale := d.RangeFlux() / math.Pow(d.Duration(), float64(i)) / mathx.Factorial(i)
		pd.Set(k, prior.Normal{Mu: 0, Sigma: scale})
	}
	return pd, nil
}
