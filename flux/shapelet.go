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

// Beta prior types accepted by Shapelet.BetaPrior.
const (
	BetaUniform    = "uniform"
	BetaLogUniform = "log-uniform"
)

// Shapelet models a localized pulse as a Gaussian-windowed Hermite
// expansion:
//
//	f(t) = exp(-x²)·Σ_i c_i·H_i(x),  x = (t - toa)/beta
//
// with arrival time toa, width scale beta and coefficients c_0..c_{N-1}.
//
// The zero value of every optional field selects a sensible default,
// so Shapelet{N: 3} is a usable model.
type Shapelet struct {
	// N is the number of Hermite coefficients.
	N int

	// Name namespaces this component's parameter keys
	// ("toa_<Name>" and so on). Leave empty for a single-component
	// model.
	Name string

	// Basename prefixes the coefficient keys. Default "c", giving
	// keys "c0", "c1", ….
	Basename string

	// TOAPriorWidth is the fraction of the data duration used for
	// the arrival-time prior window. Zero or one means the full
	// data span.
	TOAPriorWidth float64

	// TOAPriorAuto centers the window on the estimated pulse time.
	// Otherwise the window is centered TOAPriorTime fractions
	// through the duration. Ignored when the full span is used.
	TOAPriorAuto bool
	TOAPriorTime float64

	// CMix is the spike weight of the coefficient priors. Zero
	// means 0.5.
	CMix float64

	// CMaxMultiplier scales the flux range to the slab upper
	// bound. Zero means 1.
	CMaxMultiplier float64

	// BetaMin and BetaMax bound the width-scale prior. Zero means
	// derive from the data: the sample spacing and the duration.
	BetaMin, BetaMax float64

	// BetaPrior selects the width-scale prior type, BetaUniform or
	// BetaLogUniform. Empty means BetaUniform.
	BetaPrior string
}

// TOAKey returns the arrival-time parameter key.
func (s Shapelet) TOAKey() string { return Key("toa", s.Name) }

// BetaKey returns the width-scale parameter key.
func (s Shapelet) BetaKey() string { return Key("beta", s.Name) }

// CoeffKeys returns the Hermite coefficient keys in degree order.
func (s Shapelet) CoeffKeys() []string {
	base := s.Basename
	if base == "" {
		base = "c"
	}
	keys := make([]string, s.N)
	for i := range keys {
		keys[i] = Key(fmt.Sprintf("%s%d", base, i), s.Name)
	}
	return keys
}

func (s Shapelet) Parameters() []string {
	return append([]string{s.BetaKey(), s.TOAKey()}, s.CoeffKeys()...)
}

func (s Shapelet) Pulse() bool { return true }

func (s Shapelet) Evaluate(time []float64, p Params) []float64 {
	toa := p[s.TOAKey()]
	beta := p[s.BetaKey()]
	cs := make([]float64, s.N)
	for i, k := range s.CoeffKeys() {
		cs[i] = p[k]
	}

	out := make([]float64, len(time))
	for i, t := range time {
		x := (t - toa) / beta
		out[i] = math.Exp(-x*x) * mathx.HermiteSeries(cs, x)
	}
	return out
}

func (s Shapelet) Priors(d *data.TimeSeries) (*prior.Dict, error) {
	pd := prior.NewDict()

	// Arrival time: the full data span, or a window of full-width
	// duration·TOAPriorWidth centered on the estimated or
	// requested pulse time.
	width := s.TOAPriorWidth
	if width == 0 {
		width = 1
	}
	if width < 1 {
		var t0 float64
		if s.TOAPriorAuto {
			t0 = d.EstimatePulseTime(0)
		} else {
			t0 = d.Start() + s.TOAPriorTime*d.Duration()
		}
		dt := d.Duration() * width
		pd.Set(s.TOAKey(), prior.Uniform{Min: t0 - dt, Max: t0 + dt})
	} else {
		pd.Set(s.TOAKey(), prior.Uniform{Min: d.Start(), Max: d.End()})
	}

	// Width scale.
	bmin, bmax := s.BetaMin, s.BetaMax
	if bmin == 0 {
		bmin = d.TimeStep()
	}
	if bmax == 0 {
		bmax = d.Duration()
	}
	switch s.BetaPrior {
	case "", BetaUniform:
		pd.Set(s.BetaKey(), prior.Uniform{Min: bmin, Max: bmax})
	case BetaLogUniform:
		pd.Set(s.BetaKey(), prior.LogUniform{Min: bmin, Max: bmax})
	default:
		return nil, fmt.Errorf("flux: unknown beta prior type %q", s.BetaPrior)
	}

	// Coefficients: spike-and-slab, the spike at a near-zero slab
	// floor so a coefficient can drop out of the expansion.
	mix := s.CMix
	if mix == 0 {
		mix = 0.5
	}
	mult := s.CMaxMultiplier
	if mult == 0 {
		mult = 1
	}
	for _, k := range s.CoeffKeys() {
		slab := prior.Uniform{Min: 1e-20 * d.MaxFlux(), Max: mult * d.RangeFlux()}
		ss, err := prior.NewSpikeAndSlab(slab, mix)
		if err != nil {
			return nil, err
		}
		pd.Set(k, ss)
	}
	return pd, nil
}
