// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flux

import (
	"errors"
	"math"
	"testing"

	"github.com/astrokit/pulsefit/data"
	"github.com/astrokit/pulsefit/prior"
)

func aeq(expect, got float64) bool {
	return math.Abs(expect-got) < 0.00001
}

// gaussianSeries returns n samples of exp(-t²/2) on [-1, 1].
func gaussianSeries(t *testing.T, n int) *data.TimeSeries {
	t.Helper()
	time := make([]float64, n)
	fl := make([]float64, n)
	for i := range time {
		time[i] = -1 + 2*float64(i)/float64(n-1)
		fl[i] = math.Exp(-time[i] * time[i] / 2)
	}
	ts, err := data.FromValues(time, fl)
	if err != nil {
		t.Fatal(err)
	}
	return ts
}

func TestKey(t *testing.T) {
	if got := Key("toa", ""); got != "toa" {
		t.Errorf(`Key("toa", ""): want "toa", got %q`, got)
	}
	if got := Key("toa", "S0"); got != "toa_S0" {
		t.Errorf(`Key("toa", "S0"): want "toa_S0", got %q`, got)
	}
}

func TestShapeletParameters(t *testing.T) {
	checkKeys := func(got, want []string) {
		t.Helper()
		if len(got) != len(want) {
			t.Fatalf("want %v, got %v", want, got)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("want %v, got %v", want, got)
			}
		}
	}
	checkKeys(Shapelet{N: 3}.Parameters(), []string{"beta", "toa", "c0", "c1", "c2"})
	checkKeys(Shapelet{N: 2, Name: "S0"}.Parameters(),
		[]string{"beta_S0", "toa_S0", "c0_S0", "c1_S0"})
}

func TestShapeletGaussianReduction(t *testing.T) {
	// With a single unit coefficient the expansion is H_0 = 1, so
	// the shapelet is a pure Gaussian window.
	s := Shapelet{N: 3}
	p := Params{"toa": 0.1, "beta": 0.5, "c0": 1, "c1": 0, "c2": 0}
	times := []float64{-1, -0.25, 0, 0.1, 0.3, 1}
	for i, v := range s.Evaluate(times, p) {
		x := (times[i] - 0.1) / 0.5
		if want := math.Exp(-x * x); !aeq(want, v) {
			t.Errorf("t=%v: want %v, got %v", times[i], want, v)
		}
	}
}

func TestShapeletPulseScenario(t *testing.T) {
	// Single pulse, toa=0, beta=0.3, c0=2: peak flux 2 at t=0,
	// decaying symmetrically as exp(-(t/0.3)²).
	s := Shapelet{N: 1}
	p := Params{"toa": 0, "beta": 0.3, "c0": 2}
	times := []float64{-1, -0.5, 0, 0.5, 1}
	got := s.Evaluate(times, p)
	if !aeq(2, got[2]) {
		t.Errorf("peak: want 2, got %v", got[2])
	}
	for i, tv := range times {
		if want := 2 * math.Exp(-(tv/0.3)*(tv/0.3)); !aeq(want, got[i]) {
			t.Errorf("t=%v: want %v, got %v", tv, want, got[i])
		}
	}
	// Symmetry about the arrival time.
	if !aeq(got[1], got[3]) || !aeq(got[0], got[4]) {
		t.Errorf("pulse not symmetric: %v", got)
	}
}

func TestShapeletPriors(t *testing.T) {
	ts := gaussianSeries(t, 1000)
	s := Shapelet{N: 2}
	priors, err := s.Priors(ts)
	if err != nil {
		t.Fatal(err)
	}

	// Arrival time spans the data.
	toa, ok := priors.Get("toa")
	if !ok {
		t.Fatal("no toa prior")
	}
	if min, max := toa.Bounds(); !aeq(-1, min) || !aeq(1, max) {
		t.Errorf("toa bounds: want [-1,1], got [%v,%v]", min, max)
	}

	// Width scale defaults to [time step, duration].
	beta, _ := priors.Get("beta")
	if _, ok := beta.(prior.Uniform); !ok {
		t.Errorf("beta: want Uniform, got %T", beta)
	}
	if min, max := beta.Bounds(); !aeq(ts.TimeStep(), min) || !aeq(2, max) {
		t.Errorf("beta bounds: want [%v,2], got [%v,%v]", ts.TimeStep(), min, max)
	}

	// Coefficients get spike-and-slab priors.
	for _, k := range []string{"c0", "c1"} {
		c, _ := priors.Get(k)
		ss, ok := c.(prior.SpikeAndSlab)
		if !ok {
			t.Fatalf("%s: want SpikeAndSlab, got %T", k, c)
		}
		if ss.Mix != 0.5 {
			t.Errorf("%s: want default mix 0.5, got %v", k, ss.Mix)
		}
		if !aeq(ts.RangeFlux(), ss.Slab.Max) {
			t.Errorf("%s: want slab max %v, got %v", k, ts.RangeFlux(), ss.Slab.Max)
		}
	}
}

func TestShapeletPriorWindow(t *testing.T) {
	ts := gaussianSeries(t, 1000)
	s := Shapelet{N: 1, TOAPriorWidth: 0.1, TOAPriorTime: 0.5}
	priors, err := s.Priors(ts)
	if err != nil {
		t.Fatal(err)
	}
	toa, _ := priors.Get("toa")
	min, max := toa.Bounds()
	if got := max - min; got >= ts.Duration() {
		t.Errorf("windowed toa prior: want narrower than duration, got %v", got)
	}
	// Centered halfway through the span.
	if center := 0.5 * (min + max); !aeq(0, center) {
		t.Errorf("window center: want 0, got %v", center)
	}

	// Auto centering follows the pulse-time estimate.
	auto := Shapelet{N: 1, TOAPriorWidth: 0.1, TOAPriorAuto: true}
	priors, err = auto.Priors(ts)
	if err != nil {
		t.Fatal(err)
	}
	toa, _ = priors.Get("toa")
	min, max = toa.Bounds()
	if center := 0.5 * (min + max); math.Abs(center-ts.EstimatePulseTime(0)) > 1e-9 {
		t.Errorf("auto window center: want %v, got %v", ts.EstimatePulseTime(0), center)
	}
}

func TestShapeletBetaPriorTypes(t *testing.T) {
	ts := gaussianSeries(t, 1000)

	s := Shapelet{N: 1, BetaPrior: BetaLogUniform, BetaMin: 0.01, BetaMax: 0.1}
	priors, err := s.Priors(ts)
	if err != nil {
		t.Fatal(err)
	}
	beta, _ := priors.Get("beta")
	lu, ok := beta.(prior.LogUniform)
	if !ok {
		t.Fatalf("beta: want LogUniform, got %T", beta)
	}
	if lu.Min != 0.01 || lu.Max != 0.1 {
		t.Errorf("beta bounds: want [0.01,0.1], got [%v,%v]", lu.Min, lu.Max)
	}

	// An unrecognized type fails before any sampling could start.
	bad := Shapelet{N: 1, BetaPrior: "cauchy"}
	if _, err := bad.Priors(ts); err == nil {
		t.Errorf("unknown beta prior type: want error")
	}
}

func TestPolynomialEvaluate(t *testing.T) {
	// 1 + 2(t-mid) + 3(t-mid)² with mid = 1.
	m := Polynomial{N: 3}
	p := Params{"b0": 1, "b1": 2, "b2": 3}
	times := []float64{0, 1, 2}
	got := m.Evaluate(times, p)
	want := []float64{1 - 2 + 3, 1, 1 + 2 + 3}
	for i := range want {
		if !aeq(want[i], got[i]) {
			t.Errorf("t=%v: want %v, got %v", times[i], want[i], got[i])
		}
	}
}

func TestPolynomialPriors(t *testing.T) {
	ts := gaussianSeries(t, 1000)
	m := Polynomial{N: 3, Name: "BP"}
	priors, err := m.Priors(ts)
	if err != nil {
		t.Fatal(err)
	}

	b0, _ := priors.Get("b0_BP")
	if min, max := b0.Bounds(); min != 0 || !aeq(ts.MaxFlux(), max) {
		t.Errorf("b0: want Uniform[0,max flux], got [%v,%v]", min, max)
	}
	// Higher orders shrink as range/duration^i/i!.
	for i, wantSigma := range []float64{ts.RangeFlux() / 2, ts.RangeFlux() / 4 / 2} {
		k := []string{"b1_BP", "b2_BP"}[i]
		p, _ := priors.Get(k)
		n, ok := p.(prior.Normal)
		if !ok {
			t.Fatalf("%s: want Normal, got %T", k, p)
		}
		if n.Mu != 0 || !aeq(wantSigma, n.Sigma) {
			t.Errorf("%s: want Normal(0,%v), got Normal(%v,%v)", k, wantSigma, n.Mu, n.Sigma)
		}
	}
}

func TestCompositeAdditivity(t *testing.T) {
	s := Shapelet{N: 1, Name: "S0"}
	b := Polynomial{N: 2, Name: "BP"}
	c, err := Join(s, b)
	if err != nil {
		t.Fatal(err)
	}

	p := Params{
		"toa_S0": 0, "beta_S0": 0.3, "c0_S0": 2,
		"b0_BP": 1, "b1_BP": 0.5,
	}
	times := []float64{-1, -0.5, 0, 0.5, 1}
	got := c.Evaluate(times, p)
	sv := s.Evaluate(times, p)
	bv := b.Evaluate(times, p)
	for i := range times {
		if got[i] != sv[i]+bv[i] {
			t.Errorf("t=%v: composite %v != sum %v", times[i], got[i], sv[i]+bv[i])
		}
	}

	// Joining with the zero model changes nothing.
	withZero, err := Join(Zero{}, c)
	if err != nil {
		t.Fatal(err)
	}
	for i, v := range withZero.Evaluate(times, p) {
		if v != got[i] {
			t.Errorf("zero model broke identity at t=%v", times[i])
		}
	}
}

func TestCompositeFlattens(t *testing.T) {
	a, err := Join(Shapelet{N: 1, Name: "S0"}, Polynomial{N: 1, Name: "BP"})
	if err != nil {
		t.Fatal(err)
	}
	b, err := Join(a, Shapelet{N: 1, Name: "S1"})
	if err != nil {
		t.Fatal(err)
	}
	for _, m := range b.Models() {
		if _, ok := m.(*Composite); ok {
			t.Fatal("composite nested inside composite")
		}
	}
	if len(b.Models()) != 3 {
		t.Errorf("want 3 flattened children, got %d", len(b.Models()))
	}
}

func TestCompositeCollision(t *testing.T) {
	_, err := Join(Shapelet{N: 1}, Shapelet{N: 1})
	if !errors.Is(err, ErrDuplicateParameter) {
		t.Errorf("unnamed duplicate components: want ErrDuplicateParameter, got %v", err)
	}
	if _, err := Join(Shapelet{N: 1, Name: "S0"}, Shapelet{N: 1, Name: "S1"}); err != nil {
		t.Errorf("namespaced components: unexpected error %v", err)
	}
}

func TestCompositePriors(t *testing.T) {
	ts := gaussianSeries(t, 1000)
	c, err := Join(Shapelet{N: 2, Name: "S0"}, Polynomial{N: 1, Name: "BP"})
	if err != nil {
		t.Fatal(err)
	}
	priors, err := c.Priors(ts)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"toa_S0", "beta_S0", "c0_S0", "c1_S0", "b0_BP"}
	if priors.Len() != len(want) {
		t.Fatalf("want %d priors, got %d (%v)", len(want), priors.Len(), priors.Keys())
	}
	for _, k := range want {
		if _, ok := priors.Get(k); !ok {
			t.Errorf("missing prior %q", k)
		}
	}
}

func TestPulseOnly(t *testing.T) {
	s := Shapelet{N: 1, Name: "S0"}
	b := Polynomial{N: 1, Name: "BP"}
	c, err := Join(s, b)
	if err != nil {
		t.Fatal(err)
	}
	p := Params{"toa_S0": 0, "beta_S0": 0.3, "c0_S0": 2, "b0_BP": 5}
	times := []float64{-0.5, 0, 0.5}

	pulse := PulseOnly(c, times, p)
	for i, v := range s.Evaluate(times, p) {
		if pulse[i] != v {
			t.Errorf("PulseOnly: want shapelet flux %v, got %v", v, pulse[i])
		}
	}
	base := BaselineOnly(c, times, p)
	for i := range times {
		if base[i] != 5 {
			t.Errorf("BaselineOnly: want 5, got %v", base[i])
		}
	}

	// Leaf models dispatch on their own flag.
	zero := PulseOnly(b, times, p)
	for _, v := range zero {
		if v != 0 {
			t.Errorf("PulseOnly of baseline: want 0, got %v", v)
		}
	}
}
