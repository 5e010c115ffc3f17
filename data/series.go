// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// data holds time-domain flux series and the summary statistics the
// flux models use to derive their priors.
package data

import (
	"errors"
	"fmt"
	"math"
)

var nan = math.NaN()

// Validation errors reported by FromValues.
var (
	ErrLengthMismatch = errors.New("time and flux must have equal lengths")
	ErrUnsortedTime   = errors.New("time must be sorted ascending")
)

// TimeSeries is a time-ordered series of flux samples. Once
// constructed, the samples never change except through Truncate; all
// derived statistics are recomputed from the current arrays on every
// call.
type TimeSeries struct {
	time []float64
	flux []float64

	refTime float64
	hasRef  bool
}

// FromValues constructs a TimeSeries from time and flux arrays. The
// arrays must have equal lengths and time must be non-decreasing. The
// inputs are copied, so the caller's slices are never aliased.
func FromValues(time, flux []float64) (*TimeSeries, error) {
	if len(time) != len(flux) {
		return nil, fmt.Errorf("data: time has length %d, flux has length %d: %w",
			len(time), len(flux), ErrLengthMismatch)
	}
	for i := 1; i < len(time); i++ {
		if time[i] < time[i-1] {
			return nil, fmt.Errorf("data: time decreases at index %d: %w", i, ErrUnsortedTime)
		}
	}
	ts := &TimeSeries{
		time: append([]float64(nil), time...),
		flux: append([]float64(nil), flux...),
	}
	return ts, nil
}

// Time returns a copy of the time array.
func (ts *TimeSeries) Time() []float64 {
	return append([]float64(nil), ts.time...)
}

// Flux returns a copy of the flux array.
func (ts *TimeSeries) Flux() []float64 {
	return append([]float64(nil), ts.flux...)
}

// Len returns the number of samples.
func (ts *TimeSeries) Len() int {
	return len(ts.time)
}

// Start returns the first sample time, or NaN for an empty series.
func (ts *TimeSeries) Start() float64 {
	if len(ts.time) == 0 {
		return nan
	}
	return ts.time[0]
}

// End returns the last sample time, or NaN for an empty series.
func (ts *TimeSeries) End() float64 {
	if len(ts.time) == 0 {
		return nan
	}
	return ts.time[len(ts.time)-1]
}

// Duration returns End - Start.
func (ts *TimeSeries) Duration() float64 {
	return ts.End() - ts.Start()
}

// MidTime returns the midpoint of the observation span.
func (ts *TimeSeries) MidTime() float64 {
	return 0.5 * (ts.Start() + ts.End())
}

// TimeStep returns the spacing of the first two samples, or NaN if
// there are fewer than two.
func (ts *TimeSeries) TimeStep() float64 {
	if len(ts.time) < 2 {
		return nan
	}
	return ts.time[1] - ts.time[0]
}

// RMS returns the root-mean-square of the flux.
func (ts *TimeSeries) RMS() float64 {
	if len(ts.flux) == 0 {
		return nan
	}
	sum := 0.0
	for _, f := range ts.flux {
		sum += f * f
	}
	return math.Sqrt(sum / float64(len(ts.flux)))
}

// MaxFlux returns the maximum flux.
func (ts *TimeSeries) MaxFlux() float64 {
	if len(ts.flux) == 0 {
		return nan
	}
	max := ts.flux[0]
	for _, f := range ts.flux[1:] {
		if f > max {
			max = f
		}
	}
	return max
}

// MinFlux returns the minimum flux.
func (ts *TimeSeries) MinFlux() float64 {
	if len(ts.flux) == 0 {
		return nan
	}
	min := ts.flux[0]
	for _, f := range ts.flux[1:] {
		if f < min {
			min = f
		}
	}
	return min
}

// RangeFlux returns MaxFlux - MinFlux.
func (ts *TimeSeries) RangeFlux() float64 {
	return ts.MaxFlux() - ts.MinFlux()
}

// MaxTime returns the time of the flux maximum.
func (ts *TimeSeries) MaxTime() float64 {
	if len(ts.flux) == 0 {
		return nan
	}
	argmax := 0
	for i, f := range ts.flux {
		if f > ts.flux[argmax] {
			argmax = i
		}
	}
	return ts.time[argmax]
}

// ReferenceTime returns the reference time, defaulting to MidTime. It
// is used only for display and offsetting; it never shifts the time
// array itself.
func (ts *TimeSeries) ReferenceTime() float64 {
	if !ts.hasRef {
		return ts.MidTime()
	}
	return ts.refTime
}

// SetReferenceTime overrides the default reference time.
func (ts *TimeSeries) SetReferenceTime(t float64) {
	ts.refTime = t
	ts.hasRef = true
}

// Truncate discards, in place, every sample with
// |time - ReferenceTime| >= widthFraction·Duration.
func (ts *TimeSeries) Truncate(widthFraction float64) {
	ref := ts.ReferenceTime()
	width := widthFraction * ts.Duration()
	time := ts.time[:0]
	flux := ts.flux[:0]
	for i, t := range ts.time {
		if math.Abs(t-ref) < width {
			time = append(time, t)
			flux = append(flux, ts.flux[i])
		}
	}
	ts.time = time
	ts.flux = flux
}

// DefaultPulseFraction is the peak fraction used by EstimatePulseTime
// when none is given.
const DefaultPulseFraction = 0.75

// EstimatePulseTime returns a naive estimate of the pulse time: the
// mean of the times where |flux| exceeds f·MaxFlux. It is a heuristic
// seed for prior windows, not a guarantee. f <= 0 selects
// DefaultPulseFraction.
func (ts *TimeSeries) EstimatePulseTime(f float64) float64 {
	if f <= 0 {
		f = DefaultPulseFraction
	}
	thresh := f * ts.MaxFlux()
	sum, n := 0.0, 0
	for i, fl := range ts.flux {
		if math.Abs(fl) > thresh {
			sum += ts.time[i]
			n++
		}
	}
	if n == 0 {
		return nan
	}
	return sum / float64(n)
}
