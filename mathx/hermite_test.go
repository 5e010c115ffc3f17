// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

import (
	"math"
	"testing"
)

func aeq(expect, got float64) bool {
	return math.Abs(expect-got) < 0.00001
}

func TestHermiteSeries(t *testing.T) {
	check := func(cs []float64, x, want float64) {
		t.Helper()
		if got := HermiteSeries(cs, x); !aeq(want, got) {
			t.Errorf("HermiteSeries(%v, %v): want %v, got %v", cs, x, want, got)
		}
	}

	// H0 = 1, H1 = 2x, H2 = 4x²-2, H3 = 8x³-12x.
	for _, x := range []float64{-2, -0.5, 0, 0.3, 1, 4} {
		check(nil, x, 0)
		check([]float64{1}, x, 1)
		check([]float64{0, 1}, x, 2*x)
		check([]float64{0, 0, 1}, x, 4*x*x-2)
		check([]float64{0, 0, 0, 1}, x, 8*x*x*x-12*x)
		// A mixed expansion.
		check([]float64{2, -1, 0.5}, x, 2-2*x+0.5*(4*x*x-2))
	}
}

func TestFactorial(t *testing.T) {
	want := []float64{1, 1, 2, 6, 24, 120, 720}
	for n, w := range want {
		if got := Factorial(n); got != w {
			t.Errorf("Factorial(%d): want %v, got %v", n, w, got)
		}
	}
}
