// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// mathx provides the polynomial helpers used by the flux models.
package mathx

// HermiteSeries evaluates the physicists'-Hermite polynomial expansion
//
//	Σ_i cs[i]·H_i(x)
//
// at x using Clenshaw's recurrence on the three-term relation
// H_{i+1}(x) = 2x·H_i(x) - 2i·H_{i-1}(x). An empty coefficient slice
// evaluates to 0.
func HermiteSeries(cs []float64, x float64) float64 {
	switch len(cs) {
	case 0:
		return 0
	case 1:
		return cs[0]
	}

	// c0 and c1 accumulate the two trailing terms of the recurrence.
	nd := float64(len(cs))
	c0, c1 := cs[len(cs)-2], cs[len(cs)-1]
	for i := len(cs) - 3; i >= 0; i-- {
		nd--
		c0, c1 = cs[i]-c1*2*(nd-1), c0+c1*(2*x)
	}
	return c0 + c1*(2*x)
}

// Factorial returns n! as a float64. Factorial(0) = 1. It panics if n
// is negative.
func Factorial(n int) float64 {
	if n < 0 {
		panic("mathx: factorial of negative number")
	}
	f := 1.0
	for i := 2; i <= n; i++ {
		f *= float64(i)
	}
	return f
}
