// SPDX-License-Identifier: MIT
// weight_fn.go: edge-weight distributions for WithWeightFn.

package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// ConstantWeightFn returns a generator that always yields w.
func ConstantWeightFn(w float64) func(*rand.Rand) float64 {
	return func(*rand.Rand) float64 { return w }
}

// UniformWeightFn returns a generator drawing integers uniformly from
// [lo, hi]. With a nil RNG it yields lo. Panics if lo > hi.
func UniformWeightFn(lo, hi int) func(*rand.Rand) float64 {
	if lo > hi {
		panic(fmt.Sprintf("builder: UniformWeightFn(lo=%d > hi=%d)", lo, hi))
	}
	span := hi - lo + 1
	return func(r *rand.Rand) float64 {
		if r == nil {
			return float64(lo)
		}
		return float64(lo + r.Intn(span))
	}
}

// RoundedWeightFn wraps fn and rounds its output to the given number of decimals.
func RoundedWeightFn(fn func(*rand.Rand) float64, decimals int) func(*rand.Rand) float64 {
	scale := math.Pow(10, float64(decimals))
	return func(r *rand.Rand) float64 {
		return math.Round(fn(r)*scale) / scale
	}
}
