// Package engine implements the ABM programme calculation pipeline: coverage
// resolution, baseline and ABM funnel math, incremental financials, and the
// 2-D sensitivity grid. Every function here is a pure transformation of a
// validated scenario input; undefined ratios become nil and impossible
// magnitudes become zero. The engine never returns NaN, Inf, or a negative
// count/currency value.
package engine

import "math"

// ToDecimal converts a percentage to its decimal form.
func ToDecimal(pct float64) float64 {
	return pct / 100
}

// FloorZero clamps a magnitude to zero. Non-finite values collapse to zero
// as well, so bad upstream data cannot propagate NaN through the pipeline.
func FloorZero(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0
	}
	return math.Max(0, x)
}

// clamp01 restricts a probability to [0, 1].
func clamp01(x float64) float64 {
	return math.Min(1, math.Max(0, x))
}

// ptr returns a pointer to v, for nullable output fields.
func ptr(v float64) *float64 {
	return &v
}
