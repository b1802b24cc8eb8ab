package engine

import "math"

// DeriveInMarketShare converts a point-in-time in-market base rate into a
// cumulative programme-length share using a hazard-rate model: the result is
// the complement of an account never entering an active buying cycle in any
// month of the influence window.
//
// The influence window is the programme duration net of ramp; a window of
// zero or less means there is no market left to influence. The buying window
// is floored at one month so the monthly hazard stays defined.
//
// pointInTimeShare and the result are fractions in [0, 1]. Any display
// ceiling (e.g. capping the auto-derived rate at 70%) is a caller policy,
// not applied here.
func DeriveInMarketShare(durationMonths, rampMonths, buyingWindowMonths, pointInTimeShare float64, cal Calibration) float64 {
	window := math.Max(0, durationMonths-rampMonths)
	if window <= 0 {
		return 0
	}

	buyingWindow := math.Max(1, buyingWindowMonths)

	hazardCap := cal.HazardCap
	if hazardCap <= 0 {
		hazardCap = 0.99
	}
	hazard := math.Min(hazardCap, pointInTimeShare/buyingWindow)

	share := 1 - math.Pow(1-hazard, window)
	return clamp01(FloorZero(share))
}
