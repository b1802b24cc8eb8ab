package engine

import (
	"math"

	"github.com/sells-group/abm-planner/internal/model"
)

// IncrementalOutputs holds the ABM-vs-baseline deltas and the financial
// ratios derived from them. Pointer fields are nil when the ratio is not
// computable from the current inputs; nil is distinct from a computed zero.
type IncrementalOutputs struct {
	TotalCost              float64  `json:"total_cost"`
	IncrementalRevenue     float64  `json:"incremental_revenue"`
	IncrementalGrossProfit float64  `json:"incremental_gross_profit"`
	ROI                    *float64 `json:"roi"`
	GrossROMI              *float64 `json:"gross_romi"`
	BreakEvenWins          *int     `json:"break_even_wins"`
	VelocityFactor         *float64 `json:"velocity_factor"`
	PaybackMonths          *float64 `json:"payback_months"`
}

// CalculateIncremental derives the comparative financials from the baseline
// and ABM outputs plus programme costs. Ratios with a non-positive
// denominator are reported as nil rather than infinite or zero.
func CalculateIncremental(programme model.ProgrammeSettings, market model.MarketFunnelInputs, baseline BaselineOutputs, abm AbmOutputs, costs model.ProgrammeCosts, alignment model.AlignmentInputs, cal Calibration) IncrementalOutputs {
	out := IncrementalOutputs{
		TotalCost:              FloorZero(costs.Total()),
		IncrementalRevenue:     FloorZero(abm.Revenue - baseline.Revenue),
		IncrementalGrossProfit: FloorZero(abm.GrossProfit - baseline.GrossProfit),
	}

	if out.TotalCost > 0 {
		out.ROI = ptr((out.IncrementalGrossProfit - out.TotalCost) / out.TotalCost)
		out.GrossROMI = ptr(out.IncrementalGrossProfit / out.TotalCost)

		grossProfitPerWin := abm.ACV * ToDecimal(market.ContributionMarginPct)
		if grossProfitPerWin > 0 {
			wins := int(math.Ceil(out.TotalCost / grossProfitPerWin))
			out.BreakEvenWins = &wins
		}
	}

	if market.AbmCycleMonths > 0 {
		velocity := market.BaselineCycleMonths / market.AbmCycleMonths * cal.alignmentFor(alignment.Level).Velocity
		out.VelocityFactor = ptr(velocity)
	}

	// Payback: months for velocity-adjusted incremental gross profit to
	// repay the programme cost. Undefined if any contributor is
	// non-positive.
	if out.TotalCost > 0 && out.IncrementalGrossProfit > 0 && programme.DurationMonths > 0 &&
		out.VelocityFactor != nil && *out.VelocityFactor > 0 {
		monthly := out.IncrementalGrossProfit / float64(programme.DurationMonths) * *out.VelocityFactor
		if monthly > 0 {
			out.PaybackMonths = ptr(out.TotalCost / monthly)
		}
	}

	return out
}
