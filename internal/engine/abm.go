package engine

import "github.com/sells-group/abm-planner/internal/model"

// AbmOutputs holds the funnel metrics for the ABM-uplifted scenario, plus
// the ACV achieved on treated accounts.
type AbmOutputs struct {
	InMarketAccounts float64 `json:"in_market_accounts"`
	QualifiedOpps    float64 `json:"qualified_opps"`
	ExpectedWins     float64 `json:"expected_wins"`
	Revenue          float64 `json:"revenue"`
	GrossProfit      float64 `json:"gross_profit"`
	ACV              float64 `json:"acv"`
}

// CalculateAbm blends a treated-subset calculation (uplifts scaled by
// coverage intensity and alignment) with the untreated remainder running at
// baseline rates. Uplifts never apply to untreated accounts: treating the
// whole list at full intensity is the only case that reduces to uplifting
// the baseline directly.
func CalculateAbm(market model.MarketFunnelInputs, baseline BaselineOutputs, uplifts model.UpliftInputs, coverage CoverageOutputs, alignment model.AlignmentInputs, cal Calibration) AbmOutputs {
	// Baseline performance of the treated subset alone.
	treatedMarket := market
	treatedMarket.TargetAccounts = coverage.TreatedAccounts
	treated := CalculateBaseline(treatedMarket)

	// The untreated remainder keeps performing at baseline rates.
	untreated := BaselineOutputs{
		InMarketAccounts: FloorZero(baseline.InMarketAccounts - treated.InMarketAccounts),
		QualifiedOpps:    FloorZero(baseline.QualifiedOpps - treated.QualifiedOpps),
		ExpectedWins:     FloorZero(baseline.ExpectedWins - treated.ExpectedWins),
		Revenue:          FloorZero(baseline.Revenue - treated.Revenue),
		GrossProfit:      FloorZero(baseline.GrossProfit - treated.GrossProfit),
	}

	align := cal.alignmentFor(alignment.Level)
	intensity := coverage.IntensityFactor

	oppMultiplier := 1 + ToDecimal(uplifts.OpportunityPct)*intensity*align.Opportunity
	treatedOpps := treated.QualifiedOpps * oppMultiplier

	// Win uplift is an absolute percentage-point addition, clamped to a
	// valid probability.
	effectiveWinRate := clamp01(ToDecimal(market.BaselineWinRatePct) + ToDecimal(uplifts.WinRatePoints)*intensity*align.Win)
	treatedWins := treatedOpps * effectiveWinRate

	acvMultiplier := 1 + ToDecimal(uplifts.ACVPct)*intensity
	treatedACV := market.BaselineACV * acvMultiplier

	treatedRevenue := treatedWins * treatedACV
	treatedGrossProfit := treatedRevenue * ToDecimal(market.ContributionMarginPct)

	// No blended ACV exists when nothing was treated.
	reportedACV := market.BaselineACV
	if coverage.TreatedAccounts > 0 {
		reportedACV = treatedACV
	}

	return AbmOutputs{
		InMarketAccounts: FloorZero(untreated.InMarketAccounts + treated.InMarketAccounts),
		QualifiedOpps:    FloorZero(untreated.QualifiedOpps + treatedOpps),
		ExpectedWins:     FloorZero(untreated.ExpectedWins + treatedWins),
		Revenue:          FloorZero(untreated.Revenue + treatedRevenue),
		GrossProfit:      FloorZero(untreated.GrossProfit + treatedGrossProfit),
		ACV:              FloorZero(reportedACV),
	}
}
