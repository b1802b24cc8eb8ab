package engine

import "github.com/sells-group/abm-planner/internal/model"

// BaselineOutputs holds the funnel metrics for the no-ABM scenario.
// Fractional accounts and wins are valid intermediate values; only display
// layers round.
type BaselineOutputs struct {
	InMarketAccounts float64 `json:"in_market_accounts"`
	QualifiedOpps    float64 `json:"qualified_opps"`
	ExpectedWins     float64 `json:"expected_wins"`
	Revenue          float64 `json:"revenue"`
	GrossProfit      float64 `json:"gross_profit"`
}

// CalculateBaseline runs the straight funnel math with no ABM influence and
// no coverage dependency.
func CalculateBaseline(market model.MarketFunnelInputs) BaselineOutputs {
	inMarket := FloorZero(float64(market.TargetAccounts) * ToDecimal(market.InMarketRatePct))
	opps := FloorZero(inMarket * market.QualifiedOppsPerAcct)
	wins := FloorZero(opps * ToDecimal(market.BaselineWinRatePct))
	revenue := FloorZero(wins * market.BaselineACV)
	grossProfit := FloorZero(revenue * ToDecimal(market.ContributionMarginPct))

	return BaselineOutputs{
		InMarketAccounts: inMarket,
		QualifiedOpps:    opps,
		ExpectedWins:     wins,
		Revenue:          revenue,
		GrossProfit:      grossProfit,
	}
}
