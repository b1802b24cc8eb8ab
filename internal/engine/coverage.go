package engine

import (
	"math"

	"github.com/sells-group/abm-planner/internal/model"
)

// Constraint names which limit determined the treated-account count.
type Constraint string

const (
	// ConstraintDemand: fewer in-market accounts were requested than the
	// programme could treat.
	ConstraintDemand Constraint = "demand"
	// ConstraintBudget: the budget-derived account capacity was the cap.
	ConstraintBudget Constraint = "budget"
	// ConstraintTeam: team hours were the cap.
	ConstraintTeam Constraint = "team"
	// ConstraintBalanced: requested demand and capacity matched exactly.
	ConstraintBalanced Constraint = "balanced"
)

// Bottleneck names which function limits team capacity.
type Bottleneck string

const (
	BottleneckMarketing Bottleneck = "marketing"
	BottleneckSales     Bottleneck = "sales"
	BottleneckBalanced  Bottleneck = "balanced"
)

// CoverageOutputs describes how much of the target list the programme can
// actively treat and at what intensity.
type CoverageOutputs struct {
	RequestedAccounts int        `json:"requested_accounts"`
	AccountCapacity   int        `json:"account_capacity"`
	TreatedAccounts   int        `json:"treated_accounts"`
	CoverageRate      float64    `json:"coverage_rate"`    // treated / target, in [0,1]
	IntensityFactor   float64    `json:"intensity_factor"` // coverage^gamma, in [0,1]
	Binding           Constraint `json:"binding"`
	TeamBottleneck    Bottleneck `json:"team_bottleneck,omitempty"` // set only for team capacity
	CostPerAccount    float64    `json:"cost_per_account,omitempty"` // tier benchmark, set only for budget capacity
}

// ResolveCoverage determines the treated-account count, coverage rate, and
// intensity factor from the capacity settings. Demand is the in-market slice
// of the target list; supply is either a budget-derived or team-hours-derived
// account capacity; treated accounts are the smaller of the two.
func ResolveCoverage(market model.MarketFunnelInputs, costs model.ProgrammeCosts, capacity model.CapacityInputs, cal Calibration) CoverageOutputs {
	if market.TargetAccounts <= 0 {
		return CoverageOutputs{}
	}

	requested := int(math.Round(float64(market.TargetAccounts) * ToDecimal(market.InMarketRatePct)))

	out := CoverageOutputs{RequestedAccounts: requested}

	switch capacity.Source {
	case model.CapacityTeam:
		util := ToDecimal(capacity.UtilisationPct)
		marketingHours := capacity.MarketingFTE * cal.MarketingHoursPerFTE * util
		salesHours := capacity.SalesFTE * cal.SalesHoursPerFTE * util

		switch {
		case marketingHours < salesHours:
			out.TeamBottleneck = BottleneckMarketing
		case salesHours < marketingHours:
			out.TeamBottleneck = BottleneckSales
		default:
			out.TeamBottleneck = BottleneckBalanced
		}

		if capacity.HoursPerAccount > 0 {
			out.AccountCapacity = int(math.Floor(math.Min(marketingHours, salesHours) / capacity.HoursPerAccount))
		}
	default: // budget
		bench := cal.benchmarkFor(capacity.Tier)
		out.CostPerAccount = bench.CostPerAccount
		if bench.CostPerAccount > 0 {
			out.AccountCapacity = int(math.Floor(FloorZero(costs.Total()) / bench.CostPerAccount))
		}
	}

	out.TreatedAccounts = min(requested, out.AccountCapacity)

	switch {
	case out.AccountCapacity < requested && capacity.Source == model.CapacityTeam:
		out.Binding = ConstraintTeam
	case out.AccountCapacity < requested:
		out.Binding = ConstraintBudget
	case requested < out.AccountCapacity:
		out.Binding = ConstraintDemand
	default:
		out.Binding = ConstraintBalanced
	}

	out.CoverageRate = clamp01(float64(out.TreatedAccounts) / float64(market.TargetAccounts))

	gamma := cal.IntensityGamma
	if gamma <= 0 {
		gamma = 0.8
	}
	out.IntensityFactor = clamp01(math.Pow(out.CoverageRate, gamma))

	return out
}
