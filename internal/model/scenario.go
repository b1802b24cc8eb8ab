// Package model defines the scenario input types consumed by the planning
// engine, plus YAML loading and validation. The engine assumes it receives a
// validated ScenarioInput; all range and cross-field checks live here.
package model

import (
	"os"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

// CapacitySource selects how the treatable-account cap is derived.
type CapacitySource string

const (
	CapacityBudget CapacitySource = "budget"
	CapacityTeam   CapacitySource = "team"
)

// Tier is the ABM engagement tier, determining cost-per-account benchmarks.
type Tier string

const (
	TierOneToOne  Tier = "one2one"
	TierOneToFew  Tier = "one2few"
	TierOneToMany Tier = "one2many"
)

// AlignmentLevel is a qualitative sales/marketing alignment rating.
// An empty level is treated as standard.
type AlignmentLevel string

const (
	AlignmentPoor      AlignmentLevel = "poor"
	AlignmentStandard  AlignmentLevel = "standard"
	AlignmentExcellent AlignmentLevel = "excellent"
)

// ProgrammeSettings holds programme-level timing and display settings.
type ProgrammeSettings struct {
	DurationMonths int    `yaml:"duration_months" json:"duration_months"`
	RampMonths     int    `yaml:"ramp_months" json:"ramp_months"`
	Currency       string `yaml:"currency" json:"currency"`
	Locale         string `yaml:"locale" json:"locale"`
}

// InMarketDerivation holds the optional inputs for auto-deriving the
// in-market rate from a point-in-time base rate via the hazard model.
// When present, the CLI derives market.in_market_rate_pct before
// validation; the engine never sees this block.
type InMarketDerivation struct {
	BuyingWindowMonths float64 `yaml:"buying_window_months" json:"buying_window_months"`
	PointInTimeRatePct float64 `yaml:"point_in_time_rate_pct" json:"point_in_time_rate_pct"`
}

// MarketFunnelInputs holds the baseline funnel assumptions.
type MarketFunnelInputs struct {
	TargetAccounts        int                 `yaml:"target_accounts" json:"target_accounts"`
	InMarketRatePct       float64             `yaml:"in_market_rate_pct" json:"in_market_rate_pct"`
	QualifiedOppsPerAcct  float64             `yaml:"qualified_opps_per_account" json:"qualified_opps_per_account"`
	BaselineWinRatePct    float64             `yaml:"baseline_win_rate_pct" json:"baseline_win_rate_pct"`
	BaselineACV           float64             `yaml:"baseline_acv" json:"baseline_acv"`
	ContributionMarginPct float64             `yaml:"contribution_margin_pct" json:"contribution_margin_pct"`
	BaselineCycleMonths   float64             `yaml:"baseline_cycle_months" json:"baseline_cycle_months"`
	AbmCycleMonths        float64             `yaml:"abm_cycle_months" json:"abm_cycle_months"`
	Derivation            *InMarketDerivation `yaml:"derivation,omitempty" json:"derivation,omitempty"`
}

// UpliftInputs holds ceiling uplift assumptions, before intensity and
// alignment scaling.
type UpliftInputs struct {
	WinRatePoints  float64 `yaml:"win_rate_points" json:"win_rate_points"`   // absolute percentage points
	ACVPct         float64 `yaml:"acv_pct" json:"acv_pct"`                   // relative %
	OpportunityPct float64 `yaml:"opportunity_pct" json:"opportunity_pct"`   // relative %
}

// ProgrammeCosts holds the six programme cost categories plus an optional
// single-figure override.
type ProgrammeCosts struct {
	People        float64 `yaml:"people" json:"people"`
	Media         float64 `yaml:"media" json:"media"`
	DataTech      float64 `yaml:"data_tech" json:"data_tech"`
	Content       float64 `yaml:"content" json:"content"`
	Agency        float64 `yaml:"agency" json:"agency"`
	Other         float64 `yaml:"other" json:"other"`
	TotalOverride float64 `yaml:"total_override" json:"total_override"`
}

// CategorySum returns the sum of the six cost categories.
func (c ProgrammeCosts) CategorySum() float64 {
	return c.People + c.Media + c.DataTech + c.Content + c.Agency + c.Other
}

// Total resolves the effective programme cost: the override when it is
// positive and no category is set, otherwise the category sum.
func (c ProgrammeCosts) Total() float64 {
	sum := c.CategorySum()
	if c.TotalOverride > 0 && sum == 0 {
		return c.TotalOverride
	}
	return sum
}

// CapacityInputs bounds how many accounts can be actively worked.
type CapacityInputs struct {
	Source          CapacitySource `yaml:"source" json:"source"`
	Tier            Tier           `yaml:"tier" json:"tier"`
	MarketingFTE    float64        `yaml:"marketing_fte" json:"marketing_fte"`
	SalesFTE        float64        `yaml:"sales_fte" json:"sales_fte"`
	UtilisationPct  float64        `yaml:"utilisation_pct" json:"utilisation_pct"`
	HoursPerAccount float64        `yaml:"hours_per_account" json:"hours_per_account"`
}

// AlignmentInputs holds the qualitative alignment rating.
type AlignmentInputs struct {
	Level AlignmentLevel `yaml:"level" json:"level"`
}

// SensitivityConfig configures the 2-D sensitivity grid.
type SensitivityConfig struct {
	InMarketRangePct []float64 `yaml:"in_market_range_pct" json:"in_market_range_pct"`
	WinUpliftRange   []float64 `yaml:"win_uplift_range" json:"win_uplift_range"` // percentage points
	Resolution       int       `yaml:"resolution,omitempty" json:"resolution,omitempty"` // UI interpolation hint, 3-11; 0 = unset
}

// ScenarioInput bundles everything the engine needs for one scenario.
type ScenarioInput struct {
	Programme   ProgrammeSettings  `yaml:"programme" json:"programme"`
	Market      MarketFunnelInputs `yaml:"market" json:"market"`
	Uplifts     UpliftInputs       `yaml:"uplifts" json:"uplifts"`
	Costs       ProgrammeCosts     `yaml:"costs" json:"costs"`
	Capacity    CapacityInputs     `yaml:"capacity" json:"capacity"`
	Alignment   AlignmentInputs    `yaml:"alignment" json:"alignment"`
	Sensitivity SensitivityConfig  `yaml:"sensitivity" json:"sensitivity"`
}

// Load reads a scenario file from a YAML file. The file has a top-level
// "scenario" key.
func Load(path string) (*ScenarioInput, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "model: read scenario %s", path)
	}

	var wrapper struct {
		Scenario ScenarioInput `yaml:"scenario"`
	}
	if err := yaml.Unmarshal(data, &wrapper); err != nil {
		return nil, eris.Wrap(err, "model: parse scenario")
	}

	return &wrapper.Scenario, nil
}
