package engine

import "github.com/sells-group/abm-planner/internal/model"

// TierBenchmark holds the cost-per-account benchmark for an engagement tier.
type TierBenchmark struct {
	CostPerAccount float64 `yaml:"cost_per_account" mapstructure:"cost_per_account"`
}

// AlignmentMultipliers scale uplift effects for a given alignment level.
// Opportunity and Win multiply the intensity-scaled uplifts; Velocity
// multiplies the sales-cycle speedup in the payback calculation.
type AlignmentMultipliers struct {
	Opportunity float64 `yaml:"opportunity" mapstructure:"opportunity"`
	Win         float64 `yaml:"win" mapstructure:"win"`
	Velocity    float64 `yaml:"velocity" mapstructure:"velocity"`
}

// Calibration holds the product calibration constants the pipeline depends
// on. These are defaults, configurable via the config file, not algorithmic
// invariants.
type Calibration struct {
	Tiers                map[model.Tier]TierBenchmark                  `yaml:"tiers" mapstructure:"tiers"`
	Alignment            map[model.AlignmentLevel]AlignmentMultipliers `yaml:"alignment" mapstructure:"alignment"`
	MarketingHoursPerFTE float64                                       `yaml:"marketing_hours_per_fte" mapstructure:"marketing_hours_per_fte"` // monthly
	SalesHoursPerFTE     float64                                       `yaml:"sales_hours_per_fte" mapstructure:"sales_hours_per_fte"`         // monthly
	IntensityGamma       float64                                       `yaml:"intensity_gamma" mapstructure:"intensity_gamma"`
	HazardCap            float64                                       `yaml:"hazard_cap" mapstructure:"hazard_cap"`
	InMarketCeiling      float64                                       `yaml:"in_market_ceiling" mapstructure:"in_market_ceiling"` // display ceiling, fraction
}

// DefaultCalibration returns the default calibration table.
func DefaultCalibration() Calibration {
	return Calibration{
		Tiers: map[model.Tier]TierBenchmark{
			model.TierOneToOne:  {CostPerAccount: 60000},
			model.TierOneToFew:  {CostPerAccount: 23500},
			model.TierOneToMany: {CostPerAccount: 6000},
		},
		Alignment: map[model.AlignmentLevel]AlignmentMultipliers{
			model.AlignmentPoor:      {Opportunity: 0.80, Win: 0.80, Velocity: 0.90},
			model.AlignmentStandard:  {Opportunity: 1.00, Win: 1.00, Velocity: 1.00},
			model.AlignmentExcellent: {Opportunity: 1.15, Win: 1.20, Velocity: 1.10},
		},
		MarketingHoursPerFTE: 120,
		SalesHoursPerFTE:     100,
		IntensityGamma:       0.8,
		HazardCap:            0.99,
		InMarketCeiling:      0.70,
	}
}

// alignmentFor resolves the multipliers for a level, treating an unset or
// unknown level as standard (all 1.0).
func (c Calibration) alignmentFor(level model.AlignmentLevel) AlignmentMultipliers {
	if level == "" {
		level = model.AlignmentStandard
	}
	if m, ok := c.Alignment[level]; ok {
		return m
	}
	return AlignmentMultipliers{Opportunity: 1, Win: 1, Velocity: 1}
}

// benchmarkFor resolves the cost-per-account benchmark for a tier.
// An unknown tier falls back to the 1:few mid-tier benchmark.
func (c Calibration) benchmarkFor(tier model.Tier) TierBenchmark {
	if b, ok := c.Tiers[tier]; ok {
		return b
	}
	return c.Tiers[model.TierOneToFew]
}
