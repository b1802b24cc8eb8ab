package model

import "github.com/rotisserie/eris"

// Validate checks every range and cross-field constraint on the scenario.
// The engine performs no validation of its own; callers must not pass an
// unvalidated input downstream.
func (s *ScenarioInput) Validate() error {
	if err := s.Programme.validate(); err != nil {
		return err
	}
	if err := s.Market.validate(); err != nil {
		return err
	}
	if err := s.Uplifts.validate(); err != nil {
		return err
	}
	if err := s.Costs.validate(); err != nil {
		return err
	}
	if err := s.Capacity.validate(); err != nil {
		return err
	}
	if err := s.Alignment.validate(); err != nil {
		return err
	}
	return s.Sensitivity.validate()
}

func (p ProgrammeSettings) validate() error {
	if p.DurationMonths < 0 || p.DurationMonths > 24 {
		return eris.Errorf("model: duration_months must be 0-24 (got %d)", p.DurationMonths)
	}
	if p.RampMonths < 0 || p.RampMonths > 24 {
		return eris.Errorf("model: ramp_months must be 0-24 (got %d)", p.RampMonths)
	}
	if p.RampMonths > p.DurationMonths {
		return eris.Errorf("model: ramp_months %d exceeds duration_months %d", p.RampMonths, p.DurationMonths)
	}
	return nil
}

func (m MarketFunnelInputs) validate() error {
	if m.TargetAccounts < 0 || m.TargetAccounts > 2000 {
		return eris.Errorf("model: target_accounts must be 0-2000 (got %d)", m.TargetAccounts)
	}
	if m.InMarketRatePct < 0 || m.InMarketRatePct > 70 {
		return eris.Errorf("model: in_market_rate_pct must be 0-70 (got %g)", m.InMarketRatePct)
	}
	if m.QualifiedOppsPerAcct < 0 || m.QualifiedOppsPerAcct > 3 {
		return eris.Errorf("model: qualified_opps_per_account must be 0-3 (got %g)", m.QualifiedOppsPerAcct)
	}
	if m.BaselineWinRatePct < 0 || m.BaselineWinRatePct > 60 {
		return eris.Errorf("model: baseline_win_rate_pct must be 0-60 (got %g)", m.BaselineWinRatePct)
	}
	if m.BaselineACV < 0 {
		return eris.Errorf("model: baseline_acv must be >= 0 (got %g)", m.BaselineACV)
	}
	if m.ContributionMarginPct < 0 || m.ContributionMarginPct > 95 {
		return eris.Errorf("model: contribution_margin_pct must be 0-95 (got %g)", m.ContributionMarginPct)
	}
	if m.BaselineCycleMonths < 0 || m.BaselineCycleMonths > 24 {
		return eris.Errorf("model: baseline_cycle_months must be 0-24 (got %g)", m.BaselineCycleMonths)
	}
	if m.AbmCycleMonths < 0 || m.AbmCycleMonths > 24 {
		return eris.Errorf("model: abm_cycle_months must be 0-24 (got %g)", m.AbmCycleMonths)
	}
	if m.AbmCycleMonths > m.BaselineCycleMonths {
		return eris.Errorf("model: abm_cycle_months %g exceeds baseline_cycle_months %g", m.AbmCycleMonths, m.BaselineCycleMonths)
	}
	return nil
}

func (u UpliftInputs) validate() error {
	if u.WinRatePoints < 0 || u.WinRatePoints > 20 {
		return eris.Errorf("model: win_rate_points must be 0-20 (got %g)", u.WinRatePoints)
	}
	if u.ACVPct < -30 || u.ACVPct > 100 {
		return eris.Errorf("model: acv_pct must be -30-100 (got %g)", u.ACVPct)
	}
	if u.OpportunityPct < 0 || u.OpportunityPct > 100 {
		return eris.Errorf("model: opportunity_pct must be 0-100 (got %g)", u.OpportunityPct)
	}
	return nil
}

func (c ProgrammeCosts) validate() error {
	for _, v := range []struct {
		name string
		val  float64
	}{
		{"people", c.People},
		{"media", c.Media},
		{"data_tech", c.DataTech},
		{"content", c.Content},
		{"agency", c.Agency},
		{"other", c.Other},
		{"total_override", c.TotalOverride},
	} {
		if v.val < 0 {
			return eris.Errorf("model: cost %s must be >= 0 (got %g)", v.name, v.val)
		}
	}
	// A scenario must carry a non-zero investment signal.
	if c.TotalOverride <= 0 && c.CategorySum() <= 0 {
		return eris.New("model: costs need a positive total_override or at least one positive category")
	}
	return nil
}

func (c CapacityInputs) validate() error {
	switch c.Source {
	case CapacityBudget, CapacityTeam:
	default:
		return eris.Errorf("model: capacity source must be %q or %q (got %q)", CapacityBudget, CapacityTeam, c.Source)
	}
	switch c.Tier {
	case TierOneToOne, TierOneToFew, TierOneToMany:
	default:
		return eris.Errorf("model: capacity tier must be one of one2one/one2few/one2many (got %q)", c.Tier)
	}
	if c.MarketingFTE < 0 {
		return eris.Errorf("model: marketing_fte must be >= 0 (got %g)", c.MarketingFTE)
	}
	if c.SalesFTE < 0 {
		return eris.Errorf("model: sales_fte must be >= 0 (got %g)", c.SalesFTE)
	}
	if c.UtilisationPct < 0 || c.UtilisationPct > 100 {
		return eris.Errorf("model: utilisation_pct must be 0-100 (got %g)", c.UtilisationPct)
	}
	if c.Source == CapacityTeam && c.HoursPerAccount <= 0 {
		return eris.Errorf("model: hours_per_account must be > 0 for team capacity (got %g)", c.HoursPerAccount)
	}
	return nil
}

func (a AlignmentInputs) validate() error {
	switch a.Level {
	case "", AlignmentPoor, AlignmentStandard, AlignmentExcellent:
		return nil
	}
	return eris.Errorf("model: alignment level must be poor/standard/excellent (got %q)", a.Level)
}

// validate accepts an entirely unset sensitivity block; the sensitivity
// command calls RequireSensitivity for the stricter check.
func (s SensitivityConfig) validate() error {
	if s.IsZero() {
		return nil
	}
	return s.RequireSensitivity()
}

// IsZero reports whether no sensitivity configuration was provided.
func (s SensitivityConfig) IsZero() bool {
	return len(s.InMarketRangePct) == 0 && len(s.WinUpliftRange) == 0 && s.Resolution == 0
}

// RequireSensitivity checks that the grid configuration is complete.
func (s SensitivityConfig) RequireSensitivity() error {
	if len(s.InMarketRangePct) == 0 {
		return eris.New("model: sensitivity in_market_range_pct must not be empty")
	}
	if len(s.WinUpliftRange) == 0 {
		return eris.New("model: sensitivity win_uplift_range must not be empty")
	}
	if s.Resolution != 0 && (s.Resolution < 3 || s.Resolution > 11) {
		return eris.Errorf("model: sensitivity resolution must be 3-11 (got %d)", s.Resolution)
	}
	return nil
}
