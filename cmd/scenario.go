package main

import (
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/sells-group/abm-planner/internal/engine"
	"github.com/sells-group/abm-planner/internal/model"
	"github.com/sells-group/abm-planner/internal/render"
)

var scenarioCmd = &cobra.Command{
	Use:   "scenario",
	Short: "Run a full scenario and print the baseline/ABM comparison",
	Long: `Loads programme assumptions from a scenario YAML file, validates them,
runs the calculation pipeline, and prints the comparison summary.

Common assumptions can be overridden per run without editing the file:

  abm-planner scenario --file scenario.yaml --target-accounts 300 --win-uplift 8`,
	RunE: runScenario,
}

func init() {
	addScenarioFlags(scenarioCmd.Flags())
	rootCmd.AddCommand(scenarioCmd)
}

// addScenarioFlags registers the scenario-file and override flags shared by
// the scenario and sensitivity commands.
func addScenarioFlags(f *pflag.FlagSet) {
	f.String("file", "scenario.yaml", "scenario YAML file")
	f.Int("target-accounts", 0, "override market.target_accounts")
	f.Float64("in-market-rate", 0, "override market.in_market_rate_pct")
	f.Float64("win-uplift", 0, "override uplifts.win_rate_points")
	f.Float64("acv-uplift", 0, "override uplifts.acv_pct")
	f.Float64("opp-uplift", 0, "override uplifts.opportunity_pct")
	f.Float64("total-cost", 0, "override costs.total_override (clears categories)")
	f.String("alignment", "", "override alignment level (poor/standard/excellent)")
}

func runScenario(cmd *cobra.Command, _ []string) error {
	in, err := loadScenario(cmd)
	if err != nil {
		return err
	}

	runID := uuid.NewString()
	log := zap.L().With(zap.String("command", "scenario"), zap.String("run_id", runID))

	result := engine.Run(*in, cfg.Calibration)

	log.Info("scenario complete",
		zap.Int("treated_accounts", result.Coverage.TreatedAccounts),
		zap.Float64("coverage_rate", result.Coverage.CoverageRate),
		zap.String("binding", string(result.Coverage.Binding)),
		zap.Float64("baseline_revenue", result.Baseline.Revenue),
		zap.Float64("abm_revenue", result.Abm.Revenue),
	)

	formatter, err := render.New(in.Programme.Locale, in.Programme.Currency)
	if err != nil {
		return err
	}

	fmt.Print(formatter.Summary(result))
	return nil
}

// loadScenario reads the scenario file, applies flag overrides and in-market
// derivation, and validates. Shared by the scenario and sensitivity commands.
func loadScenario(cmd *cobra.Command) (*model.ScenarioInput, error) {
	path, _ := cmd.Flags().GetString("file")
	in, err := model.Load(path)
	if err != nil {
		return nil, err
	}

	applyOverrides(cmd, in)
	deriveInMarketRate(in)

	if err := in.Validate(); err != nil {
		return nil, err
	}
	return in, nil
}

func applyOverrides(cmd *cobra.Command, in *model.ScenarioInput) {
	f := cmd.Flags()

	if v, _ := f.GetInt("target-accounts"); f.Changed("target-accounts") {
		in.Market.TargetAccounts = v
	}
	if v, _ := f.GetFloat64("in-market-rate"); f.Changed("in-market-rate") {
		in.Market.InMarketRatePct = v
		in.Market.Derivation = nil
	}
	if v, _ := f.GetFloat64("win-uplift"); f.Changed("win-uplift") {
		in.Uplifts.WinRatePoints = v
	}
	if v, _ := f.GetFloat64("acv-uplift"); f.Changed("acv-uplift") {
		in.Uplifts.ACVPct = v
	}
	if v, _ := f.GetFloat64("opp-uplift"); f.Changed("opp-uplift") {
		in.Uplifts.OpportunityPct = v
	}
	if v, _ := f.GetFloat64("total-cost"); f.Changed("total-cost") {
		in.Costs = model.ProgrammeCosts{TotalOverride: v}
	}
	if v, _ := f.GetString("alignment"); f.Changed("alignment") {
		in.Alignment.Level = model.AlignmentLevel(v)
	}
}

// deriveInMarketRate resolves an auto-derived in-market rate when the
// scenario provides a derivation block instead of a direct rate. The display
// ceiling caps the derived rate here, at the boundary; the raw hazard-model
// share is untouched inside the engine.
func deriveInMarketRate(in *model.ScenarioInput) {
	d := in.Market.Derivation
	if d == nil {
		return
	}

	share := engine.DeriveInMarketShare(
		float64(in.Programme.DurationMonths),
		float64(in.Programme.RampMonths),
		d.BuyingWindowMonths,
		engine.ToDecimal(d.PointInTimeRatePct),
		cfg.Calibration,
	)

	ceiling := cfg.Calibration.InMarketCeiling
	if ceiling <= 0 {
		ceiling = 1
	}
	in.Market.InMarketRatePct = math.Min(share, ceiling) * 100

	zap.L().Debug("derived in-market rate",
		zap.Float64("raw_share", share),
		zap.Float64("rate_pct", in.Market.InMarketRatePct),
	)
}
