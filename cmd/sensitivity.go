package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/abm-planner/internal/engine"
	"github.com/sells-group/abm-planner/internal/render"
)

var sensitivityCmd = &cobra.Command{
	Use:   "sensitivity",
	Short: "Run the in-market-rate x win-uplift sensitivity grid",
	Long: `Recomputes the full scenario across the cross product of the configured
in-market-rate and win-uplift ranges and prints the resulting ROI matrix.
The ranges come from the scenario file's sensitivity block.`,
	RunE: runSensitivity,
}

func init() {
	addScenarioFlags(sensitivityCmd.Flags())
	rootCmd.AddCommand(sensitivityCmd)
}

func runSensitivity(cmd *cobra.Command, _ []string) error {
	in, err := loadScenario(cmd)
	if err != nil {
		return err
	}
	if err := in.Sensitivity.RequireSensitivity(); err != nil {
		return err
	}

	runID := uuid.NewString()
	log := zap.L().With(zap.String("command", "sensitivity"), zap.String("run_id", runID))

	grid := engine.BuildSensitivityGrid(*in, cfg.Calibration)

	log.Info("sensitivity grid complete",
		zap.Int("rows", len(in.Sensitivity.InMarketRangePct)),
		zap.Int("cols", len(in.Sensitivity.WinUpliftRange)),
	)

	formatter, err := render.New(in.Programme.Locale, in.Programme.Currency)
	if err != nil {
		return err
	}

	fmt.Print(formatter.Grid(grid))
	return nil
}
