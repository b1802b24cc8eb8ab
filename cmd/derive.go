package main

import (
	"fmt"
	"math"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/sells-group/abm-planner/internal/engine"
)

var deriveCmd = &cobra.Command{
	Use:   "derive",
	Short: "Derive a programme-length in-market rate from a point-in-time rate",
	Long: `Converts a point-in-time in-market base rate into the cumulative share of
accounts expected to enter an active buying cycle at least once during the
programme's influence window (duration net of ramp), using a hazard-rate
model.

  abm-planner derive --duration 12 --ramp 3 --buying-window 3 --base-rate 5`,
	RunE: runDerive,
}

func init() {
	addDeriveFlags(deriveCmd.Flags())
	rootCmd.AddCommand(deriveCmd)
}

func addDeriveFlags(f *pflag.FlagSet) {
	f.Int("duration", 12, "programme duration in months")
	f.Int("ramp", 0, "ramp-up months before the programme influences accounts")
	f.Float64("buying-window", 3, "length of a buying window in months")
	f.Float64("base-rate", 0, "point-in-time in-market rate (percent)")
}

func runDerive(cmd *cobra.Command, _ []string) error {
	duration, _ := cmd.Flags().GetInt("duration")
	ramp, _ := cmd.Flags().GetInt("ramp")
	buyingWindow, _ := cmd.Flags().GetFloat64("buying-window")
	baseRate, _ := cmd.Flags().GetFloat64("base-rate")

	if duration < 0 || duration > 24 {
		return eris.Errorf("derive: --duration must be 0-24 (got %d)", duration)
	}
	if ramp < 0 || ramp > duration {
		return eris.Errorf("derive: --ramp must be 0-%d (got %d)", duration, ramp)
	}
	if baseRate < 0 || baseRate > 100 {
		return eris.Errorf("derive: --base-rate must be 0-100 (got %g)", baseRate)
	}

	share := engine.DeriveInMarketShare(
		float64(duration), float64(ramp), buyingWindow,
		engine.ToDecimal(baseRate), cfg.Calibration,
	)

	ceiling := cfg.Calibration.InMarketCeiling
	if ceiling <= 0 {
		ceiling = 1
	}
	display := math.Min(share, ceiling)

	fmt.Printf("raw derived share:  %.1f%%\n", share*100)
	fmt.Printf("display rate:       %.1f%%", display*100)
	if display < share {
		fmt.Printf(" (capped at %.0f%%)", ceiling*100)
	}
	fmt.Println()

	return nil
}
