package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/abm-planner/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "abm-planner",
	Short: "Planning-stage ROI estimator for ABM programmes",
	Long:  "Derives baseline and ABM-uplifted funnel scenarios from programme assumptions and compares them: ROI, payback, break-even, coverage/capacity, and 2-D sensitivity grids.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
