package engine

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/sells-group/abm-planner/internal/model"
)

// SensitivityCell holds the ROI for one (in-market rate, win uplift) pair.
// ROI is nil when it is not computable for that cell.
type SensitivityCell struct {
	InMarketRatePct float64  `json:"in_market_rate_pct"`
	WinUpliftPoints float64  `json:"win_uplift_points"`
	ROI             *float64 `json:"roi"`
}

// BuildSensitivityGrid runs the full pipeline across the cross product of
// the configured in-market-rate range (rows) and win-uplift range (columns).
// Each cell clones the input, overrides exactly those two fields, and is
// independent of every other cell; cells are computed in parallel purely for
// throughput.
func BuildSensitivityGrid(in model.ScenarioInput, cal Calibration) [][]SensitivityCell {
	rows := in.Sensitivity.InMarketRangePct
	cols := in.Sensitivity.WinUpliftRange

	grid := make([][]SensitivityCell, len(rows))
	for i := range grid {
		grid[i] = make([]SensitivityCell, len(cols))
	}

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, inMarket := range rows {
		for j, winUplift := range cols {
			g.Go(func() error {
				cell := in
				cell.Market.InMarketRatePct = inMarket
				cell.Uplifts.WinRatePoints = winUplift

				result := Run(cell, cal)
				grid[i][j] = SensitivityCell{
					InMarketRatePct: inMarket,
					WinUpliftPoints: winUplift,
					ROI:             result.Incremental.ROI,
				}
				return nil
			})
		}
	}

	// Cells cannot fail; Wait only synchronizes.
	_ = g.Wait()

	return grid
}
