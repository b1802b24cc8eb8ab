package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/abm-planner/internal/model"
)

func TestBuildSensitivityGrid_Dimensions(t *testing.T) {
	t.Parallel()
	cal := DefaultCalibration()

	in := testScenario()
	grid := BuildSensitivityGrid(in, cal)

	require.Len(t, grid, len(in.Sensitivity.InMarketRangePct))
	for _, row := range grid {
		require.Len(t, row, len(in.Sensitivity.WinUpliftRange))
	}

	for i, row := range grid {
		for j, cell := range row {
			assert.Equal(t, in.Sensitivity.InMarketRangePct[i], cell.InMarketRatePct)
			assert.Equal(t, in.Sensitivity.WinUpliftRange[j], cell.WinUpliftPoints)
		}
	}
}

func TestBuildSensitivityGrid_CellConsistency(t *testing.T) {
	t.Parallel()
	cal := DefaultCalibration()

	in := testScenario()
	grid := BuildSensitivityGrid(in, cal)

	// Every cell must reproduce a full scenario run with just the two
	// varied fields substituted.
	for i, rate := range in.Sensitivity.InMarketRangePct {
		for j, uplift := range in.Sensitivity.WinUpliftRange {
			cell := in
			cell.Market.InMarketRatePct = rate
			cell.Uplifts.WinRatePoints = uplift
			want := Run(cell, cal).Incremental.ROI

			got := grid[i][j].ROI
			if want == nil {
				assert.Nil(t, got)
				continue
			}
			require.NotNil(t, got)
			assert.Equal(t, *want, *got)
		}
	}
}

func TestBuildSensitivityGrid_NilROICells(t *testing.T) {
	t.Parallel()
	cal := DefaultCalibration()

	// The engine does not validate; a zero-cost input reaches it only to
	// prove every ratio degrades to nil rather than Inf.
	in := testScenario()
	in.Costs = model.ProgrammeCosts{}

	grid := BuildSensitivityGrid(in, cal)

	for _, row := range grid {
		for _, cell := range row {
			assert.Nil(t, cell.ROI)
		}
	}
}

func TestBuildSensitivityGrid_InputUntouched(t *testing.T) {
	t.Parallel()
	cal := DefaultCalibration()

	in := testScenario()
	original := in

	_ = BuildSensitivityGrid(in, cal)

	// Cells clone the input; the caller's value must not move.
	assert.Equal(t, original, in)
}
