package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/abm-planner/internal/engine"
)

func testFormatter(t *testing.T) *Formatter {
	t.Helper()
	f, err := New("en-GB", "GBP")
	require.NoError(t, err)
	return f
}

func TestNew(t *testing.T) {
	t.Parallel()

	_, err := New("en-US", "USD")
	assert.NoError(t, err)

	// Unparseable locale falls back to English rather than failing.
	f, err := New("not a locale", "EUR")
	assert.NoError(t, err)
	assert.NotNil(t, f)

	// Unknown currency is an error.
	_, err = New("en-GB", "XXXX")
	assert.Error(t, err)
}

func TestMoney(t *testing.T) {
	t.Parallel()
	f := testFormatter(t)

	got := f.Money(470000)
	assert.Contains(t, got, "£")
	assert.Contains(t, got, "470")
}

func TestRatio(t *testing.T) {
	t.Parallel()
	f := testFormatter(t)

	roi := 0.1241
	assert.Equal(t, "12.4%", f.Ratio(&roi))
	assert.Equal(t, "n/a", f.Ratio(nil))

	negative := -1.0
	assert.Equal(t, "-100.0%", f.Ratio(&negative))
}

func TestMonthsAndWins(t *testing.T) {
	t.Parallel()
	f := testFormatter(t)

	months := 7.12
	assert.Equal(t, "7.1 mo", f.Months(&months))
	assert.Equal(t, "n/a", f.Months(nil))

	wins := 12
	assert.Equal(t, "12", f.Wins(&wins))
	assert.Equal(t, "n/a", f.Wins(nil))
}

func TestSummary(t *testing.T) {
	t.Parallel()
	f := testFormatter(t)

	roi := 0.1241
	wins := 12
	res := engine.ScenarioResult{
		Coverage: engine.CoverageOutputs{
			RequestedAccounts: 53,
			AccountCapacity:   20,
			TreatedAccounts:   20,
			CoverageRate:      20.0 / 150.0,
			IntensityFactor:   0.2,
			Binding:           engine.ConstraintBudget,
		},
		Baseline: engine.BaselineOutputs{
			InMarketAccounts: 52.5,
			QualifiedOpps:    52.5,
			ExpectedWins:     11.55,
			Revenue:          750750,
			GrossProfit:      412912.5,
		},
		Abm: engine.AbmOutputs{
			InMarketAccounts: 52.5,
			QualifiedOpps:    55,
			ExpectedWins:     13,
			Revenue:          900000,
			GrossProfit:      495000,
			ACV:              69000,
		},
		Incremental: engine.IncrementalOutputs{
			TotalCost:              470000,
			IncrementalRevenue:     149250,
			IncrementalGrossProfit: 82087.5,
			ROI:                    &roi,
			BreakEvenWins:          &wins,
		},
		Guardrails: []string{},
	}

	out := f.Summary(res)

	assert.Contains(t, out, "53 / 20 / 20")
	assert.Contains(t, out, "budget")
	assert.Contains(t, out, "12.4%")
	assert.Contains(t, out, "n/a") // gross ROMI and payback were nil
	assert.Contains(t, out, "Baseline")
	assert.Contains(t, out, "ABM")
}

func TestSummary_TeamBottleneckShown(t *testing.T) {
	t.Parallel()
	f := testFormatter(t)

	res := engine.ScenarioResult{
		Coverage: engine.CoverageOutputs{
			Binding:        engine.ConstraintTeam,
			TeamBottleneck: engine.BottleneckMarketing,
		},
	}

	assert.Contains(t, f.Summary(res), "team (marketing)")
}

func TestGrid(t *testing.T) {
	t.Parallel()
	f := testFormatter(t)

	roiA, roiB := 0.10, 0.25
	grid := [][]engine.SensitivityCell{
		{
			{InMarketRatePct: 20, WinUpliftPoints: 0, ROI: nil},
			{InMarketRatePct: 20, WinUpliftPoints: 6, ROI: &roiA},
		},
		{
			{InMarketRatePct: 35, WinUpliftPoints: 0, ROI: &roiB},
			{InMarketRatePct: 35, WinUpliftPoints: 6, ROI: nil},
		},
	}

	out := f.Grid(grid)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3) // header + two rows

	assert.Contains(t, lines[0], "+0pp")
	assert.Contains(t, lines[0], "+6pp")
	assert.Contains(t, lines[1], "20.0%")
	assert.Contains(t, lines[1], "10.0%")
	assert.Contains(t, lines[2], "35.0%")
	assert.Contains(t, lines[2], "25.0%")
	assert.Contains(t, out, "n/a")
}

func TestGrid_Empty(t *testing.T) {
	t.Parallel()
	f := testFormatter(t)

	assert.Empty(t, f.Grid(nil))
	assert.Empty(t, f.Grid([][]engine.SensitivityCell{}))
}
