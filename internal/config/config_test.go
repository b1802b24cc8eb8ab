package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/abm-planner/internal/model"
)

func TestLoad_Defaults(t *testing.T) {
	// Load reads config.yaml from the working directory; run from an empty
	// one so only defaults apply.
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)

	assert.InDelta(t, 0.8, cfg.Calibration.IntensityGamma, 1e-9)
	assert.InDelta(t, 0.99, cfg.Calibration.HazardCap, 1e-9)
	assert.InDelta(t, 0.70, cfg.Calibration.InMarketCeiling, 1e-9)
	assert.InDelta(t, 120, cfg.Calibration.MarketingHoursPerFTE, 1e-9)
	assert.InDelta(t, 100, cfg.Calibration.SalesHoursPerFTE, 1e-9)

	assert.InDelta(t, 60000, cfg.Calibration.Tiers[model.TierOneToOne].CostPerAccount, 1e-9)
	assert.InDelta(t, 23500, cfg.Calibration.Tiers[model.TierOneToFew].CostPerAccount, 1e-9)
	assert.InDelta(t, 6000, cfg.Calibration.Tiers[model.TierOneToMany].CostPerAccount, 1e-9)

	std := cfg.Calibration.Alignment[model.AlignmentStandard]
	assert.InDelta(t, 1.0, std.Opportunity, 1e-9)
	assert.InDelta(t, 1.0, std.Win, 1e-9)
	assert.InDelta(t, 1.0, std.Velocity, 1e-9)

	excellent := cfg.Calibration.Alignment[model.AlignmentExcellent]
	assert.Greater(t, excellent.Win, 1.0)
}

func TestLoad_FileOverrides(t *testing.T) {
	t.Chdir(t.TempDir())

	yaml := `log:
  level: debug
  format: json
calibration:
  intensity_gamma: 0.9
  tiers:
    one2few:
      cost_per_account: 30000
`
	require.NoError(t, os.WriteFile("config.yaml", []byte(yaml), 0o644))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.InDelta(t, 0.9, cfg.Calibration.IntensityGamma, 1e-9)
	assert.InDelta(t, 30000, cfg.Calibration.Tiers[model.TierOneToFew].CostPerAccount, 1e-9)
	// Untouched keys keep their defaults.
	assert.InDelta(t, 60000, cfg.Calibration.Tiers[model.TierOneToOne].CostPerAccount, 1e-9)
}

func TestInitLogger(t *testing.T) {
	assert.NoError(t, InitLogger(LogConfig{Level: "debug", Format: "console"}))
	assert.NoError(t, InitLogger(LogConfig{Level: "warn", Format: "json"}))
	assert.Error(t, InitLogger(LogConfig{Level: "shouty", Format: "json"}))
}
