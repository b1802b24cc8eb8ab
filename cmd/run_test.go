package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunScenario(t *testing.T) {
	setTestConfig(t)

	cmd := newScenarioTestCmd()
	require.NoError(t, cmd.Flags().Set("file", writeTestScenario(t, testScenarioYAML)))

	assert.NoError(t, runScenario(cmd, nil))
}

func TestRunSensitivity(t *testing.T) {
	setTestConfig(t)

	cmd := newScenarioTestCmd()
	require.NoError(t, cmd.Flags().Set("file", writeTestScenario(t, testScenarioYAML)))

	assert.NoError(t, runSensitivity(cmd, nil))
}

func TestRunSensitivity_MissingGridConfig(t *testing.T) {
	setTestConfig(t)

	// derivedScenarioYAML has no sensitivity block.
	cmd := newScenarioTestCmd()
	require.NoError(t, cmd.Flags().Set("file", writeTestScenario(t, derivedScenarioYAML)))

	assert.Error(t, runSensitivity(cmd, nil))
}

func TestRunScenario_BadCurrency(t *testing.T) {
	setTestConfig(t)

	yaml := `scenario:
  programme:
    duration_months: 12
    currency: NOPE
    locale: en-GB
  market:
    target_accounts: 10
    in_market_rate_pct: 10
    qualified_opps_per_account: 1
    baseline_win_rate_pct: 20
    baseline_acv: 1000
    contribution_margin_pct: 50
    baseline_cycle_months: 6
    abm_cycle_months: 6
  costs:
    other: 100
  capacity:
    source: budget
    tier: one2many
`
	cmd := newScenarioTestCmd()
	require.NoError(t, cmd.Flags().Set("file", writeTestScenario(t, yaml)))

	assert.Error(t, runScenario(cmd, nil))
}
