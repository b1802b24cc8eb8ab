package engine

import "github.com/sells-group/abm-planner/internal/model"

// ScenarioResult bundles a scenario's inputs with every derived output.
type ScenarioResult struct {
	Input       model.ScenarioInput `json:"input"`
	Coverage    CoverageOutputs     `json:"coverage"`
	Baseline    BaselineOutputs     `json:"baseline"`
	Abm         AbmOutputs          `json:"abm"`
	Incremental IncrementalOutputs  `json:"incremental"`
	// Guardrails is reserved for advisory warnings; nothing populates it yet.
	Guardrails []string `json:"guardrails"`
}

// Run executes the full pipeline for one validated scenario:
// coverage -> baseline -> abm -> incremental. The order is a data
// dependency, not a concurrency concern; the whole call is synchronous and
// side-effect free.
func Run(in model.ScenarioInput, cal Calibration) ScenarioResult {
	coverage := ResolveCoverage(in.Market, in.Costs, in.Capacity, cal)
	baseline := CalculateBaseline(in.Market)
	abm := CalculateAbm(in.Market, baseline, in.Uplifts, coverage, in.Alignment, cal)
	incremental := CalculateIncremental(in.Programme, in.Market, baseline, abm, in.Costs, in.Alignment, cal)

	return ScenarioResult{
		Input:       in,
		Coverage:    coverage,
		Baseline:    baseline,
		Abm:         abm,
		Incremental: incremental,
		Guardrails:  []string{},
	}
}
