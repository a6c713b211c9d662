package sequential

import (
	"math"

	"sequential-monitor/internal/stats"
)

// Status is the overall monitoring state derived from the log.
type Status string

const (
	StatusContinue     Status = "continue"
	StatusStopEfficacy Status = "stop_efficacy"
	StatusStopFutility Status = "stop_futility"
	StatusComplete     Status = "complete"
)

// Decision is the hypothesis-test conclusion, defined only once monitoring
// has stopped or completed.
type Decision string

const (
	DecisionUndefined    Decision = "undefined"
	DecisionRejectNull   Decision = "reject_null"
	DecisionFailToReject Decision = "fail_to_reject"
)

// Result is a derived view over the engine: the design, the full analysis
// log, and the overall status and decision. It is recomputed on demand and
// never stored.
type Result struct {
	Config     TestConfig
	Analyses   []InterimAnalysis
	Status     Status
	Decision   Decision
	Boundaries []float64
	Schedule   []float64

	// AdjustedPValue is a stage-wise approximation of a group-sequential
	// adjusted p-value: the stopping look's two-sided p fed back through
	// the configured spending function at that look's information
	// fraction. It is not an exact inversion. Only meaningful when Status
	// is not StatusContinue.
	AdjustedPValue float64
}

// Result derives the current decision view from the most recent analysis.
func (e *Engine) Result() Result {
	status, decision := reduce(e.cfg, e.log)
	res := Result{
		Config:     e.cfg,
		Analyses:   e.Log(),
		Status:     status,
		Decision:   decision,
		Boundaries: e.Boundaries(),
		Schedule:   e.Schedule(),
	}
	if status != StatusContinue {
		last := e.log[len(e.log)-1]
		twoSided := 2 * (1 - stats.Cdf(math.Abs(last.ZScore)))
		res.AdjustedPValue = e.cfg.Spending.Spend(last.InformationFraction, twoSided)
	}
	return res
}

// reduce is the pure reducer from (config, log) to the overall state. It
// looks only at the most recent analysis: stop flags are terminal, and a
// final look resolves the test against its own boundary.
func reduce(cfg TestConfig, log []InterimAnalysis) (Status, Decision) {
	if len(log) == 0 {
		return StatusContinue, DecisionUndefined
	}
	last := log[len(log)-1]
	switch {
	case last.StopForEfficacy:
		return StatusStopEfficacy, DecisionRejectNull
	case last.StopForFutility:
		return StatusStopFutility, DecisionFailToReject
	case last.LookNumber >= cfg.MaxLooks:
		if math.Abs(last.ZScore) >= last.CriticalBoundary {
			return StatusComplete, DecisionRejectNull
		}
		return StatusComplete, DecisionFailToReject
	default:
		return StatusContinue, DecisionUndefined
	}
}
