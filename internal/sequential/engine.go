package sequential

import (
	"fmt"
	"math"

	"sequential-monitor/internal/planner"
	"sequential-monitor/internal/stats"
)

// Engine monitors one experiment across repeated interim looks. It owns the
// design config, the boundaries and information schedule derived from it,
// and an append-only log of the analyses performed so far.
//
// All methods are synchronous, closed-form computation. The engine is not
// internally synchronized: callers sharing one instance across goroutines
// must serialize access. Boundaries and schedule are computed once and only
// ever read afterwards.
type Engine struct {
	cfg        TestConfig
	boundaries []float64
	schedule   []float64
	log        []InterimAnalysis
}

// New validates the design and precomputes the boundary set and information
// schedule.
func New(cfg TestConfig) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid test config: %w", err)
	}
	schedule := informationSchedule(cfg)
	return &Engine{
		cfg:        cfg,
		boundaries: computeBoundaries(cfg, schedule),
		schedule:   schedule,
	}, nil
}

// Config returns the design the engine was built from.
func (e *Engine) Config() TestConfig { return e.cfg }

// Boundaries returns a copy of the critical z-value per look.
func (e *Engine) Boundaries() []float64 {
	out := make([]float64, len(e.boundaries))
	copy(out, e.boundaries)
	return out
}

// Schedule returns a copy of the information fraction per look.
func (e *Engine) Schedule() []float64 {
	out := make([]float64, len(e.schedule))
	copy(out, e.schedule)
	return out
}

// Log returns a copy of the interim analyses recorded so far, in call order.
func (e *Engine) Log() []InterimAnalysis {
	out := make([]InterimAnalysis, len(e.log))
	copy(out, e.log)
	return out
}

// Analyze tests one look's accumulated sample statistics against the
// precomputed boundary and appends the outcome to the log.
//
// Looks must be analyzed in strictly increasing order, and no further
// analyses are accepted once a terminal decision (an efficacy or futility
// stop, or a completed final look) is on the log. Failed calls leave the
// log untouched.
func (e *Engine) Analyze(lookNumber, nControl, nTreatment int, meanControl, meanTreatment, pooledStdDev float64) (InterimAnalysis, error) {
	if lookNumber < 1 || lookNumber > e.cfg.MaxLooks {
		return InterimAnalysis{}, fmt.Errorf("%w: got %d, want 1..%d", ErrInvalidLookNumber, lookNumber, e.cfg.MaxLooks)
	}
	if n := len(e.log); n > 0 {
		if terminal, _ := reduce(e.cfg, e.log); terminal != StatusContinue {
			return InterimAnalysis{}, ErrTrialStopped
		}
		if last := e.log[n-1].LookNumber; lookNumber <= last {
			return InterimAnalysis{}, fmt.Errorf("%w: look %d follows look %d", ErrOutOfOrderLook, lookNumber, last)
		}
	}
	if nControl <= 0 || nTreatment <= 0 {
		return InterimAnalysis{}, fmt.Errorf("%w: group sizes must be positive", ErrInvalidInput)
	}
	if pooledStdDev <= 0 {
		return InterimAnalysis{}, fmt.Errorf("%w: pooled standard deviation must be positive", ErrInvalidInput)
	}

	frac := e.schedule[lookNumber-1]
	se := pooledStdDev * math.Sqrt(1/float64(nControl)+1/float64(nTreatment))
	z := (meanTreatment - meanControl) / se
	boundary := e.boundaries[lookNumber-1]

	p := pValue(z, e.cfg.Sided)

	stopEff := math.Abs(z) >= boundary
	cp := e.ConditionalPower(z, frac, e.cfg.FutilityAssumedEffect)
	stopFut := !stopEff && cp < e.cfg.futilityThreshold()

	spent := e.cfg.Spending.Spend(frac, e.cfg.Alpha)
	analysis := InterimAnalysis{
		LookNumber:          lookNumber,
		InformationFraction: frac,
		ZScore:              z,
		PValue:              p,
		CriticalBoundary:    boundary,
		StopForEfficacy:     stopEff,
		StopForFutility:     stopFut,
		ConditionalPower:    cp,
		AlphaSpent:          spent,
		AlphaRemaining:      math.Max(0, e.cfg.Alpha-spent),
	}
	e.log = append(e.log, analysis)
	return analysis, nil
}

// ConditionalPower is the probability of eventually crossing the final
// look's boundary given the current z statistic, the fraction of total
// information already collected, and an assumed standardized effect for the
// remainder of the experiment.
func (e *Engine) ConditionalPower(currentZ, infoFraction, assumedEffect float64) float64 {
	if infoFraction >= 1 {
		infoFraction = 1
	}
	if infoFraction < 0 {
		infoFraction = 0
	}
	finalBoundary := e.boundaries[len(e.boundaries)-1]
	finalZ := currentZ*math.Sqrt(infoFraction) + assumedEffect*math.Sqrt(1-infoFraction)
	return 1 - stats.Cdf(finalBoundary-finalZ)
}

// RecommendedSampleSize plans a per-group sample size for the configured
// design, inflated for sequential monitoring and split across the
// information schedule. It returns the cumulative per-look group sizes.
func (e *Engine) RecommendedSampleSize(minDetectableEffect, baselineRate float64, isConversion bool) ([]int, error) {
	plan, err := planner.Compute(planner.Inputs{
		Alpha:               e.cfg.Alpha,
		Power:               e.cfg.Power,
		TwoSided:            e.cfg.Sided == TwoSided,
		Spending:            e.cfg.Spending,
		Schedule:            e.schedule,
		MinDetectableEffect: minDetectableEffect,
		BaselineRate:        baselineRate,
		IsConversion:        isConversion,
	})
	if err != nil {
		return nil, err
	}
	return plan.PerLook, nil
}

// Reset clears the analysis log for reuse with the same design. Boundaries
// and schedule are untouched; they are a pure function of the config.
func (e *Engine) Reset() {
	e.log = nil
}

// pValue converts a z statistic into a p-value honoring the configured
// sidedness.
func pValue(z float64, sided Sided) float64 {
	if sided == OneSided {
		return 1 - stats.Cdf(z)
	}
	return 2 * (1 - stats.Cdf(math.Abs(z)))
}
