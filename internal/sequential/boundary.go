package sequential

import (
	"math"

	"sequential-monitor/internal/stats"
)

// boundaryFloor guards against degenerate near-zero incremental alpha at a
// look producing an unusable (or infinite) critical value.
const boundaryFloor = 1.0

// informationSchedule returns the ordered information fractions for each
// look: the caller-supplied times when set, otherwise k/maxLooks.
func informationSchedule(cfg TestConfig) []float64 {
	if cfg.InformationTimes != nil {
		out := make([]float64, len(cfg.InformationTimes))
		copy(out, cfg.InformationTimes)
		return out
	}
	out := make([]float64, cfg.MaxLooks)
	for k := 1; k <= cfg.MaxLooks; k++ {
		out[k-1] = float64(k) / float64(cfg.MaxLooks)
	}
	return out
}

// computeBoundaries turns the spending schedule into one critical z-value
// per look. Each look is granted the alpha newly released since the
// previous look; the two-sided case splits that increment across both
// tails.
func computeBoundaries(cfg TestConfig, schedule []float64) []float64 {
	boundaries := make([]float64, len(schedule))
	spentSoFar := 0.0
	for k, t := range schedule {
		spentAt := cfg.Spending.Spend(t, cfg.Alpha)
		incremental := spentAt - spentSoFar
		if incremental < 0 {
			incremental = 0
		}
		boundaryAlpha := incremental
		if cfg.Sided == TwoSided {
			boundaryAlpha = incremental / 2
		}
		boundaries[k] = math.Max(stats.Quantile(1-boundaryAlpha), boundaryFloor)
		spentSoFar += incremental
	}
	return boundaries
}
