// Package planner sizes experiments for sequential monitoring: a standard
// fixed-design power calculation, inflated for the repeated looks a
// spending function permits, then split across the information schedule.
package planner

import (
	"errors"
	"math"

	"sequential-monitor/internal/spending"
	"sequential-monitor/internal/stats"
)

// Inputs are the design parameters for one plan. MinDetectableEffect is an
// absolute rate difference in the conversion case and a standardized effect
// in the continuous case.
type Inputs struct {
	Alpha    float64
	Power    float64
	TwoSided bool
	Spending spending.Function
	Schedule []float64

	MinDetectableEffect float64
	BaselineRate        float64
	IsConversion        bool
}

// Plan holds per-group sample sizes: the fixed design, the inflated
// sequential maximum, and the cumulative size required at each look.
type Plan struct {
	BaseSampleSize int
	MaxSampleSize  int
	PerLook        []int
}

// Compute derives the plan from the inputs.
func Compute(in Inputs) (Plan, error) {
	if in.Alpha <= 0 || in.Alpha >= 1 {
		return Plan{}, errors.New("alpha must be in (0, 1)")
	}
	if in.Power <= 0 || in.Power >= 1 {
		return Plan{}, errors.New("power must be in (0, 1)")
	}
	if in.Spending == nil {
		return Plan{}, errors.New("spending function is required")
	}
	if len(in.Schedule) == 0 {
		return Plan{}, errors.New("information schedule is required")
	}
	if in.MinDetectableEffect <= 0 {
		return Plan{}, errors.New("minimum detectable effect must be positive")
	}

	zAlpha := stats.Quantile(1 - in.Alpha)
	if in.TwoSided {
		zAlpha = stats.Quantile(1 - in.Alpha/2)
	}
	zBeta := stats.Quantile(in.Power)

	var base float64
	if in.IsConversion {
		p1 := in.BaselineRate
		p2 := in.BaselineRate + in.MinDetectableEffect
		if p1 <= 0 || p1 >= 1 || p2 <= 0 || p2 >= 1 {
			return Plan{}, errors.New("baseline rate and effect must keep both rates in (0, 1)")
		}
		pBar := (p1 + p2) / 2
		num := zAlpha*math.Sqrt(2*pBar*(1-pBar)) + zBeta*math.Sqrt(p1*(1-p1)+p2*(1-p2))
		base = (num * num) / ((p2 - p1) * (p2 - p1))
	} else {
		ratio := (zAlpha + zBeta) / in.MinDetectableEffect
		base = 2 * ratio * ratio
	}

	maxSize := math.Ceil(base * in.Spending.InflationFactor())

	perLook := make([]int, len(in.Schedule))
	for k, t := range in.Schedule {
		perLook[k] = int(math.Ceil(maxSize * t))
	}

	return Plan{
		BaseSampleSize: int(math.Ceil(base)),
		MaxSampleSize:  int(maxSize),
		PerLook:        perLook,
	}, nil
}
