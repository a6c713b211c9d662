package sequential

import (
	"fmt"
	"math"

	"sequential-monitor/internal/planner"
	"sequential-monitor/internal/spending"
	"sequential-monitor/internal/stats"
)

// Defaults for the convenience helpers when the caller passes zero values.
const (
	DefaultMaxLooks = 5
	DefaultAlpha    = 0.05
	DefaultPower    = 0.8
)

// QuickCheck is the outcome of a one-shot efficacy check on conversion
// rates.
type QuickCheck struct {
	ShouldStop bool
	Reason     string
	ZScore     float64
	PValue     float64
}

// ShouldStopEarly is a one-call efficacy check for conversion experiments:
// it compares a pooled two-proportion z statistic against the
// O'Brien-Fleming boundary for the given look. Futility is not evaluated
// here; use an Engine for full monitoring. Pass maxLooks<=0 or alpha<=0 for
// the defaults (5 looks, 0.05).
func ShouldStopEarly(controlN, treatmentN int, controlRate, treatmentRate float64, currentLook, maxLooks int, alpha float64) (QuickCheck, error) {
	if maxLooks <= 0 {
		maxLooks = DefaultMaxLooks
	}
	if alpha <= 0 {
		alpha = DefaultAlpha
	}
	if controlN <= 0 || treatmentN <= 0 {
		return QuickCheck{}, fmt.Errorf("%w: group sizes must be positive", ErrInvalidInput)
	}
	if controlRate < 0 || controlRate > 1 || treatmentRate < 0 || treatmentRate > 1 {
		return QuickCheck{}, fmt.Errorf("%w: rates must be in [0, 1]", ErrInvalidInput)
	}
	if currentLook < 1 || currentLook > maxLooks {
		return QuickCheck{}, fmt.Errorf("%w: got %d, want 1..%d", ErrInvalidLookNumber, currentLook, maxLooks)
	}

	pooled := (float64(controlN)*controlRate + float64(treatmentN)*treatmentRate) /
		float64(controlN+treatmentN)
	se := math.Sqrt(pooled*(1-pooled)) * math.Sqrt(1/float64(controlN)+1/float64(treatmentN))

	var z float64
	if se > 0 {
		z = (treatmentRate - controlRate) / se
	}
	p := 2 * (1 - stats.Cdf(math.Abs(z)))

	cfg := TestConfig{
		MaxLooks: maxLooks,
		Alpha:    alpha,
		Power:    DefaultPower,
		Sided:    TwoSided,
		Spending: spending.OBrienFleming{},
	}
	boundaries := computeBoundaries(cfg, informationSchedule(cfg))

	check := QuickCheck{ZScore: z, PValue: p, Reason: "continue"}
	if math.Abs(z) >= boundaries[currentLook-1] {
		check.ShouldStop = true
		check.Reason = "efficacy"
	}
	return check, nil
}

// OBrienFlemingBoundaries returns the classic O'Brien-Fleming critical
// values z_{α/2}/√t for equally spaced looks. The final entry is the
// fixed-sample two-sided critical value, since nearly all alpha is reserved
// for the final look.
func OBrienFlemingBoundaries(maxLooks int, alpha float64) []float64 {
	if maxLooks <= 0 {
		maxLooks = DefaultMaxLooks
	}
	if alpha <= 0 {
		alpha = DefaultAlpha
	}
	z := stats.Quantile(1 - alpha/2)
	out := make([]float64, maxLooks)
	for k := 1; k <= maxLooks; k++ {
		t := float64(k) / float64(maxLooks)
		out[k-1] = z / math.Sqrt(t)
	}
	return out
}

// SampleSizeByLook is the output of SequentialSampleSize: cumulative
// per-group sizes at each look plus the inflated maximum.
type SampleSizeByLook struct {
	PerLook []int
	Total   int
}

// SequentialSampleSize plans a conversion experiment under O'Brien-Fleming
// spending with equally spaced looks. Pass power<=0 or alpha<=0 for the
// defaults.
func SequentialSampleSize(baselineRate, minDetectableEffect float64, maxLooks int, power, alpha float64) (SampleSizeByLook, error) {
	if maxLooks <= 0 {
		maxLooks = DefaultMaxLooks
	}
	if power <= 0 {
		power = DefaultPower
	}
	if alpha <= 0 {
		alpha = DefaultAlpha
	}

	cfg := TestConfig{
		MaxLooks: maxLooks,
		Alpha:    alpha,
		Power:    power,
		Sided:    TwoSided,
		Spending: spending.OBrienFleming{},
	}
	plan, err := planner.Compute(planner.Inputs{
		Alpha:               alpha,
		Power:               power,
		TwoSided:            true,
		Spending:            cfg.Spending,
		Schedule:            informationSchedule(cfg),
		MinDetectableEffect: minDetectableEffect,
		BaselineRate:        baselineRate,
		IsConversion:        true,
	})
	if err != nil {
		return SampleSizeByLook{}, err
	}
	return SampleSizeByLook{PerLook: plan.PerLook, Total: plan.MaxSampleSize}, nil
}
