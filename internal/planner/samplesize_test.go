package planner

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sequential-monitor/internal/spending"
	"sequential-monitor/internal/stats"
)

func conversionInputs() Inputs {
	return Inputs{
		Alpha:               0.05,
		Power:               0.8,
		TwoSided:            true,
		Spending:            spending.OBrienFleming{},
		Schedule:            []float64{0.2, 0.4, 0.6, 0.8, 1.0},
		MinDetectableEffect: 0.02,
		BaselineRate:        0.10,
		IsConversion:        true,
	}
}

func TestComputeConversion(t *testing.T) {
	plan, err := Compute(conversionInputs())
	require.NoError(t, err)

	zA := stats.Quantile(0.975)
	zB := stats.Quantile(0.8)
	p1, p2 := 0.10, 0.12
	pBar := (p1 + p2) / 2
	num := zA*math.Sqrt(2*pBar*(1-pBar)) + zB*math.Sqrt(p1*(1-p1)+p2*(1-p2))
	fixed := num * num / ((p2 - p1) * (p2 - p1))

	assert.Equal(t, int(math.Ceil(fixed)), plan.BaseSampleSize)
	assert.Equal(t, int(math.Ceil(fixed*1.015)), plan.MaxSampleSize)

	require.Len(t, plan.PerLook, 5)
	for k, tFrac := range []float64{0.2, 0.4, 0.6, 0.8, 1.0} {
		assert.Equal(t, int(math.Ceil(float64(plan.MaxSampleSize)*tFrac)), plan.PerLook[k])
	}
}

func TestComputeContinuous(t *testing.T) {
	in := conversionInputs()
	in.IsConversion = false
	in.MinDetectableEffect = 0.2 // standardized effect

	plan, err := Compute(in)
	require.NoError(t, err)

	zA := stats.Quantile(0.975)
	zB := stats.Quantile(0.8)
	ratio := (zA + zB) / 0.2
	fixed := 2 * ratio * ratio

	assert.Equal(t, int(math.Ceil(fixed)), plan.BaseSampleSize)
	// The textbook value for a standardized effect of 0.2 at 80% power.
	assert.InDelta(t, 393, plan.BaseSampleSize, 1)
}

func TestComputeOneSidedNeedsFewerSamples(t *testing.T) {
	two := conversionInputs()
	one := conversionInputs()
	one.TwoSided = false

	planTwo, err := Compute(two)
	require.NoError(t, err)
	planOne, err := Compute(one)
	require.NoError(t, err)

	assert.Less(t, planOne.BaseSampleSize, planTwo.BaseSampleSize)
}

func TestComputeInflationBySpendingFunction(t *testing.T) {
	base := conversionInputs()
	planOBF, err := Compute(base)
	require.NoError(t, err)

	pocock := conversionInputs()
	pocock.Spending = spending.Pocock{}
	planPocock, err := Compute(pocock)
	require.NoError(t, err)

	assert.Greater(t, planPocock.MaxSampleSize, planOBF.MaxSampleSize,
		"even spending costs more than back-loaded spending")
	assert.Equal(t, planPocock.BaseSampleSize, planOBF.BaseSampleSize,
		"the fixed design is independent of the spending function")
}

func TestComputeValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Inputs)
	}{
		{"bad alpha", func(in *Inputs) { in.Alpha = 0 }},
		{"bad power", func(in *Inputs) { in.Power = 1 }},
		{"missing spending", func(in *Inputs) { in.Spending = nil }},
		{"empty schedule", func(in *Inputs) { in.Schedule = nil }},
		{"zero effect", func(in *Inputs) { in.MinDetectableEffect = 0 }},
		{"rate at one", func(in *Inputs) { in.BaselineRate = 0.99; in.MinDetectableEffect = 0.05 }},
		{"zero baseline", func(in *Inputs) { in.BaselineRate = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := conversionInputs()
			tt.mutate(&in)
			_, err := Compute(in)
			require.Error(t, err)
		})
	}
}
