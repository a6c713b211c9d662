package sequential

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sequential-monitor/internal/planner"
	"sequential-monitor/internal/spending"
	"sequential-monitor/internal/stats"
)

func TestShouldStopEarlyNoEffect(t *testing.T) {
	check, err := ShouldStopEarly(1000, 1000, 0.10, 0.10, 1, 5, 0.05)
	require.NoError(t, err)

	assert.False(t, check.ShouldStop)
	assert.Equal(t, "continue", check.Reason)
	assert.InDelta(t, 0.0, check.ZScore, 1e-12)
	assert.InDelta(t, 1.0, check.PValue, 1e-9)
}

func TestShouldStopEarlyLargeEffect(t *testing.T) {
	check, err := ShouldStopEarly(1000, 1000, 0.10, 0.30, 1, 5, 0.05)
	require.NoError(t, err)

	assert.True(t, check.ShouldStop)
	assert.Equal(t, "efficacy", check.Reason)
	assert.Greater(t, check.ZScore, 4.0, "a 20-point lift crosses even the strict first boundary")
	assert.Less(t, check.PValue, 1e-6)
}

func TestShouldStopEarlyDefaults(t *testing.T) {
	// Zero maxLooks/alpha fall back to 5 looks at 0.05.
	a, err := ShouldStopEarly(1000, 1000, 0.10, 0.30, 1, 0, 0)
	require.NoError(t, err)
	b, err := ShouldStopEarly(1000, 1000, 0.10, 0.30, 1, 5, 0.05)
	require.NoError(t, err)
	assert.Equal(t, b, a)
}

func TestShouldStopEarlyValidation(t *testing.T) {
	_, err := ShouldStopEarly(0, 1000, 0.1, 0.1, 1, 5, 0.05)
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = ShouldStopEarly(1000, 1000, 1.5, 0.1, 1, 5, 0.05)
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = ShouldStopEarly(1000, 1000, 0.1, 0.1, 6, 5, 0.05)
	require.ErrorIs(t, err, ErrInvalidLookNumber)

	_, err = ShouldStopEarly(1000, 1000, 0.1, 0.1, 0, 5, 0.05)
	require.ErrorIs(t, err, ErrInvalidLookNumber)
}

func TestOBrienFlemingBoundariesClassicShape(t *testing.T) {
	b := OBrienFlemingBoundaries(5, 0.05)
	require.Len(t, b, 5)

	// Strictly decreasing, ending at the fixed-sample two-sided critical
	// value: nearly all alpha is reserved for the final look.
	for i := 1; i < len(b); i++ {
		assert.Less(t, b[i], b[i-1])
	}
	assert.InDelta(t, stats.Quantile(0.975), b[4], 1e-9)
	assert.InDelta(t, 1.96, b[4], 1e-3)
	assert.InDelta(t, stats.Quantile(0.975)/math.Sqrt(0.2), b[0], 1e-9)
}

func TestSequentialSampleSizeInflation(t *testing.T) {
	out, err := SequentialSampleSize(0.10, 0.02, 5, 0.8, 0.05)
	require.NoError(t, err)
	require.Len(t, out.PerLook, 5)

	// Fixed-design two-proportion size for these parameters, computed
	// independently of the planner.
	zA := stats.Quantile(0.975)
	zB := stats.Quantile(0.8)
	p1, p2 := 0.10, 0.12
	pBar := (p1 + p2) / 2
	num := zA*math.Sqrt(2*pBar*(1-pBar)) + zB*math.Sqrt(p1*(1-p1)+p2*(1-p2))
	fixed := num * num / ((p2 - p1) * (p2 - p1))

	assert.InEpsilon(t, fixed*1.015, float64(out.Total), 0.02, "O'Brien-Fleming inflates by about 1.5%%")
	assert.Equal(t, out.PerLook[4], out.Total, "final look requires the full inflated size")

	// Pocock pays a much larger sequential penalty for spending early.
	pocock, err := planner.Compute(planner.Inputs{
		Alpha:               0.05,
		Power:               0.8,
		TwoSided:            true,
		Spending:            spending.Pocock{},
		Schedule:            []float64{0.2, 0.4, 0.6, 0.8, 1.0},
		MinDetectableEffect: 0.02,
		BaselineRate:        0.10,
		IsConversion:        true,
	})
	require.NoError(t, err)
	assert.InEpsilon(t, fixed*1.18, float64(pocock.MaxSampleSize), 0.02, "Pocock inflates by about 18%%")
}

func TestSequentialSampleSizeDefaults(t *testing.T) {
	a, err := SequentialSampleSize(0.10, 0.02, 0, 0, 0)
	require.NoError(t, err)
	b, err := SequentialSampleSize(0.10, 0.02, 5, 0.8, 0.05)
	require.NoError(t, err)
	assert.Equal(t, b, a)
}

func TestSequentialSampleSizeInvalidEffect(t *testing.T) {
	_, err := SequentialSampleSize(0.10, 0, 5, 0.8, 0.05)
	require.Error(t, err)
}
