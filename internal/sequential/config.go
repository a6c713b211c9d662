package sequential

import (
	"errors"
	"fmt"

	"sequential-monitor/internal/spending"
)

// Sided selects between one- and two-sided testing.
type Sided string

const (
	OneSided Sided = "one"
	TwoSided Sided = "two"
)

// Default futility knobs. An interim look stops for futility when the
// conditional power of eventually crossing the final boundary, assuming the
// future effect below, drops under the threshold.
const (
	DefaultFutilityThreshold = 0.10
	DefaultFutilityEffect    = 0.0
)

// TestConfig fixes the design of one sequentially monitored experiment.
// It is immutable once handed to New; boundaries and the information
// schedule are derived from it exactly once.
type TestConfig struct {
	MaxLooks int
	Alpha    float64
	Power    float64
	Sided    Sided
	Spending spending.Function

	// FutilityThreshold is the conditional-power level below which an
	// interim look stops for futility. Zero means DefaultFutilityThreshold.
	FutilityThreshold float64

	// FutilityAssumedEffect is the standardized effect assumed for the
	// remainder of the experiment in the futility check. The default of 0
	// asks "what if the true effect is nil from here on".
	FutilityAssumedEffect float64

	// InformationTimes optionally replaces the equal-spaced k/maxLooks
	// schedule with caller-supplied information fractions, one per look,
	// strictly increasing with the final entry equal to 1. Leave nil for
	// equal spacing.
	InformationTimes []float64
}

// Validate checks the design parameters. It does not mutate the config.
func (c *TestConfig) Validate() error {
	if c.MaxLooks < 1 {
		return errors.New("MaxLooks must be >= 1")
	}
	if c.Alpha <= 0 || c.Alpha >= 1 {
		return errors.New("Alpha must be in (0, 1)")
	}
	if c.Power <= 0 || c.Power >= 1 {
		return errors.New("Power must be in (0, 1)")
	}
	if c.Sided != OneSided && c.Sided != TwoSided {
		return fmt.Errorf("Sided must be %q or %q", OneSided, TwoSided)
	}
	if c.Spending == nil {
		return errors.New("Spending function is required")
	}
	if c.FutilityThreshold < 0 || c.FutilityThreshold >= 1 {
		return errors.New("FutilityThreshold must be in [0, 1)")
	}
	if c.InformationTimes != nil {
		if len(c.InformationTimes) != c.MaxLooks {
			return fmt.Errorf("InformationTimes must have exactly MaxLooks=%d entries", c.MaxLooks)
		}
		prev := 0.0
		for i, t := range c.InformationTimes {
			if t <= prev || t > 1 {
				return fmt.Errorf("InformationTimes[%d]=%v: entries must be strictly increasing in (0, 1]", i, t)
			}
			prev = t
		}
		if c.InformationTimes[c.MaxLooks-1] != 1 {
			return errors.New("InformationTimes must end at 1")
		}
	}
	return nil
}

// futilityThreshold returns the configured threshold with the default
// applied.
func (c *TestConfig) futilityThreshold() float64 {
	if c.FutilityThreshold == 0 {
		return DefaultFutilityThreshold
	}
	return c.FutilityThreshold
}
