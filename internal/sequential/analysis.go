package sequential

// InterimAnalysis is one row of the monitoring log: the outcome of testing
// accumulated data against the precomputed boundary at a single look.
// Records are immutable once appended.
type InterimAnalysis struct {
	LookNumber          int
	InformationFraction float64

	ZScore           float64
	PValue           float64
	CriticalBoundary float64

	StopForEfficacy  bool
	StopForFutility  bool
	ConditionalPower float64

	// AlphaSpent is the cumulative alpha consumed through this look under
	// the configured spending function; AlphaRemaining is the rest of the
	// budget.
	AlphaSpent     float64
	AlphaRemaining float64
}
