package sequential

import "errors"

// Sentinel errors for Analyze misuse. All of them fail before any state is
// touched; a failed call never partially appends to the analysis log.
var (
	// ErrInvalidLookNumber reports a look number outside [1, maxLooks].
	ErrInvalidLookNumber = errors.New("look number out of range")

	// ErrInvalidInput reports degenerate sample statistics (non-positive
	// group sizes or pooled standard deviation) that would otherwise
	// propagate NaN through the z-score arithmetic.
	ErrInvalidInput = errors.New("invalid sample statistics")

	// ErrOutOfOrderLook reports a look number that does not advance past
	// the most recently analyzed look.
	ErrOutOfOrderLook = errors.New("look number must increase between analyses")

	// ErrTrialStopped reports an analysis attempted after the experiment
	// already reached a terminal decision.
	ErrTrialStopped = errors.New("experiment already reached a terminal decision")
)
