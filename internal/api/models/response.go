package models

// AnalysisRow is one interim analysis in JSON form.
type AnalysisRow struct {
	LookNumber          int     `json:"look_number"`
	InformationFraction float64 `json:"information_fraction"`
	ZScore              float64 `json:"z_score"`
	PValue              float64 `json:"p_value"`
	CriticalBoundary    float64 `json:"critical_boundary"`
	StopForEfficacy     bool    `json:"stop_for_efficacy"`
	StopForFutility     bool    `json:"stop_for_futility"`
	ConditionalPower    float64 `json:"conditional_power"`
	AlphaSpent          float64 `json:"alpha_spent"`
	AlphaRemaining      float64 `json:"alpha_remaining"`
}

// AnalyzeResponse reports the last look applied plus how many of the
// submitted looks were replayed before monitoring reached a terminal
// decision.
type AnalyzeResponse struct {
	Analysis      AnalysisRow `json:"analysis"`
	LooksAnalyzed int         `json:"looks_analyzed"`
}

// MonitorResponse is the aggregated decision view over a replayed session.
type MonitorResponse struct {
	Status         string        `json:"status"`
	Decision       string        `json:"decision"`
	AdjustedPValue *float64      `json:"adjusted_p_value,omitempty"`
	Boundaries     []float64     `json:"boundaries"`
	Schedule       []float64     `json:"information_schedule"`
	Analyses       []AnalysisRow `json:"analyses"`
	LooksAnalyzed  int           `json:"looks_analyzed"`
}

// PlanResponse is a per-group sequential sample-size plan.
type PlanResponse struct {
	BaseSampleSize int   `json:"base_sample_size"`
	MaxSampleSize  int   `json:"max_sample_size"`
	PerLook        []int `json:"per_look"`
}

// BoundariesResponse previews a design's boundary set and schedule.
type BoundariesResponse struct {
	Boundaries []float64 `json:"boundaries"`
	Schedule   []float64 `json:"information_schedule"`
}

// ShouldStopResponse is the one-shot efficacy check outcome.
type ShouldStopResponse struct {
	ShouldStop bool    `json:"should_stop"`
	Reason     string  `json:"reason"`
	ZScore     float64 `json:"z_score"`
	PValue     float64 `json:"p_value"`
}

// SpendingFunctionInfo describes one spending function for the catalog
// endpoint.
type SpendingFunctionInfo struct {
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	InflationFactor float64 `json:"inflation_factor"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
