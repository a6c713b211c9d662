package models

// ExperimentRequest mirrors the YAML experiment config for JSON requests.
// Omitted fields fall back to the standard design (5 looks, alpha 0.05,
// power 0.8, two-sided, O'Brien-Fleming).
type ExperimentRequest struct {
	Name             string    `json:"name,omitempty"`
	MaxLooks         int       `json:"max_looks,omitempty"`
	Alpha            float64   `json:"alpha,omitempty"`
	Power            float64   `json:"power,omitempty"`
	Sided            string    `json:"sided,omitempty"`
	SpendingFunction string    `json:"spending_function,omitempty"`
	LanDeMetsRho     float64   `json:"lan_demets_rho,omitempty"`
	InformationTimes []float64 `json:"information_times,omitempty"`

	FutilityThreshold     float64 `json:"futility_threshold,omitempty"`
	FutilityAssumedEffect float64 `json:"futility_assumed_effect,omitempty"`
}

// LookRequest carries one look's aggregated sample statistics.
type LookRequest struct {
	LookNumber    int     `json:"look_number" binding:"required"`
	NControl      int     `json:"n_control" binding:"required"`
	NTreatment    int     `json:"n_treatment" binding:"required"`
	MeanControl   float64 `json:"mean_control"`
	MeanTreatment float64 `json:"mean_treatment"`
	PooledStdDev  float64 `json:"pooled_std_dev" binding:"required"`
}

// AnalyzeRequest replays the supplied looks in order against a fresh
// engine; the response describes the last look applied. The API holds no
// state between requests, so each request carries its full history.
type AnalyzeRequest struct {
	Config ExperimentRequest `json:"config"`
	Looks  []LookRequest     `json:"looks" binding:"required,min=1"`
}

// MonitorRequest is AnalyzeRequest plus the aggregated decision view in the
// response.
type MonitorRequest struct {
	Config ExperimentRequest `json:"config"`
	Looks  []LookRequest     `json:"looks" binding:"required,min=1"`
}

// PlanRequest asks for a sequential sample-size plan under the given
// design.
type PlanRequest struct {
	Config              ExperimentRequest `json:"config"`
	MinDetectableEffect float64           `json:"min_detectable_effect" binding:"required"`
	BaselineRate        float64           `json:"baseline_rate"`
	IsConversion        bool              `json:"is_conversion"`
}

// BoundariesRequest previews the boundary set and information schedule for
// a design (GET query parameters).
type BoundariesRequest struct {
	MaxLooks         int     `form:"max_looks"`
	Alpha            float64 `form:"alpha"`
	Sided            string  `form:"sided"`
	SpendingFunction string  `form:"spending_function"`
	LanDeMetsRho     float64 `form:"lan_demets_rho"`
}

// ShouldStopRequest is the one-shot conversion-rate efficacy check.
type ShouldStopRequest struct {
	ControlN      int     `json:"control_n" binding:"required"`
	TreatmentN    int     `json:"treatment_n" binding:"required"`
	ControlRate   float64 `json:"control_rate"`
	TreatmentRate float64 `json:"treatment_rate"`
	CurrentLook   int     `json:"current_look" binding:"required"`
	MaxLooks      int     `json:"max_looks,omitempty"`
	Alpha         float64 `json:"alpha,omitempty"`
}
