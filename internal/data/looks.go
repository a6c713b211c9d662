package data

import (
	"encoding/json"
	"fmt"
	"os"
)

// LookRecord is one recorded interim look: already-aggregated sample
// statistics supplied by the upstream experimentation pipeline.
type LookRecord struct {
	LookNumber    int     `json:"look_number"`
	NControl      int     `json:"n_control"`
	NTreatment    int     `json:"n_treatment"`
	MeanControl   float64 `json:"mean_control"`
	MeanTreatment float64 `json:"mean_treatment"`
	PooledStdDev  float64 `json:"pooled_std_dev"`
}

// LookSeries is a recorded monitoring session: the looks observed for one
// experiment, in the order they arrived.
type LookSeries struct {
	Experiment string       `json:"experiment"`
	Looks      []LookRecord `json:"looks"`
}

// LoadLooksJSON reads a recorded look series from a JSON file so a
// monitoring session can be replayed offline.
func LoadLooksJSON(path string) (*LookSeries, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var s LookSeries
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, err
	}
	if len(s.Looks) == 0 {
		return nil, fmt.Errorf("no looks in %s", path)
	}
	return &s, nil
}
