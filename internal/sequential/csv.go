package sequential

import (
	"encoding/csv"
	"os"
	"strconv"
)

// WriteLogCSV writes the interim analysis log as CSV, one row per look.
func WriteLogCSV(path string, log []InterimAnalysis) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"look",
		"information_fraction",
		"z_score",
		"p_value",
		"critical_boundary",
		"stop_for_efficacy",
		"stop_for_futility",
		"conditional_power",
		"alpha_spent",
		"alpha_remaining",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, a := range log {
		row := []string{
			strconv.Itoa(a.LookNumber),
			fmtFloat(a.InformationFraction),
			fmtFloat(a.ZScore),
			fmtFloat(a.PValue),
			fmtFloat(a.CriticalBoundary),
			strconv.FormatBool(a.StopForEfficacy),
			strconv.FormatBool(a.StopForFutility),
			fmtFloat(a.ConditionalPower),
			fmtFloat(a.AlphaSpent),
			fmtFloat(a.AlphaRemaining),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
