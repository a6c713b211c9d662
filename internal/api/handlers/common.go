package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"sequential-monitor/internal/api/models"
	"sequential-monitor/internal/config"
	"sequential-monitor/internal/sequential"

	"github.com/gin-gonic/gin"
)

// buildEngine maps a request's design onto an engine, applying the standard
// defaults for omitted fields.
func buildEngine(req models.ExperimentRequest) (*sequential.Engine, error) {
	exp := config.ExperimentConfig{
		Name:                  req.Name,
		MaxLooks:              req.MaxLooks,
		Alpha:                 req.Alpha,
		Power:                 req.Power,
		Sided:                 req.Sided,
		SpendingFunction:      req.SpendingFunction,
		LanDeMetsRho:          req.LanDeMetsRho,
		InformationTimes:      req.InformationTimes,
		FutilityThreshold:     req.FutilityThreshold,
		FutilityAssumedEffect: req.FutilityAssumedEffect,
	}
	exp.ApplyDefaults()
	cfg, err := exp.ToTestConfig()
	if err != nil {
		return nil, err
	}
	return sequential.New(cfg)
}

// replay feeds looks through the engine in order. Replay stops quietly when
// a terminal decision is reached; every other analysis failure is returned.
func replay(eng *sequential.Engine, looks []models.LookRequest) (int, error) {
	analyzed := 0
	for _, l := range looks {
		_, err := eng.Analyze(l.LookNumber, l.NControl, l.NTreatment, l.MeanControl, l.MeanTreatment, l.PooledStdDev)
		if errors.Is(err, sequential.ErrTrialStopped) {
			break
		}
		if err != nil {
			return analyzed, err
		}
		analyzed++
	}
	return analyzed, nil
}

func toAnalysisRow(a sequential.InterimAnalysis) models.AnalysisRow {
	return models.AnalysisRow{
		LookNumber:          a.LookNumber,
		InformationFraction: a.InformationFraction,
		ZScore:              a.ZScore,
		PValue:              a.PValue,
		CriticalBoundary:    a.CriticalBoundary,
		StopForEfficacy:     a.StopForEfficacy,
		StopForFutility:     a.StopForFutility,
		ConditionalPower:    a.ConditionalPower,
		AlphaSpent:          a.AlphaSpent,
		AlphaRemaining:      a.AlphaRemaining,
	}
}

// writeAnalysisError maps engine errors onto stable JSON error codes.
func writeAnalysisError(c *gin.Context, err error) {
	code := "ANALYSIS_ERROR"
	switch {
	case errors.Is(err, sequential.ErrInvalidLookNumber):
		code = "INVALID_LOOK_NUMBER"
	case errors.Is(err, sequential.ErrInvalidInput):
		code = "INVALID_INPUT"
	case errors.Is(err, sequential.ErrOutOfOrderLook):
		code = "OUT_OF_ORDER_LOOK"
	case errors.Is(err, sequential.ErrTrialStopped):
		code = "TRIAL_STOPPED"
	}
	slog.Warn("analysis rejected", "code", code, "error", err)
	c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error: models.ErrorDetail{Code: code, Message: err.Error()},
	})
}

func writeBadRequest(c *gin.Context, code string, err error) {
	c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error: models.ErrorDetail{Code: code, Message: err.Error()},
	})
}
