package handlers

import (
	"net/http"

	"sequential-monitor/internal/api/models"
	"sequential-monitor/internal/sequential"

	"github.com/gin-gonic/gin"
)

// GetBoundaries handles GET /api/v1/boundaries
func GetBoundaries(c *gin.Context) {
	var req models.BoundariesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		writeBadRequest(c, "INVALID_REQUEST", err)
		return
	}

	eng, err := buildEngine(models.ExperimentRequest{
		MaxLooks:         req.MaxLooks,
		Alpha:            req.Alpha,
		Sided:            req.Sided,
		SpendingFunction: req.SpendingFunction,
		LanDeMetsRho:     req.LanDeMetsRho,
	})
	if err != nil {
		writeBadRequest(c, "INVALID_CONFIG", err)
		return
	}

	c.JSON(http.StatusOK, models.BoundariesResponse{
		Boundaries: eng.Boundaries(),
		Schedule:   eng.Schedule(),
	})
}

// ShouldStop handles POST /api/v1/should-stop
func ShouldStop(c *gin.Context) {
	var req models.ShouldStopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBadRequest(c, "INVALID_REQUEST", err)
		return
	}

	check, err := sequential.ShouldStopEarly(
		req.ControlN, req.TreatmentN,
		req.ControlRate, req.TreatmentRate,
		req.CurrentLook, req.MaxLooks, req.Alpha,
	)
	if err != nil {
		writeAnalysisError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.ShouldStopResponse{
		ShouldStop: check.ShouldStop,
		Reason:     check.Reason,
		ZScore:     check.ZScore,
		PValue:     check.PValue,
	})
}
