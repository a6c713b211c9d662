package handlers

import (
	"net/http"

	"sequential-monitor/internal/api/models"
	"sequential-monitor/internal/planner"
	"sequential-monitor/internal/sequential"

	"github.com/gin-gonic/gin"
)

// PlanHandler handles sample-size planning requests
type PlanHandler struct{}

// NewPlanHandler creates a new planning handler
func NewPlanHandler() *PlanHandler {
	return &PlanHandler{}
}

// Plan handles POST /api/v1/plan
func (h *PlanHandler) Plan(c *gin.Context) {
	var req models.PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBadRequest(c, "INVALID_REQUEST", err)
		return
	}

	eng, err := buildEngine(req.Config)
	if err != nil {
		writeBadRequest(c, "INVALID_CONFIG", err)
		return
	}
	cfg := eng.Config()

	plan, err := planner.Compute(planner.Inputs{
		Alpha:               cfg.Alpha,
		Power:               cfg.Power,
		TwoSided:            cfg.Sided == sequential.TwoSided,
		Spending:            cfg.Spending,
		Schedule:            eng.Schedule(),
		MinDetectableEffect: req.MinDetectableEffect,
		BaselineRate:        req.BaselineRate,
		IsConversion:        req.IsConversion,
	})
	if err != nil {
		writeBadRequest(c, "INVALID_PLAN", err)
		return
	}

	c.JSON(http.StatusOK, models.PlanResponse{
		BaseSampleSize: plan.BaseSampleSize,
		MaxSampleSize:  plan.MaxSampleSize,
		PerLook:        plan.PerLook,
	})
}
