package handlers

import (
	"errors"
	"net/http"

	"sequential-monitor/internal/api/models"
	"sequential-monitor/internal/sequential"

	"github.com/gin-gonic/gin"
)

// AnalysisHandler handles interim-analysis requests. Engines are built per
// request; the API holds no monitoring state between calls.
type AnalysisHandler struct{}

// NewAnalysisHandler creates a new analysis handler
func NewAnalysisHandler() *AnalysisHandler {
	return &AnalysisHandler{}
}

// Analyze handles POST /api/v1/analyze
func (h *AnalysisHandler) Analyze(c *gin.Context) {
	var req models.AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBadRequest(c, "INVALID_REQUEST", err)
		return
	}

	eng, err := buildEngine(req.Config)
	if err != nil {
		writeBadRequest(c, "INVALID_CONFIG", err)
		return
	}

	analyzed, err := replay(eng, req.Looks)
	if err != nil {
		writeAnalysisError(c, err)
		return
	}
	log := eng.Log()
	if len(log) == 0 {
		writeAnalysisError(c, errors.New("no looks could be analyzed"))
		return
	}

	c.JSON(http.StatusOK, models.AnalyzeResponse{
		Analysis:      toAnalysisRow(log[len(log)-1]),
		LooksAnalyzed: analyzed,
	})
}

// Monitor handles POST /api/v1/monitor
func (h *AnalysisHandler) Monitor(c *gin.Context) {
	var req models.MonitorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBadRequest(c, "INVALID_REQUEST", err)
		return
	}

	eng, err := buildEngine(req.Config)
	if err != nil {
		writeBadRequest(c, "INVALID_CONFIG", err)
		return
	}

	analyzed, err := replay(eng, req.Looks)
	if err != nil {
		writeAnalysisError(c, err)
		return
	}

	c.JSON(http.StatusOK, buildMonitorResponse(eng.Result(), analyzed))
}

func buildMonitorResponse(res sequential.Result, analyzed int) models.MonitorResponse {
	rows := make([]models.AnalysisRow, len(res.Analyses))
	for i, a := range res.Analyses {
		rows[i] = toAnalysisRow(a)
	}
	out := models.MonitorResponse{
		Status:        string(res.Status),
		Decision:      string(res.Decision),
		Boundaries:    res.Boundaries,
		Schedule:      res.Schedule,
		Analyses:      rows,
		LooksAnalyzed: analyzed,
	}
	if res.Status != sequential.StatusContinue {
		adj := res.AdjustedPValue
		out.AdjustedPValue = &adj
	}
	return out
}
