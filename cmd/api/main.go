package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"sequential-monitor/internal/api/handlers"
	"sequential-monitor/internal/api/middleware"
	"sequential-monitor/internal/config"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.LoadServer()
	if err != nil {
		slog.Error("failed to load server config", "error", err)
		os.Exit(1)
	}

	setupLogger(cfg)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(middleware.ErrorHandler())

	analysisHandler := handlers.NewAnalysisHandler()
	planHandler := handlers.NewPlanHandler()

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API routes
	api := router.Group("/api/v1")
	{
		api.POST("/analyze", analysisHandler.Analyze)
		api.POST("/monitor", analysisHandler.Monitor)
		api.POST("/plan", planHandler.Plan)
		api.POST("/should-stop", handlers.ShouldStop)

		api.GET("/boundaries", handlers.GetBoundaries)
		api.GET("/spending-functions", handlers.ListSpendingFunctions)
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	handler := middleware.CORS(cfg.AllowedOrigins)(router)
	slog.Info("starting API server", "addr", addr, "env", cfg.Env)
	if err := http.ListenAndServe(addr, handler); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}

func setupLogger(cfg *config.ServerConfig) {
	var level slog.Level
	switch strings.ToLower(cfg.LogLevel) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.Env == "production" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
}
