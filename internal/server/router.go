package server

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/attendance-calculator/internal/handler"
	"github.com/KasumiMercury/attendance-calculator/internal/health"
	"github.com/KasumiMercury/attendance-calculator/internal/observability/logging"
	"github.com/KasumiMercury/attendance-calculator/internal/observability/metrics"
	"github.com/KasumiMercury/attendance-calculator/internal/observability/middleware"
)

const (
	Module     = logging.Module("attendance-calculator")
	tracerName = "github.com/KasumiMercury/attendance-calculator/internal/observability/middleware"
)

type Deps struct {
	AttendanceHandler *handler.AttendanceHandler
	HealthChecker     *health.Checker
	HTTPMetrics       *metrics.HTTPMetrics
}

// NewRouter wires middleware, templates and routes onto a fresh gin engine.
func NewRouter(deps Deps) (*gin.Engine, error) {
	tmpl, err := handler.LoadTemplates()
	if err != nil {
		return nil, fmt.Errorf("load templates: %w", err)
	}

	r := gin.New()
	r.Use(middleware.Gin(middleware.GinConfig{
		SkipPaths:   []string{"/health", "/health/live", "/health/ready"},
		Module:      Module,
		TracerName:  tracerName,
		HTTPMetrics: deps.HTTPMetrics,
	}))
	r.Use(middleware.PanicRecoveryGin())
	r.SetHTMLTemplate(tmpl)

	// Health check endpoints
	r.GET("/health/live", deps.HealthChecker.LiveHandler())
	r.GET("/health/ready", deps.HealthChecker.ReadyHandler())
	r.GET("/health", deps.HealthChecker.ReadyHandler())

	// Form
	r.GET("/", deps.AttendanceHandler.HandleIndex)
	r.POST("/calculate", deps.AttendanceHandler.HandleCalculateForm)

	// API routes
	v1 := r.Group("/api/v1")
	{
		v1.POST("/calculate", deps.AttendanceHandler.HandleCalculateAPI)
		v1.GET("/policy", deps.AttendanceHandler.HandlePolicy)
	}

	return r, nil
}
