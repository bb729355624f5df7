package health

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/attendance-calculator/internal/domain"
	"github.com/KasumiMercury/attendance-calculator/internal/service/attendance"
)

// Status represents the health status of a service or dependency.
type Status string

const (
	StatusHealthy   Status = "healthy"
	StatusUnhealthy Status = "unhealthy"
)

const (
	probeArrival       = "08:00"
	probeBreakSpent    = "01:30"
	probeWantDeparture = "17:00"
	probeWantSeverity  = domain.SeverityExact
)

// CheckResult represents the health check result for a single dependency.
type CheckResult struct {
	Status    Status `json:"status"`
	LatencyMs int64  `json:"latency_ms"`
	Error     string `json:"error,omitempty"`
}

// HealthStatus represents the overall health status of the service.
type HealthStatus struct {
	Status  Status                 `json:"status"`
	Version string                 `json:"version,omitempty"`
	Checks  map[string]CheckResult `json:"checks,omitempty"`
}

// Prober is satisfied by attendance.Calculator.
type Prober interface {
	Calculate(arrivalTimeStr, breakTimeSpentStr string) (*attendance.Result, error)
}

// Checker verifies the calculator still produces the reference result.
type Checker struct {
	calculator Prober
	version    string
}

// NewChecker creates a new health checker with the given dependencies.
func NewChecker(calculator Prober, version string) *Checker {
	return &Checker{
		calculator: calculator,
		version:    version,
	}
}

// Check performs health checks on all dependencies and returns the overall status.
func (c *Checker) Check(_ context.Context) *HealthStatus {
	status := &HealthStatus{
		Status:  StatusHealthy,
		Version: c.version,
		Checks:  make(map[string]CheckResult),
	}

	if c.calculator != nil {
		start := time.Now()
		if err := c.probeCalculator(); err != nil {
			status.Status = StatusUnhealthy
			status.Checks["calculator"] = CheckResult{
				Status: StatusUnhealthy,
				Error:  err.Error(),
			}
		} else {
			status.Checks["calculator"] = CheckResult{
				Status:    StatusHealthy,
				LatencyMs: time.Since(start).Milliseconds(),
			}
		}
	}

	return status
}

func (c *Checker) probeCalculator() error {
	result, err := c.calculator.Calculate(probeArrival, probeBreakSpent)
	if err != nil {
		return fmt.Errorf("reference calculation failed: %w", err)
	}
	if result.DepartureTime != probeWantDeparture || result.Severity != probeWantSeverity {
		return fmt.Errorf("reference calculation returned departure %s severity %s, want %s %s",
			result.DepartureTime, result.Severity, probeWantDeparture, probeWantSeverity)
	}
	return nil
}

// LiveHandler returns a Gin handler for liveness probes.
func (c *Checker) LiveHandler() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}

// ReadyHandler returns a Gin handler for readiness probes.
func (c *Checker) ReadyHandler() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		status := c.Check(ctx.Request.Context())

		httpStatus := http.StatusOK
		if status.Status != StatusHealthy {
			httpStatus = http.StatusServiceUnavailable
		}

		ctx.JSON(httpStatus, status)
	}
}
