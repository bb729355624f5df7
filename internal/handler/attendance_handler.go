package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/attendance-calculator/internal/domain"
	"github.com/KasumiMercury/attendance-calculator/internal/observability/metrics"
	"github.com/KasumiMercury/attendance-calculator/internal/observability/tracing"
	"github.com/KasumiMercury/attendance-calculator/internal/service/attendance"
)

const (
	formFieldArrivalTime    = "arrival_time"
	formFieldBreakTimeSpent = "break_time_spent"

	indexTemplate = "index.html"
)

type AttendanceHandler struct {
	calculator        Calculator
	attendanceMetrics *metrics.AttendanceMetrics
}

func NewAttendanceHandler(calculator Calculator, attendanceMetrics *metrics.AttendanceMetrics) *AttendanceHandler {
	return &AttendanceHandler{
		calculator:        calculator,
		attendanceMetrics: attendanceMetrics,
	}
}

type CalculateRequest struct {
	ArrivalTime    string `json:"arrival_time" binding:"required"`
	BreakTimeSpent string `json:"break_time_spent" binding:"required"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

// HandleIndex renders the empty form.
func (h *AttendanceHandler) HandleIndex(c *gin.Context) {
	c.HTML(http.StatusOK, indexTemplate, newPageData(h.calculator.Policy()))
}

// HandleCalculateForm renders the form again with either the result or the
// validation message. The page is the error surface, so the status is
// always 200.
func (h *AttendanceHandler) HandleCalculateForm(c *gin.Context) {
	ctx := c.Request.Context()

	arrivalTimeStr := c.PostForm(formFieldArrivalTime)
	breakTimeSpentStr := c.PostForm(formFieldBreakTimeSpent)

	page := newPageData(h.calculator.Policy())
	page.ArrivalTimeStr = arrivalTimeStr
	page.BreakTimeSpentStr = breakTimeSpentStr

	result, err := h.calculate(ctx, arrivalTimeStr, breakTimeSpentStr)
	if err != nil {
		page.applyError(err)
	} else {
		page.applyResult(result)
	}

	c.HTML(http.StatusOK, indexTemplate, page)
}

func (h *AttendanceHandler) HandleCalculateAPI(c *gin.Context) {
	ctx := c.Request.Context()

	var req CalculateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(ctx, "request validation failed",
			slog.String("error", err.Error()),
			slog.String("path", c.Request.URL.Path),
		)
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation_error",
			Message: "arrival_time and break_time_spent are required",
		})
		return
	}

	result, err := h.calculate(ctx, req.ArrivalTime, req.BreakTimeSpent)
	if err != nil {
		var vErr *domain.ValidationError
		if errors.As(err, &vErr) {
			c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
				Error:   vErr.Kind.String(),
				Field:   vErr.Field,
				Message: vErr.Message,
			})
			return
		}

		slog.ErrorContext(ctx, "attendance calculation failed",
			slog.String("error", err.Error()),
		)
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "processing_error",
			Message: "failed to calculate attendance",
		})
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *AttendanceHandler) HandlePolicy(c *gin.Context) {
	c.JSON(http.StatusOK, attendance.SummarizePolicy(h.calculator.Policy()))
}

func (h *AttendanceHandler) calculate(ctx context.Context, arrivalTimeStr, breakTimeSpentStr string) (*attendance.Result, error) {
	ctx, span := tracing.StartCalculationSpan(ctx, arrivalTimeStr, breakTimeSpentStr)
	defer span.End()

	start := time.Now()
	result, err := h.calculator.Calculate(arrivalTimeStr, breakTimeSpentStr)
	duration := time.Since(start)

	if h.attendanceMetrics != nil {
		h.attendanceMetrics.RecordCalculationDuration(ctx, duration)
	}

	if err != nil {
		tracing.RecordCalculationResult(span, "", "", err)

		attrs := []any{slog.String("error", err.Error())}
		var vErr *domain.ValidationError
		if errors.As(err, &vErr) {
			attrs = append(attrs,
				slog.String("kind", vErr.Kind.String()),
				slog.String("field", vErr.Field),
			)
			if h.attendanceMetrics != nil {
				h.attendanceMetrics.RecordValidationFailure(ctx, vErr.Kind.String(), vErr.Field)
				h.attendanceMetrics.RecordCalculation(ctx, metrics.OutcomeInvalid, vErr.Severity().String())
			}
		}
		slog.InfoContext(ctx, "attendance input rejected", attrs...)

		return nil, err
	}

	tracing.RecordCalculationResult(span, result.DepartureTime, result.Severity, nil)
	if h.attendanceMetrics != nil {
		h.attendanceMetrics.RecordCalculation(ctx, metrics.OutcomeSuccess, result.Severity.String())
	}

	slog.InfoContext(ctx, "attendance calculated",
		slog.String("departure_time", result.DepartureTime),
		slog.Int("break_time_left_minutes", result.BreakTimeLeftMinutes),
		slog.Int("effective_work_minutes", result.EffectiveWorkMinutes),
		slog.String("severity", result.Severity.String()),
	)

	return result, nil
}
