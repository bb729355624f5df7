package tracing

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/KasumiMercury/attendance-calculator/internal/domain"
)

const attendanceTracerName = "github.com/KasumiMercury/attendance-calculator/internal/service/attendance"

func AttendanceTracer() trace.Tracer {
	return otel.Tracer(attendanceTracerName)
}

func StartCalculationSpan(ctx context.Context, arrivalTime, breakTimeSpent string) (context.Context, trace.Span) {
	return AttendanceTracer().Start(ctx, "attendance.calculate",
		trace.WithAttributes(
			attribute.String("attendance.arrival_time", arrivalTime),
			attribute.String("attendance.break_time_spent", breakTimeSpent),
		),
	)
}

func RecordCalculationResult(span trace.Span, departureTime string, severity domain.Severity, err error) {
	if err != nil {
		var vErr *domain.ValidationError
		if errors.As(err, &vErr) {
			span.SetAttributes(
				attribute.String("attendance.error_kind", vErr.Kind.String()),
				attribute.String("attendance.error_field", vErr.Field),
			)
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return
	}

	span.SetAttributes(
		attribute.String("attendance.departure_time", departureTime),
		attribute.String("attendance.severity", severity.String()),
	)
	span.SetStatus(codes.Ok, "")
}
