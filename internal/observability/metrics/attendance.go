package metrics

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	attendanceMeterName = "attendance.calculator"

	OutcomeSuccess = "success"
	OutcomeInvalid = "invalid"
)

type AttendanceMetrics struct {
	calculations        metric.Int64Counter
	validationFailures  metric.Int64Counter
	calculationDuration metric.Float64Histogram
}

func NewAttendanceMetrics() (*AttendanceMetrics, error) {
	return NewAttendanceMetricsWithProvider(otel.GetMeterProvider())
}

func NewAttendanceMetricsWithProvider(provider metric.MeterProvider) (*AttendanceMetrics, error) {
	meter := provider.Meter(attendanceMeterName)

	calculations, err := meter.Int64Counter(
		"attendance_calculations_total",
		metric.WithDescription("Total number of attendance calculations"),
		metric.WithUnit("{calculation}"),
	)
	if err != nil {
		return nil, err
	}

	validationFailures, err := meter.Int64Counter(
		"attendance_validation_failures_total",
		metric.WithDescription("Calculations rejected by input validation"),
		metric.WithUnit("{calculation}"),
	)
	if err != nil {
		return nil, err
	}

	calculationDuration, err := meter.Float64Histogram(
		"attendance_calculation_duration_seconds",
		metric.WithDescription("Time spent computing one attendance result"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(
			0.000001, 0.000005, 0.00001, 0.00005, 0.0001, 0.0005, 0.001,
		),
	)
	if err != nil {
		return nil, err
	}

	return &AttendanceMetrics{
		calculations:        calculations,
		validationFailures:  validationFailures,
		calculationDuration: calculationDuration,
	}, nil
}

func (m *AttendanceMetrics) RecordCalculation(ctx context.Context, outcome, severity string) {
	m.calculations.Add(ctx, 1, metric.WithAttributes(
		attribute.String("outcome", outcome),
		attribute.String("severity", severity),
	))
}

func (m *AttendanceMetrics) RecordValidationFailure(ctx context.Context, kind, field string) {
	m.validationFailures.Add(ctx, 1, metric.WithAttributes(
		attribute.String("kind", kind),
		attribute.String("field", field),
	))
}

func (m *AttendanceMetrics) RecordCalculationDuration(ctx context.Context, duration time.Duration) {
	m.calculationDuration.Record(ctx, duration.Seconds())
}
