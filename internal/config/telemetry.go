package config

import (
	"os"
	"strconv"
)

const (
	otlpEndpointEnv  = "OTEL_EXPORTER_OTLP_ENDPOINT"
	samplingRateEnv  = "OTEL_SAMPLING_RATE"
	metricsPeriodEnv = "OTEL_METRIC_EXPORT_INTERVAL_SECONDS"

	defaultSamplingRate  = 1.0
	defaultMetricsPeriod = 60
)

// TelemetryConfig controls OTLP export. An empty endpoint keeps the SDK
// providers in-process without exporting anything.
type TelemetryConfig struct {
	OTLPEndpoint         string
	SamplingRate         float64
	MetricExportInterval int
}

func LoadTelemetryConfig() (*TelemetryConfig, error) {
	rate := defaultSamplingRate
	if raw := os.Getenv(samplingRateEnv); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil || parsed < 0 || parsed > 1 {
			return nil, ErrInvalidSamplingRate
		}
		rate = parsed
	}

	period := defaultMetricsPeriod
	if v := os.Getenv(metricsPeriodEnv); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			period = parsed
		}
	}

	return &TelemetryConfig{
		OTLPEndpoint:         os.Getenv(otlpEndpointEnv),
		SamplingRate:         rate,
		MetricExportInterval: period,
	}, nil
}

func (c *TelemetryConfig) ExportEnabled() bool {
	return c != nil && c.OTLPEndpoint != ""
}
