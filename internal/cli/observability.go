package cli

import (
	"context"
	"time"

	"github.com/KasumiMercury/attendance-calculator/internal/config"
	"github.com/KasumiMercury/attendance-calculator/internal/observability"
	"github.com/KasumiMercury/attendance-calculator/internal/observability/logging"
	"github.com/KasumiMercury/attendance-calculator/internal/server"
)

func initObservability(ctx context.Context, cfg *config.Config, build BuildInfo) (*observability.Resources, error) {
	env, err := logging.ParseEnvironment(cfg.Env)
	if err != nil {
		return nil, err
	}

	return observability.Init(ctx, observability.Config{
		ServiceInfo: logging.ServiceInfo{
			Name:     cfg.ServiceName,
			Version:  build.Version,
			Revision: build.Revision,
		},
		Environment:          env,
		LogLevel:             cfg.LogLevel,
		DefaultModule:        server.Module,
		OTLPEndpoint:         cfg.Telemetry.OTLPEndpoint,
		SamplingRate:         cfg.Telemetry.SamplingRate,
		MetricExportInterval: time.Duration(cfg.Telemetry.MetricExportInterval) * time.Second,
	})
}
