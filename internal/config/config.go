package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	portEnv            = "PORT"
	logLevelEnv        = "LOG_LEVEL"
	envEnv             = "ENV"
	serviceNameEnv     = "SERVICE_NAME"
	shutdownTimeoutEnv = "SHUTDOWN_TIMEOUT_SECONDS"

	defaultPort            = "8080"
	defaultEnv             = "dev"
	defaultServiceName     = "attendance-calculator"
	defaultShutdownTimeout = 10 * time.Second
)

type Config struct {
	Port            string
	LogLevel        slog.Level
	Env             string
	ServiceName     string
	ShutdownTimeout time.Duration
	Telemetry       *TelemetryConfig
	Policy          Policy
}

func Load() (*Config, error) {
	port := os.Getenv(portEnv)
	if port == "" {
		port = defaultPort
	}

	env := os.Getenv(envEnv)
	if env == "" {
		env = defaultEnv
	}

	serviceName := os.Getenv(serviceNameEnv)
	if serviceName == "" {
		serviceName = defaultServiceName
	}

	shutdownTimeout := defaultShutdownTimeout
	if v := os.Getenv(shutdownTimeoutEnv); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed <= 0 {
			return nil, ErrInvalidShutdownTimeout
		}
		shutdownTimeout = time.Duration(parsed) * time.Second
	}

	telemetryConfig, err := LoadTelemetryConfig()
	if err != nil {
		return nil, err
	}

	return &Config{
		Port:            port,
		LogLevel:        parseLogLevel(os.Getenv(logLevelEnv)),
		Env:             env,
		ServiceName:     serviceName,
		ShutdownTimeout: shutdownTimeout,
		Telemetry:       telemetryConfig,
		Policy:          DefaultPolicy(),
	}, nil
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
