package logging

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
)

var ErrUnknownEnvironment = errors.New("unknown environment")

type Environment string

const (
	EnvDev     Environment = "dev"
	EnvStaging Environment = "staging"
	EnvProd    Environment = "prod"
)

// ParseEnvironment maps the ENV value onto a known environment.
func ParseEnvironment(s string) (Environment, error) {
	switch env := Environment(s); env {
	case EnvDev, EnvStaging, EnvProd:
		return env, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownEnvironment, s)
	}
}

// Module names the component a log line originates from.
type Module string

type ServiceInfo struct {
	Name     string
	Version  string
	Revision string
}

type Config struct {
	Service       ServiceInfo
	Environment   Environment
	Level         slog.Leveler
	DefaultModule Module
}

type moduleKey struct{}

// WithModule overrides the module attribute for logs written with ctx.
func WithModule(ctx context.Context, module Module) context.Context {
	return context.WithValue(ctx, moduleKey{}, module)
}

func moduleFromContext(ctx context.Context) (Module, bool) {
	if ctx == nil {
		return "", false
	}
	m, ok := ctx.Value(moduleKey{}).(Module)
	return m, ok
}

// NewLogger builds the JSON logger used across the service.
func NewLogger(w io.Writer, cfg Config) *slog.Logger {
	level := cfg.Level
	if level == nil {
		level = slog.LevelInfo
	}

	base := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	})

	attrs := []slog.Attr{
		slog.String("service.name", cfg.Service.Name),
		slog.String("env", string(cfg.Environment)),
	}
	if cfg.Service.Version != "" {
		attrs = append(attrs, slog.String("service.version", cfg.Service.Version))
	}
	if cfg.Service.Revision != "" {
		attrs = append(attrs, slog.String("service.revision", cfg.Service.Revision))
	}

	withService := base.WithAttrs(attrs)
	return slog.New(&contextHandler{
		root:          withService,
		handler:       withService,
		defaultModule: cfg.DefaultModule,
	})
}
