package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/KasumiMercury/attendance-calculator/internal/config"
	"github.com/KasumiMercury/attendance-calculator/internal/handler"
	"github.com/KasumiMercury/attendance-calculator/internal/health"
	"github.com/KasumiMercury/attendance-calculator/internal/observability/metrics"
	"github.com/KasumiMercury/attendance-calculator/internal/server"
	"github.com/KasumiMercury/attendance-calculator/internal/service/attendance"
)

func NewServeCommand(build BuildInfo) *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the web form and JSON API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}
			if port != "" {
				cfg.Port = port
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return runServe(ctx, cfg, build)
		},
	}

	cmd.Flags().StringVar(&port, "port", "", "Listen port (overrides PORT)")

	return cmd
}

func runServe(ctx context.Context, cfg *config.Config, build BuildInfo) error {
	obs, err := initObservability(ctx, cfg, build)
	if err != nil {
		return fmt.Errorf("initialize observability: %w", err)
	}
	defer func() {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := obs.Shutdown(shutdownCtx); err != nil {
			slog.Warn("observability shutdown error", slog.String("error", err.Error()))
		}
	}()

	slog.SetDefault(obs.Logger())

	if err := config.ValidateForRun(cfg); err != nil {
		slog.Error("configuration validation error", slog.String("error", err.Error()))
		return err
	}

	httpMetrics, err := metrics.NewHTTPMetrics()
	if err != nil {
		slog.Error("failed to initialize HTTP metrics", slog.String("error", err.Error()))
		return err
	}

	attendanceMetrics, err := metrics.NewAttendanceMetrics()
	if err != nil {
		slog.Error("failed to initialize attendance metrics", slog.String("error", err.Error()))
		return err
	}

	calculator := attendance.NewCalculator(cfg.Policy)

	if os.Getenv(gin.EnvGinMode) == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	router, err := server.NewRouter(server.Deps{
		AttendanceHandler: handler.NewAttendanceHandler(calculator, attendanceMetrics),
		HealthChecker:     health.NewChecker(calculator, build.Version),
		HTTPMetrics:       httpMetrics,
	})
	if err != nil {
		slog.Error("failed to build router", slog.String("error", err.Error()))
		return err
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		slog.Info("starting server",
			slog.String("port", cfg.Port),
			slog.String("arrival_window", cfg.Policy.MinArrival.String()+"-"+cfg.Policy.MaxArrival.String()),
			slog.Int("required_total_office_minutes", cfg.Policy.RequiredTotalOfficeMinutes),
			slog.Int("required_work_minutes", cfg.Policy.RequiredWorkMinutes),
			slog.Int("designated_break_minutes", cfg.Policy.DesignatedBreakMinutes),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server exited with error", slog.String("error", err.Error()))
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		slog.Info(shutdownReason(ctx))

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("failed to shutdown server", slog.String("error", err.Error()))
			return err
		}

		slog.Info("server exited properly")
		return nil
	})

	return g.Wait()
}

// shutdownReason tells a signal on the parent context apart from a sibling
// goroutine failing and cancelling the group.
func shutdownReason(parent context.Context) string {
	if parent.Err() != nil {
		return "shutdown signal received"
	}
	return "shutting down after server error"
}
