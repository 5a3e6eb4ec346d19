package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/riskibarqy/baseball-stats/internal/app"
	"github.com/riskibarqy/baseball-stats/internal/config"
	"github.com/riskibarqy/baseball-stats/internal/interfaces/cli"
	"github.com/riskibarqy/baseball-stats/internal/observability"
	"github.com/riskibarqy/baseball-stats/internal/platform/logging"
)

func main() {
	os.Exit(run())
}

func run() int {
	_ = godotenv.Load(".env.local", ".env")

	cfg, err := config.Load()
	if err != nil {
		logging.New(logging.LevelError, logging.FormatConsole).Error("load config", "error", err)
		return cli.ExitInvalidArgs
	}

	logger := logging.New(cfg.LogLevel, cfg.LogFormat).With("service", cfg.ServiceName)
	logging.SetDefault(logger)
	defer func() { _ = logger.Sync() }()

	shutdownTracing, err := observability.InitUptrace(cfg, logger)
	if err != nil {
		logger.Error("init uptrace", "error", err)
		return cli.ExitFailure
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(shutdownCtx); err != nil {
			logger.Warn("shutdown uptrace", "error", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ctx, span, runID := observability.StartRun(ctx, "stats.run")
	defer span.End()
	logger = logger.With("run_id", runID)

	stats, err := app.NewStats(ctx, cfg, logger)
	if err != nil {
		logger.ErrorContext(ctx, "build stats service", "error", err)
		return cli.ExitFailure
	}
	defer func() {
		if err := stats.Close(); err != nil {
			logger.Warn("close stats resources", "error", err)
		}
	}()

	report, err := cli.NewReporter(stats.Service, cfg.Report, logger).Build(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "build report", "error", err, "reason", cli.Reason(err))
		return cli.ExitCode(err)
	}

	if err := cli.Render(os.Stdout, report, cfg.OutputFormat); err != nil {
		logger.ErrorContext(ctx, "render report", "error", err)
		return cli.ExitFailure
	}
	return cli.ExitOK
}
