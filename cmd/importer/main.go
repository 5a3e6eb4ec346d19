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

	logger := logging.New(cfg.LogLevel, cfg.LogFormat).With("service", cfg.ServiceName+"-importer")
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

	ctx, span, runID := observability.StartRun(ctx, "importer.run")
	defer span.End()
	logger = logger.With("run_id", runID)

	importer, err := app.NewImporter(ctx, cfg, logger)
	if err != nil {
		logger.ErrorContext(ctx, "build importer", "error", err)
		return cli.ExitFailure
	}
	defer func() {
		if err := importer.Close(); err != nil {
			logger.Warn("close database", "error", err)
		}
	}()

	start := time.Now()
	result, err := importer.Service.Import(ctx, cfg.ImportBatchSize)
	if err != nil {
		logger.ErrorContext(ctx, "import batting file", "error", err, "file", cfg.BattingFile, "reason", cli.Reason(err))
		return cli.ExitCode(err)
	}

	logger.InfoContext(ctx, "import finished",
		"file", cfg.BattingFile,
		"read", result.Read,
		"inserted", result.Inserted,
		"skipped", result.Skipped,
		"duration", time.Since(start),
	)
	return cli.ExitOK
}
