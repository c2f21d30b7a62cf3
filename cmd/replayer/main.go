package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/payments-replay-engine/internal/config"
	"github.com/payments-replay-engine/internal/domain/ledger"
	"github.com/payments-replay-engine/internal/logger"
	"github.com/payments-replay-engine/internal/metrics"
	"github.com/payments-replay-engine/internal/replay"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "usage: %s <transactions.csv>\n", os.Args[0])
		os.Exit(1)
	}
	inputPath := os.Args[1]

	// Initialize configuration
	cfg, err := config.LoadConfig("replayer")
	if err != nil {
		// logger is not initialized yet, so we use fmt
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger with a fresh correlation id for this run
	log := logger.NewLogger(cfg).With("run_id", uuid.NewString())

	log.Info("starting replay",
		"app_name", cfg.Application.Name,
		"env", cfg.Application.Env,
		"input", inputPath,
	)

	collector := metrics.NewCollector(log)

	var metricsServer *http.Server
	if cfg.Metrics.Enabled {
		metricsServer = collector.StartServer(fmt.Sprintf(":%d", cfg.Metrics.Port))
	}

	input, err := os.Open(inputPath)
	if err != nil {
		log.Error("failed to open input", "path", inputPath, "error", err)
		os.Exit(1)
	}
	defer input.Close()

	output := os.Stdout
	if cfg.Replay.OutputPath != "" {
		f, err := os.Create(cfg.Replay.OutputPath)
		if err != nil {
			log.Error("failed to create output", "path", cfg.Replay.OutputPath, "error", err)
			os.Exit(1)
		}
		defer f.Close()
		output = f
	}

	runner := replay.NewRunner(ledger.New(), collector, cfg.Replay.Strict, log)
	runErr := runner.Run(input, output)

	if metricsServer != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := metricsServer.Shutdown(shutdownCtx); err != nil {
			log.Error("metrics server shutdown failed", "error", err)
		}
	}

	if runErr != nil {
		log.Error("replay failed", "error", runErr)
		os.Exit(1)
	}
}
