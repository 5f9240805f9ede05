package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/teilomillet/promptgate/config"
	"github.com/teilomillet/promptgate/server"
	"github.com/teilomillet/promptgate/server/metrics"
	"github.com/teilomillet/promptgate/server/routing"
	"github.com/teilomillet/promptgate/server/upstream"
	"go.uber.org/zap"
)

var (
	configFile = flag.String("config", "", "Path to an optional YAML configuration file")
	validate   = flag.Bool("validate", false, "Validate configuration and exit")
	version    = flag.Bool("version", false, "Print version and exit")
)

const Version = "v0.1.0"

func main() {
	flag.Parse()

	if *version {
		fmt.Printf("promptgate %s\n", Version)
		os.Exit(0)
	}

	// Load configuration: .env, optional file, then the environment
	cfg, err := config.FromEnvironment(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Just validate and exit if requested
	if *validate {
		fmt.Println("Configuration is valid")
		os.Exit(0)
	}

	logger, err := config.NewLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}

	// Setup signal handling for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	}()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("Server exited with error", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
	logger.Sync()
}

// run builds the process-wide components once, then serves until ctx is done.
func run(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	m := metrics.NewMetrics()

	client, err := upstream.New(cfg.Upstream, logger, m)
	if err != nil {
		return fmt.Errorf("create upstream client: %w", err)
	}

	router := routing.NewRouter(client, m, logger)
	srv := server.NewServer(cfg.Server, router, logger)

	logger.Info("Starting promptgate",
		zap.String("version", Version),
		zap.Int("port", cfg.Server.Port),
		zap.String("provider", cfg.Upstream.Provider),
		zap.String("model", upstream.Model),
	)
	return srv.Start(ctx)
}
