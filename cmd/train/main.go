package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/diapredict/diapredict/internal/logger"
	"github.com/diapredict/diapredict/internal/trainer"
	"github.com/diapredict/diapredict/pkg/config"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logger.Setup(cfg.App.LogLevel, cfg.App.Mode)
	logger.Info("Starting model training")

	result, err := trainer.Run(cfg)
	if err != nil {
		return fmt.Errorf("training failed: %w", err)
	}

	logger.Infof("Training complete, best model: %s", result.BestDisplay)
	return nil
}
