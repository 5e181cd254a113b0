package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"paycheck-agent/client"
	"paycheck-agent/config"
	"paycheck-agent/logger"
	"paycheck-agent/repository"
	"paycheck-agent/service"
)

func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "paycheck-agent",
		Short:         "Take-home pay breakdowns backed by a remote tax engine",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newServeCommand())
	root.AddCommand(newCalculateCommand())
	return root
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// bootstrap loads configuration, sets up logging and wires the paycheck service.
func bootstrap() (config.Config, *service.PaycheckService, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, nil, err
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, nil, fmt.Errorf("invalid configuration: %w", err)
	}

	logger.InitLoggerWithConfig(logger.LoggerConfig{
		Level:       cfg.LogLevel,
		Stage:       cfg.Stage,
		EnableJSON:  cfg.Stage == logger.ProdStage,
		EnableColor: cfg.Stage != logger.ProdStage,
	})

	engine := client.NewTaxEngineClient(
		cfg.TaxEngine.URL,
		client.WithAPIKey(cfg.TaxEngine.APIKey),
		client.WithTimeout(cfg.TaxEngine.Timeout),
		client.WithLogger(logger.Log),
	)

	svc := service.NewPaycheckService(
		service.NewRequestBuilder(cfg.DefaultTaxYear),
		engine,
		repository.NewBreakdownRepositoryMemory(),
	)
	return cfg, svc, nil
}
