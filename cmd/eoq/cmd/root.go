// Package cmd implements the eoq command line.
package cmd

import (
	"fmt"

	"github.com/iwvelando/eoq-calculator/internal/config"
	"github.com/iwvelando/eoq-calculator/internal/logging"
	"github.com/iwvelando/eoq-calculator/pkg/constants"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	cfgFile  string
	logLevel string
)

var rootCmd = &cobra.Command{
	Use:   "eoq",
	Short: "Economic Order Quantity calculator",
	Long: `eoq computes the Economic Order Quantity for a single inventory item,
together with the yearly order count, total inventory cost, reorder interval
and the cost curve around the optimum.

Results can be printed, explored in a terminal form, served through a web UI
and exported as an xlsx workbook.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", constants.DefaultConfigFile, "path to configuration file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level override (debug, info, warn, error)")
}

// loadApp loads the optional configuration file and builds the logger.
// Configuration warnings are logged, not returned.
func loadApp(op string) (*config.Configuration, *zap.Logger, error) {
	conf, err := config.LoadOptional(cfgFile)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration at %s: %w", cfgFile, err)
	}

	logger, err := logging.NewLogger(conf.Logging, logLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	for _, warning := range conf.ValidateConfiguration() {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", op),
		)
	}
	return conf, logger, nil
}
