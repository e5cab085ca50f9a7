package cmd

import (
	"fmt"

	"github.com/iwvelando/eoq-calculator/internal/eoq"
	"github.com/iwvelando/eoq-calculator/internal/export"
	"github.com/iwvelando/eoq-calculator/internal/report"
	"github.com/iwvelando/eoq-calculator/pkg/constants"
	"github.com/iwvelando/eoq-calculator/pkg/output"
	"github.com/iwvelando/eoq-calculator/pkg/validation"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	computeDemand       float64
	computeOrderCost    float64
	computeHoldingCost  float64
	computeWorkDays     float64
	computeOutputFormat string
	computeExport       string
)

var computeCmd = &cobra.Command{
	Use:   "compute",
	Short: "Compute the EOQ and print the results",
	Long: `Compute the Economic Order Quantity for the given demand and costs.

Every input must be at least 1. Work days default to the configured value
(360 unless overridden). Results are printed as pretty text, csv or json.

Examples:
  eoq compute --demand 1200 --order-cost 50 --holding-cost 2
  eoq compute --demand 1200 --order-cost 50 --holding-cost 2 --output-format csv
  eoq compute --demand 1200 --order-cost 50 --holding-cost 2 --export results.xlsx`,
	Args: cobra.NoArgs,
	RunE: runCompute,
}

func init() {
	rootCmd.AddCommand(computeCmd)

	flags := computeCmd.Flags()
	flags.Float64Var(&computeDemand, "demand", 0, "annual demand in units (D)")
	flags.Float64Var(&computeOrderCost, "order-cost", 0, "cost per order (S)")
	flags.Float64Var(&computeHoldingCost, "holding-cost", 0, "holding cost per unit per year (H)")
	flags.Float64Var(&computeWorkDays, "work-days", 0, "working days per year (default from configuration)")
	flags.StringVar(&computeOutputFormat, "output-format", "", "type of output override: pretty, csv, json")
	flags.StringVar(&computeExport, "export", "", "also write the results workbook to this path")

	_ = computeCmd.MarkFlagRequired("demand")
	_ = computeCmd.MarkFlagRequired("order-cost")
	_ = computeCmd.MarkFlagRequired("holding-cost")
}

func runCompute(cmd *cobra.Command, args []string) error {
	const op = "cmd.compute"

	conf, logger, err := loadApp(op)
	if err != nil {
		return err
	}
	defer func() {
		_ = logger.Sync()
	}()

	// CLI override takes precedence over config
	outputFormat := conf.Output.Format
	if computeOutputFormat != "" {
		outputFormat = computeOutputFormat
	}
	if outputFormat == "" {
		outputFormat = constants.OutputFormatPretty
	}
	if err := validation.ValidateOutputFormat(outputFormat); err != nil {
		return err
	}

	// An explicit --work-days is validated as given, zero included.
	workDays := conf.WorkDays()
	if cmd.Flags().Changed("work-days") {
		workDays = computeWorkDays
	}

	in := eoq.InputParameters{
		AnnualDemand: computeDemand,
		OrderCost:    computeOrderCost,
		HoldingCost:  computeHoldingCost,
		WorkDays:     workDays,
	}

	rep, err := report.Compute(in, conf.ReportOptions())
	if err != nil {
		logger.Error("failed to compute eoq",
			zap.String("op", op),
			zap.Error(err),
		)
		return err
	}

	if err := output.Write(cmd.OutOrStdout(), outputFormat, rep, conf.Display.CurrencySymbol); err != nil {
		return fmt.Errorf("failed to write results: %w", err)
	}

	if computeExport == "" {
		return nil
	}
	if err := export.WriteFile(computeExport, rep.Table(), rep.Curve); err != nil {
		logger.Error("failed to export workbook",
			zap.String("op", op),
			zap.String("path", computeExport),
			zap.Error(err),
		)
		return err
	}
	logger.Info("workbook exported",
		zap.String("op", op),
		zap.String("path", computeExport),
	)
	return nil
}
