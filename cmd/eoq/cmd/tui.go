package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/iwvelando/eoq-calculator/internal/tui"
	"github.com/iwvelando/eoq-calculator/pkg/constants"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var tuiExportPath string

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Start the interactive terminal form",
	Long: `Start the terminal form for the EOQ calculator.

Navigation:
  Tab/Shift+Tab  - Move between fields
  Enter          - Next field, computes on the last one
  Ctrl+R         - Compute
  Ctrl+S         - Export the workbook
  Esc/Ctrl+C     - Quit`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
	tuiCmd.Flags().StringVar(&tuiExportPath, "export", constants.ExportFileName, "path written by the export action")
}

func runTUI(cmd *cobra.Command, args []string) error {
	conf, logger, err := loadApp("cmd.tui")
	if err != nil {
		return err
	}
	defer func() {
		_ = logger.Sync()
	}()

	// The terminal belongs to the form unless logs go to a file.
	formLogger := zap.NewNop()
	if conf.Logging.OutputFile != "" {
		formLogger = logger
	}

	p := tea.NewProgram(
		tui.NewModel(conf, formLogger, tuiExportPath),
		tea.WithAltScreen(),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("terminal UI failed: %w", err)
	}
	return nil
}
