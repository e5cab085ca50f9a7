// Package output provides utilities for formatting and displaying EOQ results
// on the command line.
package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/iwvelando/eoq-calculator/internal/report"
	"github.com/iwvelando/eoq-calculator/pkg/constants"
	"github.com/iwvelando/eoq-calculator/pkg/format"
)

var (
	successStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#10B981"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#3B82F6"))
	headingStyle = lipgloss.NewStyle().Bold(true).MarginTop(1)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280")).Italic(true)
	cellStyle    = lipgloss.NewStyle().Padding(0, 1)
)

// Write renders rep in the named output format.
func Write(w io.Writer, outputFormat string, rep *report.Report, currencySymbol string) error {
	switch outputFormat {
	case constants.OutputFormatPretty:
		return PrettyFormat(w, rep, currencySymbol)
	case constants.OutputFormatCSV:
		return CsvFormat(w, rep)
	case constants.OutputFormatJSON:
		return JSONFormat(w, rep)
	}
	return fmt.Errorf("unsupported output format: %s", outputFormat)
}

// PrettyFormat outputs a human-readable rather than machine-readable report.
func PrettyFormat(w io.Writer, rep *report.Report, currencySymbol string) error {
	if _, err := fmt.Fprintln(w, successStyle.Render(rep.Success)); err != nil {
		return err
	}
	for _, line := range rep.Info {
		if _, err := fmt.Fprintln(w, infoStyle.Render(line)); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintln(w, headingStyle.Render("Results")); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, SummaryTable(rep)); err != nil {
		return err
	}

	var note string
	if best, ok := rep.Curve.Minimum(); ok {
		note = fmt.Sprintf("Lowest sampled total cost at Q=%d: %s (%d points sampled)",
			best.Q, format.Currency(currencySymbol, best.TotalCost), len(rep.Curve))
	} else {
		note = "EOQ is below one unit; no cost curve was sampled"
	}
	_, err := fmt.Fprintln(w, mutedStyle.Render(note))
	return err
}

// SummaryTable renders the summary rows as a bordered two-column table.
func SummaryTable(rep *report.Report) string {
	rows := make([][]string, 0, len(rep.Summary))
	for _, r := range rep.Summary {
		rows = append(rows, []string{r.Label, r.Display})
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Parameter", "Value").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if col == 1 {
				return cellStyle.Align(lipgloss.Right)
			}
			return cellStyle
		}).
		String()
}

// CsvFormat outputs the summary table, a blank line and the cost curve in
// comma-separated value format. Values are written unrounded.
func CsvFormat(w io.Writer, rep *report.Report) error {
	cw := csv.NewWriter(w)

	records := [][]string{{"parameter", "value"}}
	for _, r := range rep.Summary {
		records = append(records, []string{r.Label, formatRaw(r.Value)})
	}
	records = append(records, []string{})
	records = append(records, []string{"q", "ordering cost", "holding cost", "total cost"})
	for _, p := range rep.Curve {
		records = append(records, []string{
			strconv.Itoa(p.Q),
			formatRaw(p.OrderingCost),
			formatRaw(p.HoldingCost),
			formatRaw(p.TotalCost),
		})
	}

	if err := cw.WriteAll(records); err != nil {
		return fmt.Errorf("failed to write csv: %w", err)
	}
	return nil
}

// JSONFormat outputs the complete report as indented JSON.
func JSONFormat(w io.Writer, rep *report.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rep)
}

func formatRaw(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
