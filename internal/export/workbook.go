// Package export writes computation results as an xlsx workbook.
package export

import (
	"fmt"
	"io"
	"os"

	"github.com/iwvelando/eoq-calculator/internal/eoq"
	"github.com/iwvelando/eoq-calculator/internal/report"
	"github.com/iwvelando/eoq-calculator/pkg/constants"
	"github.com/xuri/excelize/v2"
)

var (
	summaryHeaders = []interface{}{"Parameter", "Value"}
	curveHeaders   = []interface{}{"Q", report.SeriesOrderingCost, report.SeriesHoldingCost, report.SeriesTotalCost}
)

// Build creates the two-sheet workbook. The caller owns the returned file and
// must Close it.
func Build(table eoq.SummaryTable, curve eoq.CostCurve) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName(f.GetSheetName(0), constants.SummarySheetName); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("failed to name summary sheet: %w", err)
	}
	if _, err := f.NewSheet(constants.CurveSheetName); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("failed to create curve sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#E2E8F0"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	if err := fillSummarySheet(f, table, headerStyle); err != nil {
		_ = f.Close()
		return nil, err
	}
	if err := fillCurveSheet(f, curve, headerStyle); err != nil {
		_ = f.Close()
		return nil, err
	}

	f.SetActiveSheet(0)
	return f, nil
}

// WriteWorkbook builds the workbook and streams it to w. Every failure is
// returned as *eoq.ExportError.
func WriteWorkbook(w io.Writer, table eoq.SummaryTable, curve eoq.CostCurve) error {
	f, err := Build(table, curve)
	if err != nil {
		return &eoq.ExportError{Err: err}
	}
	defer func() {
		_ = f.Close()
	}()

	if err := f.Write(w); err != nil {
		return &eoq.ExportError{Err: err}
	}
	return nil
}

// WriteFile writes the workbook to path, replacing any existing file.
func WriteFile(path string, table eoq.SummaryTable, curve eoq.CostCurve) error {
	file, err := os.Create(path)
	if err != nil {
		return &eoq.ExportError{Err: err}
	}

	if err := WriteWorkbook(file, table, curve); err != nil {
		_ = file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return &eoq.ExportError{Err: err}
	}
	return nil
}

func fillSummarySheet(f *excelize.File, table eoq.SummaryTable, headerStyle int) error {
	sheet := constants.SummarySheetName
	header := summaryHeaders
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write %s header: %w", sheet, err)
	}
	for i, r := range table {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{r.Label, r.Value}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write %s row %d: %w", sheet, i+2, err)
		}
	}

	if err := f.SetRowStyle(sheet, 1, 1, headerStyle); err != nil {
		return fmt.Errorf("failed to style %s header: %w", sheet, err)
	}
	if err := f.SetColWidth(sheet, "A", "A", 28); err != nil {
		return err
	}
	return f.SetColWidth(sheet, "B", "B", 22)
}

func fillCurveSheet(f *excelize.File, curve eoq.CostCurve, headerStyle int) error {
	sheet := constants.CurveSheetName
	header := curveHeaders
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write %s header: %w", sheet, err)
	}
	for i, p := range curve {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{p.Q, p.OrderingCost, p.HoldingCost, p.TotalCost}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write %s row %d: %w", sheet, i+2, err)
		}
	}

	if err := f.SetRowStyle(sheet, 1, 1, headerStyle); err != nil {
		return fmt.Errorf("failed to style %s header: %w", sheet, err)
	}
	if err := f.SetColWidth(sheet, "B", "D", 16); err != nil {
		return err
	}

	if len(curve) == 0 {
		return nil
	}
	return addCurveChart(f, len(curve)+1)
}

func addCurveChart(f *excelize.File, lastRow int) error {
	sheet := constants.CurveSheetName
	ref := func(col string, from, to int) string {
		return fmt.Sprintf("'%s'!$%s$%d:$%s$%d", sheet, col, from, col, to)
	}

	var series []excelize.ChartSeries
	for _, col := range []string{"B", "C", "D"} {
		series = append(series, excelize.ChartSeries{
			Name:       fmt.Sprintf("'%s'!$%s$1", sheet, col),
			Categories: ref("A", 2, lastRow),
			Values:     ref(col, 2, lastRow),
		})
	}

	if err := f.AddChart(sheet, "F2", &excelize.Chart{
		Type:   excelize.Line,
		Series: series,
	}); err != nil {
		return fmt.Errorf("failed to add cost curve chart: %w", err)
	}
	return nil
}
