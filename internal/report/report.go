// Package report projects one EOQ computation into what users are shown: the
// headline messages, a formatted summary table and a chart description.
package report

import (
	"github.com/iwvelando/eoq-calculator/internal/eoq"
	"github.com/iwvelando/eoq-calculator/pkg/format"
)

// Series names, shared with the cost curve sheet headers.
const (
	SeriesOrderingCost = "Ordering Cost"
	SeriesHoldingCost  = "Holding Cost"
	SeriesTotalCost    = "Total Cost"
)

// Options tune the presentation only.
type Options struct {
	CurrencySymbol string
}

// Report is the full output of a single computation.
type Report struct {
	Input   eoq.InputParameters `json:"input"`
	Result  eoq.Result          `json:"result"`
	Success string              `json:"success"`
	Info    []string            `json:"info"`
	Summary []Row               `json:"summary"`
	Curve   eoq.CostCurve       `json:"curve"`
	Chart   Chart               `json:"chart"`

	table eoq.SummaryTable
}

// Row is a summary row with its display string.
type Row struct {
	eoq.SummaryRow
	Display string `json:"display"`
}

// Chart describes the cost-curve line chart.
type Chart struct {
	Title  string   `json:"title"`
	XLabel string   `json:"xLabel"`
	YLabel string   `json:"yLabel"`
	Series []Series `json:"series"`
	Marker Marker   `json:"marker"`
}

// Series is one line of the chart.
type Series struct {
	Name   string  `json:"name"`
	Points []Point `json:"points"`
}

// Point is an (x, y) pair.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Marker is the vertical line drawn at the EOQ.
type Marker struct {
	X     float64 `json:"x"`
	Label string  `json:"label"`
}

// Build assembles the report for an already computed result.
func Build(in eoq.InputParameters, res eoq.Result, opts Options) *Report {
	table := eoq.BuildSummaryTable(in, res)
	curve := eoq.BuildCostCurve(in, res)

	rows := make([]Row, 0, len(table))
	for _, r := range table {
		rows = append(rows, Row{SummaryRow: r, Display: format.Decimal(r.Value)})
	}

	return &Report{
		Input:   in,
		Result:  res,
		Success: "EOQ: " + format.Decimal(res.EOQ) + " units",
		Info: []string{
			"Orders per Year: " + format.Decimal(res.OrdersPerYear) + " times",
			"Total Inventory Cost: " + format.Currency(opts.CurrencySymbol, res.TotalCost),
			"Reorder Every: " + format.Decimal(res.ReorderIntervalDays) + " days",
		},
		Summary: rows,
		Curve:   curve,
		Chart:   buildChart(res, curve),
		table:   table,
	}
}

// Compute validates the input, runs the calculator and builds the report. It
// returns *eoq.ValidationError or *eoq.DomainError unchanged.
func Compute(in eoq.InputParameters, opts Options) (*Report, error) {
	if err := eoq.ValidateInput(in); err != nil {
		return nil, err
	}
	res, err := eoq.Compute(in)
	if err != nil {
		return nil, err
	}
	return Build(in, res, opts), nil
}

// Table returns the raw summary table behind the report.
func (r *Report) Table() eoq.SummaryTable {
	if r.table == nil {
		r.table = eoq.BuildSummaryTable(r.Input, r.Result)
	}
	return r.table
}

func buildChart(res eoq.Result, curve eoq.CostCurve) Chart {
	chart := Chart{
		Title:  "EOQ Cost Analysis",
		XLabel: "Order Quantity (Q)",
		YLabel: "Cost",
		Series: []Series{},
		Marker: Marker{X: res.EOQ, Label: "EOQ: " + format.Whole(res.EOQ)},
	}
	if len(curve) == 0 {
		return chart
	}

	ordering := make([]Point, 0, len(curve))
	holding := make([]Point, 0, len(curve))
	total := make([]Point, 0, len(curve))
	for _, p := range curve {
		x := float64(p.Q)
		ordering = append(ordering, Point{X: x, Y: p.OrderingCost})
		holding = append(holding, Point{X: x, Y: p.HoldingCost})
		total = append(total, Point{X: x, Y: p.TotalCost})
	}

	chart.Series = []Series{
		{Name: SeriesOrderingCost, Points: ordering},
		{Name: SeriesHoldingCost, Points: holding},
		{Name: SeriesTotalCost, Points: total},
	}
	return chart
}
