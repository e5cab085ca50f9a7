package eoq

import (
	"math"

	"github.com/iwvelando/eoq-calculator/pkg/constants"
)

// Summary row keys, in display order.
const (
	KeyAnnualDemand        = "annualDemand"
	KeyOrderCost           = "orderCost"
	KeyHoldingCost         = "holdingCost"
	KeyWorkDays            = "workDays"
	KeyEOQ                 = "eoq"
	KeyOrdersPerYear       = "ordersPerYear"
	KeyReorderIntervalDays = "reorderIntervalDays"
	KeyTotalCost           = "totalCost"
)

// SummaryRow pairs one input or derived metric with its label.
type SummaryRow struct {
	Key   string  `json:"key"`
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// SummaryTable is the fixed eight-row result table.
type SummaryTable []SummaryRow

// CurvePoint is one sample of the cost curve at an integer order quantity.
type CurvePoint struct {
	Q            int     `json:"q"`
	OrderingCost float64 `json:"orderingCost"`
	HoldingCost  float64 `json:"holdingCost"`
	TotalCost    float64 `json:"totalCost"`
}

// CostCurve samples ordering, holding and total cost over Q.
type CostCurve []CurvePoint

// BuildSummaryTable lays out the inputs followed by the derived metrics.
func BuildSummaryTable(in InputParameters, res Result) SummaryTable {
	return SummaryTable{
		{Key: KeyAnnualDemand, Label: "Annual Demand (D)", Value: in.AnnualDemand},
		{Key: KeyOrderCost, Label: "Order Cost (S)", Value: in.OrderCost},
		{Key: KeyHoldingCost, Label: "Holding Cost (H)", Value: in.HoldingCost},
		{Key: KeyWorkDays, Label: "Work Days per Year", Value: in.WorkDays},
		{Key: KeyEOQ, Label: "EOQ", Value: res.EOQ},
		{Key: KeyOrdersPerYear, Label: "Orders per Year", Value: res.OrdersPerYear},
		{Key: KeyReorderIntervalDays, Label: "Reorder Interval (days)", Value: res.ReorderIntervalDays},
		{Key: KeyTotalCost, Label: "Total Cost", Value: res.TotalCost},
	}
}

// Value returns the value stored under key.
func (t SummaryTable) Value(key string) (float64, bool) {
	for _, row := range t {
		if row.Key == key {
			return row.Value, true
		}
	}
	return 0, false
}

// CurvePoints returns how many samples the cost curve of eoq holds,
// floor(2*eoq)-1, as a float so that huge values do not overflow.
func CurvePoints(eoq float64) float64 {
	n := math.Floor(2*eoq) - 1
	if !(n > 0) {
		return 0
	}
	return n
}

// BuildCostCurve samples Q over the half-open range [1, floor(2*EOQ)). The
// result is empty, never nil, when that range holds no integers. Compute
// rejects results whose range exceeds constants.MaxCurvePoints; for a Result
// built by hand the curve stops after that many samples.
func BuildCostCurve(in InputParameters, res Result) CostCurve {
	points := CurvePoints(res.EOQ)
	if points > constants.MaxCurvePoints {
		points = constants.MaxCurvePoints
	}
	n := int(points)
	if n == 0 {
		return CostCurve{}
	}

	curve := make(CostCurve, 0, n)
	for q := 1; q <= n; q++ {
		fq := float64(q)
		ordering := (in.AnnualDemand / fq) * in.OrderCost
		holding := (fq / 2) * in.HoldingCost
		curve = append(curve, CurvePoint{
			Q:            q,
			OrderingCost: ordering,
			HoldingCost:  holding,
			TotalCost:    ordering + holding,
		})
	}
	return curve
}

// Minimum returns the sample with the lowest total cost.
func (c CostCurve) Minimum() (CurvePoint, bool) {
	if len(c) == 0 {
		return CurvePoint{}, false
	}
	best := c[0]
	for _, p := range c[1:] {
		if p.TotalCost < best.TotalCost {
			best = p
		}
	}
	return best, true
}
