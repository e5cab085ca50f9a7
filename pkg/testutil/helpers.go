// Package testutil provides common utility functions for testing.
package testutil

import (
	"github.com/iwvelando/eoq-calculator/internal/eoq"
)

// TextbookInput returns the worked example used across the test suites:
// D=1200, S=50, H=2 over 360 work days, giving an EOQ of about 244.95.
func TextbookInput() eoq.InputParameters {
	return eoq.InputParameters{AnnualDemand: 1200, OrderCost: 50, HoldingCost: 2, WorkDays: 360}
}

// FindCurvePoint finds the point sampled at order quantity q.
// Returns a pointer to the point if found, nil otherwise.
func FindCurvePoint(curve eoq.CostCurve, q int) *eoq.CurvePoint {
	for i := range curve {
		if curve[i].Q == q {
			return &curve[i]
		}
	}
	return nil
}
