// Package eoq computes the Economic Order Quantity and the datasets derived
// from it. Everything here is a pure function of its input.
package eoq

import (
	"fmt"
	"math"

	"github.com/iwvelando/eoq-calculator/pkg/constants"
	"github.com/iwvelando/eoq-calculator/pkg/mathutil"
)

// InputParameters holds the four user-supplied values of one computation.
type InputParameters struct {
	AnnualDemand float64 `json:"annualDemand" yaml:"annualDemand"`
	OrderCost    float64 `json:"orderCost" yaml:"orderCost"`
	HoldingCost  float64 `json:"holdingCost" yaml:"holdingCost"`
	WorkDays     float64 `json:"workDays" yaml:"workDays"`
}

// Result holds the derived metrics. Values are never rounded.
type Result struct {
	EOQ                 float64 `json:"eoq"`
	OrdersPerYear       float64 `json:"ordersPerYear"`
	TotalCost           float64 `json:"totalCost"`
	ReorderIntervalDays float64 `json:"reorderIntervalDays"`
}

// ValidateInput enforces the minimum-value policy of the input surface. Every
// field must be finite and at least its minimum (1).
func ValidateInput(in InputParameters) error {
	fields := []struct {
		name    string
		value   float64
		minimum float64
	}{
		{KeyAnnualDemand, in.AnnualDemand, constants.MinAnnualDemand},
		{KeyOrderCost, in.OrderCost, constants.MinOrderCost},
		{KeyHoldingCost, in.HoldingCost, constants.MinHoldingCost},
		{KeyWorkDays, in.WorkDays, constants.MinWorkDays},
	}
	for _, f := range fields {
		if !mathutil.IsFinite(f.value) || f.value < f.minimum {
			return &ValidationError{Field: f.name, Value: f.value, Minimum: f.minimum}
		}
	}
	return nil
}

// Compute evaluates EOQ = sqrt(2DS/H) and the metrics derived from it. An EOQ
// whose cost curve would exceed constants.MaxCurvePoints is a DomainError.
func Compute(in InputParameters) (Result, error) {
	if in.HoldingCost <= 0 || math.IsNaN(in.HoldingCost) {
		return Result{}, &DomainError{Reason: "holding cost must be greater than zero"}
	}

	q := math.Sqrt((2 * in.AnnualDemand * in.OrderCost) / in.HoldingCost)
	if !isPositiveFinite(q) {
		return Result{}, &DomainError{Reason: "order quantity is not a positive finite number"}
	}
	if points := CurvePoints(q); points > constants.MaxCurvePoints {
		return Result{}, &DomainError{Reason: fmt.Sprintf(
			"order quantity %.2f needs %.0f cost curve points, more than the %d supported",
			q, points, constants.MaxCurvePoints)}
	}

	ordersPerYear := in.AnnualDemand / q
	res := Result{
		EOQ:                 q,
		OrdersPerYear:       ordersPerYear,
		TotalCost:           ordersPerYear*in.OrderCost + (q/2)*in.HoldingCost,
		ReorderIntervalDays: in.WorkDays / ordersPerYear,
	}

	for _, v := range []float64{res.OrdersPerYear, res.TotalCost, res.ReorderIntervalDays} {
		if !isPositiveFinite(v) {
			return Result{}, &DomainError{Reason: "derived metrics are not positive finite numbers"}
		}
	}

	return res, nil
}

func isPositiveFinite(v float64) bool {
	return v > 0 && mathutil.IsFinite(v)
}
