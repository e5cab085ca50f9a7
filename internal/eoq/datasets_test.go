package eoq

import (
	"math"
	"testing"

	"github.com/iwvelando/eoq-calculator/pkg/constants"
)

func mustCompute(t *testing.T, in InputParameters) Result {
	t.Helper()
	res, err := Compute(in)
	if err != nil {
		t.Fatalf("Compute(%+v) error = %v", in, err)
	}
	return res
}

func TestBuildSummaryTableOrder(t *testing.T) {
	in := InputParameters{AnnualDemand: 1200, OrderCost: 50, HoldingCost: 2, WorkDays: 360}
	res := mustCompute(t, in)

	table := BuildSummaryTable(in, res)

	expected := []struct {
		key   string
		value float64
	}{
		{KeyAnnualDemand, 1200},
		{KeyOrderCost, 50},
		{KeyHoldingCost, 2},
		{KeyWorkDays, 360},
		{KeyEOQ, res.EOQ},
		{KeyOrdersPerYear, res.OrdersPerYear},
		{KeyReorderIntervalDays, res.ReorderIntervalDays},
		{KeyTotalCost, res.TotalCost},
	}

	if len(table) != len(expected) {
		t.Fatalf("expected %d rows, got %d", len(expected), len(table))
	}
	for i, exp := range expected {
		if table[i].Key != exp.key {
			t.Errorf("row %d key = %s, expected %s", i, table[i].Key, exp.key)
		}
		if table[i].Value != exp.value {
			t.Errorf("row %d value = %v, expected %v", i, table[i].Value, exp.value)
		}
		if table[i].Label == "" {
			t.Errorf("row %d has no label", i)
		}
	}

	if v, ok := table.Value(KeyTotalCost); !ok || v != res.TotalCost {
		t.Errorf("Value(%s) = %v, %v", KeyTotalCost, v, ok)
	}
	if _, ok := table.Value("missing"); ok {
		t.Error("expected missing key lookup to fail")
	}
}

func TestBuildCostCurveRange(t *testing.T) {
	tests := []struct {
		name      string
		input     InputParameters
		expectedQ []int
	}{
		{
			name:      "all minimums",
			input:     InputParameters{AnnualDemand: 1, OrderCost: 1, HoldingCost: 1, WorkDays: 1},
			expectedQ: []int{1},
		},
		{
			name:      "eoq exactly two",
			input:     InputParameters{AnnualDemand: 2, OrderCost: 1, HoldingCost: 1, WorkDays: 1},
			expectedQ: []int{1, 2, 3},
		},
		{
			name:      "eoq below one",
			input:     InputParameters{AnnualDemand: 1, OrderCost: 1, HoldingCost: 3, WorkDays: 1},
			expectedQ: []int{},
		},
		{
			name:      "eoq exactly one",
			input:     InputParameters{AnnualDemand: 1, OrderCost: 1, HoldingCost: 2, WorkDays: 1},
			expectedQ: []int{1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			curve := BuildCostCurve(tt.input, mustCompute(t, tt.input))
			if curve == nil {
				t.Fatal("expected non-nil curve")
			}
			if len(curve) != len(tt.expectedQ) {
				t.Fatalf("expected %d points, got %d", len(tt.expectedQ), len(curve))
			}
			for i, q := range tt.expectedQ {
				if curve[i].Q != q {
					t.Errorf("point %d Q = %d, expected %d", i, curve[i].Q, q)
				}
			}
		})
	}
}

func TestBuildCostCurveValues(t *testing.T) {
	in := InputParameters{AnnualDemand: 1200, OrderCost: 50, HoldingCost: 2, WorkDays: 360}
	res := mustCompute(t, in)
	curve := BuildCostCurve(in, res)

	if len(curve) != 488 {
		t.Fatalf("expected 488 points for floor(2*244.95)=489, got %d", len(curve))
	}

	for _, p := range curve {
		q := float64(p.Q)
		ordering := (in.AnnualDemand / q) * in.OrderCost
		holding := (q / 2) * in.HoldingCost
		if p.OrderingCost != ordering || p.HoldingCost != holding || p.TotalCost != ordering+holding {
			t.Fatalf("point Q=%d = %+v, expected ordering=%v holding=%v", p.Q, p, ordering, holding)
		}
	}
}

func TestCostCurveMinimumNearEOQ(t *testing.T) {
	for _, d := range []float64{1, 7, 50, 365, 1200, 9999} {
		for _, s := range []float64{1, 3.5, 50, 240} {
			for _, h := range []float64{1, 2, 7.25, 30} {
				in := InputParameters{AnnualDemand: d, OrderCost: s, HoldingCost: h, WorkDays: 360}
				res := mustCompute(t, in)
				curve := BuildCostCurve(in, res)
				best, ok := curve.Minimum()
				if !ok {
					if res.EOQ >= 1 {
						t.Errorf("expected samples for %+v with EOQ %v", in, res.EOQ)
					}
					continue
				}
				if diff := math.Abs(float64(best.Q) - math.Round(res.EOQ)); diff > 1 {
					t.Errorf("%+v: minimum at Q=%d, EOQ=%v", in, best.Q, res.EOQ)
				}
			}
		}
	}
}

func TestCostCurveConvex(t *testing.T) {
	in := InputParameters{AnnualDemand: 5000, OrderCost: 75, HoldingCost: 3, WorkDays: 360}
	curve := BuildCostCurve(in, mustCompute(t, in))

	for i := 1; i < len(curve)-1; i++ {
		second := curve[i-1].TotalCost - 2*curve[i].TotalCost + curve[i+1].TotalCost
		if second < -1e-9 {
			t.Fatalf("total cost not convex at Q=%d (second difference %v)", curve[i].Q, second)
		}
	}
}

func TestCostCurveMinimumEmpty(t *testing.T) {
	if _, ok := (CostCurve{}).Minimum(); ok {
		t.Error("expected no minimum for empty curve")
	}
}

func TestCurvePoints(t *testing.T) {
	tests := []struct {
		eoq      float64
		expected float64
	}{
		{eoq: 0.5, expected: 0},
		{eoq: 1, expected: 1},
		{eoq: math.Sqrt2, expected: 1},
		{eoq: 2, expected: 3},
		{eoq: 244.94897427831782, expected: 488},
		{eoq: 1.414e20, expected: math.Floor(2*1.414e20) - 1},
		{eoq: math.NaN(), expected: 0},
		{eoq: math.Inf(1), expected: math.Inf(1)},
	}

	for _, tt := range tests {
		if got := CurvePoints(tt.eoq); got != tt.expected {
			t.Errorf("CurvePoints(%v) = %v, expected %v", tt.eoq, got, tt.expected)
		}
	}
}

func TestBuildCostCurveBeyondIntRange(t *testing.T) {
	in := InputParameters{AnnualDemand: 1e40, OrderCost: 1, HoldingCost: 1, WorkDays: 360}

	for _, eoq := range []float64{1.414e20, math.Inf(1)} {
		curve := BuildCostCurve(in, Result{EOQ: eoq})
		if len(curve) != constants.MaxCurvePoints {
			t.Fatalf("eoq %v: expected %d points, got %d", eoq, constants.MaxCurvePoints, len(curve))
		}
		if last := curve[len(curve)-1]; last.Q != constants.MaxCurvePoints {
			t.Errorf("eoq %v: last Q = %d, expected %d", eoq, last.Q, constants.MaxCurvePoints)
		}
	}
}
