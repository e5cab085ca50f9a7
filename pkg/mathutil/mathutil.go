// Package mathutil provides common mathematical utility functions.
package mathutil

import (
	"math"

	"github.com/iwvelando/eoq-calculator/pkg/constants"
)

// Round rounds a value to two decimals, i.e. the precision values are shown with.
// Used only for presentation and comparisons, never stored back into results.
func Round(val float64) float64 {
	return math.Round(val*constants.DecimalPrecision) / constants.DecimalPrecision
}

// WithinTolerance checks if two values are within a specified tolerance
func WithinTolerance(val1, val2, tolerance float64) bool {
	return math.Abs(val1-val2) <= tolerance
}

// SameDisplay reports whether two values render identically at display precision.
func SameDisplay(val1, val2 float64) bool {
	return Round(val1) == Round(val2)
}

// IsFinite reports whether val is neither NaN nor infinite.
func IsFinite(val float64) bool {
	return !math.IsNaN(val) && !math.IsInf(val, 0)
}
