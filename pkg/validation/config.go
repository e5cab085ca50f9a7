// Package validation provides configuration validation utilities.
package validation

import (
	"fmt"
	"strings"

	"github.com/iwvelando/eoq-calculator/pkg/constants"
	"github.com/iwvelando/eoq-calculator/pkg/mathutil"
)

// ValidateLogLevel checks if level is empty or one of the recognised levels.
func ValidateLogLevel(level string) error {
	switch level {
	case "", "debug", "info", "warn", "warning", "error":
		return nil
	}
	return fmt.Errorf("invalid log level: %s", level)
}

// ValidateLogFormat checks if format is empty, json or console.
func ValidateLogFormat(format string) error {
	switch format {
	case "", "json", "console":
		return nil
	}
	return fmt.Errorf("invalid log format: %s", format)
}

// ValidateDefaultWorkDays returns a warning when the configured default would
// be rejected by the input surface or is unusually large.
func ValidateDefaultWorkDays(workDays float64) string {
	if workDays == 0 {
		return ""
	}
	if !mathutil.IsFinite(workDays) || workDays < constants.MinWorkDays {
		return fmt.Sprintf("Default work days %g is below the minimum of %g - %g will be used instead",
			workDays, constants.MinWorkDays, constants.DefaultWorkDays)
	}
	if workDays > 366 {
		return fmt.Sprintf("Default work days %g exceeds the number of days in a year", workDays)
	}
	return ""
}

// ConfigValidator collects the settings that can be checked without running
// a computation.
type ConfigValidator struct {
	LogLevel        string
	LogFormat       string
	OutputFormat    string
	DefaultWorkDays float64
	CurrencySymbol  string
}

// ValidateAll validates the entire configuration and returns warnings
func (cv *ConfigValidator) ValidateAll() []string {
	var warnings []string

	if err := ValidateLogLevel(cv.LogLevel); err != nil {
		warnings = append(warnings, err.Error()+" - info will be used")
	}
	if err := ValidateLogFormat(cv.LogFormat); err != nil {
		warnings = append(warnings, err.Error()+" - json will be used")
	}
	if cv.OutputFormat != "" {
		if err := ValidateOutputFormat(cv.OutputFormat); err != nil {
			warnings = append(warnings, err.Error())
		}
	}
	if warning := ValidateDefaultWorkDays(cv.DefaultWorkDays); warning != "" {
		warnings = append(warnings, warning)
	}
	if len(strings.TrimSpace(cv.CurrencySymbol)) > 8 {
		warnings = append(warnings, fmt.Sprintf("Currency symbol %q is longer than 8 characters", cv.CurrencySymbol))
	}

	return warnings
}
