package eoq

import "fmt"

// ValidationError reports an input field below its minimum value. It is raised
// at the input-collection boundary, before Compute is invoked.
type ValidationError struct {
	Field   string
	Value   float64
	Minimum float64
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s must be at least %g, got %g", e.Field, e.Minimum, e.Value)
}

// DomainError reports inputs for which no finite EOQ exists, or whose EOQ lies
// beyond the supported range.
type DomainError struct {
	Reason string
}

func (e *DomainError) Error() string {
	return "eoq undefined: " + e.Reason
}

// ExportError wraps a failure of the spreadsheet writer.
type ExportError struct {
	Err error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("failed to export workbook: %v", e.Err)
}

func (e *ExportError) Unwrap() error {
	return e.Err
}
