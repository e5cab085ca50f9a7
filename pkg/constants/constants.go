// Package constants provides shared constants for the eoq-calculator application.
package constants

// Input surface minimums and defaults
const (
	// MinAnnualDemand is the smallest accepted annual demand
	MinAnnualDemand = 1.0

	// MinOrderCost is the smallest accepted cost per order
	MinOrderCost = 1.0

	// MinHoldingCost is the smallest accepted holding cost per unit
	MinHoldingCost = 1.0

	// MinWorkDays is the smallest accepted number of working days per year
	MinWorkDays = 1.0

	// DefaultWorkDays is used when no work-day count is supplied
	DefaultWorkDays = 360.0

	// MaxCurvePoints bounds the sampled cost curve, and with it the largest
	// supported EOQ (just under 50001 units). It stays well below the
	// 1,048,575 data rows an xlsx sheet can hold.
	MaxCurvePoints = 100000
)

// Display constants
const (
	// DecimalPrecision is the precision for display rounding (2 decimal places)
	DecimalPrecision = 100

	// DisplayDecimals is the number of decimals shown for every metric
	DisplayDecimals = 2

	// DefaultCurrencySymbol prefixes the total cost line
	DefaultCurrencySymbol = "Rp"

	// DisplayTolerance is the tolerance for comparing displayed values
	DisplayTolerance = 0.005
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"

	// OutputFormatJSON is the JSON output format
	OutputFormatJSON = "json"
)

// Export constants
const (
	// ExportFileName is the name offered for the downloaded workbook
	ExportFileName = "eoq_calculation_results.xlsx"

	// ExportContentType is the MIME type of the workbook
	ExportContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	// SummarySheetName holds the summary table
	SummarySheetName = "Computation Results"

	// CurveSheetName holds the cost curve dataset
	CurveSheetName = "Cost Curve"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "eoq-config.yaml"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"

	// EnvPrefix prefixes environment overrides of the configuration
	EnvPrefix = "EOQ"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the web UI
	DefaultServerAddress = ":8080"

	// DefaultMaxRequestSizeBytes is the default maximum request body size (64 KB)
	DefaultMaxRequestSizeBytes int64 = 64 * 1024

	// MinMaxRequestSizeBytes is the smallest configurable body limit; it fits
	// a compute request with all four fields written out in full precision.
	MinMaxRequestSizeBytes int64 = 256
)
