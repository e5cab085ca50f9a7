// Package format renders numbers the way they are shown to users: two
// decimals, with English digit grouping where amounts are displayed.
package format

import (
	"fmt"
	"math"
	"strings"

	"github.com/iwvelando/eoq-calculator/pkg/constants"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Decimal returns the value with two decimals and no grouping (e.g., "1234.57").
func Decimal(value float64) string {
	return fmt.Sprintf("%.*f", constants.DisplayDecimals, value)
}

// Whole returns the value rounded to an integer (e.g., "245").
func Whole(value float64) string {
	return fmt.Sprintf("%.0f", value)
}

// Grouped returns the value with two decimals and thousands separators (e.g., "-1,234.57").
func Grouped(value float64) string {
	return printer.Sprintf("%.*f", constants.DisplayDecimals, value)
}

// Currency returns a grouped amount prefixed by symbol (e.g., "Rp 1,234.57").
// An empty symbol falls back to the default.
func Currency(symbol string, amount float64) string {
	symbol = strings.TrimSpace(symbol)
	if symbol == "" {
		symbol = constants.DefaultCurrencySymbol
	}
	formatted := symbol + " " + Grouped(math.Abs(amount))
	if amount < 0 {
		return "-" + formatted
	}
	return formatted
}
