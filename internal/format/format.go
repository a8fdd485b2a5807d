// Package format renders amounts and dates for user-facing strings,
// following the Brazilian Portuguese conventions of the original app.
package format

import (
	"github.com/debtflow-control/backend/internal/types"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.BrazilianPortuguese)

// Currency formats a monetary amount as Brazilian Real, e.g.
// "R$ 1.234,56".
func Currency(value decimal.Decimal) string {
	f, _ := value.Float64()

	return printer.Sprintf("R$ %v", number.Decimal(f,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
}

// Date formats a calendar day in the dd/mm/yyyy convention, e.g.
// "15/01/2024". The zero value renders as "-".
func Date(day types.Day) string {
	if day.IsZero() {
		return "-"
	}

	return day.Time().Format("02/01/2006")
}
