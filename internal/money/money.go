// Package money renders decimal amounts as statement currency strings.
package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Format renders the absolute value of amount as dollars with thousands
// separators and two decimals, e.g. $1,234.56. Statements show magnitudes;
// direction comes from the line's category.
func Format(amount decimal.Decimal) string {
	f, _ := amount.Abs().Round(2).Float64()
	return printer.Sprintf("$%.2f", f)
}
