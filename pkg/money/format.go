// Package money renders amounts in a project's currency. Unknown codes fall
// back to a plain "CODE amount" string instead of failing the response.
package money

import (
	"fmt"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.BritishEnglish)

// ValidCode reports whether code is a well-formed ISO 4217 currency.
func ValidCode(code string) bool {
	_, err := currency.ParseISO(code)
	return err == nil
}

// Format renders amount with the currency symbol for code, e.g. "£ 1,500.00".
// Codes the formatter does not recognize render as "CODE 1500.00".
func Format(code string, amount float64) string {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return fmt.Sprintf("%s %.2f", code, amount)
	}
	return printer.Sprint(currency.Symbol(unit.Amount(amount)))
}
