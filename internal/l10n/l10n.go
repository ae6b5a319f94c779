// Package l10n formats values for Pulso's fixed pt-BR locale.
package l10n

import (
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.BrazilianPortuguese)

// Currency formats an amount as Brazilian Real, e.g. "R$ 1.234,56".
func Currency(v decimal.Decimal) string {
	f, _ := v.Float64()
	return printer.Sprintf("%v", currency.Symbol(currency.BRL.Amount(f)))
}

// Date formats a date in the Brazilian day-first convention.
func Date(t time.Time) string {
	return t.Format("02/01/2006")
}
