// Package money formatea montos para mensajes y resúmenes de bitácora.
package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Format devuelve el monto con símbolo, separador de miles y dos decimales,
// ej. "₱1,234.50".
func Format(symbol string, amount decimal.Decimal) string {
	return symbol + printer.Sprintf("%.2f", amount.InexactFloat64())
}
