// Package moneyfmt renderiza montos con el formato es-AR para las capas de
// presentación: punto como separador de miles y coma decimal ("1.234,56").
// Solo formateo; la aritmética monetaria vive en el dominio con decimales.
package moneyfmt

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.MustParse("es-AR"))

// Format devuelve el monto redondeado a dos decimales en formato es-AR.
func Format(d decimal.Decimal) string {
	f, _ := d.Round(2).Float64()
	return printer.Sprint(number.Decimal(f,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
}

// FormatWithCurrency antepone el código de moneda, ej: "ARS 1.234,56".
func FormatWithCurrency(d decimal.Decimal, currency string) string {
	return currency + " " + Format(d)
}
