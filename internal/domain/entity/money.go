package entity

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/alefeas/payto-engine/internal/domain"
)

// Currency moneda soportada por el motor (ISO 4217).
type Currency string

const (
	CurrencyARS Currency = "ARS"
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
)

// BaseCurrency moneda base del sistema. Los comprobantes sin moneda
// reconocible se agregan en esta moneda para que los totales de cartera
// nunca queden incompletos.
const BaseCurrency = CurrencyARS

// Currencies todas las monedas soportadas, en orden estable.
var Currencies = []Currency{CurrencyARS, CurrencyUSD, CurrencyEUR}

// Valid indica si la moneda pertenece al catálogo soportado.
func (c Currency) Valid() bool {
	switch c {
	case CurrencyARS, CurrencyUSD, CurrencyEUR:
		return true
	}
	return false
}

// ParseCurrency normaliza un código de moneda. Un código desconocido o vacío
// resuelve a la moneda base (ARS).
func ParseCurrency(code string) Currency {
	switch Currency(code) {
	case CurrencyARS:
		return CurrencyARS
	case CurrencyUSD:
		return CurrencyUSD
	case CurrencyEUR:
		return CurrencyEUR
	}
	return BaseCurrency
}

// Money monto decimal etiquetado con su moneda. Los montos nunca se mezclan
// entre monedas de forma implícita: Add/Sub fallan si las monedas difieren.
type Money struct {
	Amount   decimal.Decimal
	Currency Currency
}

// NewMoney construye un Money.
func NewMoney(amount decimal.Decimal, currency Currency) Money {
	return Money{Amount: amount, Currency: currency}
}

// ZeroMoney monto cero en la moneda indicada.
func ZeroMoney(currency Currency) Money {
	return Money{Amount: decimal.Zero, Currency: currency}
}

// Add suma otro monto de la misma moneda.
func (m Money) Add(other Money) (Money, error) {
	if m.Currency != other.Currency {
		return Money{}, fmt.Errorf("%w: %s vs %s", domain.ErrMonedaDistinta, m.Currency, other.Currency)
	}
	return Money{Amount: m.Amount.Add(other.Amount), Currency: m.Currency}, nil
}

// Sub resta otro monto de la misma moneda.
func (m Money) Sub(other Money) (Money, error) {
	if m.Currency != other.Currency {
		return Money{}, fmt.Errorf("%w: %s vs %s", domain.ErrMonedaDistinta, m.Currency, other.Currency)
	}
	return Money{Amount: m.Amount.Sub(other.Amount), Currency: m.Currency}, nil
}

// IsZero indica monto exactamente cero.
func (m Money) IsZero() bool { return m.Amount.IsZero() }

// IsNegative indica monto menor que cero.
func (m Money) IsNegative() bool { return m.Amount.IsNegative() }

// String representación con dos decimales, ej: "ARS 1234.50".
func (m Money) String() string {
	return fmt.Sprintf("%s %s", m.Currency, m.Amount.StringFixed(2))
}
