// Package portfolio agrupa los saldos conciliados de muchos comprobantes por
// moneda y por condición (pendiente / pagado / vencido) para los tableros de
// cuentas por cobrar y por pagar.
package portfolio

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/alefeas/payto-engine/internal/domain/billing"
	"github.com/alefeas/payto-engine/internal/domain/entity"
)

// Perspective punto de vista de la empresa que consulta.
type Perspective string

const (
	PerspectiveReceivable Perspective = "por_cobrar" // la empresa es emisora
	PerspectivePayable    Perspective = "por_pagar"  // la empresa es receptora
)

// CurrencyBucket acumuladores de una moneda. Los buckets de moneda son sumas
// estrictamente disjuntas: un comprobante nunca aporta a más de una moneda.
type CurrencyBucket struct {
	Pending      decimal.Decimal
	Paid         decimal.Decimal
	Overdue      decimal.Decimal
	PaidCount    int
	OverdueCount int
}

// Summary resumen de cartera por moneda. Siempre contiene las tres monedas
// soportadas, aunque estén en cero.
type Summary map[entity.Currency]*CurrencyBucket

// NewSummary resumen vacío con todas las monedas inicializadas.
func NewSummary() Summary {
	s := make(Summary, len(entity.Currencies))
	for _, c := range entity.Currencies {
		s[c] = &CurrencyBucket{}
	}
	return s
}

// BuildSummary clasifica los comprobantes desde el punto de vista de la
// empresa indicada, usando el estado de pago propio de esa empresa (nunca un
// estado global único).
//
// Reglas:
//   - Notas de crédito/débito y comprobantes anulados quedan fuera.
//   - Un comprobante con estado propio PAGADA no aporta a pendiente.
//   - Vencido: vencimiento anterior a hoy, saldo positivo y estado ≠ PAGADA.
//   - Un comprobante sin moneda reconocible se agrega en la moneda base (ARS)
//     en lugar de descartarse, así los totales nunca quedan incompletos.
func BuildSummary(
	company entity.CompanyID,
	view Perspective,
	invoices []*entity.Invoice,
	paymentsByInvoice map[string][]entity.PaymentRecord,
	today time.Time,
) (Summary, error) {
	summary := NewSummary()
	for _, inv := range invoices {
		if !matchesPerspective(inv, company, view) {
			continue
		}
		if inv.IsNote() || inv.IsCancelled() {
			continue
		}

		currency := inv.Currency
		if !currency.Valid() {
			currency = entity.BaseCurrency
		}
		bucket := summary[currency]

		breakdown, err := billing.ComputeBalance(inv, paymentsByInvoice[inv.ID])
		if err != nil {
			return nil, err
		}

		bucket.Paid = bucket.Paid.Add(breakdown.TotalPaid.Amount)

		status := inv.StatusFor(company)
		if status == entity.PaymentStatusPaid {
			bucket.PaidCount++
			continue
		}

		pending := breakdown.BalancePending
		bucket.Pending = bucket.Pending.Add(pending.Amount)
		if billing.IsOverdue(inv, company, pending, today) {
			bucket.Overdue = bucket.Overdue.Add(pending.Amount)
			bucket.OverdueCount++
		}
	}
	return summary, nil
}

func matchesPerspective(inv *entity.Invoice, company entity.CompanyID, view Perspective) bool {
	switch view {
	case PerspectiveReceivable:
		return inv.IssuerCompanyID == company
	case PerspectivePayable:
		return inv.CounterpartyID == company
	}
	return false
}
