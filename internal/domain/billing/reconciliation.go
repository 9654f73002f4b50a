package billing

import (
	"fmt"
	"time"

	"github.com/alefeas/payto-engine/internal/domain"
	"github.com/alefeas/payto-engine/internal/domain/entity"
)

// BalanceBreakdown desglose del saldo de un comprobante.
//
//	ajustado = original − Σ notas de crédito + Σ notas de débito
//	pendiente = ajustado − Σ pagos
type BalanceBreakdown struct {
	OriginalAmount   entity.Money
	TotalCreditNotes entity.Money
	TotalDebitNotes  entity.Money
	TotalPaid        entity.Money
	BalancePending   entity.Money
}

// ComputeBalance calcula el saldo pendiente de un comprobante contra sus
// notas vinculadas y los pagos registrados. Toda nota o pago en una moneda
// distinta a la del comprobante es un error (no hay conversión implícita).
//
// Un saldo negativo indica datos viciados (una nota aplicada después de
// calcular un pago, o dos liquidaciones concurrentes): se devuelve el
// desglose con el valor crudo junto con ErrSaldoInconsistente, nunca se
// recorta a cero. El clamping para pantalla es decisión del consumidor.
func ComputeBalance(inv *entity.Invoice, payments []entity.PaymentRecord) (BalanceBreakdown, error) {
	currency := inv.OriginalTotal.Currency

	credits := entity.ZeroMoney(currency)
	for _, note := range inv.CreditNotes {
		sum, err := credits.Add(note.Amount)
		if err != nil {
			return BalanceBreakdown{}, fmt.Errorf("nota de crédito %s: %w", note.NoteID, err)
		}
		credits = sum
	}

	debits := entity.ZeroMoney(currency)
	for _, note := range inv.DebitNotes {
		sum, err := debits.Add(note.Amount)
		if err != nil {
			return BalanceBreakdown{}, fmt.Errorf("nota de débito %s: %w", note.NoteID, err)
		}
		debits = sum
	}

	paid := entity.ZeroMoney(currency)
	for _, p := range payments {
		sum, err := paid.Add(p.Amount)
		if err != nil {
			return BalanceBreakdown{}, fmt.Errorf("pago %s: %w", p.ID, err)
		}
		paid = sum
	}

	adjusted := inv.OriginalTotal.Amount.Sub(credits.Amount).Add(debits.Amount)
	pending := adjusted.Sub(paid.Amount)

	breakdown := BalanceBreakdown{
		OriginalAmount:   inv.OriginalTotal,
		TotalCreditNotes: credits,
		TotalDebitNotes:  debits,
		TotalPaid:        paid,
		BalancePending:   entity.NewMoney(pending, currency),
	}

	if pending.IsNegative() {
		return breakdown, fmt.Errorf("%w: comprobante %s con saldo %s",
			domain.ErrSaldoInconsistente, inv.ID, breakdown.BalancePending.String())
	}
	return breakdown, nil
}

// DeriveStatus estado de pago derivado del desglose: PENDIENTE sin pagos,
// PAGADA con saldo exactamente cero, PAGO_PARCIAL en el medio.
func DeriveStatus(b BalanceBreakdown) entity.PaymentStatus {
	switch {
	case b.BalancePending.IsZero():
		return entity.PaymentStatusPaid
	case b.TotalPaid.IsZero():
		return entity.PaymentStatusPending
	default:
		return entity.PaymentStatusPartial
	}
}

// IsOverdue indica si el comprobante está vencido para la empresa que
// consulta. VENCIDA es una etiqueta derivada, no un estado almacenado: se
// recalcula en cada corrida a partir del vencimiento, el saldo y el estado
// propio de la empresa, así nunca queda desincronizada de la fecha actual.
func IsOverdue(inv *entity.Invoice, company entity.CompanyID, pending entity.Money, today time.Time) bool {
	if inv.StatusFor(company) == entity.PaymentStatusPaid {
		return false
	}
	if !pending.Amount.IsPositive() {
		return false
	}
	return inv.DueDate.Before(today)
}
