package billing

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/alefeas/payto-engine/internal/domain"
	"github.com/alefeas/payto-engine/internal/domain/entity"
)

// SettlementForm formulario único de liquidación: fecha, medio de pago y
// lista de recargos a evaluar por comprobante.
type SettlementForm struct {
	CompanyID  entity.CompanyID // empresa que paga/cobra
	Date       time.Time
	Method     string
	Reference  string
	Notes      string
	Surcharges []entity.SurchargeEntry
}

// SettledInvoice resultado de la liquidación de un comprobante: el registro
// de pago generado y el snapshot del comprobante con el estado actualizado.
type SettledInvoice struct {
	Payment entity.PaymentRecord
	Invoice *entity.Invoice
}

// SettlementResult resultado completo de una liquidación multi-comprobante.
// TotalByCurrency suma los pagos por moneda: coincide con lo que el usuario
// vio en pantalla porque cada pago es exactamente el saldo pendiente de su
// comprobante al momento del envío.
type SettlementResult struct {
	Settled         []SettledInvoice
	TotalByCurrency map[entity.Currency]decimal.Decimal
}

// SettleAll liquida un conjunto de comprobantes con un único formulario.
//
// Por cada comprobante genera un PaymentRecord con monto igual al saldo
// pendiente vigente y sus propios recargos evaluados contra sus propios
// totales, nunca sobre un total combinado. Todo el lote se calcula antes de que el llamador
// dispare cualquier llamada externa, de modo que la finalización concurrente
// de una llamada no pueda alterar el monto calculado de otra. Una falla de
// validación en cualquier punto aborta el lote completo sin efectos.
//
// No se admiten montos parciales: cada comprobante se paga por el total de su
// saldo vigente, con lo cual el replay idéntico es imposible (el saldo
// decrece estrictamente).
func SettleAll(
	invoices []*entity.Invoice,
	paymentsByInvoice map[string][]entity.PaymentRecord,
	form SettlementForm,
) (*SettlementResult, error) {
	if len(invoices) == 0 {
		return nil, fmt.Errorf("%w: la liquidación no incluye comprobantes", domain.ErrEntradaInvalida)
	}
	// Validación atómica del lote de recargos, antes de tocar cualquier comprobante.
	if err := ValidateSurcharges(form.Surcharges); err != nil {
		return nil, err
	}

	result := &SettlementResult{
		Settled:         make([]SettledInvoice, 0, len(invoices)),
		TotalByCurrency: make(map[entity.Currency]decimal.Decimal),
	}
	for _, inv := range invoices {
		breakdown, err := ComputeBalance(inv, paymentsByInvoice[inv.ID])
		if err != nil {
			return nil, err
		}
		pending := breakdown.BalancePending
		if !pending.Amount.IsPositive() {
			return nil, fmt.Errorf("%w: comprobante %s", domain.ErrSinSaldoPendiente, inv.ID)
		}

		surcharges, err := ApplySurcharges(TotalsFromInvoice(inv), form.Surcharges)
		if err != nil {
			return nil, err
		}

		payment := entity.PaymentRecord{
			ID:                uuid.New().String(),
			InvoiceID:         inv.ID,
			CompanyID:         form.CompanyID,
			Amount:            pending,
			Date:              form.Date,
			Method:            form.Method,
			Reference:         form.Reference,
			Notes:             form.Notes,
			AppliedSurcharges: surcharges.Applied,
		}
		result.Settled = append(result.Settled, SettledInvoice{
			Payment: payment,
			Invoice: inv.WithStatus(form.CompanyID, entity.PaymentStatusPaid),
		})
		result.TotalByCurrency[pending.Currency] = result.TotalByCurrency[pending.Currency].Add(pending.Amount)
	}
	return result, nil
}
