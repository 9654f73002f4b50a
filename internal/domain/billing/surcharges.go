package billing

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/alefeas/payto-engine/internal/domain/entity"
)

// SurchargeResult recargos evaluados contra los totales de un comprobante.
type SurchargeResult struct {
	Applied []entity.AppliedSurcharge
	Total   decimal.Decimal
}

// ValidateSurcharges valida la lista completa de recargos. La aplicación es
// todo-o-nada: si alguna entrada es inválida se rechaza el lote entero y el
// llamador recibe cada falla con su índice, nunca se aplica una lista parcial.
func ValidateSurcharges(entries []entity.SurchargeEntry) error {
	var errs []error
	for i, e := range entries {
		if err := e.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("recargo #%d: %w", i+1, err))
		}
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// ApplySurcharges evalúa cada recargo contra los totales del comprobante:
//
//	base  = NETO → subtotal | TOTAL → subtotal+IVA | SOLO_IVA → IVA
//	monto = base * tasa / 100
//
// Valida el lote completo antes de calcular. Cuando se liquidan varios
// comprobantes en una acción, la misma lista se evalúa una vez por
// comprobante con sus propios totales; los recargos nunca se calculan sobre
// un total combinado, así cada pago queda auditable por separado.
func ApplySurcharges(totals InvoiceTotals, entries []entity.SurchargeEntry) (SurchargeResult, error) {
	if err := ValidateSurcharges(entries); err != nil {
		return SurchargeResult{}, err
	}
	result := SurchargeResult{Applied: make([]entity.AppliedSurcharge, 0, len(entries))}
	for _, e := range entries {
		base := surchargeBase(totals, e.Base)
		amount := base.Mul(e.RatePercent).Div(oneHundred)
		result.Applied = append(result.Applied, entity.AppliedSurcharge{
			Entry:  e,
			Base:   base,
			Amount: amount,
		})
		result.Total = result.Total.Add(amount)
	}
	return result, nil
}

func surchargeBase(totals InvoiceTotals, selector entity.SurchargeBase) decimal.Decimal {
	switch selector {
	case entity.BaseNet:
		return totals.Subtotal
	case entity.BaseTotal:
		return totals.Subtotal.Add(totals.TotalTaxes)
	case entity.BaseVATOnly:
		return totals.TotalTaxes
	}
	// Inalcanzable tras ValidateSurcharges; el selector ya fue validado.
	panic(fmt.Sprintf("billing: selector de base no validado: %q", selector))
}
