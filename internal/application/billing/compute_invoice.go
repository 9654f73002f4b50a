package billing

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/alefeas/payto-engine/internal/application/dto"
	"github.com/alefeas/payto-engine/internal/domain"
	dombilling "github.com/alefeas/payto-engine/internal/domain/billing"
	"github.com/alefeas/payto-engine/internal/domain/entity"
	"github.com/alefeas/payto-engine/pkg/moneyfmt"
)

// ComputeInvoiceUseCase calcula los totales de un formulario de comprobante:
// líneas → subtotal/IVA, y encima percepciones con base seleccionable.
// Se invoca ante cada cambio de entrada; no guarda estado entre llamadas.
type ComputeInvoiceUseCase struct {
	validate *validator.Validate
}

// NewComputeInvoiceUseCase construye el caso de uso.
func NewComputeInvoiceUseCase() *ComputeInvoiceUseCase {
	return &ComputeInvoiceUseCase{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Execute valida el formulario y devuelve los totales listos para render.
// Cualquier entrada inválida (línea o recargo) aborta el cálculo completo.
func (uc *ComputeInvoiceUseCase) Execute(req dto.ComputeTotalsRequest) (*dto.InvoiceTotalsResponse, error) {
	if err := uc.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidacion, err)
	}

	items := make([]entity.LineItem, 0, len(req.Items))
	for i, itemReq := range req.Items {
		item, err := itemReq.ToEntity()
		if err != nil {
			return nil, fmt.Errorf("línea #%d: %w", i+1, err)
		}
		items = append(items, item)
	}

	totals := dombilling.ComputeTotals(items)
	surcharges, err := dombilling.ApplySurcharges(totals, dto.SurchargeEntries(req.Surcharges))
	if err != nil {
		return nil, err
	}

	currency := string(entity.ParseCurrency(req.Currency))
	grandTotal := totals.Total.Add(surcharges.Total)

	resp := &dto.InvoiceTotalsResponse{
		Currency:        currency,
		Subtotal:        totals.Subtotal.Round(2),
		TotalTaxes:      totals.TotalTaxes.Round(2),
		Total:           totals.Total.Round(2),
		Surcharges:      make([]dto.AppliedSurchargeDTO, 0, len(surcharges.Applied)),
		TotalSurcharges: surcharges.Total.Round(2),
		GrandTotal:      grandTotal.Round(2),
		DisplayTotal:    moneyfmt.FormatWithCurrency(grandTotal, currency),
	}
	for _, s := range surcharges.Applied {
		resp.Surcharges = append(resp.Surcharges, dto.AppliedSurchargeDTO{
			Type:       s.Entry.Type,
			Name:       s.Entry.Label,
			Rate:       s.Entry.RatePercent,
			BaseAmount: s.Base.Round(2),
			Amount:     s.Amount.Round(2),
		})
	}
	return resp, nil
}
