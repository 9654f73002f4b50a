package dto

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/alefeas/payto-engine/internal/domain"
	"github.com/alefeas/payto-engine/internal/domain/entity"
)

// Códigos de alícuota aceptados en formularios además del porcentaje numérico.
const (
	TaxCodeExempt   = "EXENTO"
	TaxCodeNotTaxed = "NO_GRAVADO"
)

// LineItemRequest línea de comprobante tal como llega del formulario.
// TaxRateCode acepta un porcentaje ("21", "10.5"), los códigos EXENTO /
// NO_GRAVADO, o los centinelas numéricos legados -1 / -2.
type LineItemRequest struct {
	Description     string          `json:"description" validate:"required"`
	Quantity        decimal.Decimal `json:"quantity"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	DiscountPercent decimal.Decimal `json:"discount_percentage"`
	TaxRateCode     string          `json:"tax_rate_code" validate:"required"`
}

// ToEntity convierte la línea a la entidad de dominio, validando entrada.
func (r LineItemRequest) ToEntity() (entity.LineItem, error) {
	rate, err := parseTaxRateCode(r.TaxRateCode)
	if err != nil {
		return entity.LineItem{}, err
	}
	item := entity.LineItem{
		Description:     r.Description,
		Quantity:        r.Quantity,
		UnitPrice:       r.UnitPrice,
		DiscountPercent: r.DiscountPercent,
		TaxRate:         rate,
	}
	if err := item.Validate(); err != nil {
		return entity.LineItem{}, err
	}
	return item, nil
}

func parseTaxRateCode(code string) (entity.TaxRate, error) {
	switch strings.ToUpper(strings.TrimSpace(code)) {
	case TaxCodeExempt:
		return entity.TaxRateExempt(), nil
	case TaxCodeNotTaxed:
		return entity.TaxRateNotTaxed(), nil
	}
	d, err := decimal.NewFromString(code)
	if err != nil {
		return entity.TaxRate{}, fmt.Errorf("%w: alícuota %q no reconocida", domain.ErrEntradaInvalida, code)
	}
	return entity.TaxRateFromLegacyCode(d)
}

// SurchargeRequest percepción o retención del formulario.
type SurchargeRequest struct {
	Kind string          `json:"kind" validate:"required,oneof=percepcion retencion"`
	Type string          `json:"type" validate:"required"`
	Name string          `json:"name"`
	Rate decimal.Decimal `json:"rate"`
	Base string          `json:"base" validate:"required,oneof=NETO TOTAL SOLO_IVA"`
}

// ToEntity convierte el recargo a la entidad de dominio. La validación de
// tasa/etiqueta la hace el motor de forma atómica sobre el lote completo.
func (r SurchargeRequest) ToEntity() entity.SurchargeEntry {
	return entity.SurchargeEntry{
		Kind:        entity.SurchargeKind(r.Kind),
		Type:        r.Type,
		Label:       r.Name,
		RatePercent: r.Rate,
		Base:        entity.SurchargeBase(r.Base),
	}
}

// SurchargeEntries convierte un lote de recargos.
func SurchargeEntries(reqs []SurchargeRequest) []entity.SurchargeEntry {
	entries := make([]entity.SurchargeEntry, 0, len(reqs))
	for _, r := range reqs {
		entries = append(entries, r.ToEntity())
	}
	return entries
}

// ComputeTotalsRequest formulario de totales: se recalcula ante cada cambio
// de entrada en lugar de mutar acumuladores.
type ComputeTotalsRequest struct {
	Currency   string             `json:"currency"`
	Items      []LineItemRequest  `json:"items" validate:"required,min=1,dive"`
	Surcharges []SurchargeRequest `json:"surcharges" validate:"dive"`
}

// AppliedSurchargeDTO recargo evaluado, con el shape que espera la API
// remota de pagos en `retentions`.
type AppliedSurchargeDTO struct {
	Type       string          `json:"type"`
	Name       string          `json:"name"`
	Rate       decimal.Decimal `json:"rate"`
	BaseAmount decimal.Decimal `json:"base_amount"`
	Amount     decimal.Decimal `json:"amount"`
}

// InvoiceTotalsResponse totales calculados para render del formulario.
// Los montos van redondeados a dos decimales; Display* en formato es-AR.
type InvoiceTotalsResponse struct {
	Currency        string                `json:"currency"`
	Subtotal        decimal.Decimal       `json:"subtotal"`
	TotalTaxes      decimal.Decimal       `json:"total_taxes"`
	Total           decimal.Decimal       `json:"total"`
	Surcharges      []AppliedSurchargeDTO `json:"surcharges"`
	TotalSurcharges decimal.Decimal       `json:"total_surcharges"`
	GrandTotal      decimal.Decimal       `json:"grand_total"`
	DisplayTotal    string                `json:"display_total"`
}

// SettlementRequest liquidación de uno o más comprobantes con un único
// formulario (fecha, medio, recargos).
type SettlementRequest struct {
	CompanyID       string             `json:"company_id" validate:"required"`
	InvoiceIDs      []string           `json:"invoice_ids" validate:"required,min=1"`
	PaymentDate     string             `json:"payment_date" validate:"required"` // YYYY-MM-DD
	PaymentMethod   string             `json:"payment_method" validate:"required"`
	ReferenceNumber string             `json:"reference_number,omitempty"`
	Notes           string             `json:"notes,omitempty"`
	Retentions      []SurchargeRequest `json:"retentions" validate:"dive"`
}

// PaymentRequest cuerpo que la API remota de pagos espera por cada
// comprobante liquidado.
type PaymentRequest struct {
	InvoiceID       string                `json:"invoice_id"`
	Amount          decimal.Decimal       `json:"amount"`
	PaymentDate     string                `json:"payment_date"`
	PaymentMethod   string                `json:"payment_method"`
	ReferenceNumber string                `json:"reference_number,omitempty"`
	Notes           string                `json:"notes,omitempty"`
	Retentions      []AppliedSurchargeDTO `json:"retentions"`
}

// Estados de despacho de un pago hacia la API remota.
const (
	DispatchSent   = "enviado"
	DispatchFailed = "fallido"
)

// SettledInvoiceDTO resultado por comprobante de una liquidación.
type SettledInvoiceDTO struct {
	InvoiceID     string          `json:"invoice_id"`
	PaymentID     string          `json:"payment_id"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	DisplayAmount string          `json:"display_amount"`
	Dispatch      string          `json:"dispatch"` // enviado | fallido
	Error         string          `json:"error,omitempty"`
}

// SettlementResponse resultado completo de la liquidación.
type SettlementResponse struct {
	Settled         []SettledInvoiceDTO        `json:"settled"`
	TotalByCurrency map[string]decimal.Decimal `json:"total_by_currency"`
}
