package billing

import (
	"github.com/shopspring/decimal"

	"github.com/alefeas/payto-engine/internal/domain/entity"
)

// InvoiceTotals totales agregados de un comprobante, sin recargos.
// Los recargos (percepciones/retenciones) se aplican en una etapa posterior
// porque dependen del subtotal y los impuestos ya agregados, no de las
// líneas individuales.
type InvoiceTotals struct {
	Subtotal   decimal.Decimal
	TotalTaxes decimal.Decimal
	Total      decimal.Decimal
}

// ComputeTotals suma los montos de cada línea en el orden de la secuencia
// original, para que el redondeo de presentación sea reproducible.
func ComputeTotals(items []entity.LineItem) InvoiceTotals {
	var subtotal, taxes decimal.Decimal
	for _, item := range items {
		amounts := ComputeLine(item)
		subtotal = subtotal.Add(amounts.Subtotal)
		taxes = taxes.Add(amounts.TaxAmount)
	}
	return InvoiceTotals{
		Subtotal:   subtotal,
		TotalTaxes: taxes,
		Total:      subtotal.Add(taxes),
	}
}

// TotalsFromInvoice totales a usar como base de recargos para un comprobante
// ya emitido: si tiene líneas cargadas se recalculan, si fue sincronizado
// desde la AFIP sin detalle se usan los totales almacenados.
func TotalsFromInvoice(inv *entity.Invoice) InvoiceTotals {
	if len(inv.Items) > 0 {
		return ComputeTotals(inv.Items)
	}
	return InvoiceTotals{
		Subtotal:   inv.NetTotal,
		TotalTaxes: inv.TaxTotal,
		Total:      inv.NetTotal.Add(inv.TaxTotal),
	}
}
