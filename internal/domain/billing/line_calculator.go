// Package billing implementa el motor de cálculo financiero de comprobantes:
// totales por línea, agregación de subtotal/impuestos, percepciones y
// retenciones con base seleccionable, y conciliación de saldos contra notas
// vinculadas y pagos registrados.
//
// Todas las funciones son puras: reciben snapshots inmutables y devuelven
// valores nuevos, sin I/O ni estado compartido. El redondeo a dos decimales
// es responsabilidad de la capa de presentación; el motor conserva la
// precisión completa.
package billing

import (
	"github.com/shopspring/decimal"

	"github.com/alefeas/payto-engine/internal/domain/entity"
)

var oneHundred = decimal.NewFromInt(100)

// LineAmounts montos derivados de una línea de comprobante.
type LineAmounts struct {
	Subtotal  decimal.Decimal
	TaxAmount decimal.Decimal
	Total     decimal.Decimal
}

// ComputeLine calcula subtotal, IVA y total de una línea:
//
//	base       = cantidad * precio unitario
//	descontado = base * (1 - descuento/100)
//	impuesto   = descontado * alícuota efectiva / 100
//
// Las variantes Exento y No Gravado aportan impuesto cero. La validación de
// entrada (cantidad > 0, precio >= 0) es responsabilidad del llamador; acá
// no se hace clamping.
func ComputeLine(item entity.LineItem) LineAmounts {
	base := item.Quantity.Mul(item.UnitPrice)
	discounted := base.Mul(oneHundred.Sub(item.DiscountPercent)).Div(oneHundred)
	tax := discounted.Mul(item.TaxRate.EffectivePercent()).Div(oneHundred)
	return LineAmounts{
		Subtotal:  discounted,
		TaxAmount: tax,
		Total:     discounted.Add(tax),
	}
}
