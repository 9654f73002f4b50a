package entity

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/alefeas/payto-engine/internal/domain"
)

// LineItem línea de detalle de un comprobante. Los montos derivados
// (subtotal, IVA) no se almacenan: se recalculan con el motor ante cada
// cambio de entrada.
type LineItem struct {
	Description     string
	Quantity        decimal.Decimal
	UnitPrice       decimal.Decimal
	DiscountPercent decimal.Decimal // descuento en [0,100]
	TaxRate         TaxRate
}

// Validate reglas de entrada que la capa de formulario debe garantizar antes
// de invocar los cálculos: cantidad positiva, precio no negativo, descuento
// en [0,100]. El motor en sí no hace clamping.
func (li LineItem) Validate() error {
	if !li.Quantity.GreaterThan(decimal.Zero) {
		return fmt.Errorf("%w: la cantidad debe ser mayor que cero", domain.ErrEntradaInvalida)
	}
	if li.UnitPrice.IsNegative() {
		return fmt.Errorf("%w: el precio unitario no puede ser negativo", domain.ErrEntradaInvalida)
	}
	if li.DiscountPercent.IsNegative() || li.DiscountPercent.GreaterThan(decimal.NewFromInt(100)) {
		return fmt.Errorf("%w: el descuento debe estar en [0,100]", domain.ErrEntradaInvalida)
	}
	return nil
}
