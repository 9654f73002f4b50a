package entity

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/alefeas/payto-engine/internal/domain"
)

// taxRateKind discrimina la variante de alícuota.
type taxRateKind int

const (
	taxRatePercent taxRateKind = iota
	taxRateExempt
	taxRateNotTaxed
)

// Códigos legados del campo numérico de alícuota. Los sistemas anteriores
// sobrecargaban el porcentaje con valores negativos centinela.
var (
	legacyCodeExempt   = decimal.NewFromInt(-1)
	legacyCodeNotTaxed = decimal.NewFromInt(-2)
)

// TaxRate alícuota de IVA como variante etiquetada: un porcentaje en [0,100],
// Exento o No Gravado. Los dos últimos aportan siempre impuesto cero sin
// importar el valor numérico que el sistema de origen haya almacenado.
type TaxRate struct {
	kind    taxRateKind
	percent decimal.Decimal
}

// NewTaxRate construye una alícuota porcentual. El porcentaje debe estar en [0,100].
func NewTaxRate(percent decimal.Decimal) (TaxRate, error) {
	if percent.IsNegative() || percent.GreaterThan(decimal.NewFromInt(100)) {
		return TaxRate{}, fmt.Errorf("%w: alícuota %s fuera de [0,100]", domain.ErrEntradaInvalida, percent.String())
	}
	return TaxRate{kind: taxRatePercent, percent: percent}, nil
}

// TaxRateExempt alícuota Exento (impuesto cero).
func TaxRateExempt() TaxRate { return TaxRate{kind: taxRateExempt} }

// TaxRateNotTaxed alícuota No Gravado (impuesto cero).
func TaxRateNotTaxed() TaxRate { return TaxRate{kind: taxRateNotTaxed} }

// TaxRateFromLegacyCode interpreta el campo numérico legado: -1 = Exento,
// -2 = No Gravado, cualquier otro valor es un porcentaje.
func TaxRateFromLegacyCode(code decimal.Decimal) (TaxRate, error) {
	switch {
	case code.Equal(legacyCodeExempt):
		return TaxRateExempt(), nil
	case code.Equal(legacyCodeNotTaxed):
		return TaxRateNotTaxed(), nil
	default:
		return NewTaxRate(code)
	}
}

// IsExempt indica variante Exento.
func (t TaxRate) IsExempt() bool { return t.kind == taxRateExempt }

// IsNotTaxed indica variante No Gravado.
func (t TaxRate) IsNotTaxed() bool { return t.kind == taxRateNotTaxed }

// EffectivePercent porcentaje efectivo para el cálculo de impuesto:
// cero para Exento y No Gravado, el porcentaje almacenado en otro caso.
func (t TaxRate) EffectivePercent() decimal.Decimal {
	if t.kind != taxRatePercent {
		return decimal.Zero
	}
	return t.percent
}

// String etiqueta legible, ej: "21%", "Exento", "No Gravado".
func (t TaxRate) String() string {
	switch t.kind {
	case taxRateExempt:
		return "Exento"
	case taxRateNotTaxed:
		return "No Gravado"
	default:
		return t.percent.String() + "%"
	}
}
