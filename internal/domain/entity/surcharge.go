package entity

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/alefeas/payto-engine/internal/domain"
)

// SurchargeKind clase de recargo impositivo.
type SurchargeKind string

const (
	SurchargePerception SurchargeKind = "percepcion" // la aplica el emisor al facturar
	SurchargeRetention  SurchargeKind = "retencion"  // la aplica el pagador al pagar
)

// SurchargeBase base de cálculo seleccionable para un recargo.
type SurchargeBase string

const (
	BaseNet     SurchargeBase = "NETO"     // subtotal sin impuestos
	BaseTotal   SurchargeBase = "TOTAL"    // subtotal + IVA
	BaseVATOnly SurchargeBase = "SOLO_IVA" // únicamente el IVA
)

// Valid indica si el selector de base pertenece al catálogo.
func (b SurchargeBase) Valid() bool {
	switch b {
	case BaseNet, BaseTotal, BaseVATOnly:
		return true
	}
	return false
}

// SurchargeEntry percepción o retención configurable: tasa porcentual sobre
// una base seleccionable. Type referencia el catálogo de pkg/afip
// (IVA, IIBB, Ganancias, SUSS).
type SurchargeEntry struct {
	Kind        SurchargeKind
	Type        string
	Label       string
	RatePercent decimal.Decimal // en (0,100]
	Base        SurchargeBase
}

// Validate toda entrada persistida debe tener etiqueta no vacía y tasa en
// (0,100]. Las entradas que no cumplen se rechazan antes del cálculo, nunca
// se llevan a cero en silencio.
func (e SurchargeEntry) Validate() error {
	if e.Label == "" {
		return fmt.Errorf("%w: la etiqueta del recargo no puede estar vacía", domain.ErrValidacion)
	}
	if !e.RatePercent.GreaterThan(decimal.Zero) {
		return fmt.Errorf("%w: la tasa del recargo %q debe ser mayor que cero", domain.ErrValidacion, e.Label)
	}
	if e.RatePercent.GreaterThan(decimal.NewFromInt(100)) {
		return fmt.Errorf("%w: la tasa del recargo %q supera el 100%%", domain.ErrValidacion, e.Label)
	}
	if !e.Base.Valid() {
		return fmt.Errorf("%w: base de cálculo %q desconocida para el recargo %q", domain.ErrValidacion, string(e.Base), e.Label)
	}
	return nil
}

// AppliedSurcharge recargo ya evaluado contra los totales de un comprobante:
// la entrada, la base resuelta y el monto resultante.
type AppliedSurcharge struct {
	Entry  SurchargeEntry
	Base   decimal.Decimal
	Amount decimal.Decimal
}
