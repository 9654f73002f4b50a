// Package afip contiene catálogos y validaciones alineados a los webservices
// de Facturación Electrónica de la AFIP (Argentina): WSFEv1 / RG 4291.
package afip

import "github.com/shopspring/decimal"

// =============================================================================
// Tipos de Comprobante (tabla CbteTipo del WSFEv1)
// =============================================================================

const (
	CbteFacturaA    = "1"
	CbteNotaDebitoA = "2"
	CbteNotaCreditoA = "3"
	CbteFacturaB    = "6"
	CbteNotaDebitoB = "7"
	CbteNotaCreditoB = "8"
	CbteFacturaC    = "11"
	CbteNotaDebitoC = "12"
	CbteNotaCreditoC = "13"
	CbteReciboA     = "4"
	CbteReciboB     = "9"
	CbteReciboC     = "15"
)

// ValidCbteTipos códigos de comprobante soportados.
var ValidCbteTipos = map[string]bool{
	CbteFacturaA: true, CbteNotaDebitoA: true, CbteNotaCreditoA: true,
	CbteFacturaB: true, CbteNotaDebitoB: true, CbteNotaCreditoB: true,
	CbteFacturaC: true, CbteNotaDebitoC: true, CbteNotaCreditoC: true,
	CbteReciboA: true, CbteReciboB: true, CbteReciboC: true,
}

// =============================================================================
// Monedas (tabla FEParamGetTiposMonedas del WSFEv1)
// =============================================================================

const (
	MonedaPesos   = "PES" // Peso argentino
	MonedaDolar   = "DOL" // Dólar estadounidense
	MonedaEuro    = "060" // Euro
)

// CurrencyFromMoneda mapea el código de moneda AFIP a ISO 4217. Un código
// desconocido resuelve a la moneda base "ARS" para que los agregados de
// cartera nunca queden incompletos.
func CurrencyFromMoneda(code string) string {
	switch code {
	case MonedaPesos:
		return "ARS"
	case MonedaDolar:
		return "USD"
	case MonedaEuro:
		return "EUR"
	}
	return "ARS"
}

// =============================================================================
// Alícuotas de IVA (tabla FEParamGetTiposIva del WSFEv1)
// =============================================================================

const (
	AlicuotaIVA0    = "3" // 0%
	AlicuotaIVA105  = "4" // 10,5%
	AlicuotaIVA21   = "5" // 21%
	AlicuotaIVA27   = "6" // 27%
	AlicuotaIVA5    = "8" // 5%
	AlicuotaIVA25   = "9" // 2,5%
)

// alicuotaPercents porcentaje por código de alícuota.
var alicuotaPercents = map[string]decimal.Decimal{
	AlicuotaIVA0:   decimal.Zero,
	AlicuotaIVA105: decimal.RequireFromString("10.5"),
	AlicuotaIVA21:  decimal.NewFromInt(21),
	AlicuotaIVA27:  decimal.NewFromInt(27),
	AlicuotaIVA5:   decimal.NewFromInt(5),
	AlicuotaIVA25:  decimal.RequireFromString("2.5"),
}

// AlicuotaPercent devuelve el porcentaje de la alícuota AFIP indicada.
// El segundo valor es false si el código no pertenece al catálogo.
func AlicuotaPercent(code string) (decimal.Decimal, bool) {
	p, ok := alicuotaPercents[code]
	return p, ok
}

// =============================================================================
// Tipos de percepción / retención de uso frecuente en cuentas a pagar
// =============================================================================

const (
	SurchargeTipoIVA       = "IVA"       // Percepción/retención de IVA (RG 2408 / RG 18)
	SurchargeTipoIIBB      = "IIBB"      // Ingresos Brutos (jurisdiccional)
	SurchargeTipoGanancias = "GANANCIAS" // Impuesto a las Ganancias (RG 830)
	SurchargeTipoSUSS      = "SUSS"      // Seguridad social (RG 1784)
)

// ValidSurchargeTipos tipos de recargo reconocidos por el catálogo.
var ValidSurchargeTipos = map[string]bool{
	SurchargeTipoIVA:       true,
	SurchargeTipoIIBB:      true,
	SurchargeTipoGanancias: true,
	SurchargeTipoSUSS:      true,
}

// =============================================================================
// Condición frente al IVA (uso en cabecera de comprobante)
// =============================================================================

const (
	CondIVAResponsableInscripto = "RI"
	CondIVAMonotributo          = "MT"
	CondIVAExento               = "EX"
	CondIVAConsumidorFinal      = "CF"
)
