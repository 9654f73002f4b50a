package entity

import "time"

// PaymentRecord pago o cobro registrado contra un comprobante. Se crea uno
// por comprobante aun cuando el usuario liquida varios en una sola acción,
// para que cada registro sea auditable por separado.
type PaymentRecord struct {
	ID                string
	InvoiceID         string
	CompanyID         CompanyID // empresa que registra el pago/cobro
	Amount            Money
	Date              time.Time
	Method            string
	Reference         string
	Notes             string
	AppliedSurcharges []AppliedSurcharge
}
