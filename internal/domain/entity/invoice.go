package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de comprobante.
const (
	InvoiceTypeInvoice    = "factura"
	InvoiceTypeCreditNote = "nota_credito"
	InvoiceTypeDebitNote  = "nota_debito"
	InvoiceTypeReceipt    = "recibo"
)

// Estados de autorización ante la AFIP (Argentina).
const (
	AFIPStatusDraft      = "BORRADOR"      // Cargada manualmente, sin CAE
	AFIPStatusPendingCAE = "PENDIENTE_CAE" // Enviada al WS, CAE pendiente
	AFIPStatusApproved   = "APROBADO"      // CAE otorgado
	AFIPStatusRejected   = "RECHAZADO"     // Rechazada por la AFIP con observaciones
	AFIPStatusCancelled  = "ANULADO"       // Anulada (no participa de saldos ni cartera)
)

// CompanyID identifica una empresa (emisora o receptora) dentro del sistema.
type CompanyID string

// PaymentStatus estado de pago/cobro que cada empresa lleva de forma
// independiente sobre el mismo comprobante compartido.
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "PENDIENTE"
	PaymentStatusPartial PaymentStatus = "PAGO_PARCIAL"
	PaymentStatusPaid    PaymentStatus = "PAGADA"
)

// NoteRef referencia inmutable a una nota de crédito o débito vinculada.
type NoteRef struct {
	NoteID    string
	Amount    Money
	IssueDate time.Time
}

// Invoice comprobante compartido entre la empresa emisora y la contraparte.
// Es un único registro legal: StatusByCompany permite que cada lado lleve su
// propio estado de pago/cobro (el emisor puede verlo cobrado mientras un
// intermediario todavía lo ve pendiente).
//
// NetTotal/TaxTotal se fijan al emitir (o al sincronizar desde la AFIP) y son
// la base de cálculo de percepciones/retenciones al momento del pago.
type Invoice struct {
	ID              string
	Type            string // factura | nota_credito | nota_debito | recibo
	IssuerCompanyID CompanyID
	CounterpartyID  CompanyID
	PointOfSale     int
	Number          string
	IssueDate       time.Time
	DueDate         time.Time
	Currency        Currency
	ExchangeRate    decimal.Decimal // cotización a ARS al momento de emisión
	Items           []LineItem
	Surcharges      []SurchargeEntry
	OriginalTotal   Money
	NetTotal        decimal.Decimal
	TaxTotal        decimal.Decimal
	CreditNotes     []NoteRef
	DebitNotes      []NoteRef
	StatusByCompany map[CompanyID]PaymentStatus
	AFIPStatus      string
	CAE             string // Código de Autorización Electrónico otorgado por la AFIP
	CAEDueDate      time.Time
	ManualEntry     bool // cargada a mano; es la única clase de comprobante que puede eliminarse
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsNote indica nota de crédito o débito.
func (i *Invoice) IsNote() bool {
	return i.Type == InvoiceTypeCreditNote || i.Type == InvoiceTypeDebitNote
}

// IsCancelled indica comprobante anulado.
func (i *Invoice) IsCancelled() bool {
	return i.AFIPStatus == AFIPStatusCancelled
}

// StatusFor estado de pago para la empresa indicada. Sin registro previo el
// estado es PENDIENTE.
func (i *Invoice) StatusFor(company CompanyID) PaymentStatus {
	if st, ok := i.StatusByCompany[company]; ok {
		return st
	}
	return PaymentStatusPending
}

// WithStatus devuelve una copia del comprobante con el estado de la empresa
// indicada actualizado. El original no se modifica: el motor trabaja sobre
// snapshots inmutables.
func (i *Invoice) WithStatus(company CompanyID, status PaymentStatus) *Invoice {
	copied := *i
	copied.StatusByCompany = make(map[CompanyID]PaymentStatus, len(i.StatusByCompany)+1)
	for k, v := range i.StatusByCompany {
		copied.StatusByCompany[k] = v
	}
	copied.StatusByCompany[company] = status
	return &copied
}
