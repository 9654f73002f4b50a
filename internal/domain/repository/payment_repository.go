package repository

import (
	"context"

	"github.com/alefeas/payto-engine/internal/domain/entity"
)

// PaymentRepository puerto de lectura de pagos/cobros registrados.
type PaymentRepository interface {
	ListByInvoice(ctx context.Context, invoiceID string) ([]entity.PaymentRecord, error)
	// ListByInvoices agrupa los pagos de varios comprobantes por ID de
	// comprobante. Un comprobante sin pagos puede no aparecer en el mapa.
	ListByInvoices(ctx context.Context, invoiceIDs []string) (map[string][]entity.PaymentRecord, error)
}
