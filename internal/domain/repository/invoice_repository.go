package repository

import (
	"context"

	"github.com/alefeas/payto-engine/internal/domain/entity"
)

// InvoiceRepository puerto de lectura de comprobantes. El motor no persiste
// nada: la aplicación anfitriona implementa este puerto (DB, API remota o
// memoria) y le entrega snapshots al motor.
type InvoiceRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Invoice, error)
	// ListByCompany devuelve todos los comprobantes donde la empresa es
	// emisora o receptora, sin filtrar por estado.
	ListByCompany(ctx context.Context, company entity.CompanyID) ([]*entity.Invoice, error)
}
