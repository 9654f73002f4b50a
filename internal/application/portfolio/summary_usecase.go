// Package portfolio contiene el caso de uso del tablero de cuentas por
// cobrar y por pagar.
package portfolio

import (
	"context"
	"fmt"
	"time"

	"github.com/alefeas/payto-engine/internal/application/dto"
	"github.com/alefeas/payto-engine/internal/domain"
	"github.com/alefeas/payto-engine/internal/domain/entity"
	domportfolio "github.com/alefeas/payto-engine/internal/domain/portfolio"
	"github.com/alefeas/payto-engine/internal/domain/repository"
	"github.com/alefeas/payto-engine/pkg/logger"
	"github.com/alefeas/payto-engine/pkg/moneyfmt"
)

// SummaryUseCase construye el resumen de cartera por moneda para el tablero.
//
// Fuente de datos: los puertos de comprobantes y pagos (read-only). La
// clasificación pendiente/pagado/vencido la hace el agregador de dominio con
// el estado propio de la empresa consultante.
type SummaryUseCase struct {
	invoiceRepo repository.InvoiceRepository
	paymentRepo repository.PaymentRepository
	log         *logger.Logger
}

// NewSummaryUseCase construye el caso de uso.
func NewSummaryUseCase(
	invoiceRepo repository.InvoiceRepository,
	paymentRepo repository.PaymentRepository,
	log *logger.Logger,
) *SummaryUseCase {
	return &SummaryUseCase{invoiceRepo: invoiceRepo, paymentRepo: paymentRepo, log: log}
}

// GetSummary resumen de cartera de la empresa desde la perspectiva indicada
// (por_cobrar o por_pagar), clasificado a la fecha actual.
func (uc *SummaryUseCase) GetSummary(
	ctx context.Context,
	companyID string,
	perspective string,
) (*dto.PortfolioSummaryDTO, error) {
	view := domportfolio.Perspective(perspective)
	if view != domportfolio.PerspectiveReceivable && view != domportfolio.PerspectivePayable {
		return nil, fmt.Errorf("%w: perspectiva %q desconocida", domain.ErrEntradaInvalida, perspective)
	}

	company := entity.CompanyID(companyID)
	invoices, err := uc.invoiceRepo.ListByCompany(ctx, company)
	if err != nil {
		return nil, fmt.Errorf("cartera: listar comprobantes: %w", err)
	}
	ids := make([]string, 0, len(invoices))
	for _, inv := range invoices {
		ids = append(ids, inv.ID)
	}
	payments, err := uc.paymentRepo.ListByInvoices(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("cartera: listar pagos: %w", err)
	}

	now := time.Now()
	summary, err := domportfolio.BuildSummary(company, view, invoices, payments, now)
	if err != nil {
		return nil, fmt.Errorf("cartera: %w", err)
	}

	resp := &dto.PortfolioSummaryDTO{
		CompanyID:   companyID,
		Perspective: perspective,
		DateLabel:   monthLabel(now),
		Currencies:  make([]dto.CurrencyBucketDTO, 0, len(entity.Currencies)),
	}
	for _, cur := range entity.Currencies {
		bucket := summary[cur]
		resp.Currencies = append(resp.Currencies, dto.CurrencyBucketDTO{
			Currency:       string(cur),
			Pending:        bucket.Pending.Round(2),
			Paid:           bucket.Paid.Round(2),
			Overdue:        bucket.Overdue.Round(2),
			PaidCount:      bucket.PaidCount,
			OverdueCount:   bucket.OverdueCount,
			DisplayPending: moneyfmt.FormatWithCurrency(bucket.Pending, string(cur)),
			DisplayOverdue: moneyfmt.FormatWithCurrency(bucket.Overdue, string(cur)),
		})
	}

	uc.log.Debug().
		Str("company_id", companyID).
		Str("perspective", perspective).
		Int("invoices", len(invoices)).
		Msg("resumen de cartera calculado")
	return resp, nil
}

// monthLabel etiqueta legible del mes, ej: "Septiembre 2026".
func monthLabel(t time.Time) string {
	months := [...]string{
		"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
		"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
	}
	return fmt.Sprintf("%s %d", months[t.Month()-1], t.Year())
}
