// Package billing contiene los casos de uso de facturación: cálculo de
// totales para formularios y liquidación (pago/cobro) de comprobantes.
package billing

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/alefeas/payto-engine/internal/application/dto"
	"github.com/alefeas/payto-engine/internal/domain"
	dombilling "github.com/alefeas/payto-engine/internal/domain/billing"
	"github.com/alefeas/payto-engine/internal/domain/entity"
	"github.com/alefeas/payto-engine/internal/domain/repository"
	"github.com/alefeas/payto-engine/pkg/logger"
	"github.com/alefeas/payto-engine/pkg/moneyfmt"
)

const paymentDateLayout = "2006-01-02"

// SettleInvoicesUseCase liquida uno o más comprobantes con un único
// formulario y despacha un pago por comprobante hacia la API remota.
//
// Todo el lote se calcula antes del primer despacho: la finalización o falla
// concurrente de una llamada no puede alterar el monto calculado de otra.
// Los despachos ya completados no se revierten ante una falla posterior
// (la transaccionalidad remota es un problema del colaborador externo);
// el caso de uso solo garantiza que cada pago fue correcto para el saldo
// vigente al momento del envío.
type SettleInvoicesUseCase struct {
	invoiceRepo repository.InvoiceRepository
	paymentRepo repository.PaymentRepository
	gateway     PaymentGateway
	validate    *validator.Validate
	log         *logger.Logger
}

// NewSettleInvoicesUseCase construye el caso de uso.
func NewSettleInvoicesUseCase(
	invoiceRepo repository.InvoiceRepository,
	paymentRepo repository.PaymentRepository,
	gateway PaymentGateway,
	log *logger.Logger,
) *SettleInvoicesUseCase {
	return &SettleInvoicesUseCase{
		invoiceRepo: invoiceRepo,
		paymentRepo: paymentRepo,
		gateway:     gateway,
		validate:    validator.New(validator.WithRequiredStructEnabled()),
		log:         log,
	}
}

// Execute valida el formulario, calcula el lote completo y despacha los
// pagos en orden. Una falla de validación en cualquier punto aborta el lote
// entero con cero efectos.
func (uc *SettleInvoicesUseCase) Execute(ctx context.Context, req dto.SettlementRequest) (*dto.SettlementResponse, error) {
	if err := uc.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidacion, err)
	}
	date, err := time.Parse(paymentDateLayout, req.PaymentDate)
	if err != nil {
		return nil, fmt.Errorf("%w: fecha de pago %q (se espera YYYY-MM-DD)", domain.ErrEntradaInvalida, req.PaymentDate)
	}

	invoices := make([]*entity.Invoice, 0, len(req.InvoiceIDs))
	for _, id := range req.InvoiceIDs {
		inv, err := uc.invoiceRepo.GetByID(ctx, id)
		if err != nil || inv == nil {
			return nil, fmt.Errorf("%w: comprobante %s", domain.ErrNoEncontrado, id)
		}
		invoices = append(invoices, inv)
	}
	priorPayments, err := uc.paymentRepo.ListByInvoices(ctx, req.InvoiceIDs)
	if err != nil {
		return nil, fmt.Errorf("listar pagos previos: %w", err)
	}

	form := dombilling.SettlementForm{
		CompanyID:  entity.CompanyID(req.CompanyID),
		Date:       date,
		Method:     req.PaymentMethod,
		Reference:  req.ReferenceNumber,
		Notes:      req.Notes,
		Surcharges: dto.SurchargeEntries(req.Retentions),
	}

	// Cálculo completo del lote antes de cualquier llamada externa.
	result, err := dombilling.SettleAll(invoices, priorPayments, form)
	if err != nil {
		return nil, err
	}

	resp := &dto.SettlementResponse{
		Settled:         make([]dto.SettledInvoiceDTO, 0, len(result.Settled)),
		TotalByCurrency: make(map[string]decimal.Decimal, len(result.TotalByCurrency)),
	}
	for cur, total := range result.TotalByCurrency {
		resp.TotalByCurrency[string(cur)] = total.Round(2)
	}

	// Despacho secuencial, un pago por comprobante. Sin rollback de los ya
	// enviados: cada registro es auditable por separado.
	for _, settled := range result.Settled {
		payment := settled.Payment
		item := dto.SettledInvoiceDTO{
			InvoiceID:     payment.InvoiceID,
			PaymentID:     payment.ID,
			Amount:        payment.Amount.Amount.Round(2),
			Currency:      string(payment.Amount.Currency),
			DisplayAmount: moneyfmt.FormatWithCurrency(payment.Amount.Amount, string(payment.Amount.Currency)),
			Dispatch:      dto.DispatchSent,
		}
		if err := uc.gateway.SendPayment(ctx, toPaymentRequest(payment)); err != nil {
			item.Dispatch = dto.DispatchFailed
			item.Error = err.Error()
			uc.log.Error().
				Err(err).
				Str("invoice_id", payment.InvoiceID).
				Str("payment_id", payment.ID).
				Msg("despacho de pago fallido")
		} else {
			uc.log.Info().
				Str("invoice_id", payment.InvoiceID).
				Str("payment_id", payment.ID).
				Str("amount", payment.Amount.String()).
				Msg("pago despachado")
		}
		resp.Settled = append(resp.Settled, item)
	}
	return resp, nil
}

func toPaymentRequest(p entity.PaymentRecord) dto.PaymentRequest {
	retentions := make([]dto.AppliedSurchargeDTO, 0, len(p.AppliedSurcharges))
	for _, s := range p.AppliedSurcharges {
		retentions = append(retentions, dto.AppliedSurchargeDTO{
			Type:       s.Entry.Type,
			Name:       s.Entry.Label,
			Rate:       s.Entry.RatePercent,
			BaseAmount: s.Base.Round(2),
			Amount:     s.Amount.Round(2),
		})
	}
	return dto.PaymentRequest{
		InvoiceID:       p.InvoiceID,
		Amount:          p.Amount.Amount.Round(2),
		PaymentDate:     p.Date.Format(paymentDateLayout),
		PaymentMethod:   p.Method,
		ReferenceNumber: p.Reference,
		Notes:           p.Notes,
		Retentions:      retentions,
	}
}
