package billing_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appbilling "github.com/alefeas/payto-engine/internal/application/billing"
	"github.com/alefeas/payto-engine/internal/application/dto"
	"github.com/alefeas/payto-engine/internal/domain"
	"github.com/alefeas/payto-engine/internal/domain/entity"
	"github.com/alefeas/payto-engine/pkg/logger"
)

// ── fakes en memoria de los puertos ──────────────────────────────────────────

type fakeInvoiceRepo struct {
	invoices map[string]*entity.Invoice
}

func (f *fakeInvoiceRepo) GetByID(_ context.Context, id string) (*entity.Invoice, error) {
	return f.invoices[id], nil
}

func (f *fakeInvoiceRepo) ListByCompany(_ context.Context, company entity.CompanyID) ([]*entity.Invoice, error) {
	var out []*entity.Invoice
	for _, inv := range f.invoices {
		if inv.IssuerCompanyID == company || inv.CounterpartyID == company {
			out = append(out, inv)
		}
	}
	return out, nil
}

type fakePaymentRepo struct {
	payments map[string][]entity.PaymentRecord
}

func (f *fakePaymentRepo) ListByInvoice(_ context.Context, invoiceID string) ([]entity.PaymentRecord, error) {
	return f.payments[invoiceID], nil
}

func (f *fakePaymentRepo) ListByInvoices(_ context.Context, ids []string) (map[string][]entity.PaymentRecord, error) {
	out := make(map[string][]entity.PaymentRecord)
	for _, id := range ids {
		if ps, ok := f.payments[id]; ok {
			out[id] = ps
		}
	}
	return out, nil
}

type fakeGateway struct {
	sent    []dto.PaymentRequest
	failFor map[string]error // por invoice_id
}

func (f *fakeGateway) SendPayment(_ context.Context, req dto.PaymentRequest) error {
	if err, ok := f.failFor[req.InvoiceID]; ok {
		return err
	}
	f.sent = append(f.sent, req)
	return nil
}

// ── helpers ──────────────────────────────────────────────────────────────────

func arsInvoice(id string, total int64) *entity.Invoice {
	return &entity.Invoice{
		ID:              id,
		Type:            entity.InvoiceTypeInvoice,
		IssuerCompanyID: "emisor",
		CounterpartyID:  "receptor",
		Currency:        entity.CurrencyARS,
		OriginalTotal:   entity.NewMoney(decimal.NewFromInt(total), entity.CurrencyARS),
		NetTotal:        decimal.NewFromInt(total),
		AFIPStatus:      entity.AFIPStatusApproved,
	}
}

func buildUseCase(invoices ...*entity.Invoice) (*appbilling.SettleInvoicesUseCase, *fakeGateway) {
	repo := &fakeInvoiceRepo{invoices: make(map[string]*entity.Invoice)}
	for _, inv := range invoices {
		repo.invoices[inv.ID] = inv
	}
	gateway := &fakeGateway{failFor: make(map[string]error)}
	uc := appbilling.NewSettleInvoicesUseCase(
		repo,
		&fakePaymentRepo{payments: make(map[string][]entity.PaymentRecord)},
		gateway,
		logger.Nop(),
	)
	return uc, gateway
}

func buildRequest(ids ...string) dto.SettlementRequest {
	return dto.SettlementRequest{
		CompanyID:     "receptor",
		InvoiceIDs:    ids,
		PaymentDate:   "2026-09-01",
		PaymentMethod: "transferencia",
	}
}

// ── tests ────────────────────────────────────────────────────────────────────

func TestSettleInvoices_DespachaUnPagoPorComprobante(t *testing.T) {
	uc, gateway := buildUseCase(arsInvoice("fA", 400), arsInvoice("fB", 600))

	resp, err := uc.Execute(context.Background(), buildRequest("fA", "fB"))

	require.NoError(t, err)
	require.Len(t, resp.Settled, 2)
	require.Len(t, gateway.sent, 2)
	assert.Equal(t, dto.DispatchSent, resp.Settled[0].Dispatch)
	assert.Equal(t, dto.DispatchSent, resp.Settled[1].Dispatch)

	sum := resp.Settled[0].Amount.Add(resp.Settled[1].Amount)
	assert.True(t, sum.Equal(decimal.NewFromInt(1000)))
	assert.True(t, resp.TotalByCurrency["ARS"].Equal(decimal.NewFromInt(1000)))
}

// TestSettleInvoices_FallaDeDespachoNoRevierte el lote completo ya está
// calculado antes del primer envío; una falla a mitad del lote no revierte
// los pagos ya despachados ni altera los montos de los restantes.
func TestSettleInvoices_FallaDeDespachoNoRevierte(t *testing.T) {
	uc, gateway := buildUseCase(arsInvoice("fA", 400), arsInvoice("fB", 600), arsInvoice("fC", 250))
	gateway.failFor["fB"] = errors.New("timeout del servicio de pagos")

	resp, err := uc.Execute(context.Background(), buildRequest("fA", "fB", "fC"))

	require.NoError(t, err)
	require.Len(t, resp.Settled, 3)
	assert.Equal(t, dto.DispatchSent, resp.Settled[0].Dispatch)
	assert.Equal(t, dto.DispatchFailed, resp.Settled[1].Dispatch)
	assert.Contains(t, resp.Settled[1].Error, "timeout")
	// El tercero se despacha con su monto precalculado.
	assert.Equal(t, dto.DispatchSent, resp.Settled[2].Dispatch)
	assert.True(t, resp.Settled[2].Amount.Equal(decimal.NewFromInt(250)))
	assert.Len(t, gateway.sent, 2)
}

// TestSettleInvoices_RetencionInvalidaAbortaSinEfectos una retención
// inválida en el formulario aborta el lote entero antes de cualquier envío.
func TestSettleInvoices_RetencionInvalidaAbortaSinEfectos(t *testing.T) {
	uc, gateway := buildUseCase(arsInvoice("fA", 400))
	req := buildRequest("fA")
	req.Retentions = []dto.SurchargeRequest{{
		Kind: "retencion",
		Type: "IIBB",
		Name: "", // etiqueta vacía
		Rate: decimal.NewFromInt(3),
		Base: "NETO",
	}}

	_, err := uc.Execute(context.Background(), req)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidacion)
	assert.Empty(t, gateway.sent)
}

func TestSettleInvoices_ComprobanteInexistente(t *testing.T) {
	uc, gateway := buildUseCase(arsInvoice("fA", 400))

	_, err := uc.Execute(context.Background(), buildRequest("fA", "no-existe"))

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNoEncontrado)
	assert.Empty(t, gateway.sent)
}

func TestSettleInvoices_FechaInvalida(t *testing.T) {
	uc, _ := buildUseCase(arsInvoice("fA", 400))
	req := buildRequest("fA")
	req.PaymentDate = "01/09/2026"

	_, err := uc.Execute(context.Background(), req)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)
}

func TestSettleInvoices_FormularioIncompleto(t *testing.T) {
	uc, _ := buildUseCase(arsInvoice("fA", 400))
	req := buildRequest("fA")
	req.PaymentMethod = ""

	_, err := uc.Execute(context.Background(), req)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidacion)
}

// TestSettleInvoices_CuerpoDePagoRemoto el cuerpo enviado a la API remota
// lleva el shape acordado: monto, fecha, medio y retenciones con base y
// monto calculados.
func TestSettleInvoices_CuerpoDePagoRemoto(t *testing.T) {
	inv := arsInvoice("fA", 1210)
	inv.NetTotal = decimal.NewFromInt(1000)
	inv.TaxTotal = decimal.NewFromInt(210)
	uc, gateway := buildUseCase(inv)

	req := buildRequest("fA")
	req.ReferenceNumber = "OP-00123"
	req.Retentions = []dto.SurchargeRequest{{
		Kind: "retencion",
		Type: "GANANCIAS",
		Name: "Retención Ganancias",
		Rate: decimal.NewFromInt(2),
		Base: "NETO",
	}}

	_, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, gateway.sent, 1)

	sent := gateway.sent[0]
	assert.Equal(t, "fA", sent.InvoiceID)
	assert.True(t, sent.Amount.Equal(decimal.NewFromInt(1210)))
	assert.Equal(t, "2026-09-01", sent.PaymentDate)
	assert.Equal(t, "transferencia", sent.PaymentMethod)
	assert.Equal(t, "OP-00123", sent.ReferenceNumber)
	require.Len(t, sent.Retentions, 1)
	assert.Equal(t, "GANANCIAS", sent.Retentions[0].Type)
	assert.True(t, sent.Retentions[0].BaseAmount.Equal(decimal.NewFromInt(1000)))
	assert.True(t, sent.Retentions[0].Amount.Equal(decimal.NewFromInt(20)))
}
