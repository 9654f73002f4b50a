package portfolio_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alefeas/payto-engine/internal/domain/entity"
	"github.com/alefeas/payto-engine/internal/domain/portfolio"
)

var today = time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

func buildInvoice(id string, currency entity.Currency, total string) *entity.Invoice {
	amount := decimal.RequireFromString(total)
	return &entity.Invoice{
		ID:              id,
		Type:            entity.InvoiceTypeInvoice,
		IssuerCompanyID: "emisor",
		CounterpartyID:  "receptor",
		Currency:        currency,
		DueDate:         today.AddDate(0, 0, 30),
		OriginalTotal:   entity.NewMoney(amount, currency),
		AFIPStatus:      entity.AFIPStatusApproved,
	}
}

// TestBuildSummary_MonedasDisjuntas una factura ARS de 100 y una USD de 50
// pendientes reportan {ARS:100, USD:50, EUR:0}, nunca un 150 sumado.
func TestBuildSummary_MonedasDisjuntas(t *testing.T) {
	invoices := []*entity.Invoice{
		buildInvoice("f1", entity.CurrencyARS, "100"),
		buildInvoice("f2", entity.CurrencyUSD, "50"),
	}

	summary, err := portfolio.BuildSummary("emisor", portfolio.PerspectiveReceivable, invoices, nil, today)
	require.NoError(t, err)

	assert.True(t, summary[entity.CurrencyARS].Pending.Equal(decimal.NewFromInt(100)))
	assert.True(t, summary[entity.CurrencyUSD].Pending.Equal(decimal.NewFromInt(50)))
	assert.True(t, summary[entity.CurrencyEUR].Pending.IsZero())
}

// TestBuildSummary_EstadoPorEmpresa el mismo comprobante compartido puede
// estar pagado para una empresa y pendiente para la otra; cada tablero usa
// el estado propio de quien consulta.
func TestBuildSummary_EstadoPorEmpresa(t *testing.T) {
	inv := buildInvoice("f1", entity.CurrencyARS, "1000")
	inv = inv.WithStatus("receptor", entity.PaymentStatusPaid)
	payments := map[string][]entity.PaymentRecord{
		"f1": {{ID: "p1", InvoiceID: "f1", Amount: entity.NewMoney(decimal.NewFromInt(1000), entity.CurrencyARS)}},
	}

	// El receptor (que pagó) no lo ve pendiente.
	pagador, err := portfolio.BuildSummary("receptor", portfolio.PerspectivePayable,
		[]*entity.Invoice{inv}, payments, today)
	require.NoError(t, err)
	assert.True(t, pagador[entity.CurrencyARS].Pending.IsZero())
	assert.Equal(t, 1, pagador[entity.CurrencyARS].PaidCount)
	assert.True(t, pagador[entity.CurrencyARS].Paid.Equal(decimal.NewFromInt(1000)))
}

// TestBuildSummary_VencidoDerivado vencido ayer con saldo → bucket vencido;
// en cuanto el estado propio pasa a PAGADA sale del bucket sin ningún flag
// que sincronizar.
func TestBuildSummary_VencidoDerivado(t *testing.T) {
	inv := buildInvoice("f1", entity.CurrencyARS, "500")
	inv.DueDate = today.AddDate(0, 0, -1)

	summary, err := portfolio.BuildSummary("emisor", portfolio.PerspectiveReceivable,
		[]*entity.Invoice{inv}, nil, today)
	require.NoError(t, err)
	assert.True(t, summary[entity.CurrencyARS].Overdue.Equal(decimal.NewFromInt(500)))
	assert.Equal(t, 1, summary[entity.CurrencyARS].OverdueCount)

	paid := inv.WithStatus("emisor", entity.PaymentStatusPaid)
	summary, err = portfolio.BuildSummary("emisor", portfolio.PerspectiveReceivable,
		[]*entity.Invoice{paid}, nil, today)
	require.NoError(t, err)
	assert.True(t, summary[entity.CurrencyARS].Overdue.IsZero())
	assert.Equal(t, 0, summary[entity.CurrencyARS].OverdueCount)
}

// TestBuildSummary_ExcluyeNotasYAnulados las notas de crédito/débito y los
// comprobantes anulados no aportan a ningún bucket.
func TestBuildSummary_ExcluyeNotasYAnulados(t *testing.T) {
	nota := buildInvoice("nc1", entity.CurrencyARS, "200")
	nota.Type = entity.InvoiceTypeCreditNote
	anulado := buildInvoice("f2", entity.CurrencyARS, "300")
	anulado.AFIPStatus = entity.AFIPStatusCancelled

	summary, err := portfolio.BuildSummary("emisor", portfolio.PerspectiveReceivable,
		[]*entity.Invoice{nota, anulado}, nil, today)
	require.NoError(t, err)

	assert.True(t, summary[entity.CurrencyARS].Pending.IsZero())
	assert.True(t, summary[entity.CurrencyARS].Paid.IsZero())
}

// TestBuildSummary_MonedaDesconocidaVaABase un comprobante sin moneda
// reconocible se agrega en ARS en lugar de descartarse, así los totales de
// cartera nunca quedan incompletos en silencio.
func TestBuildSummary_MonedaDesconocidaVaABase(t *testing.T) {
	inv := buildInvoice("f1", entity.Currency("XXX"), "700")

	summary, err := portfolio.BuildSummary("emisor", portfolio.PerspectiveReceivable,
		[]*entity.Invoice{inv}, nil, today)
	require.NoError(t, err)

	assert.True(t, summary[entity.CurrencyARS].Pending.Equal(decimal.NewFromInt(700)))
}

// TestBuildSummary_Perspectiva cada comprobante aporta solo a la cartera del
// lado que consulta: por cobrar para el emisor, por pagar para el receptor.
func TestBuildSummary_Perspectiva(t *testing.T) {
	inv := buildInvoice("f1", entity.CurrencyARS, "100")

	ajena, err := portfolio.BuildSummary("receptor", portfolio.PerspectiveReceivable,
		[]*entity.Invoice{inv}, nil, today)
	require.NoError(t, err)
	assert.True(t, ajena[entity.CurrencyARS].Pending.IsZero())

	propia, err := portfolio.BuildSummary("receptor", portfolio.PerspectivePayable,
		[]*entity.Invoice{inv}, nil, today)
	require.NoError(t, err)
	assert.True(t, propia[entity.CurrencyARS].Pending.Equal(decimal.NewFromInt(100)))
}

// TestBuildSummary_PagoParcial el saldo pendiente refleja notas y pagos, no
// el total original.
func TestBuildSummary_PagoParcial(t *testing.T) {
	inv := buildInvoice("f1", entity.CurrencyARS, "1000")
	inv.CreditNotes = []entity.NoteRef{{
		NoteID: "nc1",
		Amount: entity.NewMoney(decimal.NewFromInt(200), entity.CurrencyARS),
	}}
	payments := map[string][]entity.PaymentRecord{
		"f1": {{ID: "p1", InvoiceID: "f1", Amount: entity.NewMoney(decimal.NewFromInt(300), entity.CurrencyARS)}},
	}

	summary, err := portfolio.BuildSummary("emisor", portfolio.PerspectiveReceivable,
		[]*entity.Invoice{inv}, payments, today)
	require.NoError(t, err)

	assert.True(t, summary[entity.CurrencyARS].Pending.Equal(decimal.NewFromInt(500)))
	assert.True(t, summary[entity.CurrencyARS].Paid.Equal(decimal.NewFromInt(300)))
}
