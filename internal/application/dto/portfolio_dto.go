package dto

import "github.com/shopspring/decimal"

// CurrencyBucketDTO acumuladores de cartera para una moneda, con montos
// redondeados a dos decimales y renderizados en es-AR.
type CurrencyBucketDTO struct {
	Currency       string          `json:"currency"`
	Pending        decimal.Decimal `json:"pending"`
	Paid           decimal.Decimal `json:"paid"`
	Overdue        decimal.Decimal `json:"overdue"`
	PaidCount      int             `json:"paid_count"`
	OverdueCount   int             `json:"overdue_count"`
	DisplayPending string          `json:"display_pending"`
	DisplayOverdue string          `json:"display_overdue"`
}

// PortfolioSummaryDTO resumen de cartera para el tablero de una empresa.
type PortfolioSummaryDTO struct {
	CompanyID   string              `json:"company_id"`
	Perspective string              `json:"perspective"` // por_cobrar | por_pagar
	DateLabel   string              `json:"date_label"`  // ej: "Septiembre 2026"
	Currencies  []CurrencyBucketDTO `json:"currencies"`
}
