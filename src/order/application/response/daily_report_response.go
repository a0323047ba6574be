package response

import (
	"time"

	"github.com/shopspring/decimal"
)

// DailyReportResponse representa el reporte diario de pedidos
type DailyReportResponse struct {
	Date           string          `json:"date"` // YYYY-MM-DD
	OrdersCount    int             `json:"orders_count"`
	CancelledCount int             `json:"cancelled_count"`
	Subtotal       decimal.Decimal `json:"subtotal"`     // Suma de subtotales (sin cancelados)
	TaxTotal       decimal.Decimal `json:"tax_total"`    // Suma de impuestos
	GrossTotal     decimal.Decimal `json:"gross_total"`  // Suma de total_amount
	FirstOrderAt   *time.Time      `json:"first_order_at,omitempty"`
	LastOrderAt    *time.Time      `json:"last_order_at,omitempty"`
}
