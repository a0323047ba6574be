package usecase

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gauciv/pos-app/src/order/application/response"
)

// DailyReportUseCase caso de uso para el reporte diario de pedidos
type DailyReportUseCase struct {
	db *sql.DB
}

// NewDailyReportUseCase crea una nueva instancia del caso de uso
func NewDailyReportUseCase(db *sql.DB) *DailyReportUseCase {
	return &DailyReportUseCase{
		db: db,
	}
}

// Execute genera el reporte para una fecha específica (YYYY-MM-DD).
// Usa rango [from, to) sobre created_at para aprovechar el índice.
func (uc *DailyReportUseCase) Execute(ctx context.Context, date string) (*response.DailyReportResponse, error) {
	parsedDate, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, fmt.Errorf("invalid date format, expected YYYY-MM-DD: %w", err)
	}

	from := parsedDate
	to := parsedDate.AddDate(0, 0, 1)

	query := `
		SELECT
			COUNT(*) FILTER (WHERE status <> 'cancelled') as orders_count,
			COUNT(*) FILTER (WHERE status = 'cancelled') as cancelled_count,
			COALESCE(SUM(subtotal) FILTER (WHERE status <> 'cancelled'), 0) as subtotal,
			COALESCE(SUM(tax_amount) FILTER (WHERE status <> 'cancelled'), 0) as tax_total,
			COALESCE(SUM(total_amount) FILTER (WHERE status <> 'cancelled'), 0) as gross_total,
			MIN(created_at) as first_order,
			MAX(created_at) as last_order
		FROM orders
		WHERE created_at >= $1
			AND created_at < $2
	`

	var ordersCount, cancelledCount int
	var subtotal, taxTotal, grossTotal decimal.Decimal
	var firstOrder, lastOrder sql.NullTime

	err = uc.db.QueryRowContext(ctx, query, from, to).Scan(
		&ordersCount,
		&cancelledCount,
		&subtotal,
		&taxTotal,
		&grossTotal,
		&firstOrder,
		&lastOrder,
	)
	if err != nil {
		return nil, fmt.Errorf("error querying orders: %w", err)
	}

	resp := &response.DailyReportResponse{
		Date:           date,
		OrdersCount:    ordersCount,
		CancelledCount: cancelledCount,
		Subtotal:       subtotal,
		TaxTotal:       taxTotal,
		GrossTotal:     grossTotal,
	}

	if firstOrder.Valid {
		resp.FirstOrderAt = &firstOrder.Time
	}
	if lastOrder.Valid {
		resp.LastOrderAt = &lastOrder.Time
	}

	return resp, nil
}
