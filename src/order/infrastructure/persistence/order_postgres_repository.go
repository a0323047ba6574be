package persistence

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/gauciv/pos-app/src/order/domain/entity"
	"github.com/gauciv/pos-app/src/order/domain/port"
)

// OrderPostgresRepository implementa OrderRepository usando PostgreSQL
type OrderPostgresRepository struct {
	db *sql.DB
}

// NewOrderPostgresRepository crea una nueva instancia del repositorio
func NewOrderPostgresRepository(db *sql.DB) *OrderPostgresRepository {
	return &OrderPostgresRepository{
		db: db,
	}
}

// Save persiste el pedido con sus items en una transacción y le asigna
// el número de orden ORD-YYYYMMDD-NNNNNN desde la secuencia
func (r *OrderPostgresRepository) Save(ctx context.Context, order *entity.Order) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}
	defer tx.Rollback()

	// 1. Asignar número de orden correlativo
	var seq int64
	if err := tx.QueryRowContext(ctx, `SELECT nextval('order_number_seq')`).Scan(&seq); err != nil {
		return fmt.Errorf("error assigning order number: %w", err)
	}
	order.OrderNumber = fmt.Sprintf("ORD-%s-%06d", order.CreatedAt.Format("20060102"), seq)

	// 2. Insertar pedido (aggregate root)
	queryOrder := `
		INSERT INTO orders (
			id, order_number, collector_id, store_id, status, notes,
			subtotal, tax_amount, total_amount, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11
		)
	`

	_, err = tx.ExecContext(ctx, queryOrder,
		order.ID,
		order.OrderNumber,
		order.CollectorID,
		order.StoreID,
		order.Status,
		order.Notes,
		order.Subtotal,
		order.TaxAmount,
		order.TotalAmount,
		order.CreatedAt,
		order.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("error saving order: %w", err)
	}

	// 3. Insertar items con snapshot de catálogo
	queryItem := `
		INSERT INTO order_items (
			id, order_id, product_id, product_name, unit_price, quantity, line_total
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7
		)
	`

	for _, item := range order.Items {
		_, err = tx.ExecContext(ctx, queryItem,
			item.ID,
			order.ID,
			item.ProductID,
			item.ProductName,
			item.UnitPrice,
			item.Quantity,
			item.LineTotal,
		)
		if err != nil {
			return fmt.Errorf("error saving order item: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("error committing transaction: %w", err)
	}

	return nil
}

// FindByID busca un pedido con sus items por su ID
func (r *OrderPostgresRepository) FindByID(ctx context.Context, orderID uuid.UUID) (*entity.Order, error) {
	queryOrder := `
		SELECT o.id, o.order_number, o.collector_id, o.store_id,
			COALESCE(s.name, '') as store_name,
			o.status, o.notes, o.subtotal, o.tax_amount, o.total_amount,
			o.created_at, o.updated_at
		FROM orders o
		LEFT JOIN stores s ON s.id = o.store_id
		WHERE o.id = $1
	`

	order := &entity.Order{}
	err := r.db.QueryRowContext(ctx, queryOrder, orderID).Scan(
		&order.ID,
		&order.OrderNumber,
		&order.CollectorID,
		&order.StoreID,
		&order.StoreName,
		&order.Status,
		&order.Notes,
		&order.Subtotal,
		&order.TaxAmount,
		&order.TotalAmount,
		&order.CreatedAt,
		&order.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, entity.ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error finding order: %w", err)
	}

	items, err := r.loadItems(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	order.Items = items

	return order, nil
}

// List retorna pedidos paginados según el filtro
func (r *OrderPostgresRepository) List(ctx context.Context, filter port.ListOrdersFilter, page, pageSize int) ([]*entity.Order, int, error) {
	where := "WHERE 1=1"
	args := []interface{}{}
	argPos := 1

	if filter.CollectorID != nil {
		where += fmt.Sprintf(" AND o.collector_id = $%d", argPos)
		args = append(args, *filter.CollectorID)
		argPos++
	}
	if filter.StoreID != nil {
		where += fmt.Sprintf(" AND o.store_id = $%d", argPos)
		args = append(args, *filter.StoreID)
		argPos++
	}
	if filter.Status != nil {
		where += fmt.Sprintf(" AND o.status = $%d", argPos)
		args = append(args, *filter.Status)
		argPos++
	}

	// 1. Contar total de pedidos que matchean
	var totalCount int
	queryCount := "SELECT COUNT(*) FROM orders o " + where
	if err := r.db.QueryRowContext(ctx, queryCount, args...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("error counting orders: %w", err)
	}

	// 2. Obtener página
	offset := (page - 1) * pageSize
	queryOrders := fmt.Sprintf(`
		SELECT o.id, o.order_number, o.collector_id, o.store_id,
			COALESCE(s.name, '') as store_name,
			o.status, o.notes, o.subtotal, o.tax_amount, o.total_amount,
			o.created_at, o.updated_at
		FROM orders o
		LEFT JOIN stores s ON s.id = o.store_id
		%s
		ORDER BY o.created_at DESC
		LIMIT $%d OFFSET $%d
	`, where, argPos, argPos+1)
	args = append(args, pageSize, offset)

	rows, err := r.db.QueryContext(ctx, queryOrders, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing orders: %w", err)
	}
	defer rows.Close()

	var orders []*entity.Order
	for rows.Next() {
		order := &entity.Order{}
		err := rows.Scan(
			&order.ID,
			&order.OrderNumber,
			&order.CollectorID,
			&order.StoreID,
			&order.StoreName,
			&order.Status,
			&order.Notes,
			&order.Subtotal,
			&order.TaxAmount,
			&order.TotalAmount,
			&order.CreatedAt,
			&order.UpdatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning order: %w", err)
		}
		orders = append(orders, order)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating orders: %w", err)
	}

	// 3. Cargar items de cada pedido
	for _, order := range orders {
		items, err := r.loadItems(ctx, order.ID)
		if err != nil {
			return nil, 0, fmt.Errorf("error loading items for order %s: %w", order.ID, err)
		}
		order.Items = items
	}

	return orders, totalCount, nil
}

// UpdateStatus persiste el cambio de estado
func (r *OrderPostgresRepository) UpdateStatus(ctx context.Context, orderID uuid.UUID, status entity.OrderStatus) error {
	query := `
		UPDATE orders
		SET status = $2, updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query, orderID, status)
	if err != nil {
		return fmt.Errorf("error updating order status: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return entity.ErrOrderNotFound
	}

	return nil
}

// loadItems carga las líneas de un pedido en orden de inserción
func (r *OrderPostgresRepository) loadItems(ctx context.Context, orderID uuid.UUID) ([]entity.OrderItem, error) {
	query := `
		SELECT id, order_id, product_id, product_name, unit_price, quantity, line_total
		FROM order_items
		WHERE order_id = $1
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("error finding order items: %w", err)
	}
	defer rows.Close()

	var items []entity.OrderItem
	for rows.Next() {
		var item entity.OrderItem
		err := rows.Scan(
			&item.ID,
			&item.OrderID,
			&item.ProductID,
			&item.ProductName,
			&item.UnitPrice,
			&item.Quantity,
			&item.LineTotal,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning order item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating order items: %w", err)
	}

	return items, nil
}
