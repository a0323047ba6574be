package persistence

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/gauciv/pos-app/src/catalog/domain/entity"
	"github.com/gauciv/pos-app/src/catalog/domain/port"
)

// ProductPostgresRepository implementa ProductRepository usando PostgreSQL
type ProductPostgresRepository struct {
	db *sql.DB
}

// NewProductPostgresRepository crea una nueva instancia del repositorio
func NewProductPostgresRepository(db *sql.DB) port.ProductRepository {
	return &ProductPostgresRepository{
		db: db,
	}
}

const productColumns = `
	id, name, description, sku, category_id,
	price, stock_quantity, unit, image_url, is_active,
	created_at, updated_at
`

// Save persiste un nuevo producto
func (r *ProductPostgresRepository) Save(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO products (
			id, name, description, sku, category_id,
			price, stock_quantity, unit, image_url, is_active,
			created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12
		)
	`

	_, err := r.db.ExecContext(ctx, query,
		product.ID,
		product.Name,
		nullString(product.Description),
		nullString(product.SKU),
		nullUUID(product.CategoryID),
		product.Price,
		product.StockQuantity,
		product.Unit,
		nullString(product.ImageURL),
		product.IsActive,
		product.CreatedAt,
		product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("error creating product: %w", err)
	}

	return nil
}

// FindByID busca un producto por su ID
func (r *ProductPostgresRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`

	product, err := scanProduct(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, entity.ErrProductNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error querying product: %w", err)
	}

	return product, nil
}

// List retorna productos filtrados con paginación y el total de coincidencias
func (r *ProductPostgresRepository) List(ctx context.Context, filter port.ListProductsFilter, page, pageSize int) ([]*entity.Product, int, error) {
	var conditions []string
	var params []interface{}
	paramIndex := 1

	if !filter.IncludeInactive {
		conditions = append(conditions, "is_active = true")
	}
	if filter.Search != "" {
		conditions = append(conditions, "name ILIKE $"+strconv.Itoa(paramIndex))
		params = append(params, "%"+filter.Search+"%")
		paramIndex++
	}
	if filter.CategoryID != nil {
		conditions = append(conditions, "category_id = $"+strconv.Itoa(paramIndex))
		params = append(params, *filter.CategoryID)
		paramIndex++
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = "WHERE " + strings.Join(conditions, " AND ")
	}

	// Total de coincidencias
	countQuery := "SELECT COUNT(*) FROM products " + whereClause
	var totalCount int
	if err := r.db.QueryRowContext(ctx, countQuery, params...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("error counting products: %w", err)
	}

	// Página solicitada
	offset := (page - 1) * pageSize
	listQuery := fmt.Sprintf(
		"SELECT %s FROM products %s ORDER BY name LIMIT $%d OFFSET $%d",
		productColumns, whereClause, paramIndex, paramIndex+1,
	)
	params = append(params, pageSize, offset)

	rows, err := r.db.QueryContext(ctx, listQuery, params...)
	if err != nil {
		return nil, 0, fmt.Errorf("error querying products: %w", err)
	}
	defer rows.Close()

	var products []*entity.Product
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning product: %w", err)
		}
		products = append(products, product)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating products: %w", err)
	}

	return products, totalCount, nil
}

// Update persiste los campos editables de un producto existente
func (r *ProductPostgresRepository) Update(ctx context.Context, product *entity.Product) error {
	query := `
		UPDATE products SET
			name = $2, description = $3, sku = $4, category_id = $5,
			price = $6, stock_quantity = $7, unit = $8, image_url = $9,
			is_active = $10, updated_at = $11
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query,
		product.ID,
		product.Name,
		nullString(product.Description),
		nullString(product.SKU),
		nullUUID(product.CategoryID),
		product.Price,
		product.StockQuantity,
		product.Unit,
		nullString(product.ImageURL),
		product.IsActive,
		product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("error updating product: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error checking update result: %w", err)
	}
	if affected == 0 {
		return entity.ErrProductNotFound
	}

	return nil
}

// Deactivate marca el producto como inactivo (baja lógica)
func (r *ProductPostgresRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE products SET is_active = false, updated_at = NOW() WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("error deactivating product: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error checking deactivate result: %w", err)
	}
	if affected == 0 {
		return entity.ErrProductNotFound
	}

	return nil
}

// DecrementStock descuenta stock de forma atómica (guard en el UPDATE) y
// registra el movimiento en inventory_logs dentro de la misma transacción.
func (r *ProductPostgresRepository) DecrementStock(ctx context.Context, id uuid.UUID, qty int, referenceID uuid.UUID, performedBy uuid.UUID) (*entity.Product, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("error starting transaction: %w", err)
	}
	defer tx.Rollback()

	// El guard stock_quantity >= qty en el UPDATE elimina la race condition
	// entre cobradores concurrentes sobre el mismo producto
	query := `
		UPDATE products
		SET stock_quantity = stock_quantity - $2, updated_at = NOW()
		WHERE id = $1 AND is_active = true AND stock_quantity >= $2
		RETURNING ` + productColumns

	product, err := scanProduct(tx.QueryRowContext(ctx, query, id, qty))
	if err == sql.ErrNoRows {
		// Distinguir producto inexistente de stock insuficiente
		var exists bool
		checkErr := tx.QueryRowContext(ctx,
			`SELECT EXISTS(SELECT 1 FROM products WHERE id = $1 AND is_active = true)`, id,
		).Scan(&exists)
		if checkErr != nil {
			return nil, fmt.Errorf("error checking product existence: %w", checkErr)
		}
		if !exists {
			return nil, entity.ErrProductNotFound
		}
		return nil, entity.ErrInsufficientStock
	}
	if err != nil {
		return nil, fmt.Errorf("error decrementing stock: %w", err)
	}

	if err := insertInventoryLog(ctx, tx, id, -qty, "order_sale", &referenceID, performedBy); err != nil {
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("error committing transaction: %w", err)
	}

	return product, nil
}

// RestoreStock devuelve unidades al stock (compensación o cancelación)
func (r *ProductPostgresRepository) RestoreStock(ctx context.Context, id uuid.UUID, qty int, reason string, referenceID uuid.UUID, performedBy uuid.UUID) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		UPDATE products
		SET stock_quantity = stock_quantity + $2, updated_at = NOW()
		WHERE id = $1
	`

	result, err := tx.ExecContext(ctx, query, id, qty)
	if err != nil {
		return fmt.Errorf("error restoring stock: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error checking restore result: %w", err)
	}
	if affected == 0 {
		return entity.ErrProductNotFound
	}

	if err := insertInventoryLog(ctx, tx, id, qty, reason, &referenceID, performedBy); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("error committing transaction: %w", err)
	}

	return nil
}

// AdjustStock aplica un ajuste manual con su log; el stock nunca queda negativo
func (r *ProductPostgresRepository) AdjustStock(ctx context.Context, id uuid.UUID, changeAmount int, reason string, performedBy uuid.UUID) (*entity.Product, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("error starting transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		UPDATE products
		SET stock_quantity = stock_quantity + $2, updated_at = NOW()
		WHERE id = $1 AND stock_quantity + $2 >= 0
		RETURNING ` + productColumns

	product, err := scanProduct(tx.QueryRowContext(ctx, query, id, changeAmount))
	if err == sql.ErrNoRows {
		var exists bool
		checkErr := tx.QueryRowContext(ctx,
			`SELECT EXISTS(SELECT 1 FROM products WHERE id = $1)`, id,
		).Scan(&exists)
		if checkErr != nil {
			return nil, fmt.Errorf("error checking product existence: %w", checkErr)
		}
		if !exists {
			return nil, entity.ErrProductNotFound
		}
		return nil, entity.ErrInsufficientStock
	}
	if err != nil {
		return nil, fmt.Errorf("error adjusting stock: %w", err)
	}

	if err := insertInventoryLog(ctx, tx, id, changeAmount, reason, nil, performedBy); err != nil {
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("error committing transaction: %w", err)
	}

	return product, nil
}

// ListLogs retorna los movimientos de stock de un producto, más reciente primero
func (r *ProductPostgresRepository) ListLogs(ctx context.Context, productID uuid.UUID, page, pageSize int) ([]entity.InventoryLog, int, error) {
	var totalCount int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM inventory_logs WHERE product_id = $1`, productID,
	).Scan(&totalCount)
	if err != nil {
		return nil, 0, fmt.Errorf("error counting inventory logs: %w", err)
	}

	offset := (page - 1) * pageSize
	query := `
		SELECT id, product_id, change_amount, reason, reference_id, performed_by, created_at
		FROM inventory_logs
		WHERE product_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.QueryContext(ctx, query, productID, pageSize, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("error querying inventory logs: %w", err)
	}
	defer rows.Close()

	var logs []entity.InventoryLog
	for rows.Next() {
		var l entity.InventoryLog
		var referenceID uuid.NullUUID
		err := rows.Scan(&l.ID, &l.ProductID, &l.ChangeAmount, &l.Reason, &referenceID, &l.PerformedBy, &l.CreatedAt)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning inventory log: %w", err)
		}
		if referenceID.Valid {
			id := referenceID.UUID
			l.ReferenceID = &id
		}
		logs = append(logs, l)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating inventory logs: %w", err)
	}

	return logs, totalCount, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanProduct(row rowScanner) (*entity.Product, error) {
	product := &entity.Product{}
	var description, sku, imageURL sql.NullString
	var categoryID uuid.NullUUID

	err := row.Scan(
		&product.ID,
		&product.Name,
		&description,
		&sku,
		&categoryID,
		&product.Price,
		&product.StockQuantity,
		&product.Unit,
		&imageURL,
		&product.IsActive,
		&product.CreatedAt,
		&product.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	product.Description = description.String
	product.SKU = sku.String
	product.ImageURL = imageURL.String
	if categoryID.Valid {
		id := categoryID.UUID
		product.CategoryID = &id
	}

	return product, nil
}

func insertInventoryLog(ctx context.Context, tx *sql.Tx, productID uuid.UUID, changeAmount int, reason string, referenceID *uuid.UUID, performedBy uuid.UUID) error {
	query := `
		INSERT INTO inventory_logs (
			id, product_id, change_amount, reason, reference_id, performed_by, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, NOW()
		)
	`

	_, err := tx.ExecContext(ctx, query, uuid.New(), productID, changeAmount, reason, nullUUID(referenceID), performedBy)
	if err != nil {
		return fmt.Errorf("error creating inventory log: %w", err)
	}

	return nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullUUID(id *uuid.UUID) uuid.NullUUID {
	if id == nil {
		return uuid.NullUUID{}
	}
	return uuid.NullUUID{UUID: *id, Valid: true}
}
