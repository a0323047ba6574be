package persistence

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/gauciv/pos-app/src/store/domain/entity"
)

const storeColumns = `id, name, address, contact_name, contact_phone, is_active, created_at, updated_at`

// StorePostgresRepository implementa StoreRepository usando PostgreSQL
type StorePostgresRepository struct {
	db *sql.DB
}

// NewStorePostgresRepository crea una nueva instancia del repositorio
func NewStorePostgresRepository(db *sql.DB) *StorePostgresRepository {
	return &StorePostgresRepository{
		db: db,
	}
}

// Save persiste una tienda nueva
func (r *StorePostgresRepository) Save(ctx context.Context, store *entity.Store) error {
	query := `
		INSERT INTO stores (
			id, name, address, contact_name, contact_phone, is_active, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		)
	`

	_, err := r.db.ExecContext(ctx, query,
		store.ID,
		store.Name,
		store.Address,
		store.ContactName,
		store.ContactPhone,
		store.IsActive,
		store.CreatedAt,
		store.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("error saving store: %w", err)
	}

	return nil
}

// FindByID busca una tienda por su ID
func (r *StorePostgresRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Store, error) {
	query := `SELECT ` + storeColumns + ` FROM stores WHERE id = $1`

	store := &entity.Store{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&store.ID,
		&store.Name,
		&store.Address,
		&store.ContactName,
		&store.ContactPhone,
		&store.IsActive,
		&store.CreatedAt,
		&store.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, entity.ErrStoreNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error finding store: %w", err)
	}

	return store, nil
}

// List retorna tiendas ordenadas por nombre con búsqueda opcional
func (r *StorePostgresRepository) List(ctx context.Context, search string, includeInactive bool) ([]*entity.Store, error) {
	query := `SELECT ` + storeColumns + ` FROM stores WHERE 1=1`
	args := []interface{}{}
	argPos := 1

	if !includeInactive {
		query += " AND is_active = true"
	}
	if search != "" {
		query += fmt.Sprintf(" AND name ILIKE $%d", argPos)
		args = append(args, "%"+search+"%")
		argPos++
	}

	query += " ORDER BY name"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing stores: %w", err)
	}
	defer rows.Close()

	var stores []*entity.Store
	for rows.Next() {
		store := &entity.Store{}
		err := rows.Scan(
			&store.ID,
			&store.Name,
			&store.Address,
			&store.ContactName,
			&store.ContactPhone,
			&store.IsActive,
			&store.CreatedAt,
			&store.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning store: %w", err)
		}
		stores = append(stores, store)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating stores: %w", err)
	}

	return stores, nil
}

// Update actualiza los datos de una tienda
func (r *StorePostgresRepository) Update(ctx context.Context, store *entity.Store) error {
	query := `
		UPDATE stores
		SET name = $2, address = $3, contact_name = $4, contact_phone = $5,
			is_active = $6, updated_at = $7
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query,
		store.ID,
		store.Name,
		store.Address,
		store.ContactName,
		store.ContactPhone,
		store.IsActive,
		store.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("error updating store: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return entity.ErrStoreNotFound
	}

	return nil
}

// Deactivate baja lógica de una tienda
func (r *StorePostgresRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE stores
		SET is_active = false, updated_at = NOW()
		WHERE id = $1 AND is_active = true
	`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("error deactivating store: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return entity.ErrStoreNotFound
	}

	return nil
}
