package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/gauciv/pos-app/src/activation/domain/entity"
)

// uniqueViolation código de error de PostgreSQL para UNIQUE constraint
const uniqueViolation = "23505"

// ActivationCodePostgresRepository implementa ActivationCodeRepository usando PostgreSQL
type ActivationCodePostgresRepository struct {
	db *sql.DB
}

// NewActivationCodePostgresRepository crea una nueva instancia del repositorio
func NewActivationCodePostgresRepository(db *sql.DB) *ActivationCodePostgresRepository {
	return &ActivationCodePostgresRepository{
		db: db,
	}
}

// Save persiste el código; mapea unique violation a ErrCodeCollision
func (r *ActivationCodePostgresRepository) Save(ctx context.Context, code *entity.ActivationCode) error {
	query := `
		INSERT INTO activation_codes (
			id, user_id, code, expires_at, created_at
		) VALUES (
			$1, $2, $3, $4, $5
		)
	`

	_, err := r.db.ExecContext(ctx, query,
		code.ID,
		code.UserID,
		code.Code,
		code.ExpiresAt,
		code.CreatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
			return entity.ErrCodeCollision
		}
		return fmt.Errorf("error saving activation code: %w", err)
	}

	return nil
}

// FindByCode busca un código por su valor
func (r *ActivationCodePostgresRepository) FindByCode(ctx context.Context, codeValue string) (*entity.ActivationCode, error) {
	query := `
		SELECT id, user_id, code, expires_at, used_at, created_at
		FROM activation_codes
		WHERE code = $1
	`

	code := &entity.ActivationCode{}
	var usedAt sql.NullTime

	err := r.db.QueryRowContext(ctx, query, codeValue).Scan(
		&code.ID,
		&code.UserID,
		&code.Code,
		&code.ExpiresAt,
		&usedAt,
		&code.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, entity.ErrCodeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error finding activation code: %w", err)
	}

	if usedAt.Valid {
		code.UsedAt = &usedAt.Time
	}

	return code, nil
}

// MarkUsed consume el código; el guard used_at IS NULL evita doble uso
func (r *ActivationCodePostgresRepository) MarkUsed(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE activation_codes
		SET used_at = NOW()
		WHERE id = $1 AND used_at IS NULL
	`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("error marking activation code as used: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return entity.ErrCodeAlreadyUsed
	}

	return nil
}

// InvalidateUnused expira los códigos pendientes del usuario
func (r *ActivationCodePostgresRepository) InvalidateUnused(ctx context.Context, userID uuid.UUID) error {
	query := `
		UPDATE activation_codes
		SET expires_at = NOW()
		WHERE user_id = $1 AND used_at IS NULL AND expires_at > NOW()
	`

	if _, err := r.db.ExecContext(ctx, query, userID); err != nil {
		return fmt.Errorf("error invalidating activation codes: %w", err)
	}

	return nil
}
