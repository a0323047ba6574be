package port

import (
	"context"

	"github.com/google/uuid"

	"github.com/gauciv/pos-app/src/activation/domain/entity"
)

// ActivationCodeRepository puerto de persistencia de códigos de activación
type ActivationCodeRepository interface {
	// Save persiste el código. Retorna ErrCodeCollision si el código
	// ya existe (unique violation) para que el caso de uso reintente.
	Save(ctx context.Context, code *entity.ActivationCode) error

	// FindByCode busca un código por su valor normalizado
	FindByCode(ctx context.Context, code string) (*entity.ActivationCode, error)

	// MarkUsed consume el código si aún no fue usado
	MarkUsed(ctx context.Context, id uuid.UUID) error

	// InvalidateUnused expira los códigos pendientes del usuario
	InvalidateUnused(ctx context.Context, userID uuid.UUID) error
}
