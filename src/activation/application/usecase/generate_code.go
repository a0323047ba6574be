package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/gauciv/pos-app/src/activation/domain/entity"
	"github.com/gauciv/pos-app/src/activation/domain/port"
)

// maxGenerateAttempts reintentos ante colisión de código
const maxGenerateAttempts = 10

// GenerateCodeUseCase caso de uso para emitir un código de activación
type GenerateCodeUseCase struct {
	codeRepo port.ActivationCodeRepository
}

// NewGenerateCodeUseCase crea una nueva instancia del caso de uso
func NewGenerateCodeUseCase(codeRepo port.ActivationCodeRepository) *GenerateCodeUseCase {
	return &GenerateCodeUseCase{
		codeRepo: codeRepo,
	}
}

// Execute invalida los códigos pendientes del usuario y emite uno nuevo.
// Ante colisión de código genera otro, hasta maxGenerateAttempts veces.
func (uc *GenerateCodeUseCase) Execute(ctx context.Context, userID uuid.UUID) (*entity.ActivationCode, error) {
	if err := uc.codeRepo.InvalidateUnused(ctx, userID); err != nil {
		return nil, fmt.Errorf("error invalidating previous codes: %w", err)
	}

	for attempt := 0; attempt < maxGenerateAttempts; attempt++ {
		code, err := entity.NewActivationCode(userID)
		if err != nil {
			return nil, err
		}

		err = uc.codeRepo.Save(ctx, code)
		if err == nil {
			log.Printf("✅ Activation code issued for user %s (expires %s)", userID, code.ExpiresAt.Format("2006-01-02 15:04"))
			return code, nil
		}
		if !errors.Is(err, entity.ErrCodeCollision) {
			return nil, fmt.Errorf("error saving activation code: %w", err)
		}
	}

	return nil, entity.ErrCodeGenExhausted
}
