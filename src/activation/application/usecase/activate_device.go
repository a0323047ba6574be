package usecase

import (
	"context"
	"log"
	"strings"

	"github.com/google/uuid"

	"github.com/gauciv/pos-app/src/activation/domain/entity"
	"github.com/gauciv/pos-app/src/activation/domain/port"
)

// ActivateDeviceUseCase caso de uso para canjear un código de activación
type ActivateDeviceUseCase struct {
	codeRepo port.ActivationCodeRepository
}

// NewActivateDeviceUseCase crea una nueva instancia del caso de uso
func NewActivateDeviceUseCase(codeRepo port.ActivationCodeRepository) *ActivateDeviceUseCase {
	return &ActivateDeviceUseCase{
		codeRepo: codeRepo,
	}
}

// Execute valida y consume el código, retornando el usuario vinculado.
// El código se normaliza (trim + mayúsculas) antes de buscar.
func (uc *ActivateDeviceUseCase) Execute(ctx context.Context, rawCode string) (uuid.UUID, error) {
	normalized := strings.ToUpper(strings.TrimSpace(rawCode))

	code, err := uc.codeRepo.FindByCode(ctx, normalized)
	if err != nil {
		return uuid.Nil, err
	}

	if code.Used() {
		return uuid.Nil, entity.ErrCodeAlreadyUsed
	}
	if code.Expired() {
		return uuid.Nil, entity.ErrCodeExpired
	}

	if err := uc.codeRepo.MarkUsed(ctx, code.ID); err != nil {
		return uuid.Nil, err
	}

	log.Printf("✅ Device activated for user %s", code.UserID)

	return code.UserID, nil
}
