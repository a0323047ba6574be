package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/gauciv/pos-app/src/store/domain/entity"
	"github.com/gauciv/pos-app/src/store/domain/port"
)

// GetStoreUseCase caso de uso para obtener una tienda por ID
type GetStoreUseCase struct {
	storeRepo port.StoreRepository
}

// NewGetStoreUseCase crea una nueva instancia del caso de uso
func NewGetStoreUseCase(storeRepo port.StoreRepository) *GetStoreUseCase {
	return &GetStoreUseCase{
		storeRepo: storeRepo,
	}
}

// Execute busca la tienda por su ID
func (uc *GetStoreUseCase) Execute(ctx context.Context, storeID uuid.UUID) (*entity.Store, error) {
	return uc.storeRepo.FindByID(ctx, storeID)
}
