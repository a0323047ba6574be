package usecase

import (
	"context"
	"log"

	"github.com/google/uuid"

	"github.com/gauciv/pos-app/src/store/domain/port"
)

// DeleteStoreUseCase caso de uso para dar de baja una tienda.
// La baja es lógica: los pedidos históricos siguen referenciando la tienda.
type DeleteStoreUseCase struct {
	storeRepo port.StoreRepository
}

// NewDeleteStoreUseCase crea una nueva instancia del caso de uso
func NewDeleteStoreUseCase(storeRepo port.StoreRepository) *DeleteStoreUseCase {
	return &DeleteStoreUseCase{
		storeRepo: storeRepo,
	}
}

// Execute desactiva la tienda
func (uc *DeleteStoreUseCase) Execute(ctx context.Context, storeID uuid.UUID) error {
	if err := uc.storeRepo.Deactivate(ctx, storeID); err != nil {
		return err
	}

	log.Printf("Store %s deactivated", storeID)
	return nil
}
