package usecase

import (
	"context"
	"fmt"
	"log"

	"github.com/gauciv/pos-app/src/store/application/request"
	"github.com/gauciv/pos-app/src/store/domain/entity"
	"github.com/gauciv/pos-app/src/store/domain/port"
)

// CreateStoreUseCase caso de uso para dar de alta una tienda
type CreateStoreUseCase struct {
	storeRepo port.StoreRepository
}

// NewCreateStoreUseCase crea una nueva instancia del caso de uso
func NewCreateStoreUseCase(storeRepo port.StoreRepository) *CreateStoreUseCase {
	return &CreateStoreUseCase{
		storeRepo: storeRepo,
	}
}

// Execute crea y persiste la tienda
func (uc *CreateStoreUseCase) Execute(ctx context.Context, req *request.CreateStoreRequest) (*entity.Store, error) {
	store, err := entity.NewStore(req.Name, req.Address, req.ContactName, req.ContactPhone)
	if err != nil {
		return nil, err
	}

	if err := uc.storeRepo.Save(ctx, store); err != nil {
		return nil, fmt.Errorf("error saving store: %w", err)
	}

	log.Printf("✅ Store created: %s (%s)", store.Name, store.ID)

	return store, nil
}
