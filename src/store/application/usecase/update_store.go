package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/gauciv/pos-app/src/store/application/request"
	"github.com/gauciv/pos-app/src/store/domain/entity"
	"github.com/gauciv/pos-app/src/store/domain/port"
)

// UpdateStoreUseCase caso de uso para actualización parcial de una tienda
type UpdateStoreUseCase struct {
	storeRepo port.StoreRepository
}

// NewUpdateStoreUseCase crea una nueva instancia del caso de uso
func NewUpdateStoreUseCase(storeRepo port.StoreRepository) *UpdateStoreUseCase {
	return &UpdateStoreUseCase{
		storeRepo: storeRepo,
	}
}

// Execute aplica sólo los campos presentes en el request
func (uc *UpdateStoreUseCase) Execute(ctx context.Context, storeID uuid.UUID, req *request.UpdateStoreRequest) (*entity.Store, error) {
	store, err := uc.storeRepo.FindByID(ctx, storeID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, entity.ErrStoreNameRequired
		}
		store.Name = name
	}
	if req.Address != nil {
		store.Address = *req.Address
	}
	if req.ContactName != nil {
		store.ContactName = *req.ContactName
	}
	if req.ContactPhone != nil {
		store.ContactPhone = *req.ContactPhone
	}
	if req.IsActive != nil {
		store.IsActive = *req.IsActive
	}

	store.UpdatedAt = time.Now()

	if err := uc.storeRepo.Update(ctx, store); err != nil {
		return nil, fmt.Errorf("error updating store: %w", err)
	}

	return store, nil
}
