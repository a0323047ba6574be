package usecase

import (
	"context"
	"fmt"

	"github.com/gauciv/pos-app/src/store/domain/entity"
	"github.com/gauciv/pos-app/src/store/domain/port"
)

// ListStoresUseCase caso de uso para listar tiendas
type ListStoresUseCase struct {
	storeRepo port.StoreRepository
}

// NewListStoresUseCase crea una nueva instancia del caso de uso
func NewListStoresUseCase(storeRepo port.StoreRepository) *ListStoresUseCase {
	return &ListStoresUseCase{
		storeRepo: storeRepo,
	}
}

// Execute lista tiendas con búsqueda opcional por nombre
func (uc *ListStoresUseCase) Execute(ctx context.Context, search string, includeInactive bool) ([]*entity.Store, error) {
	stores, err := uc.storeRepo.List(ctx, search, includeInactive)
	if err != nil {
		return nil, fmt.Errorf("error listing stores: %w", err)
	}

	if stores == nil {
		stores = []*entity.Store{}
	}

	return stores, nil
}
