package port

import (
	"context"

	"github.com/google/uuid"

	"github.com/gauciv/pos-app/src/store/domain/entity"
)

// StoreRepository puerto de persistencia de tiendas
type StoreRepository interface {
	Save(ctx context.Context, store *entity.Store) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Store, error)

	// List retorna tiendas con búsqueda opcional por nombre.
	// Las tiendas dadas de baja sólo se incluyen si includeInactive es true.
	List(ctx context.Context, search string, includeInactive bool) ([]*entity.Store, error)

	Update(ctx context.Context, store *entity.Store) error
	Deactivate(ctx context.Context, id uuid.UUID) error
}
