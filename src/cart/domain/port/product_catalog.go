package port

import (
	"context"

	"github.com/gauciv/pos-app/src/cart/domain/entity"
)

// ProductCatalog provee la vista de producto que el carrito necesita para
// construir los inputs de AddItem. Consumido, no poseído, por este módulo.
type ProductCatalog interface {
	GetProduct(ctx context.Context, productID string) (*entity.ProductInfo, error)
}
