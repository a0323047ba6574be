package response

import "github.com/gauciv/pos-app/src/catalog/domain/entity"

// ListProductsResponse respuesta paginada del listado de productos.
type ListProductsResponse struct {
	Items      []*entity.Product `json:"items"`
	TotalCount int               `json:"total_count"`
	Page       int               `json:"page"`
	PageSize   int               `json:"page_size"`
	TotalPages int               `json:"total_pages"`
}

// ListInventoryLogsResponse respuesta paginada de movimientos de stock.
type ListInventoryLogsResponse struct {
	Items      []entity.InventoryLog `json:"items"`
	TotalCount int                   `json:"total_count"`
	Page       int                   `json:"page"`
	PageSize   int                   `json:"page_size"`
}
