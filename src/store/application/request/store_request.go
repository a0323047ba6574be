package request

// CreateStoreRequest payload para dar de alta una tienda
type CreateStoreRequest struct {
	Name         string `json:"name" binding:"required"`
	Address      string `json:"address"`
	ContactName  string `json:"contact_name"`
	ContactPhone string `json:"contact_phone"`
}

// UpdateStoreRequest actualización parcial de una tienda
type UpdateStoreRequest struct {
	Name         *string `json:"name"`
	Address      *string `json:"address"`
	ContactName  *string `json:"contact_name"`
	ContactPhone *string `json:"contact_phone"`
	IsActive     *bool   `json:"is_active"`
}
