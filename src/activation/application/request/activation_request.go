package request

// GenerateCodeRequest payload para emitir un código de activación
type GenerateCodeRequest struct {
	UserID string `json:"user_id" binding:"required"`
}

// ActivateDeviceRequest payload para canjear un código
type ActivateDeviceRequest struct {
	Code string `json:"code" binding:"required"`
}
