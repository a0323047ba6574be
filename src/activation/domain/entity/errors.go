package entity

import "errors"

// Errores de dominio del módulo de activación de dispositivos
var (
	ErrUserIDRequired   = errors.New("user_id is required")
	ErrCodeNotFound     = errors.New("activation code not found")
	ErrCodeExpired      = errors.New("activation code expired")
	ErrCodeAlreadyUsed  = errors.New("activation code already used")
	ErrCodeCollision    = errors.New("activation code collision")
	ErrCodeGenExhausted = errors.New("could not generate a unique activation code")
)
