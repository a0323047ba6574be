package entity

import (
	"crypto/rand"
	"math/big"
	"time"

	"github.com/google/uuid"
)

// codeCharset excluye caracteres ambiguos (0/O, 1/I/L, 8/B)
const codeCharset = "23456789ACDEFGHJKMNPQRSTUVWXYZ"

// CodeLength largo del código de activación
const CodeLength = 6

// CodeTTL vigencia de un código antes de expirar
const CodeTTL = 72 * time.Hour

// ActivationCode código de un solo uso para vincular un dispositivo
// de campo a una cuenta de recolector
type ActivationCode struct {
	ID        uuid.UUID  `json:"id"`
	UserID    uuid.UUID  `json:"user_id"`
	Code      string     `json:"code"`
	ExpiresAt time.Time  `json:"expires_at"`
	UsedAt    *time.Time `json:"used_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// NewActivationCode genera un código aleatorio para el usuario
func NewActivationCode(userID uuid.UUID) (*ActivationCode, error) {
	if userID == uuid.Nil {
		return nil, ErrUserIDRequired
	}

	code, err := randomCode()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	return &ActivationCode{
		ID:        uuid.New(),
		UserID:    userID,
		Code:      code,
		ExpiresAt: now.Add(CodeTTL),
		CreatedAt: now,
	}, nil
}

// Expired indica si el código ya venció
func (c *ActivationCode) Expired() bool {
	return time.Now().After(c.ExpiresAt)
}

// Used indica si el código ya fue consumido
func (c *ActivationCode) Used() bool {
	return c.UsedAt != nil
}

// randomCode genera CodeLength caracteres del charset con crypto/rand
func randomCode() (string, error) {
	max := big.NewInt(int64(len(codeCharset)))
	buf := make([]byte, CodeLength)
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		buf[i] = codeCharset[n.Int64()]
	}
	return string(buf), nil
}
