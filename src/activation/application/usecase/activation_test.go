package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/gauciv/pos-app/src/activation/domain/entity"
)

// fakeCodeRepo simula la persistencia de códigos en memoria
type fakeCodeRepo struct {
	codes       map[string]*entity.ActivationCode
	collisions  int // cantidad de saves que fallan con colisión antes de aceptar
	saveCount   int
	invalidated []uuid.UUID
}

func newFakeCodeRepo() *fakeCodeRepo {
	return &fakeCodeRepo{codes: make(map[string]*entity.ActivationCode)}
}

func (f *fakeCodeRepo) Save(ctx context.Context, code *entity.ActivationCode) error {
	f.saveCount++
	if f.collisions > 0 {
		f.collisions--
		return entity.ErrCodeCollision
	}
	f.codes[code.Code] = code
	return nil
}

func (f *fakeCodeRepo) FindByCode(ctx context.Context, code string) (*entity.ActivationCode, error) {
	c, ok := f.codes[code]
	if !ok {
		return nil, entity.ErrCodeNotFound
	}
	return c, nil
}

func (f *fakeCodeRepo) MarkUsed(ctx context.Context, id uuid.UUID) error {
	for _, c := range f.codes {
		if c.ID == id {
			if c.UsedAt != nil {
				return entity.ErrCodeAlreadyUsed
			}
			now := time.Now()
			c.UsedAt = &now
			return nil
		}
	}
	return entity.ErrCodeNotFound
}

func (f *fakeCodeRepo) InvalidateUnused(ctx context.Context, userID uuid.UUID) error {
	f.invalidated = append(f.invalidated, userID)
	for _, c := range f.codes {
		if c.UserID == userID && c.UsedAt == nil {
			c.ExpiresAt = time.Now()
		}
	}
	return nil
}

func TestGenerateCodeFormat(t *testing.T) {
	repo := newFakeCodeRepo()
	uc := NewGenerateCodeUseCase(repo)
	userID := uuid.New()

	code, err := uc.Execute(context.Background(), userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(code.Code) != entity.CodeLength {
		t.Errorf("expected %d chars, got %d", entity.CodeLength, len(code.Code))
	}
	for _, ch := range code.Code {
		if strings.ContainsRune("01OIL8B", ch) {
			t.Errorf("code contains ambiguous character %c: %s", ch, code.Code)
		}
	}
	if code.Expired() || code.Used() {
		t.Error("new code must be valid")
	}
	ttl := time.Until(code.ExpiresAt)
	if ttl < 71*time.Hour || ttl > 73*time.Hour {
		t.Errorf("expected ~72h TTL, got %s", ttl)
	}
}

func TestGenerateCodeInvalidatesPrevious(t *testing.T) {
	repo := newFakeCodeRepo()
	uc := NewGenerateCodeUseCase(repo)
	userID := uuid.New()

	first, err := uc.Execute(context.Background(), userID)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := uc.Execute(context.Background(), userID); err != nil {
		t.Fatal(err)
	}

	if !repo.codes[first.Code].Expired() {
		t.Error("expected previous unused code to be invalidated")
	}
}

func TestGenerateCodeRetriesOnCollision(t *testing.T) {
	repo := newFakeCodeRepo()
	repo.collisions = 3
	uc := NewGenerateCodeUseCase(repo)

	if _, err := uc.Execute(context.Background(), uuid.New()); err != nil {
		t.Fatalf("expected success after retries, got %v", err)
	}
	if repo.saveCount != 4 {
		t.Errorf("expected 4 save attempts, got %d", repo.saveCount)
	}
}

func TestGenerateCodeGivesUpAfterMaxAttempts(t *testing.T) {
	repo := newFakeCodeRepo()
	repo.collisions = 100
	uc := NewGenerateCodeUseCase(repo)

	_, err := uc.Execute(context.Background(), uuid.New())
	if !errors.Is(err, entity.ErrCodeGenExhausted) {
		t.Errorf("expected ErrCodeGenExhausted, got %v", err)
	}
	if repo.saveCount != 10 {
		t.Errorf("expected 10 attempts, got %d", repo.saveCount)
	}
}

func TestActivateDeviceConsumesCode(t *testing.T) {
	repo := newFakeCodeRepo()
	genUC := NewGenerateCodeUseCase(repo)
	userID := uuid.New()

	code, err := genUC.Execute(context.Background(), userID)
	if err != nil {
		t.Fatal(err)
	}

	activateUC := NewActivateDeviceUseCase(repo)

	// El código llega con espacios y en minúsculas desde el dispositivo
	raw := "  " + strings.ToLower(code.Code) + " "
	gotUser, err := activateUC.Execute(context.Background(), raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotUser != userID {
		t.Errorf("expected user %s, got %s", userID, gotUser)
	}

	// Segundo canje del mismo código
	if _, err := activateUC.Execute(context.Background(), code.Code); !errors.Is(err, entity.ErrCodeAlreadyUsed) {
		t.Errorf("expected ErrCodeAlreadyUsed, got %v", err)
	}
}

func TestActivateDeviceExpiredAndUnknown(t *testing.T) {
	repo := newFakeCodeRepo()
	activateUC := NewActivateDeviceUseCase(repo)

	if _, err := activateUC.Execute(context.Background(), "NOPE42"); !errors.Is(err, entity.ErrCodeNotFound) {
		t.Errorf("expected ErrCodeNotFound, got %v", err)
	}

	expired := &entity.ActivationCode{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		Code:      "ABC234",
		ExpiresAt: time.Now().Add(-time.Minute),
		CreatedAt: time.Now().Add(-73 * time.Hour),
	}
	repo.codes[expired.Code] = expired

	if _, err := activateUC.Execute(context.Background(), "ABC234"); !errors.Is(err, entity.ErrCodeExpired) {
		t.Errorf("expected ErrCodeExpired, got %v", err)
	}
}
