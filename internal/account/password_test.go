package account

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"gorm.io/gorm/logger"

	"github.com/aTrapDeer/portfolio-backend/internal/content"
	"github.com/aTrapDeer/portfolio-backend/internal/storage"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("hunter2")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if hash == "hunter2" {
		t.Fatal("Expected the password to be hashed")
	}
	if !CheckPassword(hash, "hunter2") {
		t.Error("Expected the correct password to match")
	}
	if CheckPassword(hash, "hunter3") {
		t.Error("Expected a wrong password not to match")
	}
}

func TestRegister(t *testing.T) {
	store, err := storage.Open(storage.Options{
		Driver:   storage.DriverSQLite,
		DSN:      filepath.Join(t.TempDir(), "portfolio.db"),
		LogLevel: logger.Silent,
	})
	if err != nil {
		t.Fatalf("Failed to open test store: %v", err)
	}
	defer store.Close()
	ctx := context.Background()

	user, err := Register(ctx, store, "andrew", "s3cret")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	stored, err := store.GetUserByUsername(ctx, "andrew")
	if err != nil || stored == nil {
		t.Fatalf("Expected stored user, got (%v, %v)", stored, err)
	}
	if stored.ID != user.ID || !CheckPassword(stored.Password, "s3cret") {
		t.Errorf("Stored user does not match: %+v", stored)
	}

	_, err = Register(ctx, store, "andrew", "other")
	if !errors.Is(err, storage.ErrUniqueViolation) {
		t.Errorf("Expected ErrUniqueViolation, got %v", err)
	}

	_, err = Register(ctx, store, "", "")
	var verr *content.ValidationError
	if !errors.As(err, &verr) {
		t.Errorf("Expected *content.ValidationError, got %v", err)
	}

	_, err = Register(ctx, store, "long", strings.Repeat("x", 73))
	if err == nil {
		t.Error("Expected overlong password to be rejected")
	}
}
