// Package account prepares User records for the store.
package account

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/aTrapDeer/portfolio-backend/internal/content"
)

// UserStore is the part of storage.Store needed to register users.
type UserStore interface {
	CreateUser(ctx context.Context, in content.NewUser) (content.User, error)
}

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// CheckPassword reports whether password matches the stored hash. It is for
// login flows built on the User table; Register only writes hashes.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// Register validates the input, hashes the password and stores the user.
func Register(ctx context.Context, store UserStore, username, password string) (content.User, error) {
	in := content.NewUser{Username: username, Password: password}
	if err := in.Validate(); err != nil {
		return content.User{}, err
	}
	if len(password) > 72 {
		return content.User{}, errors.New("password longer than 72 bytes")
	}

	hash, err := HashPassword(password)
	if err != nil {
		return content.User{}, err
	}
	in.Password = hash
	return store.CreateUser(ctx, in)
}
