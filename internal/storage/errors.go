package storage

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// ErrUniqueViolation marks a write rejected because a unique column (the
// username) already holds the value. It is always wrapped in a *StorageError.
var ErrUniqueViolation = errors.New("unique constraint violation")

// StorageError reports a failed operation against the database.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func wrap(op string, err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		err = fmt.Errorf("%w: %w", ErrUniqueViolation, err)
	}
	return &StorageError{Op: op, Err: err}
}
