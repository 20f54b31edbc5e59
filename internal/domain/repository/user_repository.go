package repository

import (
	"context"
	"errors"

	"cotiza/internal/domain/entity"
)

// ErrUserNotFound is returned when a user is not found in the contact directory.
var ErrUserNotFound = errors.New("user not found")

// UserRepository is the read-only contact directory consumed when composing
// email. User registration and verification live outside this service.
type UserRepository interface {
	// FindByID retrieves a user's contact record by external identity.
	FindByID(ctx context.Context, id string) (*entity.User, error)
}
