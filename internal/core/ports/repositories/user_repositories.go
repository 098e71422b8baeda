package repositories

import (
	"context"

	"github.com/lamiamustafa/CurrencyConverterAPI/internal/core/domain"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	// SaveUser persists a new user. Fails with apperrors.ErrDuplicate if the
	// username is already taken.
	SaveUser(ctx context.Context, user domain.User) error

	// FindUserByID retrieves a user by ID, or apperrors.ErrNotFound.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByUsername retrieves a user by username, or apperrors.ErrNotFound.
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)
}

// RepositoryProvider bundles all repositories for service construction.
type RepositoryProvider struct {
	UserRepo UserRepository
}
