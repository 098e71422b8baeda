package services

import (
	"context"

	"github.com/lamiamustafa/CurrencyConverterAPI/internal/core/domain"
	"github.com/lamiamustafa/CurrencyConverterAPI/internal/dto"
)

// UserReaderSvc defines read operations for user data.
type UserReaderSvc interface {
	// GetUserByID retrieves a user by ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// GetUserByUsername retrieves a user by username.
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
}

// UserWriterSvc defines write operations for user data.
type UserWriterSvc interface {
	// CreateUser registers a new user with a hashed password.
	CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error)

	// EnsureAdminUser creates the configured admin account if it does not
	// exist yet. Called once at startup.
	EnsureAdminUser(ctx context.Context, username, password string) error
}

// UserSvcFacade combines all user-related service interfaces.
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
}
