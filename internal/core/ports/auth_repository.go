package ports

import (
	"context"

	"github.com/quickalba/job-board-system/internal/core/domain"
)

// AuthRepository defines the interface for account persistence.
type AuthRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// Create persists a new account. Returns domain.ErrUserExists when the
	// email is already registered.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
