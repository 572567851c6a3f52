package ports

import (
	"context"

	"github.com/quickalba/job-board-system/internal/core/domain"
)

// RegisterInput carries a registration form. Phone, Location and Bio are
// optional profile fields.
type RegisterInput struct {
	Email    string
	Password string
	Name     string
	Role     string
	Phone    string
	Location string
	Bio      string
}

// AuthService implements the session/identity contract: registration, login
// with an explicit claimed role, and token revocation on logout.
type AuthService interface {
	// Register creates the account and logs it in, returning a session token.
	Register(ctx context.Context, in RegisterInput) (string, *domain.User, error)
	// Login succeeds only when email, password and claimed role all match.
	// Any mismatch yields the same ErrInvalidCredentials.
	Login(ctx context.Context, email, password, role string) (string, *domain.User, error)
	// Logout revokes the token until its natural expiry. Idempotent.
	Logout(ctx context.Context, token string) error
}
