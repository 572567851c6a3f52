package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/quickalba/job-board-system/internal/core/domain"
	"github.com/quickalba/job-board-system/internal/core/ports"
)

// SessionStore abstracts the Redis-backed revocation list that makes logout
// effective before a token's natural expiry.
type SessionStore interface {
	Revoke(ctx context.Context, token string, ttl time.Duration) error
	IsRevoked(ctx context.Context, token string) (bool, error)
}

// AuthService implements registration, login and logout.
type AuthService struct {
	repo      ports.AuthRepository
	sessions  SessionStore // optional
	jwtSecret string
	tokenTTL  time.Duration
}

func NewAuthService(repo ports.AuthRepository, sessions SessionStore, jwtSecret string, tokenTTL time.Duration) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{repo: repo, sessions: sessions, jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

// Register creates the account and treats it as logged in. A duplicate email
// surfaces as domain.ErrUserExists; this intentionally reveals that the
// address is taken, unlike login failures.
func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (string, *domain.User, error) {
	if in.Email == "" || in.Password == "" || in.Name == "" {
		return "", nil, domain.ErrInvalidCredentials
	}
	if !domain.ValidRole(in.Role) {
		return "", nil, domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Email:        in.Email,
		Name:         in.Name,
		PasswordHash: string(hash),
		Role:         in.Role,
		Profile:      profileFrom(in),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return "", nil, err
	}

	token, err := s.generateToken(created)
	if err != nil {
		return "", nil, err
	}
	return token, created, nil
}

// Login matches the (email, password, role) triple against the credential
// table. Every mismatch — unknown email, wrong password, wrong claimed role —
// yields the same ErrInvalidCredentials so callers cannot probe which emails
// are registered.
func (s *AuthService) Login(ctx context.Context, email, password, role string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if err == domain.ErrUserNotFound {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}
	if user.Role != role {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// Logout revokes the token for the remainder of its lifetime. Tokens that do
// not parse have no session to clear, so the call still succeeds.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if s.sessions == nil || token == "" {
		return nil
	}

	ttl := s.tokenTTL
	claims := jwt.MapClaims{}
	if _, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(s.jwtSecret), nil
	}); err != nil {
		return nil
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		remaining := time.Until(exp.Time)
		if remaining <= 0 {
			return nil
		}
		ttl = remaining
	}

	if err := s.sessions.Revoke(ctx, token, ttl); err != nil {
		return fmt.Errorf("revoke session: %w", err)
	}
	return nil
}

// profileFrom maps the optional registration fields; all-empty means no
// profile rather than an empty one.
func profileFrom(in ports.RegisterInput) *domain.Profile {
	if in.Phone == "" && in.Location == "" && in.Bio == "" {
		return nil
	}
	return &domain.Profile{Phone: in.Phone, Location: in.Location, Bio: in.Bio}
}

func (s *AuthService) generateToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"name":  user.Name,
		"role":  user.Role,
		"jti":   randomID(),
		"exp":   time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

// randomID returns a short random hex identifier.
func randomID() string {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		return fmt.Sprintf("%016x", time.Now().UnixNano())
	}
	return fmt.Sprintf("%x", b)
}
