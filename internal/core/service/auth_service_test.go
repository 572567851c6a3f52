package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/quickalba/job-board-system/internal/core/domain"
	"github.com/quickalba/job-board-system/internal/core/ports"
)

type stubAuthRepo struct {
	users map[string]*domain.User
}

func newStubAuthRepo() *stubAuthRepo {
	return &stubAuthRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubAuthRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := r.users[user.Email]; exists {
		return nil, domain.ErrUserExists
	}
	cp := cloneUser(user)
	if cp.ID == "" {
		cp.ID = user.Email
	}
	r.users[cp.Email] = cloneUser(cp)
	return cloneUser(cp), nil
}

func (r *stubAuthRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := r.users[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

type stubSessions struct {
	revoked map[string]bool
}

func newStubSessions() *stubSessions {
	return &stubSessions{revoked: make(map[string]bool)}
}

func (s *stubSessions) Revoke(_ context.Context, token string, _ time.Duration) error {
	s.revoked[token] = true
	return nil
}

func (s *stubSessions) IsRevoked(_ context.Context, token string) (bool, error) {
	return s.revoked[token], nil
}

func registerInput(email, role string) ports.RegisterInput {
	return ports.RegisterInput{
		Email:    email,
		Password: "password123",
		Name:     "홍길동",
		Role:     role,
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	repo := newStubAuthRepo()
	svc := NewAuthService(repo, nil, "secret", time.Hour)

	token, user, err := svc.Register(context.Background(), registerInput("alice@example.com", domain.RoleJobseeker))
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if token == "" {
		t.Fatalf("expected the new account to be logged in with a token")
	}
	if user.PasswordHash == "password123" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("password123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if user.Role != domain.RoleJobseeker {
		t.Fatalf("unexpected role: %s", user.Role)
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	repo := newStubAuthRepo()
	svc := NewAuthService(repo, nil, "secret", time.Hour)

	if _, _, err := svc.Register(context.Background(), ports.RegisterInput{}); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, _, err := svc.Register(context.Background(), registerInput("bob@example.com", "admin")); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown role, got %v", err)
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	repo := newStubAuthRepo()
	svc := NewAuthService(repo, nil, "secret", time.Hour)

	if _, _, err := svc.Register(context.Background(), registerInput("jobseeker@example.com", domain.RoleJobseeker)); err != nil {
		t.Fatalf("first registration failed: %v", err)
	}
	_, _, err := svc.Register(context.Background(), registerInput("jobseeker@example.com", domain.RoleEmployer))
	if !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthService_Register_OptionalProfile(t *testing.T) {
	repo := newStubAuthRepo()
	svc := NewAuthService(repo, nil, "secret", time.Hour)

	in := registerInput("carol@example.com", domain.RoleJobseeker)
	in.Phone = "010-1234-5678"
	_, user, err := svc.Register(context.Background(), in)
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if user.Profile == nil || user.Profile.Phone != "010-1234-5678" {
		t.Fatalf("expected profile with phone, got %+v", user.Profile)
	}

	_, bare, err := svc.Register(context.Background(), registerInput("dave@example.com", domain.RoleJobseeker))
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if bare.Profile != nil {
		t.Fatalf("all-empty profile fields must yield no profile, got %+v", bare.Profile)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubAuthRepo()
	svc := NewAuthService(repo, nil, "secret", time.Hour)

	if _, _, err := svc.Register(context.Background(), registerInput("carol@example.com", domain.RoleEmployer)); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	token, user, err := svc.Login(context.Background(), "carol@example.com", "password123", domain.RoleEmployer)
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}
	if user == nil || user.Email != "carol@example.com" {
		t.Fatalf("unexpected user: %+v", user)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	if claims["role"] != domain.RoleEmployer {
		t.Fatalf("expected role %s, got %v", domain.RoleEmployer, claims["role"])
	}
}

func TestAuthService_Login_UniformFailure(t *testing.T) {
	repo := newStubAuthRepo()
	svc := NewAuthService(repo, nil, "secret", time.Hour)

	if _, _, err := svc.Register(context.Background(), registerInput("jobseeker@example.com", domain.RoleJobseeker)); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	// Unknown email, wrong password and wrong claimed role must all be
	// indistinguishable from each other.
	cases := []struct {
		name  string
		email string
		pass  string
		role  string
	}{
		{"unknown email", "ghost@example.com", "password123", domain.RoleJobseeker},
		{"wrong password", "jobseeker@example.com", "badpass", domain.RoleJobseeker},
		{"role mismatch", "jobseeker@example.com", "password123", domain.RoleEmployer},
	}
	for _, tc := range cases {
		if _, _, err := svc.Login(context.Background(), tc.email, tc.pass, tc.role); !errors.Is(err, domain.ErrInvalidCredentials) {
			t.Errorf("%s: expected ErrInvalidCredentials, got %v", tc.name, err)
		}
	}
}

func TestAuthService_RegisterThenLogin(t *testing.T) {
	repo := newStubAuthRepo()
	svc := NewAuthService(repo, nil, "secret", time.Hour)

	if _, _, err := svc.Register(context.Background(), registerInput("new@x.com", domain.RoleJobseeker)); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "new@x.com", "password123", domain.RoleJobseeker); err != nil {
		t.Fatalf("login after register failed: %v", err)
	}
}

func TestAuthService_Logout(t *testing.T) {
	repo := newStubAuthRepo()
	sessions := newStubSessions()
	svc := NewAuthService(repo, sessions, "secret", time.Hour)

	if _, _, err := svc.Register(context.Background(), registerInput("eve@example.com", domain.RoleJobseeker)); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	token, _, err := svc.Login(context.Background(), "eve@example.com", "password123", domain.RoleJobseeker)
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	if err := svc.Logout(context.Background(), token); err != nil {
		t.Fatalf("logout failed: %v", err)
	}
	if revoked, _ := sessions.IsRevoked(context.Background(), token); !revoked {
		t.Fatalf("expected token to be revoked")
	}

	// Idempotent: repeating and revoking garbage both succeed.
	if err := svc.Logout(context.Background(), token); err != nil {
		t.Fatalf("repeat logout failed: %v", err)
	}
	if err := svc.Logout(context.Background(), "not-a-token"); err != nil {
		t.Fatalf("logout of malformed token failed: %v", err)
	}
}
