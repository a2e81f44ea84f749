package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/sweetshop/sweet-shop-api/internal/core/domain"
)

// ---------------------------------------------------------------------------
// In-memory stub repository
// ---------------------------------------------------------------------------

type stubAuthRepo struct {
	byEmail    map[string]*domain.User
	byUsername map[string]*domain.User
	nextID     int
}

func newStubAuthRepo() *stubAuthRepo {
	return &stubAuthRepo{
		byEmail:    make(map[string]*domain.User),
		byUsername: make(map[string]*domain.User),
	}
}

func (r *stubAuthRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	// Mirrors the unique indexes on email and username.
	if _, ok := r.byEmail[user.Email]; ok {
		return nil, domain.ErrUserExists
	}
	if _, ok := r.byUsername[user.Username]; ok {
		return nil, domain.ErrUserExists
	}

	r.nextID++
	clone := *user
	clone.ID = string(rune('a' + r.nextID))
	r.byEmail[clone.Email] = &clone
	r.byUsername[clone.Username] = &clone
	return &clone, nil
}

func (r *stubAuthRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func newTestAuthService(repo *stubAuthRepo) *AuthService {
	tokens := NewTokenService("test-secret", time.Hour, zerolog.Nop())
	return NewAuthService(repo, tokens)
}

// ---------------------------------------------------------------------------
// Register tests
// ---------------------------------------------------------------------------

func TestAuthService_Register_HashesPassword(t *testing.T) {
	repo := newStubAuthRepo()
	svc := newTestAuthService(repo)

	user, token, err := svc.Register(context.Background(), "alice", "alice@example.com", "password123")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if token == "" {
		t.Fatalf("expected a token")
	}
	if user.Role != domain.RoleUser {
		t.Fatalf("expected default role %q, got %q", domain.RoleUser, user.Role)
	}

	stored := repo.byEmail["alice@example.com"]
	if stored.PasswordHash == "password123" {
		t.Fatalf("password stored in plaintext")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("password123")); err != nil {
		t.Fatalf("hash does not verify against the original password: %v", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("password124")) == nil {
		t.Fatalf("hash verified against a wrong password")
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	repo := newStubAuthRepo()
	svc := newTestAuthService(repo)

	if _, _, err := svc.Register(context.Background(), "alice", "alice@example.com", "password123"); err != nil {
		t.Fatalf("first register: %v", err)
	}
	_, _, err := svc.Register(context.Background(), "different", "alice@example.com", "password123")
	if !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthService_Register_DuplicateUsername(t *testing.T) {
	repo := newStubAuthRepo()
	svc := newTestAuthService(repo)

	if _, _, err := svc.Register(context.Background(), "alice", "alice@example.com", "password123"); err != nil {
		t.Fatalf("first register: %v", err)
	}
	_, _, err := svc.Register(context.Background(), "alice", "other@example.com", "password123")
	if !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	repo := newStubAuthRepo()
	svc := newTestAuthService(repo)

	_, _, err := svc.Register(context.Background(), "", "not-an-email", "short")
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(ve.Fields) != 3 {
		t.Fatalf("expected 3 violations, got %v", ve.Fields)
	}
	if len(repo.byEmail) != 0 {
		t.Fatalf("nothing should be persisted on validation failure")
	}
}

// ---------------------------------------------------------------------------
// Login tests
// ---------------------------------------------------------------------------

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubAuthRepo()
	svc := newTestAuthService(repo)

	if _, _, err := svc.Register(context.Background(), "alice", "alice@example.com", "password123"); err != nil {
		t.Fatalf("register: %v", err)
	}

	user, token, err := svc.Login(context.Background(), "alice@example.com", "password123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if user.Username != "alice" || token == "" {
		t.Fatalf("unexpected login result: %+v %q", user, token)
	}

	// The issued token must verify back to the same identity and role.
	principal, err := svc.tokens.Verify(token)
	if err != nil {
		t.Fatalf("verify issued token: %v", err)
	}
	if principal.Identity != user.ID || principal.Role != user.Role {
		t.Fatalf("token claims do not match the account: %+v", principal)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	repo := newStubAuthRepo()
	svc := newTestAuthService(repo)

	if _, _, err := svc.Register(context.Background(), "alice", "alice@example.com", "password123"); err != nil {
		t.Fatalf("register: %v", err)
	}

	_, _, err := svc.Login(context.Background(), "alice@example.com", "wrong")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	repo := newStubAuthRepo()
	svc := newTestAuthService(repo)

	// Unknown account and wrong password must be indistinguishable.
	_, _, err := svc.Login(context.Background(), "ghost@example.com", "password123")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
