package service

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/sweetshop/sweet-shop-api/internal/core/domain"
)

func newTestTokenService() *TokenService {
	return NewTokenService("test-secret", time.Hour, zerolog.Nop())
}

func TestTokenService_RoundTrip(t *testing.T) {
	svc := newTestTokenService()

	token, err := svc.Issue("user_1", domain.RoleAdmin)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	principal, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if principal.Identity != "user_1" || principal.Role != domain.RoleAdmin {
		t.Fatalf("unexpected principal: %+v", principal)
	}
}

func TestTokenService_TamperedToken(t *testing.T) {
	svc := newTestTokenService()

	token, err := svc.Issue("user_1", domain.RoleUser)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	tampered := token[:len(token)-2] + "xx"
	if _, err := svc.Verify(tampered); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestTokenService_WrongSecret(t *testing.T) {
	other := NewTokenService("other-secret", time.Hour, zerolog.Nop())
	token, err := other.Issue("user_1", domain.RoleUser)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	svc := newTestTokenService()
	if _, err := svc.Verify(token); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestTokenService_ExpiredToken(t *testing.T) {
	claims := jwt.MapClaims{
		"identity": "user_1",
		"role":     domain.RoleUser,
		"exp":      time.Now().Add(-time.Minute).Unix(),
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	svc := newTestTokenService()
	if _, err := svc.Verify(expired); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestTokenService_MalformedToken(t *testing.T) {
	svc := newTestTokenService()
	if _, err := svc.Verify("not-a-token"); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestTokenService_MissingClaims(t *testing.T) {
	claims := jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	svc := newTestTokenService()
	if _, err := svc.Verify(token); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for claimless token, got %v", err)
	}
}

func TestTokenService_UnknownRoleClaim(t *testing.T) {
	claims := jwt.MapClaims{
		"identity": "user_1",
		"role":     "superuser",
		"exp":      time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	svc := newTestTokenService()
	if _, err := svc.Verify(token); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for a role outside the enum, got %v", err)
	}
}

func TestTokenService_FallbackSecret(t *testing.T) {
	// Empty secret must still produce working (but insecure) tokens.
	svc := NewTokenService("", 0, zerolog.Nop())

	token, err := svc.Issue("user_1", domain.RoleUser)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := svc.Verify(token); err != nil {
		t.Fatalf("verify: %v", err)
	}
}
