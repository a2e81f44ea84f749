package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/sweetshop/sweet-shop-api/internal/core/domain"
	"github.com/sweetshop/sweet-shop-api/internal/core/ports"
)

const minPasswordLength = 6

// AuthService implements registration and login.
type AuthService struct {
	repo   ports.AuthRepository
	tokens ports.TokenService
}

func NewAuthService(repo ports.AuthRepository, tokens ports.TokenService) *AuthService {
	return &AuthService{repo: repo, tokens: tokens}
}

// Register creates an account with a bcrypt-hashed password and returns it
// together with a freshly issued token. The plaintext password is never stored.
func (s *AuthService) Register(ctx context.Context, username, email, password string) (*domain.User, string, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)

	if err := validateRegistration(username, email, password); err != nil {
		return nil, "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, "", err
	}

	token, err := s.tokens.Issue(created.ID, created.Role)
	if err != nil {
		return nil, "", err
	}
	return created, token, nil
}

// Login verifies credentials against the stored hash. An unknown email and a
// wrong password produce the same error so callers learn nothing about which
// part failed.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	if email == "" || password == "" {
		return nil, "", domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, "", domain.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, "", domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.Role)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func validateRegistration(username, email, password string) error {
	var fields []string
	if username == "" {
		fields = append(fields, "username is required")
	}
	if email == "" {
		fields = append(fields, "email is required")
	} else if !strings.Contains(email, "@") {
		fields = append(fields, "email must be a valid email")
	}
	if password == "" {
		fields = append(fields, "password is required")
	} else if len(password) < minPasswordLength {
		fields = append(fields, "password must be at least 6 characters")
	}
	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
