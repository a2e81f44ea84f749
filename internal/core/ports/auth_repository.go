package ports

import (
	"context"

	"github.com/sweetshop/sweet-shop-api/internal/core/domain"
)

// AuthRepository defines the interface for account persistence.
type AuthRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
}
