package ports

import "github.com/sweetshop/sweet-shop-api/internal/core/domain"

// TokenService issues and verifies self-contained bearer tokens.
type TokenService interface {
	Issue(identity, role string) (string, error)
	Verify(token string) (*domain.Principal, error)
}
