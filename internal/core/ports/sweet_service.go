package ports

import (
	"context"

	"github.com/sweetshop/sweet-shop-api/internal/core/domain"
)

// CreateSweetInput carries the fields of a new sweet.
type CreateSweetInput struct {
	Name        string
	Category    string
	Price       float64
	Quantity    int
	Description string
	ImageURL    string
}

type SweetService interface {
	List(ctx context.Context) ([]*domain.Sweet, error)
	Search(ctx context.Context, filter SweetFilter) ([]*domain.Sweet, error)
	Create(ctx context.Context, input CreateSweetInput) (*domain.Sweet, error)
	Update(ctx context.Context, id string, patch domain.SweetPatch) (*domain.Sweet, error)
	Purchase(ctx context.Context, id string, quantity int) (*domain.Sweet, error)
	Restock(ctx context.Context, id string, quantity int) (*domain.Sweet, error)
	Delete(ctx context.Context, id string) error
}
