package ports

import (
	"context"

	"github.com/sweetshop/sweet-shop-api/internal/core/domain"
)

// SweetFilter is the compound search filter. All supplied criteria are ANDed;
// zero values are no-ops. Price bounds are inclusive.
type SweetFilter struct {
	Name     string
	Category string
	MinPrice *float64
	MaxPrice *float64
}

// SweetRepository defines the interface for sweet persistence.
//
// AdjustQuantity must be a single atomic conditional update: for a negative
// delta the store only applies the change when the current quantity covers it,
// so concurrent purchases can never drive stock below zero.
type SweetRepository interface {
	Insert(ctx context.Context, sweet *domain.Sweet) (*domain.Sweet, error)
	FindAll(ctx context.Context) ([]*domain.Sweet, error)
	FindByID(ctx context.Context, id string) (*domain.Sweet, error)
	FindByFilter(ctx context.Context, filter SweetFilter) ([]*domain.Sweet, error)
	UpdateByID(ctx context.Context, id string, patch domain.SweetPatch) (*domain.Sweet, error)
	DeleteByID(ctx context.Context, id string) error
	AdjustQuantity(ctx context.Context, id string, delta int) (*domain.Sweet, error)
}
