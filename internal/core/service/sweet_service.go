package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/sweetshop/sweet-shop-api/internal/core/domain"
	"github.com/sweetshop/sweet-shop-api/internal/core/ports"
)

// SweetService implements the inventory operations over a SweetRepository.
type SweetService struct {
	repo   ports.SweetRepository
	logger zerolog.Logger
}

func NewSweetService(repo ports.SweetRepository, logger zerolog.Logger) *SweetService {
	return &SweetService{repo: repo, logger: logger}
}

// List returns all sweets, newest first.
func (s *SweetService) List(ctx context.Context) ([]*domain.Sweet, error) {
	return s.repo.FindAll(ctx)
}

// Search applies the compound filter, newest first. Absent criteria are no-ops.
func (s *SweetService) Search(ctx context.Context, filter ports.SweetFilter) ([]*domain.Sweet, error) {
	return s.repo.FindByFilter(ctx, filter)
}

// Create validates and persists a new sweet. Validation failures are reported
// for every violated field; nothing is persisted on failure.
func (s *SweetService) Create(ctx context.Context, input ports.CreateSweetInput) (*domain.Sweet, error) {
	now := time.Now().UTC()
	sweet := &domain.Sweet{
		Name:        strings.TrimSpace(input.Name),
		Category:    strings.TrimSpace(input.Category),
		Price:       input.Price,
		Quantity:    input.Quantity,
		Description: strings.TrimSpace(input.Description),
		ImageURL:    strings.TrimSpace(input.ImageURL),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := sweet.Validate(); err != nil {
		return nil, err
	}

	created, err := s.repo.Insert(ctx, sweet)
	if err != nil {
		s.logger.Error().Err(err).Str("name", sweet.Name).Msg("failed to create sweet")
		return nil, err
	}

	s.logger.Info().Str("sweet_id", created.ID).Str("name", created.Name).Msg("sweet created")
	return created, nil
}

// Update revalidates the supplied fields and applies them in a single store
// update, preserving unspecified fields.
func (s *SweetService) Update(ctx context.Context, id string, patch domain.SweetPatch) (*domain.Sweet, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.repo.UpdateByID(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("sweet_id", id).Msg("sweet updated")
	return updated, nil
}

// Purchase atomically decrements stock by quantity, rejecting the purchase
// when it would drive the quantity below zero.
func (s *SweetService) Purchase(ctx context.Context, id string, quantity int) (*domain.Sweet, error) {
	if quantity < 1 {
		return nil, &domain.ValidationError{Fields: []string{"quantity must be a positive number"}}
	}

	updated, err := s.repo.AdjustQuantity(ctx, id, -quantity)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("sweet_id", id).Int("quantity", quantity).Int("remaining", updated.Quantity).Msg("sweet purchased")
	return updated, nil
}

// Restock atomically increments stock by a positive quantity.
func (s *SweetService) Restock(ctx context.Context, id string, quantity int) (*domain.Sweet, error) {
	if quantity < 1 {
		return nil, &domain.ValidationError{Fields: []string{"quantity must be a positive number"}}
	}

	updated, err := s.repo.AdjustQuantity(ctx, id, quantity)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("sweet_id", id).Int("quantity", quantity).Int("stock", updated.Quantity).Msg("sweet restocked")
	return updated, nil
}

// Delete removes a sweet by id.
func (s *SweetService) Delete(ctx context.Context, id string) error {
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Str("sweet_id", id).Msg("sweet deleted")
	return nil
}
