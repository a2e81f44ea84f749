package handler

import (
	"github.com/sweetshop/sweet-shop-api/internal/core/domain"
	"github.com/sweetshop/sweet-shop-api/internal/core/ports"
)

// --- Request → Service input ---

func toCreateInput(req createSweetRequest) ports.CreateSweetInput {
	input := ports.CreateSweetInput{
		Name:        req.Name,
		Category:    req.Category,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	}
	if req.Price != nil {
		input.Price = *req.Price
	}
	if req.Quantity != nil {
		input.Quantity = *req.Quantity
	}
	return input
}

func toPatch(req updateSweetRequest) domain.SweetPatch {
	return domain.SweetPatch{
		Name:        req.Name,
		Category:    req.Category,
		Price:       req.Price,
		Quantity:    req.Quantity,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	}
}
