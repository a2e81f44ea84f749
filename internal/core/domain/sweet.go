package domain

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"
)

// Categories is the closed set of valid sweet categories.
var Categories = []string{"Chocolate", "Candy", "Gummy", "Lollipop", "Marshmallow", "Toffee", "Other"}

var ErrSweetNotFound = errors.New("sweet not found")
var ErrInsufficientStock = errors.New("insufficient stock")

// ValidationError carries every field rule violated by an input, in a stable
// order, so clients see the full list rather than only the first failure.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Fields, "; ")
}

// Sweet is the core inventory aggregate.
type Sweet struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Price       float64   `json:"price"`
	Quantity    int       `json:"quantity"`
	Description string    `json:"description,omitempty"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ValidCategory reports whether c is a member of the category enum.
func ValidCategory(c string) bool {
	for _, v := range Categories {
		if v == c {
			return true
		}
	}
	return false
}

// Validate checks every field rule and returns a *ValidationError listing all
// violations, or nil when the sweet is valid. Order: name, category, price,
// quantity.
func (s *Sweet) Validate() error {
	var fields []string

	if v := nameViolation(s.Name); v != "" {
		fields = append(fields, v)
	}
	if v := categoryViolation(s.Category); v != "" {
		fields = append(fields, v)
	}
	if s.Price < 0 {
		fields = append(fields, "price cannot be negative")
	}
	if s.Quantity < 0 {
		fields = append(fields, "quantity cannot be negative")
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// SweetPatch is a partial update. Nil fields are left untouched; non-nil
// fields are revalidated with the same rules as creation.
type SweetPatch struct {
	Name        *string
	Category    *string
	Price       *float64
	Quantity    *int
	Description *string
	ImageURL    *string
}

// Validate checks only the fields present in the patch.
func (p *SweetPatch) Validate() error {
	var fields []string

	if p.Name != nil {
		if v := nameViolation(*p.Name); v != "" {
			fields = append(fields, v)
		}
	}
	if p.Category != nil {
		if v := categoryViolation(*p.Category); v != "" {
			fields = append(fields, v)
		}
	}
	if p.Price != nil && *p.Price < 0 {
		fields = append(fields, "price cannot be negative")
	}
	if p.Quantity != nil && *p.Quantity < 0 {
		fields = append(fields, "quantity cannot be negative")
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

func nameViolation(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "name is required"
	}
	if utf8.RuneCountInString(name) < 2 {
		return "name must be at least 2 characters"
	}
	return ""
}

func categoryViolation(category string) string {
	category = strings.TrimSpace(category)
	if category == "" {
		return "category is required"
	}
	if !ValidCategory(category) {
		return "category must be one of: " + strings.Join(Categories, ", ")
	}
	return ""
}
