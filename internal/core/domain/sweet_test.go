package domain

import (
	"errors"
	"strings"
	"testing"
)

func TestSweetValidate_Valid(t *testing.T) {
	s := &Sweet{Name: "Chocolate Bar", Category: "Chocolate", Price: 2.99, Quantity: 10}
	if err := s.Validate(); err != nil {
		t.Fatalf("expected valid sweet, got %v", err)
	}
}

func TestSweetValidate_CollectsEveryViolation(t *testing.T) {
	s := &Sweet{Name: "x", Category: "Pastry", Price: -5, Quantity: -1}

	err := s.Validate()
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(ve.Fields) != 4 {
		t.Fatalf("expected 4 violations, got %d: %v", len(ve.Fields), ve.Fields)
	}

	// Stable order: name, category, price, quantity.
	wants := []string{"name", "category", "price", "quantity"}
	for i, want := range wants {
		if !strings.HasPrefix(ve.Fields[i], want) {
			t.Fatalf("violation %d: expected %q field, got %q", i, want, ve.Fields[i])
		}
	}
}

func TestSweetValidate_MissingRequiredFields(t *testing.T) {
	s := &Sweet{}
	err := s.Validate()
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	msg := ve.Error()
	if !strings.Contains(msg, "name is required") || !strings.Contains(msg, "category is required") {
		t.Fatalf("expected required-field messages, got %q", msg)
	}
}

func TestSweetValidate_NameLengthCountsRunes(t *testing.T) {
	// A single multibyte character is still one character short.
	s := &Sweet{Name: "é", Category: "Other", Price: 1}
	err := s.Validate()
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError for one-rune name, got %v", err)
	}
	if !strings.Contains(ve.Error(), "at least 2 characters") {
		t.Fatalf("unexpected message: %q", ve.Error())
	}

	s.Name = "éé"
	if err := s.Validate(); err != nil {
		t.Fatalf("two-rune name must be valid, got %v", err)
	}
}

func TestSweetValidate_ZeroPriceIsValid(t *testing.T) {
	s := &Sweet{Name: "Free Sample", Category: "Other", Price: 0}
	if err := s.Validate(); err != nil {
		t.Fatalf("price 0 must be valid, got %v", err)
	}
}

func TestSweetPatchValidate_OnlySuppliedFields(t *testing.T) {
	bad := "Pastry"
	p := &SweetPatch{Category: &bad}

	err := p.Validate()
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(ve.Fields) != 1 || !strings.Contains(ve.Fields[0], "category") {
		t.Fatalf("expected single category violation, got %v", ve.Fields)
	}

	if err := (&SweetPatch{}).Validate(); err != nil {
		t.Fatalf("empty patch must be valid, got %v", err)
	}
}

func TestValidCategory(t *testing.T) {
	for _, c := range Categories {
		if !ValidCategory(c) {
			t.Fatalf("%q should be valid", c)
		}
	}
	if ValidCategory("chocolate") {
		t.Fatalf("category match must be case-sensitive")
	}
}

func TestRoleAllowed(t *testing.T) {
	if !RoleAllowed(RoleAdmin, RoleAdmin) {
		t.Fatalf("admin should be allowed")
	}
	if RoleAllowed(RoleUser, RoleAdmin) {
		t.Fatalf("user should not pass an admin-only gate")
	}
	if RoleAllowed("", RoleUser, RoleAdmin) {
		t.Fatalf("empty role should never be allowed")
	}
}
