package handler

// --- Request types ---

// createSweetRequest uses a pointer for price so a present-but-zero price
// passes the required check; field bounds are enforced by the domain rules.
type createSweetRequest struct {
	Name        string   `json:"name"        validate:"required"`
	Category    string   `json:"category"    validate:"required"`
	Price       *float64 `json:"price"       validate:"required"`
	Quantity    *int     `json:"quantity"`
	Description string   `json:"description"`
	ImageURL    string   `json:"imageUrl"`
}

// updateSweetRequest is a partial update: nil fields are left untouched.
type updateSweetRequest struct {
	Name        *string  `json:"name"`
	Category    *string  `json:"category"`
	Price       *float64 `json:"price"`
	Quantity    *int     `json:"quantity"`
	Description *string  `json:"description"`
	ImageURL    *string  `json:"imageUrl"`
}

// purchaseRequest decrements stock; a missing quantity means 1.
type purchaseRequest struct {
	Quantity *int `json:"quantity"`
}

// restockRequest increments stock by a positive amount.
type restockRequest struct {
	Quantity int `json:"quantity"`
}
