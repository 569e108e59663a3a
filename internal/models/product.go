package models

import "time"

type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Price       float64   `json:"price"`
	Stock       int       `json:"stock"`
	SKU         string    `json:"sku"`
	OwnerID     string    `json:"owner_id"`
	// Owner display fields, joined on read paths only.
	OwnerName  string    `json:"owner_name,omitempty"`
	OwnerEmail string    `json:"owner_email,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ProductPatch is a partial update. Only non-nil fields are applied; unknown
// JSON keys are rejected at decode time.
type ProductPatch struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Stock       *int     `json:"stock"`
	SKU         *string  `json:"sku"`
}

// Apply merges the patch into p, enumerating the allowed mutable fields.
func (patch ProductPatch) Apply(p *Product) {
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.Stock != nil {
		p.Stock = *patch.Stock
	}
	if patch.SKU != nil {
		p.SKU = *patch.SKU
	}
}

// Empty reports whether the patch changes nothing.
func (patch ProductPatch) Empty() bool {
	return patch.Name == nil && patch.Description == nil && patch.Price == nil &&
		patch.Stock == nil && patch.SKU == nil
}
