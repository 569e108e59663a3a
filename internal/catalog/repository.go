package catalog

import (
	"context"
	"errors"

	"ecommerce-api/internal/models"
)

var ErrNotFound = errors.New("not found")

type Repository interface {
	Create(ctx context.Context, p *models.Product) error
	// GetByID and List join the owner's name/email for display.
	GetByID(ctx context.Context, id string) (*models.Product, error)
	List(ctx context.Context) ([]models.Product, error)
	Update(ctx context.Context, p *models.Product) error
	Delete(ctx context.Context, id string) error
	// SkuTaken reports whether sku belongs to a product other than excludeID.
	// An empty excludeID means no exclusion (the create path); a non-empty
	// excludeID must be a valid product id.
	SkuTaken(ctx context.Context, sku, excludeID string) (bool, error)
}
