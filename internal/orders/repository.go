package orders

import (
	"context"
	"errors"

	"ecommerce-api/internal/models"
)

var (
	ErrNotFound = errors.New("not found")
	// ErrStockConflict means the conditional decrement guard fired: the row
	// no longer had enough stock at write time.
	ErrStockConflict = errors.New("stock conflict")
)

// Tx is the atomic scope of one order placement. Everything inside either
// commits together or takes no effect.
type Tx interface {
	// ProductForUpdate loads the product and locks its row until the
	// transaction ends, serializing concurrent orders on the same product.
	ProductForUpdate(ctx context.Context, id string) (*models.Product, error)
	// DecrementStock subtracts qty, guarded by stock >= qty.
	DecrementStock(ctx context.Context, productID string, qty int) error
	InsertOrder(ctx context.Context, o *models.Order) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

type Repository interface {
	Begin(ctx context.Context) (Tx, error)
	// ListByUser returns the user's orders newest first, product details resolved.
	ListByUser(ctx context.Context, userID string) ([]models.Order, error)
	// ListAll returns every order newest first, user and product details resolved.
	ListAll(ctx context.Context) ([]models.Order, error)
	Delete(ctx context.Context, id string) error
}
