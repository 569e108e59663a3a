package orders

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"ecommerce-api/internal/apperr"
	"ecommerce-api/internal/models"
	"ecommerce-api/pkg/metrics"
)

type Service struct {
	repo Repository
	log  zerolog.Logger

	now func() time.Time
}

func NewService(repo Repository, log zerolog.Logger) *Service {
	return &Service{repo: repo, log: log, now: time.Now}
}

type ItemInput struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// CreateOrder is all-or-nothing: items are processed in the caller-supplied
// order inside one transaction, and any failure rolls every stock decrement
// back. Product rows are locked for update, so two concurrent orders against
// the same product serialize instead of both reading stale stock.
func (s *Service) CreateOrder(ctx context.Context, userID string, items []ItemInput) (*models.Order, error) {
	if len(items) == 0 {
		metrics.OrdersRejectedTotal.WithLabelValues("invalid_items").Inc()
		return nil, apperr.ErrInvalidItems
	}
	for _, it := range items {
		if it.Quantity <= 0 {
			metrics.OrdersRejectedTotal.WithLabelValues("invalid_items").Inc()
			return nil, apperr.ErrInvalidItems
		}
		if _, err := uuid.Parse(it.ProductID); err != nil {
			metrics.OrdersRejectedTotal.WithLabelValues("invalid_items").Inc()
			return nil, apperr.ErrInvalidItems
		}
	}

	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var (
		total float64
		lines []models.OrderItem
	)
	for _, it := range items {
		p, err := tx.ProductForUpdate(ctx, it.ProductID)
		if errors.Is(err, ErrNotFound) {
			metrics.OrdersRejectedTotal.WithLabelValues("product_not_found").Inc()
			return nil, apperr.ProductNotFound(it.ProductID)
		}
		if err != nil {
			return nil, fmt.Errorf("loading product %s: %w", it.ProductID, err)
		}
		if p.Stock < it.Quantity {
			metrics.OrdersRejectedTotal.WithLabelValues("insufficient_stock").Inc()
			return nil, apperr.InsufficientStock(p.Name)
		}
		if err := tx.DecrementStock(ctx, p.ID, it.Quantity); err != nil {
			if errors.Is(err, ErrStockConflict) {
				metrics.OrdersRejectedTotal.WithLabelValues("insufficient_stock").Inc()
				return nil, apperr.InsufficientStock(p.Name)
			}
			return nil, fmt.Errorf("decrementing stock for %s: %w", p.ID, err)
		}

		total += p.Price * float64(it.Quantity)
		lines = append(lines, models.OrderItem{
			ProductID:       p.ID,
			Quantity:        it.Quantity,
			PriceAtPurchase: p.Price,
			ProductName:     p.Name,
			ProductSKU:      p.SKU,
		})
	}

	now := s.now()
	o := &models.Order{
		ID:         uuid.NewString(),
		UserID:     userID,
		Items:      lines,
		TotalPrice: total,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := tx.InsertOrder(ctx, o); err != nil {
		return nil, fmt.Errorf("inserting order: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	metrics.OrdersCreatedTotal.Inc()
	s.log.Info().Str("order_id", o.ID).Str("user_id", userID).
		Float64("total", total).Int("items", len(lines)).Msg("order placed")
	return o, nil
}

func (s *Service) GetUserOrders(ctx context.Context, userID string) ([]models.Order, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *Service) GetAllOrders(ctx context.Context, role models.Role) ([]models.Order, error) {
	if role != models.RoleAdmin {
		return nil, apperr.ErrForbiddenAdmin
	}
	return s.repo.ListAll(ctx)
}

// DeleteOrderByID hard-deletes; stock is not restored (sold units stay sold).
func (s *Service) DeleteOrderByID(ctx context.Context, id string, role models.Role) error {
	if role != models.RoleAdmin {
		return apperr.ErrForbiddenAdmin
	}
	if _, err := uuid.Parse(id); err != nil {
		return apperr.ErrOrderMissing
	}
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return apperr.ErrOrderMissing
	}
	if err != nil {
		return fmt.Errorf("deleting order: %w", err)
	}
	return nil
}
