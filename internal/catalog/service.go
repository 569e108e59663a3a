package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"ecommerce-api/internal/apperr"
	"ecommerce-api/internal/models"
)

type Service struct {
	repo Repository

	now func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

type CreateProductInput struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	SKU         string  `json:"sku"`
}

func (s *Service) CreateProduct(ctx context.Context, ownerID string, in CreateProductInput) (*models.Product, error) {
	if in.Name == "" || in.Price <= 0 || in.Stock <= 0 || in.SKU == "" {
		return nil, apperr.ErrMissingFields
	}
	taken, err := s.repo.SkuTaken(ctx, in.SKU, "")
	if err != nil {
		return nil, fmt.Errorf("checking sku: %w", err)
	}
	if taken {
		return nil, apperr.ErrSkuExists
	}

	now := s.now()
	p := &models.Product{
		ID:          uuid.NewString(),
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Stock:       in.Stock,
		SKU:         in.SKU,
		OwnerID:     ownerID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("creating product: %w", err)
	}
	return p, nil
}

func (s *Service) GetProducts(ctx context.Context) ([]models.Product, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetProductByID(ctx context.Context, id string) (*models.Product, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, apperr.ErrInvalidProductID
	}
	p, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return nil, apperr.ErrProductMissing
	}
	if err != nil {
		return nil, fmt.Errorf("loading product: %w", err)
	}
	return p, nil
}

// UpdateProduct applies a partial patch. Mutation rights are owner-or-admin.
func (s *Service) UpdateProduct(ctx context.Context, id, requesterID string, role models.Role, patch models.ProductPatch) (*models.Product, error) {
	p, err := s.load(ctx, id, requesterID, role)
	if err != nil {
		return nil, err
	}

	if patch.SKU != nil && *patch.SKU != p.SKU {
		taken, err := s.repo.SkuTaken(ctx, *patch.SKU, p.ID)
		if err != nil {
			return nil, fmt.Errorf("checking sku: %w", err)
		}
		if taken {
			return nil, apperr.ErrSkuExists
		}
	}

	patch.Apply(p)
	p.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("updating product: %w", err)
	}
	return p, nil
}

func (s *Service) DeleteProduct(ctx context.Context, id, requesterID string, role models.Role) error {
	p, err := s.load(ctx, id, requesterID, role)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, p.ID); err != nil {
		return fmt.Errorf("deleting product: %w", err)
	}
	return nil
}

func (s *Service) load(ctx context.Context, id, requesterID string, role models.Role) (*models.Product, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, apperr.ErrInvalidProductID
	}
	p, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return nil, apperr.ErrProductMissing
	}
	if err != nil {
		return nil, fmt.Errorf("loading product: %w", err)
	}
	if p.OwnerID != requesterID && role != models.RoleAdmin {
		return nil, apperr.ErrUnauthorized
	}
	return p, nil
}
