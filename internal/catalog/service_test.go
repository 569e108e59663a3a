package catalog

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"ecommerce-api/internal/apperr"
	"ecommerce-api/internal/models"
)

type fakeRepo struct {
	products    map[string]models.Product
	skuExcludes []string
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{products: map[string]models.Product{}}
}

func (f *fakeRepo) Create(_ context.Context, p *models.Product) error {
	f.products[p.ID] = *p
	return nil
}

func (f *fakeRepo) GetByID(_ context.Context, id string) (*models.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := p
	return &cp, nil
}

func (f *fakeRepo) List(_ context.Context) ([]models.Product, error) {
	out := make([]models.Product, 0, len(f.products))
	for _, p := range f.products {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeRepo) Update(_ context.Context, p *models.Product) error {
	if _, ok := f.products[p.ID]; !ok {
		return ErrNotFound
	}
	f.products[p.ID] = *p
	return nil
}

func (f *fakeRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.products[id]; !ok {
		return ErrNotFound
	}
	delete(f.products, id)
	return nil
}

// SkuTaken mirrors the repository contract: empty excludeID means no
// exclusion, anything else must be a valid id because the column is uuid.
func (f *fakeRepo) SkuTaken(_ context.Context, sku, excludeID string) (bool, error) {
	f.skuExcludes = append(f.skuExcludes, excludeID)
	if excludeID != "" {
		if _, err := uuid.Parse(excludeID); err != nil {
			return false, fmt.Errorf("invalid exclusion id %q", excludeID)
		}
	}
	for _, p := range f.products {
		if p.SKU == sku {
			if excludeID != "" && p.ID == excludeID {
				continue
			}
			return true, nil
		}
	}
	return false, nil
}

const (
	ownerID = "11111111-1111-1111-1111-111111111111"
	otherID = "22222222-2222-2222-2222-222222222222"
)

func newTestService() (*Service, *fakeRepo) {
	repo := newFakeRepo()
	return NewService(repo), repo
}

func createWidget(t *testing.T, svc *Service) *models.Product {
	t.Helper()
	p, err := svc.CreateProduct(context.Background(), ownerID, CreateProductInput{
		Name: "Widget", Price: 10, Stock: 5, SKU: "SKU-9",
	})
	require.NoError(t, err)
	return p
}

func TestCreateProduct_MissingFields(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	cases := []CreateProductInput{
		{Price: 10, Stock: 5, SKU: "S"},
		{Name: "W", Stock: 5, SKU: "S"},
		{Name: "W", Price: 10, SKU: "S"},
		{Name: "W", Price: 10, Stock: 5},
	}
	for _, in := range cases {
		_, err := svc.CreateProduct(ctx, ownerID, in)
		require.True(t, apperr.IsKind(err, apperr.KindMissingFields), "input %+v", in)
	}
}

func TestCreateProduct_SkuExists(t *testing.T) {
	svc, _ := newTestService()
	createWidget(t, svc)

	_, err := svc.CreateProduct(context.Background(), otherID, CreateProductInput{
		Name: "Clone", Price: 1, Stock: 1, SKU: "SKU-9",
	})
	require.True(t, apperr.IsKind(err, apperr.KindSkuExists))
}

func TestCreateProduct_SetsOwner(t *testing.T) {
	svc, repo := newTestService()
	p := createWidget(t, svc)

	stored := repo.products[p.ID]
	require.Equal(t, ownerID, stored.OwnerID)
	require.Equal(t, 5, stored.Stock)
	require.Equal(t, 10.0, stored.Price)
}

func TestGetProductByID(t *testing.T) {
	svc, _ := newTestService()
	p := createWidget(t, svc)
	ctx := context.Background()

	got, err := svc.GetProductByID(ctx, p.ID)
	require.NoError(t, err)
	require.Equal(t, p.ID, got.ID)

	_, err = svc.GetProductByID(ctx, "not-a-uuid")
	require.True(t, apperr.IsKind(err, apperr.KindInvalidID))

	_, err = svc.GetProductByID(ctx, uuid.NewString())
	require.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func strp(s string) *string   { return &s }
func f64p(f float64) *float64 { return &f }
func intp(n int) *int         { return &n }

func TestUpdateProduct_Unauthorized(t *testing.T) {
	svc, repo := newTestService()
	p := createWidget(t, svc)

	_, err := svc.UpdateProduct(context.Background(), p.ID, otherID, models.RoleUser,
		models.ProductPatch{Price: f64p(99)})
	require.True(t, apperr.IsKind(err, apperr.KindUnauthorized))

	// product left unmodified
	require.Equal(t, 10.0, repo.products[p.ID].Price)
}

func TestUpdateProduct_PartialPatch(t *testing.T) {
	svc, _ := newTestService()
	p := createWidget(t, svc)

	got, err := svc.UpdateProduct(context.Background(), p.ID, ownerID, models.RoleUser,
		models.ProductPatch{Price: f64p(12), Description: strp("shiny")})
	require.NoError(t, err)

	// only patched fields changed
	require.Equal(t, 12.0, got.Price)
	require.Equal(t, "shiny", got.Description)
	require.Equal(t, "Widget", got.Name)
	require.Equal(t, 5, got.Stock)
	require.Equal(t, "SKU-9", got.SKU)
}

func TestUpdateProduct_AdminBypassesOwnership(t *testing.T) {
	svc, _ := newTestService()
	p := createWidget(t, svc)

	got, err := svc.UpdateProduct(context.Background(), p.ID, otherID, models.RoleAdmin,
		models.ProductPatch{Stock: intp(7)})
	require.NoError(t, err)
	require.Equal(t, 7, got.Stock)
}

func TestSkuCheck_ExclusionArguments(t *testing.T) {
	svc, repo := newTestService()
	p := createWidget(t, svc)

	_, err := svc.UpdateProduct(context.Background(), p.ID, ownerID, models.RoleUser,
		models.ProductPatch{SKU: strp("SKU-42")})
	require.NoError(t, err)

	// create runs the check with no exclusion, update excludes the product
	// itself; neither may hand the repository a non-id exclusion value
	require.Equal(t, []string{"", p.ID}, repo.skuExcludes)
}

func TestUpdateProduct_SkuCollision(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	p := createWidget(t, svc)
	_, err := svc.CreateProduct(ctx, ownerID, CreateProductInput{
		Name: "Other", Price: 1, Stock: 1, SKU: "SKU-10",
	})
	require.NoError(t, err)

	_, err = svc.UpdateProduct(ctx, p.ID, ownerID, models.RoleUser,
		models.ProductPatch{SKU: strp("SKU-10")})
	require.True(t, apperr.IsKind(err, apperr.KindSkuExists))

	// re-submitting the current sku is not a collision
	_, err = svc.UpdateProduct(ctx, p.ID, ownerID, models.RoleUser,
		models.ProductPatch{SKU: strp("SKU-9")})
	require.NoError(t, err)
}

func TestUpdateProduct_InvalidAndMissing(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.UpdateProduct(ctx, "nope", ownerID, models.RoleUser, models.ProductPatch{})
	require.True(t, apperr.IsKind(err, apperr.KindInvalidID))

	_, err = svc.UpdateProduct(ctx, uuid.NewString(), ownerID, models.RoleUser, models.ProductPatch{})
	require.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestDeleteProduct(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()
	p := createWidget(t, svc)

	err := svc.DeleteProduct(ctx, p.ID, otherID, models.RoleUser)
	require.True(t, apperr.IsKind(err, apperr.KindUnauthorized))
	require.Contains(t, repo.products, p.ID)

	require.NoError(t, svc.DeleteProduct(ctx, p.ID, ownerID, models.RoleUser))
	require.NotContains(t, repo.products, p.ID)
}
