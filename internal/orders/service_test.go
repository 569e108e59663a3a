package orders

import (
	"context"
	"sort"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"ecommerce-api/internal/apperr"
	"ecommerce-api/internal/models"
)

// fakeRepo mimics the transactional contract of the Postgres repository: a
// transaction sees its own pending decrements, holds the lock until it ends,
// and only Commit makes writes visible.
type fakeRepo struct {
	mu       sync.Mutex
	products map[string]models.Product
	orders   []models.Order
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{products: map[string]models.Product{}}
}

func (r *fakeRepo) addProduct(p models.Product) {
	r.products[p.ID] = p
}

func (r *fakeRepo) Begin(_ context.Context) (Tx, error) {
	r.mu.Lock()
	return &fakeTx{repo: r, decremented: map[string]int{}}, nil
}

func (r *fakeRepo) ListByUser(_ context.Context, userID string) ([]models.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Order
	for _, o := range r.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	sortNewestFirst(out)
	return out, nil
}

func (r *fakeRepo) ListAll(_ context.Context) ([]models.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := append([]models.Order(nil), r.orders...)
	sortNewestFirst(out)
	return out, nil
}

func sortNewestFirst(orders []models.Order) {
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
}

func (r *fakeRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, o := range r.orders {
		if o.ID == id {
			r.orders = append(r.orders[:i], r.orders[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

type fakeTx struct {
	repo        *fakeRepo
	decremented map[string]int
	order       *models.Order
	done        bool
}

func (t *fakeTx) ProductForUpdate(_ context.Context, id string) (*models.Product, error) {
	p, ok := t.repo.products[id]
	if !ok {
		return nil, ErrNotFound
	}
	p.Stock -= t.decremented[id]
	return &p, nil
}

func (t *fakeTx) DecrementStock(_ context.Context, productID string, qty int) error {
	p, ok := t.repo.products[productID]
	if !ok {
		return ErrNotFound
	}
	if p.Stock-t.decremented[productID] < qty {
		return ErrStockConflict
	}
	t.decremented[productID] += qty
	return nil
}

func (t *fakeTx) InsertOrder(_ context.Context, o *models.Order) error {
	t.order = o
	return nil
}

func (t *fakeTx) Commit(_ context.Context) error {
	for id, qty := range t.decremented {
		p := t.repo.products[id]
		p.Stock -= qty
		t.repo.products[id] = p
	}
	if t.order != nil {
		t.repo.orders = append(t.repo.orders, *t.order)
	}
	t.done = true
	t.repo.mu.Unlock()
	return nil
}

func (t *fakeTx) Rollback(_ context.Context) error {
	if t.done {
		return nil
	}
	t.done = true
	t.repo.mu.Unlock()
	return nil
}

const buyerID = "buyer-1"

func newTestService() (*Service, *fakeRepo) {
	repo := newFakeRepo()
	return NewService(repo, zerolog.Nop()), repo
}

func product(name string, price float64, stock int) models.Product {
	return models.Product{ID: uuid.NewString(), Name: name, Price: price, Stock: stock, SKU: "SKU-" + name}
}

func TestCreateOrder_InvalidItems(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()
	p := product("Widget", 10, 5)
	repo.addProduct(p)

	cases := [][]ItemInput{
		nil,
		{},
		{{ProductID: p.ID, Quantity: 0}},
		{{ProductID: p.ID, Quantity: -1}},
		{{ProductID: "not-a-uuid", Quantity: 1}},
	}
	for _, items := range cases {
		_, err := svc.CreateOrder(ctx, buyerID, items)
		require.True(t, apperr.IsKind(err, apperr.KindInvalidItems), "items %+v", items)
	}
}

func TestCreateOrder_ProductNotFound(t *testing.T) {
	svc, _ := newTestService()
	missing := uuid.NewString()

	_, err := svc.CreateOrder(context.Background(), buyerID, []ItemInput{
		{ProductID: missing, Quantity: 1},
	})
	e, ok := apperr.As(err)
	require.True(t, ok)
	require.Equal(t, apperr.KindProductNotFound, e.Kind)
	require.Equal(t, missing, e.Data["id"])
}

func TestCreateOrder_InsufficientStock(t *testing.T) {
	svc, repo := newTestService()
	p := product("Widget", 10, 2)
	repo.addProduct(p)

	_, err := svc.CreateOrder(context.Background(), buyerID, []ItemInput{
		{ProductID: p.ID, Quantity: 3},
	})
	e, ok := apperr.As(err)
	require.True(t, ok)
	require.Equal(t, apperr.KindInsufficientStock, e.Kind)
	require.Equal(t, "Widget", e.Data["product"])

	// nothing was deducted
	require.Equal(t, 2, repo.products[p.ID].Stock)
}

func TestCreateOrder_SampleScenario(t *testing.T) {
	svc, repo := newTestService()
	p := product("Widget", 10, 5)
	repo.addProduct(p)

	o, err := svc.CreateOrder(context.Background(), buyerID, []ItemInput{
		{ProductID: p.ID, Quantity: 2},
	})
	require.NoError(t, err)

	require.Equal(t, 20.0, o.TotalPrice)
	require.Len(t, o.Items, 1)
	require.Equal(t, 2, o.Items[0].Quantity)
	require.Equal(t, 10.0, o.Items[0].PriceAtPurchase)
	require.Equal(t, 3, repo.products[p.ID].Stock)
	require.Len(t, repo.orders, 1)
}

func TestCreateOrder_PriceFrozenAtPurchase(t *testing.T) {
	svc, repo := newTestService()
	p := product("Widget", 10, 5)
	repo.addProduct(p)

	o, err := svc.CreateOrder(context.Background(), buyerID, []ItemInput{
		{ProductID: p.ID, Quantity: 1},
	})
	require.NoError(t, err)

	// a later price change does not touch the recorded line item
	changed := repo.products[p.ID]
	changed.Price = 99
	repo.products[p.ID] = changed

	require.Equal(t, 10.0, o.Items[0].PriceAtPurchase)
	require.Equal(t, 10.0, repo.orders[0].Items[0].PriceAtPurchase)
}

func TestCreateOrder_AllOrNothing(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()
	a := product("Alpha", 5, 10)
	b := product("Beta", 7, 1)
	repo.addProduct(a)
	repo.addProduct(b)

	_, err := svc.CreateOrder(ctx, buyerID, []ItemInput{
		{ProductID: a.ID, Quantity: 4}, // would succeed
		{ProductID: b.ID, Quantity: 2}, // insufficient
	})
	e, ok := apperr.As(err)
	require.True(t, ok)
	require.Equal(t, apperr.KindInsufficientStock, e.Kind)
	require.Equal(t, "Beta", e.Data["product"])

	// the first item's in-transaction decrement was rolled back
	require.Equal(t, 10, repo.products[a.ID].Stock)
	require.Equal(t, 1, repo.products[b.ID].Stock)
	require.Empty(t, repo.orders)
}

func TestCreateOrder_FirstFailingItemWins(t *testing.T) {
	svc, repo := newTestService()
	a := product("Alpha", 5, 0)
	b := product("Beta", 7, 0)
	repo.addProduct(a)
	repo.addProduct(b)

	// items are processed in the caller-supplied order, so Alpha's failure
	// surfaces even though Beta would fail too
	_, err := svc.CreateOrder(context.Background(), buyerID, []ItemInput{
		{ProductID: a.ID, Quantity: 1},
		{ProductID: b.ID, Quantity: 1},
	})
	e, ok := apperr.As(err)
	require.True(t, ok)
	require.Equal(t, "Alpha", e.Data["product"])
}

func TestCreateOrder_ConcurrentOrdersDoNotOversell(t *testing.T) {
	svc, repo := newTestService()
	p := product("Widget", 10, 5)
	repo.addProduct(p)

	errs := make(chan error, 2)
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.CreateOrder(context.Background(), buyerID, []ItemInput{
				{ProductID: p.ID, Quantity: 3},
			})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	var ok, insufficient int
	for err := range errs {
		if err == nil {
			ok++
			continue
		}
		require.True(t, apperr.IsKind(err, apperr.KindInsufficientStock))
		insufficient++
	}
	require.Equal(t, 1, ok, "exactly one order must succeed")
	require.Equal(t, 1, insufficient)
	require.Equal(t, 2, repo.products[p.ID].Stock, "stock must end at 2, never negative")
}

func TestGetAllOrders_AdminGate(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.GetAllOrders(ctx, models.RoleUser)
	require.True(t, apperr.IsKind(err, apperr.KindForbiddenAdmin))

	out, err := svc.GetAllOrders(ctx, models.RoleAdmin)
	require.NoError(t, err)
	require.Empty(t, out)
}

func TestDeleteOrderByID(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()
	p := product("Widget", 10, 5)
	repo.addProduct(p)

	o, err := svc.CreateOrder(ctx, buyerID, []ItemInput{{ProductID: p.ID, Quantity: 2}})
	require.NoError(t, err)

	err = svc.DeleteOrderByID(ctx, o.ID, models.RoleUser)
	require.True(t, apperr.IsKind(err, apperr.KindForbiddenAdmin))

	err = svc.DeleteOrderByID(ctx, uuid.NewString(), models.RoleAdmin)
	require.True(t, apperr.IsKind(err, apperr.KindNotFound))

	require.NoError(t, svc.DeleteOrderByID(ctx, o.ID, models.RoleAdmin))
	require.Empty(t, repo.orders)
	// deleting an order does not restore stock
	require.Equal(t, 3, repo.products[p.ID].Stock)
}

func TestGetUserOrders_NewestFirst(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()
	p := product("Widget", 10, 100)
	repo.addProduct(p)

	for i := 0; i < 3; i++ {
		_, err := svc.CreateOrder(ctx, buyerID, []ItemInput{{ProductID: p.ID, Quantity: 1}})
		require.NoError(t, err)
	}
	// somebody else's order is not included
	_, err := svc.CreateOrder(ctx, "other-buyer", []ItemInput{{ProductID: p.ID, Quantity: 1}})
	require.NoError(t, err)

	out, err := svc.GetUserOrders(ctx, buyerID)
	require.NoError(t, err)
	require.Len(t, out, 3)
	for i := 1; i < len(out); i++ {
		require.False(t, out[i].CreatedAt.After(out[i-1].CreatedAt))
	}
}
