package orders

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"ecommerce-api/internal/models"
)

type OrdersPG struct{ DB *pgxpool.Pool }

func (r *OrdersPG) Begin(ctx context.Context) (Tx, error) {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return nil, err
	}
	return &txPG{tx: tx}, nil
}

type txPG struct{ tx pgx.Tx }

func (t *txPG) ProductForUpdate(ctx context.Context, id string) (*models.Product, error) {
	var p models.Product
	err := t.tx.QueryRow(ctx, `
		select id, name, price, stock, sku
		from products
		where id = $1
		for update
	`, id).Scan(&p.ID, &p.Name, &p.Price, &p.Stock, &p.SKU)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (t *txPG) DecrementStock(ctx context.Context, productID string, qty int) error {
	ct, err := t.tx.Exec(ctx, `
		update products
		set stock = stock - $2,
		    updated_at = now()
		where id = $1
		  and stock >= $2
	`, productID, qty)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return ErrStockConflict
	}
	return nil
}

func (t *txPG) InsertOrder(ctx context.Context, o *models.Order) error {
	_, err := t.tx.Exec(ctx, `
		insert into orders(id, user_id, total_price, created_at, updated_at)
		values ($1, $2, $3, $4, $5)
	`, o.ID, o.UserID, o.TotalPrice, o.CreatedAt, o.UpdatedAt)
	if err != nil {
		return err
	}
	for _, it := range o.Items {
		_, err = t.tx.Exec(ctx, `
			insert into order_items(order_id, product_id, quantity, price_at_purchase)
			values ($1, $2, $3, $4)
		`, o.ID, it.ProductID, it.Quantity, it.PriceAtPurchase)
		if err != nil {
			return err
		}
	}
	return nil
}

func (t *txPG) Commit(ctx context.Context) error   { return t.tx.Commit(ctx) }
func (t *txPG) Rollback(ctx context.Context) error { return t.tx.Rollback(ctx) }

const orderSelect = `
	select o.id, o.user_id, o.total_price, o.created_at, o.updated_at,
	       i.product_id, i.quantity, i.price_at_purchase,
	       coalesce(p.name, ''), coalesce(p.sku, '')
	from orders o
	join order_items i on i.order_id = o.id
	left join products p on p.id = i.product_id
`

func (r *OrdersPG) ListByUser(ctx context.Context, userID string) ([]models.Order, error) {
	rows, err := r.DB.Query(ctx, orderSelect+`
		where o.user_id = $1
		order by o.created_at desc, o.id
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectOrders(rows, false)
}

func (r *OrdersPG) ListAll(ctx context.Context) ([]models.Order, error) {
	rows, err := r.DB.Query(ctx, `
		select o.id, o.user_id, o.total_price, o.created_at, o.updated_at,
		       i.product_id, i.quantity, i.price_at_purchase,
		       coalesce(p.name, ''), coalesce(p.sku, ''),
		       u.name, u.email
		from orders o
		join order_items i on i.order_id = o.id
		left join products p on p.id = i.product_id
		join users u on u.id = o.user_id
		order by o.created_at desc, o.id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectOrders(rows, true)
}

// collectOrders groups the flat join rows into orders; rows for one order are
// contiguous because of the (created_at, id) sort.
func collectOrders(rows pgx.Rows, withUser bool) ([]models.Order, error) {
	var out []models.Order
	for rows.Next() {
		var (
			o  models.Order
			it models.OrderItem
		)
		dest := []any{
			&o.ID, &o.UserID, &o.TotalPrice, &o.CreatedAt, &o.UpdatedAt,
			&it.ProductID, &it.Quantity, &it.PriceAtPurchase,
			&it.ProductName, &it.ProductSKU,
		}
		if withUser {
			dest = append(dest, &o.UserName, &o.UserEmail)
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}
		if n := len(out); n > 0 && out[n-1].ID == o.ID {
			out[n-1].Items = append(out[n-1].Items, it)
			continue
		}
		o.Items = []models.OrderItem{it}
		out = append(out, o)
	}
	return out, rows.Err()
}

func (r *OrdersPG) Delete(ctx context.Context, id string) error {
	// order_items go with the order via on delete cascade.
	ct, err := r.DB.Exec(ctx, `delete from orders where id = $1`, id)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
