package catalog

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"ecommerce-api/internal/models"
)

type ProductsPG struct{ DB *pgxpool.Pool }

func (r *ProductsPG) Create(ctx context.Context, p *models.Product) error {
	_, err := r.DB.Exec(ctx, `
		insert into products(id, name, description, price, stock, sku, owner_id, created_at, updated_at)
		values ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, p.ID, p.Name, nullable(p.Description), p.Price, p.Stock, p.SKU, p.OwnerID, p.CreatedAt, p.UpdatedAt)
	return err
}

const productSelect = `
	select p.id, p.name, coalesce(p.description, ''), p.price, p.stock, p.sku,
	       p.owner_id, u.name, u.email, p.created_at, p.updated_at
	from products p
	join users u on u.id = p.owner_id
`

func scanProduct(row pgx.Row, p *models.Product) error {
	return row.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Stock, &p.SKU,
		&p.OwnerID, &p.OwnerName, &p.OwnerEmail, &p.CreatedAt, &p.UpdatedAt)
}

func (r *ProductsPG) GetByID(ctx context.Context, id string) (*models.Product, error) {
	var p models.Product
	err := scanProduct(r.DB.QueryRow(ctx, productSelect+`where p.id = $1`, id), &p)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProductsPG) List(ctx context.Context) ([]models.Product, error) {
	rows, err := r.DB.Query(ctx, productSelect+`order by p.created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Product
	for rows.Next() {
		var p models.Product
		if err := scanProduct(rows, &p); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *ProductsPG) Update(ctx context.Context, p *models.Product) error {
	ct, err := r.DB.Exec(ctx, `
		update products
		set name = $2,
		    description = $3,
		    price = $4,
		    stock = $5,
		    sku = $6,
		    updated_at = now()
		where id = $1
	`, p.ID, p.Name, nullable(p.Description), p.Price, p.Stock, p.SKU)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *ProductsPG) Delete(ctx context.Context, id string) error {
	ct, err := r.DB.Exec(ctx, `delete from products where id = $1`, id)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// SkuTaken with an empty excludeID must not touch the uuid column: products.id
// is uuid and binding "" to it fails at the server, so the create path runs a
// query with no exclusion clause at all.
func (r *ProductsPG) SkuTaken(ctx context.Context, sku, excludeID string) (bool, error) {
	var taken bool
	var err error
	if excludeID == "" {
		err = r.DB.QueryRow(ctx, `
			select exists(select 1 from products where sku = $1)
		`, sku).Scan(&taken)
	} else {
		err = r.DB.QueryRow(ctx, `
			select exists(select 1 from products where sku = $1 and id <> $2)
		`, sku, excludeID).Scan(&taken)
	}
	return taken, err
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
