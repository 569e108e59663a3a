// Package seed creates the default admin user and two sample products.
// Inserts are keyed by email/sku, so the routine is idempotent.
package seed

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"ecommerce-api/internal/auth"
	"ecommerce-api/internal/models"
)

const (
	adminEmail    = "admin@example.com"
	adminPassword = "admin123"
)

type sampleProduct struct {
	name        string
	description string
	price       float64
	stock       int
	sku         string
}

var sampleProducts = []sampleProduct{
	{name: "Product 1", description: "Description for product 1", price: 100, stock: 50, sku: "SKU-001"},
	{name: "Product 2", description: "Description for product 2", price: 200, stock: 30, sku: "SKU-002"},
}

func Run(ctx context.Context, db *pgxpool.Pool, hasher *auth.PasswordHasher, log zerolog.Logger) error {
	hash, err := hasher.Hash(adminPassword)
	if err != nil {
		return fmt.Errorf("hashing admin password: %w", err)
	}

	ct, err := db.Exec(ctx, `
		insert into users(id, name, email, password_hash, is_verified, role)
		values ($1, 'Admin', $2, $3, true, $4)
		on conflict (email) do nothing
	`, uuid.NewString(), adminEmail, hash, models.RoleAdmin)
	if err != nil {
		return fmt.Errorf("seeding admin: %w", err)
	}
	if ct.RowsAffected() == 1 {
		log.Info().Str("email", adminEmail).Msg("admin created")
	} else {
		log.Info().Str("email", adminEmail).Msg("admin already exists")
	}

	var adminID string
	if err := db.QueryRow(ctx, `select id from users where email = $1`, adminEmail).Scan(&adminID); err != nil {
		return fmt.Errorf("loading admin id: %w", err)
	}

	for _, p := range sampleProducts {
		ct, err := db.Exec(ctx, `
			insert into products(id, name, description, price, stock, sku, owner_id)
			values ($1, $2, $3, $4, $5, $6, $7)
			on conflict (sku) do nothing
		`, uuid.NewString(), p.name, p.description, p.price, p.stock, p.sku, adminID)
		if err != nil {
			return fmt.Errorf("seeding product %s: %w", p.sku, err)
		}
		if ct.RowsAffected() == 1 {
			log.Info().Str("sku", p.sku).Msg("product created")
		} else {
			log.Info().Str("sku", p.sku).Msg("product already exists")
		}
	}
	return nil
}
