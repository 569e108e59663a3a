package main

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"ecommerce-api/internal/auth"
	"ecommerce-api/internal/migrations"
	"ecommerce-api/internal/seed"
	"ecommerce-api/pkg/config"
	"ecommerce-api/pkg/logger"
)

func main() {
	cfg, err := config.LoadSeed()
	if err != nil {
		panic(err)
	}
	log := logger.New("seed", cfg.Common.LogLevel)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := migrations.Up(ctx, cfg.Postgres.DSN); err != nil {
		log.Fatal().Err(err).Msg("migrations failed")
	}

	db, err := pgxpool.New(ctx, cfg.Postgres.DSN)
	if err != nil {
		log.Fatal().Err(err).Msg("pg connect failed")
	}
	defer db.Close()

	hasher := auth.NewPasswordHasher(cfg.Auth.BcryptCost)
	if err := seed.Run(ctx, db, hasher, log); err != nil {
		log.Fatal().Err(err).Msg("seeding failed")
	}
	log.Info().Msg("seeding completed")
}
