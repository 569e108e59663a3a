package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"ecommerce-api/internal/auth"
	"ecommerce-api/internal/catalog"
	httpx "ecommerce-api/internal/http"
	"ecommerce-api/internal/mail"
	"ecommerce-api/internal/migrations"
	"ecommerce-api/internal/orders"
	"ecommerce-api/pkg/config"
	"ecommerce-api/pkg/logger"
	"ecommerce-api/pkg/rabbit"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	log := logger.New("api", cfg.Common.LogLevel)

	ctxInit, cancelInit := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelInit()

	if err := migrations.Up(ctxInit, cfg.Postgres.DSN); err != nil {
		log.Fatal().Err(err).Msg("migrations failed")
	}

	db, err := pgxpool.New(ctxInit, cfg.Postgres.DSN)
	if err != nil {
		log.Fatal().Err(err).Msg("pg connect failed")
	}
	defer db.Close()

	mq, err := rabbit.Connect(cfg.Rabbit.URL)
	if err != nil {
		log.Fatal().Err(err).Msg("rabbit connect failed")
	}
	defer func() { _ = mq.Close() }()
	if err := rabbit.DeclareMailQueue(mq.Ch); err != nil {
		log.Fatal().Err(err).Msg("rabbit declare failed")
	}

	mailer := &mail.QueueMailer{Pub: rabbit.NewPublisher(mq.Ch), From: cfg.Mail.From}

	authSvc := auth.NewService(
		&auth.UsersPG{DB: db},
		&auth.OtpsPG{DB: db},
		auth.NewTokenIssuer(cfg.JWT.Secret, cfg.JWT.TTL),
		auth.NewPasswordHasher(cfg.Auth.BcryptCost),
		mailer,
		cfg.Auth.OTPTTL,
		log,
	)
	catalogSvc := catalog.NewService(&catalog.ProductsPG{DB: db})
	orderSvc := orders.NewService(&orders.OrdersPG{DB: db}, log)

	router := httpx.NewRouter(&httpx.Deps{
		Log:     log,
		Auth:    authSvc,
		Catalog: catalogSvc,
		Orders:  orderSvc,
	})

	srv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Msg("http started")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("http failed")
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	log.Info().Msg("shutdown...")
	shCtx, shCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shCancel()
	_ = srv.Shutdown(shCtx)
}
