package main

import (
	"context"
	"os/signal"
	"syscall"

	"ecommerce-api/internal/mail"
	"ecommerce-api/pkg/config"
	"ecommerce-api/pkg/logger"
	"ecommerce-api/pkg/rabbit"
)

func main() {
	cfg, err := config.LoadWorker()
	if err != nil {
		panic(err)
	}
	log := logger.New("mailworker", cfg.Common.LogLevel)

	mq, err := rabbit.Connect(cfg.Rabbit.URL)
	if err != nil {
		log.Fatal().Err(err).Msg("rabbit connect failed")
	}
	defer func() { _ = mq.Close() }()

	if err := rabbit.DeclareMailQueue(mq.Ch); err != nil {
		log.Fatal().Err(err).Msg("rabbit declare failed")
	}

	deliveries, err := rabbit.NewConsumer(mq.Ch).Consume(rabbit.QueueMailSend, 10)
	if err != nil {
		log.Fatal().Err(err).Msg("consume failed")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	w := &mail.Worker{Log: log}
	w.Run(ctx, deliveries)
}
