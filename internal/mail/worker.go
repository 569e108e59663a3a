package mail

import (
	"context"
	"encoding/json"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"
)

// Worker drains the mail queue. Delivery here is the seam where an SMTP
// client would sit; mail is fire-and-forget, so a bad message is dropped
// rather than retried.
type Worker struct {
	Log zerolog.Logger
}

func (w *Worker) Run(ctx context.Context, deliveries <-chan amqp.Delivery) {
	w.Log.Info().Msg("mail worker started")
	for {
		select {
		case <-ctx.Done():
			w.Log.Info().Msg("mail worker stopped")
			return
		case d, ok := <-deliveries:
			if !ok {
				w.Log.Info().Msg("deliveries closed")
				return
			}
			w.handle(d)
		}
	}
}

func (w *Worker) handle(d amqp.Delivery) {
	var msg Message
	if err := json.Unmarshal(d.Body, &msg); err != nil {
		w.Log.Error().Err(err).Msg("bad mail job -> drop")
		_ = d.Ack(false)
		return
	}
	w.Log.Info().
		Str("mail_id", msg.ID).
		Str("to", msg.To).
		Str("subject", msg.Subject).
		Msg("mail delivered")
	_ = d.Ack(false)
}
