// Package mail is the outbound email capability. The API process never talks
// SMTP: it enqueues mail jobs on a durable queue and the mail worker drains
// them. Enqueue failures are the caller's to log and ignore.
package mail

import (
	"context"

	"github.com/google/uuid"

	"ecommerce-api/pkg/i18n"
	"ecommerce-api/pkg/rabbit"
)

type Message struct {
	ID      string `json:"id"`
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	Text    string `json:"text"`
	HTML    string `json:"html"`
}

type QueueMailer struct {
	Pub  *rabbit.Publisher
	From string
}

func (m *QueueMailer) SendOtp(ctx context.Context, to, code, subjectKey string) error {
	data := map[string]string{"otp": code}
	msg := Message{
		ID:      uuid.NewString(),
		From:    m.From,
		To:      to,
		Subject: i18n.T(i18n.DefaultLang, subjectKey, nil),
		Text:    i18n.T(i18n.DefaultLang, "mail.otp_text", data),
		HTML:    i18n.T(i18n.DefaultLang, "mail.otp_html", data),
	}
	pubCtx, cancel := rabbit.WithTimeout(ctx)
	defer cancel()
	return m.Pub.PublishJSON(pubCtx, rabbit.QueueMailSend, msg)
}
