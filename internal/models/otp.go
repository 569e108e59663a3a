package models

import "time"

// OtpRecord is an email-verification code. Password-reset OTPs live inline on
// the user row instead.
type OtpRecord struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Code      string    `json:"code"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

func (o *OtpRecord) Expired(now time.Time) bool {
	return !o.ExpiresAt.After(now)
}
