package auth

import (
	"context"
	"errors"
	"time"

	"ecommerce-api/internal/models"
)

// ErrNotFound is the repository-level miss; the service maps it to the
// appropriate domain failure per operation.
var ErrNotFound = errors.New("not found")

type UserRepository interface {
	Create(ctx context.Context, u *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	Exists(ctx context.Context, id string) (bool, error)
	MarkVerified(ctx context.Context, id string) error
	// SetResetOtp stores both reset-OTP fields together, overwriting any
	// prior pending reset.
	SetResetOtp(ctx context.Context, id, code string, expires time.Time) error
	// ResetPassword stores the new hash and clears both reset-OTP fields in
	// one statement.
	ResetPassword(ctx context.Context, id, passwordHash string) error
}

type OtpRepository interface {
	Create(ctx context.Context, rec *models.OtpRecord) error
	GetByUserAndCode(ctx context.Context, userID, code string) (*models.OtpRecord, error)
	DeleteByUser(ctx context.Context, userID string) error
}
