package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"ecommerce-api/internal/apperr"
	"ecommerce-api/internal/models"
	"ecommerce-api/pkg/metrics"
)

// Mailer is the outbound email capability. Dispatch is fire-and-forget:
// a failed enqueue never rolls back the write that preceded it.
type Mailer interface {
	SendOtp(ctx context.Context, to, code, subjectKey string) error
}

const (
	SubjectVerifyKey = "mail.otp_subject"
	SubjectResetKey  = "mail.reset_subject"
)

type Service struct {
	users  UserRepository
	otps   OtpRepository
	tokens *TokenIssuer
	hasher *PasswordHasher
	mailer Mailer
	otpTTL time.Duration
	log    zerolog.Logger

	now func() time.Time
}

func NewService(users UserRepository, otps OtpRepository, tokens *TokenIssuer,
	hasher *PasswordHasher, mailer Mailer, otpTTL time.Duration, log zerolog.Logger) *Service {
	return &Service{
		users:  users,
		otps:   otps,
		tokens: tokens,
		hasher: hasher,
		mailer: mailer,
		otpTTL: otpTTL,
		log:    log,
		now:    time.Now,
	}
}

// Register creates an unverified user, issues a verification OTP and
// dispatches it by email. Returns the new user id.
func (s *Service) Register(ctx context.Context, name, email, password string) (string, error) {
	_, err := s.users.GetByEmail(ctx, email)
	if err == nil {
		return "", apperr.ErrEmailExists
	}
	if !errors.Is(err, ErrNotFound) {
		return "", fmt.Errorf("looking up email: %w", err)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return "", fmt.Errorf("hashing password: %w", err)
	}

	now := s.now()
	u := &models.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		IsVerified:   false,
		Role:         models.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return "", fmt.Errorf("creating user: %w", err)
	}

	code, err := GenerateOtp()
	if err != nil {
		return "", err
	}
	rec := &models.OtpRecord{
		ID:        uuid.NewString(),
		UserID:    u.ID,
		Code:      code,
		ExpiresAt: now.Add(s.otpTTL),
		CreatedAt: now,
	}
	if err := s.otps.Create(ctx, rec); err != nil {
		return "", fmt.Errorf("storing otp: %w", err)
	}

	s.dispatchOtp(ctx, email, code, SubjectVerifyKey)
	return u.ID, nil
}

// VerifyEmail flips is_verified exactly once; all OTP records for the user are
// deleted on success, so the codes are collectively single-use.
func (s *Service) VerifyEmail(ctx context.Context, email, otp string) error {
	u, err := s.users.GetByEmail(ctx, email)
	if errors.Is(err, ErrNotFound) {
		return apperr.ErrUserNotFound
	}
	if err != nil {
		return fmt.Errorf("looking up user: %w", err)
	}
	if u.IsVerified {
		return apperr.ErrAlreadyVerified
	}

	rec, err := s.otps.GetByUserAndCode(ctx, u.ID, otp)
	if errors.Is(err, ErrNotFound) {
		return apperr.ErrOtpInvalid
	}
	if err != nil {
		return fmt.Errorf("looking up otp: %w", err)
	}
	if rec.Expired(s.now()) {
		return apperr.ErrOtpInvalid
	}

	if err := s.users.MarkVerified(ctx, u.ID); err != nil {
		return fmt.Errorf("marking verified: %w", err)
	}
	if err := s.otps.DeleteByUser(ctx, u.ID); err != nil {
		return fmt.Errorf("deleting otps: %w", err)
	}
	return nil
}

// Login returns the same InvalidCredentials for an unknown email and a wrong
// password, so the two are not distinguishable externally.
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	u, err := s.users.GetByEmail(ctx, email)
	if errors.Is(err, ErrNotFound) {
		return "", apperr.ErrInvalidCredentials
	}
	if err != nil {
		return "", fmt.Errorf("looking up user: %w", err)
	}
	if !s.hasher.Compare(u.PasswordHash, password) {
		return "", apperr.ErrInvalidCredentials
	}
	if !u.IsVerified {
		return "", apperr.ErrNotVerified
	}

	token, err := s.tokens.Issue(u)
	if err != nil {
		return "", fmt.Errorf("issuing token: %w", err)
	}
	return token, nil
}

func (s *Service) GetProfile(ctx context.Context, userID string) (*models.Profile, error) {
	u, err := s.users.GetByID(ctx, userID)
	if errors.Is(err, ErrNotFound) {
		return nil, apperr.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("looking up user: %w", err)
	}
	return &models.Profile{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		Role:       u.Role,
		IsVerified: u.IsVerified,
		CreatedAt:  u.CreatedAt,
	}, nil
}

// ForgotPassword issues a fresh reset OTP, overwriting any prior pending one.
func (s *Service) ForgotPassword(ctx context.Context, email string) error {
	u, err := s.users.GetByEmail(ctx, email)
	if errors.Is(err, ErrNotFound) {
		return apperr.ErrUserNotFound
	}
	if err != nil {
		return fmt.Errorf("looking up user: %w", err)
	}

	code, err := GenerateOtp()
	if err != nil {
		return err
	}
	if err := s.users.SetResetOtp(ctx, u.ID, code, s.now().Add(s.otpTTL)); err != nil {
		return fmt.Errorf("storing reset otp: %w", err)
	}

	s.dispatchOtp(ctx, u.Email, code, SubjectResetKey)
	return nil
}

func (s *Service) ResetPassword(ctx context.Context, email, otp, newPassword string) error {
	u, err := s.users.GetByEmail(ctx, email)
	if errors.Is(err, ErrNotFound) {
		return apperr.ErrInvalidRequest
	}
	if err != nil {
		return fmt.Errorf("looking up user: %w", err)
	}
	if u.PasswordResetOtp == nil || u.PasswordResetOtpExpires == nil {
		return apperr.ErrInvalidRequest
	}
	if *u.PasswordResetOtp != otp || !u.PasswordResetOtpExpires.After(s.now()) {
		return apperr.ErrOtpInvalid
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}
	if err := s.users.ResetPassword(ctx, u.ID, hash); err != nil {
		return fmt.Errorf("resetting password: %w", err)
	}
	return nil
}

// UserExists backs the token-verifying middleware's deleted-user check.
func (s *Service) UserExists(ctx context.Context, userID string) (bool, error) {
	return s.users.Exists(ctx, userID)
}

func (s *Service) VerifyToken(token string) (*Claims, error) {
	return s.tokens.Verify(token)
}

func (s *Service) dispatchOtp(ctx context.Context, to, code, subjectKey string) {
	if err := s.mailer.SendOtp(ctx, to, code, subjectKey); err != nil {
		s.log.Error().Err(err).Str("to", to).Msg("otp mail dispatch failed")
		return
	}
	metrics.OtpEmailsEnqueuedTotal.Inc()
}
