package auth

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"ecommerce-api/internal/models"
)

type UsersPG struct{ DB *pgxpool.Pool }

func (r *UsersPG) Create(ctx context.Context, u *models.User) error {
	_, err := r.DB.Exec(ctx, `
		insert into users(id, name, email, password_hash, is_verified, role, created_at, updated_at)
		values ($1, $2, $3, $4, $5, $6, $7, $8)
	`, u.ID, u.Name, u.Email, u.PasswordHash, u.IsVerified, u.Role, u.CreatedAt, u.UpdatedAt)
	return err
}

const userColumns = `id, name, email, password_hash, is_verified, role,
	password_reset_otp, password_reset_otp_expires, created_at, updated_at`

func (r *UsersPG) scanUser(row pgx.Row) (*models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.IsVerified, &u.Role,
		&u.PasswordResetOtp, &u.PasswordResetOtpExpires, &u.CreatedAt, &u.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UsersPG) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.scanUser(r.DB.QueryRow(ctx, `select `+userColumns+` from users where email = $1`, email))
}

func (r *UsersPG) GetByID(ctx context.Context, id string) (*models.User, error) {
	return r.scanUser(r.DB.QueryRow(ctx, `select `+userColumns+` from users where id = $1`, id))
}

func (r *UsersPG) Exists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := r.DB.QueryRow(ctx, `select exists(select 1 from users where id = $1)`, id).Scan(&exists)
	return exists, err
}

func (r *UsersPG) MarkVerified(ctx context.Context, id string) error {
	ct, err := r.DB.Exec(ctx, `
		update users set is_verified = true, updated_at = now() where id = $1
	`, id)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *UsersPG) SetResetOtp(ctx context.Context, id, code string, expires time.Time) error {
	ct, err := r.DB.Exec(ctx, `
		update users
		set password_reset_otp = $2,
		    password_reset_otp_expires = $3,
		    updated_at = now()
		where id = $1
	`, id, code, expires)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *UsersPG) ResetPassword(ctx context.Context, id, passwordHash string) error {
	ct, err := r.DB.Exec(ctx, `
		update users
		set password_hash = $2,
		    password_reset_otp = null,
		    password_reset_otp_expires = null,
		    updated_at = now()
		where id = $1
	`, id, passwordHash)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

type OtpsPG struct{ DB *pgxpool.Pool }

func (r *OtpsPG) Create(ctx context.Context, rec *models.OtpRecord) error {
	_, err := r.DB.Exec(ctx, `
		insert into otps(id, user_id, code, expires_at, created_at)
		values ($1, $2, $3, $4, $5)
	`, rec.ID, rec.UserID, rec.Code, rec.ExpiresAt, rec.CreatedAt)
	return err
}

func (r *OtpsPG) GetByUserAndCode(ctx context.Context, userID, code string) (*models.OtpRecord, error) {
	var rec models.OtpRecord
	err := r.DB.QueryRow(ctx, `
		select id, user_id, code, expires_at, created_at
		from otps
		where user_id = $1 and code = $2
	`, userID, code).Scan(&rec.ID, &rec.UserID, &rec.Code, &rec.ExpiresAt, &rec.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *OtpsPG) DeleteByUser(ctx context.Context, userID string) error {
	_, err := r.DB.Exec(ctx, `delete from otps where user_id = $1`, userID)
	return err
}
