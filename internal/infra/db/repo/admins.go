package repo

import (
	"context"
	"time"

	"github.com/ai-solution/site-backend/internal/infra/db"
	"github.com/jackc/pgx/v5"
)

type AdminRepo struct {
	tx pgx.Tx
}

func NewAdminRepo(tx pgx.Tx) *AdminRepo {
	return &AdminRepo{tx: tx}
}

func (r *AdminRepo) GetByEmail(ctx context.Context, email string) (*db.Admin, error) {
	var admin db.Admin
	query := `SELECT id, email, password_hash, otp_code, otp_expires_at, otp_attempts, created_at
		FROM admins WHERE email = $1`
	err := r.tx.QueryRow(ctx, query, email).Scan(&admin.ID, &admin.Email, &admin.PasswordHash,
		&admin.OTPCode, &admin.OTPExpiresAt, &admin.OTPAttempts, &admin.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

func (r *AdminRepo) SetOTP(ctx context.Context, email, code string, expiresAt time.Time) error {
	_, err := r.tx.Exec(ctx,
		`UPDATE admins SET otp_code = $1, otp_expires_at = $2, otp_attempts = 0 WHERE email = $3`,
		code, expiresAt, email)
	return err
}

func (r *AdminRepo) ClearOTP(ctx context.Context, email string) error {
	_, err := r.tx.Exec(ctx,
		`UPDATE admins SET otp_code = NULL, otp_expires_at = NULL, otp_attempts = 0 WHERE email = $1`,
		email)
	return err
}

// IncrementOTPAttempts bumps the counter and returns the new value.
func (r *AdminRepo) IncrementOTPAttempts(ctx context.Context, email string) (int, error) {
	var attempts int
	err := r.tx.QueryRow(ctx,
		`UPDATE admins SET otp_attempts = otp_attempts + 1 WHERE email = $1 RETURNING otp_attempts`,
		email).Scan(&attempts)
	if err != nil {
		return 0, err
	}
	return attempts, nil
}
