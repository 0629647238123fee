package postgres

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/hrdash/hr-dashboard-api/internal/domain"
)

type PasswordResetRepository struct {
	db *sqlx.DB
}

func NewPasswordResetRepo(db *sqlx.DB) *PasswordResetRepository {
	return &PasswordResetRepository{db: db}
}

// Replace supersedes any pending code for the email. The unique constraint
// on email plus the upsert keeps this a single atomic statement: the old
// code stops validating the instant the new one is committed.
func (r *PasswordResetRepository) Replace(ctx context.Context, email, otp string, expiresAt time.Time) (*domain.PasswordReset, error) {
	const query = `
        INSERT INTO password_reset (email, otp, expires_at)
        VALUES ($1, $2, $3)
        ON CONFLICT (email) DO UPDATE
        SET otp = EXCLUDED.otp,
            expires_at = EXCLUDED.expires_at,
            created_at = NOW()
        RETURNING id, email, otp, expires_at, created_at
    `
	row := r.db.QueryRowxContext(ctx, query, email, otp, expiresAt)
	var reset domain.PasswordReset
	if err := row.StructScan(&reset); err != nil {
		return nil, err
	}
	return &reset, nil
}

// Consume removes the row matching (email, otp) exactly and returns what was
// deleted. Check-and-delete in one statement means concurrent validations of
// the same code cannot both succeed.
func (r *PasswordResetRepository) Consume(ctx context.Context, email, otp string) (*domain.PasswordReset, error) {
	const query = `
        DELETE FROM password_reset
        WHERE email = $1 AND otp = $2
        RETURNING id, email, otp, expires_at, created_at
    `
	row := r.db.QueryRowxContext(ctx, query, email, otp)
	var reset domain.PasswordReset
	if err := row.StructScan(&reset); err != nil {
		return nil, err
	}
	return &reset, nil
}
