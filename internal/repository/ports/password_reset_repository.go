package ports

import (
	"context"
	"time"

	"github.com/hrdash/hr-dashboard-api/internal/domain"
)

type PasswordResetRepository interface {
	// Replace atomically supersedes any pending code for the email with a
	// new one, leaving exactly one live row.
	Replace(ctx context.Context, email, otp string, expiresAt time.Time) (*domain.PasswordReset, error)
	// Consume deletes the row matching (email, otp) exactly and returns it,
	// in a single statement so a code can never be spent twice. A missing
	// row reports sql.ErrNoRows.
	Consume(ctx context.Context, email, otp string) (*domain.PasswordReset, error)
}
