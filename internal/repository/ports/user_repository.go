package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/hrdash/hr-dashboard-api/internal/domain"
)

type UserRepository interface {
	// Create inserts a new account. When role is HR the insert only
	// succeeds while fewer than domain.MaxHRAccounts HR accounts exist;
	// the quota check and insert are a single atomic statement.
	Create(ctx context.Context, email, name string, passwordHash []byte, role domain.AccountRole) (*domain.User, error)
	UpsertGoogleUser(ctx context.Context, email, name string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	UpdatePassword(ctx context.Context, email string, passwordHash []byte) error
}
