package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/hrdash/hr-dashboard-api/internal/domain"
)

type RoleRepository interface {
	List(ctx context.Context) ([]domain.Role, error)
	Create(ctx context.Context, name string, description *string) (*domain.Role, error)
	Update(ctx context.Context, id uuid.UUID, name *string, description *string) (*domain.Role, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
