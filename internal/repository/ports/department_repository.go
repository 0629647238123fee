package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/hrdash/hr-dashboard-api/internal/domain"
)

type DepartmentRepository interface {
	List(ctx context.Context) ([]domain.Department, error)
	Create(ctx context.Context, name string, description *string) (*domain.Department, error)
	Update(ctx context.Context, id uuid.UUID, name *string, description *string) (*domain.Department, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
