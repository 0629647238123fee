package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/hrdash/hr-dashboard-api/internal/domain"
)

type EmployeeRepository interface {
	List(ctx context.Context) ([]domain.Employee, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Employee, error)
	Create(ctx context.Context, fields domain.EmployeeFields) (*domain.Employee, error)
	Update(ctx context.Context, id uuid.UUID, fields domain.EmployeeFields) (*domain.Employee, error)
	UpdatePhotoURL(ctx context.Context, id uuid.UUID, url string) error
	Delete(ctx context.Context, id uuid.UUID) error
}
