package ports

import (
	"context"

	"github.com/hrdash/hr-dashboard-api/internal/domain"
)

type StatsRepository interface {
	Overview(ctx context.Context) (*domain.StatsOverview, error)
	EmployeesByDepartment(ctx context.Context) ([]domain.DepartmentHeadcount, error)
	SalaryStats(ctx context.Context) (*domain.SalaryStats, error)
	RecentEmployees(ctx context.Context, limit int) ([]domain.Employee, error)
}
