package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/hrdash/hr-dashboard-api/internal/domain"
)

type StatsRepository struct {
	db *sqlx.DB
}

func NewStatsRepo(db *sqlx.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

func (r *StatsRepository) Overview(ctx context.Context) (*domain.StatsOverview, error) {
	const query = `
        SELECT
            (SELECT COUNT(*) FROM employee) AS total_employees,
            (SELECT COUNT(*) FROM department) AS total_departments,
            (SELECT COUNT(*) FROM role) AS total_roles,
            (SELECT COUNT(*) FROM employee WHERE status = 'ACTIVE') AS active_employees
    `
	var overview domain.StatsOverview
	if err := r.db.GetContext(ctx, &overview, query); err != nil {
		return nil, err
	}
	return &overview, nil
}

func (r *StatsRepository) EmployeesByDepartment(ctx context.Context) ([]domain.DepartmentHeadcount, error) {
	const query = `
        SELECT d.name, COUNT(e.id) AS count
        FROM department d
        LEFT JOIN employee e ON e.department_id = d.id
        GROUP BY d.id
        ORDER BY d.name ASC
    `
	var counts []domain.DepartmentHeadcount
	if err := r.db.SelectContext(ctx, &counts, query); err != nil {
		return nil, err
	}
	return counts, nil
}

func (r *StatsRepository) SalaryStats(ctx context.Context) (*domain.SalaryStats, error) {
	const query = `
        SELECT COALESCE(AVG(salary), 0) AS average,
               COALESCE(SUM(salary), 0) AS total,
               COALESCE(MIN(salary), 0) AS min,
               COALESCE(MAX(salary), 0) AS max
        FROM employee
    `
	var stats domain.SalaryStats
	if err := r.db.GetContext(ctx, &stats, query); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (r *StatsRepository) RecentEmployees(ctx context.Context, limit int) ([]domain.Employee, error) {
	query := `SELECT` + employeeColumns + employeeJoins + `
        ORDER BY e.created_at DESC
        LIMIT $1`

	var rows []employeeRow
	if err := r.db.SelectContext(ctx, &rows, query, limit); err != nil {
		return nil, err
	}
	employees := make([]domain.Employee, 0, len(rows))
	for i := range rows {
		employees = append(employees, *rows[i].toDomain())
	}
	return employees, nil
}
