package postgres

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/hrdash/hr-dashboard-api/internal/domain"
)

type DepartmentRepository struct {
	db *sqlx.DB
}

func NewDepartmentRepo(db *sqlx.DB) *DepartmentRepository {
	return &DepartmentRepository{db: db}
}

func (r *DepartmentRepository) List(ctx context.Context) ([]domain.Department, error) {
	const query = `
        SELECT d.id, d.name, d.description, d.created_at, d.updated_at,
               COUNT(e.id) AS employee_count
        FROM department d
        LEFT JOIN employee e ON e.department_id = d.id
        GROUP BY d.id
        ORDER BY d.name ASC
    `
	var departments []domain.Department
	if err := r.db.SelectContext(ctx, &departments, query); err != nil {
		return nil, err
	}
	return departments, nil
}

func (r *DepartmentRepository) Create(ctx context.Context, name string, description *string) (*domain.Department, error) {
	const query = `
        INSERT INTO department (name, description)
        VALUES ($1, $2)
        RETURNING id, name, description, created_at, updated_at, 0 AS employee_count
    `
	row := r.db.QueryRowxContext(ctx, query, name, description)
	var department domain.Department
	if err := row.StructScan(&department); err != nil {
		return nil, err
	}
	return &department, nil
}

func (r *DepartmentRepository) Update(ctx context.Context, id uuid.UUID, name *string, description *string) (*domain.Department, error) {
	const query = `
        UPDATE department
        SET name = COALESCE($2, name),
            description = COALESCE($3, description),
            updated_at = NOW()
        WHERE id = $1
        RETURNING id, name, description, created_at, updated_at,
                  (SELECT COUNT(*) FROM employee WHERE department_id = department.id) AS employee_count
    `
	row := r.db.QueryRowxContext(ctx, query, id, name, description)
	var department domain.Department
	if err := row.StructScan(&department); err != nil {
		return nil, err
	}
	return &department, nil
}

func (r *DepartmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const query = `DELETE FROM department WHERE id = $1`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
