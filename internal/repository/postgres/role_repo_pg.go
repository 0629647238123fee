package postgres

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/hrdash/hr-dashboard-api/internal/domain"
)

type RoleRepository struct {
	db *sqlx.DB
}

func NewRoleRepo(db *sqlx.DB) *RoleRepository {
	return &RoleRepository{db: db}
}

func (r *RoleRepository) List(ctx context.Context) ([]domain.Role, error) {
	const query = `
        SELECT r.id, r.name, r.description, r.created_at, r.updated_at,
               COUNT(e.id) AS employee_count
        FROM role r
        LEFT JOIN employee e ON e.role_id = r.id
        GROUP BY r.id
        ORDER BY r.name ASC
    `
	var roles []domain.Role
	if err := r.db.SelectContext(ctx, &roles, query); err != nil {
		return nil, err
	}
	return roles, nil
}

func (r *RoleRepository) Create(ctx context.Context, name string, description *string) (*domain.Role, error) {
	const query = `
        INSERT INTO role (name, description)
        VALUES ($1, $2)
        RETURNING id, name, description, created_at, updated_at, 0 AS employee_count
    `
	row := r.db.QueryRowxContext(ctx, query, name, description)
	var role domain.Role
	if err := row.StructScan(&role); err != nil {
		return nil, err
	}
	return &role, nil
}

func (r *RoleRepository) Update(ctx context.Context, id uuid.UUID, name *string, description *string) (*domain.Role, error) {
	const query = `
        UPDATE role
        SET name = COALESCE($2, name),
            description = COALESCE($3, description),
            updated_at = NOW()
        WHERE id = $1
        RETURNING id, name, description, created_at, updated_at,
                  (SELECT COUNT(*) FROM employee WHERE role_id = role.id) AS employee_count
    `
	row := r.db.QueryRowxContext(ctx, query, id, name, description)
	var role domain.Role
	if err := row.StructScan(&role); err != nil {
		return nil, err
	}
	return &role, nil
}

func (r *RoleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const query = `DELETE FROM role WHERE id = $1`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
