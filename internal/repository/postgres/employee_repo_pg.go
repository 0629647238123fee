package postgres

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/hrdash/hr-dashboard-api/internal/domain"
)

type EmployeeRepository struct {
	db *sqlx.DB
}

func NewEmployeeRepo(db *sqlx.DB) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

const employeeColumns = `
        e.id, e.first_name, e.last_name, e.email, e.phone, e.photo_url,
        e.start_date, e.salary, e.department_id, e.role_id, e.status,
        e.created_at, e.updated_at,
        d.name AS department_name, d.description AS department_description,
        r.name AS role_name, r.description AS role_description`

const employeeJoins = `
        FROM employee e
        LEFT JOIN department d ON d.id = e.department_id
        LEFT JOIN role r ON r.id = e.role_id`

// employeeRow flattens the joined department/role columns for StructScan.
type employeeRow struct {
	domain.Employee
	DepartmentName        *string `db:"department_name"`
	DepartmentDescription *string `db:"department_description"`
	RoleName              *string `db:"role_name"`
	RoleDescription       *string `db:"role_description"`
}

func (row *employeeRow) toDomain() *domain.Employee {
	emp := row.Employee
	if row.Employee.DepartmentID != nil && row.DepartmentName != nil {
		emp.Department = &domain.Department{
			ID:          *row.Employee.DepartmentID,
			Name:        *row.DepartmentName,
			Description: row.DepartmentDescription,
		}
	}
	if row.Employee.RoleID != nil && row.RoleName != nil {
		emp.Role = &domain.Role{
			ID:          *row.Employee.RoleID,
			Name:        *row.RoleName,
			Description: row.RoleDescription,
		}
	}
	return &emp
}

func (r *EmployeeRepository) List(ctx context.Context) ([]domain.Employee, error) {
	const query = `SELECT` + employeeColumns + employeeJoins + `
        ORDER BY e.created_at DESC`

	var rows []employeeRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, err
	}
	employees := make([]domain.Employee, 0, len(rows))
	for i := range rows {
		employees = append(employees, *rows[i].toDomain())
	}
	return employees, nil
}

func (r *EmployeeRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Employee, error) {
	const query = `SELECT` + employeeColumns + employeeJoins + `
        WHERE e.id = $1`

	var row employeeRow
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		return nil, err
	}
	return row.toDomain(), nil
}

func (r *EmployeeRepository) Create(ctx context.Context, fields domain.EmployeeFields) (*domain.Employee, error) {
	const query = `
        INSERT INTO employee (first_name, last_name, email, phone, start_date, salary, department_id, role_id, status)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, COALESCE($9, 'ACTIVE'))
        RETURNING id
    `
	var id uuid.UUID
	err := r.db.QueryRowxContext(ctx, query,
		fields.FirstName, fields.LastName, fields.Email, fields.Phone,
		fields.StartDate, fields.Salary, fields.DepartmentID, fields.RoleID,
		fields.Status,
	).Scan(&id)
	if err != nil {
		return nil, err
	}
	return r.FindByID(ctx, id)
}

func (r *EmployeeRepository) Update(ctx context.Context, id uuid.UUID, fields domain.EmployeeFields) (*domain.Employee, error) {
	const query = `
        UPDATE employee
        SET first_name = COALESCE($2, first_name),
            last_name = COALESCE($3, last_name),
            email = COALESCE($4, email),
            phone = COALESCE($5, phone),
            start_date = COALESCE($6, start_date),
            salary = COALESCE($7, salary),
            department_id = COALESCE($8, department_id),
            role_id = COALESCE($9, role_id),
            status = COALESCE($10, status),
            updated_at = NOW()
        WHERE id = $1
        RETURNING id
    `
	var returned uuid.UUID
	err := r.db.QueryRowxContext(ctx, query, id,
		fields.FirstName, fields.LastName, fields.Email, fields.Phone,
		fields.StartDate, fields.Salary, fields.DepartmentID, fields.RoleID,
		fields.Status,
	).Scan(&returned)
	if err != nil {
		return nil, err
	}
	return r.FindByID(ctx, returned)
}

func (r *EmployeeRepository) UpdatePhotoURL(ctx context.Context, id uuid.UUID, url string) error {
	const query = `
        UPDATE employee
        SET photo_url = $2,
            updated_at = NOW()
        WHERE id = $1
    `
	res, err := r.db.ExecContext(ctx, query, id, url)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *EmployeeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const query = `DELETE FROM employee WHERE id = $1`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
