package domain

import (
	"time"

	"github.com/google/uuid"
)

// Role is an employee job title (Software Engineer, Product Manager, ...),
// not to be confused with AccountRole which gates API access.
type Role struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Description *string   `db:"description" json:"description,omitempty"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`

	EmployeeCount int `db:"employee_count" json:"employee_count"`
}
