package domain

import (
	"time"

	"github.com/google/uuid"
)

type EmployeeStatus string

const (
	EmployeeStatusActive     EmployeeStatus = "ACTIVE"
	EmployeeStatusOnLeave    EmployeeStatus = "ON_LEAVE"
	EmployeeStatusTerminated EmployeeStatus = "TERMINATED"
)

// ValidEmployeeStatus reports whether s is one of the known statuses.
func ValidEmployeeStatus(s EmployeeStatus) bool {
	switch s {
	case EmployeeStatusActive, EmployeeStatusOnLeave, EmployeeStatusTerminated:
		return true
	}
	return false
}

type Employee struct {
	ID           uuid.UUID      `db:"id" json:"id"`
	FirstName    string         `db:"first_name" json:"first_name"`
	LastName     string         `db:"last_name" json:"last_name"`
	Email        string         `db:"email" json:"email"`
	Phone        *string        `db:"phone" json:"phone,omitempty"`
	PhotoURL     *string        `db:"photo_url" json:"photo_url,omitempty"`
	StartDate    time.Time      `db:"start_date" json:"start_date"`
	Salary       float64        `db:"salary" json:"salary"`
	DepartmentID *uuid.UUID     `db:"department_id" json:"department_id,omitempty"`
	RoleID       *uuid.UUID     `db:"role_id" json:"role_id,omitempty"`
	Status       EmployeeStatus `db:"status" json:"status"`
	CreatedAt    time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at" json:"updated_at"`

	Department *Department `db:"-" json:"department,omitempty"`
	Role       *Role       `db:"-" json:"role,omitempty"`
}

// EmployeeFields carries the writable attributes of an employee record.
// Nil pointers mean "leave unchanged" on update.
type EmployeeFields struct {
	FirstName    *string         `json:"first_name,omitempty"`
	LastName     *string         `json:"last_name,omitempty"`
	Email        *string         `json:"email,omitempty"`
	Phone        *string         `json:"phone,omitempty"`
	StartDate    *time.Time      `json:"start_date,omitempty"`
	Salary       *float64        `json:"salary,omitempty"`
	DepartmentID *uuid.UUID      `json:"department_id,omitempty"`
	RoleID       *uuid.UUID      `json:"role_id,omitempty"`
	Status       *EmployeeStatus `json:"status,omitempty"`
}
