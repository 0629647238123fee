package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/hrdash/hr-dashboard-api/internal/domain"
	"github.com/hrdash/hr-dashboard-api/internal/repository/ports"
)

var (
	ErrDepartmentNotFound     = errors.New("department not found")
	ErrDepartmentNameTaken    = errors.New("a department with this name already exists")
	ErrDepartmentNameRequired = errors.New("department name is required")
)

type DepartmentService struct {
	departments ports.DepartmentRepository
}

func NewDepartmentService(departments ports.DepartmentRepository) *DepartmentService {
	return &DepartmentService{departments: departments}
}

func (s *DepartmentService) List(ctx context.Context) ([]domain.Department, error) {
	return s.departments.List(ctx)
}

func (s *DepartmentService) Create(ctx context.Context, name string, description *string) (*domain.Department, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrDepartmentNameRequired
	}
	department, err := s.departments.Create(ctx, name, description)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDepartmentNameTaken
		}
		return nil, err
	}
	return department, nil
}

func (s *DepartmentService) Update(ctx context.Context, id uuid.UUID, name *string, description *string) (*domain.Department, error) {
	if name != nil {
		trimmed := strings.TrimSpace(*name)
		if trimmed == "" {
			return nil, ErrDepartmentNameRequired
		}
		name = &trimmed
	}
	department, err := s.departments.Update(ctx, id, name, description)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrDepartmentNotFound
		}
		if isUniqueViolation(err) {
			return nil, ErrDepartmentNameTaken
		}
		return nil, err
	}
	return department, nil
}

func (s *DepartmentService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.departments.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrDepartmentNotFound
		}
		return err
	}
	return nil
}
