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
	ErrRoleNotFound     = errors.New("role not found")
	ErrRoleNameTaken    = errors.New("a role with this name already exists")
	ErrRoleNameRequired = errors.New("role name is required")
)

type RoleService struct {
	roles ports.RoleRepository
}

func NewRoleService(roles ports.RoleRepository) *RoleService {
	return &RoleService{roles: roles}
}

func (s *RoleService) List(ctx context.Context) ([]domain.Role, error) {
	return s.roles.List(ctx)
}

func (s *RoleService) Create(ctx context.Context, name string, description *string) (*domain.Role, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrRoleNameRequired
	}
	role, err := s.roles.Create(ctx, name, description)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrRoleNameTaken
		}
		return nil, err
	}
	return role, nil
}

func (s *RoleService) Update(ctx context.Context, id uuid.UUID, name *string, description *string) (*domain.Role, error) {
	if name != nil {
		trimmed := strings.TrimSpace(*name)
		if trimmed == "" {
			return nil, ErrRoleNameRequired
		}
		name = &trimmed
	}
	role, err := s.roles.Update(ctx, id, name, description)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRoleNotFound
		}
		if isUniqueViolation(err) {
			return nil, ErrRoleNameTaken
		}
		return nil, err
	}
	return role, nil
}

func (s *RoleService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.roles.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrRoleNotFound
		}
		return err
	}
	return nil
}
