package seed

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/ghodss/yaml"

	"github.com/hrdash/hr-dashboard-api/internal/service"
)

// Fixture is the YAML shape of a bootstrap file: the first admin account and
// the initial department and job-role catalogs.
type Fixture struct {
	Admin struct {
		Email    string `json:"email"`
		Name     string `json:"name"`
		Password string `json:"password"`
	} `json:"admin"`
	Departments []Entry `json:"departments"`
	Roles       []Entry `json:"roles"`
}

type Entry struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

// Load reads and parses a fixture file.
func Load(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var fixture Fixture
	if err := yaml.Unmarshal(data, &fixture); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}
	return &fixture, nil
}

type Seeder struct {
	auth        *service.AuthService
	departments *service.DepartmentService
	roles       *service.RoleService
}

func NewSeeder(auth *service.AuthService, departments *service.DepartmentService, roles *service.RoleService) *Seeder {
	return &Seeder{auth: auth, departments: departments, roles: roles}
}

// Apply is idempotent: records that already exist are skipped.
func (s *Seeder) Apply(ctx context.Context, fixture *Fixture) error {
	if fixture.Admin.Email != "" {
		_, err := s.auth.Register(ctx, fixture.Admin.Email, fixture.Admin.Name, fixture.Admin.Password, "ADMIN")
		switch {
		case err == nil:
			log.Printf("seed: created admin account %s", fixture.Admin.Email)
		case errors.Is(err, service.ErrEmailTaken):
			log.Printf("seed: admin account %s already exists", fixture.Admin.Email)
		default:
			return fmt.Errorf("seed admin: %w", err)
		}
	}

	for _, entry := range fixture.Departments {
		_, err := s.departments.Create(ctx, entry.Name, entry.Description)
		switch {
		case err == nil:
			log.Printf("seed: created department %s", entry.Name)
		case errors.Is(err, service.ErrDepartmentNameTaken):
			// already seeded
		default:
			return fmt.Errorf("seed department %q: %w", entry.Name, err)
		}
	}

	for _, entry := range fixture.Roles {
		_, err := s.roles.Create(ctx, entry.Name, entry.Description)
		switch {
		case err == nil:
			log.Printf("seed: created role %s", entry.Name)
		case errors.Is(err, service.ErrRoleNameTaken):
			// already seeded
		default:
			return fmt.Errorf("seed role %q: %w", entry.Name, err)
		}
	}
	return nil
}
