package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/hrdash/hr-dashboard-api/internal/domain"
)

type fakeDepartmentRepo struct {
	byID map[uuid.UUID]*domain.Department
}

func newFakeDepartmentRepo() *fakeDepartmentRepo {
	return &fakeDepartmentRepo{byID: make(map[uuid.UUID]*domain.Department)}
}

func (r *fakeDepartmentRepo) List(_ context.Context) ([]domain.Department, error) {
	out := make([]domain.Department, 0, len(r.byID))
	for _, d := range r.byID {
		out = append(out, *d)
	}
	return out, nil
}

func (r *fakeDepartmentRepo) Create(_ context.Context, name string, description *string) (*domain.Department, error) {
	for _, d := range r.byID {
		if d.Name == name {
			return nil, &pgconn.PgError{Code: "23505"}
		}
	}
	department := &domain.Department{ID: uuid.New(), Name: name, Description: description}
	r.byID[department.ID] = department
	return department, nil
}

func (r *fakeDepartmentRepo) Update(_ context.Context, id uuid.UUID, name *string, description *string) (*domain.Department, error) {
	department, ok := r.byID[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	if name != nil {
		for otherID, d := range r.byID {
			if otherID != id && d.Name == *name {
				return nil, &pgconn.PgError{Code: "23505"}
			}
		}
		department.Name = *name
	}
	if description != nil {
		department.Description = description
	}
	return department, nil
}

func (r *fakeDepartmentRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.byID[id]; !ok {
		return sql.ErrNoRows
	}
	delete(r.byID, id)
	return nil
}

func TestDepartmentCreate(t *testing.T) {
	svc := NewDepartmentService(newFakeDepartmentRepo())

	if _, err := svc.Create(context.Background(), "   ", nil); !errors.Is(err, ErrDepartmentNameRequired) {
		t.Errorf("blank name: got %v, want ErrDepartmentNameRequired", err)
	}

	department, err := svc.Create(context.Background(), "  Engineering  ", nil)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if department.Name != "Engineering" {
		t.Errorf("expected trimmed name, got %q", department.Name)
	}

	if _, err := svc.Create(context.Background(), "Engineering", nil); !errors.Is(err, ErrDepartmentNameTaken) {
		t.Errorf("duplicate name: got %v, want ErrDepartmentNameTaken", err)
	}
}

func TestDepartmentUpdateAndDelete(t *testing.T) {
	svc := NewDepartmentService(newFakeDepartmentRepo())

	department, err := svc.Create(context.Background(), "Engineering", nil)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := svc.Create(context.Background(), "Design", nil); err != nil {
		t.Fatalf("Create: %v", err)
	}

	renamed := "Platform Engineering"
	updated, err := svc.Update(context.Background(), department.ID, &renamed, nil)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Name != renamed {
		t.Errorf("name = %q, want %q", updated.Name, renamed)
	}

	clash := "Design"
	if _, err := svc.Update(context.Background(), department.ID, &clash, nil); !errors.Is(err, ErrDepartmentNameTaken) {
		t.Errorf("rename onto existing: got %v, want ErrDepartmentNameTaken", err)
	}

	if _, err := svc.Update(context.Background(), uuid.New(), &renamed, nil); !errors.Is(err, ErrDepartmentNotFound) {
		t.Errorf("update missing: got %v, want ErrDepartmentNotFound", err)
	}

	if err := svc.Delete(context.Background(), department.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := svc.Delete(context.Background(), department.ID); !errors.Is(err, ErrDepartmentNotFound) {
		t.Errorf("delete missing: got %v, want ErrDepartmentNotFound", err)
	}
}
