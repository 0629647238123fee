package service

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/hrdash/hr-dashboard-api/internal/domain"
	"github.com/hrdash/hr-dashboard-api/internal/media"
)

type fakeEmployeeRepo struct {
	byID map[uuid.UUID]*domain.Employee
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{byID: make(map[uuid.UUID]*domain.Employee)}
}

func (r *fakeEmployeeRepo) List(_ context.Context) ([]domain.Employee, error) {
	out := make([]domain.Employee, 0, len(r.byID))
	for _, e := range r.byID {
		out = append(out, *e)
	}
	return out, nil
}

func (r *fakeEmployeeRepo) FindByID(_ context.Context, id uuid.UUID) (*domain.Employee, error) {
	employee, ok := r.byID[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return employee, nil
}

func (r *fakeEmployeeRepo) Create(_ context.Context, fields domain.EmployeeFields) (*domain.Employee, error) {
	for _, e := range r.byID {
		if fields.Email != nil && e.Email == *fields.Email {
			return nil, &pgconn.PgError{Code: "23505"}
		}
	}
	employee := &domain.Employee{
		ID:        uuid.New(),
		FirstName: *fields.FirstName,
		LastName:  *fields.LastName,
		Email:     *fields.Email,
		StartDate: *fields.StartDate,
		Salary:    *fields.Salary,
		Status:    domain.EmployeeStatusActive,
	}
	if fields.Status != nil {
		employee.Status = *fields.Status
	}
	r.byID[employee.ID] = employee
	return employee, nil
}

func (r *fakeEmployeeRepo) Update(_ context.Context, id uuid.UUID, fields domain.EmployeeFields) (*domain.Employee, error) {
	employee, ok := r.byID[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	if fields.FirstName != nil {
		employee.FirstName = *fields.FirstName
	}
	if fields.Salary != nil {
		employee.Salary = *fields.Salary
	}
	if fields.Status != nil {
		employee.Status = *fields.Status
	}
	return employee, nil
}

func (r *fakeEmployeeRepo) UpdatePhotoURL(_ context.Context, id uuid.UUID, url string) error {
	employee, ok := r.byID[id]
	if !ok {
		return sql.ErrNoRows
	}
	employee.PhotoURL = &url
	return nil
}

func (r *fakeEmployeeRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.byID[id]; !ok {
		return sql.ErrNoRows
	}
	delete(r.byID, id)
	return nil
}

type fakeObjectStorage struct {
	uploads map[string][]byte
}

func newFakeObjectStorage() *fakeObjectStorage {
	return &fakeObjectStorage{uploads: make(map[string][]byte)}
}

func (s *fakeObjectStorage) Upload(_ context.Context, bucket, objectName, _ string, reader io.Reader, _ int64) (string, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return "", err
	}
	s.uploads[objectName] = data
	return "https://cdn.example.com/" + bucket + "/" + objectName, nil
}

type fakeProcessor struct{}

func (fakeProcessor) Process(_ context.Context, _ media.Upload, _ int) (*media.Result, error) {
	return &media.Result{Bytes: []byte("jpeg-bytes"), ContentType: "image/jpeg"}, nil
}

func employeeFixture() (*EmployeeService, *fakeEmployeeRepo, *fakeObjectStorage) {
	repo := newFakeEmployeeRepo()
	storage := newFakeObjectStorage()
	svc := NewEmployeeService(repo, storage, fakeProcessor{}, "avatars")
	return svc, repo, storage
}

func validFields(email string) domain.EmployeeFields {
	first, last := "Jane", "Doe"
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	salary := 75000.0
	return domain.EmployeeFields{
		FirstName: &first,
		LastName:  &last,
		Email:     &email,
		StartDate: &start,
		Salary:    &salary,
	}
}

func TestEmployeeCreateValidation(t *testing.T) {
	svc, _, _ := employeeFixture()

	fields := validFields("jane@example.com")
	fields.FirstName = nil
	if _, err := svc.Create(context.Background(), fields); !errors.Is(err, ErrEmployeeValidation) {
		t.Errorf("missing first_name: got %v, want ErrEmployeeValidation", err)
	}

	fields = validFields("jane@example.com")
	negative := -1.0
	fields.Salary = &negative
	if _, err := svc.Create(context.Background(), fields); !errors.Is(err, ErrEmployeeValidation) {
		t.Errorf("negative salary: got %v, want ErrEmployeeValidation", err)
	}

	fields = validFields("jane@example.com")
	bad := domain.EmployeeStatus("RETIRED")
	fields.Status = &bad
	if _, err := svc.Create(context.Background(), fields); !errors.Is(err, ErrEmployeeValidation) {
		t.Errorf("unknown status: got %v, want ErrEmployeeValidation", err)
	}
}

func TestEmployeeCreateDefaultsToActive(t *testing.T) {
	svc, _, _ := employeeFixture()

	employee, err := svc.Create(context.Background(), validFields("jane@example.com"))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if employee.Status != domain.EmployeeStatusActive {
		t.Errorf("status = %q, want ACTIVE", employee.Status)
	}
}

func TestEmployeeCreateDuplicateEmail(t *testing.T) {
	svc, _, _ := employeeFixture()

	if _, err := svc.Create(context.Background(), validFields("jane@example.com")); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := svc.Create(context.Background(), validFields("jane@example.com")); !errors.Is(err, ErrEmployeeEmailTaken) {
		t.Errorf("duplicate email: got %v, want ErrEmployeeEmailTaken", err)
	}
}

func TestEmployeeUpdateAndDelete(t *testing.T) {
	svc, _, _ := employeeFixture()

	employee, err := svc.Create(context.Background(), validFields("jane@example.com"))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	raise := 90000.0
	status := domain.EmployeeStatusOnLeave
	updated, err := svc.Update(context.Background(), employee.ID, domain.EmployeeFields{Salary: &raise, Status: &status})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Salary != raise || updated.Status != domain.EmployeeStatusOnLeave {
		t.Errorf("partial update not applied: %+v", updated)
	}
	if updated.FirstName != "Jane" {
		t.Error("fields absent from the update must be unchanged")
	}

	if _, err := svc.Update(context.Background(), uuid.New(), domain.EmployeeFields{Salary: &raise}); !errors.Is(err, ErrEmployeeNotFound) {
		t.Errorf("update missing: got %v, want ErrEmployeeNotFound", err)
	}

	if err := svc.Delete(context.Background(), employee.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := svc.Delete(context.Background(), employee.ID); !errors.Is(err, ErrEmployeeNotFound) {
		t.Errorf("delete missing: got %v, want ErrEmployeeNotFound", err)
	}
}

func TestEmployeeUploadPhoto(t *testing.T) {
	svc, repo, storage := employeeFixture()

	employee, err := svc.Create(context.Background(), validFields("jane@example.com"))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	url, err := svc.UploadPhoto(context.Background(), employee.ID, media.Upload{
		Reader:      strings.NewReader("png-bytes"),
		Size:        9,
		ContentType: "image/png",
	})
	if err != nil {
		t.Fatalf("UploadPhoto: %v", err)
	}
	if url == "" {
		t.Fatal("expected a photo URL")
	}
	if repo.byID[employee.ID].PhotoURL == nil || *repo.byID[employee.ID].PhotoURL != url {
		t.Error("photo URL not persisted on the employee record")
	}
	if len(storage.uploads) != 1 {
		t.Errorf("expected one stored object, got %d", len(storage.uploads))
	}
}

func TestEmployeeUploadPhotoRejections(t *testing.T) {
	svc, _, _ := employeeFixture()

	employee, err := svc.Create(context.Background(), validFields("jane@example.com"))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	_, err = svc.UploadPhoto(context.Background(), employee.ID, media.Upload{
		Reader: strings.NewReader("x"), Size: 6 * 1024 * 1024, ContentType: "image/png",
	})
	if !errors.Is(err, ErrPhotoTooLarge) {
		t.Errorf("oversized upload: got %v, want ErrPhotoTooLarge", err)
	}

	_, err = svc.UploadPhoto(context.Background(), employee.ID, media.Upload{
		Reader: strings.NewReader("x"), Size: 1, ContentType: "image/gif",
	})
	if !errors.Is(err, ErrPhotoUnsupported) {
		t.Errorf("gif upload: got %v, want ErrPhotoUnsupported", err)
	}

	_, err = svc.UploadPhoto(context.Background(), uuid.New(), media.Upload{
		Reader: strings.NewReader("x"), Size: 1, ContentType: "image/png",
	})
	if !errors.Is(err, ErrEmployeeNotFound) {
		t.Errorf("unknown employee: got %v, want ErrEmployeeNotFound", err)
	}
}
