package service

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/hrdash/hr-dashboard-api/internal/domain"
	"github.com/hrdash/hr-dashboard-api/internal/media"
	"github.com/hrdash/hr-dashboard-api/internal/repository/ports"
)

var (
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrEmployeeEmailTaken = errors.New("an employee with this email already exists")
	ErrEmployeeValidation = errors.New("employee validation failed")
	ErrPhotoTooLarge      = errors.New("photo exceeds maximum size")
	ErrPhotoUnsupported   = errors.New("unsupported photo content type")
)

const (
	avatarMaxDimension = 512
	photoMaxBytes      = 5 * 1024 * 1024
)

type EmployeeService struct {
	employees    ports.EmployeeRepository
	storage      ports.ObjectStorage
	processor    media.Processor
	avatarBucket string
}

func NewEmployeeService(employees ports.EmployeeRepository, storage ports.ObjectStorage, processor media.Processor, avatarBucket string) *EmployeeService {
	return &EmployeeService{
		employees:    employees,
		storage:      storage,
		processor:    processor,
		avatarBucket: avatarBucket,
	}
}

func (s *EmployeeService) List(ctx context.Context) ([]domain.Employee, error) {
	return s.employees.List(ctx)
}

func (s *EmployeeService) Get(ctx context.Context, id uuid.UUID) (*domain.Employee, error) {
	employee, err := s.employees.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrEmployeeNotFound
		}
		return nil, err
	}
	return employee, nil
}

func (s *EmployeeService) Create(ctx context.Context, fields domain.EmployeeFields) (*domain.Employee, error) {
	if err := validateRequired(fields); err != nil {
		return nil, err
	}
	if err := validateStatus(fields.Status); err != nil {
		return nil, err
	}

	employee, err := s.employees.Create(ctx, fields)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrEmployeeEmailTaken
		}
		if isForeignKeyViolation(err) {
			return nil, fmt.Errorf("%w: unknown department or role", ErrEmployeeValidation)
		}
		return nil, err
	}
	return employee, nil
}

func (s *EmployeeService) Update(ctx context.Context, id uuid.UUID, fields domain.EmployeeFields) (*domain.Employee, error) {
	if err := validateStatus(fields.Status); err != nil {
		return nil, err
	}

	employee, err := s.employees.Update(ctx, id, fields)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrEmployeeNotFound
		}
		if isUniqueViolation(err) {
			return nil, ErrEmployeeEmailTaken
		}
		if isForeignKeyViolation(err) {
			return nil, fmt.Errorf("%w: unknown department or role", ErrEmployeeValidation)
		}
		return nil, err
	}
	return employee, nil
}

func (s *EmployeeService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.employees.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrEmployeeNotFound
		}
		return err
	}
	return nil
}

// UploadPhoto downscales the image and stores it under the employee's id.
// Re-uploads overwrite the previous object.
func (s *EmployeeService) UploadPhoto(ctx context.Context, id uuid.UUID, upload media.Upload) (string, error) {
	if upload.Size > photoMaxBytes {
		return "", ErrPhotoTooLarge
	}
	switch upload.ContentType {
	case "image/jpeg", "image/png":
	default:
		return "", ErrPhotoUnsupported
	}

	if _, err := s.Get(ctx, id); err != nil {
		return "", err
	}

	result, err := s.processor.Process(ctx, upload, avatarMaxDimension)
	if err != nil {
		if errors.Is(err, media.ErrUnsupportedImage) {
			return "", ErrPhotoUnsupported
		}
		return "", err
	}

	objectName := fmt.Sprintf("employees/%s/avatar.jpg", id)
	url, err := s.storage.Upload(ctx, s.avatarBucket, objectName, result.ContentType, bytes.NewReader(result.Bytes), int64(len(result.Bytes)))
	if err != nil {
		return "", err
	}

	if err := s.employees.UpdatePhotoURL(ctx, id, url); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrEmployeeNotFound
		}
		return "", err
	}
	return url, nil
}

func validateRequired(fields domain.EmployeeFields) error {
	switch {
	case fields.FirstName == nil || *fields.FirstName == "":
		return fmt.Errorf("%w: first_name is required", ErrEmployeeValidation)
	case fields.LastName == nil || *fields.LastName == "":
		return fmt.Errorf("%w: last_name is required", ErrEmployeeValidation)
	case fields.Email == nil || *fields.Email == "":
		return fmt.Errorf("%w: email is required", ErrEmployeeValidation)
	case fields.StartDate == nil:
		return fmt.Errorf("%w: start_date is required", ErrEmployeeValidation)
	case fields.Salary == nil:
		return fmt.Errorf("%w: salary is required", ErrEmployeeValidation)
	case *fields.Salary < 0:
		return fmt.Errorf("%w: salary must not be negative", ErrEmployeeValidation)
	}
	return nil
}

func validateStatus(status *domain.EmployeeStatus) error {
	if status != nil && !domain.ValidEmployeeStatus(*status) {
		return fmt.Errorf("%w: unknown status %q", ErrEmployeeValidation, *status)
	}
	return nil
}
