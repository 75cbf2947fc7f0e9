package service

import (
	"context"

	"github.com/devanap/fabrismart-full/internal/errs"
	"github.com/devanap/fabrismart-full/internal/model"
	"github.com/devanap/fabrismart-full/internal/repository"
	"github.com/devanap/fabrismart-full/internal/server"
	"github.com/rs/zerolog"
)

type EmployeeService struct {
	server *server.Server
	repo   *repository.EmployeeRepository
}

func NewEmployeeService(s *server.Server, repo *repository.EmployeeRepository) *EmployeeService {
	return &EmployeeService{
		server: s,
		repo:   repo,
	}
}

func employeeNotFound() *errs.HTTPError {
	return errs.NewNotFoundError("employee not found", true, code("EMPLOYEE_NOT_FOUND"))
}

func employeeConflict() *errs.HTTPError {
	return errs.NewConflictError("email already registered", true, code("EMPLOYEE_ALREADY_EXISTS"))
}

func (s *EmployeeService) List(ctx context.Context) ([]model.Employee, error) {
	employees, err := s.repo.List(ctx)
	if err != nil {
		return nil, storeError(ctx, "list_employees", err, nil)
	}
	return employees, nil
}

func (s *EmployeeService) Get(ctx context.Context, id int64) (*model.Employee, error) {
	employee, found, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, storeError(ctx, "get_employee", err, nil)
	}
	if !found {
		return nil, employeeNotFound()
	}
	return &employee, nil
}

// Create inserts the employee and returns it as stored. The email is
// expected lowercased already.
func (s *EmployeeService) Create(ctx context.Context, in model.EmployeeInput) (*model.Employee, error) {
	id, err := s.repo.Create(ctx, in)
	if err != nil {
		return nil, storeError(ctx, "create_employee", err, employeeConflict())
	}

	zerolog.Ctx(ctx).Info().Int64("employee_id", id).Msg("employee created")

	return s.Get(ctx, id)
}

// Update rejects unknown ids before writing.
func (s *EmployeeService) Update(ctx context.Context, id int64, in model.EmployeeInput) (*model.Employee, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, id, in); err != nil {
		return nil, storeError(ctx, "update_employee", err, employeeConflict())
	}

	return s.Get(ctx, id)
}

// Delete rejects unknown ids before deleting.
func (s *EmployeeService) Delete(ctx context.Context, id int64) (*model.MessageResponse, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, storeError(ctx, "delete_employee", err, nil)
	}

	zerolog.Ctx(ctx).Info().Int64("employee_id", id).Msg("employee deleted")

	return &model.MessageResponse{Message: "employee deleted successfully"}, nil
}
