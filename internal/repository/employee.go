package repository

import (
	"context"
	"fmt"

	"github.com/devanap/fabrismart-full/internal/database"
	"github.com/devanap/fabrismart-full/internal/model"
)

type EmployeeRepository struct {
	db *database.Database
}

func NewEmployeeRepository(db *database.Database) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

const employeeColumns = `id, name, email, role, created_at`

// List returns every employee ordered by name, then id.
func (r *EmployeeRepository) List(ctx context.Context) ([]model.Employee, error) {
	stmt := `SELECT ` + employeeColumns + ` FROM employees ORDER BY name ASC, id ASC`

	records, err := r.db.Query(ctx, stmt)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	employees := make([]model.Employee, 0, len(records))
	for _, rec := range records {
		employees = append(employees, employeeFromRecord(rec))
	}
	return employees, nil
}

// GetByID returns found=false when no employee has the id.
func (r *EmployeeRepository) GetByID(ctx context.Context, id int64) (model.Employee, bool, error) {
	stmt := `SELECT ` + employeeColumns + ` FROM employees WHERE id = ?`

	records, err := r.db.Query(ctx, stmt, id)
	if err != nil {
		return model.Employee{}, false, fmt.Errorf("failed to get employee %d: %w", id, err)
	}
	if len(records) == 0 {
		return model.Employee{}, false, nil
	}
	return employeeFromRecord(records[0]), true, nil
}

// Create inserts an employee and returns its new id. An email already in
// use, in any letter case, fails with sqlerr.ErrDuplicateKey.
func (r *EmployeeRepository) Create(ctx context.Context, in model.EmployeeInput) (int64, error) {
	stmt := `INSERT INTO employees (name, email, role) VALUES (?, ?, ?)`

	id, err := r.db.Insert(ctx, stmt, in.Name, in.Email, nullableRole(in.Role))
	if err != nil {
		return 0, fmt.Errorf("failed to create employee: %w", err)
	}
	return id, nil
}

// Update overwrites every mutable field; a missing id is a no-op.
func (r *EmployeeRepository) Update(ctx context.Context, id int64, in model.EmployeeInput) error {
	stmt := `UPDATE employees SET name = ?, email = ?, role = ? WHERE id = ?`

	if _, err := r.db.Exec(ctx, stmt, in.Name, in.Email, nullableRole(in.Role), id); err != nil {
		return fmt.Errorf("failed to update employee %d: %w", id, err)
	}
	return nil
}

// Delete removes the employee; deleting a missing id succeeds.
func (r *EmployeeRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM employees WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete employee %d: %w", id, err)
	}
	return nil
}

// nullableRole stores absent and empty roles as NULL.
func nullableRole(role *string) any {
	if role == nil || *role == "" {
		return nil
	}
	return *role
}

func employeeFromRecord(rec database.Record) model.Employee {
	return model.Employee{
		ID:        rec.Int64("id"),
		Name:      rec.String("name"),
		Email:     rec.String("email"),
		Role:      rec.NullString("role"),
		CreatedAt: rec.Time("created_at"),
	}
}
