package model

import (
	"time"

	"github.com/devanap/fabrismart-full/internal/validation"
)

// Employee is a staff member. Email is stored lowercased and is unique.
// Role is nil when absent.
type Employee struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      *string   `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// EmployeeInput is the already-validated write payload for an employee.
type EmployeeInput struct {
	Name  string
	Email string
	Role  *string
}

// ------------------------------------------------------------

type CreateEmployeeRequest struct {
	Name  string `json:"name" validate:"required,max=200"`
	Email string `json:"email" validate:"required,max=200,emailshape"`
	Role  string `json:"role" validate:"max=200"`
}

func (r *CreateEmployeeRequest) Sanitize() {
	r.Name = validation.CleanString(r.Name)
	r.Email = validation.CleanEmail(r.Email)
	r.Role = validation.CleanString(r.Role)
}

func (r *CreateEmployeeRequest) Validate() error {
	return validation.Struct(r)
}

// Input maps an empty role to nil.
func (r *CreateEmployeeRequest) Input() EmployeeInput {
	input := EmployeeInput{
		Name:  r.Name,
		Email: r.Email,
	}
	if r.Role != "" {
		role := r.Role
		input.Role = &role
	}
	return input
}

// ------------------------------------------------------------

// UpdateEmployeeRequest replaces every mutable field of an existing employee.
type UpdateEmployeeRequest struct {
	ID int64 `param:"id" json:"-" validate:"required,min=1"`
	CreateEmployeeRequest
}

func (r *UpdateEmployeeRequest) Validate() error {
	return validation.Struct(r)
}
