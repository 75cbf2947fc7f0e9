package model

import (
	"time"

	"github.com/devanap/fabrismart-full/internal/validation"
)

// Product is a stocked item. (Name, Category) is unique.
type Product struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
}

// ProductInput is the already-validated write payload for a product.
type ProductInput struct {
	Name     string
	Category string
	Quantity int
}

// ------------------------------------------------------------

type CreateProductRequest struct {
	Name     string   `json:"name" validate:"required,max=200"`
	Category string   `json:"category" validate:"required,max=200"`
	Quantity Quantity `json:"quantity" validate:"min=0"`
}

func (r *CreateProductRequest) Sanitize() {
	r.Name = validation.CleanString(r.Name)
	r.Category = validation.CleanString(r.Category)
}

func (r *CreateProductRequest) Validate() error {
	return validation.Struct(r)
}

func (r *CreateProductRequest) Input() ProductInput {
	return ProductInput{
		Name:     r.Name,
		Category: r.Category,
		Quantity: r.Quantity.Int(),
	}
}

// ------------------------------------------------------------

// UpdateProductRequest replaces every mutable field of an existing product.
type UpdateProductRequest struct {
	ID int64 `param:"id" json:"-" validate:"required,min=1"`
	CreateProductRequest
}

func (r *UpdateProductRequest) Validate() error {
	return validation.Struct(r)
}
