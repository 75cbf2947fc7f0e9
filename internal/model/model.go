// Package model holds the entities the store persists, the derived stats
// report, and the typed request payloads the HTTP layer binds.
//
// Request types validate themselves (validation.Validatable) and clean
// their own text fields (validation.Sanitizer) so no loose maps ever reach
// the service or repository layers.
package model

import (
	"github.com/devanap/fabrismart-full/internal/validation"
)

// IDParam binds the :id path parameter shared by every single-entity route.
type IDParam struct {
	ID int64 `param:"id" validate:"required,min=1"`
}

func (p *IDParam) Validate() error {
	return validation.Struct(p)
}

// MessageResponse is the body returned by delete operations.
type MessageResponse struct {
	Message string `json:"message"`
}

// NoParams is bound by routes that take no input, such as list and stats.
type NoParams struct{}

func (p *NoParams) Validate() error {
	return nil
}
