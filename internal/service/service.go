// Package service contains the business logic.
//
// It sits between the handler and repository layers.
// It receives validated data from the handler, performs
// business operations, and calls repository methods to interact
// with the data
package service

import (
	"context"
	"errors"

	"github.com/devanap/fabrismart-full/internal/errs"
	"github.com/devanap/fabrismart-full/internal/sqlerr"
	"github.com/rs/zerolog"
)

// storeError maps a repository failure to the HTTP error the client sees.
//
// Duplicate keys become conflict when the caller provides one; everything
// else is logged with the request logger and reduced by sqlerr.HandleError
// so backend text never leaves the process.
func storeError(ctx context.Context, op string, err error, conflict *errs.HTTPError) error {
	if conflict != nil && errors.Is(err, sqlerr.ErrDuplicateKey) {
		return conflict
	}

	zerolog.Ctx(ctx).Error().
		Err(err).
		Str("operation", op).
		Msg("store operation failed")

	return sqlerr.HandleError(err)
}

func code(c string) *string {
	return &c
}
