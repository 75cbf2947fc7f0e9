// Package repository handles all interactions with the database.
//
// It contains raw SQL queries and methods to fetch, persist,
// or update data, abstracting SQL logic away from the service layer.
//
// Repositories are stateless: each holds the shared *database.Database and
// every method runs against the store through it. Errors come back already
// classified (sqlerr.ErrDuplicateKey or sqlerr.ErrStorageFailure); absence
// is reported through a found flag, never as an error.
package repository

import (
	"github.com/devanap/fabrismart-full/internal/server"
)

// Repositories is a container for all repository instances.
type Repositories struct {
	Product  *ProductRepository
	Employee *EmployeeRepository
	Stats    *StatsRepository
}

// NewRepositories constructs the repository container over s.DB.
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Product:  NewProductRepository(s.DB),
		Employee: NewEmployeeRepository(s.DB),
		Stats:    NewStatsRepository(s.DB),
	}
}
