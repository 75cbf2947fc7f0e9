package service

import (
	"context"
	"errors"

	"github.com/devanap/fabrismart-full/internal/model"
	"github.com/devanap/fabrismart-full/internal/repository"
	"github.com/devanap/fabrismart-full/internal/server"
	"github.com/devanap/fabrismart-full/internal/sqlerr"
)

func strPtr(s string) *string { return &s }

// DemoProducts and DemoEmployees populate an empty store for local use.
var (
	DemoProducts = []model.ProductInput{
		{Name: "Notebook Dell", Category: "Electronics", Quantity: 5},
		{Name: "Mouse Logitech", Category: "Electronics", Quantity: 15},
		{Name: "Mechanical Keyboard", Category: "Electronics", Quantity: 0},
		{Name: "Polo Shirt", Category: "Clothing", Quantity: 20},
		{Name: "Jeans", Category: "Clothing", Quantity: 8},
		{Name: "Rice 5kg", Category: "Food", Quantity: 50},
	}

	DemoEmployees = []model.EmployeeInput{
		{Name: "Joao Silva", Email: "joao@empresa.com", Role: strPtr("Seller")},
		{Name: "Maria Santos", Email: "maria@empresa.com", Role: strPtr("Manager")},
		{Name: "Pedro Costa", Email: "pedro@empresa.com", Role: strPtr("Stock Clerk")},
	}
)

// SeedService inserts demo data. Rows that already exist are skipped, so
// seeding twice is harmless.
type SeedService struct {
	server    *server.Server
	products  *repository.ProductRepository
	employees *repository.EmployeeRepository
}

func NewSeedService(s *server.Server, products *repository.ProductRepository, employees *repository.EmployeeRepository) *SeedService {
	return &SeedService{
		server:    s,
		products:  products,
		employees: employees,
	}
}

func (s *SeedService) Seed(ctx context.Context) (*model.SeedResult, error) {
	result := &model.SeedResult{}

	for _, in := range DemoProducts {
		_, err := s.products.Create(ctx, in)
		switch {
		case err == nil:
			result.ProductsCreated++
		case errors.Is(err, sqlerr.ErrDuplicateKey):
			result.Skipped++
		default:
			return nil, err
		}
	}

	for _, in := range DemoEmployees {
		_, err := s.employees.Create(ctx, in)
		switch {
		case err == nil:
			result.EmployeesCreated++
		case errors.Is(err, sqlerr.ErrDuplicateKey):
			result.Skipped++
		default:
			return nil, err
		}
	}

	s.server.Logger.Info().
		Int("products_created", result.ProductsCreated).
		Int("employees_created", result.EmployeesCreated).
		Int("skipped", result.Skipped).
		Msg("demo data seeded")

	return result, nil
}
